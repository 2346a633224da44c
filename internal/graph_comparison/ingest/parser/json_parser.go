package parser

import (
	"encoding/json"
)

func ParseJSONBytes(b []byte) (*YDocument, error) {
	var d YDocument
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
