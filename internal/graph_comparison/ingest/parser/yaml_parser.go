package parser

import "gopkg.in/yaml.v3"

// YDocument is a computation graph description. Ground Truth files and
// extracted Model files share this layout.
type YDocument struct {
	Note   string  `yaml:"__note,omitempty" json:"__note,omitempty"`
	Launch YLaunch `yaml:"launch,omitempty" json:"launch,omitempty"`
	Links  YLinks  `yaml:"links,omitempty" json:"links,omitempty"`
}

type YLaunch struct {
	Nodes      map[string]YNode      `yaml:"nodes,omitempty" json:"nodes,omitempty" validate:"dive,keys,startswith=/,endkeys"`
	Parameters map[string]YParameter `yaml:"parameters,omitempty" json:"parameters,omitempty" validate:"dive,keys,startswith=/,endkeys"`
}

type YNode struct {
	NodeType     string     `yaml:"node_type" json:"node_type"`
	Args         []string   `yaml:"args,omitempty" json:"args,omitempty"`
	Conditions   []YPath    `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"dive,dive"`
	Traceability *YLocation `yaml:"traceability,omitempty" json:"traceability,omitempty"`
}

type YParameter struct {
	ParamType    string     `yaml:"param_type,omitempty" json:"param_type,omitempty"`
	DefaultValue any        `yaml:"default_value,omitempty" json:"default_value,omitempty"`
	Conditions   []YPath    `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"dive,dive"`
	Traceability *YLocation `yaml:"traceability,omitempty" json:"traceability,omitempty"`
}

// YPath lists the guards enclosing an item, outermost first.
type YPath []YGuard

type YGuard struct {
	Statement string `yaml:"statement" json:"statement" validate:"required"`
	Condition string `yaml:"condition" json:"condition"`
	Package   string `yaml:"package,omitempty" json:"package,omitempty"`
	File      string `yaml:"file,omitempty" json:"file,omitempty"`
	Line      int    `yaml:"line,omitempty" json:"line,omitempty" validate:"min=0"`
	Column    int    `yaml:"column,omitempty" json:"column,omitempty" validate:"min=0"`
}

// YLocation fields left null are unknown.
type YLocation struct {
	Package string `yaml:"package" json:"package"`
	File    string `yaml:"file" json:"file"`
	Line    int    `yaml:"line" json:"line" validate:"min=0"`
	Column  int    `yaml:"column" json:"column" validate:"min=0"`
}

type YLinks struct {
	Publishers  []YTopicLink   `yaml:"publishers,omitempty" json:"publishers,omitempty" validate:"dive"`
	Subscribers []YTopicLink   `yaml:"subscribers,omitempty" json:"subscribers,omitempty" validate:"dive"`
	Clients     []YServiceLink `yaml:"clients,omitempty" json:"clients,omitempty" validate:"dive"`
	Servers     []YServiceLink `yaml:"servers,omitempty" json:"servers,omitempty" validate:"dive"`
	Sets        []YParamLink   `yaml:"sets,omitempty" json:"sets,omitempty" validate:"dive"`
	Gets        []YParamLink   `yaml:"gets,omitempty" json:"gets,omitempty" validate:"dive"`
}

type YTopicLink struct {
	Node         string     `yaml:"node" json:"node" validate:"required,startswith=/"`
	Topic        string     `yaml:"topic" json:"topic" validate:"required,startswith=/"`
	RosName      string     `yaml:"rosname,omitempty" json:"rosname,omitempty"`
	MsgType      string     `yaml:"msg_type" json:"msg_type"`
	QueueSize    *int       `yaml:"queue_size" json:"queue_size"`
	Latched      bool       `yaml:"latched,omitempty" json:"latched,omitempty"`
	Conditions   []YPath    `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"dive,dive"`
	Traceability *YLocation `yaml:"traceability,omitempty" json:"traceability,omitempty"`
}

type YServiceLink struct {
	Node         string     `yaml:"node" json:"node" validate:"required,startswith=/"`
	Service      string     `yaml:"service" json:"service" validate:"required,startswith=/"`
	RosName      string     `yaml:"rosname,omitempty" json:"rosname,omitempty"`
	SrvType      string     `yaml:"srv_type" json:"srv_type"`
	Conditions   []YPath    `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"dive,dive"`
	Traceability *YLocation `yaml:"traceability,omitempty" json:"traceability,omitempty"`
}

type YParamLink struct {
	Node         string     `yaml:"node" json:"node" validate:"required,startswith=/"`
	Parameter    string     `yaml:"parameter" json:"parameter" validate:"required,startswith=/"`
	RosName      string     `yaml:"rosname,omitempty" json:"rosname,omitempty"`
	ParamType    string     `yaml:"param_type,omitempty" json:"param_type,omitempty"`
	Value        any        `yaml:"value,omitempty" json:"value,omitempty"`
	Conditions   []YPath    `yaml:"conditions,omitempty" json:"conditions,omitempty" validate:"dive,dive"`
	Traceability *YLocation `yaml:"traceability,omitempty" json:"traceability,omitempty"`
}

func ParseYAMLBytes(b []byte) (*YDocument, error) {
	var d YDocument
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
