package domain

import "errors"

var (
	ErrUndeclaredNode    = errors.New("link references undeclared node")
	ErrInvalidLocation   = errors.New("location fields are not hierarchical")
	ErrWildcardInTruth   = errors.New("ground truth names cannot contain wildcards")
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrKindMismatch      = errors.New("link target kind does not match link kind")
)
