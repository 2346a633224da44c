package domain

import "fmt"

// Location is a source position. Empty strings and zero numbers mean the
// field is unknown; a known field implies every coarser field is known.
type Location struct {
	Package string `json:"package,omitempty" yaml:"package,omitempty"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column  int    `json:"column,omitempty" yaml:"column,omitempty"`
}

func (l Location) Known() bool { return l.Package != "" }

// Depth is the number of known fields, from 0 (unknown) to 4 (full position).
func (l Location) Depth() int {
	switch {
	case l.Package == "":
		return 0
	case l.File == "":
		return 1
	case l.Line == 0:
		return 2
	case l.Column == 0:
		return 3
	}
	return 4
}

func (l Location) Validate() error {
	ok := true
	if l.Column != 0 && l.Line == 0 {
		ok = false
	}
	if l.Line != 0 && l.File == "" {
		ok = false
	}
	if l.File != "" && l.Package == "" {
		ok = false
	}
	if l.Line < 0 || l.Column < 0 {
		ok = false
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidLocation, l)
	}
	return nil
}

// Less orders locations field by field, unknown fields first.
func (l Location) Less(o Location) bool {
	if l.Package != o.Package {
		return l.Package < o.Package
	}
	if l.File != o.File {
		return l.File < o.File
	}
	if l.Line != o.Line {
		return l.Line < o.Line
	}
	return l.Column < o.Column
}

func (l Location) String() string {
	if !l.Known() {
		return "unknown location"
	}
	s := l.Package
	if l.File != "" {
		s += "/" + l.File
	}
	if l.Line != 0 {
		s += fmt.Sprintf(":%d", l.Line)
	}
	if l.Column != 0 {
		s += fmt.Sprintf(":%d", l.Column)
	}
	return s
}
