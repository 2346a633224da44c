package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/ingest/parser"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/rosname"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(locationLevel, parser.YLocation{})
	v.RegisterStructValidation(guardLevel, parser.YGuard{})
	return v
}

// a location is only as deep as its outermost known field
func locationLevel(sl validator.StructLevel) {
	l := sl.Current().Interface().(parser.YLocation)
	checkDepth(sl, l.Package, l.File, l.Line, l.Column)
}

func guardLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(parser.YGuard)
	checkDepth(sl, g.Package, g.File, g.Line, g.Column)
}

func checkDepth(sl validator.StructLevel, pkg, file string, line, col int) {
	if file != "" && pkg == "" {
		sl.ReportError(file, "File", "file", "requires_package", "")
	}
	if line > 0 && file == "" {
		sl.ReportError(line, "Line", "line", "requires_file", "")
	}
	if col > 0 && line == 0 {
		sl.ReportError(col, "Column", "column", "requires_line", "")
	}
}

// Validate checks the structure shared by Truth and Model documents.
func Validate(d *parser.YDocument) error {
	if d == nil {
		return fmt.Errorf("document is nil")
	}
	if err := validate.Struct(d); err != nil {
		return describe(err)
	}
	return nil
}

// ValidateTruth additionally requires a Ground Truth to be fully resolved:
// no wildcard names and every type and queue size present.
func ValidateTruth(d *parser.YDocument) error {
	if err := Validate(d); err != nil {
		return err
	}

	for name, n := range d.Launch.Nodes {
		if err := resolved(name); err != nil {
			return err
		}
		if strings.TrimSpace(n.NodeType) == "" {
			return fmt.Errorf("node %q: node_type is required", name)
		}
		if n.Traceability == nil {
			return fmt.Errorf("node %q: traceability is required", name)
		}
	}
	for name := range d.Launch.Parameters {
		if err := resolved(name); err != nil {
			return err
		}
	}

	topics := append(append([]parser.YTopicLink{}, d.Links.Publishers...), d.Links.Subscribers...)
	for _, l := range topics {
		if err := resolved(l.Node, l.Topic, l.RosName); err != nil {
			return err
		}
		if l.MsgType == "" {
			return fmt.Errorf("link %s -> %s: msg_type is required", l.Node, l.Topic)
		}
		if l.QueueSize == nil {
			return fmt.Errorf("link %s -> %s: queue_size is required", l.Node, l.Topic)
		}
	}
	services := append(append([]parser.YServiceLink{}, d.Links.Clients...), d.Links.Servers...)
	for _, l := range services {
		if err := resolved(l.Node, l.Service, l.RosName); err != nil {
			return err
		}
		if l.SrvType == "" {
			return fmt.Errorf("link %s -> %s: srv_type is required", l.Node, l.Service)
		}
	}
	params := append(append([]parser.YParamLink{}, d.Links.Sets...), d.Links.Gets...)
	for _, l := range params {
		if err := resolved(l.Node, l.Parameter, l.RosName); err != nil {
			return err
		}
	}
	return nil
}

func resolved(names ...string) error {
	for _, n := range names {
		if rosname.HasWildcard(n) {
			return fmt.Errorf("%w: %q", domain.ErrWildcardInTruth, n)
		}
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid document: %s: %w", strings.Join(msgs, "; "), err)
}
