package export

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/diff"
	"github.com/GoSim-25-26J-441/go-model-eval/internal/graph_comparison/domain"
)

var classColors = map[diff.Class]string{
	diff.Correct:   "#d4edda",
	diff.Partial:   "#fff3cd",
	diff.Incorrect: "#ffe0b2",
	diff.Missing:   "#f8d7da",
}

var kindShapes = map[domain.ResourceKind]string{
	domain.ResourceNode:      "box",
	domain.ResourceTopic:     "ellipse",
	domain.ResourceService:   "diamond",
	domain.ResourceParameter: "note",
}

// ToDOT renders the Truth graph, filling every scored item with the color
// of its diff class. A nil diff renders the plain graph.
func ToDOT(g *domain.Graph, d *diff.Diff, title string) string {
	classes := map[string]diff.Class{}
	if d != nil {
		for _, e := range d.Entries {
			if e.Truth != "" {
				classes[e.Kind.String()+" "+e.Truth] = e.Class
			}
		}
	}

	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	for _, r := range g.AllResources() {
		fill := "#eef6ff"
		if c, ok := classes[r.Kind.String()+" "+r.RosName]; ok {
			fill = classColors[c]
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", shape=%s, style="filled", fillcolor="%s"];`+"\n",
			r.Key(), r.RosName, kindShapes[r.Kind], fill))
	}

	for i, l := range g.Links {
		color := "black"
		if c, ok := classes[domain.LinkItem(l.Kind).String()+" "+l.Key().String()]; ok && c != diff.Correct {
			color = classColors[c]
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s", color="%s", tooltip="edge#%d"];`+"\n",
			l.Source(), l.Dest(), l.Kind, color, i))
	}

	b.WriteString("}\n")
	return b.String()
}

// Render converts a DOT file with the graphviz binary.
func Render(pathDOT, outPath, format, dotBin string) error {
	if format == "" {
		format = "svg"
	}
	if dotBin == "" {
		dotBin = "dot"
	}

	if _, err := exec.LookPath(dotBin); err != nil {
		return fmt.Errorf("graphviz: dot binary not found (%q): %w", dotBin, err)
	}

	cmd := exec.Command(dotBin, "-T"+format, pathDOT, "-o", outPath)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
