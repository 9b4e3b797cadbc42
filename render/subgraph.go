package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/borderline/allpaths"
)

// Diagram is the union of enumerated paths as a directed adjacency,
// ordered by first insertion so serialization is deterministic.
type Diagram struct {
	order     []string
	adjacency map[string][]string
}

// Subgraph folds every path into one directed diagram. Duplicate edges
// collapse; the target keeps an empty adjacency so it still serializes
// as a node. An empty PathSet yields a diagram of the lone source.
func Subgraph(source string, paths allpaths.PathSet) *Diagram {
	d := &Diagram{adjacency: make(map[string][]string)}
	for _, path := range paths {
		for i := 0; i+1 < len(path); i++ {
			d.addEdge(path[i], path[i+1])
		}
	}
	if len(paths) == 0 {
		d.addNode(source)
	} else {
		d.addNode(paths[0][len(paths[0])-1])
	}

	return d
}

// Nodes returns the diagram's nodes in insertion order.
func (d *Diagram) Nodes() []string {
	return append([]string(nil), d.order...)
}

// Edges returns from's successors in insertion order.
func (d *Diagram) Edges(from string) []string {
	return append([]string(nil), d.adjacency[from]...)
}

func (d *Diagram) addNode(id string) {
	if _, ok := d.adjacency[id]; ok {
		return
	}
	d.adjacency[id] = nil
	d.order = append(d.order, id)
}

func (d *Diagram) addEdge(from, to string) {
	d.addNode(from)
	for _, existing := range d.adjacency[from] {
		if existing == to {
			return
		}
	}
	d.adjacency[from] = append(d.adjacency[from], to)
}

// WriteDOT serializes the diagram as a rankdir=LR digraph. Space-bearing
// labels become underscore identifiers, with a label attribute restoring
// the original words on separate lines.
func WriteDOT(w io.Writer, d *Diagram) error {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("\trankdir=LR;\n\n")

	for _, node := range d.order {
		fmt.Fprintf(&b, "\t%s;\n", identifier(node))
	}

	if len(d.order) > 0 {
		b.WriteString("\n")
		for _, node := range d.order {
			for _, succ := range d.adjacency[node] {
				fmt.Fprintf(&b, "\t%s -> %s;\n", identifier(node), identifier(succ))
			}
		}
	}

	labeled := false
	for _, node := range d.order {
		if !strings.Contains(node, " ") {
			continue
		}
		if !labeled {
			b.WriteString("\n")
			labeled = true
		}
		// \n inside the label makes Graphviz stack the words vertically
		fmt.Fprintf(&b, "\t%s [label=\"%s\"];\n", identifier(node), strings.ReplaceAll(node, " ", "\\n"))
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// identifier maps a node label to a DOT-safe identifier.
func identifier(label string) string {
	return strings.ReplaceAll(label, " ", "_")
}
