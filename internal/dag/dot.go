package dag

import (
	"github.com/emicklei/dot"
)

// DOT renders the graph as Graphviz DOT source. Nodes are labelled with the
// task description (falling back to the ID) and coloured by status; edges
// point from the prerequisite to the dependent task.
func (g *Graph) DOT() string {
	out := dot.NewGraph(dot.Directed)
	out.Attr("rankdir", "LR")

	byIndex := make([]dot.Node, len(g.nodes))
	for i, n := range g.nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		dn := out.Node(n.ID).Label(label).Attr("shape", "box")
		if color := statusColor(n.Status); color != "" {
			dn.Attr("style", "filled").Attr("fillcolor", color)
		}
		byIndex[i] = dn
	}

	for from, targets := range g.outgoing {
		for _, to := range targets {
			out.Edge(byIndex[from], byIndex[to])
		}
	}

	return out.String()
}

func statusColor(status string) string {
	switch status {
	case "pending":
		return "lightyellow"
	case "in_progress":
		return "lightblue"
	case "completed":
		return "lightgreen"
	}
	return ""
}
