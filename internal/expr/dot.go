package expr

import (
	"fmt"
	"strings"
)

// DotGraph renders root as Graphviz "dot" source, for the debug graph
// dump spec.md §1 names as an out-of-scope external collaborator: this
// function only produces data, leaving process management (piping it to
// the "dot" binary, writing an image) to whatever caller wants it.
func DotGraph(root *Node) string {
	var b strings.Builder
	b.WriteString("digraph expr {\n")
	b.WriteString("\tnode [shape=box, fontname=\"monospace\"];\n")

	id := 0
	var walk func(n *Node) int
	walk = func(n *Node) int {
		if n == nil {
			return -1
		}
		myID := id
		id++

		fmt.Fprintf(&b, "\tn%d [label=%q];\n", myID, dotLabel(n))

		if left := walk(n.Left); left >= 0 {
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", myID, left)
		}
		if right := walk(n.Right); right >= 0 {
			fmt.Fprintf(&b, "\tn%d -> n%d;\n", myID, right)
		}

		return myID
	}
	walk(root)

	b.WriteString("}\n")
	return b.String()
}

func dotLabel(n *Node) string {
	switch n.Kind {
	case KindNumber:
		return n.Literal
	case KindVariable:
		return n.Name
	case KindFunction:
		return keywordOf(n.Code)
	case KindOperator:
		if n.IsUnaryMinus() {
			return "unary -"
		}
		return keywordOf(n.Code)
	default:
		return "?"
	}
}
