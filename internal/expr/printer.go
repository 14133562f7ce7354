package expr

import "strings"

// Print renders root back to text using the grammar of Parse, with the
// minimum parentheses consistent with precedence (§4.4). The printer never
// reformats a Number's stored literal; FormatNumber is only used where the
// differentiator, simplifier, or evaluator produce a fresh Number node.
func Print(root *Node) string {
	var b strings.Builder
	print1(&b, root, nil)
	return b.String()
}

// print1 writes n to b. parent is nil at the root.
func print1(b *strings.Builder, n, parent *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case KindNumber:
		b.WriteString(n.Literal)
	case KindVariable:
		b.WriteString(n.Name)
	case KindFunction:
		b.WriteString(keywordOf(n.Code))
		b.WriteByte('(')
		print1(b, n.Right, n)
		b.WriteByte(')')
	case KindOperator:
		if n.Left != nil {
			printChild(b, n.Left, n)
		}
		b.WriteString(keywordOf(n.Code))
		printChild(b, n.Right, n)
	default:
		panic("expr: Print hit a node of unknown Kind")
	}
}

// printChild writes child, parenthesizing it when one of the two rules of
// §4.4 requires it for a child attached to parent.
func printChild(b *strings.Builder, child, parent *Node) {
	if needsParens(child, parent) {
		b.WriteByte('(')
		print1(b, child, parent)
		b.WriteByte(')')
	} else {
		print1(b, child, parent)
	}
}

// needsParens implements the two precedence rules of §4.4:
//
//  1. parent is '*' or '/' and child is '+' or '-' (this also catches
//     unary minus, which shares Code CodeSub with binary subtraction).
//  2. parent is '^' and child, on either side, is any operator other
//     than '^'. A '^' child is never parenthesized, so the right operand
//     of a power tower stays bare, and so does a '^' left operand:
//     (a^b)^c prints as a^b^c.
func needsParens(child, parent *Node) bool {
	if child == nil || parent.Kind != KindOperator || child.Kind != KindOperator {
		return false
	}

	switch parent.Code {
	case CodeMul, CodeDiv:
		return child.Code == CodeAdd || child.Code == CodeSub
	case CodePow:
		return child.Code != CodePow
	default:
		return false
	}
}
