package expr

// Simplify rewrites root to a fixed point using the local rewrites of
// §4.6 (identity elimination, trivial cancellation, constant folding) plus
// one addition: a same-variable sum folds to a doubled term (needed so that
// a product-rule expansion like x*x collapses to 2*x rather than sitting as
// x+x) and a same-variable difference folds to zero. Every rule but the
// doubling one strictly shrinks the tree; the doubling rule holds node
// count steady but can never re-fire on its own output, so termination
// still holds. Simplify returns the new root — which is not root itself
// when a rewrite replaced the root node — and is
// idempotent: Simplify(Simplify(t)) == Simplify(t).
func Simplify(root *Node) *Node {
	current := root
	for {
		next, changed := simplifyPass(current)
		if !changed {
			recountDepth(next, 0)
			return next
		}
		current = next
	}
}

// simplifyPass simplifies every child of n first, then tries the local
// rewrites rooted at n itself. It reports whether anything changed
// anywhere in the subtree, so Simplify knows whether another pass is
// needed.
func simplifyPass(n *Node) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	switch n.Kind {
	case KindNumber, KindVariable:
		return n, false

	case KindFunction:
		// Rewrites do not traverse inside Function subtrees except to
		// recurse on their single argument; there is no local rewrite
		// pattern that targets a Function node itself.
		newArg, changed := simplifyPass(n.Right)
		n.Right = newArg
		reparent(n, newArg)
		return n, changed

	case KindOperator:
		changed := false

		if n.Left != nil {
			newLeft, c := simplifyPass(n.Left)
			n.Left = newLeft
			reparent(n, newLeft)
			changed = changed || c
		}

		newRight, c := simplifyPass(n.Right)
		n.Right = newRight
		reparent(n, newRight)
		changed = changed || c

		if rewritten, ok := rewriteOperator(n); ok {
			return rewritten, true
		}
		return n, changed

	default:
		panic("expr: simplifyPass hit a node of unknown kind")
	}
}

func reparent(parent, child *Node) {
	if child != nil {
		child.Parent = parent
	}
}

// rewriteOperator applies the local rewrite table to n, whose children
// have already been simplified. n.Left is nil only for unary minus.
func rewriteOperator(n *Node) (*Node, bool) {
	if n.IsUnaryMinus() {
		if isZeroLiteral(n.Right) {
			return numLit(0), true
		}
		return n, false
	}

	l, r := n.Left, n.Right

	switch n.Code {
	case CodeAdd:
		if isZeroLiteral(l) {
			return r, true
		}
		if isZeroLiteral(r) {
			return l, true
		}
		if sameVariable(l, r) {
			return mul(numLit(2), l), true
		}
	case CodeSub:
		if isZeroLiteral(r) {
			return l, true
		}
		if sameVariable(l, r) {
			return numLit(0), true
		}
	case CodeMul:
		if isZeroLiteral(l) || isZeroLiteral(r) {
			return numLit(0), true
		}
		if isOneLiteral(l) {
			return r, true
		}
		if isOneLiteral(r) {
			return l, true
		}
	case CodeDiv:
		if isZeroLiteral(l) {
			return numLit(0), true
		}
		if isOneLiteral(r) {
			return l, true
		}
		if sameLeafOperand(l, r) {
			return numLit(1), true
		}
	}

	if n.Code == CodeAdd || n.Code == CodeSub || n.Code == CodeMul {
		if l.Kind == KindNumber && r.Kind == KindNumber {
			return numLitC(applyOperator(n.Code, l.Value, r.Value)), true
		}
	}

	return n, false
}

func isZeroLiteral(n *Node) bool {
	return n != nil && n.Kind == KindNumber && n.Literal == "0"
}

func isOneLiteral(n *Node) bool {
	return n != nil && n.Kind == KindNumber && n.Literal == "1"
}

// sameVariable reports whether l and r are both the same Variable. It is
// deliberately narrower than sameLeafOperand: two identical Number
// operands are left to the literal-folding rule below, which computes the
// exact sum rather than rewriting it as a multiplication by two.
func sameVariable(l, r *Node) bool {
	return l != nil && r != nil && l.Kind == KindVariable && r.Kind == KindVariable && l.Name == r.Name
}

// sameLeafOperand reports whether l and r are the same Variable or the
// same Number literal. Simplification intentionally does not attempt
// structural equality beyond leaves, so dividing two identical non-trivial
// subtrees (e.g. sin(x)/sin(x)) is left unsimplified.
func sameLeafOperand(l, r *Node) bool {
	if l == nil || r == nil {
		return false
	}
	if l.Kind == KindVariable && r.Kind == KindVariable {
		return l.Name == r.Name
	}
	if l.Kind == KindNumber && r.Kind == KindNumber {
		return l.Literal == r.Literal
	}
	return false
}

func numLitC(v complex128) *Node {
	return NewNumber(FormatNumber(v), v)
}
