package expr

// Differentiate returns a freshly built AST representing d/d(varName) of
// root, per the structural rewrite rules of §4.5. It does not mutate root;
// the rule tables below read it as long as they need to, cloning whenever
// a subtree (u or v, not its derivative) appears more than once in a
// rule's result.
//
// The per-Code rule bodies are small builder functions rather than one
// large switch of inline tree literals, per the "rule tables are data"
// design note in SPEC_FULL.md: diffOperator and diffFunction are the two
// dispatch points, and everything under them is a (u, v) -> *Node template.
func Differentiate(root *Node, varName string) *AST {
	return New("derivative", diffNode(root, varName))
}

func diffNode(n *Node, varName string) *Node {
	switch n.Kind {
	case KindNumber:
		return numLit(0)

	case KindVariable:
		if n.Name == varName {
			return numLit(1)
		}
		return numLit(0)

	case KindOperator:
		if n.IsUnaryMinus() {
			return neg(diffNode(n.Right, varName))
		}
		return diffOperator(n, varName)

	case KindFunction:
		return diffFunction(n, varName)

	default:
		panic("expr: Differentiate hit a node of unknown kind")
	}
}

// diffOperator handles the five binary operators. u and v name the
// original node's children; uprime and vprime are their already-computed
// derivatives.
func diffOperator(n *Node, varName string) *Node {
	u, v := n.Left, n.Right
	uprime := diffNode(u, varName)
	vprime := diffNode(v, varName)

	switch n.Code {
	case CodeAdd:
		return add(uprime, vprime)
	case CodeSub:
		return sub(uprime, vprime)
	case CodeMul:
		// u'*v + u*v'
		return add(mul(uprime, v.Clone()), mul(u.Clone(), vprime))
	case CodeDiv:
		// (u'*v - u*v') / v^2
		return div(sub(mul(uprime, v.Clone()), mul(u.Clone(), vprime)), pow(v.Clone(), numLit(2)))
	case CodePow:
		// u^v * (v'*ln(u) + (v/u)*u')
		return mul(
			pow(u.Clone(), v.Clone()),
			add(
				mul(vprime, fn(CodeLn, u.Clone())),
				mul(div(v.Clone(), u.Clone()), uprime),
			),
		)
	default:
		panic("expr: diffOperator hit an unknown operator code")
	}
}

// diffFunction handles the unary functions. u names the original node's
// argument; uprime is its already-computed derivative.
func diffFunction(n *Node, varName string) *Node {
	u := n.Right
	uprime := diffNode(u, varName)

	switch n.Code {
	case CodeSin:
		return mul(uprime, fn(CodeCos, u.Clone()))
	case CodeCos:
		return neg(mul(uprime, fn(CodeSin, u.Clone())))
	case CodeTan:
		return div(uprime, pow(fn(CodeCos, u.Clone()), numLit(2)))
	case CodeCot:
		return neg(div(uprime, pow(fn(CodeSin, u.Clone()), numLit(2))))
	case CodeSinh:
		return mul(uprime, fn(CodeCosh, u.Clone()))
	case CodeCosh:
		return mul(uprime, fn(CodeSinh, u.Clone()))
	case CodeTanh:
		return div(uprime, pow(fn(CodeCosh, u.Clone()), numLit(2)))
	case CodeCoth:
		return neg(div(uprime, pow(fn(CodeSinh, u.Clone()), numLit(2))))
	case CodeArcsin:
		return div(uprime, fn(CodeSqrt, sub(numLit(1), pow(u.Clone(), numLit(2)))))
	case CodeArccos:
		return neg(div(uprime, fn(CodeSqrt, sub(numLit(1), pow(u.Clone(), numLit(2))))))
	case CodeArctan:
		return div(uprime, add(numLit(1), pow(u.Clone(), numLit(2))))
	case CodeArccot:
		return neg(div(uprime, add(numLit(1), pow(u.Clone(), numLit(2)))))
	case CodeArcsinh:
		return div(uprime, fn(CodeSqrt, add(numLit(1), pow(u.Clone(), numLit(2)))))
	case CodeArccosh:
		return div(uprime, fn(CodeSqrt, sub(pow(u.Clone(), numLit(2)), numLit(1))))
	case CodeArctanh:
		return div(uprime, sub(numLit(1), pow(u.Clone(), numLit(2))))
	case CodeArccoth:
		return div(uprime, sub(numLit(1), pow(u.Clone(), numLit(2))))
	case CodeExp:
		return mul(uprime, fn(CodeExp, u.Clone()))
	case CodeLn:
		return div(uprime, u.Clone())
	case CodeLg:
		return div(uprime, mul(u.Clone(), fn(CodeLn, numLit(10))))
	case CodeSqrt:
		return div(uprime, mul(numLit(2), fn(CodeSqrt, u.Clone())))
	case CodeCbrt:
		return div(uprime, mul(numLit(3), pow(u.Clone(), div(numLit(2), numLit(3)))))
	default:
		panic("expr: diffFunction hit an unknown function code")
	}
}

// --- tree builder helpers, used only by the rule tables above ---

func numLit(v float64) *Node {
	return NewNumber(FormatNumber(complex(v, 0)), complex(v, 0))
}

func add(l, r *Node) *Node  { return NewOperator(CodeAdd, l, r) }
func sub(l, r *Node) *Node  { return NewOperator(CodeSub, l, r) }
func mul(l, r *Node) *Node  { return NewOperator(CodeMul, l, r) }
func div(l, r *Node) *Node  { return NewOperator(CodeDiv, l, r) }
func pow(l, r *Node) *Node  { return NewOperator(CodePow, l, r) }
func neg(v *Node) *Node     { return NewOperator(CodeSub, nil, v) }
func fn(c Code, a *Node) *Node { return NewFunction(c, a) }
