// Package expr implements the expression language shared by the calculator
// and differentiator front ends: normalization, parsing, the AST, the
// pretty-printer, the numeric evaluator, the symbolic differentiator, and
// the algebraic simplifier.
package expr

import "sort"

// Code identifies a single entry in the operator/function catalogue. It is
// the integer the AST stores on Operator and Function nodes; the catalogue
// below is the only place that associates a Code with its keyword and
// arity.
type Code int

const (
	// Binary operators. These five are recognized directly by the parser's
	// grammar productions (they are not looked up by keyword), but they
	// still get catalogue entries so the printer and differentiator can
	// dispatch on Code alone.
	CodeAdd Code = iota + 1
	CodeSub
	CodeMul
	CodeDiv
	CodePow

	// Unary functions. Recognized by keyword lookup in the call production.
	CodeArccos
	CodeArccosh
	CodeArccot
	CodeArccoth
	CodeArcsin
	CodeArcsinh
	CodeArctan
	CodeArctanh
	CodeCbrt
	CodeCos
	CodeCosh
	CodeCot
	CodeCoth
	CodeExp
	CodeLg
	CodeLn
	CodeSin
	CodeSinh
	CodeSqrt
	CodeTan
	CodeTanh
)

// Arity describes how many operands a catalogue entry expects and how they
// attach to an AST node.
type Arity int

const (
	// ArityUnary is a Function node: right child only.
	ArityUnary Arity = iota
	// ArityBinary is an Operator node with both children present.
	ArityBinary
	// ArityPrefixBinary is the '-' Operator node used with an absent left
	// child (unary minus). It shares CodeSub with ordinary subtraction;
	// the parser decides which shape to build based on whether a left
	// operand was present.
	ArityPrefixBinary
)

type catalogEntry struct {
	keyword string
	code    Code
	arity   Arity
}

// catalog is the statically known operator/function table of component B.
// Its order is the source of truth: entries are sorted lexicographically by
// keyword, not by Code, because lookupByKeyword depends on that order for
// its binary search.
var catalog = []catalogEntry{
	{"*", CodeMul, ArityBinary},
	{"+", CodeAdd, ArityBinary},
	{"-", CodeSub, ArityBinary},
	{"/", CodeDiv, ArityBinary},
	{"^", CodePow, ArityBinary},
	{"arccos", CodeArccos, ArityUnary},
	{"arccosh", CodeArccosh, ArityUnary},
	{"arccot", CodeArccot, ArityUnary},
	{"arccoth", CodeArccoth, ArityUnary},
	{"arcsin", CodeArcsin, ArityUnary},
	{"arcsinh", CodeArcsinh, ArityUnary},
	{"arctan", CodeArctan, ArityUnary},
	{"arctanh", CodeArctanh, ArityUnary},
	{"cbrt", CodeCbrt, ArityUnary},
	{"cos", CodeCos, ArityUnary},
	{"cosh", CodeCosh, ArityUnary},
	{"cot", CodeCot, ArityUnary},
	{"coth", CodeCoth, ArityUnary},
	{"exp", CodeExp, ArityUnary},
	{"lg", CodeLg, ArityUnary},
	{"ln", CodeLn, ArityUnary},
	{"sin", CodeSin, ArityUnary},
	{"sinh", CodeSinh, ArityUnary},
	{"sqrt", CodeSqrt, ArityUnary},
	{"tan", CodeTan, ArityUnary},
	{"tanh", CodeTanh, ArityUnary},
}

// byCode is a dense reverse index built once from catalog, giving O(1)
// lookup by Code (which trivially satisfies the O(log n) contract).
var byCode map[Code]catalogEntry

func init() {
	if !sort.SliceIsSorted(catalog, func(i, j int) bool { return catalog[i].keyword < catalog[j].keyword }) {
		panic("expr: catalog is not sorted lexicographically by keyword")
	}

	byCode = make(map[Code]catalogEntry, len(catalog))
	for _, e := range catalog {
		byCode[e.code] = e
	}
}

// lookupKeyword finds the catalogue entry for keyword via binary search
// over the lexicographically sorted catalog. Used by the parser's call
// production to recognize function names.
func lookupKeyword(keyword string) (catalogEntry, bool) {
	i := sort.Search(len(catalog), func(i int) bool { return catalog[i].keyword >= keyword })
	if i < len(catalog) && catalog[i].keyword == keyword {
		return catalog[i], true
	}
	return catalogEntry{}, false
}

// keywordOf returns the canonical printable spelling for code. Used by the
// pretty-printer so that operator and function spellings are always the
// catalogue's, never a reparse of user input.
func keywordOf(code Code) string {
	e, ok := byCode[code]
	if !ok {
		panic("expr: unknown catalogue code")
	}
	return e.keyword
}

// isFunction reports whether code identifies a unary function rather than
// a binary operator.
func isFunction(code Code) bool {
	e, ok := byCode[code]
	return ok && e.arity == ArityUnary
}
