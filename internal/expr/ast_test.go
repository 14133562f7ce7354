package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Clone_isDeepCopy(t *testing.T) {
	assert := assert.New(t)

	orig := mul(NewVariable("x"), add(NewVariable("y"), numLit(1)))
	clone := orig.Clone()

	assert.NotSame(orig, clone)
	assert.NotSame(orig.Right, clone.Right)
	assert.NotSame(orig.Right.Right, clone.Right.Right)
	assert.Nil(clone.Parent)

	// mutating the clone must not affect the original.
	clone.Right.Right.Literal = "999"
	assert.Equal("1", orig.Right.Right.Literal)
}

func Test_Replace_updatesParentAndMetrics(t *testing.T) {
	assert := assert.New(t)

	tree := New("t", add(NewVariable("a"), NewVariable("b")))
	oldRight := tree.Root.Right
	replacement := numLit(5)

	Replace(oldRight, replacement)

	assert.Same(replacement, tree.Root.Right)
	assert.Same(tree.Root, replacement.Parent)
	assert.Nil(oldRight.Parent)
	assert.Equal(tree.Root.Depth+1, replacement.Depth)
}

func Test_NodeCount(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("sin(x)^2+cos(x)^2")
	if !assert.NoError(err) {
		return
	}

	// Add(Pow(Fn(sin,x),2), Pow(Fn(cos,x),2)): 1 + (1+1+1+1) + (1+1+1+1) = 9
	assert.Equal(9, NodeCount(tree.Root))
}

func Test_Validate_wellFormedTree(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("sin(x)^2+cos(x)^2")
	if !assert.NoError(err) {
		return
	}

	assert.NoError(Validate(tree.Root))
}

func Test_Validate_catchesStructuralViolations(t *testing.T) {
	testCases := []struct {
		name     string
		build    func() *Node
		wantKind TreeKind
	}{
		{
			name:     "number with a child",
			build:    func() *Node { n := numLit(1); n.Left = NewVariable("x"); return n },
			wantKind: TreeLeafNonNull,
		},
		{
			name:     "function with a left child",
			build:    func() *Node { n := fn(CodeSin, NewVariable("x")); n.Left = NewVariable("y"); return n },
			wantKind: TreeFunctionArgCount,
		},
		{
			name:     "function missing its argument",
			build:    func() *Node { return fn(CodeSin, nil) },
			wantKind: TreeFunctionArgCount,
		},
		{
			name:     "binary operator missing its right child",
			build:    func() *Node { n := add(NewVariable("x"), NewVariable("y")); n.Right = nil; return n },
			wantKind: TreeOperatorArgCount,
		},
		{
			name:     "non-unary-minus operator missing its left child",
			build:    func() *Node { return NewOperator(CodeMul, nil, NewVariable("x")) },
			wantKind: TreeOperatorArgCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := Validate(tc.build())
			if !assert.Error(err) {
				return
			}
			te, ok := err.(*TreeError)
			if !assert.True(ok, "expected *TreeError, got %T", err) {
				return
			}
			assert.Equal(tc.wantKind, te.Kind)
		})
	}
}

func Test_Validate_allowsUnaryMinus(t *testing.T) {
	assert := assert.New(t)

	n := NewOperator(CodeSub, nil, NewVariable("x"))
	assert.NoError(Validate(n))
}
