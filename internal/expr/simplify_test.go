package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Simplify_localRewrites(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "zero plus v", input: "0+x", expect: "x"},
		{name: "v plus zero", input: "x+0", expect: "x"},
		{name: "v minus zero", input: "x-0", expect: "x"},
		{name: "unary minus zero", input: "-0", expect: "0"},
		{name: "zero times anything", input: "0*sin(x)", expect: "0"},
		{name: "anything times zero", input: "sin(x)*0", expect: "0"},
		{name: "one times v", input: "1*x", expect: "x"},
		{name: "v times one", input: "x*1", expect: "x"},
		{name: "zero over anything", input: "0/x", expect: "0"},
		{name: "v over one", input: "x/1", expect: "x"},
		{name: "same variable over itself", input: "x/x", expect: "1"},
		{name: "same number literal over itself", input: "3/3", expect: "1"},
		{name: "literal addition folds", input: "2+3", expect: "5"},
		{name: "literal subtraction folds", input: "5-3", expect: "2"},
		{name: "literal multiplication folds", input: "2*3", expect: "6"},
		{name: "same variable sum doubles", input: "x+x", expect: "2*x"},
		{name: "same variable difference cancels", input: "x-x", expect: "0"},
		{name: "nested rewrite propagates", input: "(0+x)*1", expect: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tree, err := Parse(tc.input)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, Print(Simplify(tree.Root)))
		})
	}
}

func Test_Simplify_idempotent(t *testing.T) {
	inputs := []string{
		"0+x*1",
		"x-x+y",
		"2*3+0*x",
		"sin(x)*1+0",
		"(x+0)/(1*y)",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert := assert.New(t)

			tree, err := Parse(in)
			if !assert.NoError(err) {
				return
			}

			once := Simplify(tree.Root)
			twice := Simplify(once.Clone())

			assert.Equal(Print(once), Print(twice))
		})
	}
}

func Test_Simplify_nodeCountNeverIncreases(t *testing.T) {
	inputs := []string{
		"0+x*1",
		"x*x+2*x+1",
		"x/x+0*y",
		"sin(x)^2+cos(x)^2",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert := assert.New(t)

			tree, err := Parse(in)
			if !assert.NoError(err) {
				return
			}

			before := NodeCount(tree.Root)
			after := NodeCount(Simplify(tree.Root))

			assert.LessOrEqual(after, before)
		})
	}
}

func Test_Simplify_doesNotTouchDivisionOfIdenticalNonLeafSubtrees(t *testing.T) {
	// §4.6: structural equality beyond leaves is intentionally out of
	// scope, so sin(x)/sin(x) is left unsimplified.
	assert := assert.New(t)

	tree, err := Parse("sin(x)/sin(x)")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("sin(x)/sin(x)", Print(Simplify(tree.Root)))
}
