package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse_wellFormed(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "number", input: "2", expect: "2"},
		{name: "simple sum", input: "2 + 3 * 4", expect: "2+3*4"},
		{name: "variable", input: "X", expect: "x"},
		{name: "parens forced by addition inside multiplication", input: "(a+b)*(a-b)", expect: "(a+b)*(a-b)"},
		{name: "function call", input: "sin(x)", expect: "sin(x)"},
		{name: "power is right associative", input: "2^3^4", expect: "2^3^4"},
		{name: "leading unary minus", input: "-x+1", expect: "-x+1"},
		{name: "nested functions", input: "sin(x)^2 + cos(x)^2", expect: "sin(x)^2+cos(x)^2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			tree, err := Parse(tc.input)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, Print(tree.Root))
		})
	}
}

func Test_Parse_errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantKind SyntaxKind
	}{
		{name: "unclosed function call", input: "sin(", wantKind: KindSyntaxError},
		{name: "unknown function", input: "zz(x)", wantKind: KindUnknownFunction},
		{name: "unclosed bracket", input: "(1+2", wantKind: KindUnclosedBracket},
		{name: "bad number", input: "1+.", wantKind: KindBadNumber},
		{name: "trailing garbage", input: "1+2)", wantKind: KindSyntaxError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Parse(tc.input)
			if !assert.Error(err) {
				return
			}

			se, ok := err.(*SyntaxError)
			if !assert.True(ok, "expected *SyntaxError, got %T", err) {
				return
			}
			assert.Equal(tc.wantKind, se.Kind)
		})
	}
}

func Test_Parse_sinOpenParen_excerpt(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("sin(")
	if !assert.Error(err) {
		return
	}

	se := err.(*SyntaxError)
	assert.Equal("sin(", se.Source)
	assert.Equal(4, se.Position)
	assert.Equal("sin(\n    ^", se.Excerpt(80))
}

func Test_Parse_normalizesWhitespaceAndCase(t *testing.T) {
	assert := assert.New(t)

	tree, err := Parse("  SIN( X ) + 2 ")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("sin(x)+2", Print(tree.Root))
}
