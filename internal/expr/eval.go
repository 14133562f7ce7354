package expr

import "fmt"

// Bindings is the small keyed collection of §3 mapping identifier to
// number. Constants pi and e are pre-bound; every other identifier is
// populated on demand by Evaluate the first time it is encountered, then
// memoised for the rest of the session (first-bind-wins).
type Bindings struct {
	values map[string]complex128
}

// NewBindings returns a Bindings with pi and e pre-bound.
func NewBindings() *Bindings {
	return &Bindings{
		values: map[string]complex128{
			"pi": complex(3.141592653589793, 0),
			"e":  complex(2.718281828459045, 0),
		},
	}
}

// Get returns the bound value for name and whether it was already bound.
func (b *Bindings) Get(name string) (complex128, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Set binds name to v if it is not already bound (first-bind-wins). It
// reports whether the bind happened.
func (b *Bindings) Set(name string, v complex128) bool {
	if _, ok := b.values[name]; ok {
		return false
	}
	b.values[name] = v
	return true
}

// Prompter supplies a numeric value for a free variable encountered during
// evaluation. internal/session implements this over the interactive and
// batch readers; tests can use a map-backed stub.
type Prompter interface {
	PromptVariable(name string) (complex128, error)
}

// Evaluate performs the post-order fold of component F: Numbers contribute
// their stored value, Variables are resolved through bindings (prompting
// once per identifier via prompt if unbound), Functions apply the
// corresponding function, and Operators apply real/complex arithmetic.
// Domain errors are not intercepted — see applyFunction — so the result may
// itself be NaN or infinite.
//
// Evaluate collapses every visited node into a Number literal in place, as
// §4.7 specifies, so that after a successful call root itself is a Number
// node holding the result; the returned complex128 is that same value for
// convenience. A node is rewritten into a Number only after both its
// children (if any) have already folded, so no node is ever read after it
// has been collapsed.
func Evaluate(root *Node, bindings *Bindings, prompt Prompter) (complex128, error) {
	if root == nil {
		return 0, &NullInputError{What: "Evaluate given a nil node"}
	}

	var value complex128

	switch root.Kind {
	case KindNumber:
		value = root.Value

	case KindVariable:
		v, ok := bindings.Get(root.Name)
		if !ok {
			var err error
			v, err = prompt.PromptVariable(root.Name)
			if err != nil {
				return 0, err
			}
			bindings.Set(root.Name, v)
		}
		value = v

	case KindFunction:
		arg, err := Evaluate(root.Right, bindings, prompt)
		if err != nil {
			return 0, err
		}
		value = applyFunction(root.Code, arg)

	case KindOperator:
		if root.IsUnaryMinus() {
			v, err := Evaluate(root.Right, bindings, prompt)
			if err != nil {
				return 0, err
			}
			value = -v
		} else {
			l, err := Evaluate(root.Left, bindings, prompt)
			if err != nil {
				return 0, err
			}
			r, err := Evaluate(root.Right, bindings, prompt)
			if err != nil {
				return 0, err
			}
			value = applyOperator(root.Code, l, r)
		}

	default:
		return 0, fmt.Errorf("expr: Evaluate hit a node of unknown kind %v", root.Kind)
	}

	collapseToNumber(root, value)
	return value, nil
}

// collapseToNumber rewrites n in place into a Number leaf holding value,
// detaching whatever children it had. Parent links of the detached
// children are left untouched since they are about to be unreachable.
func collapseToNumber(n *Node, value complex128) {
	n.Kind = KindNumber
	n.Value = value
	n.Literal = FormatNumber(value)
	n.Left = nil
	n.Right = nil
	n.Name = ""
	n.Code = 0
}
