package expr

import "strings"

// Normalize implements component A, the lexical preprocessor: it strips
// spaces and tabs and case-folds ASCII letters, leaving everything else
// (digits, operators, brackets, non-ASCII bytes) untouched. The parser
// re-reads this normalized string directly; there is no separate token
// stream.
func Normalize(source string) string {
	var b strings.Builder
	b.Grow(len(source))

	for _, r := range source {
		switch {
		case r == ' ' || r == '\t':
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
