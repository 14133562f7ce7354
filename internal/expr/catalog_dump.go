package expr

import "github.com/dekarrin/rosed"

// DescribeCatalogue renders the operator/function table as a two-column
// text table, in the same style internal/game's debug commands build their
// flag and NPC listings with rosed.Edit(...).InsertTableOpts(...).
func DescribeCatalogue(width int) string {
	if width <= 0 {
		width = 80
	}

	data := [][]string{{"Keyword", "Arity"}}
	for _, e := range catalog {
		data = append(data, []string{e.keyword, arityLabel(e.arity)})
	}

	opts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").InsertTableOpts(0, data, width, opts).String()
}

func arityLabel(a Arity) string {
	switch a {
	case ArityUnary:
		return "unary"
	case ArityBinary:
		return "binary"
	case ArityPrefixBinary:
		return "prefix-binary"
	default:
		return "unknown"
	}
}
