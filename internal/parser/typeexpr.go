package parser

import (
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/token"
)

// parseTypeExpr parses a type-expr: a builtin type keyword or a bare
// identifier (a user-defined type name), optionally followed by a
// '<'-delimited generic argument list. spec.md §4.J only pins down where a
// type-expr ends ("ending at @" or ":"); its internal shape is left open,
// so generics are the minimal extension needed to express `list<int>`-style
// container types used elsewhere in the catalogue (KwList, KwArray, KwPtr).
func parseTypeExpr(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	tk := c.Get()
	if !tk.Trait().IsOperand {
		return 0, errAt(c, cerr.KindParserExpectedToken, "expected a type name")
	}
	base := tree.NewFromToken(tk)
	c.Advance(1)

	if c.Get().Kind != token.KindLt {
		return base, nil
	}
	c.Advance(1)

	list := tree.New(cst.KindGenericList, "", tk.Span.Line, tk.Span.Col)
	tree.AppendChild(list, base)
	for {
		arg, err := parseTypeExpr(c, tree)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(list, arg)
		if c.Get().Kind == token.KindComma {
			c.Advance(1)
			continue
		}
		break
	}
	if err := expect(c, token.KindGt); err != nil {
		return 0, err
	}
	return list, nil
}
