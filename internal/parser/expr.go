package parser

import (
	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/scope"
	"github.com/ayxg/cand/internal/token"
)

// ParseExpression runs both phases of spec.md §4.I on tokens — the
// shift-reduce rewrite to fully-parenthesized form, then a recursive
// descent over that form — and returns the root node of the resulting
// expression subtree.
func ParseExpression(tokens []token.Token, tree *cst.Tree) (int, error) {
	rewritten, err := Rewrite(tokens)
	if err != nil {
		return 0, err
	}
	c := cursor.New(rewritten, token.NoSpan)
	node, err := parseExpr(c, rewritten, tree)
	if err != nil {
		return 0, err
	}
	if !c.Get().IsEOF() {
		return 0, errExpectedOperator(c)
	}
	return node, nil
}

// parseExpr parses one primary atom and then any trailing call/index/list
// trailers, postfix operators, or binary operators that follow it at this
// nesting level (spec.md §4.I Phase 2).
func parseExpr(c *cursor.Cursor, toks []token.Token, tree *cst.Tree) (int, error) {
	atom, err := parsePrimary(c, toks, tree)
	if err != nil {
		return 0, err
	}

	for !c.Get().IsEOF() {
		tk := c.Get()
		switch {
		case tk.Kind == token.KindLParen || tk.Kind == token.KindLBracket || tk.Kind == token.KindLBrace:
			call, err := parseTrailer(c, toks, tree, tk, atom)
			if err != nil {
				return 0, err
			}
			atom = call

		case tk.Trait().Arity == token.ArityPostfix:
			n := tree.New(cst.KindOf(tk.Kind), tk.Literal, tk.Span.Line, tk.Span.Col)
			tree.AppendChild(n, atom)
			atom = n
			c.Advance(1)

		case tk.Trait().Arity == token.ArityBinary:
			c.Advance(1)
			rhs, err := parsePrimary(c, toks, tree)
			if err != nil {
				return 0, err
			}
			n := tree.New(cst.KindOf(tk.Kind), tk.Literal, tk.Span.Line, tk.Span.Col)
			tree.AppendChild(n, atom)
			tree.AppendChild(n, rhs)
			atom = n

		default:
			return 0, errExpectedOperator(c)
		}
	}
	return atom, nil
}

// parsePrimary parses a single primary position: a parenthesized
// sub-expression (recursing fully, trailers and all), a prefix operator
// applied to another primary, or a bare operand.
func parsePrimary(c *cursor.Cursor, toks []token.Token, tree *cst.Tree) (int, error) {
	tk := c.Get()
	switch {
	case tk.Kind == token.KindLParen:
		r, err := scope.Find(c)
		if err != nil {
			return 0, err
		}
		inner := cursor.Slice(toks, r.ContainedBegin, r.ContainedEnd, token.NoSpan)
		node, err := parseExpr(inner, toks, tree)
		if err != nil {
			return 0, err
		}
		c.AdvanceTo(r.End)
		return node, nil

	case tk.Trait().Arity == token.ArityPrefix:
		c.Advance(1)
		operand, err := parsePrimary(c, toks, tree)
		if err != nil {
			return 0, err
		}
		n := tree.New(cst.KindOf(tk.Kind), tk.Literal, tk.Span.Line, tk.Span.Col)
		tree.AppendChild(n, operand)
		return n, nil

	case tk.Trait().IsOperand:
		n := tree.NewFromToken(tk)
		c.Advance(1)
		return n, nil

	default:
		return 0, errExpectedPrimary(c)
	}
}

// parseTrailer parses a call/index/list trailer: the contained span's
// comma-separated sub-ranges are each raw, un-rewritten tokens (Phase 1
// copied a trailer's contents verbatim), so each argument runs the full
// ParseExpression pipeline independently.
func parseTrailer(c *cursor.Cursor, toks []token.Token, tree *cst.Tree, opener token.Token, lhs int) (int, error) {
	r, parts, err := scope.FindSeparated(c, token.KindComma, false)
	if err != nil {
		return 0, err
	}

	args := tree.New(cst.KindArguments, "", opener.Span.Line, opener.Span.Col)
	for _, part := range parts {
		arg, err := ParseExpression(toks[part[0]:part[1]], tree)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(args, arg)
	}

	n := tree.New(trailerKind(opener.Kind), "", opener.Span.Line, opener.Span.Col)
	tree.AppendChild(n, lhs)
	tree.AppendChild(n, args)
	c.AdvanceTo(r.End)
	return n, nil
}

func trailerKind(opener token.Kind) cst.Kind {
	switch opener {
	case token.KindLParen:
		return cst.KindFunctionCall
	case token.KindLBracket:
		return cst.KindIndexOperator
	case token.KindLBrace:
		return cst.KindListingOperator
	default:
		panic("parser: trailerKind called on a non-trailer kind")
	}
}
