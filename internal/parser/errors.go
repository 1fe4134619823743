package parser

import (
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/token"
)

func errAt(c *cursor.Cursor, kind cerr.Kind, msg string) error {
	return cerr.At(cerr.CategoryParser, kind, msg,
		cerr.Location{Line: c.Line(), Col: c.Col()})
}

func errExpectedOperand(c *cursor.Cursor) error {
	return errAt(c, cerr.KindExpectedPrimaryExpression, "expected an operand")
}

func errExpectedOperator(c *cursor.Cursor) error {
	return errAt(c, cerr.KindExpectedPrimaryExpression, "expected an operator or end of expression")
}

func errExpectedPrimary(c *cursor.Cursor) error {
	return errAt(c, cerr.KindExpectedPrimaryExpression, "expected a primary expression")
}

func errExpectedPragmatic(c *cursor.Cursor) error {
	return errAt(c, cerr.KindExpectedPragmaticDeclaration,
		"expected a modifier or a declarative keyword (def, fn, class, main, import, lib, using)")
}

func errExpectedToken(c *cursor.Cursor, want token.Kind) error {
	return errAt(c, cerr.KindParserExpectedToken,
		"expected "+string(want)+", found "+string(c.Get().Kind))
}

func errInvalidForLoop(c *cursor.Cursor) error {
	return errAt(c, cerr.KindInvalidForLoopSyntax, "expected for (init; cond; step) { body }")
}

// expect consumes the head token if it matches want, else fails.
func expect(c *cursor.Cursor, want token.Kind) error {
	if c.Get().Kind != want {
		return errExpectedToken(c, want)
	}
	c.Advance(1)
	return nil
}
