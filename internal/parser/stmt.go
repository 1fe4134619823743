package parser

import (
	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/scope"
	"github.com/ayxg/cand/internal/token"
)

// parseFunctionalBlock parses a '{'-delimited body of functional statements
// (spec.md §4.J, "functional context"): method/main bodies, and the bodies
// the if/while/for constructs nest their own typed blocks inside.
func parseFunctionalBlock(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	return parseBlock(c, tree, cst.KindFunctionalBlock, parseFunctionalStatement)
}

// parsePragmaticBlock parses a '{'-delimited body of pragmatic statements:
// class and library bodies.
func parsePragmaticBlock(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	return parseBlock(c, tree, cst.KindPragmaticBlock, parsePragmaticStatement)
}

func parseConditionalBlock(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	return parseBlock(c, tree, cst.KindConditionalBlock, parseFunctionalStatement)
}

func parseIterativeBlock(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	return parseBlock(c, tree, cst.KindIterativeBlock, parseFunctionalStatement)
}

func parseBlock(c *cursor.Cursor, tree *cst.Tree, kind cst.Kind, stmt func(*cursor.Cursor, *cst.Tree) (int, error)) (int, error) {
	if c.Get().Kind != token.KindLBrace {
		return 0, errExpectedToken(c, token.KindLBrace)
	}
	line, col := c.Line(), c.Col()
	r, err := scope.Find(c)
	if err != nil {
		return 0, err
	}
	inner := cursor.Slice(c.Tokens(), r.ContainedBegin, r.ContainedEnd, token.NoSpan)
	n := tree.New(kind, "", line, col)
	for !inner.Get().IsEOF() {
		s, err := stmt(inner, tree)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(n, s)
	}
	c.AdvanceTo(r.End)
	return n, nil
}

// parseParenExpr parses a '('-delimited expression, such as an if/while
// condition.
func parseParenExpr(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	if c.Get().Kind != token.KindLParen {
		return 0, errExpectedToken(c, token.KindLParen)
	}
	r, err := scope.Find(c)
	if err != nil {
		return 0, err
	}
	node, err := ParseExpression(c.Tokens()[r.ContainedBegin:r.ContainedEnd], tree)
	if err != nil {
		return 0, err
	}
	c.AdvanceTo(r.End)
	return node, nil
}

// parseFunctionalStatement dispatches one statement inside a functional
// body: return/break/continue get their own grammar, every other
// declarative or modifier keyword falls through to the pragmatic dispatch
// table (spec.md §4.J: "functional context additionally accepts if, while,
// for, return, and expression statements" — nested local declarations and
// the if/while/for/switch forms themselves are handled identically whether
// they appear at the top level or inside a body), and anything else is
// parsed as an expression statement.
func parseFunctionalStatement(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	switch c.Get().Kind {
	case token.KindKwReturn:
		line, col := c.Line(), c.Col()
		c.Advance(1)
		n := tree.New(cst.KindOf(token.KindKwReturn), "", line, col)
		if c.Get().Kind != token.KindSemicolon {
			val, err := parseBoundExpression(c, tree, token.KindSemicolon)
			if err != nil {
				return 0, err
			}
			tree.AppendChild(n, val)
		}
		return n, expect(c, token.KindSemicolon)

	case token.KindKwBreak, token.KindKwContinue:
		n := tree.NewFromToken(c.Get())
		c.Advance(1)
		return n, expect(c, token.KindSemicolon)

	default:
		if c.Get().Trait().IsModifier || c.Get().Trait().IsDeclarative {
			return parsePragmaticStatement(c, tree)
		}
		return parseExpressionStatement(c, tree)
	}
}

func parseExpressionStatement(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	node, err := parseBoundExpression(c, tree, token.KindSemicolon)
	if err != nil {
		return 0, err
	}
	return node, expect(c, token.KindSemicolon)
}

// parseIfChain implements spec.md §4.J's if-elif-else grammar: `if (expr) {
// body };` followed by zero or more `elif (expr) { body }` and one optional
// `else { body }`, all folded into a single IfStatement node. cxif/cxelif/
// cxelse (the compile-time conditional family) share the same shape.
func parseIfChain(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	ifKind := c.Get().Kind

	var elifKind, elseKind token.Kind
	if ifKind == token.KindKwCxif {
		elifKind, elseKind = token.KindKwCxelif, token.KindKwCxelse
	} else {
		elifKind, elseKind = token.KindKwElif, token.KindKwElse
	}

	stmt := tree.New(cst.KindIfStatement, "", line, col)
	branch, err := parseConditionalBranch(c, tree, ifKind)
	if err != nil {
		return 0, err
	}
	tree.AppendChild(stmt, branch)

	for c.Get().Kind == elifKind {
		branch, err := parseConditionalBranch(c, tree, elifKind)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(stmt, branch)
	}

	if c.Get().Kind == elseKind {
		eline, ecol := c.Line(), c.Col()
		c.Advance(1)
		body, err := parseConditionalBlock(c, tree)
		if err != nil {
			return 0, err
		}
		elseBranch := tree.New(cst.KindOf(elseKind), "", eline, ecol)
		tree.AppendChild(elseBranch, body)
		tree.AppendChild(stmt, elseBranch)
	}

	return stmt, expect(c, token.KindSemicolon)
}

// parseConditionalBranch parses one `<kw> (cond) { body }` branch: the if
// itself, or an elif.
func parseConditionalBranch(c *cursor.Cursor, tree *cst.Tree, kw token.Kind) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1)
	cond, err := parseParenExpr(c, tree)
	if err != nil {
		return 0, err
	}
	body, err := parseConditionalBlock(c, tree)
	if err != nil {
		return 0, err
	}
	branch := tree.New(cst.KindOf(kw), "", line, col)
	tree.AppendChild(branch, cond)
	tree.AppendChild(branch, body)
	return branch, nil
}

// parseWhile implements `while (cond) { body };`.
func parseWhile(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1)
	cond, err := parseParenExpr(c, tree)
	if err != nil {
		return 0, err
	}
	body, err := parseConditionalBlock(c, tree)
	if err != nil {
		return 0, err
	}
	n := tree.New(cst.KindOf(token.KindKwWhile), "", line, col)
	tree.AppendChild(n, cond)
	tree.AppendChild(n, body)
	return n, expect(c, token.KindSemicolon)
}

// parseFor implements `for (init; cond; step) { body };`, where init is
// parsed as a variable declaration (spec.md §4.J) and cond/step as
// expressions.
func parseFor(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1)
	if c.Get().Kind != token.KindLParen {
		return 0, errInvalidForLoop(c)
	}
	_, parts, err := scope.FindSeparated(c, token.KindSemicolon, true)
	if err != nil {
		return 0, err
	}
	if len(parts) != 3 {
		return 0, errInvalidForLoop(c)
	}

	initCursor := cursor.Slice(c.Tokens(), parts[0][0], parts[0][1], token.NoSpan)
	init, err := parseForInit(initCursor, tree)
	if err != nil {
		return 0, err
	}
	cond, err := ParseExpression(c.Tokens()[parts[1][0]:parts[1][1]], tree)
	if err != nil {
		return 0, err
	}
	step, err := ParseExpression(c.Tokens()[parts[2][0]:parts[2][1]], tree)
	if err != nil {
		return 0, err
	}

	r, err := scope.Find(c)
	if err != nil {
		return 0, err
	}
	c.AdvanceTo(r.End)

	body, err := parseIterativeBlock(c, tree)
	if err != nil {
		return 0, err
	}

	n := tree.New(cst.KindOf(token.KindKwFor), "", line, col)
	tree.AppendChild(n, init)
	tree.AppendChild(n, cond)
	tree.AppendChild(n, step)
	tree.AppendChild(n, body)
	return n, expect(c, token.KindSemicolon)
}

// parseSwitch implements a conventional switch/case/default dispatch.
// spec.md §4.J lists switch/case/default among the recognized declarative
// keywords but does not give their grammar; this is the minimal C-family
// form consistent with the rest of the catalogue's keyword set.
func parseSwitch(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1)
	subject, err := parseParenExpr(c, tree)
	if err != nil {
		return 0, err
	}

	if c.Get().Kind != token.KindLBrace {
		return 0, errExpectedToken(c, token.KindLBrace)
	}
	r, err := scope.Find(c)
	if err != nil {
		return 0, err
	}
	inner := cursor.Slice(c.Tokens(), r.ContainedBegin, r.ContainedEnd, token.NoSpan)

	n := tree.New(cst.KindOf(token.KindKwSwitch), "", line, col)
	tree.AppendChild(n, subject)

	for !inner.Get().IsEOF() {
		switch inner.Get().Kind {
		case token.KindKwCase:
			cline, ccol := inner.Line(), inner.Col()
			inner.Advance(1)
			cond, err := parseBoundExpression(inner, tree, token.KindColon)
			if err != nil {
				return 0, err
			}
			if err := expect(inner, token.KindColon); err != nil {
				return 0, err
			}
			body, err := parseFunctionalBlock(inner, tree)
			if err != nil {
				return 0, err
			}
			clause := tree.New(cst.KindOf(token.KindKwCase), "", cline, ccol)
			tree.AppendChild(clause, cond)
			tree.AppendChild(clause, body)
			tree.AppendChild(n, clause)

		case token.KindKwDefault:
			dline, dcol := inner.Line(), inner.Col()
			inner.Advance(1)
			if err := expect(inner, token.KindColon); err != nil {
				return 0, err
			}
			body, err := parseFunctionalBlock(inner, tree)
			if err != nil {
				return 0, err
			}
			clause := tree.New(cst.KindOf(token.KindKwDefault), "", dline, dcol)
			tree.AppendChild(clause, body)
			tree.AppendChild(n, clause)

		default:
			return 0, errExpectedPragmatic(inner)
		}
	}

	c.AdvanceTo(r.End)
	return n, expect(c, token.KindSemicolon)
}
