package parser

import (
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/scope"
	"github.com/ayxg/cand/internal/token"
)

// ParseProgram runs spec.md §4.J's parse_program: a loop over pragmatic
// statements until end of input, returning the root Program node.
func ParseProgram(tokens []token.Token, tree *cst.Tree) (int, error) {
	c := cursor.New(tokens, token.NoSpan)
	root := tree.New(cst.KindProgram, "", 0, 0)
	for !c.Get().IsEOF() {
		stmt, err := parsePragmaticStatement(c, tree)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(root, stmt)
	}
	return root, nil
}

// parseModifiers consumes a run of modifier keywords (private, public,
// const, static, ref) and wraps them in a Modifiers node. ok is false if
// none were present, in which case no node was allocated.
func parseModifiers(c *cursor.Cursor, tree *cst.Tree) (node int, ok bool) {
	if !c.Get().Trait().IsModifier {
		return 0, false
	}
	n := tree.New(cst.KindModifiers, "", c.Line(), c.Col())
	for c.Get().Trait().IsModifier {
		tree.AppendChild(n, tree.NewFromToken(c.Get()))
		c.Advance(1)
	}
	return n, true
}

// parsePragmaticStatement dispatches on the declarative keyword following
// an optional modifier run (spec.md §4.J dispatch table).
func parsePragmaticStatement(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	mods, hasMods := parseModifiers(c, tree)

	switch c.Get().Kind {
	case token.KindKwDef:
		return parseVariableDeclaration(c, tree, mods, hasMods)
	case token.KindKwFn:
		return parseMethodDeclaration(c, tree, mods, hasMods)
	case token.KindKwClass:
		return parseClassDeclaration(c, tree, mods, hasMods)
	case token.KindKwLib:
		return parseLibraryDeclaration(c, tree, mods, hasMods)
	case token.KindKwUsing:
		if hasMods {
			return 0, errAt(c, cerr.KindUserSyntaxError, "use declarations may not be modified")
		}
		return parseUseDeclaration(c, tree)
	case token.KindKwMain:
		if hasMods {
			return 0, errAt(c, cerr.KindUserSyntaxError, "main may not be modified")
		}
		return parseMainDeclaration(c, tree)
	case token.KindKwImport:
		if hasMods {
			return 0, errAt(c, cerr.KindUserSyntaxError, "import may not be modified")
		}
		return parseImportDeclaration(c, tree)
	case token.KindKwIf, token.KindKwCxif:
		return parseIfChain(c, tree)
	case token.KindKwWhile:
		return parseWhile(c, tree)
	case token.KindKwFor:
		return parseFor(c, tree)
	case token.KindKwSwitch:
		return parseSwitch(c, tree)
	case token.KindKwTemplate:
		return 0, errAt(c, cerr.KindNotImplemented, "template declarations are not implemented")
	default:
		return 0, errExpectedPragmatic(c)
	}
}

func attachMods(tree *cst.Tree, n, mods int, hasMods bool) {
	if hasMods {
		tree.PrependChild(n, mods)
	}
}

// parseVariableDeclaration implements `<mods><def><type-expr><@><ident><:
// <init-expr>>?;`. A trailing `: init-expr` turns the declaration into a
// definition, mirroring the Declaration/Definition split the catalogue's
// CST kinds draw for every pragmatic construct.
func parseVariableDeclaration(c *cursor.Cursor, tree *cst.Tree, mods int, hasMods bool) (int, error) {
	n, err := parseVariableDeclCore(c, tree, mods, hasMods, token.KindSemicolon)
	if err != nil {
		return 0, err
	}
	return n, expect(c, token.KindSemicolon)
}

// parseForInit parses a for-loop's init clause: a variable declaration,
// optionally modified, with no trailing terminator of its own (the
// for-grammar's own ';' already bounds it via scope.FindSeparated).
func parseForInit(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	mods, hasMods := parseModifiers(c, tree)
	if c.Get().Kind != token.KindKwDef {
		return 0, errExpectedToken(c, token.KindKwDef)
	}
	return parseVariableDeclCore(c, tree, mods, hasMods, "")
}

// parseVariableDeclCore parses `<def><type-expr>@<ident><: <init-expr>>?`
// without consuming a trailing terminator; initTerm is the token kind that
// bounds an init-expr (the caller's own statement terminator).
func parseVariableDeclCore(c *cursor.Cursor, tree *cst.Tree, mods int, hasMods bool, initTerm token.Kind) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // def

	typeExpr, err := parseTypeExpr(c, tree)
	if err != nil {
		return 0, err
	}
	if err := expect(c, token.KindCommercialAt); err != nil {
		return 0, err
	}
	if c.Get().Kind != token.KindIdent {
		return 0, errExpectedToken(c, token.KindIdent)
	}
	ident := tree.NewFromToken(c.Get())
	c.Advance(1)

	var n int
	if c.Get().Kind == token.KindColon {
		c.Advance(1)
		init, err := parseInitExpr(c, tree, initTerm)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindVariableDefinition, "", line, col)
		tree.AppendChild(n, typeExpr)
		tree.AppendChild(n, ident)
		tree.AppendChild(n, init)
	} else {
		n = tree.New(cst.KindVariableDeclaration, "", line, col)
		tree.AppendChild(n, typeExpr)
		tree.AppendChild(n, ident)
	}
	attachMods(tree, n, mods, hasMods)
	return n, nil
}

// parseInitExpr parses an init-expr up to (but not consuming) term; term is
// Semicolon for a normal variable declaration, or the zero Kind for a
// for-loop init clause, where the remaining tokens in the (already-split)
// sub-range simply run to its end.
func parseInitExpr(c *cursor.Cursor, tree *cst.Tree, term token.Kind) (int, error) {
	if term == "" {
		return ParseExpression(c.Tokens()[c.Pos():c.End()], tree)
	}
	return parseBoundExpression(c, tree, term)
}

// parseBoundExpression runs the expression parser over the tokens from c's
// current position up to (not including) the next occurrence of end at
// depth zero, then advances c past that range.
func parseBoundExpression(c *cursor.Cursor, tree *cst.Tree, end token.Kind) (int, error) {
	start := c.Pos()
	depth := 0
	i := start
	for {
		tk := c.Peek(i - c.Pos())
		if tk.IsEOF() {
			return 0, errExpectedToken(c, end)
		}
		if tk.Trait().IsOpener {
			depth++
		} else if tk.Trait().IsCloser {
			depth--
		} else if depth == 0 && tk.Kind == end {
			break
		}
		i++
	}
	node, err := ParseExpression(c.Tokens()[start:i], tree)
	if err != nil {
		return 0, err
	}
	c.AdvanceTo(i)
	return node, nil
}

// parseMethodDeclaration implements `<mods><fn>@<ident><signature><:
// <body>>?;`.
func parseMethodDeclaration(c *cursor.Cursor, tree *cst.Tree, mods int, hasMods bool) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // fn

	if err := expect(c, token.KindCommercialAt); err != nil {
		return 0, err
	}
	if c.Get().Kind != token.KindIdent {
		return 0, errExpectedToken(c, token.KindIdent)
	}
	ident := tree.NewFromToken(c.Get())
	c.Advance(1)

	sig, err := parseMethodSignature(c, tree)
	if err != nil {
		return 0, err
	}

	var n int
	if c.Get().Kind == token.KindColon {
		c.Advance(1)
		body, err := parseFunctionalBlock(c, tree)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindMethodDefinition, "", line, col)
		tree.AppendChild(n, ident)
		tree.AppendChild(n, sig)
		tree.AppendChild(n, body)
	} else {
		n = tree.New(cst.KindMethodDeclaration, "", line, col)
		tree.AppendChild(n, ident)
		tree.AppendChild(n, sig)
	}
	attachMods(tree, n, mods, hasMods)
	return n, expect(c, token.KindSemicolon)
}

// parseMethodSignature implements the six signature forms of spec.md §4.J.
// A params-less signature still produces a MethodParameterList, holding a
// single MethodParameter(MethodVoid), and the return type is always wrapped
// in a MethodReturnType node, matching spec.md §8's worked example for
// `fn @f:` → MethodSignature(MethodParameterList(MethodParameter(MethodVoid)),
// MethodReturnType(MethodVoid)).
func parseMethodSignature(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	n := tree.New(cst.KindMethodSignature, "", line, col)

	var params int
	if c.Get().Kind == token.KindLParen {
		p, err := parseParameterList(c, tree)
		if err != nil {
			return 0, err
		}
		params = p
	} else {
		params = tree.New(cst.KindMethodParameterList, "", line, col)
		voidParam := tree.New(cst.KindMethodParameter, "", line, col)
		tree.AppendChild(voidParam, tree.New(cst.KindMethodVoid, "", line, col))
		tree.AppendChild(params, voidParam)
	}

	var retType int
	switch {
	case c.Get().Kind == token.KindColon:
		c.Advance(1)
		retType = tree.New(cst.KindMethodVoid, "", c.Line(), c.Col())

	case c.Get().Kind == token.KindGt:
		c.Advance(1)
		if c.Get().Kind == token.KindColon {
			c.Advance(1)
			retType = tree.New(cst.KindOf(token.KindKwAny), "any", c.Line(), c.Col())
		} else {
			typeExpr, err := parseTypeExpr(c, tree)
			if err != nil {
				return 0, err
			}
			if err := expect(c, token.KindColon); err != nil {
				return 0, err
			}
			retType = typeExpr
		}

	default:
		return 0, errExpectedToken(c, token.KindColon)
	}

	ret := tree.New(cst.KindMethodReturnType, "", line, col)
	tree.AppendChild(ret, retType)

	tree.AppendChild(n, params)
	tree.AppendChild(n, ret)
	return n, nil
}

// parseParameterList parses a '('-delimited, comma-separated parameter
// list; each parameter is `<mods?><type-expr?>@<ident>`, or a bare
// identifier (implicit `any` type, no `@`).
func parseParameterList(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	r, parts, err := scope.FindSeparated(c, token.KindComma, false)
	if err != nil {
		return 0, err
	}
	n := tree.New(cst.KindMethodParameterList, "", line, col)
	for _, part := range parts {
		pc := cursor.Slice(c.Tokens(), part[0], part[1], token.NoSpan)
		param, err := parseParameter(pc, tree)
		if err != nil {
			return 0, err
		}
		tree.AppendChild(n, param)
	}
	c.AdvanceTo(r.End)
	return n, nil
}

func parseParameter(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	mods, hasMods := parseModifiers(c, tree)

	if _, hasAt := c.FindForward(token.KindCommercialAt); !hasAt {
		if c.Get().Kind != token.KindIdent {
			return 0, errExpectedToken(c, token.KindIdent)
		}
		ident := tree.NewFromToken(c.Get())
		c.Advance(1)
		n := tree.New(cst.KindMethodParameter, "", line, col)
		tree.AppendChild(n, ident)
		attachMods(tree, n, mods, hasMods)
		return n, nil
	}

	typeExpr, err := parseTypeExpr(c, tree)
	if err != nil {
		return 0, err
	}
	if err := expect(c, token.KindCommercialAt); err != nil {
		return 0, err
	}
	if c.Get().Kind != token.KindIdent {
		return 0, errExpectedToken(c, token.KindIdent)
	}
	ident := tree.NewFromToken(c.Get())
	c.Advance(1)

	n := tree.New(cst.KindMethodParameter, "", line, col)
	tree.AppendChild(n, typeExpr)
	tree.AppendChild(n, ident)
	attachMods(tree, n, mods, hasMods)
	return n, nil
}

// parseClassDeclaration implements `<mods><class>@<ident><: <body>>?;`.
func parseClassDeclaration(c *cursor.Cursor, tree *cst.Tree, mods int, hasMods bool) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // class

	if err := expect(c, token.KindCommercialAt); err != nil {
		return 0, err
	}
	if c.Get().Kind != token.KindIdent {
		return 0, errExpectedToken(c, token.KindIdent)
	}
	ident := tree.NewFromToken(c.Get())
	c.Advance(1)

	var n int
	if c.Get().Kind == token.KindColon {
		c.Advance(1)
		body, err := parsePragmaticBlock(c, tree)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindClassDefinition, "", line, col)
		tree.AppendChild(n, ident)
		tree.AppendChild(n, body)
	} else {
		n = tree.New(cst.KindClassDeclaration, "", line, col)
		tree.AppendChild(n, ident)
	}
	attachMods(tree, n, mods, hasMods)
	return n, expect(c, token.KindSemicolon)
}

// parseLibraryDeclaration implements `<mods><lib><ident?><: <body>>?;`; an
// unnamed library (`lib : { ... };`) is valid per spec.md §4.J.
func parseLibraryDeclaration(c *cursor.Cursor, tree *cst.Tree, mods int, hasMods bool) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // lib

	var ident int
	hasIdent := false
	if c.Get().Kind == token.KindIdent {
		ident = tree.NewFromToken(c.Get())
		c.Advance(1)
		hasIdent = true
	}

	var n int
	if c.Get().Kind == token.KindColon {
		c.Advance(1)
		body, err := parsePragmaticBlock(c, tree)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindLibraryDefinition, "", line, col)
		if hasIdent {
			tree.AppendChild(n, ident)
		}
		tree.AppendChild(n, body)
	} else {
		n = tree.New(cst.KindLibraryDeclaration, "", line, col)
		if hasIdent {
			tree.AppendChild(n, ident)
		}
	}
	attachMods(tree, n, mods, hasMods)
	return n, expect(c, token.KindSemicolon)
}

// parseUseDeclaration dispatches on the token after `using` (spec.md §4.J
// spells the keyword "use" in prose; the catalogue spells it "using") into
// one of the five inclusion/alias forms. The distinguishing token is
// syntactic: a leading `namespace` or `lib` keyword picks the corresponding
// inclusion form, a bare identifier starts a type alias.
func parseUseDeclaration(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // using

	var n int
	switch c.Get().Kind {
	case token.KindKwNamespace:
		c.Advance(1)
		if c.Get().Kind != token.KindIdent {
			return 0, errExpectedToken(c, token.KindIdent)
		}
		ns := tree.NewFromToken(c.Get())
		c.Advance(1)
		if c.Get().Kind == token.KindDoubleColon {
			c.Advance(1)
			if c.Get().Kind != token.KindIdent {
				return 0, errExpectedToken(c, token.KindIdent)
			}
			obj := tree.NewFromToken(c.Get())
			c.Advance(1)
			n = tree.New(cst.KindNamespaceObjectInclusion, "", line, col)
			tree.AppendChild(n, ns)
			tree.AppendChild(n, obj)
		} else {
			n = tree.New(cst.KindNamespaceInclusion, "", line, col)
			tree.AppendChild(n, ns)
		}

	case token.KindKwLib:
		c.Advance(1)
		if c.Get().Kind != token.KindIdent {
			return 0, errExpectedToken(c, token.KindIdent)
		}
		lib := tree.NewFromToken(c.Get())
		c.Advance(1)
		if c.Get().Kind == token.KindAssign {
			c.Advance(1)
			typeExpr, err := parseTypeExpr(c, tree)
			if err != nil {
				return 0, err
			}
			n = tree.New(cst.KindLibraryTypeAlias, "", line, col)
			tree.AppendChild(n, lib)
			tree.AppendChild(n, typeExpr)
		} else {
			n = tree.New(cst.KindLibraryNamespaceInclusion, "", line, col)
			tree.AppendChild(n, lib)
		}

	case token.KindIdent:
		ident := tree.NewFromToken(c.Get())
		c.Advance(1)
		if err := expect(c, token.KindAssign); err != nil {
			return 0, err
		}
		typeExpr, err := parseTypeExpr(c, tree)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindTypeAlias, "", line, col)
		tree.AppendChild(n, ident)
		tree.AppendChild(n, typeExpr)

	default:
		return 0, errExpectedPragmatic(c)
	}

	return n, expect(c, token.KindSemicolon)
}

// parseMainDeclaration implements the program entry point. A named main
// (`main foo : { ... };`) is recognized but not implemented — it is
// rejected with cerr.ErrNamedMainNotImplemented rather than misparsed.
func parseMainDeclaration(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // main

	if c.Get().Kind == token.KindIdent {
		return 0, cerr.Wrap(cerr.CategoryParser, cerr.KindNotImplemented,
			"named main entry points are not implemented",
			cerr.Location{Line: c.Line(), Col: c.Col()}, cerr.ErrNamedMainNotImplemented)
	}

	var n int
	if c.Get().Kind == token.KindColon {
		c.Advance(1)
		body, err := parseFunctionalBlock(c, tree)
		if err != nil {
			return 0, err
		}
		n = tree.New(cst.KindMainDefinition, "", line, col)
		tree.AppendChild(n, body)
	} else {
		n = tree.New(cst.KindMainDeclaration, "", line, col)
	}
	return n, expect(c, token.KindSemicolon)
}

// parseImportDeclaration implements `<import><ident>;`.
func parseImportDeclaration(c *cursor.Cursor, tree *cst.Tree) (int, error) {
	line, col := c.Line(), c.Col()
	c.Advance(1) // import

	if c.Get().Kind != token.KindIdent {
		return 0, errExpectedToken(c, token.KindIdent)
	}
	ident := tree.NewFromToken(c.Get())
	c.Advance(1)

	n := tree.New(cst.KindImportDeclaration, "", line, col)
	tree.AppendChild(n, ident)
	return n, expect(c, token.KindSemicolon)
}
