// Package lexer turns a validated byte buffer into a token sequence
// (spec.md §4.D). The scanner dispatches on the head byte of the
// remaining input; spec.md §9 prefers this single-byte-dispatch form over
// the source's function-pointer sub-lexer array, since both are
// behaviorally equivalent and dispatch-by-switch is O(1) and
// self-documenting.
package lexer

import (
	"fmt"
	"strings"

	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/charset"
	"github.com/ayxg/cand/internal/token"
)

// Lexer scans one file's buffer into a token vector. It holds no state
// beyond the scan position and is not reused across files.
type Lexer struct {
	src       []byte
	pos       int
	line      int
	col       int
	fileIndex int
}

// New creates a Lexer over src. fileIndex is stamped onto every token's
// span (0 is reserved for "no file / synthetic", see spec.md §3).
func New(src []byte, fileIndex int) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1, col: 1, fileIndex: fileIndex}
}

// Run lexes the entire buffer and returns the resulting token vector with
// whitespace, newlines, and comments already elided (spec.md §4.D
// post-pass; §8 invariant 2). On success the last token is never EOF —
// callers that need an explicit EOF sentinel get one from the cursor.
func (l *Lexer) Run() ([]token.Token, error) {
	var out []token.Token
	for {
		tk, skip, err := l.next()
		if err != nil {
			return nil, err
		}
		if l.atEOF() && tk.Kind == token.KindEOF {
			break
		}
		if !skip {
			out = append(out, tk)
		}
	}
	return out, nil
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte(off int) (byte, bool) {
	i := l.pos + off
	if i < 0 || i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

func (l *Lexer) head() byte {
	b, _ := l.peekByte(0)
	return b
}

func (l *Lexer) span(begin int) token.Span {
	return token.Span{
		FileIndex: l.fileIndex,
		BeginOff:  begin,
		EndOff:    l.pos,
		Line:      l.line,
		Col:       l.col - (l.pos - begin),
	}
}

// advance consumes n bytes, updating line/col bookkeeping. It must not be
// called across a newline that hasn't already been classified by the
// caller (the newline sub-lexer advances one byte at a time for this
// reason).
func (l *Lexer) advance(n int) {
	for i := 0; i < n && !l.atEOF(); i++ {
		if l.src[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// next dispatches on the head byte and returns exactly one token (which
// may be a kind the caller elides, such as whitespace) or a fatal error.
// At end of input it returns the EOF sentinel with skip=false so Run can
// detect termination; Run never appends it.
func (l *Lexer) next() (token.Token, bool, error) {
	if l.atEOF() {
		return token.EOF(l.span(l.pos)), false, nil
	}

	begin := l.pos
	b := l.head()

	switch {
	case b == '/':
		return l.lexSolidus(begin)
	case b == '\'':
		return l.lexQuotation(begin)
	case charset.IsNewline(b):
		l.advance(1)
		return token.Token{Kind: token.Kind("Newline")}, true, nil
	case charset.IsWhitespace(b):
		l.advance(1)
		return token.Token{Kind: token.Kind("Whitespace")}, true, nil
	case charset.IsDigit(b):
		return l.lexNumber(begin)
	case b == '#':
		return l.lexDirective(begin)
	case charset.IsIdentStart(b):
		return l.lexIdentOrKeyword(begin)
	default:
		return l.lexOperatorOrPunct(begin)
	}
}

func (l *Lexer) fail(kind cerr.Kind, msg string) error {
	return cerr.At(cerr.CategoryLexer, kind, msg, cerr.Location{Line: l.line, Col: l.col})
}

// lexSolidus handles '//' line comments, '///' block comments, '/' and
// '/='.
func (l *Lexer) lexSolidus(begin int) (token.Token, bool, error) {
	b1, ok1 := l.peekByte(1)
	if ok1 && b1 == '/' {
		b2, ok2 := l.peekByte(2)
		if ok2 && b2 == '/' {
			return l.lexBlockComment(begin)
		}
		return l.lexLineComment(begin)
	}
	if ok1 && b1 == '=' {
		l.advance(2)
		return token.NewAt(token.KindSlashAssign, l.span(begin)), false, nil
	}
	l.advance(1)
	return token.NewAt(token.KindSlash, l.span(begin)), false, nil
}

func (l *Lexer) lexLineComment(begin int) (token.Token, bool, error) {
	for !l.atEOF() && !charset.IsNewline(l.head()) {
		l.advance(1)
	}
	return token.Token{Kind: token.Kind("LineComment")}, true, nil
}

func (l *Lexer) lexBlockComment(begin int) (token.Token, bool, error) {
	l.advance(3) // opening ///
	for {
		if l.atEOF() {
			return token.Token{}, false, l.fail(cerr.KindUnclosedComment, "unterminated block comment")
		}
		if l.head() == '/' {
			b1, ok1 := l.peekByte(1)
			b2, ok2 := l.peekByte(2)
			if ok1 && ok2 && b1 == '/' && b2 == '/' {
				l.advance(3)
				return token.Token{Kind: token.Kind("BlockComment")}, true, nil
			}
		}
		l.advance(1)
	}
}

// lexQuotation handles single-quoted string literals and the 'c'-suffixed
// byte-literal form. '\' escapes the next byte; two consecutive '\\' are
// themselves an escaped backslash and do not consume the following quote
// (spec.md §4.D).
func (l *Lexer) lexQuotation(begin int) (token.Token, bool, error) {
	l.advance(1) // opening '
	var sb strings.Builder
	for {
		if l.atEOF() {
			return token.Token{}, false, l.fail(cerr.KindLexerUnknownElement, "unterminated string literal")
		}
		b := l.head()
		if b == '\\' {
			sb.WriteByte(b)
			l.advance(1)
			if l.atEOF() {
				return token.Token{}, false, l.fail(cerr.KindLexerUnknownElement, "unterminated string literal")
			}
			sb.WriteByte(l.head())
			l.advance(1)
			continue
		}
		if b == '\'' {
			l.advance(1) // closing '
			break
		}
		sb.WriteByte(b)
		l.advance(1)
	}

	kind := token.KindStringLit
	if c, ok := l.peekByte(0); ok && c == 'c' {
		l.advance(1)
		kind = token.KindByteLit
	}
	return token.NewLiteral(kind, sb.String(), l.span(begin)), false, nil
}

// lexNumber handles integer/unsigned/real/bool/byte numeric literals, per
// the suffix rules in spec.md §4.D and §6.
func (l *Lexer) lexNumber(begin int) (token.Token, bool, error) {
	start := l.pos
	for !l.atEOF() && charset.IsDigit(l.head()) {
		l.advance(1)
	}
	digits := string(l.src[start:l.pos])

	// 0b / 1b bool literal: exactly one digit followed by 'b'.
	if digits == "0" || digits == "1" {
		if c, ok := l.peekByte(0); ok && c == 'b' {
			l.advance(1)
			return token.NewLiteral(token.KindBoolLit, digits, l.span(begin)), false, nil
		}
	}

	if c, ok := l.peekByte(0); ok {
		switch c {
		case 'u':
			l.advance(1)
			return token.NewLiteral(token.KindUintLit, digits, l.span(begin)), false, nil
		case 'c':
			l.advance(1)
			return token.NewLiteral(token.KindByteLit, digits, l.span(begin)), false, nil
		}
	}

	// '...' immediately following digits belongs to the ellipsis token,
	// not to a real literal: stop before consuming the dots.
	if b0, ok0 := l.peekByte(0); ok0 && b0 == '.' {
		if b1, ok1 := l.peekByte(1); ok1 && b1 == '.' {
			return token.NewLiteral(token.KindIntLit, digits, l.span(begin)), false, nil
		}
		if b1, ok1 := l.peekByte(1); ok1 && charset.IsDigit(b1) {
			l.advance(1)
			fracStart := l.pos
			for !l.atEOF() && charset.IsDigit(l.head()) {
				l.advance(1)
			}
			real := digits + "." + string(l.src[fracStart:l.pos])
			return token.NewLiteral(token.KindRealLit, real, l.span(begin)), false, nil
		}
	}

	return token.NewLiteral(token.KindIntLit, digits, l.span(begin)), false, nil
}

// lexDirective handles '#' followed by an identifier-shaped tail; the
// combined spelling must name one of the ten directive tokens.
func (l *Lexer) lexDirective(begin int) (token.Token, bool, error) {
	l.advance(1) // '#'
	start := l.pos
	for !l.atEOF() && charset.IsAlnumUnderscore(l.head()) {
		l.advance(1)
	}
	spelling := "#" + string(l.src[start:l.pos])
	kind, ok := token.DirectiveKind(spelling)
	if !ok {
		return token.Token{}, false, l.fail(cerr.KindLexerUnknownDirective, fmt.Sprintf("unknown directive %q", spelling))
	}
	return token.NewAt(kind, l.span(begin)), false, nil
}

// lexIdentOrKeyword reads [A-Za-z_][A-Za-z0-9_]*; keyword spellings take
// priority over the identifier fallback.
func (l *Lexer) lexIdentOrKeyword(begin int) (token.Token, bool, error) {
	start := l.pos
	for !l.atEOF() && charset.IsAlnumUnderscore(l.head()) {
		l.advance(1)
	}
	text := string(l.src[start:l.pos])
	if kind, ok := token.KeywordKind(text); ok {
		return token.NewAt(kind, l.span(begin)), false, nil
	}
	return token.NewLiteral(token.KindIdent, text, l.span(begin)), false, nil
}

// operatorTable is tried longest-prefix-first so that e.g. "<<=" is never
// shadowed by "<<" or "<" (spec.md §4.D, grounded on original_source's
// caoco_lexerv2.h dispatch order).
var operatorTable = []struct {
	spelling string
	kind     token.Kind
}{
	{"<<=", token.KindShlAssign},
	{">>=", token.KindShrAssign},
	{"<=>", token.KindSpaceship},
	{"==", token.KindEq},
	{"!=", token.KindNe},
	{"<=", token.KindLe},
	{">=", token.KindGe},
	{"+=", token.KindPlusAssign},
	{"-=", token.KindMinusAssign},
	{"*=", token.KindStarAssign},
	{"%=", token.KindPercentAssign},
	{"&=", token.KindAmpAssign},
	{"|=", token.KindPipeAssign},
	{"^=", token.KindXorAssign},
	{"&&", token.KindLogicalAnd},
	{"||", token.KindLogicalOr},
	{"++", token.KindInc},
	{"--", token.KindDec},
	{"<<", token.KindShl},
	{">>", token.KindShr},
	{"...", token.KindEllipsis},
	{"::", token.KindDoubleColon},
	{"+", token.KindPlus},
	{"-", token.KindMinus},
	{"*", token.KindStar},
	{"%", token.KindPercent},
	{"&", token.KindAmp},
	{"|", token.KindPipe},
	{"^", token.KindXor},
	{"~", token.KindBnot},
	{"=", token.KindAssign},
	{"!", token.KindBang},
	{"<", token.KindLt},
	{">", token.KindGt},
	{"(", token.KindLParen},
	{")", token.KindRParen},
	{"[", token.KindLBracket},
	{"]", token.KindRBracket},
	{"{", token.KindLBrace},
	{"}", token.KindRBrace},
	{",", token.KindComma},
	{".", token.KindPeriod},
	{":", token.KindColon},
	{";", token.KindSemicolon},
	{"@", token.KindCommercialAt},
	{"$", token.KindDollar},
	{"?", token.KindQuestion},
	{"`", token.KindBacktick},
	{"\\", token.KindBackslash},
}

func (l *Lexer) lexOperatorOrPunct(begin int) (token.Token, bool, error) {
	remaining := l.src[l.pos:]
	for _, cand := range operatorTable {
		if strings.HasPrefix(string(remaining), cand.spelling) {
			l.advance(len(cand.spelling))
			return token.NewAt(cand.kind, l.span(begin)), false, nil
		}
	}

	b := l.head()
	msg := fmt.Sprintf("unexpected byte %q", b)
	if b == '"' {
		msg = `unexpected byte '"'; strings are single-quoted in cand`
	}
	return token.Token{}, false, l.fail(cerr.KindLexerUnknownChar, msg)
}
