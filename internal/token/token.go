package token

// Span is the source location of a token (spec.md §3): a 1-based file
// index (0 means "no file / synthetic"), 0-based byte offsets into that
// file's buffer, and 1-based line/column.
type Span struct {
	FileIndex int
	BeginOff  int
	EndOff    int
	Line      int
	Col       int
}

// NoSpan is the span carried by synthetic tokens that do not originate
// from source text (e.g. the closure buffer's sentinel, or tokens inserted
// by the shift-reduce rewriter).
var NoSpan = Span{}

// Token is an immutable lexeme plus its source span. Two tokens compare
// equal (Equal) iff their kind and literal match; the span is not part of
// identity, since the same lexeme lexed at two different positions is the
// same token (spec.md §3, §8 invariant 3).
type Token struct {
	Kind    Kind
	Literal string
	Span    Span
}

// New builds a token of kind k, adopting its canonical spelling as the
// literal. Panics if k has no canonical spelling (variable-spelling kinds
// must go through NewLiteral).
func New(k Kind) Token {
	t := TraitOf(k)
	if t.Spelling == "" && k != KindEOF {
		panic("token: kind " + string(k) + " has no canonical spelling")
	}
	return Token{Kind: k, Literal: t.Spelling}
}

// NewAt builds a token of kind k at span with the canonical spelling.
func NewAt(k Kind, span Span) Token {
	t := New(k)
	t.Span = span
	return t
}

// NewLiteral builds a token of kind k carrying an explicit literal (used
// for identifiers and numeric/string/char/byte literals, whose text is not
// fixed by the catalogue).
func NewLiteral(k Kind, literal string, span Span) Token {
	return Token{Kind: k, Literal: literal, Span: span}
}

// EOF returns the sentinel end-of-stream token, located at span.
func EOF(span Span) Token {
	return Token{Kind: KindEOF, Literal: "", Span: span}
}

// Equal reports whether two tokens have the same kind and literal,
// ignoring their source span.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Literal == other.Literal
}

// SetLine and SetCol let the build orchestrator retarget a token's
// location after cross-file flattening, per spec.md §4.C.
func (t *Token) SetLine(line int) { t.Span.Line = line }
func (t *Token) SetCol(col int)   { t.Span.Col = col }

// SetFileIndex stamps the token's 1-based file position once the
// orchestrator has finished resolving the include graph and knows each
// file's place in the flattened order (spec.md §4.E step 6).
func (t *Token) SetFileIndex(idx int) { t.Span.FileIndex = idx }

// Trait is a convenience accessor for TraitOf(t.Kind).
func (t Token) Trait() Trait { return TraitOf(t.Kind) }

// IsEOF reports whether t is the end-of-stream sentinel.
func (t Token) IsEOF() bool { return t.Kind == KindEOF }
