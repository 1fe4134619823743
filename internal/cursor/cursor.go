// Package cursor implements the read-only forward/backtrack view over a
// token sequence used by every later stage (spec.md §4.F). It never
// mutates the underlying slice.
package cursor

import "github.com/ayxg/cand/internal/token"

// Cursor holds three positions into an immutable token slice: the fixed
// begin/end bounds and the current read position.
type Cursor struct {
	tokens  []token.Token
	begin   int
	end     int
	current int
	eof     token.Token
}

// New creates a cursor over the full extent of tokens. eofSpan locates the
// sentinel EOF token returned once current runs past the end.
func New(tokens []token.Token, eofSpan token.Span) *Cursor {
	return &Cursor{
		tokens:  tokens,
		begin:   0,
		end:     len(tokens),
		current: 0,
		eof:     token.EOF(eofSpan),
	}
}

// Slice creates a cursor restricted to tokens[begin:end], still indexing
// into the same backing slice so positions remain comparable.
func Slice(tokens []token.Token, begin, end int, eofSpan token.Span) *Cursor {
	if begin < 0 {
		begin = 0
	}
	if end > len(tokens) {
		end = len(tokens)
	}
	return &Cursor{tokens: tokens, begin: begin, end: end, current: begin, eof: token.EOF(eofSpan)}
}

// Pos returns the current read position (an absolute index into the
// backing slice, usable later with Advance(iter)).
func (c *Cursor) Pos() int { return c.current }

// Tokens returns the cursor's backing token slice, so that callers which
// compute absolute positions (e.g. via FindForward or a manual scan) can
// build a new Cursor over the same slice with cursor.Slice.
func (c *Cursor) Tokens() []token.Token { return c.tokens }

// Begin and End return the cursor's fixed bounds.
func (c *Cursor) Begin() int { return c.begin }
func (c *Cursor) End() int   { return c.end }

// Get returns the token at the current position, or the EOF sentinel if
// current is at or past end.
func (c *Cursor) Get() token.Token {
	if c.current < c.begin || c.current >= c.end {
		return c.eof
	}
	return c.tokens[c.current]
}

// Peek returns the token n positions ahead of current (n may be negative),
// clamped the same way Get is.
func (c *Cursor) Peek(n int) token.Token {
	i := c.current + n
	if i < c.begin || i >= c.end {
		return c.eof
	}
	return c.tokens[i]
}

// Advance moves current forward by n (n may be negative), clamped to
// [begin, end].
func (c *Cursor) Advance(n int) {
	i := c.current + n
	if i < c.begin {
		i = c.begin
	}
	if i > c.end {
		i = c.end
	}
	c.current = i
}

// AdvanceTo moves current to the absolute position iter. iter must lie
// within [begin, end]; callers that violate this have a compiler bug, not
// a user-facing error, matching spec.md §4.F's "bounds-checked; out of
// range is a logic error".
func (c *Cursor) AdvanceTo(iter int) {
	if iter < c.begin || iter > c.end {
		panic("cursor: AdvanceTo out of bounds")
	}
	c.current = iter
}

// Line and Col report the current token's source location.
func (c *Cursor) Line() int { return c.Get().Span.Line }
func (c *Cursor) Col() int  { return c.Get().Span.Col }

// TypeIs reports whether the current token's kind is k.
func (c *Cursor) TypeIs(k token.Kind) bool { return c.Get().Kind == k }

// TypeIsnt is the negation of TypeIs.
func (c *Cursor) TypeIsnt(k token.Kind) bool { return !c.TypeIs(k) }

// FindForward searches forward from current (inclusive) for the first
// token whose kind appears in pattern, returning its absolute position
// and true, or (end, false) if none is found before end.
func (c *Cursor) FindForward(pattern ...token.Kind) (int, bool) {
	set := make(map[token.Kind]bool, len(pattern))
	for _, k := range pattern {
		set[k] = true
	}
	for i := c.current; i < c.end; i++ {
		if set[c.tokens[i].Kind] {
			return i, true
		}
	}
	return c.end, false
}

// The following delegate to the grammar catalogue (spec.md §4.B) via the
// current token's kind, giving the parser a single place to ask semantic
// questions about "what's under the cursor" without importing the
// catalogue directly.

func (c *Cursor) IsModifier() bool    { return c.Get().Trait().IsModifier }
func (c *Cursor) IsDeclarative() bool { return c.Get().Trait().IsDeclarative }
func (c *Cursor) IsKeyword() bool     { return c.Get().Trait().IsKeyword }
func (c *Cursor) IsOperand() bool     { return c.Get().Trait().IsOperand }
func (c *Cursor) IsOpener() bool      { return c.Get().Trait().IsOpener }
func (c *Cursor) IsCloser() bool      { return c.Get().Trait().IsCloser }
func (c *Cursor) IsPrimary() bool     { return token.IsPrimary(c.Get().Kind) }

func (c *Cursor) Priority() token.Priority { return c.Get().Trait().Priority }
func (c *Cursor) Assoc() token.Assoc       { return c.Get().Trait().Assoc }
func (c *Cursor) Arity() token.Arity       { return c.Get().Trait().Arity }
