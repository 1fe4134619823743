package cursor

import (
	"testing"

	"github.com/ayxg/cand/internal/token"
)

func sampleTokens() []token.Token {
	return []token.Token{
		token.New(token.KindKwDef),
		token.New(token.KindCommercialAt),
		token.NewLiteral(token.KindIdent, "x", token.Span{}),
		token.New(token.KindColon),
		token.NewLiteral(token.KindIntLit, "1", token.Span{}),
		token.New(token.KindSemicolon),
	}
}

func TestGetAndAdvance(t *testing.T) {
	c := New(sampleTokens(), token.Span{Line: 1})
	if !c.TypeIs(token.KindKwDef) {
		t.Fatalf("expected KwDef at start")
	}
	c.Advance(1)
	if !c.TypeIs(token.KindCommercialAt) {
		t.Fatalf("expected CommercialAt after advance")
	}
}

func TestGetPastEndReturnsEOF(t *testing.T) {
	c := New(sampleTokens(), token.Span{Line: 99})
	c.Advance(100)
	if !c.Get().IsEOF() {
		t.Fatalf("expected EOF sentinel past end")
	}
	if c.Line() != 99 {
		t.Fatalf("EOF sentinel should carry the span passed to New")
	}
}

func TestPeekDoesNotMutatePosition(t *testing.T) {
	c := New(sampleTokens(), token.Span{})
	before := c.Pos()
	_ = c.Peek(3)
	if c.Pos() != before {
		t.Fatalf("Peek must not move current")
	}
}

func TestFindForward(t *testing.T) {
	c := New(sampleTokens(), token.Span{})
	pos, ok := c.FindForward(token.KindSemicolon)
	if !ok || pos != 5 {
		t.Fatalf("FindForward(Semicolon) = %d, %v; want 5, true", pos, ok)
	}
}

func TestAdvanceToOutOfBoundsPanics(t *testing.T) {
	c := New(sampleTokens(), token.Span{})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for out-of-bounds AdvanceTo")
		}
	}()
	c.AdvanceTo(1000)
}

func TestSemanticPredicates(t *testing.T) {
	c := New(sampleTokens(), token.Span{})
	if !c.IsDeclarative() {
		t.Fatalf("def should be declarative")
	}
	c.Advance(4)
	if !c.IsOperand() {
		t.Fatalf("int literal should be an operand")
	}
}
