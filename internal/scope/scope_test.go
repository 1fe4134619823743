package scope

import (
	"testing"

	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/token"
)

func tokensFor(kinds ...token.Kind) []token.Token {
	tks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		tks[i] = token.New(k)
	}
	return tks
}

func TestFindSimple(t *testing.T) {
	// ( 1 , 2 )
	tks := []token.Token{
		token.New(token.KindLParen),
		token.NewLiteral(token.KindIntLit, "1", token.Span{}),
		token.New(token.KindComma),
		token.NewLiteral(token.KindIntLit, "2", token.Span{}),
		token.New(token.KindRParen),
	}
	c := cursor.New(tks, token.Span{})
	r, err := Find(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Begin != 0 || r.ContainedBegin != 1 || r.ContainedEnd != 4 || r.End != 5 {
		t.Fatalf("got %+v", r)
	}
}

func TestFindRespectsNesting(t *testing.T) {
	// ( [ ( ) ] )
	tks := tokensFor(token.KindLParen, token.KindLBracket, token.KindLParen, token.KindRParen, token.KindRBracket, token.KindRParen)
	c := cursor.New(tks, token.Span{})
	r, err := Find(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.End != 6 {
		t.Fatalf("expected outer scope to close at 6, got %+v", r)
	}
}

func TestFindMismatchErrors(t *testing.T) {
	// ( ]  -- wrong closer kind, never reduces depth to 0 correctly
	tks := tokensFor(token.KindLParen, token.KindRBracket)
	c := cursor.New(tks, token.Span{Line: 4, Col: 1})
	_, err := Find(c)
	if err == nil {
		t.Fatalf("expected mismatched scope error")
	}
}

func TestFindUnmatchedOpenerErrors(t *testing.T) {
	tks := []token.Token{
		token.New(token.KindLParen),
		token.NewLiteral(token.KindIdent, "x", token.Span{}),
	}
	c := cursor.New(tks, token.Span{})
	_, err := Find(c)
	if err == nil {
		t.Fatalf("expected unmatched opener error")
	}
}

func TestFindSeparated(t *testing.T) {
	// ( 1 , f ( 2 ) , 3 )
	tks := []token.Token{
		token.New(token.KindLParen),
		token.NewLiteral(token.KindIntLit, "1", token.Span{}),
		token.New(token.KindComma),
		token.NewLiteral(token.KindIdent, "f", token.Span{}),
		token.New(token.KindLParen),
		token.NewLiteral(token.KindIntLit, "2", token.Span{}),
		token.New(token.KindRParen),
		token.New(token.KindComma),
		token.NewLiteral(token.KindIntLit, "3", token.Span{}),
		token.New(token.KindRParen),
	}
	c := cursor.New(tks, token.Span{})
	_, parts, err := FindSeparated(c, token.KindComma, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 comma-separated sub-ranges, got %d: %v", len(parts), parts)
	}
	// The comma nested inside f(2) must not split the second sub-range.
	if parts[1][0] != 3 || parts[1][1] != 7 {
		t.Fatalf("second sub-range = %v, want [3,7)", parts[1])
	}
}

func TestFindSeparatedEmpty(t *testing.T) {
	tks := tokensFor(token.KindLParen, token.KindRParen)
	c := cursor.New(tks, token.Span{})
	_, parts, err := FindSeparated(c, token.KindComma, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected zero sub-ranges for an empty scope, got %v", parts)
	}
}
