package closure

import (
	"testing"

	"github.com/ayxg/cand/internal/token"
)

func TestPushBackAndStreamToVector(t *testing.T) {
	b := New()
	b.StreamPushBack(token.NewLiteral(token.KindIntLit, "1", token.Span{}))
	b.StreamPushBack(token.New(token.KindPlus))
	b.StreamPushBack(token.NewLiteral(token.KindIntLit, "2", token.Span{}))

	got := b.StreamToVector()
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(got), got)
	}
	if got[1].Kind != token.KindPlus {
		t.Fatalf("got[1] = %v, want Plus", got[1].Kind)
	}
}

func TestInsertBeforeAndAfterClosure(t *testing.T) {
	b := New()
	n1 := b.StreamPushBack(token.NewLiteral(token.KindIdent, "a", token.Span{}))
	idx := b.PushBackClosure(n1)

	b.StreamInsertBeforeClosure(idx, token.New(token.KindLParen))
	b.StreamInsertAfterClosure(idx, token.New(token.KindRParen))

	got := b.StreamToVector()
	want := []token.Kind{token.KindLParen, token.KindIdent, token.KindRParen}
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	for i, w := range want {
		if got[i].Kind != w {
			t.Fatalf("got[%d] = %v, want %v", i, got[i].Kind, w)
		}
	}
}

func TestInsertDoesNotInvalidateOtherClosures(t *testing.T) {
	b := New()
	n1 := b.StreamPushBack(token.NewLiteral(token.KindIdent, "a", token.Span{}))
	n2 := b.StreamPushBack(token.NewLiteral(token.KindIdent, "b", token.Span{}))
	c1 := b.PushBackClosure(n1)
	c2 := b.PushBackClosure(n2)

	// Insert around c2; c1's front token identity must be unaffected.
	b.StreamInsertBeforeClosure(c2, token.New(token.KindLParen))
	b.StreamInsertAfterClosure(c2, token.New(token.KindRParen))

	if b.FrontToken(c1).Literal != "a" {
		t.Fatalf("c1's front token changed after unrelated insertion: %v", b.FrontToken(c1))
	}
}

func TestPopClosure(t *testing.T) {
	b := New()
	n1 := b.StreamPushBack(token.NewLiteral(token.KindIdent, "a", token.Span{}))
	n2 := b.StreamPushBack(token.NewLiteral(token.KindIdent, "b", token.Span{}))
	b.PushBackClosure(n1)
	c2 := b.PushBackClosure(n2)

	b.PopClosure()
	last, ok := b.LastClosure()
	if !ok {
		t.Fatalf("expected a remaining closure")
	}
	if last == c2 {
		t.Fatalf("PopClosure should have removed the tail closure")
	}
}

func TestPopSentinelPanics(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic popping the sentinel closure")
		}
	}()
	b.PopClosureAt(sentinelIdx)
}

func TestFindClosureReverseConsecutive(t *testing.T) {
	b := New()
	// A differently-kinded closure (the breaker) first, then three
	// same-kind closures (simulating a run of prefix "!"); the walk starts
	// from the newest closure, so the run is the three "!" and then the
	// breaker.
	n := b.StreamPushBack(token.NewLiteral(token.KindIdent, "x", token.Span{}))
	b.PushBackClosure(n)
	for i := 0; i < 3; i++ {
		n := b.StreamPushBack(token.New(token.KindBang))
		b.PushBackClosure(n)
	}

	sameKind := func(newer, older int) bool {
		return b.Trait(newer).Arity == b.Trait(older).Arity && b.Trait(newer).Priority == b.Trait(older).Priority
	}
	run := b.FindClosureReverseConsecutive(sameKind)
	if len(run) != 4 {
		t.Fatalf("expected run of 3 matches + 1 breaker = 4, got %d: %v", len(run), run)
	}
	// The breaker (last element) should be the identifier closure.
	breaker := run[len(run)-1]
	if b.FrontToken(breaker).Kind != token.KindIdent {
		t.Fatalf("breaker should be the identifier closure, got %v", b.FrontToken(breaker).Kind)
	}
}
