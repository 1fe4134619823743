package parser

import (
	"strings"
	"testing"

	"github.com/ayxg/cand/internal/lexer"
	"github.com/ayxg/cand/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.New([]byte(src), 1).Run()
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	return toks
}

func flatten(toks []token.Token) string {
	var b strings.Builder
	for i, tk := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		if tk.Literal != "" {
			b.WriteString(tk.Literal)
		} else {
			b.WriteString(string(tk.Kind))
		}
	}
	return b.String()
}

func TestRewriteArithmeticPrecedence(t *testing.T) {
	got, err := Rewrite(lex(t, "1 + 2 * 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "( 1 + ( 2 * 3 ) )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteLeftAssociativeChain(t *testing.T) {
	got, err := Rewrite(lex(t, "1 - 2 - 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "( ( 1 - 2 ) - 3 )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteRightAssociativeAssignmentChain(t *testing.T) {
	got, err := Rewrite(lex(t, "a = b = c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "a = ( b = c )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewritePrefixRun(t *testing.T) {
	got, err := Rewrite(lex(t, "! ! x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "( ! ! x )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteNegativeLiteralFusion(t *testing.T) {
	got, err := Rewrite(lex(t, "1 + -2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "( 1 + -2 )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteUnaryMinusOnNonNumericIsError(t *testing.T) {
	_, err := Rewrite(lex(t, "-x"))
	if err == nil {
		t.Fatalf("expected an error for unary minus on a non-numeric operand")
	}
}

func TestRewriteParenthesizedGroup(t *testing.T) {
	got, err := Rewrite(lex(t, "(1 + 2) * 3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flatten(got) != "( ( 1 + 2 ) * 3 )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteCallTrailerVerbatim(t *testing.T) {
	got, err := Rewrite(lex(t, "f(1, 2 + 3)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The trailer's contents are copied verbatim (not themselves
	// shift-reduced) in Phase 1; only the whole call gets wrapped.
	if flatten(got) != "( f ( 1 , 2 + 3 ) )" {
		t.Fatalf("got %q", flatten(got))
	}
}

func TestRewriteRoundTripStripsToOriginal(t *testing.T) {
	src := "1 + 2 * 3 - 4"
	got, err := Rewrite(lex(t, src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var stripped []string
	for _, tk := range got {
		if tk.Kind == token.KindLParen || tk.Kind == token.KindRParen {
			continue
		}
		stripped = append(stripped, tk.Literal)
	}
	if strings.Join(stripped, " ") != src {
		t.Fatalf("stripped form = %q, want %q", strings.Join(stripped, " "), src)
	}
}
