package cerr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorStringIncludesLocation(t *testing.T) {
	err := At(CategoryLexer, KindLexerUnknownChar, `unexpected byte '"'; strings are single-quoted`,
		Location{File: "a.cand", Line: 3, Col: 7})

	got := err.Error()
	if !strings.HasPrefix(got, "Lexer.LexerUnknownChar: ") {
		t.Fatalf("Error() = %q, missing category.kind prefix", got)
	}
	if !strings.Contains(got, "a.cand:3:7") {
		t.Fatalf("Error() = %q, missing location", got)
	}
}

func TestErrorStringWithoutLocation(t *testing.T) {
	err := New(CategoryBuild, KindInvalidCliArg, "missing root file argument")
	if strings.Contains(err.Error(), ":0:0") {
		t.Fatalf("Error() should omit an unknown location, got %q", err.Error())
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("open: permission denied")
	err := Wrap(CategoryBuild, KindFailedToReadFile, "cannot read root file",
		Location{File: "root.cand"}, cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the wrapped cause")
	}
}

func TestJSONRoundTrips(t *testing.T) {
	err := At(CategoryParser, KindMismatchedScope, "unclosed '('", Location{File: "x.cand", Line: 1, Col: 1})
	js := err.JSON()
	for _, want := range []string{`"category":"Parser"`, `"kind":"MismatchedScope"`} {
		if !strings.Contains(js, want) {
			t.Errorf("JSON() = %s, missing %s", js, want)
		}
	}
}

func TestCircularDependencySentinel(t *testing.T) {
	wrapped := Wrap(CategoryBuild, KindInclusionFailure, "circular dependency between a.cand and b.cand",
		Location{File: "a.cand"}, ErrCircularDependency)
	if !errors.Is(wrapped, ErrCircularDependency) {
		t.Fatalf("expected errors.Is(wrapped, ErrCircularDependency)")
	}
}
