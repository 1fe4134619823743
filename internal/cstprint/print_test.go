package cstprint

import (
	"strings"
	"testing"

	"github.com/ayxg/cand/internal/cst"
	"github.com/ayxg/cand/internal/lexer"
	"github.com/ayxg/cand/internal/parser"
)

func parse(t *testing.T, src string) (*cst.Tree, int) {
	t.Helper()
	toks, err := lexer.New([]byte(src), 1).Run()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	var tree cst.Tree
	root, err := parser.ParseProgram(toks, &tree)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &tree, root
}

func TestSprintMatchesSExpressionShape(t *testing.T) {
	tree, root := parse(t, "def int@x: 1 + 2;")
	want := "Program(VariableDefinition(KwInt(int),Ident(x),Plus(IntLit(1),IntLit(2))))"
	if got := Sprint(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSprintIndentedNestsChildren(t *testing.T) {
	tree, root := parse(t, "def int@x;")
	got := SprintIndented(tree, root)
	if !strings.Contains(got, "Program\n") || !strings.Contains(got, "  VariableDeclaration\n") {
		t.Fatalf("unexpected indentation:\n%s", got)
	}
}

func TestDiffEmptyForIdenticalTrees(t *testing.T) {
	treeA, rootA := parse(t, "def int@x;")
	treeB, rootB := parse(t, "def int@x;")
	diff, err := Diff(treeA, rootA, "a", treeB, rootB, "b")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if diff != "" {
		t.Fatalf("expected empty diff, got:\n%s", diff)
	}
}

func TestDiffNonEmptyForDifferentTrees(t *testing.T) {
	treeA, rootA := parse(t, "def int@x;")
	treeB, rootB := parse(t, "def int@y;")
	diff, err := Diff(treeA, rootA, "a", treeB, rootB, "b")
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if diff == "" {
		t.Fatal("expected a non-empty diff")
	}
	if !strings.Contains(diff, "-    Ident(x)") || !strings.Contains(diff, "+    Ident(y)") {
		t.Fatalf("diff does not show the identifier change:\n%s", diff)
	}
}
