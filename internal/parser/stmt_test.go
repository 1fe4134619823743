package parser

import "testing"

func TestParseIfElifElseChain(t *testing.T) {
	tree, root := parseProgram(t, "if (x) { return 1; } elif (y) { return 2; } else { return 3; };")
	want := "Program(IfStatement(" +
		"KwIf(Ident(x),ConditionalBlock(KwReturn(IntLit(1))))," +
		"KwElif(Ident(y),ConditionalBlock(KwReturn(IntLit(2))))," +
		"KwElse(ConditionalBlock(KwReturn(IntLit(3))))" +
		"))"
	if got := describe(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseWhile(t *testing.T) {
	tree, root := parseProgram(t, "while (x) { break; };")
	want := "Program(KwWhile(Ident(x),ConditionalBlock(KwBreak(break))))"
	if got := describe(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFor(t *testing.T) {
	tree, root := parseProgram(t, "for (def int@i: 0; i < 10; i = i + 1) { continue; };")
	want := "Program(KwFor(" +
		"VariableDefinition(KwInt(int),Ident(i),IntLit(0))," +
		"Lt(Ident(i),IntLit(10))," +
		"Assign(Ident(i),Plus(Ident(i),IntLit(1)))," +
		"IterativeBlock(KwContinue(continue))" +
		"))"
	if got := describe(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseSwitchCaseDefault(t *testing.T) {
	tree, root := parseProgram(t, "switch (x) { case 1: { return 1; } default: { return 0; } };")
	want := "Program(KwSwitch(" +
		"Ident(x)," +
		"KwCase(IntLit(1),FunctionalBlock(KwReturn(IntLit(1))))," +
		"KwDefault(FunctionalBlock(KwReturn(IntLit(0))))" +
		"))"
	if got := describe(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseExpressionStatement(t *testing.T) {
	tree, root := parseProgram(t, "main: { x = 1; };")
	want := "Program(MainDefinition(FunctionalBlock(Assign(Ident(x),IntLit(1)))))"
	if got := describe(tree, root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
