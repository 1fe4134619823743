// Package cstprint renders a cst.Tree for human consumption: an
// S-expression dump for "cand build" output, an indented tree for
// "cand build --tree", and (Diff) a unified diff between the indented
// renderings of two trees.
package cstprint

import (
	"fmt"
	"strings"

	"github.com/ayxg/cand/internal/cst"
)

// Sprint renders the subtree rooted at idx as an S-expression: a bare
// Kind for an empty leaf, Kind(literal) for a literal leaf, or
// Kind(child,child,...) for an interior node.
func Sprint(tree *cst.Tree, idx int) string {
	var b strings.Builder
	sprint(&b, tree, idx)
	return b.String()
}

func sprint(b *strings.Builder, tree *cst.Tree, idx int) {
	n := tree.Node(idx)
	kids := tree.Children(idx)
	b.WriteString(string(n.Kind))
	if len(kids) == 0 {
		if n.Literal != "" {
			b.WriteByte('(')
			b.WriteString(n.Literal)
			b.WriteByte(')')
		}
		return
	}
	b.WriteByte('(')
	for i, k := range kids {
		if i > 0 {
			b.WriteByte(',')
		}
		sprint(b, tree, k)
	}
	b.WriteByte(')')
}

// SprintIndented renders the subtree rooted at idx as an indented tree,
// one node per line, for a more readable "cand build --tree" dump than
// the single-line S-expression.
func SprintIndented(tree *cst.Tree, idx int) string {
	var b strings.Builder
	sprintIndented(&b, tree, idx, 0)
	return b.String()
}

func sprintIndented(b *strings.Builder, tree *cst.Tree, idx, depth int) {
	n := tree.Node(idx)
	b.WriteString(strings.Repeat("  ", depth))
	if n.Literal != "" {
		fmt.Fprintf(b, "%s(%s)\n", n.Kind, n.Literal)
	} else {
		fmt.Fprintf(b, "%s\n", n.Kind)
	}
	for _, k := range tree.Children(idx) {
		sprintIndented(b, tree, k, depth+1)
	}
}
