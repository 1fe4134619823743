package cstprint

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/ayxg/cand/internal/cst"
)

// Diff returns a unified diff between the indented renderings of two
// trees' roots, labeled by their idA/idB identifiers (typically a cache
// digest or file path). An empty string means the two renderings are
// identical.
func Diff(treeA *cst.Tree, idxA int, idA string, treeB *cst.Tree, idxB int, idB string) (string, error) {
	a := SprintIndented(treeA, idxA)
	b := SprintIndented(treeB, idxB)
	if a == b {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: idA,
		ToFile:   idB,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
