// Package cst implements the concrete syntax tree data model of spec.md
// §3. Per the design notes in spec.md §9, nodes live in an arena (a plain
// slice) and address each other by index rather than by pointer: a parent
// holds an ordered list of child indices, and each child holds its
// parent's index. This removes pointer-lifetime risk and makes the tree
// trivially serializable, at the cost of nothing the original's in-place
// linked representation bought it.
package cst

import (
	"strings"

	"github.com/ayxg/cand/internal/token"
)

// Kind is a member of the closed CST-node-kind enumeration: every token
// kind plus the intermediate kinds listed below (spec.md §3).
type Kind string

// KindOf maps a token kind to its CST node kind. The mapping is total:
// every Kind value token.Kind can take has an identically-spelled Kind
// here (spec.md §4.B contract, "kind -> cst_kind is total").
func KindOf(k token.Kind) Kind { return Kind(k) }

// Intermediate node kinds with no token counterpart.
const (
	KindProgram                   Kind = "Program"
	KindPragmaticBlock             Kind = "PragmaticBlock"
	KindFunctionalBlock            Kind = "FunctionalBlock"
	KindConditionalBlock           Kind = "ConditionalBlock"
	KindIterativeBlock             Kind = "IterativeBlock"
	KindSubexpression              Kind = "Subexpression"
	KindTypeList                   Kind = "TypeList"
	KindGenericList                Kind = "GenericList"
	KindFunctionCall               Kind = "FunctionCall"
	KindArguments                  Kind = "Arguments"
	KindIndexOperator               Kind = "IndexOperator"
	KindListingOperator             Kind = "ListingOperator"
	KindModifiers                   Kind = "Modifiers"
	KindUnaryMinus                  Kind = "UnaryMinus"
	KindNegativeLit                 Kind = "NegativeLit"
	KindTypeAlias                   Kind = "TypeAlias"
	KindLibraryTypeAlias             Kind = "LibraryTypeAlias"
	KindLibraryNamespaceInclusion    Kind = "LibraryNamespaceInclusion"
	KindNamespaceInclusion           Kind = "NamespaceInclusion"
	KindNamespaceObjectInclusion     Kind = "NamespaceObjectInclusion"
	KindVariableDeclaration          Kind = "VariableDeclaration"
	KindVariableDefinition           Kind = "VariableDefinition"
	KindMethodDeclaration            Kind = "MethodDeclaration"
	KindMethodDefinition             Kind = "MethodDefinition"
	KindMethodSignature              Kind = "MethodSignature"
	KindMethodParameter              Kind = "MethodParameter"
	KindMethodParameterList          Kind = "MethodParameterList"
	KindMethodReturnType             Kind = "MethodReturnType"
	KindMethodVoid                   Kind = "MethodVoid"
	KindClassDeclaration             Kind = "ClassDeclaration"
	KindClassDefinition              Kind = "ClassDefinition"
	KindImportDeclaration            Kind = "ImportDeclaration"
	KindLibraryDeclaration           Kind = "LibraryDeclaration"
	KindLibraryDefinition            Kind = "LibraryDefinition"
	KindMainDeclaration              Kind = "MainDeclaration"
	KindMainDefinition               Kind = "MainDefinition"
	KindIfStatement                  Kind = "IfStatement"
)

// noParent marks a node with no parent: a root.
const noParent = -1

// Node is one arena entry. Children is the node's ordered child list;
// Parent is -1 for a root.
type Node struct {
	Kind     Kind
	Literal  string
	Line     int
	Col      int
	Parent   int
	Children []int
}

// Tree is the arena owning every Node created through it. The zero value
// is ready to use.
type Tree struct {
	nodes []Node
}

// New allocates a detached node (Parent = -1, "a fresh root") and returns
// its index.
func (t *Tree) New(kind Kind, literal string, line, col int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{Kind: kind, Literal: literal, Line: line, Col: col, Parent: noParent})
	return idx
}

// NewFromToken allocates a leaf node carrying tk's kind, literal, and
// source location. Literal nodes (numeric, string, char, byte, bool,
// none) are expected to carry no children — callers simply never call
// AppendChild on the result.
//
// A numeric literal whose text carries a fused leading "-" (Phase 1's
// unary-minus-on-literal rewrite) is recorded as KindNegativeLit rather
// than its own literal kind, mirroring KindUnaryMinus as a distinct,
// child-less entry in the closed kind set instead of letting the minus
// sign hide inside an ordinary literal's text.
func (t *Tree) NewFromToken(tk token.Token) int {
	if isFusedNegativeLiteral(tk) {
		return t.New(KindNegativeLit, tk.Literal, tk.Span.Line, tk.Span.Col)
	}
	return t.New(KindOf(tk.Kind), tk.Literal, tk.Span.Line, tk.Span.Col)
}

func isFusedNegativeLiteral(tk token.Token) bool {
	switch tk.Kind {
	case token.KindIntLit, token.KindUintLit, token.KindRealLit:
		return strings.HasPrefix(tk.Literal, "-")
	default:
		return false
	}
}

// Node returns the node record at idx. The returned value is a copy;
// mutate through the Tree's methods, not the struct directly.
func (t *Tree) Node(idx int) Node { return t.nodes[idx] }

// IsRoot reports whether the node at idx currently has no parent.
func (t *Tree) IsRoot(idx int) bool { return t.nodes[idx].Parent == noParent }

// AppendChild attaches child as the new last child of parent, updating
// child's back-link atomically (spec.md §3 invariants).
func (t *Tree) AppendChild(parent, child int) {
	t.nodes[parent].Children = append(t.nodes[parent].Children, child)
	t.nodes[child].Parent = parent
}

// PrependChild attaches child as the new first child of parent.
func (t *Tree) PrependChild(parent, child int) {
	t.nodes[parent].Children = append([]int{child}, t.nodes[parent].Children...)
	t.nodes[child].Parent = parent
}

// PopFront detaches and returns parent's first child, clearing its
// parent link; the returned node is a fresh root. ok is false if parent
// has no children.
func (t *Tree) PopFront(parent int) (child int, ok bool) {
	kids := t.nodes[parent].Children
	if len(kids) == 0 {
		return 0, false
	}
	child = kids[0]
	t.nodes[parent].Children = kids[1:]
	t.nodes[child].Parent = noParent
	return child, true
}

// PopBack detaches and returns parent's last child, clearing its parent
// link; the returned node is a fresh root. ok is false if parent has no
// children.
func (t *Tree) PopBack(parent int) (child int, ok bool) {
	kids := t.nodes[parent].Children
	if len(kids) == 0 {
		return 0, false
	}
	child = kids[len(kids)-1]
	t.nodes[parent].Children = kids[:len(kids)-1]
	t.nodes[child].Parent = noParent
	return child, true
}

// Reparent moves child from its current parent (if any) into newParent's
// child list, updating both ends atomically.
func (t *Tree) Reparent(child, newParent int) {
	if old := t.nodes[child].Parent; old != noParent {
		kids := t.nodes[old].Children
		for i, k := range kids {
			if k == child {
				t.nodes[old].Children = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}
	t.AppendChild(newParent, child)
}

// Children returns parent's ordered child indices. The returned slice
// aliases the Tree's internal storage and must not be mutated by the
// caller.
func (t *Tree) Children(parent int) []int { return t.nodes[parent].Children }
