// Package closure implements the shift-reduce scratchpad of spec.md §4.H:
// a doubly-linked token stream plus a doubly-linked list of closures
// (spans into that stream), supporting priority-driven insertion of
// synthetic parentheses without invalidating any other closure's front/
// back references.
//
// Both linked lists are arena-encoded per the design notes in spec.md §9:
// nodes live in a growable slice and refer to each other by index, so
// appending new nodes never invalidates an index held elsewhere (unlike a
// position into a plain slice, which shifts under insertion).
package closure

import (
	"github.com/ayxg/cand/internal/token"
)

const sentinelIdx = 0

type streamNode struct {
	tok  token.Token
	prev int
	next int
}

type closureNode struct {
	front int
	back  int
	prev  int
	next  int
}

// Buffer is the closure-buffer scratchpad. The zero value is not usable;
// construct with New.
type Buffer struct {
	nodes      []streamNode
	closures   []closureNode
	streamHead int
	streamTail int
}

// New creates a Buffer with its sentinel stream token and sentinel
// closure already in place, per spec.md §4.H's buffer invariants.
func New() *Buffer {
	b := &Buffer{
		nodes:    []streamNode{{prev: -1, next: -1}},
		closures: []closureNode{{front: sentinelIdx, back: sentinelIdx, prev: -1, next: -1}},
	}
	b.streamHead = sentinelIdx
	b.streamTail = sentinelIdx
	return b
}

// StreamPushBack appends tk to the end of the token stream and returns
// its node index.
func (b *Buffer) StreamPushBack(tk token.Token) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, streamNode{tok: tk, prev: b.streamTail, next: -1})
	b.nodes[b.streamTail].next = idx
	b.streamTail = idx
	return idx
}

// PushBackClosure creates a single-token closure [front, front] and
// appends it to the closure list, returning its closure index.
func (b *Buffer) PushBackClosure(front int) int {
	return b.PushBackClosureRange(front, front)
}

// PushBackClosureRange creates a closure [front, back] and appends it.
func (b *Buffer) PushBackClosureRange(front, back int) int {
	tail := b.lastClosureIdx()
	idx := len(b.closures)
	b.closures = append(b.closures, closureNode{front: front, back: back, prev: tail, next: -1})
	b.closures[tail].next = idx
	return idx
}

func (b *Buffer) lastClosureIdx() int {
	idx := sentinelIdx
	for b.closures[idx].next != -1 {
		idx = b.closures[idx].next
	}
	return idx
}

// PopClosure removes the newest (tail) closure. Panics if only the
// sentinel closure remains — the sentinel is never popped (spec.md §4.H
// buffer invariant).
func (b *Buffer) PopClosure() {
	tail := b.lastClosureIdx()
	b.PopClosureAt(tail)
}

// PopClosureAt removes the closure at idx from the closure list, leaving
// every other closure's front/back indices — and every stream node —
// untouched.
func (b *Buffer) PopClosureAt(idx int) {
	if idx == sentinelIdx {
		panic("closure: the sentinel closure may not be popped")
	}
	c := b.closures[idx]
	b.closures[c.prev].next = c.next
	if c.next != -1 {
		b.closures[c.next].prev = c.prev
	}
}

// StreamInsertBeforeClosure splices tk into the stream immediately before
// the front token of the closure at idx, returning the new node's index.
func (b *Buffer) StreamInsertBeforeClosure(idx int, tk token.Token) int {
	return b.insertBefore(b.closures[idx].front, tk)
}

// StreamInsertAfterClosure splices tk into the stream immediately after
// the back token of the closure at idx, returning the new node's index.
func (b *Buffer) StreamInsertAfterClosure(idx int, tk token.Token) int {
	return b.insertAfter(b.closures[idx].back, tk)
}

func (b *Buffer) insertBefore(nodeIdx int, tk token.Token) int {
	prevIdx := b.nodes[nodeIdx].prev
	newIdx := len(b.nodes)
	b.nodes = append(b.nodes, streamNode{tok: tk, prev: prevIdx, next: nodeIdx})
	b.nodes[nodeIdx].prev = newIdx
	if prevIdx != -1 {
		b.nodes[prevIdx].next = newIdx
	}
	return newIdx
}

func (b *Buffer) insertAfter(nodeIdx int, tk token.Token) int {
	nextIdx := b.nodes[nodeIdx].next
	newIdx := len(b.nodes)
	b.nodes = append(b.nodes, streamNode{tok: tk, prev: nodeIdx, next: nextIdx})
	b.nodes[nodeIdx].next = newIdx
	if nextIdx != -1 {
		b.nodes[nextIdx].prev = newIdx
	} else {
		b.streamTail = newIdx
	}
	return newIdx
}

// FrontToken and BackToken read the tokens at a closure's front/back node.
func (b *Buffer) FrontToken(idx int) token.Token { return b.nodes[b.closures[idx].front].tok }
func (b *Buffer) BackToken(idx int) token.Token  { return b.nodes[b.closures[idx].back].tok }

// Trait returns the front token's grammar trait: a closure's
// priority/arity/associativity equal those of its front token (spec.md
// §3, "Closure"); openers already carry Postfix priority/arity in the
// catalogue, so no override is needed here.
func (b *Buffer) Trait(idx int) token.Trait { return b.FrontToken(idx).Trait() }

// Sentinel returns the index of the buffer's permanent sentinel closure,
// for callers that need an explicit anchor when there is no real
// preceding closure to splice against.
func (b *Buffer) Sentinel() int { return sentinelIdx }

// LastClosure returns the newest non-sentinel closure index, or
// (0, false) if the closure list holds only the sentinel.
func (b *Buffer) LastClosure() (int, bool) {
	idx := b.lastClosureIdx()
	return idx, idx != sentinelIdx
}

// PrevClosure returns the closure immediately before idx in the list, or
// (0, false) if idx is the sentinel or the first real closure.
func (b *Buffer) PrevClosure(idx int) (int, bool) {
	p := b.closures[idx].prev
	if p < 0 || p == sentinelIdx {
		return sentinelIdx, false
	}
	return p, true
}

// StreamToVector materializes the non-sentinel portion of the stream.
func (b *Buffer) StreamToVector() []token.Token {
	var out []token.Token
	for i := b.nodes[b.streamHead].next; i != -1; i = b.nodes[i].next {
		out = append(out, b.nodes[i].tok)
	}
	return out
}

// FindClosureReverseConsecutive walks the closure list from newest to
// oldest, collecting closures for which match(newer, older) holds between
// each adjacent pair. It stops at the first pair that fails the
// predicate, including that failing (older) closure as the final,
// "breaker" element of the result (spec.md §4.H). Returns nil if there is
// no closure besides the sentinel.
func (b *Buffer) FindClosureReverseConsecutive(match func(newer, older int) bool) []int {
	return b.FindClosureReverseConsecutiveAndIgnore(match, func(int) bool { return false })
}

// FindClosureReverseConsecutiveAndIgnore is FindClosureReverseConsecutive,
// transparently skipping any closure for which skip holds: a skipped
// closure is included in the result but never breaks the run and is never
// compared against by match.
func (b *Buffer) FindClosureReverseConsecutiveAndIgnore(match func(newer, older int) bool, skip func(idx int) bool) []int {
	anchor, ok := b.LastClosure()
	if !ok {
		return nil
	}
	result := []int{anchor}
	pos := anchor
	for {
		prev := b.closures[pos].prev
		if prev == sentinelIdx {
			break
		}
		if skip(prev) {
			result = append(result, prev)
			pos = prev
			continue
		}
		if !match(anchor, prev) {
			result = append(result, prev)
			break
		}
		result = append(result, prev)
		anchor = prev
		pos = prev
	}
	return result
}
