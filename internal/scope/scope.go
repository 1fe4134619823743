// Package scope implements the matched-opener/closer search of spec.md
// §4.G: given a cursor positioned at an opener, find the matching closer
// while respecting full nesting of all three pair types.
package scope

import (
	"github.com/ayxg/cand/internal/cerr"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/token"
)

// Range is the half-open result of a successful scope search:
//
//	[Begin, ContainedBegin, ContainedEnd, End)
//
// where Begin is the opener's position, ContainedBegin = Begin+1,
// ContainedEnd = the closer's position, and End = ContainedEnd+1.
type Range struct {
	Begin         int
	ContainedBegin int
	ContainedEnd   int
	End            int
}

// Valid reports whether r was produced by a successful Find.
func (r Range) Valid() bool { return r.End > r.Begin }

// Invalid is the zero Range, returned by a failed Find.
var Invalid = Range{}

// Find locates the closer matching the opener at c.Pos(), tracking a depth
// counter incremented on any opener and decremented on any closer; the
// scope ends at the first closer of the opener's own kind met at depth 1,
// so opener/closer pairs nested inside are skipped (spec.md §4.G).
func Find(c *cursor.Cursor) (Range, error) {
	begin := c.Pos()
	opener := c.Get().Kind
	if !c.Get().Trait().IsOpener {
		return Invalid, mismatchErr(c, "scope must start on an opener")
	}

	depth := 0
	i := begin
	for {
		tk := c.Peek(i - c.Pos())
		if tk.IsEOF() {
			return Invalid, mismatchErr(c, "unmatched opener")
		}
		if tk.Trait().IsOpener {
			depth++
		} else if tk.Trait().IsCloser {
			if depth == 1 && token.IsClosingOf(opener, tk.Kind) {
				return Range{Begin: begin, ContainedBegin: begin + 1, ContainedEnd: i, End: i + 1}, nil
			}
			depth--
			if depth < 0 {
				return Invalid, mismatchErr(c, "unmatched closer")
			}
		}
		i++
	}
}

// FindSeparated is Find plus a split of the contained range into maximal
// sub-ranges separated by sep at depth zero only (spec.md §4.G). Each
// returned pair is [begin, end) of one sub-range; an empty contained range
// (e.g. "()") yields a single empty sub-range if includeEmpty is true and
// none otherwise — the expression parser uses includeEmpty=false so that
// a call with zero arguments produces zero argument sub-ranges.
func FindSeparated(c *cursor.Cursor, sep token.Kind, includeEmpty bool) (Range, [][2]int, error) {
	r, err := Find(c)
	if err != nil {
		return Invalid, nil, err
	}
	if r.ContainedBegin == r.ContainedEnd {
		if includeEmpty {
			return r, [][2]int{{r.ContainedBegin, r.ContainedEnd}}, nil
		}
		return r, nil, nil
	}

	var parts [][2]int
	depth := 0
	segStart := r.ContainedBegin
	for i := r.ContainedBegin; i < r.ContainedEnd; i++ {
		tk := c.Peek(i - c.Pos())
		switch {
		case tk.Trait().IsOpener:
			depth++
		case tk.Trait().IsCloser:
			depth--
		case depth == 0 && tk.Kind == sep:
			parts = append(parts, [2]int{segStart, i})
			segStart = i + 1
		}
	}
	parts = append(parts, [2]int{segStart, r.ContainedEnd})
	return r, parts, nil
}

func mismatchErr(c *cursor.Cursor, msg string) error {
	return cerr.At(cerr.CategoryParser, cerr.KindMismatchedScope, msg,
		cerr.Location{Line: c.Line(), Col: c.Col()})
}
