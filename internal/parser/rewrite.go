// Package parser implements the expression parser of spec.md §4.I and the
// statement/declaration parser of §4.J: a shift-reduce rewrite to a
// fully-parenthesized token form, followed by a recursive descent over
// that form that builds the concrete syntax tree.
package parser

import (
	"github.com/ayxg/cand/internal/closure"
	"github.com/ayxg/cand/internal/cursor"
	"github.com/ayxg/cand/internal/scope"
	"github.com/ayxg/cand/internal/token"
)

// Rewrite runs Phase 1 of the expression parser on an infix primary
// expression (spec.md §4.I): it shift-reduces tokens through a closure
// buffer, inserting synthetic parentheses until every operator's operands
// are explicit, and returns the fully-parenthesized token sequence.
func Rewrite(tokens []token.Token) ([]token.Token, error) {
	c := cursor.New(tokens, token.NoSpan)
	buf := closure.New()
	expectOperand := true

	for !c.Get().IsEOF() {
		tk := c.Get()
		if expectOperand {
			next, err := shiftOperand(c, tokens, buf, tk)
			if err != nil {
				return nil, err
			}
			expectOperand = next
			continue
		}
		next, err := shiftOperator(c, tokens, buf, tk)
		if err != nil {
			return nil, err
		}
		expectOperand = next
	}

	if err := resolveAll(buf); err != nil {
		return nil, err
	}
	return buf.StreamToVector(), nil
}

var numericLitKinds = map[token.Kind]bool{
	token.KindIntLit:  true,
	token.KindUintLit: true,
	token.KindRealLit: true,
}

// shiftOperand handles one head token while expected_next = operative. It
// returns the new value of expected_next (true stays operative).
func shiftOperand(c *cursor.Cursor, tokens []token.Token, buf *closure.Buffer, tk token.Token) (bool, error) {
	switch {
	case tk.Kind == token.KindLParen:
		r, err := scope.Find(c)
		if err != nil {
			return false, err
		}
		inner, err := Rewrite(tokens[r.ContainedBegin:r.ContainedEnd])
		if err != nil {
			return false, err
		}
		// inner is already fully parenthesized by its own recursive
		// resolve (or is a single bare token); spec.md §4.I only asks to
		// "stream-append its tokens", not add another enclosing pair.
		for _, it := range inner {
			buf.StreamPushBack(it)
		}
		c.AdvanceTo(r.End)
		return false, nil

	case tk.Kind == token.KindMinus && numericLitKinds[c.Peek(1).Kind]:
		lit := c.Peek(1)
		buf.StreamPushBack(token.NewLiteral(lit.Kind, "-"+lit.Literal, tk.Span))
		c.Advance(2)
		return false, nil

	case tk.Trait().IsOperand:
		buf.StreamPushBack(tk)
		c.Advance(1)
		return false, nil

	case tk.Trait().Arity == token.ArityPrefix:
		if err := resolveWhileLower(buf, tk.Trait().Priority); err != nil {
			return false, err
		}
		idx := buf.StreamPushBack(tk)
		buf.PushBackClosure(idx)
		c.Advance(1)
		return true, nil

	default:
		return false, errExpectedOperand(c)
	}
}

// shiftOperator handles one head token while expected_next = operator. It
// returns the new value of expected_next.
func shiftOperator(c *cursor.Cursor, tokens []token.Token, buf *closure.Buffer, tk token.Token) (bool, error) {
	switch {
	case tk.Kind == token.KindLParen, tk.Kind == token.KindLBracket, tk.Kind == token.KindLBrace:
		r, err := scope.Find(c)
		if err != nil {
			return false, err
		}
		if err := resolveWhileLower(buf, tk.Trait().Priority); err != nil {
			return false, err
		}
		front := buf.StreamPushBack(tk)
		for i := r.ContainedBegin; i < r.ContainedEnd; i++ {
			buf.StreamPushBack(tokens[i])
		}
		back := buf.StreamPushBack(token.New(closerFor(tk.Kind)))
		buf.PushBackClosureRange(front, back)
		c.AdvanceTo(r.End)
		return false, nil

	case tk.Trait().Arity == token.ArityPostfix:
		if err := resolveWhileLower(buf, tk.Trait().Priority); err != nil {
			return false, err
		}
		idx := buf.StreamPushBack(tk)
		buf.PushBackClosure(idx)
		c.Advance(1)
		return false, nil

	case tk.Trait().Arity == token.ArityBinary:
		if err := resolveWhileLower(buf, tk.Trait().Priority); err != nil {
			return false, err
		}
		idx := buf.StreamPushBack(tk)
		buf.PushBackClosure(idx)
		c.Advance(1)
		return true, nil

	default:
		return false, errExpectedOperator(c)
	}
}

func closerFor(opener token.Kind) token.Kind {
	switch opener {
	case token.KindLParen:
		return token.KindRParen
	case token.KindLBracket:
		return token.KindRBracket
	case token.KindLBrace:
		return token.KindRBrace
	default:
		panic("parser: closerFor called on a non-opener kind")
	}
}

// resolveWhileLower repeatedly resolves the closure buffer's tail closure
// until its priority is no higher than headPriority, implementing the
// "Check" step of spec.md §4.I.
func resolveWhileLower(buf *closure.Buffer, headPriority token.Priority) error {
	for {
		last, ok := buf.LastClosure()
		if !ok {
			return nil
		}
		if headPriority >= buf.Trait(last).Priority {
			return nil
		}
		if err := resolveLast(buf, last); err != nil {
			return err
		}
	}
}

// resolveAll drains every remaining closure at end of input, per spec.md
// §4.I's "check against an empty-priority sentinel" rule.
func resolveAll(buf *closure.Buffer) error {
	for {
		last, ok := buf.LastClosure()
		if !ok {
			return nil
		}
		if err := resolveLast(buf, last); err != nil {
			return err
		}
	}
}

func resolveLast(buf *closure.Buffer, last int) error {
	switch buf.Trait(last).Arity {
	case token.ArityPrefix:
		return resolvePrefixRun(buf, last)
	case token.ArityPostfix:
		return resolvePostfixRun(buf, last)
	case token.ArityBinary:
		return resolveBinaryRun(buf, last)
	default:
		return nil
	}
}

// collectRun walks the closure list backward from last, collecting the
// maximal run of adjacent closures sharing last's priority and arity
// (spec.md §4.I, "maximal consecutive run"). The result is newest-first;
// collectRun(last)[0] == last always.
func collectRun(buf *closure.Buffer, last int) []int {
	prio := buf.Trait(last).Priority
	arity := buf.Trait(last).Arity
	chain := []int{last}
	cur := last
	for {
		prev, ok := buf.PrevClosure(cur)
		if !ok {
			break
		}
		t := buf.Trait(prev)
		if t.Priority != prio || t.Arity != arity {
			break
		}
		chain = append(chain, prev)
		cur = prev
	}
	return chain
}

// anchorOrSentinel returns the closure immediately before idx, or the
// buffer's sentinel closure if idx has no real predecessor.
func anchorOrSentinel(buf *closure.Buffer, idx int) int {
	prev, ok := buf.PrevClosure(idx)
	if !ok {
		return buf.Sentinel()
	}
	return prev
}

// resolvePrefixRun implements spec.md §4.I's prefix resolve-last: wrap the
// maximal consecutive prefix run and its operand in synthetic parens,
// inserting "(" before the earliest prefix closure and ")" at the current
// stream tail (the run's operand is always the most recently pushed
// token, since nothing has been appended since it was stream-pushed).
func resolvePrefixRun(buf *closure.Buffer, last int) error {
	chain := collectRun(buf, last)
	oldest := chain[len(chain)-1]
	buf.StreamInsertBeforeClosure(oldest, token.New(token.KindLParen))
	buf.StreamPushBack(token.New(token.KindRParen))
	for _, idx := range chain {
		buf.PopClosureAt(idx)
	}
	return nil
}

// resolvePostfixRun is the dual of resolvePrefixRun: "(" goes before the
// operand preceding the first (oldest) postfix closure, ")" goes after
// the last (newest) postfix closure.
func resolvePostfixRun(buf *closure.Buffer, last int) error {
	chain := collectRun(buf, last)
	oldest := chain[len(chain)-1]
	newest := chain[0]
	anchor := anchorOrSentinel(buf, oldest)
	buf.StreamInsertAfterClosure(anchor, token.New(token.KindLParen))
	buf.StreamInsertAfterClosure(newest, token.New(token.KindRParen))
	for _, idx := range chain {
		buf.PopClosureAt(idx)
	}
	return nil
}

// resolveBinaryRun implements spec.md §4.I's binary resolve-last. A lone
// binary closure (no same-priority neighbor) wraps as the singular
// "(a op b)". A same-priority run of length K wraps left-associative runs
// as nested left-deep groups (K parens, all opening before the leftmost
// operand) and right-associative runs as nested right-deep groups (a
// paren opening before every operand but the first, all closing at the
// tail).
func resolveBinaryRun(buf *closure.Buffer, last int) error {
	chain := collectRun(buf, last)

	if len(chain) == 1 {
		anchor := anchorOrSentinel(buf, last)
		buf.StreamInsertAfterClosure(anchor, token.New(token.KindLParen))
		buf.StreamPushBack(token.New(token.KindRParen))
		buf.PopClosureAt(last)
		return nil
	}

	oldest := chain[len(chain)-1]
	assoc := buf.Trait(oldest).Assoc

	if assoc == token.AssocRight {
		for i := 1; i < len(chain); i++ {
			buf.StreamInsertAfterClosure(chain[i], token.New(token.KindLParen))
		}
		for i := 0; i < len(chain)-1; i++ {
			buf.StreamPushBack(token.New(token.KindRParen))
		}
	} else {
		anchor := anchorOrSentinel(buf, oldest)
		for i := 0; i < len(chain); i++ {
			buf.StreamInsertAfterClosure(anchor, token.New(token.KindLParen))
		}
		for i := 0; i < len(chain)-1; i++ {
			buf.StreamInsertBeforeClosure(chain[i], token.New(token.KindRParen))
		}
		buf.StreamPushBack(token.New(token.KindRParen))
	}

	for _, idx := range chain {
		buf.PopClosureAt(idx)
	}
	return nil
}
