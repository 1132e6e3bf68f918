package qbf

import "sort"

// addClauseBuffer is the single entry point through which every clause
// enters the formula, whether from the original QDIMACS matrix, a shrunk
// clause rewritten by unit propagation, a resolvent produced by variable
// elimination, or a split sub-clause (spec.md §4.1). lits is consumed; the
// caller must not reuse it afterwards.
//
// The pipeline is: drop literals already falsified by the trail, detect a
// clause already satisfied or tautological (nothing to add), deduplicate
// repeated literals, apply universal reduction to strip trailing universal
// literals with no existential literal deeper in the prefix, then allocate
// whatever remains.
func (e *Engine) addClauseBuffer(lits []Literal, reason string) *Clause {
	if e.unsat {
		return nil
	}

	e.buf = e.buf[:0]
	for _, l := range lits {
		switch e.LitValue(l) {
		case LTrue:
			return nil // satisfied by the trail; nothing to add
		case LFalse:
			continue // falsified; drop the literal
		}
		e.buf = append(e.buf, l)
	}

	sort.Slice(e.buf, func(i, j int) bool { return e.buf[i] < e.buf[j] })

	out := e.buf[:0]
	for i, l := range e.buf {
		if i > 0 && l == e.buf[i-1] {
			continue // duplicate literal
		}
		if i > 0 && l == e.buf[i-1].Opposite() {
			return nil // tautology: v and -v both present
		}
		out = append(out, l)
	}
	e.buf = out

	e.reduceUniversal(&e.buf)

	subsumed, shrunk := e.forwardSubsumeCheck(e.buf)
	if subsumed {
		return nil
	}
	e.buf = shrunk

	final := append([]Literal(nil), e.buf...)

	if len(final) == 0 {
		c := e.allocateClause(final)
		e.deriveEmptyClause(nil)
		return c
	}

	c := e.allocateClause(final)
	if e.Trace != nil {
		e.Trace.Addition(final[0], final, reason)
	}
	e.runBackwardSubsumption()
	return c
}

// reduceUniversal strips trailing universal literals from the back of a
// sorted-by-variable-order-unaware buffer that have no existential literal
// at a deeper (or equal) scope order: such a universal literal can never be
// the reason the clause is falsified under any countermove, so it is
// redundant (spec.md §4.3 "universal reduction").
//
// buf is expected to be free of satisfied/falsified/duplicate/tautological
// literals already; it is reordered by scope depth (deepest first) and
// truncated in place.
func (e *Engine) reduceUniversal(buf *[]Literal) {
	lits := *buf
	if len(lits) == 0 {
		return
	}

	sort.Slice(lits, func(i, j int) bool {
		return e.scopeOrder(lits[i]) > e.scopeOrder(lits[j])
	})

	deepestExistential := -1
	for _, l := range lits {
		if !e.isUniversal(l) {
			deepestExistential = e.scopeOrder(l)
			break
		}
	}

	var removed []Literal
	keep := lits[:0]
	for _, l := range lits {
		if e.isUniversal(l) && e.scopeOrder(l) > deepestExistential {
			e.Stats.UniversalReductions++
			removed = append(removed, l)
			continue
		}
		keep = append(keep, l)
	}
	*buf = keep

	if e.Trace != nil {
		for _, l := range removed {
			e.Trace.UniversalReduction(l, keep, "universal reduction")
		}
	}
}
