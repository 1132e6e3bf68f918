package qbf

// onOccurrenceChanged re-checks variable v's pure-literal/vanished-from-
// matrix status after one of its occurrence counts changed (spec.md §4.5),
// and keeps the elimination heap's score in sync (spec.md §4.6 "scores
// update on every occurrence list change").
func (e *Engine) onOccurrenceChanged(v int) {
	vr := e.vars.get(v)
	if vr.Tag != TagFree {
		return // already settled; occurrence changes here are bookkeeping only
	}

	pos := e.clauses.occCount(PositiveLiteral(v))
	neg := e.clauses.occCount(NegativeLiteral(v))
	vr.Score = pos + neg

	switch {
	case pos == 0 && neg == 0:
		// Vanished from the matrix entirely: no remaining clause constrains
		// it, so its value (if any) can never matter. Named ForallReduced
		// after the common case (a universal variable's last occurrences
		// stripped by universal reduction), but also covers an existential
		// variable whose last clauses were all deleted by other techniques.
		e.vars.unlinkVar(v)
		vr.Tag = TagForallReduced
		e.elim.remove(v)
	case pos == 0:
		e.tagPure(v, NegativeLiteral(v))
	case neg == 0:
		e.tagPure(v, PositiveLiteral(v))
	default:
		if e.elim.contains(v) {
			e.elim.insert(v, vr.Score)
		}
	}
}

// tagPure fixes v to its single remaining polarity. An existential pure
// literal needs a RATA unit certificate (it changes what's satisfiable to
// check, even though it's sound); a universal pure literal needs none: the
// clauses containing only that polarity are about to be satisfied for every
// assignment to the universal, so deleting them via flushPos is sound with no
// extra trace line (spec.md §4.5).
func (e *Engine) tagPure(v int, l Literal) {
	if e.frozen(v) {
		return
	}
	universal := e.isUniversal(l)
	tag := TagPureExistential
	if universal {
		tag = TagPureUniversal
	}
	if !e.fix(l, tag) {
		e.deriveEmptyClause([]Literal{l})
		return
	}
	if universal {
		e.Stats.PureUniversal++
	} else {
		e.Stats.PureExistential++
		if e.Trace != nil {
			e.Trace.Addition(l, []Literal{l}, "pure literal")
		}
	}
}
