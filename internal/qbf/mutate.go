package qbf

// enqueueSubsumption appends c to the backward-subsumption queue unless it is
// already queued (spec.md §4.2).
func (e *Engine) enqueueSubsumption(c *Clause) {
	if c.Queued || c.deleted {
		return
	}
	c.Queued = true
	c.QueuePrev = e.subsumeTail
	if e.subsumeTail != nil {
		e.subsumeTail.QueueNext = c
	} else {
		e.subsumeHead = c
	}
	e.subsumeTail = c
}

// dequeueSubsumption pops the front of the backward-subsumption queue.
func (e *Engine) dequeueSubsumption() *Clause {
	c := e.subsumeHead
	if c == nil {
		return nil
	}
	e.subsumeHead = c.QueueNext
	if e.subsumeHead != nil {
		e.subsumeHead.QueuePrev = nil
	} else {
		e.subsumeTail = nil
	}
	c.Queued = false
	c.QueueNext, c.QueuePrev = nil, nil
	return c
}

// unlinkSubsumption removes c from the queue if present, without touching
// Queued bookkeeping the way a pop would (used when deleting a queued
// clause).
func (e *Engine) unlinkSubsumption(c *Clause) {
	if !c.Queued {
		return
	}
	if c.QueuePrev != nil {
		c.QueuePrev.QueueNext = c.QueueNext
	} else {
		e.subsumeHead = c.QueueNext
	}
	if c.QueueNext != nil {
		c.QueueNext.QueuePrev = c.QueuePrev
	} else {
		e.subsumeTail = c.QueuePrev
	}
	c.Queued = false
	c.QueuePrev, c.QueueNext = nil, nil
}

// allocateClause creates a new Clause from lits (already trivial-checked and
// reduced by the caller), links it into every structure spec.md §4.1 step 5
// requires, and updates every touched variable's pure-literal/score state.
func (e *Engine) allocateClause(lits []Literal) *Clause {
	c := &Clause{}
	c.Sig = clauseSig(lits)

	for _, l := range lits {
		e.clauses.addNode(c, l)
	}

	e.clauses.linkChronological(c)
	if len(lits) > 1 {
		e.clauses.rewatch(c)
		e.enqueueSubsumption(c)
	}

	for _, l := range lits {
		e.onOccurrenceChanged(l.VarID())
	}

	switch len(lits) {
	case 0:
		e.clauses.empty = c
	case 1:
		if !e.fix(lits[0], TagUnit) {
			e.deriveEmptyClause(lits)
		} else {
			e.Stats.Units++
		}
	}

	e.Stats.AddedClauses++
	return c
}

// deleteClause removes c from every structure it participates in and emits a
// QRAT deletion certificate when c still has literals at the time of removal
// (an already-empty clause, e.g. one strengthened away to nothing, needs no
// deletion line: its own emptiness already closed the proof).
func (e *Engine) deleteClause(c *Clause, reason string) {
	if c.deleted {
		return
	}
	c.deleted = true

	lits := c.Lits()

	e.unlinkSubsumption(c)
	e.clauses.unwatch(c)
	touched := e.clauses.removeAllNodes(c)
	e.clauses.unlinkChronological(c)

	if e.clauses.empty == c {
		e.clauses.empty = nil
	}

	if e.Trace != nil && len(lits) > 0 {
		e.Trace.Deletion(lits, reason)
	}

	for _, v := range touched {
		e.onOccurrenceChanged(v)
	}
}

// strengthenClause removes literal l from clause c in place (forward/
// backward strengthening, spec.md §4.2), re-signing and re-watching it, and
// re-enters it into the backward-subsumption queue since a shorter clause can
// subsume things it previously couldn't.
func (e *Engine) strengthenClause(c *Clause, l Literal) {
	before := c.Lits()

	var target *Node
	for _, n := range c.Nodes {
		if n.Lit == l {
			target = n
			break
		}
	}
	if target == nil {
		return
	}
	e.clauses.removeNode(target)
	after := c.Lits()
	c.Sig = clauseSig(after)

	if len(after) == 0 {
		if e.Trace != nil {
			e.Trace.Deletion(before, "strengthened")
		}
		e.deleteClause(c, "")
		e.onOccurrenceChanged(l.VarID())
		e.deriveEmptyClause(nil)
		return
	}

	e.clauses.rewatch(c)
	e.enqueueSubsumption(c)

	if e.Trace != nil {
		e.Trace.Deletion(before, "strengthened")
		e.Trace.Addition(after[0], after, "strengthened")
	}

	e.onOccurrenceChanged(l.VarID())

	if len(after) == 1 {
		lit := after[0]
		if !e.fix(lit, TagUnit) {
			e.deriveEmptyClause([]Literal{lit})
		} else {
			e.Stats.Units++
		}
	}
}
