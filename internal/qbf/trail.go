package qbf

// fix appends l to the trail with the given tag, recording it as the
// variable's FixedLit. Returns false if l's variable was already fixed to
// the opposite value (a conflict: the caller must derive the empty clause).
func (e *Engine) fix(l Literal, tag Tag) bool {
	switch e.assigns[l] {
	case LTrue:
		return true // already fixed consistently
	case LFalse:
		return false // conflict
	}

	v := e.vars.get(l.VarID())
	e.assigns[l] = LTrue
	e.assigns[l.Opposite()] = LFalse
	v.Tag = tag
	v.FixedLit = l
	e.vars.unlinkVar(l.VarID())
	e.elim.remove(l.VarID())

	e.trail = append(e.trail, l)
	return true
}

// deriveEmptyClause records the formula as UNSAT: every remaining clause is
// deleted (with a deletion certificate each, spec.md §4.4) and every still-
// free variable becomes a Zombie (spec.md §3 invariant 5 / §8 property 5).
func (e *Engine) deriveEmptyClause(witness []Literal) {
	if e.unsat {
		return
	}
	e.unsat = true

	for c := e.clauses.first; c != nil; {
		next := c.Next
		e.deleteClause(c, "unsat")
		c = next
	}

	for id := 1; id <= e.vars.count(); id++ {
		v := e.vars.get(id)
		if v.Tag == TagFree {
			e.vars.unlinkVar(id)
			v.Tag = TagZombie
			e.elim.remove(id)
			e.Stats.Zombies++
		} else if v.Tag == TagForallReduced {
			v.Tag = TagZombie
			e.Stats.Zombies++
		}
	}

	if e.Trace != nil && len(witness) > 0 {
		e.Trace.Addition(witness[0], nil, "empty clause derived")
	}
}

// flushTrail repeatedly consumes the next unpropagated trail literal,
// running flushPos then flushNeg for it, until the cursor catches up or the
// empty clause is discovered (spec.md §4.4).
func (e *Engine) flushTrail() {
	for e.trailPos < len(e.trail) {
		l := e.trail[e.trailPos]
		e.trailPos++

		e.flushPos(l)
		if e.unsat {
			return
		}
		e.flushNeg(l)
		if e.unsat {
			return
		}
	}
}

// flushPos deletes every clause containing l: it is now satisfied
// (spec.md §4.4).
func (e *Engine) flushPos(l Literal) {
	anchor := e.clauses.occAnchor(l)
	for n := anchor.Head; n != nil; {
		next := n.Next
		e.deleteClause(n.Clause, "satisfied by unit")
		n = next
	}
}

// flushNeg removes the -l occurrence from every clause containing it,
// shrinking (and re-running the addition pipeline on) the result; discovery
// of the empty clause here means the formula is UNSAT (spec.md §4.4).
func (e *Engine) flushNeg(l Literal) {
	opp := l.Opposite()
	anchor := e.clauses.occAnchor(opp)
	for n := anchor.Head; n != nil; {
		next := n.Next
		c := n.Clause

		lits := make([]Literal, 0, len(c.Nodes)-1)
		for _, m := range c.Nodes {
			if m != n {
				lits = append(lits, m.Lit)
			}
		}

		e.deleteClause(c, "shrunk by unit propagation")
		e.addClauseBuffer(lits, "shrunk clause")
		if e.unsat {
			return
		}

		n = next
	}
}
