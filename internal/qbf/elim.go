package qbf

// runVariableElimination drains the elimination queue in occurrence-score
// order, attempting to eliminate each existential candidate by resolution
// (spec.md §4.6, §4.8). A candidate that exceeds the configured occurrence,
// clause-size, or resolvent-growth caps is simply skipped; it is not
// reinserted, matching bloqqer.c's single-pass elimination order.
func (e *Engine) runVariableElimination() {
	if !e.Opts.Bool("ve") {
		return
	}
	for {
		v, ok := e.elim.pop()
		if !ok {
			return
		}
		vr := e.vars.get(v)
		if vr.Tag != TagFree || e.frozen(v) || vr.Scope.Polarity != Existential {
			continue
		}
		e.tryEliminate(v)
		if e.unsat {
			return
		}
	}
}

// tryEliminate resolves every clause containing v's positive literal against
// every clause containing its negative literal. If the resolvent set doesn't
// exceed the configured excess slack over the original clause count, v is
// eliminated: the originals are deleted (with RATE-style deletion
// certificates) and the resolvents take their place.
func (e *Engine) tryEliminate(v int) {
	pos := PositiveLiteral(v)
	neg := NegativeLiteral(v)

	posOcc := e.clauses.occCount(pos)
	negOcc := e.clauses.occCount(neg)
	if posOcc > e.Opts.Int("elimoccs") || negOcc > e.Opts.Int("elimoccs") {
		return
	}

	var posClauses, negClauses []*Clause
	for n := e.clauses.occAnchor(pos).Head; n != nil; n = n.Next {
		if !n.Clause.deleted {
			posClauses = append(posClauses, n.Clause)
		}
	}
	for n := e.clauses.occAnchor(neg).Head; n != nil; n = n.Next {
		if !n.Clause.deleted {
			negClauses = append(negClauses, n.Clause)
		}
	}

	var resolvents [][]Literal
	for _, pc := range posClauses {
		if len(pc.Nodes) > e.Opts.Int("elimsize") {
			return
		}
		for _, nc := range negClauses {
			if len(nc.Nodes) > e.Opts.Int("elimsize") {
				return
			}
			lits, tautology := resolve(pc, nc, pos)
			if tautology {
				continue
			}
			resolvents = append(resolvents, lits)
		}
	}

	if len(resolvents) > len(posClauses)+len(negClauses)+e.Opts.Int("excess") {
		return
	}

	for _, c := range posClauses {
		e.deleteClause(c, "eliminated")
	}
	for _, c := range negClauses {
		e.deleteClause(c, "eliminated")
	}

	vr := e.vars.get(v)
	e.vars.unlinkVar(v)
	vr.Tag = TagEliminated
	e.elim.remove(v)
	e.Stats.Eliminated++

	for _, lits := range resolvents {
		e.addClauseBuffer(lits, "resolvent")
		if e.unsat {
			return
		}
	}
}

// resolve returns the resolvent of pc (containing pivot) and nc (containing
// -pivot), and whether it is tautological (some other variable appears with
// both polarities, making the resolvent vacuously true and safe to discard).
func resolve(pc, nc *Clause, pivot Literal) ([]Literal, bool) {
	lits := make([]Literal, 0, len(pc.Nodes)+len(nc.Nodes)-2)
	seen := map[Literal]bool{}
	for _, n := range pc.Nodes {
		if n.Lit != pivot {
			lits = append(lits, n.Lit)
			seen[n.Lit] = true
		}
	}
	opp := pivot.Opposite()
	for _, n := range nc.Nodes {
		if n.Lit == opp {
			continue
		}
		if seen[n.Lit.Opposite()] {
			return nil, true
		}
		if !seen[n.Lit] {
			lits = append(lits, n.Lit)
			seen[n.Lit] = true
		}
	}
	return lits, false
}
