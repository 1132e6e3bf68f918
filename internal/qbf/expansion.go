package qbf

// runUniversalExpansion expands universal variables whose existential cone
// (the free existential variables reachable below it in the prefix) is cheap
// enough to duplicate within the configured cost slack (spec.md §4.10).
// Expanding a universal variable u removes it from the formula by
// duplicating every existential variable in its cone: clauses containing u
// project onto the u=false copy (kept on the original variables), clauses
// containing -u project onto the u=true copy (rewritten onto the duplicated
// variables).
func (e *Engine) runUniversalExpansion() {
	if !e.Opts.Bool("exp") {
		return
	}
	e.prefix.recomputeStretch()

	for s := e.prefix.outerMost; s != nil; s = s.Next {
		if s.Polarity != Universal {
			continue
		}
		for id := s.Head; id != 0; {
			next := e.vars.get(id).ScopeNext
			e.tryExpand(id)
			if e.unsat {
				return
			}
			id = next
		}
	}
}

func (e *Engine) tryExpand(u int) {
	vr := e.vars.get(u)
	if vr.Tag != TagFree || e.frozen(u) {
		return
	}

	cone := e.existentialCone(vr.Scope)
	cost := 0
	for _, x := range cone {
		cost += e.clauses.occCount(PositiveLiteral(x)) + e.clauses.occCount(NegativeLiteral(x))
	}
	if cost > e.Opts.Int("axcess") {
		return
	}

	copyOf := make(map[int]int, len(cone))
	for _, x := range cone {
		xr := e.vars.get(x)
		if xr.Tag != TagFree {
			continue
		}
		id := e.DeclVar(xr.Scope)
		copyOf[x] = id
		e.vars.get(x).ExpansionCopy = id
	}

	pos := PositiveLiteral(u)
	neg := NegativeLiteral(u)

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

	for _, c := range posClauses {
		lits := make([]Literal, 0, len(c.Nodes)-1)
		for _, n := range c.Nodes {
			if n.Lit != pos {
				lits = append(lits, n.Lit)
			}
		}
		e.deleteClause(c, "")
		e.addClauseBuffer(lits, "universal expansion")
		if e.unsat {
			return
		}
	}
	for _, c := range negClauses {
		lits := make([]Literal, 0, len(c.Nodes)-1)
		for _, n := range c.Nodes {
			if n.Lit != neg {
				lits = append(lits, e.expandedLiteral(n.Lit, copyOf))
			}
		}
		e.deleteClause(c, "")
		e.addClauseBuffer(lits, "universal expansion")
		if e.unsat {
			return
		}
	}

	e.vars.get(u).Tag = TagExpanded
	e.vars.unlinkVar(u)
	e.elim.remove(u)
	e.Stats.Expanded++
}

// expandedLiteral returns l rewritten onto its expansion copy if l's variable
// was duplicated for this expansion, unchanged otherwise.
func (e *Engine) expandedLiteral(l Literal, copyOf map[int]int) Literal {
	id, ok := copyOf[l.VarID()]
	if !ok {
		return l
	}
	if l.IsPositive() {
		return PositiveLiteral(id)
	}
	return NegativeLiteral(id)
}

// existentialCone returns every free existential variable in a scope deeper
// than s (spec.md §4.10 "downward existential cone").
func (e *Engine) existentialCone(s *Scope) []int {
	var cone []int
	for t := s.Next; t != nil; t = t.Next {
		if t.Polarity != Existential {
			continue
		}
		for id := t.Head; id != 0; id = e.vars.get(id).ScopeNext {
			cone = append(cone, id)
		}
	}
	return cone
}
