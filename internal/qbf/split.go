package qbf

// runClauseSplitting breaks every live clause longer than splitlim into a
// chain of shorter clauses linked by fresh existential Tseitin variables
// (spec.md §4.12), mirroring bloqqer.c's split_clause.
func (e *Engine) runClauseSplitting() {
	if !e.Opts.Bool("split") {
		return
	}
	limit := e.Opts.Int("splitlim")

	for c := e.clauses.first; c != nil; {
		next := c.Next
		if !c.deleted && len(c.Nodes) > limit {
			e.splitClause(c, limit)
			if e.unsat {
				return
			}
		}
		c = next
	}
}

// splitScope is the innermost existential scope of the prefix, or a freshly
// appended one if the prefix has none (split variables must be existential
// so the solver is free to choose a witness for them).
func (e *Engine) splitScope() *Scope {
	for s := e.prefix.innerMost; s != nil; s = s.Prev {
		if s.Polarity == Existential {
			return s
		}
	}
	return e.prefix.appendScope(Existential)
}

func (e *Engine) splitClause(c *Clause, limit int) {
	lits := c.Lits()
	e.deleteClause(c, "split")

	scope := e.splitScope()
	head := lits
	for len(head) > limit {
		k := limit - 1
		chunk := head[:k]
		rest := head[k:]

		y := e.DeclVar(scope)
		piece := append(append([]Literal(nil), chunk...), PositiveLiteral(y))
		e.addClauseBuffer(piece, "split")
		if e.unsat {
			return
		}
		e.Stats.Splits++

		head = append([]Literal{NegativeLiteral(y)}, rest...)
	}

	e.addClauseBuffer(head, "split")
}
