package qbf

// resolventIsTautological reports whether resolving c and d on pivot literal
// l (present in c, with -l present in d) produces a tautological clause:
// some other variable appears positively in one and negatively in the other
// (spec.md §4.7).
func resolventIsTautological(c, d *Clause, l Literal, mark *MarkSet) bool {
	mark.Clear()
	for _, n := range c.Nodes {
		if n.Lit != l {
			mark.Add(int(n.Lit))
		}
	}
	opp := l.Opposite()
	for _, n := range d.Nodes {
		if n.Lit == opp {
			continue
		}
		if mark.Contains(int(n.Lit.Opposite())) {
			return true
		}
	}
	return false
}

// isBlocked reports whether literal l (occurring in clause c) blocks c: every
// clause containing -l resolves with c to a tautology (spec.md §4.7). A
// frozen variable (partial-assignment mode) can never serve as a blocking
// pivot (spec.md §3).
func (e *Engine) isBlocked(c *Clause, l Literal) bool {
	if e.frozen(l.VarID()) {
		return false
	}
	if e.clauses.occCount(l.Opposite()) > e.Opts.Int("blkmax2occs") {
		return false
	}
	anchor := e.clauses.occAnchor(l.Opposite())
	for n := anchor.Head; n != nil; n = n.Next {
		d := n.Clause
		if d == c || d.deleted {
			continue
		}
		if len(d.Nodes) > e.Opts.Int("blkmax2size") {
			return false
		}
		if !resolventIsTautological(c, d, l, e.subsumeMark) {
			return false
		}
	}
	return true
}

// runBlockedClauseElimination makes one pass over every live clause, testing
// each of its literals for blockedness. A blocked existential literal removes
// the whole clause (BCE); a blocked universal literal is only stripped from
// the clause (BLE), never used to delete it, matching bloqqer.c's block_lit
// (spec.md §4.7).
func (e *Engine) runBlockedClauseElimination() {
	bce := e.Opts.Bool("bce")
	ble := e.Opts.Bool("ble")
	if !bce && !ble {
		return
	}
	for c := e.clauses.first; c != nil; {
		next := c.Next
		if !c.deleted && len(c.Nodes) > 0 && len(c.Nodes) <= e.Opts.Int("blkmax1size") {
			e.blockClause(c, bce, ble)
		}
		c = next
	}
}

func (e *Engine) blockClause(c *Clause, bce, ble bool) {
	for _, n := range append([]*Node(nil), c.Nodes...) {
		if c.deleted {
			return
		}
		l := n.Lit
		if bce && !e.isUniversal(l) && e.isBlocked(c, l) {
			e.Stats.BlockedClauses++
			e.deleteClause(c, "blocked clause")
			return
		}
		if ble && e.isUniversal(l) && len(c.Nodes) > 1 && e.isBlocked(c, l) {
			e.Stats.BlockedLiterals++
			e.strengthenClause(c, l)
		}
	}
}
