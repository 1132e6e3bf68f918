package qbf

// subset reports whether every literal of a appears in b, i.e. a subsumes b
// (spec.md §4.2). The signature pre-filter rules out the common case cheaply
// before falling back to the mark-set scan.
func subset(a, b *Clause, mark *MarkSet) bool {
	if len(a.Nodes) > len(b.Nodes) {
		return false
	}
	if sig1Blocks(a.Sig, b.Sig) {
		return false
	}
	mark.Clear()
	for _, n := range b.Nodes {
		mark.Add(int(n.Lit))
	}
	for _, n := range a.Nodes {
		if !mark.Contains(int(n.Lit)) {
			return false
		}
	}
	return true
}

// selfSubsumingLiteral reports whether a self-subsumes b: every literal of a
// appears in b except exactly one, whose opposite appears in b instead. When
// true, b can be strengthened by removing that opposite literal (spec.md
// §4.2 "self-subsumption"). Callers should only consult this after subset
// has already returned false, since an ordinary subsumption is a strictly
// stronger result.
func selfSubsumingLiteral(a, b *Clause, mark *MarkSet) (Literal, bool) {
	if len(a.Nodes) > len(b.Nodes)+1 {
		return 0, false
	}
	mark.Clear()
	for _, n := range b.Nodes {
		mark.Add(int(n.Lit))
	}
	var flip Literal
	found := false
	for _, n := range a.Nodes {
		if mark.Contains(int(n.Lit)) {
			continue
		}
		if found || !mark.Contains(int(n.Lit.Opposite())) {
			return 0, false
		}
		flip = n.Lit.Opposite()
		found = true
	}
	return flip, found
}

// forwardSubsumeCheck looks for an existing clause that subsumes or
// self-subsumes a candidate literal buffer before it is ever allocated
// (spec.md §4.2 "forward subsumption"/"forward strengthening"). It scans the
// watch chain of the buffer's least-occurring variable, the same chain
// backward subsumption uses, so a clause only needs one watch slot to serve
// both directions.
//
// Returns (true, nil) if the buffer is already subsumed (nothing to add),
// or (false, buf-with-one-literal-removed) if it was forward-strengthened,
// or (false, buf) unchanged otherwise.
func (e *Engine) forwardSubsumeCheck(buf []Literal) (subsumed bool, out []Literal) {
	if len(buf) == 0 {
		return false, buf
	}

	watchVar := buf[0].VarID()
	bestCount := e.clauses.occCount(PositiveLiteral(watchVar)) + e.clauses.occCount(NegativeLiteral(watchVar))
	for _, l := range buf[1:] {
		v := l.VarID()
		cnt := e.clauses.occCount(PositiveLiteral(v)) + e.clauses.occCount(NegativeLiteral(v))
		if cnt < bestCount {
			watchVar = v
			bestCount = cnt
		}
	}

	probe := &Clause{Sig: clauseSig(buf)}
	probe.Nodes = make([]*Node, len(buf))
	for i, l := range buf {
		probe.Nodes[i] = &Node{Lit: l}
	}

	wa := &e.clauses.watch[watchVar]
	for d := wa.Head; d != nil; d = d.WatchNext {
		if d.deleted {
			continue
		}
		if subset(d, probe, e.subsumeMark) {
			e.Stats.ForwardSubsumed++
			return true, nil
		}
	}
	for d := wa.Head; d != nil; d = d.WatchNext {
		if d.deleted {
			continue
		}
		if l, ok := selfSubsumingLiteral(d, probe, e.subsumeMark); ok {
			e.Stats.ForwardStrengthened++
			kept := make([]Literal, 0, len(buf)-1)
			for _, m := range buf {
				if m != l {
					kept = append(kept, m)
				}
			}
			return false, kept
		}
	}
	return false, buf
}

// runBackwardSubsumption drains the backward-subsumption queue, checking
// each freshly added or strengthened clause against every other clause on
// the watch chain of one of its variables: clauses it subsumes are deleted
// outright, clauses it self-subsumes are strengthened in place (spec.md
// §4.2). A clause that shares c's variables but is watched on a variable
// outside c is not checked.
func (e *Engine) runBackwardSubsumption() {
	for {
		c := e.dequeueSubsumption()
		if c == nil {
			return
		}
		if c.deleted {
			continue
		}
		e.subsumeAgainst(c)
		if e.unsat {
			return
		}
	}
}

func (e *Engine) subsumeAgainst(c *Clause) {
	for _, n := range c.Nodes {
		wa := &e.clauses.watch[n.Lit.VarID()]
		d := wa.Head
		for d != nil {
			next := d.WatchNext
			if d != c && !d.deleted {
				if subset(c, d, e.subsumeMark) {
					e.Stats.BackwardSubsumed++
					e.deleteClause(d, "backward subsumed")
				} else if l, ok := selfSubsumingLiteral(c, d, e.subsumeMark); ok {
					e.Stats.BackwardStrengthened++
					e.strengthenClause(d, l)
				}
			}
			d = next
		}
	}
}
