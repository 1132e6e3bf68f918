package qbf

// hiddenExtend grows clause c's literal set by hidden-literal addition
// (spec.md §4.11), following bloqqer.c's hidden_tautology: for every literal
// lit already in the working set L, every other clause d containing lit
// (same sign, not -lit) is inspected. If every other literal of d already
// agrees with L, c is hidden-subsumed by d and is redundant outright. If
// exactly one literal `other` of d is undetermined (neither other nor -other
// is in L), its negation -other is implied by L and gets added; if any other
// literal of d contradicts L (-other already in L) or a second undetermined
// literal turns up, d yields nothing and is skipped. Adding a literal whose
// opposite is already in L closes a hidden tautology, at which point c is
// redundant and extra is nil. With covered=false only binary clauses
// participate (plain hidden tautology/hidden blocked-clause addition); with
// covered=true any clause may (an approximation of covered literal addition,
// spec.md §4.11 "covered literal" — see DESIGN.md).
func (e *Engine) hiddenExtend(c *Clause, mark *MarkSet, stepLimit int, covered bool) (tautology bool, extra []Literal) {
	mark.Clear()
	queue := c.Lits()
	for _, l := range queue {
		mark.Add(int(l))
	}

	steps := 0
	for i := 0; i < len(queue); i++ {
		lit := queue[i]
		anchor := e.clauses.occAnchor(lit)
		for n := anchor.Head; n != nil; n = n.Next {
			d := n.Clause
			if d.deleted || d == c {
				continue
			}
			if !covered && len(d.Nodes) != 2 {
				continue
			}

			steps++
			if steps > stepLimit {
				return false, extra
			}

			var add Literal
			found := false
			aborted := false
			for _, m := range d.Nodes {
				other := m.Lit
				if other == lit {
					continue
				}
				if mark.Contains(int(other)) {
					continue // other already agrees with L
				}
				if found || mark.Contains(int(other.Opposite())) {
					aborted = true
					break
				}
				add = other.Opposite()
				found = true
			}
			if aborted {
				continue // d contradicts L or leaves more than one literal open
			}
			if !found {
				return true, nil // every literal of d already agrees with L: c is hidden-subsumed
			}
			if mark.Contains(int(add.Opposite())) {
				return true, nil
			}
			mark.Add(int(add))
			queue = append(queue, add)
			extra = append(extra, add)
		}
	}
	return false, extra
}

// runHiddenTechniques runs hidden tautology elimination, hidden blocked
// clause/literal elimination, and covered literal addition over every live
// clause once (spec.md §4.11).
func (e *Engine) runHiddenTechniques() {
	hte := e.Opts.Bool("hte")
	cce := e.Opts.Bool("cce")
	hbce := e.Opts.Bool("hbce")
	hble := e.Opts.Bool("hble")
	if !hte && !cce && !hbce && !hble {
		return
	}

	limit := e.Opts.Int("htesteps")
	sizeLimit := e.Opts.Int("htesize")

	for c := e.clauses.first; c != nil; {
		next := c.Next
		if c.deleted || len(c.Nodes) == 0 || len(c.Nodes) > sizeLimit {
			c = next
			continue
		}

		if hte || hbce || hble {
			tautology, extra := e.hiddenExtend(c, e.subsumeMark, limit, false)
			if tautology {
				e.Stats.HiddenTautologies++
				e.deleteClause(c, "hidden tautology")
				c = next
				continue
			}
			if (hbce || hble) && len(extra) > 0 {
				e.hiddenBlock(c, extra, hbce, hble)
			}
		}

		if cce && !c.deleted {
			if tautology, extra := e.hiddenExtend(c, e.subsumeMark, limit, true); tautology {
				e.Stats.HiddenTautologies++
				e.deleteClause(c, "hidden tautology (covered)")
			} else {
				e.Stats.CoveredLiteralSteps += int64(len(extra))
			}
		}

		c = next
	}
}

// hiddenBlock checks whether any of c's original literals is blocked once c
// is considered together with its hidden extension extra (spec.md §4.11
// "hidden blocked clause/literal"): every clause containing the opposite of
// the candidate pivot must resolve to a tautology against c's extended
// literal set. A blocked existential pivot deletes c (HBCE); a blocked
// universal pivot only has that literal stripped from c (HBLE), never the
// whole clause, matching the BCE/BLE asymmetry in blocked.go.
func (e *Engine) hiddenBlock(c *Clause, extra []Literal, hbce, hble bool) {
	extended := &Clause{Nodes: make([]*Node, 0, len(c.Nodes)+len(extra))}
	for _, n := range c.Nodes {
		extended.Nodes = append(extended.Nodes, &Node{Lit: n.Lit})
	}
	for _, l := range extra {
		extended.Nodes = append(extended.Nodes, &Node{Lit: l})
	}

	for _, n := range append([]*Node(nil), c.Nodes...) {
		if c.deleted {
			return
		}
		l := n.Lit
		if e.frozen(l.VarID()) || !e.isBlocked(extended, l) {
			continue
		}
		if hbce && !e.isUniversal(l) {
			e.Stats.HiddenBlockedClauses++
			e.deleteClause(c, "hidden blocked clause")
			return
		}
		if hble && e.isUniversal(l) && len(c.Nodes) > 1 {
			e.Stats.HiddenBlockedLiterals++
			e.strengthenClause(c, l)
		}
	}
}
