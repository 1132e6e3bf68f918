package qbf

// implicationTargets returns every literal m such that l -> m via a binary
// clause (-l v m) currently in the formula (spec.md §4.9).
func (e *Engine) implicationTargets(l Literal) []Literal {
	var out []Literal
	anchor := e.clauses.occAnchor(l.Opposite())
	for n := anchor.Head; n != nil; n = n.Next {
		c := n.Clause
		if c.deleted || len(c.Nodes) != 2 {
			continue
		}
		for _, m := range c.Nodes {
			if m.Lit != l.Opposite() {
				out = append(out, m.Lit)
			}
		}
	}
	return out
}

// runEquivalenceReasoning finds strongly connected components of the binary
// implication graph (an iterative, explicit-stack Tarjan so that formulas
// with long implication chains don't blow the call stack) and substitutes
// every non-representative literal of each nontrivial component with its
// representative (spec.md §4.9).
func (e *Engine) runEquivalenceReasoning() {
	if !e.Opts.Bool("eq") {
		return
	}

	n := len(e.assigns)
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
		comp[i] = -1
	}

	type frame struct {
		lit     Literal
		targets []Literal
		ti      int
	}

	var stack []Literal
	counter := 0
	compCount := 0
	live := func(l Literal) bool { return e.vars.get(l.VarID()).Tag == TagFree }

	for start := Literal(0); int(start) < n; start++ {
		if index[start] != -1 || !live(start) {
			continue
		}

		var frames []frame
		push := func(l Literal) {
			index[l] = counter
			low[l] = counter
			counter++
			stack = append(stack, l)
			onStack[l] = true
			frames = append(frames, frame{lit: l, targets: e.implicationTargets(l)})
		}
		push(start)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			if top.ti < len(top.targets) {
				w := top.targets[top.ti]
				top.ti++
				if !live(w) {
					continue
				}
				if index[w] == -1 {
					push(w)
				} else if onStack[w] && index[w] < low[top.lit] {
					low[top.lit] = index[w]
				}
				continue
			}

			if low[top.lit] == index[top.lit] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = compCount
					if w == top.lit {
						break
					}
				}
				compCount++
			}

			closedLow := low[top.lit]
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if closedLow < low[parent.lit] {
					low[parent.lit] = closedLow
				}
			}
		}
	}

	e.applyEquivalences(comp, compCount)
}

// applyEquivalences substitutes every nontrivial equivalence class discovered
// by runEquivalenceReasoning, or derives the empty clause if some class
// contains both a literal and its opposite (x <-> -x).
func (e *Engine) applyEquivalences(comp []int, compCount int) {
	groups := make([][]Literal, compCount)
	for l := 0; l < len(comp); l++ {
		c := comp[l]
		if c == -1 {
			continue
		}
		groups[c] = append(groups[c], Literal(l))
	}

	for _, lits := range groups {
		if len(lits) < 2 {
			continue
		}

		present := map[Literal]bool{}
		for _, l := range lits {
			present[l] = true
		}
		contradiction := false
		for _, l := range lits {
			if present[l.Opposite()] {
				contradiction = true
				break
			}
		}
		if contradiction {
			e.deriveEmptyClause(nil)
			return
		}

		rep := lits[0]
		for _, l := range lits[1:] {
			if l.VarID() < rep.VarID() {
				rep = l
			}
		}
		for _, l := range lits {
			if l.VarID() == rep.VarID() {
				continue
			}
			e.substituteLiteral(l, rep)
			if e.unsat {
				return
			}
		}
	}
}

// substituteLiteral rewrites every clause mentioning l or -l to use rep or
// -rep instead, then tags l's variable Substituted (spec.md §4.9).
func (e *Engine) substituteLiteral(l, rep Literal) {
	v := l.VarID()
	vr := e.vars.get(v)
	if vr.Tag != TagFree || e.frozen(v) {
		return
	}

	e.rewriteOccurrences(l, rep)
	if e.unsat {
		return
	}
	e.rewriteOccurrences(l.Opposite(), rep.Opposite())
	if e.unsat {
		return
	}

	e.vars.unlinkVar(v)
	vr.Tag = TagSubstituted
	vr.FixedLit = rep
	e.elim.remove(v)
	e.Stats.Substituted++
	e.Stats.EquivalenceRounds++

	if e.Trace != nil {
		e.Trace.Addition(l, []Literal{l, rep.Opposite()}, "equivalence")
		e.Trace.Addition(l.Opposite(), []Literal{l.Opposite(), rep}, "equivalence")
	}
}

// rewriteOccurrences replaces every occurrence of literal from with to,
// deleting and re-adding each touched clause through the normal pipeline so
// that triviality/subsumption/universal-reduction are all re-checked on the
// rewritten clause (spec.md §4.9).
func (e *Engine) rewriteOccurrences(from, to Literal) {
	anchor := e.clauses.occAnchor(from)
	for n := anchor.Head; n != nil; {
		next := n.Next
		c := n.Clause
		if !c.deleted {
			lits := make([]Literal, 0, len(c.Nodes))
			for _, m := range c.Nodes {
				if m == n {
					lits = append(lits, to)
				} else {
					lits = append(lits, m.Lit)
				}
			}
			e.deleteClause(c, "rewritten by equivalence")
			e.addClauseBuffer(lits, "equivalence rewrite")
			if e.unsat {
				return
			}
		}
		n = next
	}
}
