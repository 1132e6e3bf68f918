package qbf

// Run drives the full simplification fixpoint (spec.md §4.13): flush the
// trail, then repeatedly apply every enabled technique, in bloqqer.c's
// order, until a round changes nothing, the empty clause is derived, or the
// time budget runs out.
func (e *Engine) Run() {
	e.flushTrail()
	if e.unsat {
		return
	}

	for {
		before := e.fingerprint()

		e.runClauseSplitting()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.runBlockedClauseElimination()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.runHiddenTechniques()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.runEquivalenceReasoning()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.runVariableElimination()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.runUniversalExpansion()
		if e.unsat {
			return
		}
		e.flushTrail()
		if e.unsat {
			return
		}

		e.Stats.FixpointIterations++
		e.Stats.sample()
		if e.Progress != nil {
			e.Progress.Update(e.Stats.FixpointIterations, int64(e.clauses.count), int64(e.vars.count()))
		}

		if e.timedOut() {
			return
		}
		after := e.fingerprint()
		if before == after {
			return
		}
	}
}

// fingerprint is a cheap round-over-round change detector: it sums every
// counter that strictly increases when a technique does useful work, so a
// fixpoint is reached exactly when no enabled technique changed anything on
// the last round.
func (e *Engine) fingerprint() int64 {
	s := e.Stats
	return s.ForwardSubsumed + s.ForwardStrengthened + s.BackwardSubsumed +
		s.BackwardStrengthened + s.UniversalReductions + s.Units +
		s.PureExistential + s.PureUniversal + s.BlockedClauses +
		s.BlockedLiterals + s.HiddenTautologies + s.HiddenBlockedClauses +
		s.HiddenBlockedLiterals + s.Eliminated + s.Substituted +
		s.Expanded + s.Splits + s.Zombies
}
