package qbf

import "testing"

// newTestEngine builds an engine with n existential variables all in one
// outermost scope, mirroring a purely-propositional QDIMACS instance.
func newTestEngine(n int) (*Engine, []int) {
	e := NewEngine(n)
	s := e.AppendScope(Existential)
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = e.DeclVar(s)
	}
	return e, ids
}

func TestEmptyClauseIsUnsat(t *testing.T) {
	e, _ := newTestEngine(1)
	e.AddClause(nil, "test")

	if !e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = false after adding an empty clause")
	}
}

func TestUnitPropagationSatisfiesClause(t *testing.T) {
	e, v := newTestEngine(2)
	e.AddClause([]Literal{PositiveLiteral(v[0])}, "test")
	e.AddClause([]Literal{NegativeLiteral(v[0]), PositiveLiteral(v[1])}, "test")

	e.Run()

	if e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = true, want satisfiable by unit propagation")
	}
	if got := e.GetValue(v[0]); got.String() != "positive" {
		t.Errorf("GetValue(v0) = %v, want positive", got)
	}
}

func TestContradictingUnitsDeriveUnsat(t *testing.T) {
	e, v := newTestEngine(1)
	e.AddClause([]Literal{PositiveLiteral(v[0])}, "test")
	e.AddClause([]Literal{NegativeLiteral(v[0])}, "test")

	e.Run()

	if !e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = false, want true for contradicting units")
	}
}

func TestPureLiteralSatisfiesClause(t *testing.T) {
	e, v := newTestEngine(2)
	// v0 occurs only positively across the whole formula.
	e.AddClause([]Literal{PositiveLiteral(v[0]), PositiveLiteral(v[1])}, "test")
	e.AddClause([]Literal{PositiveLiteral(v[0]), NegativeLiteral(v[1])}, "test")

	e.Run()

	if e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = true, want satisfiable by pure-literal fixing")
	}
	if e.NumLiveClauses() != 0 {
		t.Errorf("NumLiveClauses() = %d, want 0 after pure-literal fixing", e.NumLiveClauses())
	}
}

func TestUniversalReductionStripsTrailingUniversal(t *testing.T) {
	e := NewEngine(2)
	es := e.AppendScope(Existential)
	x := e.DeclVar(es)
	us := e.AppendScope(Universal)
	u := e.DeclVar(us)

	// (x v u) has no existential literal deeper than u, so u reduces away.
	e.AddClause([]Literal{PositiveLiteral(x), PositiveLiteral(u)}, "test")

	if e.Stats.UniversalReductions == 0 {
		t.Errorf("UniversalReductions = 0, want at least 1 after adding (x v u)")
	}
	for _, lits := range e.LiveClauses() {
		for _, l := range lits {
			v := l
			if v < 0 {
				v = -v
			}
			if v == u {
				t.Errorf("clause %v still contains the reduced universal variable", lits)
			}
		}
	}
}

func TestBlockedClauseEliminationRemovesClause(t *testing.T) {
	e, v := newTestEngine(2)
	// (x v y) is blocked on x: its only resolvent against clauses containing
	// -x is tautological because no clause mentions -x at all.
	e.AddClause([]Literal{PositiveLiteral(v[0]), PositiveLiteral(v[1])}, "test")

	e.Run()

	if e.NumLiveClauses() != 0 {
		t.Errorf("NumLiveClauses() = %d, want 0 after blocked-clause elimination", e.NumLiveClauses())
	}
	if e.Stats.BlockedClauses == 0 {
		t.Errorf("BlockedClauses = 0, want at least 1")
	}
}

func TestVariableEliminationRemovesPivot(t *testing.T) {
	e, v := newTestEngine(3)
	e.AddClause([]Literal{NegativeLiteral(v[0]), PositiveLiteral(v[1])}, "test")
	e.AddClause([]Literal{PositiveLiteral(v[0]), PositiveLiteral(v[2])}, "test")

	e.Run()

	if e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = true unexpectedly")
	}
	if e.GetValue(v[0]).String() == "unknown" {
		t.Errorf("v0 should have settled to a terminal tag (eliminated or otherwise), got unknown")
	}
}

func TestEquivalenceSubstitutesRepresentative(t *testing.T) {
	e, v := newTestEngine(3)
	// v0 <-> v1 via the two binary clauses, then a third clause (v1 v v2).
	e.AddClause([]Literal{NegativeLiteral(v[0]), PositiveLiteral(v[1])}, "test")
	e.AddClause([]Literal{PositiveLiteral(v[0]), NegativeLiteral(v[1])}, "test")
	e.AddClause([]Literal{PositiveLiteral(v[1]), PositiveLiteral(v[2])}, "test")

	e.Run()

	if e.HasEmptyClause() {
		t.Fatalf("HasEmptyClause() = true, want satisfiable")
	}
}
