package qbf

import (
	"time"

	"github.com/rhartert/qbfprep/internal/qrat"
	"github.com/rhartert/qbfprep/qbf"
)

// Engine is the single, centrally-owned preprocessing state (spec.md §9
// "Global mutable engine state"): the variable table, clause store,
// quantifier prefix, elimination heap, and trail are all fields here and
// every technique operates on *Engine, the way every technique in the
// teacher operates on *sat.Solver.
type Engine struct {
	Opts  *Options
	Stats *Stats
	Trace *qrat.Writer

	vars   *variableTable
	prefix *prefix
	clauses *clauseStore
	elim   *elimQueue

	// trail is the ordered sequence of fixed literals; trailPos is the
	// "next to propagate" cursor (spec.md §3 Trail).
	trail    []Literal
	trailPos int

	// assigns is indexed by signed Literal and mirrors the trail: assigns[l]
	// is LTrue once l has been fixed, LFalse once its opposite has, else
	// LUnknown.
	assigns []LBool

	// scratch buffers reused across clause-addition calls to avoid
	// reallocating on every clause (spec.md §5 "scoped regions of the
	// literal buffer... cleared to empty on exit").
	buf    []Literal
	auxBuf []Literal

	// subsumeHead/subsumeTail thread the backward-subsumption queue
	// (spec.md §4.2): clauses added or strengthened are enqueued here and
	// drained one at a time by runBackwardSubsumption.
	subsumeHead, subsumeTail *Clause

	// subsumeMark is the scratch literal-membership set reused by every
	// subset/self-subsumption test (spec.md §4.2); indexed by signed Literal.
	subsumeMark *MarkSet

	// unsat is set once the empty clause has been derived.
	unsat bool

	// partialAssignment / assignedScope implement spec.md §3's partial-
	// assignment mode: a frozen outermost scope that simplifications must
	// never strip values from.
	partialAssignment bool
	assignedScope      int

	origNumVars int

	startTime time.Time
	deadline  time.Time
	hasDeadline bool

	Progress *ProgressReporter
}

// NewEngine returns a fresh Engine with default options. nVars is the
// declared variable count from the QDIMACS header (`p cnf M N`); variables
// may still be added past this count via DeclVar (e.g. universal expansion's
// existential copies, or an embedder calling DeclVar directly).
func NewEngine(nVars int) *Engine {
	e := &Engine{
		Opts:         NewDefaultOptions(),
		Stats:        &Stats{},
		vars:         newVariableTable(),
		prefix:       newPrefix(),
		clauses:      newClauseStore(),
		assignedScope: -1,
	}
	e.elim = newElimQueue(nVars)
	e.clauses.growTo(2*(nVars+1), nVars)
	e.assigns = make([]LBool, 2*(nVars+1))
	e.subsumeMark = NewMarkSet(2 * (nVars + 1))
	e.buf = make([]Literal, 0, 64)
	e.auxBuf = make([]Literal, 0, 64)
	return e
}

// NumVars returns the number of declared variables (including any created by
// universal expansion).
func (e *Engine) NumVars() int {
	return e.vars.count()
}

// DeclVar declares a new variable in the given scope and returns its ID.
// Grows every per-variable/per-literal structure to match.
func (e *Engine) DeclVar(s *Scope) int {
	id := e.vars.add(s)
	e.vars.linkVar(s, id)
	e.clauses.growTo(2*(id+1), id)
	for len(e.assigns) < 2*(id+1) {
		e.assigns = append(e.assigns, LUnknown, LUnknown)
	}
	e.subsumeMark.Grow(2)
	e.elim.growBy(1)
	e.elim.insert(id, 0)
	return id
}

// AppendScope appends (or merges into the innermost) a scope of the given
// polarity and returns it, per QDIMACS's alternating-block merge rule
// (spec.md §6).
func (e *Engine) AppendScope(pol Polarity) *Scope {
	return e.prefix.appendScope(pol)
}

// ImplicitScope returns the scope to use for a variable referenced in the
// clause matrix but never declared in a quantifier block. The QDIMACS
// convention for such "free" variables is outermost-existential, but since
// the prefix is already fixed by the time clauses are read, an undeclared
// variable is attached to the prefix's current innermost scope instead if
// one already exists, whatever its polarity.
func (e *Engine) ImplicitScope() *Scope {
	if e.prefix.innerMost == nil {
		return e.AppendScope(Existential)
	}
	return e.prefix.innerMost
}

// AddClause is the public entry point for adding a clause once parsing is
// done (library API, spec.md §6): lits goes through the same pipeline as
// clauses produced internally by simplification.
func (e *Engine) AddClause(lits []Literal, reason string) *Clause {
	return e.addClauseBuffer(lits, reason)
}

// Map assigns each still-free variable a 1-based printed index in prefix
// order, or keeps its original QDIMACS index if keepOriginal is set (spec.md
// §6 "keep original variable indices"). Returns the number of free
// variables. Must be called before Scopes/ScopeVars/LiveClauses/VarOut are
// used for output.
func (e *Engine) Map(keepOriginal bool) int {
	n := 0
	for s := e.prefix.outerMost; s != nil; s = s.Next {
		for id := s.Head; id != 0; id = e.vars.get(id).ScopeNext {
			n++
			if keepOriginal {
				e.vars.get(id).MappedIndex = id
			} else {
				e.vars.get(id).MappedIndex = n
			}
		}
	}
	return n
}

// Scopes returns the prefix's scopes, outermost first.
func (e *Engine) Scopes() []*Scope {
	var out []*Scope
	for s := e.prefix.outerMost; s != nil; s = s.Next {
		out = append(out, s)
	}
	return out
}

// ScopeVars returns the mapped printed indices of s's still-free variables,
// in scope-list order. Map must be called first.
func (e *Engine) ScopeVars(s *Scope) []int {
	var out []int
	for id := s.Head; id != 0; id = e.vars.get(id).ScopeNext {
		out = append(out, e.vars.get(id).MappedIndex)
	}
	return out
}

// NumLiveClauses returns the number of clauses currently in the formula.
func (e *Engine) NumLiveClauses() int {
	return e.clauses.count
}

// LiveClauses returns every live clause's literals as signed DIMACS integers
// under the mapping established by Map, in chronological order.
func (e *Engine) LiveClauses() [][]int {
	out := make([][]int, 0, e.clauses.count)
	for c := e.clauses.first; c != nil; c = c.Next {
		lits := make([]int, len(c.Nodes))
		for i, n := range c.Nodes {
			lits[i] = n.Lit.Signed(e.vars.get(n.Lit.VarID()).MappedIndex)
		}
		out = append(out, lits)
	}
	return out
}

// VarOut returns a function mapping an internal variable ID to its printed
// index, for wiring into qrat.New.
func (e *Engine) VarOut() func(int) int {
	return func(id int) int { return e.vars.get(id).MappedIndex }
}

// LitValue returns the lifted-boolean value of literal l under the trail.
func (e *Engine) LitValue(l Literal) LBool {
	return e.assigns[l]
}

// VarValue returns the lifted-boolean value of variable v's positive
// literal.
func (e *Engine) VarValue(v int) LBool {
	return e.assigns[PositiveLiteral(v)]
}

// GetValue returns the embedder-visible value of variable v (library API
// §6).
func (e *Engine) GetValue(v int) qbf.Value {
	return e.vars.get(v).Value()
}

// HasEmptyClause reports whether the empty clause has been derived.
func (e *Engine) HasEmptyClause() bool {
	return e.unsat
}

// SetTimeLimit configures a wall-clock preprocessing budget, 0 meaning
// unbounded (spec.md §7 "time budget").
func (e *Engine) SetTimeLimit(d time.Duration) {
	if d <= 0 {
		e.hasDeadline = false
		return
	}
	e.hasDeadline = true
	e.deadline = time.Now().Add(d)
}

func (e *Engine) timedOut() bool {
	return e.hasDeadline && time.Now().After(e.deadline)
}

// Propositional reports whether the prefix has no remaining universal
// variable (spec.md §4.13 step 5).
func (e *Engine) Propositional() bool {
	return e.prefix.propositional()
}

func (e *Engine) scopeOrder(l Literal) int {
	return e.vars.get(l.VarID()).Scope.Order
}

func (e *Engine) isUniversal(l Literal) bool {
	return e.vars.get(l.VarID()).Scope.Polarity == Universal
}

// frozen reports whether v's value must not be touched by a simplification,
// per partial-assignment mode (spec.md §3 invariant, §9 open question: kept
// conservative).
func (e *Engine) frozen(v int) bool {
	if !e.partialAssignment {
		return false
	}
	return e.vars.get(v).Scope.Order <= e.assignedScope
}
