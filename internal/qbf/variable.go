package qbf

import "github.com/rhartert/qbfprep/qbf"

// Tag is the closed set of terminal states a variable can settle into, plus
// Free for variables still open to every simplification (spec.md §3).
type Tag uint8

const (
	TagFree Tag = iota
	TagUnit
	TagPureExistential
	TagPureUniversal
	TagFixed
	TagZombie
	TagEliminated
	TagSubstituted
	TagExpanded
	TagForallReduced
)

func (t Tag) String() string {
	switch t {
	case TagUnit:
		return "unit"
	case TagPureExistential:
		return "pure-existential"
	case TagPureUniversal:
		return "pure-universal"
	case TagFixed:
		return "fixed"
	case TagZombie:
		return "zombie"
	case TagEliminated:
		return "eliminated"
	case TagSubstituted:
		return "substituted"
	case TagExpanded:
		return "expanded"
	case TagForallReduced:
		return "forall-reduced"
	default:
		return "free"
	}
}

// Variable is the dense, index-addressed record for one formula variable
// (spec.md §3). Index 0 is never used: variable IDs are 1-based internally to
// match the DIMACS convention and let 0 mean "no variable" in fields such as
// ExpansionCopy.
type Variable struct {
	ID int

	Scope *Scope

	Tag Tag

	// FixedLit is the signed literal this variable was assigned when Tag is
	// one of TagUnit/TagPureExistential/TagPureUniversal/TagFixed. It is the
	// literal that is true, not simply "a literal of this variable".
	FixedLit Literal

	// MappedIndex is this variable's 1-based index in the printed output,
	// valid once Map() has run; 0 before that or if the variable was removed.
	MappedIndex int

	// ExpansionCopy is the variable ID of this variable's fresh copy created
	// by universal expansion's existential duplication, or 0 if none.
	ExpansionCopy int

	// ScopePrev/ScopeNext thread this variable into its Scope's doubly-linked
	// variable list.
	ScopePrev, ScopeNext int

	// PosOcc/NegOcc are not maintained: the occurrence-list anchors for this
	// variable's literals live in clauseStore.occ.
	PosOcc, NegOcc OccAnchor

	// Score is the elimination priority (the positive plus negative
	// occurrence counts from clauseStore.occ), mirrored into the elimination
	// heap key.
	Score int

	// inHeap is not maintained; elimQueue.present (elimqueue.go) tracks heap
	// membership.
	inHeap bool
}

// Value derives the public qbf.Value an embedder observes for this variable.
func (v *Variable) Value() qbf.Value {
	switch v.Tag {
	case TagFree:
		return qbf.Unknown
	case TagEliminated, TagSubstituted, TagExpanded, TagZombie, TagForallReduced:
		return qbf.DontCare
	default:
		if v.FixedLit.IsPositive() {
			return qbf.Positive
		}
		return qbf.Negative
	}
}

// variableTable owns every Variable, indexed by ID (1-based; index 0 unused).
type variableTable struct {
	vars []Variable
}

func newVariableTable() *variableTable {
	return &variableTable{vars: make([]Variable, 1)}
}

func (t *variableTable) add(scope *Scope) int {
	id := len(t.vars)
	t.vars = append(t.vars, Variable{
		ID:       id,
		Scope:    scope,
		ScopePrev: 0,
		ScopeNext: 0,
	})
	return id
}

func (t *variableTable) get(id int) *Variable {
	return &t.vars[id]
}

func (t *variableTable) count() int {
	return len(t.vars) - 1
}
