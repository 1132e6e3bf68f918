package qbf

import "runtime"

// Stats accumulates the running counters spec.md §6 asks a preprocessor to
// report, mirrored in shape off the teacher's Solver counters
// (TotalConflicts/TotalRestarts/TotalIterations in internal/sat/solver.go).
type Stats struct {
	AddedClauses          int64
	ForwardSubsumed       int64
	ForwardStrengthened   int64
	BackwardSubsumed      int64
	BackwardStrengthened  int64
	UniversalReductions   int64
	Units                 int64
	PureExistential       int64
	PureUniversal         int64
	BlockedClauses        int64
	BlockedLiterals       int64
	HiddenTautologies     int64
	HiddenBlockedClauses  int64
	HiddenBlockedLiterals int64
	CoveredLiteralSteps   int64
	Eliminated            int64
	Substituted           int64
	EquivalenceRounds     int64
	Expanded              int64
	Splits                int64
	Zombies               int64
	FixpointIterations    int64

	// CurrentBytes/PeakBytes are sampled from runtime.MemStats once per
	// fixpoint round (spec.md §5 "every allocation is accounted into
	// running and peak counters"). Go doesn't expose an allocator hook the
	// way a hand-rolled C allocator would, so this is a periodic sample
	// rather than a running ledger; see SPEC_FULL.md §5.
	CurrentBytes uint64
	PeakBytes    uint64
}

// sample refreshes CurrentBytes/PeakBytes from the Go runtime.
func (s *Stats) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.CurrentBytes = m.HeapAlloc
	if s.CurrentBytes > s.PeakBytes {
		s.PeakBytes = s.CurrentBytes
	}
}
