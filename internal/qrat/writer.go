// Package qrat writes the QRAT proof trace: a line-oriented certificate that
// witnesses a sequence of clause additions/deletions/universal reductions as
// sound under the Quantified Resolution Asymmetric Tautology proof system
// (spec.md §6).
package qrat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/qbfprep/qbf"
)

// Writer emits one QRAT trace line per structural mutation of the formula.
// It is the thin, cross-cutting object spec.md §9 asks for: every technique
// that changes the clause store calls through Writer before or after the
// mutation, in whichever order its soundness justification requires (RATA
// before an addition, RATE/EUR/BLE after a deletion).
type Writer struct {
	w       *bufio.Writer
	withMsg bool
	varOut  func(int) int // maps internal variable IDs to printed indices
	err     error
}

// New returns a Writer over out. varOut maps an internal (1-based) variable
// ID to its printed DIMACS index; withMsg controls whether optional trailing
// message strings are emitted (spec.md §6 "when qrat_msg is on").
func New(out io.Writer, varOut func(int) int, withMsg bool) *Writer {
	return &Writer{w: bufio.NewWriter(out), varOut: varOut, withMsg: withMsg}
}

func (w *Writer) lit(l qbf.Literal) int {
	return l.Signed(w.varOut(l.VarID()))
}

func (w *Writer) writeLine(prefix string, lits []qbf.Literal, msg string) {
	if w.err != nil {
		return
	}
	if prefix != "" {
		if _, err := w.w.WriteString(prefix); err != nil {
			w.err = err
			return
		}
		if err := w.w.WriteByte(' '); err != nil {
			w.err = err
			return
		}
	}
	for _, l := range lits {
		if _, err := fmt.Fprintf(w.w, "%d ", w.lit(l)); err != nil {
			w.err = err
			return
		}
	}
	if _, err := w.w.WriteString("0"); err != nil {
		w.err = err
		return
	}
	if w.withMsg && msg != "" {
		if _, err := fmt.Fprintf(w.w, " %s", msg); err != nil {
			w.err = err
			return
		}
	}
	if err := w.w.WriteByte('\n'); err != nil {
		w.err = err
	}
}

// orderPivotFirst returns a copy of lits with pivot moved to index 0.
func orderPivotFirst(pivot qbf.Literal, lits []qbf.Literal) []qbf.Literal {
	ordered := make([]qbf.Literal, 0, len(lits))
	ordered = append(ordered, pivot)
	for _, l := range lits {
		if l != pivot {
			ordered = append(ordered, l)
		}
	}
	return ordered
}

// Addition emits a RATA-justified clause addition ("p1 p2 ... 0", pivot
// first).
func (w *Writer) Addition(pivot qbf.Literal, lits []qbf.Literal, msg string) {
	w.writeLine("", orderPivotFirst(pivot, lits), msg)
}

// Deletion emits a clause deletion ("d p1 p2 ... 0"), justified by whichever
// technique called it (RATE for elimination-driven deletions, BLE/EUR
// contexts for the blocked/reduction families).
func (w *Writer) Deletion(lits []qbf.Literal, msg string) {
	w.writeLine("d", lits, msg)
}

// UniversalReduction emits a BLE/EUR-style universal reduction line
// ("u p p1 p2 ... 0"), where p is the universal literal removed and
// remaining is the clause's literals after removing p.
func (w *Writer) UniversalReduction(removed qbf.Literal, remaining []qbf.Literal, msg string) {
	lits := make([]qbf.Literal, 0, len(remaining)+1)
	lits = append(lits, removed)
	lits = append(lits, remaining...)
	w.writeLine("u", lits, msg)
}

// Flush flushes any buffered trace output. Must be called before the process
// exits; any error here is fatal (spec.md §7 "trace I/O failure").
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}
