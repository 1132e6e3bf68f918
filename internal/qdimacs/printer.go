package qdimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rhartert/qbfprep/internal/qbf"
)

// Write prints e's current formula in QDIMACS format: the header, one
// quantifier block per scope that still has free variables (every scope if
// quantifyall is set), and the live clause matrix (spec.md §6). An empty
// clause collapses the output to the canonical unsatisfiable "p cnf 0 1"/"0".
func Write(w io.Writer, e *qbf.Engine) error {
	bw := bufio.NewWriter(w)

	nVars := e.Map(e.Opts.Bool("keep"))

	if e.HasEmptyClause() {
		if _, err := fmt.Fprintf(bw, "p cnf %d 1\n0\n", nVars); err != nil {
			return err
		}
		return bw.Flush()
	}

	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", nVars, e.NumLiveClauses()); err != nil {
		return err
	}

	quantifyAll := e.Opts.Bool("quantifyall")
	for _, s := range e.Scopes() {
		vars := e.ScopeVars(s)
		if len(vars) == 0 && !quantifyAll {
			continue
		}
		if _, err := bw.WriteString(s.Polarity.String()); err != nil {
			return err
		}
		for _, v := range vars {
			if _, err := fmt.Fprintf(bw, " %d", v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(" 0\n"); err != nil {
			return err
		}
	}

	for _, lits := range e.LiveClauses() {
		for _, l := range lits {
			if _, err := fmt.Fprintf(bw, "%d ", l); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
