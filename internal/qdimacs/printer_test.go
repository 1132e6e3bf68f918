package qdimacs

import (
	"strings"
	"testing"
)

func TestWriteRoundTripsSatisfiableResidual(t *testing.T) {
	const input = `p cnf 2 2
e 1 2 0
1 2 0
-1 2 0
`
	e, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}

	var out strings.Builder
	if err := Write(&out, e); err != nil {
		t.Fatalf("Write: %s", err)
	}

	if !strings.HasPrefix(out.String(), "p cnf") {
		t.Errorf("output %q does not start with a QDIMACS header", out.String())
	}
}

func TestWriteEmptyClauseCollapsesToCanonicalUnsat(t *testing.T) {
	const input = `p cnf 1 2
e 1 0
1 0
-1 0
`
	e, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}

	var out strings.Builder
	if err := Write(&out, e); err != nil {
		t.Fatalf("Write: %s", err)
	}

	want := "p cnf 0 1\n0\n"
	if got := out.String(); got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}
