package qdimacs

import (
	"strings"
	"testing"
)

const smallInstance = `c sample comment
p cnf 3 3
a 1 0
e 2 3 0
1 2 0
-2 3 0
-1 -3 0
`

func TestParseHeaderAndScopes(t *testing.T) {
	e, err := Parse(strings.NewReader(smallInstance))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if got := e.NumVars(); got != 3 {
		t.Errorf("NumVars() = %d, want 3", got)
	}
	if got := e.NumLiveClauses(); got == 0 {
		t.Errorf("NumLiveClauses() = 0, want at least the 3 parsed clauses before simplification")
	}
}

func TestParseRejectsBadHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("p wrong 1 1\n"))
	if err == nil {
		t.Fatalf("expected an error for a malformed header")
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("c comment only\n"))
	if err == nil {
		t.Fatalf("expected an error when no header line is present")
	}
}

func TestParseRejectsDuplicateDeclaration(t *testing.T) {
	const bad = `p cnf 1 1
e 1 0
e 1 0
1 0
`
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatalf("expected an error for a variable declared twice")
	}
}

func TestParseDeclaresFreeVariablesImplicitly(t *testing.T) {
	const noPrefix = `p cnf 2 1
1 2 0
`
	e, err := Parse(strings.NewReader(noPrefix))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if got := e.NumVars(); got != 2 {
		t.Errorf("NumVars() = %d, want 2 for implicitly declared free variables", got)
	}
}

func TestParseEmbeddedOptionFromComment(t *testing.T) {
	const withOption = `c --no-bce
p cnf 1 1
1 0
`
	e, err := Parse(strings.NewReader(withOption))
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if e.Opts.Bool("bce") {
		t.Errorf("bce = true, want false after embedded --no-bce comment")
	}
}
