package qrat

import (
	"strings"
	"testing"

	"github.com/rhartert/qbfprep/qbf"
)

func identity(id int) int { return id }

func TestAdditionOrdersPivotFirst(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, identity, false)

	w.Addition(qbf.PositiveLiteral(1), []qbf.Literal{
		qbf.NegativeLiteral(0), qbf.PositiveLiteral(1), qbf.PositiveLiteral(2),
	}, "unit")

	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %s", err)
	}

	want := "2 -1 3 0\n"
	if got := buf.String(); got != want {
		t.Errorf("Addition line = %q, want %q", got, want)
	}
}

func TestAdditionSuppressesMessageWhenDisabled(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, identity, false)
	w.Addition(qbf.PositiveLiteral(0), []qbf.Literal{qbf.PositiveLiteral(0)}, "pure literal")
	w.Flush()

	if got := buf.String(); strings.Contains(got, "pure") {
		t.Errorf("line %q should not carry a message when withMsg is false", got)
	}
}

func TestAdditionIncludesMessageWhenEnabled(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, identity, true)
	w.Addition(qbf.PositiveLiteral(0), []qbf.Literal{qbf.PositiveLiteral(0)}, "pure literal")
	w.Flush()

	if got := buf.String(); !strings.Contains(got, "pure literal") {
		t.Errorf("line %q should carry the message when withMsg is true", got)
	}
}

func TestDeletionPrefix(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, identity, false)
	w.Deletion([]qbf.Literal{qbf.PositiveLiteral(0), qbf.NegativeLiteral(1)}, "eliminated")
	w.Flush()

	want := "d 1 -2 0\n"
	if got := buf.String(); got != want {
		t.Errorf("Deletion line = %q, want %q", got, want)
	}
}

func TestUniversalReductionPrefix(t *testing.T) {
	var buf strings.Builder
	w := New(&buf, identity, false)
	w.UniversalReduction(qbf.PositiveLiteral(1), []qbf.Literal{qbf.PositiveLiteral(0)}, "")
	w.Flush()

	want := "u 2 1 0\n"
	if got := buf.String(); got != want {
		t.Errorf("UniversalReduction line = %q, want %q", got, want)
	}
}

func TestVarOutMapping(t *testing.T) {
	var buf strings.Builder
	mapped := map[int]int{0: 5, 1: 7}
	w := New(&buf, func(id int) int { return mapped[id] }, false)
	w.Addition(qbf.PositiveLiteral(0), []qbf.Literal{qbf.PositiveLiteral(0), qbf.NegativeLiteral(1)}, "")
	w.Flush()

	want := "5 -7 0\n"
	if got := buf.String(); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}
