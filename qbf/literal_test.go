package qbf

import "testing"

func TestPositiveNegativeLiteral(t *testing.T) {
	tests := []struct {
		name   string
		lit    Literal
		varID  int
		signed int
		pos    bool
	}{
		{"positive 0", PositiveLiteral(0), 0, 1, true},
		{"negative 0", NegativeLiteral(0), 0, -1, false},
		{"positive 5", PositiveLiteral(5), 5, 6, true},
		{"negative 5", NegativeLiteral(5), 5, -6, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lit.VarID(); got != tc.varID {
				t.Errorf("VarID() = %d, want %d", got, tc.varID)
			}
			if got := tc.lit.IsPositive(); got != tc.pos {
				t.Errorf("IsPositive() = %v, want %v", got, tc.pos)
			}
			if got := tc.lit.Signed(tc.varID + 1); got != tc.signed {
				t.Errorf("Signed(%d) = %d, want %d", tc.varID+1, got, tc.signed)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	l := PositiveLiteral(3)
	if got := l.Opposite(); got != NegativeLiteral(3) {
		t.Errorf("Opposite() = %v, want %v", got, NegativeLiteral(3))
	}
	if got := l.Opposite().Opposite(); got != l {
		t.Errorf("Opposite().Opposite() = %v, want %v", got, l)
	}
}

func TestFromSigned(t *testing.T) {
	tests := []struct {
		signed int
		want   Literal
	}{
		{1, PositiveLiteral(0)},
		{-1, NegativeLiteral(0)},
		{4, PositiveLiteral(3)},
		{-4, NegativeLiteral(3)},
	}
	for _, tc := range tests {
		if got := FromSigned(tc.signed); got != tc.want {
			t.Errorf("FromSigned(%d) = %v, want %v", tc.signed, got, tc.want)
		}
	}
}
