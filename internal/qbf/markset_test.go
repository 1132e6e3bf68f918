package qbf

import "testing"

func TestMarkSetAddContains(t *testing.T) {
	ms := NewMarkSet(8)

	if ms.Contains(3) {
		t.Fatalf("Contains(3) = true before Add")
	}
	ms.Add(3)
	if !ms.Contains(3) {
		t.Fatalf("Contains(3) = false after Add")
	}
	if ms.Contains(4) {
		t.Fatalf("Contains(4) = true, want false")
	}
}

func TestMarkSetClear(t *testing.T) {
	ms := NewMarkSet(4)
	ms.Add(0)
	ms.Add(1)
	ms.Clear()

	if ms.Contains(0) || ms.Contains(1) {
		t.Fatalf("Contains still true after Clear")
	}

	ms.Add(2)
	if !ms.Contains(2) {
		t.Fatalf("Contains(2) = false after re-Add following Clear")
	}
}

func TestMarkSetClearManyGenerations(t *testing.T) {
	ms := NewMarkSet(2)
	for i := 0; i < 1000; i++ {
		ms.Clear()
		ms.Add(0)
		if !ms.Contains(0) {
			t.Fatalf("Contains(0) = false at generation %d", i)
		}
		if ms.Contains(1) {
			t.Fatalf("Contains(1) = true at generation %d", i)
		}
	}
}

func TestMarkSetGrow(t *testing.T) {
	ms := NewMarkSet(2)
	ms.Add(1)
	ms.Grow(2)

	if !ms.Contains(1) {
		t.Fatalf("Contains(1) = false after Grow")
	}
	if ms.Contains(2) || ms.Contains(3) {
		t.Fatalf("newly grown slots should be unmarked")
	}
	ms.Add(3)
	if !ms.Contains(3) {
		t.Fatalf("Contains(3) = false after Add following Grow")
	}
}
