package qbf

import "github.com/rhartert/yagh"

// elimQueue is the min-heap of elimination candidates keyed on occurrence
// score (spec.md §4.6), reusing the teacher's yagh.IntMap binary heap
// (internal/sat/ordering.go) instead of hand-rolling one on container/heap.
// Unlike the teacher's VarOrder (a max-heap built by negating activities),
// this one is a genuine min-heap: Put(v, score) directly, since we always
// want the least-occurring candidate first.
//
// yagh.IntMap only exposes Put/Contains/Pop/GrowBy (see ordering.go); there is
// no direct remove, so a variable that leaves candidacy (fixed, eliminated,
// ...) is lazily dropped: present tracks live membership and pop skips stale
// entries until it finds one still marked present.
type elimQueue struct {
	heap    *yagh.IntMap[int]
	present []bool
	size    int
}

func newElimQueue(nVars int) *elimQueue {
	q := &elimQueue{
		heap:    yagh.New[int](0),
		present: make([]bool, nVars+1),
	}
	q.heap.GrowBy(nVars + 1)
	return q
}

func (q *elimQueue) growBy(n int) {
	q.heap.GrowBy(n)
	q.present = append(q.present, make([]bool, n)...)
}

// insert inserts or updates v's key.
func (q *elimQueue) insert(v int, score int) {
	if !q.present[v] {
		q.size++
	}
	q.present[v] = true
	q.heap.Put(v, score)
}

func (q *elimQueue) contains(v int) bool {
	return q.present[v]
}

// remove drops v from future pops without touching the heap itself; the
// stale entry is discarded lazily the next time it would be popped.
func (q *elimQueue) remove(v int) {
	if q.present[v] {
		q.present[v] = false
		q.size--
	}
}

// pop removes and returns the live candidate with the smallest score.
func (q *elimQueue) pop() (int, bool) {
	for {
		next, ok := q.heap.Pop()
		if !ok {
			return 0, false
		}
		if q.present[next.Elem] {
			q.present[next.Elem] = false
			q.size--
			return next.Elem, true
		}
		// stale entry from a since-removed variable: keep draining.
	}
}

func (q *elimQueue) empty() bool {
	return q.size == 0
}
