package qbf

// Node is one literal occurrence inside one clause (spec.md §3). Nodes are
// threaded into two independent doubly-linked lists: the clause's own
// literal array (via index, not pointers) and the occurrence chain of every
// other clause sharing that signed literal (via Prev/Next).
type Node struct {
	Lit Literal

	// BlockedAsPivot marks that, in partial-assignment mode, this occurrence
	// must not be used as a blocking/resolution pivot because its variable is
	// frozen at or outside AssignedScope.
	BlockedAsPivot bool

	Clause *Clause

	Prev, Next *Node
}

// OccAnchor is the per-signed-literal occurrence list anchor (spec.md §3).
type OccAnchor struct {
	Count int
	Head  *Node
	Tail  *Node
}

// WatchAnchor is the per-variable list of clauses forward-subsumption-watch
// that variable (spec.md §3).
type WatchAnchor struct {
	Count int
	Head  *Clause
	Tail  *Clause
}

// Clause is a chronologically ordered, occurrence-indexed CNF clause
// (spec.md §3).
type Clause struct {
	Nodes []*Node // terminates logically at len(Nodes); no sentinel needed in Go

	Sig Sig

	// Prev/Next thread the chronological clause list (creation order).
	Prev, Next *Clause

	// Queued/QueuePrev/QueueNext thread the backward-subsumption queue.
	Queued              bool
	QueuePrev, QueueNext *Clause

	// WatchVar is the variable index this clause is forward-subsumption
	// watched on (the literal with the fewest combined occurrences when the
	// clause was added), and WatchPrev/WatchNext thread that variable's
	// WatchAnchor chain.
	WatchVar             int
	WatchPrev, WatchNext *Clause

	// submark/hlaMark are clause-level scratch marks. No technique reads or
	// writes them: subsumption and hidden-literal closure use the engine's
	// MarkSet instead.
	submark uint32
	hlaMark uint32

	deleted bool

	// id is assigned in chronological order and used only for debug
	// printing/tests; it carries no semantic weight.
	id int
}

func (c *Clause) Size() int { return len(c.Nodes) }

// Lits returns the clause's current literals. Callers must not retain the
// slice across any mutation of c.
func (c *Clause) Lits() []Literal {
	lits := make([]Literal, len(c.Nodes))
	for i, n := range c.Nodes {
		lits[i] = n.Lit
	}
	return lits
}

func (c *Clause) String() string {
	if len(c.Nodes) == 0 {
		return "()"
	}
	s := "("
	for i, n := range c.Nodes {
		if i > 0 {
			s += " "
		}
		s += n.Lit.String()
	}
	return s + ")"
}

// clauseStore owns the chronological clause list and the per-literal
// occurrence/watch anchors.
type clauseStore struct {
	first, last *Clause
	count       int
	nextID      int

	// occ is indexed by signed Literal (2*(nvars+1) slots, 0/1 unused since
	// variable IDs are 1-based: slots 0 and 1 are simply never touched).
	occ []OccAnchor

	// watch is indexed by variable ID (1-based).
	watch []WatchAnchor

	empty *Clause // the empty clause, if derived; once set the store is done
}

func newClauseStore() *clauseStore {
	return &clauseStore{}
}

func (cs *clauseStore) growTo(nLits, nVars int) {
	for len(cs.occ) < nLits {
		cs.occ = append(cs.occ, OccAnchor{})
	}
	for len(cs.watch) < nVars+1 {
		cs.watch = append(cs.watch, WatchAnchor{})
	}
}

// linkChronological appends c to the end of the chronological clause list.
func (cs *clauseStore) linkChronological(c *Clause) {
	c.id = cs.nextID
	cs.nextID++
	c.Prev = cs.last
	if cs.last != nil {
		cs.last.Next = c
	} else {
		cs.first = c
	}
	cs.last = c
	cs.count++
}

// unlinkChronological removes c from the chronological clause list.
func (cs *clauseStore) unlinkChronological(c *Clause) {
	if c.Prev != nil {
		c.Prev.Next = c.Next
	} else {
		cs.first = c.Next
	}
	if c.Next != nil {
		c.Next.Prev = c.Prev
	} else {
		cs.last = c.Prev
	}
	c.Prev, c.Next = nil, nil
	cs.count--
}

// occAnchor returns the occurrence anchor for signed literal l.
func (cs *clauseStore) occAnchor(l Literal) *OccAnchor {
	return &cs.occ[l]
}

// addNode creates a Node for literal l in clause c and links it into l's
// occurrence chain. It does not re-check pure-literal/score state: callers
// such as allocateClause call onOccurrenceChanged for each touched variable
// afterwards (spec.md §4.5, §4.6).
func (cs *clauseStore) addNode(c *Clause, l Literal) *Node {
	n := &Node{Lit: l, Clause: c}
	c.Nodes = append(c.Nodes, n)

	a := cs.occAnchor(l)
	n.Prev = a.Tail
	if a.Tail != nil {
		a.Tail.Next = n
	} else {
		a.Head = n
	}
	a.Tail = n
	a.Count++

	return n
}

// removeNode unlinks n from its occurrence chain and from its clause's node
// list. It does not delete the clause even if this empties it.
func (cs *clauseStore) removeNode(n *Node) {
	a := cs.occAnchor(n.Lit)
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		a.Head = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		a.Tail = n.Prev
	}
	a.Count--

	c := n.Clause
	for i, m := range c.Nodes {
		if m == n {
			c.Nodes = append(c.Nodes[:i], c.Nodes[i+1:]...)
			break
		}
	}
	n.Prev, n.Next, n.Clause = nil, nil, nil
}

func (cs *clauseStore) occCount(l Literal) int {
	return cs.occ[l].Count
}

// watchOn links c into variable varID's forward-subsumption watch chain.
func (cs *clauseStore) watchOn(c *Clause, varID int) {
	c.WatchVar = varID
	wa := &cs.watch[varID]
	c.WatchPrev = wa.Tail
	if wa.Tail != nil {
		wa.Tail.WatchNext = c
	} else {
		wa.Head = c
	}
	wa.Tail = c
	wa.Count++
}

// unwatch removes c from its current forward-subsumption watch chain.
func (cs *clauseStore) unwatch(c *Clause) {
	if c.WatchVar == 0 {
		return
	}
	wa := &cs.watch[c.WatchVar]
	if c.WatchPrev != nil {
		c.WatchPrev.WatchNext = c.WatchNext
	} else {
		wa.Head = c.WatchNext
	}
	if c.WatchNext != nil {
		c.WatchNext.WatchPrev = c.WatchPrev
	} else {
		wa.Tail = c.WatchPrev
	}
	wa.Count--
	c.WatchPrev, c.WatchNext = nil, nil
	c.WatchVar = 0
}

// rewatch re-evaluates and re-sets c's forward-subsumption watch to the
// variable among its current literals with the fewest combined occurrences.
func (cs *clauseStore) rewatch(c *Clause) {
	cs.unwatch(c)
	if len(c.Nodes) < 2 {
		return
	}
	best := c.Nodes[0].Lit.VarID()
	bestCount := cs.occCount(PositiveLiteral(best)) + cs.occCount(NegativeLiteral(best))
	for _, n := range c.Nodes[1:] {
		v := n.Lit.VarID()
		cnt := cs.occCount(PositiveLiteral(v)) + cs.occCount(NegativeLiteral(v))
		if cnt < bestCount {
			best = v
			bestCount = cnt
		}
	}
	cs.watchOn(c, best)
}

// removeAllNodes removes every node of c from its occurrence chains, leaving
// c.Nodes empty. Returns the set of variable IDs whose occurrence counts
// changed, so callers can re-run pure-literal/score bookkeeping.
func (cs *clauseStore) removeAllNodes(c *Clause) []int {
	touched := make([]int, 0, len(c.Nodes))
	for _, n := range append([]*Node(nil), c.Nodes...) {
		touched = append(touched, n.Lit.VarID())
		cs.removeNode(n)
	}
	return touched
}
