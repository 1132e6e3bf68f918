package qbf

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rhartert/qbfprep/qbf"
)

// progressSnapshot is the handful of counters the progress line reads. The
// engine publishes a fresh snapshot through an atomic pointer store
// (single-threaded engine, spec.md §5) and the ticker goroutine reads it with
// an atomic load, so the two never race on the same machine word.
type progressSnapshot struct {
	iterations int64
	clauses    int64
	variables  int64
}

// ProgressReporter periodically rewrites one line of its output writer with
// an iterations/sec estimate (cmd/qbfprep passes stderr), the same contract as bloqqer.c's interval-timer line rewrite
// (spec.md §5): "reads but does not mutate engine state", async-signal-safe
// in spirit because it only ever touches atomics and an io.Writer. Go has no
// idiomatic equivalent of a SIGALRM handler for a cooperative single-threaded
// loop, so a ticker-driven goroutine stands in for it (see SPEC_FULL.md §5).
type ProgressReporter struct {
	out      io.Writer
	interval time.Duration
	snap     atomic.Pointer[progressSnapshot]
	rate     qbf.EMA
	lastIter int64
	lastTime time.Time
	stop     chan struct{}
	done     chan struct{}
}

// NewProgressReporter returns a reporter that rewrites out every interval.
func NewProgressReporter(out io.Writer, interval time.Duration) *ProgressReporter {
	p := &ProgressReporter{
		out:      out,
		interval: interval,
		rate:     qbf.NewEMA(0.7),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	p.snap.Store(&progressSnapshot{})
	return p
}

// Update is called by the engine once per fixpoint round.
func (p *ProgressReporter) Update(iterations, clauses, variables int64) {
	p.snap.Store(&progressSnapshot{iterations: iterations, clauses: clauses, variables: variables})
}

// Start launches the background ticker. Stop must be called to release it.
func (p *ProgressReporter) Start() {
	p.lastTime = time.Now()
	go func() {
		defer close(p.done)
		t := time.NewTicker(p.interval)
		defer t.Stop()
		for {
			select {
			case <-p.stop:
				return
			case now := <-t.C:
				p.tick(now)
			}
		}
	}()
}

func (p *ProgressReporter) tick(now time.Time) {
	s := p.snap.Load()
	elapsed := now.Sub(p.lastTime).Seconds()
	if elapsed > 0 {
		p.rate.Add(float64(s.iterations-p.lastIter) / elapsed)
	}
	p.lastIter = s.iterations
	p.lastTime = now
	fmt.Fprintf(p.out, "\rc iterations %10d  clauses %10d  vars %10d  iter/s %8.1f",
		s.iterations, s.clauses, s.variables, p.rate.Val())
}

// Stop halts the ticker and clears the progress line.
func (p *ProgressReporter) Stop() {
	close(p.stop)
	<-p.done
	fmt.Fprint(p.out, "\r\033[K")
}
