package tools

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/dcastro/dequenet/std/utils/toolutils"
)

// PerfCounters counts the operations performed by the harness workers.
type PerfCounters interface {
	// Increment counts one operation of the calling worker.
	Increment(worker int)
	// Complete marks the worker as done. Called once per worker.
	Complete(worker int)
	// Print writes the totals. Only valid after every worker completed.
	Print(p toolutils.StatusPrinter)
}

// NewPerfCounters creates the counter container named by kind.
func NewPerfCounters(kind string, workers int) PerfCounters {
	if kind == "slim" {
		return newSlimCounters(workers)
	}
	return nullCounters{}
}

type nullCounters struct{}

func (nullCounters) Increment(int)                  {}
func (nullCounters) Complete(int)                   {}
func (nullCounters) Print(toolutils.StatusPrinter) {}

// slimCounters keeps one padded counter per worker so increments
// do not contend on a shared cache line.
type slimCounters struct {
	start   time.Time
	workers []workerCounter
	wg      sync.WaitGroup
}

type workerCounter struct {
	ops  atomic.Uint64
	took time.Duration
	_    [48]byte
}

func newSlimCounters(workers int) *slimCounters {
	c := &slimCounters{
		start:   time.Now(),
		workers: make([]workerCounter, workers),
	}
	c.wg.Add(workers)
	return c
}

func (c *slimCounters) Increment(worker int) {
	c.workers[worker].ops.Add(1)
}

func (c *slimCounters) Complete(worker int) {
	c.workers[worker].took = time.Since(c.start)
	c.wg.Done()
}

func (c *slimCounters) Total() (total uint64) {
	for i := range c.workers {
		total += c.workers[i].ops.Load()
	}
	return total
}

func (c *slimCounters) Print(p toolutils.StatusPrinter) {
	c.wg.Wait()

	var longest time.Duration
	for i := range c.workers {
		w := &c.workers[i]
		longest = max(longest, w.took)
		p.Print("worker", i)
		p.Print("ops", w.ops.Load())
		p.Print("ops/s", rate(w.ops.Load(), w.took))
	}

	p.Section("total")
	p.Print("ops", c.Total())
	p.Print("ops/s", rate(c.Total(), longest))
}

func rate(ops uint64, d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(ops) / d.Seconds())
}
