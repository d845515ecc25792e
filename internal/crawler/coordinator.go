package crawler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harborcrawl/crawler/internal/platform/logging"
)

// DefaultBuffer is the Frontier capacity used when Config.Buffer is zero.
const DefaultBuffer = 10000

// Config configures a Coordinator.
type Config struct {
	// Fetcher retrieves resources; shared read-only across all workers.
	Fetcher Fetcher
	// Persister durably stores fetched resources; shared read-only across
	// all workers.
	Persister Persister
	// NumWorkers is N, the per-round worker-pool width (§4.1).
	NumWorkers int
	// Buffer is the Frontier's pending/seen capacity (§4.2). Defaults to
	// DefaultBuffer when zero.
	Buffer int
}

// Coordinator owns the Fetcher, the Persister, the Frontier, and the
// thread count; it runs the batched worker-pool loop of §4.1 until the
// Frontier drains.
type Coordinator struct {
	fetcher    Fetcher
	persister  Persister
	numWorkers int
	frontier   *Frontier

	visitCount int
	errorCount int
}

// NewCoordinator constructs a Coordinator from cfg.
func NewCoordinator(cfg Config) *Coordinator {
	buffer := cfg.Buffer
	if buffer == 0 {
		buffer = DefaultBuffer
	}

	return &Coordinator{
		fetcher:    cfg.Fetcher,
		persister:  cfg.Persister,
		numWorkers: cfg.NumWorkers,
		frontier:   NewFrontier(buffer),
	}
}

// Start begins a crawl from seedURL and blocks until the Frontier is
// empty at the end of a round. It returns a (wrapped ErrURLParse) error
// without starting any work if seedURL is not an admissible, syntactically
// valid absolute URL. ctx is consulted only between rounds: the core
// round-batched algorithm of §4.1 is unmodified, but Start stops
// scheduling further rounds promptly once ctx is cancelled, returning
// ctx.Err().
func (c *Coordinator) Start(ctx context.Context, seedURL string) error {
	seed, ok := NewJob(seedURL, c.fetcher)
	if !ok {
		return fmt.Errorf("%w: %q is not a valid seed URL", ErrURLParse, seedURL)
	}

	start := time.Now()
	c.frontier.Enqueue(seed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch := c.nextBatch()

		if len(batch) > 0 {
			for _, r := range c.runRound(ctx, batch) {
				c.visitCount++
				if r.fetchFailed {
					c.errorCount++
				}
				for _, child := range r.children {
					c.frontier.Enqueue(child)
				}
			}
		}

		if c.frontier.IsEmpty() {
			break
		}
	}

	logging.Info("crawl complete: %d visited, %d errors, %s elapsed",
		c.visitCount, c.errorCount, time.Since(start).Round(time.Millisecond))
	return nil
}

// nextBatch dequeues up to numWorkers Jobs, stopping early once the
// Frontier runs dry (§4.1's "repeat N times: if pending is nonempty:
// batch ← batch ∪ { dequeue() }").
func (c *Coordinator) nextBatch() []Job {
	var batch []Job
	for i := 0; i < c.numWorkers; i++ {
		if c.frontier.IsEmpty() {
			break
		}
		job, ok := c.frontier.Dequeue()
		if !ok {
			break
		}
		batch = append(batch, job)
	}
	return batch
}

// roundResult is one worker's outcome within a round.
type roundResult struct {
	children    []Job
	fetchFailed bool
}

// runRound spawns one worker per Job in batch and joins all of them,
// returning each worker's outcome in spawn order — not completion order —
// so that Frontier.Enqueue above sees a deterministic sequence regardless
// of which worker finishes first (§5 ordering guarantees). errgroup.Group
// provides the bounded fan-out/join shape; its error propagation goes
// unused here since a worker's own failure is always local (§4.1 failure
// semantics) and never aborts the round.
func (c *Coordinator) runRound(ctx context.Context, batch []Job) []roundResult {
	results := make([]roundResult, len(batch))

	g, _ := errgroup.WithContext(ctx)
	for i, job := range batch {
		i, job := i, job
		g.Go(func() error {
			children, fetchFailed := runWorker(job, c.persister)
			results[i] = roundResult{children: children, fetchFailed: fetchFailed}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
