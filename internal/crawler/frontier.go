package crawler

// Frontier is a bounded, deduplicating FIFO of Jobs (§4.2). It pairs an
// ordered pending slice with a seen set of already-dequeued Jobs; both are
// capped at buffer. seen is a dedup memoization, not a visited-forever
// log — it is cleared wholesale once it reaches buffer, which bounds
// memory at the cost of allowing a URL to be revisited after the reset.
//
// Frontier is not safe for concurrent use. In this design it is owned
// exclusively by the Coordinator and touched only from its own goroutine,
// never while a round's workers are running (§5), so no internal locking
// is needed.
type Frontier struct {
	buffer  int
	pending []Job
	inPend  map[string]struct{}
	seen    map[string]struct{}
}

// NewFrontier creates an empty Frontier with the given buffer capacity.
func NewFrontier(buffer int) *Frontier {
	return &Frontier{
		buffer: buffer,
		inPend: make(map[string]struct{}),
		seen:   make(map[string]struct{}),
	}
}

// Enqueue admits job into pending, subject to the dedup and capacity
// invariants of §4.2.
//
// Preserved verbatim (see §9 open question 3): the front-eviction check
// runs unconditionally BEFORE the duplicate check. A duplicate enqueue
// arriving while pending is already at capacity therefore still evicts
// the oldest pending Job, even though the duplicate itself is never
// inserted. This is the original source's behavior, not a defect to fix.
func (f *Frontier) Enqueue(job Job) {
	if len(f.pending) == f.buffer {
		f.evictFront()
	}

	if _, dup := f.seen[job.key()]; dup {
		return
	}
	if _, dup := f.inPend[job.key()]; dup {
		return
	}

	f.pending = append(f.pending, job)
	f.inPend[job.key()] = struct{}{}
}

// Dequeue pops the front of pending, if any, recording it in seen. If
// seen has reached buffer, it is cleared wholesale before the pop — this
// check runs unconditionally, even if pending turns out to be empty.
func (f *Frontier) Dequeue() (Job, bool) {
	if len(f.seen) == f.buffer {
		f.seen = make(map[string]struct{})
	}

	if len(f.pending) == 0 {
		return Job{}, false
	}

	job := f.pending[0]
	f.pending = f.pending[1:]
	delete(f.inPend, job.key())
	f.seen[job.key()] = struct{}{}

	return job, true
}

// IsEmpty reports whether pending holds no Jobs.
func (f *Frontier) IsEmpty() bool {
	return len(f.pending) == 0
}

// evictFront drops the oldest pending Job to make room for an enqueue at
// capacity. Crude, front-eviction backpressure under explosive fan-out;
// no further throttling is applied.
func (f *Frontier) evictFront() {
	evicted := f.pending[0]
	f.pending = f.pending[1:]
	delete(f.inPend, evicted.key())
}
