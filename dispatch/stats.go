package dispatch

import "sync/atomic"

// Stats tracks dispatcher activity with atomic counters. Counters are
// cheap enough to maintain unconditionally and are readable at any
// time without taking the dispatcher's lock.
type Stats struct {
	dispatched uint64
	delivered  uint64
	suppressed uint64
	truncated  uint64
}

// Snapshot is a point-in-time copy of the dispatcher's counters.
type Snapshot struct {
	// Dispatched counts messages rendered and fanned out.
	Dispatched uint64
	// Delivered counts individual tap invocations.
	Delivered uint64
	// Suppressed counts log calls dropped by quiet mode.
	Suppressed uint64
	// Truncated counts renders clipped at the message capacity.
	Truncated uint64
}

func (s *Stats) incDispatched() { atomic.AddUint64(&s.dispatched, 1) }
func (s *Stats) incDelivered()  { atomic.AddUint64(&s.delivered, 1) }
func (s *Stats) incSuppressed() { atomic.AddUint64(&s.suppressed, 1) }
func (s *Stats) incTruncated()  { atomic.AddUint64(&s.truncated, 1) }

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Dispatched: atomic.LoadUint64(&s.dispatched),
		Delivered:  atomic.LoadUint64(&s.delivered),
		Suppressed: atomic.LoadUint64(&s.suppressed),
		Truncated:  atomic.LoadUint64(&s.truncated),
	}
}

func (s *Stats) reset() {
	atomic.StoreUint64(&s.dispatched, 0)
	atomic.StoreUint64(&s.delivered, 0)
	atomic.StoreUint64(&s.suppressed, 0)
	atomic.StoreUint64(&s.truncated, 0)
}
