package poll

import (
	"sync"
	"time"
)

// Snapshot holds the latest committed value of a polled resource and rejects
// out-of-order commits. Overlapping fetches (a slow poll racing a manual
// refresh) each take a sequence number with Begin; a commit only lands when
// no later-begun fetch has committed first, so a stale response can never
// overwrite a newer one.
type Snapshot[T any] struct {
	mu      sync.Mutex
	nextSeq uint64
	applied uint64
	value   T
	at      time.Time
	set     bool
}

// Begin reserves a sequence number for a fetch that is about to start.
func (s *Snapshot[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Commit stores value for the fetch begun with seq. Returns false, leaving
// the snapshot untouched, when a fetch begun later has already committed.
func (s *Snapshot[T]) Commit(seq uint64, value T, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.applied = seq
	s.value = value
	s.at = at
	s.set = true
	return true
}

// Get returns the latest committed value, its commit time, and whether any
// commit has happened yet.
func (s *Snapshot[T]) Get() (T, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.at, s.set
}

// Reset clears the snapshot, e.g. on logout.
func (s *Snapshot[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.at = time.Time{}
	s.set = false
}
