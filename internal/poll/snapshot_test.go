package poll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCommitAndGet(t *testing.T) {
	var s Snapshot[int]

	_, _, ok := s.Get()
	assert.False(t, ok)

	seq := s.Begin()
	at := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	assert.True(t, s.Commit(seq, 42, at))

	v, gotAt, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, at, gotAt)
}

func TestSnapshotRejectsStaleCommit(t *testing.T) {
	var s Snapshot[string]
	now := time.Now()

	slow := s.Begin()
	fast := s.Begin()

	// The later-begun fetch responds first.
	assert.True(t, s.Commit(fast, "fresh", now))

	// The earlier fetch straggles in and must not overwrite.
	assert.False(t, s.Commit(slow, "stale", now.Add(time.Second)))

	v, _, _ := s.Get()
	assert.Equal(t, "fresh", v)
}

func TestSnapshotInOrderCommits(t *testing.T) {
	var s Snapshot[int]
	now := time.Now()

	a := s.Begin()
	assert.True(t, s.Commit(a, 1, now))
	b := s.Begin()
	assert.True(t, s.Commit(b, 2, now))

	v, _, _ := s.Get()
	assert.Equal(t, 2, v)
}

func TestSnapshotReset(t *testing.T) {
	var s Snapshot[int]
	s.Commit(s.Begin(), 7, time.Now())

	s.Reset()
	_, _, ok := s.Get()
	assert.False(t, ok)

	// Sequence numbers keep increasing across reset, so an in-flight fetch
	// from before the reset can still be rejected correctly.
	seq := s.Begin()
	assert.True(t, s.Commit(seq, 8, time.Now()))
}
