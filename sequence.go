// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"sync/atomic"

	"github.com/panjf2000/godisruptor/internal/cacheline"
)

// InitialSequenceValue is the value a Sequence holds before anything has
// ever been produced or consumed through it.
const InitialSequenceValue int64 = -1

// MaxSequenceValue is the largest representable sequence, used as the fold
// seed when computing the minimum of a possibly-empty gating set.
const MaxSequenceValue int64 = 1<<63 - 1

// noCopy embeds into any type whose identity is its address; `go vet`'s
// copylocks check flags accidental copies of anything embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Sequence is a monotonically non-decreasing 64-bit counter, padded to
// occupy a cache line by itself so that writes to one Sequence never
// invalidate a neighboring Sequence's cache line (false sharing). It has no
// identity beyond its storage address: barriers and sequencers hold a
// pointer to it, never a copy.
type Sequence struct {
	noCopy

	_     cacheline.Pad
	value atomic.Int64
	_     cacheline.Pad
}

// NewSequence returns a Sequence initialized to the given value.
func NewSequence(initial int64) *Sequence {
	s := &Sequence{}
	s.value.Store(initial)
	return s
}

// Get returns the current value with acquire semantics.
func (s *Sequence) Get() int64 {
	return s.value.Load()
}

// Set stores v with release semantics.
func (s *Sequence) Set(v int64) {
	s.value.Store(v)
}

// IncrementAndGet adds delta and returns the new value; the read-modify-write
// carries release semantics for the store half of the operation.
func (s *Sequence) IncrementAndGet(delta int64) int64 {
	return s.value.Add(delta)
}

// CompareAndSet atomically sets the value to desired if the current value
// equals *expected. It reports whether the swap took place; on failure,
// *expected is updated to the value observed at the time of the failed
// attempt, mirroring a single-attempt acquire-release RMW.
func (s *Sequence) CompareAndSet(expected *int64, desired int64) bool {
	if s.value.CompareAndSwap(*expected, desired) {
		return true
	}
	*expected = s.value.Load()
	return false
}

// minimumSequence folds min over a set of sequences, starting from
// MaxSequenceValue, which is what an empty set yields.
func minimumSequence(sequences []*Sequence) int64 {
	minimum := MaxSequenceValue
	for _, s := range sequences {
		if v := s.Get(); v < minimum {
			minimum = v
		}
	}
	return minimum
}
