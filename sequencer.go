// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	derrors "github.com/panjf2000/godisruptor/errors"
	"github.com/panjf2000/godisruptor/internal/cacheline"
	imath "github.com/panjf2000/godisruptor/internal/math"
)

// SingleProducerSequencer hands out monotonically increasing sequence
// ranges to exactly one producer thread, makes published sequences visible
// to consumers, and answers availability queries. It is the coordination
// core behind RingBuffer; embedders normally reach it through
// RingBuffer.Sequencer rather than constructing one directly.
//
// nextValue and cachedGatingValue are touched only by the producer thread
// and are therefore plain int64s, not Sequences: the single-producer
// contract makes them thread-local by construction.
type SingleProducerSequencer struct {
	noCopy

	bufferSize   int64
	waitStrategy WaitStrategy

	cursor *Sequence

	_                 cacheline.Pad
	nextValue         int64
	cachedGatingValue int64
	_                 cacheline.Pad

	gatingSequences []*Sequence
}

// NewSingleProducerSequencer constructs a sequencer over a ring buffer of
// the given size, which must be a power of two.
func NewSingleProducerSequencer(bufferSize int64, waitStrategy WaitStrategy) (*SingleProducerSequencer, error) {
	if bufferSize <= 0 || !imath.IsPowerOfTwo(int(bufferSize)) {
		return nil, derrors.ErrRingBufferSize
	}
	if waitStrategy == nil {
		waitStrategy = BusySpinWaitStrategy{}
	}
	return &SingleProducerSequencer{
		bufferSize:        bufferSize,
		waitStrategy:      waitStrategy,
		cursor:            NewSequence(InitialSequenceValue),
		nextValue:         InitialSequenceValue,
		cachedGatingValue: InitialSequenceValue,
	}, nil
}

// Cursor returns the sequencer's producer cursor: the highest sequence
// whose slot has been published.
func (s *SingleProducerSequencer) Cursor() *Sequence { return s.cursor }

// BufferSize returns the configured ring buffer capacity.
func (s *SingleProducerSequencer) BufferSize() int64 { return s.bufferSize }

// SetGatingSequences replaces the set of terminal consumer sequences the
// producer must not overtake by more than BufferSize-1. It must be called
// before the producer enters its hot loop; concurrent mutation while a
// producer is claiming sequences is not supported.
func (s *SingleProducerSequencer) SetGatingSequences(sequences ...*Sequence) {
	s.gatingSequences = sequences
}

// GetMinimumGatingSequence folds min over the current values of the
// registered gating sequences, returning MaxSequenceValue if none are
// registered.
func (s *SingleProducerSequencer) GetMinimumGatingSequence() int64 {
	if len(s.gatingSequences) == 0 {
		return MaxSequenceValue
	}
	return minimumSequence(s.gatingSequences)
}

// Next reserves the next n sequences for the producer, blocking via the
// wait strategy's ProducerWait until there is room in the ring buffer.
// n must be in [1, BufferSize]; n=1 is the common single-event case.
func (s *SingleProducerSequencer) Next(n int64) (int64, error) {
	if n < 1 || n > s.bufferSize {
		return 0, derrors.ErrInvalidClaimSize
	}

	nextSeq := s.nextValue + n
	wrapPoint := nextSeq - s.bufferSize

	if wrapPoint > s.cachedGatingValue {
		for wrapPoint > s.minGating() {
			s.waitStrategy.ProducerWait()
		}
		s.cachedGatingValue = s.minGating()
	}

	s.nextValue = nextSeq
	return nextSeq, nil
}

func (s *SingleProducerSequencer) minGating() int64 {
	if len(s.gatingSequences) == 0 {
		return MaxSequenceValue
	}
	return minimumSequence(s.gatingSequences)
}

// Publish makes seq visible to consumers: it stores seq into the cursor
// with release semantics, then wakes any parked waiters. Because claims in
// the single-producer sequencer are serial and contiguous, publishing is
// just a cursor advance — there is no availability bitmap to update.
func (s *SingleProducerSequencer) Publish(seq int64) {
	s.cursor.Set(seq)
	s.waitStrategy.SignalAllWhenBlocking()
}

// IsAvailable reports whether seq has been published.
func (s *SingleProducerSequencer) IsAvailable(seq int64) bool {
	return seq <= s.cursor.Get()
}

// getHighestPublishedSequence returns the highest sequence known to be
// published within [lowerBound, availableSequence]. For the single-producer
// sequencer, publication is contiguous by construction, so this is simply
// availableSequence; a multi-producer variant would scan an availability
// bitmap here instead (out of scope for this module).
func (s *SingleProducerSequencer) getHighestPublishedSequence(_ int64, availableSequence int64) int64 {
	return availableSequence
}

// NewBarrier constructs a SequenceBarrier gating on this sequencer's cursor
// and the given upstream dependent sequences (empty for a barrier that
// gates directly on the producer).
func (s *SingleProducerSequencer) NewBarrier(dependents ...*Sequence) *SequenceBarrier {
	return newSequenceBarrier(s, s.waitStrategy, s.cursor, dependents)
}
