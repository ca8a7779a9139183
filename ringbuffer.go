// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

// RingBuffer is a thin addressing layer over a power-of-two-sized,
// preallocated slot array: it maps sequence -> slot via bitmask and
// delegates claim/publish bookkeeping to its Sequencer. It neither
// validates sequences nor tracks availability itself.
//
// RingBuffer is non-copyable and non-movable: its identity, like a
// Sequence's, is its address.
type RingBuffer[T any] struct {
	noCopy

	mask      int64
	slots     []T
	sequencer *SingleProducerSequencer
}

// NewRingBuffer preallocates a ring buffer of the given power-of-two size,
// invoking factory once per slot to build its initial value. The array is
// never reallocated or resized afterward.
func NewRingBuffer[T any](size int64, factory func() T, opts ...Option) (*RingBuffer[T], error) {
	options := newOptions(opts...)

	sequencer, err := NewSingleProducerSequencer(size, options.WaitStrategy)
	if err != nil {
		return nil, err
	}

	slots := make([]T, size)
	for i := range slots {
		slots[i] = factory()
	}

	return &RingBuffer[T]{
		mask:      size - 1,
		slots:     slots,
		sequencer: sequencer,
	}, nil
}

// Get returns a pointer to the slot addressed by sequence & (N-1). Callers
// must only dereference it for reading after observing the sequence
// published (via Cursor/barrier) and only write through it between Next and
// Publish of that sequence.
func (rb *RingBuffer[T]) Get(sequence int64) *T {
	return &rb.slots[sequence&rb.mask]
}

// Sequencer returns the ring buffer's underlying sequencer, for embedders
// that need direct access beyond the delegating methods below.
func (rb *RingBuffer[T]) Sequencer() *SingleProducerSequencer {
	return rb.sequencer
}

// Next delegates to Sequencer().Next.
func (rb *RingBuffer[T]) Next(n int64) (int64, error) {
	return rb.sequencer.Next(n)
}

// Publish delegates to Sequencer().Publish.
func (rb *RingBuffer[T]) Publish(sequence int64) {
	rb.sequencer.Publish(sequence)
}

// Cursor delegates to Sequencer().Cursor.
func (rb *RingBuffer[T]) Cursor() *Sequence {
	return rb.sequencer.Cursor()
}

// SetGatingSequences delegates to Sequencer().SetGatingSequences.
func (rb *RingBuffer[T]) SetGatingSequences(sequences ...*Sequence) {
	rb.sequencer.SetGatingSequences(sequences...)
}

// GetMinimumGatingSequence delegates to Sequencer().GetMinimumGatingSequence.
func (rb *RingBuffer[T]) GetMinimumGatingSequence() int64 {
	return rb.sequencer.GetMinimumGatingSequence()
}

// NewBarrier delegates to Sequencer().NewBarrier.
func (rb *RingBuffer[T]) NewBarrier(dependents ...*Sequence) *SequenceBarrier {
	return rb.sequencer.NewBarrier(dependents...)
}
