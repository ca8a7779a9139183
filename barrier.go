// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"sync/atomic"

	derrors "github.com/panjf2000/godisruptor/errors"
)

// SequenceBarrier is the single suspension point for one consumer. It
// combines the sequencer (for availability queries and the producer
// cursor), a wait strategy, a set of upstream dependent consumer
// sequences, and a one-way alert flag used exclusively for cooperative
// shutdown.
type SequenceBarrier struct {
	noCopy

	sequencer    *SingleProducerSequencer
	waitStrategy WaitStrategy
	cursor       *Sequence
	dependents   []*Sequence
	alerted      atomic.Bool
}

func newSequenceBarrier(sequencer *SingleProducerSequencer, waitStrategy WaitStrategy, cursor *Sequence, dependents []*Sequence) *SequenceBarrier {
	return &SequenceBarrier{
		sequencer:    sequencer,
		waitStrategy: waitStrategy,
		cursor:       cursor,
		dependents:   dependents,
	}
}

// WaitFor blocks until requested is available (or the barrier is alerted)
// and returns the highest sequence known to be safely readable, which may
// exceed requested — this is how batching arises further up the stack in
// EventProcessor.
func (b *SequenceBarrier) WaitFor(requested int64) (int64, error) {
	if b.IsAlerted() {
		return -1, derrors.ErrAlert()
	}

	available, err := b.waitStrategy.WaitFor(requested, b.cursor, b.dependents, b)
	if err != nil {
		return -1, err
	}
	if available < requested {
		return available, nil
	}
	return b.sequencer.getHighestPublishedSequence(requested, available), nil
}

// Alert sets the one-way alert flag and wakes any parked waiters. This is
// the only mechanism by which a blocked consumer can be woken for
// shutdown: the release-store here synchronizes-with the acquire-load a
// waiting WaitStrategy performs via IsAlerted/CheckAlert.
func (b *SequenceBarrier) Alert() {
	b.alerted.Store(true)
	b.waitStrategy.SignalAllWhenBlocking()
}

// ClearAlert resets the alert flag. Called by EventProcessor at the start
// of every Run.
func (b *SequenceBarrier) ClearAlert() {
	b.alerted.Store(false)
}

// IsAlerted reports the current alert state.
func (b *SequenceBarrier) IsAlerted() bool {
	return b.alerted.Load()
}

// CheckAlert returns errors.ErrAlert() if the barrier is alerted.
func (b *SequenceBarrier) CheckAlert() error {
	if b.IsAlerted() {
		return derrors.ErrAlert()
	}
	return nil
}
