// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/panjf2000/godisruptor/errors"
)

func TestEffectiveSequenceNoDependents(t *testing.T) {
	cursor := NewSequence(7)
	assert.EqualValues(t, 7, effectiveSequence(cursor, nil))
}

func TestEffectiveSequenceWithDependents(t *testing.T) {
	cursor := NewSequence(100) // producer far ahead
	a := NewSequence(3)
	b := NewSequence(5)
	assert.EqualValues(t, 3, effectiveSequence(cursor, []*Sequence{a, b}))
}

func testWaitStrategyWaitsThenReturns(t *testing.T, ws WaitStrategy) {
	cursor := NewSequence(InitialSequenceValue)
	sequencer, err := NewSingleProducerSequencer(8, ws)
	require.NoError(t, err)
	barrier := sequencer.NewBarrier()

	done := make(chan struct{})
	go func() {
		defer close(done)
		available, waitErr := ws.WaitFor(0, cursor, nil, barrier)
		assert.NoError(t, waitErr)
		assert.EqualValues(t, 0, available)
	}()

	// Give the waiter a moment to start spinning before publishing.
	time.Sleep(5 * time.Millisecond)
	cursor.Set(0)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not observe the published sequence in time")
	}
}

func TestBusySpinWaitStrategyWaitsThenReturns(t *testing.T) {
	testWaitStrategyWaitsThenReturns(t, BusySpinWaitStrategy{})
}

func TestYieldingWaitStrategyWaitsThenReturns(t *testing.T) {
	testWaitStrategyWaitsThenReturns(t, YieldingWaitStrategy{})
}

func testWaitStrategyReturnsOnAlert(t *testing.T, ws WaitStrategy) {
	cursor := NewSequence(InitialSequenceValue)
	sequencer, err := NewSingleProducerSequencer(8, ws)
	require.NoError(t, err)
	barrier := sequencer.NewBarrier()

	done := make(chan error, 1)
	go func() {
		_, waitErr := ws.WaitFor(0, cursor, nil, barrier)
		done <- waitErr
	}()

	time.Sleep(5 * time.Millisecond)
	barrier.Alert()

	select {
	case err := <-done:
		assert.True(t, derrors.IsAlert(err))
	case <-time.After(time.Second):
		t.Fatal("WaitFor did not observe the alert in time")
	}
}

func TestBusySpinWaitStrategyReturnsOnAlert(t *testing.T) {
	testWaitStrategyReturnsOnAlert(t, BusySpinWaitStrategy{})
}

func TestYieldingWaitStrategyReturnsOnAlert(t *testing.T) {
	testWaitStrategyReturnsOnAlert(t, YieldingWaitStrategy{})
}
