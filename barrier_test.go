// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "github.com/panjf2000/godisruptor/errors"
)

func TestBarrierWaitForReturnsAvailable(t *testing.T) {
	s, err := NewSingleProducerSequencer(8, BusySpinWaitStrategy{})
	require.NoError(t, err)
	barrier := s.NewBarrier()

	seq, err := s.Next(3)
	require.NoError(t, err)
	s.Publish(seq)

	available, err := barrier.WaitFor(0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, available)
}

func TestBarrierWaitForReturnsErrAlertWhenPreAlerted(t *testing.T) {
	s, err := NewSingleProducerSequencer(8, BusySpinWaitStrategy{})
	require.NoError(t, err)
	barrier := s.NewBarrier()

	barrier.Alert()
	_, err = barrier.WaitFor(0)
	assert.True(t, derrors.IsAlert(err))
}

func TestBarrierAlertClearAlertIsAlerted(t *testing.T) {
	s, err := NewSingleProducerSequencer(8, BusySpinWaitStrategy{})
	require.NoError(t, err)
	barrier := s.NewBarrier()

	assert.False(t, barrier.IsAlerted())
	barrier.Alert()
	assert.True(t, barrier.IsAlerted())
	assert.True(t, derrors.IsAlert(barrier.CheckAlert()))

	barrier.ClearAlert()
	assert.False(t, barrier.IsAlerted())
	assert.NoError(t, barrier.CheckAlert())
}

func TestBarrierDependentGating(t *testing.T) {
	s, err := NewSingleProducerSequencer(8, BusySpinWaitStrategy{})
	require.NoError(t, err)

	upstream := NewSequence(2)
	barrier := s.NewBarrier(upstream)

	seq, err := s.Next(8)
	require.NoError(t, err)
	s.Publish(seq) // producer cursor now at 7, far past upstream

	available, err := barrier.WaitFor(0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, available, "a barrier with dependents must gate on them, not the producer cursor")
}
