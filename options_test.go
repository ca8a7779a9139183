// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionsDefaults(t *testing.T) {
	o := newOptions()
	assert.EqualValues(t, DefaultBatchSize, o.BatchSize)
	assert.IsType(t, BusySpinWaitStrategy{}, o.WaitStrategy)
}

func TestWithBatchSizeRejectsNonPositive(t *testing.T) {
	o := newOptions(WithBatchSize(0))
	assert.EqualValues(t, DefaultBatchSize, o.BatchSize, "a non-positive batch size must be ignored")

	o = newOptions(WithBatchSize(-5))
	assert.EqualValues(t, DefaultBatchSize, o.BatchSize)

	o = newOptions(WithBatchSize(16))
	assert.EqualValues(t, 16, o.BatchSize)
}

func TestWithWaitStrategyOverridesDefault(t *testing.T) {
	o := newOptions(WithWaitStrategy(YieldingWaitStrategy{}))
	assert.IsType(t, YieldingWaitStrategy{}, o.WaitStrategy)
}

func TestExceptionHandlerForFallsBackToFatal(t *testing.T) {
	o := newOptions()
	h := exceptionHandlerFor[testEvent](o)
	assert.IsType(t, FatalExceptionHandler[testEvent]{}, h)
}

func TestExceptionHandlerForUsesConfiguredHandler(t *testing.T) {
	custom := FatalExceptionHandler[testEvent]{}
	o := newOptions(WithExceptionHandler[testEvent](custom))
	h := exceptionHandlerFor[testEvent](o)
	assert.Equal(t, custom, h)
}

func TestExceptionHandlerForIgnoresMismatchedType(t *testing.T) {
	// Configured for a different event type: must fall back to default
	// rather than panicking on a bad type assertion.
	o := newOptions(WithExceptionHandler[int](FatalExceptionHandler[int]{}))
	h := exceptionHandlerFor[testEvent](o)
	assert.IsType(t, FatalExceptionHandler[testEvent]{}, h)
}
