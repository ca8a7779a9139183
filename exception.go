// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	derrors "github.com/panjf2000/godisruptor/errors"
	"github.com/panjf2000/godisruptor/logging"
)

// ExceptionHandler decides, per failure site, whether an EventProcessor
// recovers and keeps going or terminates. A handler that returns nil from
// HandleEventException tells the processor to advance past the failing
// slot; a non-nil return propagates as a fatal failure that ends Run.
type ExceptionHandler[T any] interface {
	HandleEventException(err error, sequence int64, event *T) error
	HandleOnStartException(err error) error
	HandleOnShutdownException(err error) error
}

// FatalExceptionHandler is the default policy: it logs and wraps every
// failure as a *errors.FatalError, so the processor always terminates.
// This locks in the behavior spec's test S6 verifies: on a default-policy
// OnEvent failure, the processor's consumed sequence does NOT advance past
// the failing slot, because the wrapped error propagates before the
// batching loop's post-policy `sequence.Set`/`next++` step is reached.
type FatalExceptionHandler[T any] struct {
	Logger logging.Logger
}

var _ ExceptionHandler[struct{}] = FatalExceptionHandler[struct{}]{}

func (h FatalExceptionHandler[T]) logger() logging.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return logging.GetDefaultLogger()
}

// HandleEventException implements ExceptionHandler.
func (h FatalExceptionHandler[T]) HandleEventException(err error, sequence int64, _ *T) error {
	h.logger().Errorf("event processor: fatal error handling sequence %d: %v", sequence, err)
	return derrors.NewFatalError(sequence, err)
}

// HandleOnStartException implements ExceptionHandler.
func (h FatalExceptionHandler[T]) HandleOnStartException(err error) error {
	h.logger().Errorf("event processor: fatal error in OnStart: %v", err)
	return derrors.NewHandlerError("OnStart", err)
}

// HandleOnShutdownException implements ExceptionHandler.
func (h FatalExceptionHandler[T]) HandleOnShutdownException(err error) error {
	h.logger().Errorf("event processor: fatal error in OnShutdown: %v", err)
	return derrors.NewHandlerError("OnShutdown", err)
}
