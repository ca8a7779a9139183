// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "github.com/panjf2000/godisruptor/logging"

// DefaultBatchSize bounds how many events an EventProcessor will deliver
// out of a single WaitFor before advancing its sequence, absent
// WithBatchSize.
const DefaultBatchSize = 8192

// Option configures a RingBuffer or EventProcessor at construction. Options
// are not safe to change after Run/the first Next call, matching gnet's own
// Options being fixed before Serve.
type Option func(*Options)

// Options collects every configurable knob. exceptionHandler is stored
// untyped because Options is shared by every event type T; NewEventProcessor
// type-asserts it back to ExceptionHandler[T], falling back to
// FatalExceptionHandler[T]{} when absent or mismatched.
type Options struct {
	WaitStrategy     WaitStrategy
	BatchSize        int64
	exceptionHandler any
	Logger           logging.Logger
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		WaitStrategy: BusySpinWaitStrategy{},
		BatchSize:    DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithWaitStrategy overrides the default BusySpinWaitStrategy.
func WithWaitStrategy(ws WaitStrategy) Option {
	return func(o *Options) { o.WaitStrategy = ws }
}

// WithBatchSize overrides DefaultBatchSize. Must be >= 1.
func WithBatchSize(n int64) Option {
	return func(o *Options) {
		if n >= 1 {
			o.BatchSize = n
		}
	}
}

// WithExceptionHandler overrides FatalExceptionHandler[T] for the
// EventProcessor this option is passed to. The type parameter must match
// the processor's event type or the handler falls back to the default.
func WithExceptionHandler[T any](h ExceptionHandler[T]) Option {
	return func(o *Options) { o.exceptionHandler = h }
}

// WithLogger overrides the package default zap-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func exceptionHandlerFor[T any](o *Options) ExceptionHandler[T] {
	if h, ok := o.exceptionHandler.(ExceptionHandler[T]); ok {
		return h
	}
	return FatalExceptionHandler[T]{Logger: o.Logger}
}
