// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

// EventHandler is the required surface an embedder implements to consume
// events from a ring buffer. OnEvent is invoked once per published
// sequence, in strictly ascending order, for every consumer registered on
// an EventProcessor.
type EventHandler[T any] interface {
	// OnEvent processes one slot. endOfBatch is true iff sequence is the
	// last event of the current batch — the point at which a handler
	// doing buffered I/O should flush.
	OnEvent(event *T, sequence int64, endOfBatch bool) error
}

// HandlerFunc adapts a plain function to EventHandler, mirroring the
// http.HandlerFunc idiom.
type HandlerFunc[T any] func(event *T, sequence int64, endOfBatch bool) error

// OnEvent implements EventHandler.
func (f HandlerFunc[T]) OnEvent(event *T, sequence int64, endOfBatch bool) error {
	return f(event, sequence, endOfBatch)
}

// BatchStartAware is an optional handler capability: OnBatchStart is
// invoked once per non-empty batch, before the first OnEvent of that
// batch. batchSize is the number of events about to be delivered;
// queueDepth is the total supply visible when the batch started
// (available - next + 1), which exceeds batchSize when the batch cap cut
// the batch short — the signal a handler can use to decide whether to
// work harder to catch up.
type BatchStartAware interface {
	OnBatchStart(batchSize, queueDepth int64)
}

// LifecycleAware is an optional handler capability for startup/shutdown
// hooks. Go has no checked exceptions, so unlike the reference design's
// void onStart()/onShutdown(), both return error; a non-nil error is
// routed through the ExceptionHandler's HandleOnStartException or
// HandleOnShutdownException respectively.
type LifecycleAware interface {
	OnStart() error
	OnShutdown() error
}

// TimeoutAware is an optional handler capability reserved for a future
// timeout-capable WaitStrategy. Neither BusySpinWaitStrategy nor
// YieldingWaitStrategy ever returns available < requested from WaitFor, so
// OnTimeout is never invoked by this module; a timeout strategy would call
// it exactly when WaitFor returns available < requested.
type TimeoutAware interface {
	OnTimeout(sequence int64)
}

// SequenceReportingHandler is an optional handler capability invoked once
// at EventProcessor construction, handing the handler a reference to its
// own consumed-sequence so it can advance consumed position mid-batch for
// very long batches. Unused, it is simply never called.
type SequenceReportingHandler interface {
	SetSequenceCallback(sequence *Sequence)
}
