// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"sync/atomic"

	derrors "github.com/panjf2000/godisruptor/errors"
	"github.com/panjf2000/godisruptor/logging"
)

// ProcessorState is the lifecycle state of an EventProcessor.
type ProcessorState int32

const (
	// StateIdle is the initial state, and the state Run returns to on a
	// clean halt, a spurious alert or a fatal failure in the batching loop.
	// A fatal OnStart failure leaves the processor at StateRunning.
	StateIdle ProcessorState = iota
	// StateRunning is entered by Run and left only by Halt (to StateHalted)
	// or by Run's own loop exit (back to StateIdle).
	StateRunning
	// StateHalted is entered by Halt while the batching loop has not yet
	// observed it; a processor in this state still reports IsRunning()
	// true — the flag reflects lifecycle, not activity.
	StateHalted
)

// EventProcessor drives one consumer: it batches ready sequences off a
// SequenceBarrier, dispatches them to an EventHandler in order, and
// advances its own Sequence once per batch so downstream barriers and the
// producer's gating set observe progress.
type EventProcessor[T any] struct {
	noCopy

	ringBuffer       *RingBuffer[T]
	barrier          *SequenceBarrier
	handler          EventHandler[T]
	batchStart       BatchStartAware
	lifecycle        LifecycleAware
	exceptionHandler ExceptionHandler[T]
	logger           logging.Logger

	sequence        *Sequence
	batchSizeOffset int64

	runState atomic.Int32
}

// NewEventProcessor constructs a processor over ringBuffer, gated by
// barrier, dispatching to handler. barrier is normally
// ringBuffer.NewBarrier(upstreamDependents...).
func NewEventProcessor[T any](ringBuffer *RingBuffer[T], barrier *SequenceBarrier, handler EventHandler[T], opts ...Option) *EventProcessor[T] {
	options := newOptions(opts...)

	p := &EventProcessor[T]{
		ringBuffer:       ringBuffer,
		barrier:          barrier,
		handler:          handler,
		exceptionHandler: exceptionHandlerFor[T](options),
		logger:           options.Logger,
		sequence:         NewSequence(InitialSequenceValue),
		batchSizeOffset:  options.BatchSize - 1,
	}
	if b, ok := handler.(BatchStartAware); ok {
		p.batchStart = b
	}
	if la, ok := handler.(LifecycleAware); ok {
		p.lifecycle = la
	}
	if sr, ok := handler.(SequenceReportingHandler); ok {
		sr.SetSequenceCallback(p.sequence)
	}
	return p
}

func (p *EventProcessor[T]) log() logging.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logging.GetDefaultLogger()
}

// Sequence returns this processor's consumed-position Sequence, exposed by
// reference so downstream barriers and a ring buffer's gating set can
// depend on it.
func (p *EventProcessor[T]) Sequence() *Sequence { return p.sequence }

// IsRunning reports whether the processor is anywhere between Run and its
// loop actually exiting; a StateHalted processor whose loop has not yet
// observed the halt still reports true.
func (p *EventProcessor[T]) IsRunning() bool {
	return ProcessorState(p.runState.Load()) != StateIdle
}

// Halt requests cooperative shutdown: it moves a running processor to
// StateHalted then alerts the barrier. The release-store of StateHalted
// happens-before the release store of the barrier's alert flag, both of
// which a spinning WaitFor acquire-loads, so a processor that catches the
// alert is guaranteed to observe runState != StateRunning. Calling Halt
// repeatedly, or on an idle processor, is safe and has no further effect.
func (p *EventProcessor[T]) Halt() {
	if p.runState.CompareAndSwap(int32(StateRunning), int32(StateHalted)) {
		p.barrier.Alert()
	}
}

// Run executes the processor's lifecycle once: IDLE -> RUNNING -> the
// batching loop -> IDLE. It returns ErrAlreadyRunning if the processor is
// not IDLE. On a clean Halt it returns nil; on a spurious alert it returns
// ErrSpuriousAlert; on an OnEvent failure it returns the error the
// ExceptionHandler decided was fatal. An OnShutdown failure that the
// ExceptionHandler rejects is logged, not returned.
//
// A fatal OnStart failure is a special case, matching
// event_processor.h's run()/notifyStart(): the handler never finished
// starting, so Run returns the fatal error without calling OnShutdown and
// without resetting runState back to StateIdle. The processor is left
// stuck at StateRunning and cannot be restarted; a caller that hits this
// must build a fresh EventProcessor. A permissive ExceptionHandler that
// returns nil from HandleOnStartException instead lets Run proceed into
// the batching loop as if OnStart had succeeded.
func (p *EventProcessor[T]) Run() error {
	if !p.runState.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return derrors.ErrAlreadyRunning
	}

	p.barrier.ClearAlert()

	if p.lifecycle != nil {
		if err := p.lifecycle.OnStart(); err != nil {
			if startErr := p.exceptionHandler.HandleOnStartException(err); startErr != nil {
				return startErr
			}
		}
	}

	err := p.loop()

	p.shutdown()
	p.runState.Store(int32(StateIdle))
	return err
}

func (p *EventProcessor[T]) shutdown() {
	if p.lifecycle == nil {
		return
	}
	if err := p.lifecycle.OnShutdown(); err != nil {
		if hErr := p.exceptionHandler.HandleOnShutdownException(err); hErr != nil {
			p.log().Errorf("event processor: OnShutdown failed: %v", hErr)
		}
	}
}

// loop is the batching loop of spec section 4.6.1.
func (p *EventProcessor[T]) loop() error {
	next := p.sequence.Get() + 1

	for ProcessorState(p.runState.Load()) == StateRunning {
		available, err := p.barrier.WaitFor(next)
		if err != nil {
			if derrors.IsAlert(err) {
				if ProcessorState(p.runState.Load()) != StateRunning {
					return nil
				}
				return derrors.ErrSpuriousAlert
			}
			return err
		}

		endOfBatch := next + p.batchSizeOffset
		if available < endOfBatch {
			endOfBatch = available
		}

		if next <= endOfBatch {
			if p.batchStart != nil {
				p.batchStart.OnBatchStart(endOfBatch-next+1, available-next+1)
			}

			recovered := false
			for s := next; s <= endOfBatch; s++ {
				event := p.ringBuffer.Get(s)
				if evErr := p.handler.OnEvent(event, s, s == endOfBatch); evErr != nil {
					if polErr := p.exceptionHandler.HandleEventException(evErr, s, event); polErr != nil {
						return polErr
					}
					// A permissive custom policy returned nil: advance past
					// the failing slot, then fall back to the top of the
					// outer loop instead of continuing this batch window,
					// mirroring the reference design where the catch sits
					// outside the inner loop — the remainder re-queries the
					// barrier and gets a fresh OnBatchStart.
					p.sequence.Set(s)
					next = s + 1
					recovered = true
					break
				}
				next = s + 1
			}

			if !recovered {
				p.sequence.Set(endOfBatch)
			}
		}
	}

	return nil
}
