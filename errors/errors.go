// Copyright (c) 2019 Andy Pan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package errors collects the sentinel error values and wrapper types of the
// disruptor's error taxonomy.
package errors

import "errors"

var (
	// ================================================ producer errors ================================================.

	// ErrInvalidClaimSize occurs when Sequencer.Next is called with a
	// count outside [1, bufferSize].
	ErrInvalidClaimSize = errors.New("disruptor: claim size must be between 1 and the ring buffer size")

	// ErrRingBufferSize occurs when a ring buffer or sequencer is
	// constructed with a size that is not a power of two.
	ErrRingBufferSize = errors.New("disruptor: ring buffer size must be a power of two")

	// =============================================== lifecycle errors ================================================.

	// ErrAlreadyRunning occurs when Run is called on an EventProcessor
	// that is already RUNNING.
	ErrAlreadyRunning = errors.New("disruptor: event processor is already running")

	// ErrSpuriousAlert occurs when a SequenceBarrier is alerted while the
	// owning EventProcessor's run state is still RUNNING, i.e. an alert
	// that did not originate from Halt.
	ErrSpuriousAlert = errors.New("disruptor: sequence barrier alerted while processor was running")

	// errAlert is the internal cooperative-cancellation signal raised by
	// a WaitStrategy or SequenceBarrier when the barrier's alert flag is
	// observed set. It never escapes EventProcessor.Run: a clean halt
	// swallows it, and a spurious alert is reported as ErrSpuriousAlert.
	errAlert = errors.New("disruptor: alert")
)

// ErrAlert reports the sentinel used internally to unwind out of a blocked
// WaitStrategy when a SequenceBarrier is alerted. Exported so custom
// WaitStrategy implementations outside this package can participate in the
// same cooperative-cancellation protocol.
func ErrAlert() error { return errAlert }

// IsAlert reports whether err is (or wraps) the alert signal.
func IsAlert(err error) bool { return errors.Is(err, errAlert) }

// HandlerError wraps an error returned by a user-supplied EventHandler
// lifecycle hook (OnStart/OnShutdown). It corresponds to spec's
// HandlerFailure error kind.
type HandlerError struct {
	Hook string // "OnStart" or "OnShutdown"
	Err  error
}

func (e *HandlerError) Error() string {
	return "disruptor: handler " + e.Hook + " failed: " + e.Err.Error()
}

func (e *HandlerError) Unwrap() error { return e.Err }

// NewHandlerError constructs a HandlerError for the named lifecycle hook.
func NewHandlerError(hook string, err error) *HandlerError {
	return &HandlerError{Hook: hook, Err: err}
}

// FatalError wraps whatever escapes an ExceptionHandler decision and
// terminates an EventProcessor. It corresponds to spec's
// FatalProcessorFailure error kind: it is what Run returns to its caller
// after OnShutdown has been invoked and run state has returned to IDLE — a
// fatal OnEvent failure in the batching loop takes this path. A fatal
// OnStart failure instead surfaces as a HandlerError and skips
// OnShutdown/the state reset entirely, and a fatal OnShutdown failure is
// logged rather than returned; see EventProcessor.Run.
type FatalError struct {
	Sequence int64 // the sequence being processed when the failure occurred, or -1
	Err      error
}

func (e *FatalError) Error() string {
	return "disruptor: fatal processor failure: " + e.Err.Error()
}

func (e *FatalError) Unwrap() error { return e.Err }

// NewFatalError constructs a FatalError for the given sequence.
func NewFatalError(sequence int64, err error) *FatalError {
	return &FatalError{Sequence: sequence, Err: err}
}
