// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import "runtime"

// WaitStrategy parks producers and consumers while an awaited sequence is
// unavailable, and wakes them on publication. Implementations must stay out
// of the per-event inner loop of EventProcessor's batching loop — they are
// consulted only when the barrier has no batch ready to hand out.
type WaitStrategy interface {
	// WaitFor blocks the caller until the effective consumer-visible
	// sequence — the minimum of dependents when dependents is non-empty,
	// or cursor alone otherwise — reaches requested, or until barrier is
	// alerted. It must poll barrier.CheckAlert periodically so
	// alerts propagate promptly, and it must never return a stale value
	// once alerted: on alert it returns errors.ErrAlert().
	WaitFor(requested int64, cursor *Sequence, dependents []*Sequence, barrier *SequenceBarrier) (int64, error)

	// SignalAllWhenBlocking wakes any parked waiters. Called by the
	// sequencer on Publish and by the barrier on Alert. A no-op for
	// strategies that never park.
	SignalAllWhenBlocking()

	// ProducerWait is called by the single-producer sequencer when a
	// claim cannot proceed because a consumer is lagging. It must be
	// cheap and forward-progress-safe: it must not block on a condition
	// that only a consumer, not this call itself, can advance.
	ProducerWait()
}

// effectiveSequence computes the minimum sequence a waiter must observe
// reach `requested`. Per spec, when a consumer has any upstream dependent,
// the producer cursor is not part of its effective sequence: the upstream
// consumers already gate on the cursor transitively.
func effectiveSequence(cursor *Sequence, dependents []*Sequence) int64 {
	if len(dependents) == 0 {
		return cursor.Get()
	}
	return minimumSequence(dependents)
}

// BusySpinWaitStrategy is the reference strategy: it never parks, spinning
// on effectiveSequence and the alert flag while issuing a CPU pause/yield
// hint each iteration (PAUSE on amd64, YIELD on aarch64, a cooperative
// runtime.Gosched elsewhere; see pause_*.go). SignalAllWhenBlocking is a
// no-op since there is nothing parked to wake.
type BusySpinWaitStrategy struct{}

var _ WaitStrategy = BusySpinWaitStrategy{}

// WaitFor implements WaitStrategy.
func (BusySpinWaitStrategy) WaitFor(requested int64, cursor *Sequence, dependents []*Sequence, barrier *SequenceBarrier) (int64, error) {
	for {
		if err := barrier.CheckAlert(); err != nil {
			return -1, err
		}
		if available := effectiveSequence(cursor, dependents); available >= requested {
			return available, nil
		}
		pause()
	}
}

// SignalAllWhenBlocking implements WaitStrategy.
func (BusySpinWaitStrategy) SignalAllWhenBlocking() {}

// ProducerWait implements WaitStrategy.
func (BusySpinWaitStrategy) ProducerWait() {
	pause()
}

// yieldSpins is the number of pause iterations YieldingWaitStrategy spends
// before calling runtime.Gosched, modeled on the spin/yield split used by
// davidroman0O-go-experiments/lmax's Gosched-based consumer wait and by
// five-vee-go-disruptor's SingleProducer yield hook.
const yieldSpins = 100

// YieldingWaitStrategy trades a little latency for much lower CPU burn than
// BusySpinWaitStrategy: it spins briefly, then cooperatively yields the OS
// thread with runtime.Gosched on every iteration past yieldSpins.
type YieldingWaitStrategy struct{}

var _ WaitStrategy = YieldingWaitStrategy{}

// WaitFor implements WaitStrategy.
func (YieldingWaitStrategy) WaitFor(requested int64, cursor *Sequence, dependents []*Sequence, barrier *SequenceBarrier) (int64, error) {
	var spins int
	for {
		if err := barrier.CheckAlert(); err != nil {
			return -1, err
		}
		if available := effectiveSequence(cursor, dependents); available >= requested {
			return available, nil
		}
		if spins < yieldSpins {
			spins++
			pause()
		} else {
			runtime.Gosched()
		}
	}
}

// SignalAllWhenBlocking implements WaitStrategy.
func (YieldingWaitStrategy) SignalAllWhenBlocking() {}

// ProducerWait implements WaitStrategy.
func (YieldingWaitStrategy) ProducerWait() {
	runtime.Gosched()
}
