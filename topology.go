// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

import (
	"github.com/panjf2000/godisruptor/logging"
	"github.com/panjf2000/godisruptor/pool/goroutine"
)

// Topology is a declarative builder for wiring a ring buffer to one or more
// consumer groups, chaining each group's barrier off the sequences of the
// group before it. A single call to WithConsumerGroup registers a group of
// handlers that run in parallel, all gated on the same upstream; chaining
// WithConsumerGroup calls produces a pipeline; passing every handler that
// must fan out from the same point in one call produces a diamond (each
// gets its own barrier on the same upstream, and the next group's barriers
// gate on all of them).
//
// Modeled on go-disruptor's Wireup/Configure/WithConsumerGroup/Build.
type Topology[T any] struct {
	ringBuffer *RingBuffer[T]
	opts       []Option
	groups     [][]EventHandler[T]
}

// NewTopology starts a builder over ringBuffer. opts are applied to every
// EventProcessor the topology constructs, before any per-Build overrides.
func NewTopology[T any](ringBuffer *RingBuffer[T], opts ...Option) *Topology[T] {
	return &Topology[T]{ringBuffer: ringBuffer, opts: opts}
}

// WithConsumerGroup registers a group of handlers that consume concurrently,
// all gated on whatever the topology's current upstream is. Calling it
// again chains a new group behind this one. A no-op on an empty group.
func (t *Topology[T]) WithConsumerGroup(handlers ...EventHandler[T]) *Topology[T] {
	if len(handlers) == 0 {
		return t
	}
	group := make([]EventHandler[T], len(handlers))
	copy(group, handlers)
	t.groups = append(t.groups, group)
	return t
}

// Graph is the realized set of processors a Topology.Build produces, plus
// the ring buffer they consume from.
type Graph[T any] struct {
	RingBuffer *RingBuffer[T]
	Processors []*EventProcessor[T]
}

// Build materializes every registered group into EventProcessors, chaining
// each group's SequenceBarrier off the previous group's processor
// sequences, and finally registers the terminal group's sequences as the
// ring buffer's gating set so the producer never laps the slowest consumer.
// opts are applied after the Topology's own, letting a caller override a
// setting (such as WithBatchSize) for every processor in this Build only.
func (t *Topology[T]) Build(opts ...Option) *Graph[T] {
	var upstream []*Sequence
	var all []*EventProcessor[T]

	for _, group := range t.groups {
		groupOpts := make([]Option, 0, len(t.opts)+len(opts))
		groupOpts = append(groupOpts, t.opts...)
		groupOpts = append(groupOpts, opts...)

		groupSequences := make([]*Sequence, 0, len(group))
		for _, handler := range group {
			// Each handler gets its own barrier gated on the same upstream:
			// SequenceBarrier.alerted is one flag per instance, so sharing a
			// barrier across siblings would alert every sibling the instant
			// one of them is halted.
			barrier := t.ringBuffer.NewBarrier(upstream...)
			processor := NewEventProcessor[T](t.ringBuffer, barrier, handler, groupOpts...)
			all = append(all, processor)
			groupSequences = append(groupSequences, processor.Sequence())
		}
		upstream = groupSequences
	}

	t.ringBuffer.SetGatingSequences(upstream...)
	return &Graph[T]{RingBuffer: t.ringBuffer, Processors: all}
}

// Start submits every processor's Run loop to pool, one task each, and
// returns as soon as they are all submitted — it does not wait for them to
// finish. A processor that exits with a non-nil error (a fatal event
// exception, a spurious alert) logs it rather than propagating it, since by
// the time Run returns there is no caller left to hand the error to.
func (g *Graph[T]) Start(pool *goroutine.Pool) error {
	for _, processor := range g.Processors {
		processor := processor
		if err := pool.Submit(func() {
			if err := processor.Run(); err != nil {
				logging.Errorf("event processor exited: %v", err)
			}
		}); err != nil {
			return err
		}
	}
	return nil
}

// Halt requests cooperative shutdown of every processor in the graph. It
// does not block for their loops to observe it; callers that need that
// should track completion themselves, e.g. via a sync.WaitGroup wrapped
// around each Start task.
func (g *Graph[T]) Halt() {
	for _, processor := range g.Processors {
		processor.Halt()
	}
}
