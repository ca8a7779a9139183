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

// Package goroutine drives the topology's long-lived threads (one producer
// loop, one EventProcessor.Run loop per consumer) through a fixed-size
// github.com/panjf2000/ants/v2 pool instead of bare `go func(){}()` calls,
// so a topology's goroutine budget is explicit and its shutdown is a single
// pool.Release rather than a scatter of untracked goroutines.
package goroutine

import (
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultPoolSize is used when a topology does not size its pool
	// explicitly. It comfortably covers a single producer plus a large
	// diamond of consumer stages.
	DefaultPoolSize = 1 << 10

	// ExpiryDuration is the interval time to clean up expired idle workers.
	// Processor/producer loops in this pool run for the topology's whole
	// lifetime, so this only matters for a pool that outlives one topology.
	ExpiryDuration = 10 * time.Second
)

func init() {
	// Every topology owns its own pool; the ants package-level default
	// pool is never used.
	ants.Release()
}

// Pool is the alias of ants.Pool.
type Pool = ants.Pool

// New instantiates a blocking *Pool sized for exactly the number of
// long-lived loops a topology intends to run: one per consumer plus one
// for the producer. size <= 0 falls back to DefaultPoolSize.
//
// The pool is blocking (Nonblocking: false) because every submitted task
// in this module runs until the topology is halted — a full pool must make
// the caller wait for capacity rather than drop the loop on the floor.
func New(size int) *Pool {
	if size <= 0 {
		size = DefaultPoolSize
	}
	options := ants.Options{ExpiryDuration: ExpiryDuration, Nonblocking: false}
	p, _ := ants.NewPool(size, ants.WithOptions(options))
	return p
}
