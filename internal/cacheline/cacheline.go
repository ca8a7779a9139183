// Package cacheline centralizes cache-line-isolation padding so every
// hot-path struct in the disruptor core pads the same way.
package cacheline

import "golang.org/x/sys/cpu"

// Pad is a zero-cost field that occupies a full cache line, isolating the
// fields declared before it from false sharing with whatever follows it (or
// with an adjacent heap object, when placed last in a struct that is
// itself heap-allocated and not embedded in an array).
type Pad = cpu.CacheLinePad
