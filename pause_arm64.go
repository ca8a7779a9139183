// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

// pause issues the aarch64 YIELD instruction, the ARM equivalent of amd64's
// PAUSE: a hint to the core that this is a spin-wait loop. See pause_arm64.s.
func pause()
