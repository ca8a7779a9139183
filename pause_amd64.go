// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package disruptor

// pause issues the amd64 PAUSE instruction: a hint to the CPU that this is
// a spin-wait loop, reducing power draw and the mis-speculation penalty on
// exit without yielding the OS thread. See pause_amd64.s.
func pause()
