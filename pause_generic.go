// Copyright 2019 Andy Pan. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package disruptor

import "runtime"

// pause has no dedicated spin-wait instruction on this architecture, so it
// cooperatively yields the OS thread instead.
func pause() {
	runtime.Gosched()
}
