// Boot handoff hook
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package boot exposes the single hook this kernel needs from the
// bootloader/runtime handoff and heap allocator, both of which are
// external collaborators outside this repository's scope: a callback
// point that fires once the allocator is ready to serve the DMA-visible
// allocations the PCnet driver depends on.
//
// The runtime does not allow certain operations, including fmt-based
// console output and DMA reservation, before the scheduler has completed
// bootstrap; calling them under runtime.schedinit panics on a nil mp.p.
// allocReady gates AfterAllocInit the same way the surrounding runtime
// gates its own early-vs-late distinction.
package boot

var allocReady bool

func init() {
	allocReady = true
}

// AfterAllocInit runs fn at once, on the calling goroutine, and returns when
// fn returns; it panics if package initialization has not yet marked the
// allocator ready. fn is not queued for a later call. It is the only
// handoff point this repository requires from the boot sequence.
func AfterAllocInit(fn func()) {
	if !allocReady {
		panic("boot: AfterAllocInit called before allocator bootstrap completed")
	}

	fn()
}
