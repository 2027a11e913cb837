// DMA buffer allocation
// https://github.com/usbarmory/tamago
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package dma provides primitives for allocating card-visible memory, it is
// used by device drivers to obtain buffers whose bus-physical address can
// be handed to a DMA-capable controller.
//
// Unlike a board with a carved-out physical memory pool, this target maps
// all of physical RAM at a fixed virtual offset (see package mem), so the
// Go heap itself is DMA-visible: Reserve allocates normal heap memory and
// translates its address rather than managing a separate free-block pool.
// This package is only meant to be used with `GOOS=tamago GOARCH=amd64`.
package dma

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/opencore/pcnetkernel/internal/mem"
)

// Region tracks the DMA-visible allocations made through it, so that
// Release can be paired with Reserve the way the driver expects even
// though the underlying Go heap does the actual bookkeeping.
type Region struct {
	mu   sync.Mutex
	used map[uint32][]byte
}

var global = &Region{used: make(map[uint32][]byte)}

// Default returns the global DMA region instance used throughout this
// kernel for all DMA allocations.
func Default() *Region {
	return global
}

// Reserve allocates size bytes of DMA-visible memory, with optional power-
// of-2 alignment, and returns both the byte slice and its bus-physical
// address. The buffer is never relocated, reallocated, or copied: Go's
// non-moving allocator guarantees a stable address for as long as buf is
// reachable, which the caller is responsible for by retaining the byte
// slice for the lifetime of the allocation.
func (r *Region) Reserve(size int, align int) (addr uint32, buf []byte, err error) {
	if size <= 0 {
		return 0, nil, fmt.Errorf("dma: invalid reservation size %d", size)
	}

	if align <= 0 {
		align = 1
	}

	raw := make([]byte, size+align-1)
	base := mem.VirtAddr(unsafe.Pointer(&raw[0]))

	offset := 0
	if r := int(base) % align; r != 0 {
		offset = align - r
	}

	buf = raw[offset : offset+size]

	addr, err = mem.Translate(mem.VirtAddr(unsafe.Pointer(&buf[0])))
	if err != nil {
		return 0, nil, fmt.Errorf("dma: reservation not DMA-visible: %w", err)
	}

	r.mu.Lock()
	r.used[addr] = buf
	r.mu.Unlock()

	return addr, buf, nil
}

// Release drops the region's bookkeeping for addr. It must only be called
// once the card has been told to stop using the buffer; the ring & buffer
// manager never calls it during normal driver operation, matching the
// ownership invariant in spec.md.
func (r *Region) Release(addr uint32) {
	r.mu.Lock()
	delete(r.used, addr)
	r.mu.Unlock()
}

// Lookup returns the buffer previously reserved at addr, if any.
func (r *Region) Lookup(addr uint32) (buf []byte, ok bool) {
	r.mu.Lock()
	buf, ok = r.used[addr]
	r.mu.Unlock()
	return
}

// Reserve is the equivalent of Region.Reserve on the global DMA region.
func Reserve(size int, align int) (uint32, []byte, error) {
	return global.Reserve(size, align)
}

// Release is the equivalent of Region.Release on the global DMA region.
func Release(addr uint32) {
	global.Release(addr)
}
