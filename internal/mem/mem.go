// Physical memory window support
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package mem provides the kernel-virtual to bus-physical address
// translation used by DMA-visible allocations.
//
// The bootloader maps all physical RAM starting at a fixed offset
// (PhysOffset) before handing control to the kernel; any object allocated
// on the Go heap therefore has a bus-physical address obtained by
// subtracting that offset. This package is only meant to be used with
// `GOOS=tamago GOARCH=amd64`.
package mem

import (
	"errors"
	"fmt"
	"unsafe"
)

// PhysOffset is PHYS_MEMORY_OFFSET, the fixed virtual address at which the
// bootloader maps the start of physical RAM. The value observed on the
// reference QEMU microvm boundary is 0x4444_441c_0000; board
// initialization may override it before any DMA allocation occurs.
var PhysOffset uint64 = 0x4444441c0000

// ErrBelowOffset is returned when a virtual address lies below PhysOffset.
var ErrBelowOffset = errors.New("mem: address below physical memory offset")

// ErrAbove32Bit is returned when a translated physical address is 2^31 or
// above: Translate only returns addresses below 2^31, which leaves the top
// bit of every 32-bit DMA address field clear.
var ErrAbove32Bit = errors.New("mem: physical address at or above 2^31")

// Translate converts a kernel-virtual address to its 32-bit bus-physical
// equivalent. It fails fast, per spec, rather than returning a physical
// address that could be programmed into a DMA descriptor incorrectly.
func Translate(va uint64) (uint32, error) {
	if va < PhysOffset {
		return 0, fmt.Errorf("%w: va=%#x offset=%#x", ErrBelowOffset, va, PhysOffset)
	}

	phys := va - PhysOffset

	if phys >= 1<<31 {
		return 0, fmt.Errorf("%w: phys=%#x", ErrAbove32Bit, phys)
	}

	return uint32(phys), nil
}

// VirtAddr returns the numeric kernel-virtual address of a pointer, for use
// with Translate.
func VirtAddr(p unsafe.Pointer) uint64 {
	return uint64(uintptr(p))
}
