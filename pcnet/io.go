// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import "github.com/opencore/pcnetkernel/internal/ioport"

// window is the card's 32-bit I/O-mapped register block, based at the I/O
// space address in BAR0. It hides the RAP (Register Address Pointer)
// sequencing that CSR and BCR access require from its callers.
type window struct {
	base uint16
	bus  ioport.Bus
}

func newWindow(base uint16, bus ioport.Bus) *window {
	return &window{base: base, bus: bus}
}

func (w *window) port(offset uint16) uint16 {
	return w.base + offset
}

// Reset performs the documented reset sequence: reset is triggered by
// reads, not a write — a 32-bit-wide read of the RESET port followed by a
// 16-bit-wide read of the RESET port's alias.
func (w *window) Reset() {
	w.bus.In32(w.port(portReset))
	w.bus.In16(w.port(portReset16))
}

// WriteRDP writes the raw RDP data port directly, bypassing RAP indexing.
// Bring-up uses it once, right after reset, to write 0: a 32-bit write to
// RDP puts the card into 32-bit I/O mode, which the 32-bit CSR/BCR accessors
// below depend on.
func (w *window) WriteRDP(val uint32) {
	w.bus.Out32(w.port(portRDP32), val)
}

// CSR reads control/status register n through the indirect RAP/RDP window.
func (w *window) CSR(n uint32) uint32 {
	w.bus.Out32(w.port(portRAP32), n)
	return w.bus.In32(w.port(portRDP32))
}

// SetCSR writes control/status register n through the indirect RAP/RDP
// window.
func (w *window) SetCSR(n uint32, val uint32) {
	w.bus.Out32(w.port(portRAP32), n)
	w.bus.Out32(w.port(portRDP32), val)
}

// BCR reads bus configuration register n through the indirect RAP/BCR
// window.
func (w *window) BCR(n uint32) uint32 {
	w.bus.Out32(w.port(portRAP32), n)
	return w.bus.In32(w.port(portBCR32))
}

// SetBCR writes bus configuration register n through the indirect RAP/BCR
// window.
func (w *window) SetBCR(n uint32, val uint32) {
	w.bus.Out32(w.port(portRAP32), n)
	w.bus.Out32(w.port(portBCR32), val)
}

// ReadMACByte reads one byte of the burned-in station address from the
// Address PROM, which is exposed as two 32-bit windows (APROM0, APROM1).
func (w *window) ReadMACByte(i int) byte {
	if i < 4 {
		word := w.bus.In32(w.port(portAPROM0))
		return byte(word >> (8 * uint(i)))
	}

	word := w.bus.In32(w.port(portAPROM1))
	return byte(word >> (8 * uint(i-4)))
}
