// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// descriptorSize is the width of a single ring entry under SWSTYLE 2.
const descriptorSize = 16

// maxBufferLength is the largest buffer length the 12-bit BCNT field can
// encode, per spec.md §3.
const maxBufferLength = 4096

// ownBit is bit 7 of the descriptor's status_high byte (offset 7), the
// card/driver ownership handoff flag shared by RX and TX descriptors. In
// the little-endian *uint32 window at &d[4], byte 7 is the word's most
// significant byte, so OWN lands at bit 31.
const ownBit = 1 << 31

// onesNibble occupies bits 12-15 of the length word; the device requires it
// fixed at 0b1111 to distinguish the 12-bit two's-complement BCNT field from
// a plain unsigned length.
const onesNibble = 0xf << 12

// descriptor is a byte-window view over one 16-byte ring entry:
//
//	bytes 0-3  buffer address (little-endian)
//	bytes 4-5  BCNT (12-bit two's complement) | ones nibble
//	byte  6    status: device-specific error bits
//	byte  7    status_high: OWN at bit 7, plus other device-specific bits
//	bytes 8-11 message byte count (RX) / unused (TX)
//	bytes 12-15 reserved
type descriptor []byte

func newDescriptor(buf []byte) descriptor {
	if len(buf) != descriptorSize {
		panic(fmt.Sprintf("pcnet: descriptor window must be %d bytes, got %d", descriptorSize, len(buf)))
	}
	return descriptor(buf)
}

func (d descriptor) statusWordPtr() *uint32 {
	return (*uint32)(unsafe.Pointer(&d[4]))
}

// BufferAddress returns the bus-physical address of the descriptor's data
// buffer.
func (d descriptor) BufferAddress() uint32 {
	return binary.LittleEndian.Uint32(d[0:4])
}

// SetBufferAddress programs the descriptor's buffer pointer. It must only be
// called during ring setup, before the descriptor is handed to the card.
func (d descriptor) SetBufferAddress(addr uint32) {
	binary.LittleEndian.PutUint32(d[0:4], addr)
}

// SetLength encodes length as the descriptor's 12-bit two's-complement BCNT
// field and forces the ones nibble, per spec.md §3. length must be in
// (0, maxBufferLength].
func (d descriptor) SetLength(length int) error {
	if length <= 0 || length > maxBufferLength {
		return fmt.Errorf("pcnet: buffer length %d out of range (0, %d]", length, maxBufferLength)
	}

	bcnt := uint32(-int32(length)) & 0x0fff

	word := atomic.LoadUint32(d.statusWordPtr())
	word = (word &^ 0xffff) | onesNibble | bcnt
	atomic.StoreUint32(d.statusWordPtr(), word)

	return nil
}

// Length decodes the descriptor's current BCNT field back to a buffer
// length.
func (d descriptor) Length() int {
	word := atomic.LoadUint32(d.statusWordPtr())
	bcnt := word & 0x0fff

	// the two's complement of maxBufferLength is zero in 12 bits
	if bcnt == 0 {
		return maxBufferLength
	}

	return int((int32(bcnt<<20) >> 20) * -1)
}

// MessageLength returns the message byte count field written by the card
// into an RX descriptor after a packet has been delivered.
func (d descriptor) MessageLength() int {
	return int(binary.LittleEndian.Uint32(d[8:12]) & 0x0fff)
}

// Own reports whether the descriptor is currently owned by the card (true)
// or the driver (false).
func (d descriptor) Own() bool {
	return atomic.LoadUint32(d.statusWordPtr())&ownBit != 0
}

// GiveToCard sets the OWN bit, handing the descriptor to the card. The bit
// is set with a compare-and-swap of the whole 32-bit word at bytes 4-7, not
// a single-byte store; the other bits of that word are preserved. Nothing
// else in the descriptor may be touched by the driver until Own reports
// false again.
func (d descriptor) GiveToCard() {
	for {
		old := atomic.LoadUint32(d.statusWordPtr())
		if atomic.CompareAndSwapUint32(d.statusWordPtr(), old, old|ownBit) {
			return
		}
	}
}

// TakeFromCard clears the OWN bit, reclaiming the descriptor for the driver.
// It must only be called after Own has reported false.
func (d descriptor) TakeFromCard() {
	for {
		old := atomic.LoadUint32(d.statusWordPtr())
		if atomic.CompareAndSwapUint32(d.statusWordPtr(), old, old&^ownBit) {
			return
		}
	}
}
