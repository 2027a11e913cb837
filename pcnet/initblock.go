// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import "encoding/binary"

// initBlockSize is the 32-bit-mode init block layout: mode(2) + rlen/tlen(2)
// + mac(6) + reserved(2) + ladr(8) + rdra(4) + tdra(4), per spec.md §3.
const initBlockSize = 28

// initBlock is a byte-window view over the 28-byte structure the card reads
// once, at INIT time, to learn the ring geometry and station address.
type initBlock []byte

func newInitBlock(buf []byte) initBlock {
	if len(buf) != initBlockSize {
		panic("pcnet: init block window must be 28 bytes")
	}
	return initBlock(buf)
}

// Configure populates every field of the init block. rxRingLog2 and
// txRingLog2 are the base-2 logarithm of the ring lengths, per the device's
// RLEN/TLEN encoding.
func (b initBlock) Configure(mac [6]byte, rxRingLog2, txRingLog2 uint8, rxRingPhys, txRingPhys uint32) {
	binary.LittleEndian.PutUint16(b[0:2], 0) // MODE: promiscuous off, all other bits default

	b[2] = rxRingLog2 << 4
	b[3] = txRingLog2 << 4

	copy(b[4:10], mac[:])

	binary.LittleEndian.PutUint16(b[10:12], 0) // reserved, must be zero
	binary.LittleEndian.PutUint64(b[12:20], 0) // LADR: logical address filter, all-reject

	binary.LittleEndian.PutUint32(b[20:24], rxRingPhys)
	binary.LittleEndian.PutUint32(b[24:28], txRingPhys)
}
