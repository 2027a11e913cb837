// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import (
	"fmt"

	"github.com/opencore/pcnetkernel/dma"
)

// rings owns the RX/TX descriptor arrays, their packet buffers, and the
// init block, all allocated out of the DMA region so the card can address
// them directly.
//
// Every descriptor is mutated in place through its byte-window view: the
// reference implementation this driver is modeled on copies a descriptor by
// value, mutates the copy, and never writes the result back to the ring,
// silently dropping every ring update it makes. Keeping the ring as windows
// over a single backing array, rather than a slice of descriptor structs,
// makes that mistake impossible to reintroduce here.
type rings struct {
	region *dma.Region

	rxDescBuf []byte
	txDescBuf []byte

	rxBufPhys [numRxDescriptors]uint32
	txBufPhys [numTxDescriptors]uint32

	rxBuf [numRxDescriptors][]byte
	txBuf [numTxDescriptors][]byte

	initBlockBuf  []byte
	initBlockPhys uint32

	rxRingPhys uint32
	txRingPhys uint32

	rxHead int
	txHead int
}

func newRings(region *dma.Region) (*rings, error) {
	r := &rings{region: region}

	var err error

	r.rxRingPhys, r.rxDescBuf, err = region.Reserve(numRxDescriptors*descriptorSize, 16)
	if err != nil {
		return nil, fmt.Errorf("pcnet: rx ring: %w", err)
	}

	r.txRingPhys, r.txDescBuf, err = region.Reserve(numTxDescriptors*descriptorSize, 16)
	if err != nil {
		return nil, fmt.Errorf("pcnet: tx ring: %w", err)
	}

	r.initBlockPhys, r.initBlockBuf, err = region.Reserve(initBlockSize, 4)
	if err != nil {
		return nil, fmt.Errorf("pcnet: init block: %w", err)
	}

	for i := 0; i < numRxDescriptors; i++ {
		addr, buf, err := region.Reserve(packetBufferSize, 1)
		if err != nil {
			return nil, fmt.Errorf("pcnet: rx buffer %d: %w", i, err)
		}
		r.rxBufPhys[i] = addr
		r.rxBuf[i] = buf
	}

	for i := 0; i < numTxDescriptors; i++ {
		addr, buf, err := region.Reserve(packetBufferSize, 1)
		if err != nil {
			return nil, fmt.Errorf("pcnet: tx buffer %d: %w", i, err)
		}
		r.txBufPhys[i] = addr
		r.txBuf[i] = buf
	}

	return r, nil
}

func (r *rings) rxDescriptor(i int) descriptor {
	return newDescriptor(r.rxDescBuf[i*descriptorSize : (i+1)*descriptorSize])
}

func (r *rings) txDescriptor(i int) descriptor {
	return newDescriptor(r.txDescBuf[i*descriptorSize : (i+1)*descriptorSize])
}

// Initialize programs every descriptor with its buffer's address and length
// and arms the RX ring for the card, leaving the TX ring owned by the
// driver. It then fills in the init block and returns its physical address
// for CSR1/CSR2.
func (r *rings) Initialize(mac [6]byte) (uint32, error) {
	for i := 0; i < numRxDescriptors; i++ {
		d := r.rxDescriptor(i)
		d.SetBufferAddress(r.rxBufPhys[i])
		if err := d.SetLength(packetBufferSize); err != nil {
			return 0, fmt.Errorf("pcnet: rx descriptor %d: %w", i, err)
		}
		d.GiveToCard()
	}

	for i := 0; i < numTxDescriptors; i++ {
		d := r.txDescriptor(i)
		d.SetBufferAddress(r.txBufPhys[i])
		if err := d.SetLength(packetBufferSize); err != nil {
			return 0, fmt.Errorf("pcnet: tx descriptor %d: %w", i, err)
		}
		d.TakeFromCard()
	}

	newInitBlock(r.initBlockBuf).Configure(mac, rxLenLog2, txLenLog2, r.rxRingPhys, r.txRingPhys)

	return r.initBlockPhys, nil
}

// NextReceived advances the RX ring cursor and returns the next
// driver-owned descriptor carrying a delivered packet, or ok=false if the
// card still owns every descriptor it has walked so far this pass.
func (r *rings) NextReceived() (buf []byte, d descriptor, ok bool) {
	for n := 0; n < numRxDescriptors; n++ {
		i := r.rxHead
		r.rxHead = (r.rxHead + 1) % numRxDescriptors

		desc := r.rxDescriptor(i)
		if desc.Own() {
			continue
		}

		length := desc.MessageLength()
		if length > len(r.rxBuf[i]) {
			length = len(r.rxBuf[i])
		}

		return r.rxBuf[i][:length], desc, true
	}

	return nil, nil, false
}

// Rearm returns a consumed RX descriptor to the card.
func (r *rings) Rearm(d descriptor) {
	d.GiveToCard()
}

// NextFreeTransmit returns the next TX descriptor not currently owned by
// the card, or ok=false if the ring is full.
func (r *rings) NextFreeTransmit() (buf []byte, d descriptor, ok bool) {
	for n := 0; n < numTxDescriptors; n++ {
		i := (r.txHead + n) % numTxDescriptors
		desc := r.txDescriptor(i)

		if desc.Own() {
			continue
		}

		r.txHead = i

		return r.txBuf[i], desc, true
	}

	return nil, nil, false
}

// Advance moves the TX ring cursor past the descriptor just handed to the
// card.
func (r *rings) Advance() {
	r.txHead = (r.txHead + 1) % numTxDescriptors
}
