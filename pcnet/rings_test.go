// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import (
	"testing"
	"unsafe"

	"github.com/opencore/pcnetkernel/dma"
	"github.com/opencore/pcnetkernel/internal/mem"
)

// withHeapOffset sets PhysOffset 1 GiB below a fresh heap address, rounded
// down to 1 MiB, so that the rings' heap allocations translate below 2^31
// with their alignment kept.
func withHeapOffset(t *testing.T) {
	saved := mem.PhysOffset
	probe := mem.VirtAddr(unsafe.Pointer(new(byte)))
	mem.PhysOffset = probe&^(1<<20-1) - 1<<30
	t.Cleanup(func() { mem.PhysOffset = saved })
}

func TestRingsInitializeOwnershipInvariant(t *testing.T) {
	withHeapOffset(t)

	r, err := newRings(dma.Default())
	if err != nil {
		t.Fatalf("newRings: %v", err)
	}

	mac := [6]byte{0x52, 0x54, 0x00, 0x12, 0x34, 0x56}

	if _, err := r.Initialize(mac); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	for i := 0; i < numRxDescriptors; i++ {
		d := r.rxDescriptor(i)
		if !d.Own() {
			t.Errorf("rx descriptor %d: OWN not set after Initialize", i)
		}
		if d.BufferAddress() != r.rxBufPhys[i] {
			t.Errorf("rx descriptor %d: buffer address %#08x, want %#08x", i, d.BufferAddress(), r.rxBufPhys[i])
		}
	}

	for i := 0; i < numTxDescriptors; i++ {
		d := r.txDescriptor(i)
		if d.Own() {
			t.Errorf("tx descriptor %d: OWN set after Initialize, driver should own TX", i)
		}
		if d.BufferAddress() != r.txBufPhys[i] {
			t.Errorf("tx descriptor %d: buffer address %#08x, want %#08x", i, d.BufferAddress(), r.txBufPhys[i])
		}
	}
}

func TestRingsNextReceivedSkipsCardOwnedDescriptors(t *testing.T) {
	withHeapOffset(t)

	r, err := newRings(dma.Default())
	if err != nil {
		t.Fatalf("newRings: %v", err)
	}

	if _, err := r.Initialize([6]byte{}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// every RX descriptor starts owned by the card; nothing is receivable yet
	if _, _, ok := r.NextReceived(); ok {
		t.Fatal("NextReceived reported a packet before any descriptor was released by the card")
	}

	delivered := r.rxDescriptor(3)
	copy(r.rxBuf[3], []byte{0xaa, 0xbb, 0xcc})
	delivered[8] = 3 // MessageLength low byte
	delivered.TakeFromCard()

	buf, desc, ok := r.NextReceived()
	if !ok {
		t.Fatal("NextReceived did not find the released descriptor")
	}

	if len(buf) != 3 || buf[0] != 0xaa {
		t.Errorf("got payload %v, want [0xaa 0xbb 0xcc]", buf)
	}

	r.Rearm(desc)
	if !desc.Own() {
		t.Error("Rearm did not give the descriptor back to the card")
	}
}
