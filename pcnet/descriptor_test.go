// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import "testing"

func TestDescriptorLengthRoundTrip(t *testing.T) {
	for _, length := range []int{1, 64, 1500, 1520, 4096} {
		buf := make([]byte, descriptorSize)
		d := newDescriptor(buf)

		if err := d.SetLength(length); err != nil {
			t.Fatalf("SetLength(%d): %v", length, err)
		}

		if got := d.Length(); got != length {
			t.Errorf("length %d round-tripped as %d", length, got)
		}

		word := uint32(buf[4]) | uint32(buf[5])<<8
		if word&onesNibble != onesNibble {
			t.Errorf("length %d: ones nibble not set, word=%#04x", length, word)
		}
	}
}

func TestDescriptorSetLengthRejectsOutOfRange(t *testing.T) {
	buf := make([]byte, descriptorSize)
	d := newDescriptor(buf)

	if err := d.SetLength(0); err == nil {
		t.Error("expected error for zero length")
	}

	if err := d.SetLength(4097); err == nil {
		t.Error("expected error for length above 4096")
	}
}

func TestDescriptorOwnRoundTrip(t *testing.T) {
	buf := make([]byte, descriptorSize)
	d := newDescriptor(buf)

	if d.Own() {
		t.Fatal("fresh descriptor should not report Own")
	}

	d.GiveToCard()
	if !d.Own() {
		t.Fatal("GiveToCard did not set OWN")
	}

	d.TakeFromCard()
	if d.Own() {
		t.Fatal("TakeFromCard did not clear OWN")
	}
}

func TestDescriptorBufferAddressRoundTrip(t *testing.T) {
	buf := make([]byte, descriptorSize)
	d := newDescriptor(buf)

	d.SetBufferAddress(0xdeadbeef)

	if got := d.BufferAddress(); got != 0xdeadbeef {
		t.Errorf("BufferAddress = %#08x, want 0xdeadbeef", got)
	}
}

func TestDescriptorOwnSurvivesLengthWrite(t *testing.T) {
	buf := make([]byte, descriptorSize)
	d := newDescriptor(buf)

	d.GiveToCard()

	if err := d.SetLength(1500); err != nil {
		t.Fatalf("SetLength: %v", err)
	}

	if !d.Own() {
		t.Error("SetLength cleared OWN, status word fields are not independent")
	}
}
