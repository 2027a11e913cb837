// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pci

// Capability IDs (PCI Code and ID Assignment Specification, revision 1.11,
// §2 Capability IDs). Only the names the formatter needs are kept; an
// unrecognized ID falls back to hex in the same way an unrecognized
// vendor/class/subclass does.
const (
	CapPower  = 0x01
	CapAGP    = 0x02
	CapVPD    = 0x03
	CapSlotID = 0x04
	CapMSI    = 0x05
	CapPCIX   = 0x07
	CapBridge = 0x0d
	CapPCIe   = 0x10
	CapMSIX   = 0x11
	CapSATA   = 0x12
)

// CapabilityHeader represents the two common fields present at the start
// of every entry of a device's Capabilities List.
type CapabilityHeader struct {
	ID   uint8
	Next uint8
}

// Capabilities walks a device's Capabilities List and returns each entry's
// header in list order; the entries' configuration-space offsets are not
// returned. It is read-only discovery used by
// the formatter (spec.md §3.5 supplement); nothing in this kernel acts on
// a capability once found — MSI-X in particular is never enabled, per
// spec.md's Non-goals.
func (d *Device) Capabilities() []CapabilityHeader {
	var headers []CapabilityHeader

	off := d.Read(capabilitiesOff) & 0xff

	// a capabilities pointer can only ever reference itself through a
	// well-formed, finite linked list on real hardware; cap the walk
	// defensively so a malformed device cannot hang the enumerator.
	for i := 0; off != 0 && i < 64; i++ {
		val := d.Read(off)

		hdr := CapabilityHeader{
			ID:   uint8(val),
			Next: uint8(val >> 8),
		}

		headers = append(headers, hdr)
		off = uint32(hdr.Next)
	}

	return headers
}
