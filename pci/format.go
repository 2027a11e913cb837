// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pci

import (
	"fmt"

	"github.com/opencore/pcnetkernel/pci/catalog"
)

func addrPrefix(addr Address) string {
	return fmt.Sprintf("%02x:%02x.%x", addr.Bus, addr.Device, addr.Function)
}

func nameOrHex16(name string, code uint16) string {
	if name == catalog.None {
		return catalog.HexFallback(code)
	}
	return name
}

func nameOrHex8(name string, code uint8) string {
	if name == catalog.None {
		return catalog.HexFallback(code)
	}
	return name
}

// DisplayLine renders the one-line "bb:dd.f <class>: <device>" summary of a
// scanned device, per spec.md §4.D.
func DisplayLine(addr Address, rec Record) string {
	class := nameOrHex8(catalog.ClassName(rec.Class), rec.Class)
	device := nameOrHex16(catalog.DeviceName(rec.VendorID, rec.DeviceID), rec.DeviceID)

	return fmt.Sprintf("%s %s: %s", addrPrefix(addr), class, device)
}

// DisplayBlock renders the labeled multi-line rendering of every decoded
// field, each line prefixed by the device address, per spec.md §4.D.
func DisplayBlock(addr Address, rec Record) []string {
	prefix := addrPrefix(addr) + "  "

	vendor := nameOrHex16(catalog.VendorName(rec.VendorID), rec.VendorID)
	device := nameOrHex16(catalog.DeviceName(rec.VendorID, rec.DeviceID), rec.DeviceID)
	class := nameOrHex8(catalog.ClassName(rec.Class), rec.Class)
	subclass := nameOrHex8(catalog.SubclassName(rec.Class, rec.Subclass), rec.Subclass)
	progIF := nameOrHex8(catalog.ProgIFName(rec.Class, rec.Subclass, rec.ProgIF), rec.ProgIF)

	lines := []string{
		prefix + "vendor: " + vendor,
		prefix + "device: " + device,
		prefix + fmt.Sprintf("signature: %#04x:%#04x", rec.VendorID, rec.DeviceID),
		prefix + "class: " + class,
		prefix + "subclass: " + subclass,
		prefix + "prog_if: " + progIF,
		prefix + fmt.Sprintf("revision: %#02x", rec.Revision),
		prefix + fmt.Sprintf("header_type: %#02x", rec.HeaderType),
		prefix + fmt.Sprintf("status: %#04x", rec.Status),
		prefix + fmt.Sprintf("command: %#04x", rec.Command),
	}

	for i, bar := range rec.BAR {
		lines = append(lines, prefix+fmt.Sprintf("bar%d: %#08x", i, bar))
	}

	lines = append(lines,
		prefix+fmt.Sprintf("interrupt_pin: %#02x", rec.InterruptPin),
		prefix+fmt.Sprintf("interrupt_line: %#02x", rec.InterruptLine),
	)

	return lines
}

// CapabilityLines renders one line per entry of d's Capabilities List, the
// spec.md §3.5 supplement. It is separate from DisplayBlock because walking
// the list requires live configuration-space reads against d, not just the
// Record captured at scan time.
func CapabilityLines(addr Address, d *Device) []string {
	prefix := addrPrefix(addr) + "  "

	var lines []string

	for _, hdr := range d.Capabilities() {
		name := nameOrHex8(catalog.CapabilityName(hdr.ID), hdr.ID)
		lines = append(lines, prefix+"capability: "+name)
	}

	return lines
}
