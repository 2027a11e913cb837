// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pci

// Record is a header-type-0 device's decoded configuration space, per
// spec.md §3.
type Record struct {
	VendorID uint16
	DeviceID uint16

	Command uint16
	Status  uint16

	Revision uint8
	ProgIF   uint8
	Subclass uint8
	Class    uint8

	HeaderType uint8

	BAR [6]uint32

	InterruptLine uint8
	InterruptPin  uint8
}

// Decode reads and decodes d's configuration space into a Record. ok is
// false when the slot is absent (vendor/device signature of 0xffff_ffff),
// in which case the record is not populated and must not be used.
func Decode(d *Device) (rec Record, ok bool) {
	signature := d.Read(offVendor)

	if signature == 0xffffffff {
		return Record{}, false
	}

	rec.VendorID = uint16(signature)
	rec.DeviceID = uint16(signature >> 16)

	cmdStatus := d.Read(offCommand)
	rec.Command = uint16(cmdStatus)
	rec.Status = uint16(cmdStatus >> 16)

	class := d.Read(offClass)
	rec.Revision = uint8(class)
	rec.ProgIF = uint8(class >> 8)
	rec.Subclass = uint8(class >> 16)
	rec.Class = uint8(class >> 24)

	rec.HeaderType = uint8(d.Read(offHeader) >> 16)

	for i := range rec.BAR {
		rec.BAR[i] = d.Read(offBar0 + uint32(i)*4)
	}

	irq := d.Read(offInterrupt)
	rec.InterruptLine = uint8(irq)
	rec.InterruptPin = uint8(irq >> 8)

	return rec, true
}
