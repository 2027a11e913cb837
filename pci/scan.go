// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pci

// Found pairs a decoded Record with the Device used to reach it, so callers
// can re-read configuration space (for enablement, BAR decode, or
// capability discovery) after the initial scan.
type Found struct {
	Device *Device
	Record Record
}

// Scan enumerates every populated (bus, device, function) slot in the
// legacy configuration space. It cannot fail: an absent slot is simply
// skipped, per spec.md §4.B. Multi-function detection is not attempted —
// iteration always walks functions 0..8, which is idempotent since absent
// functions read back all-ones.
func Scan() []Found {
	var found []Found

	for bus := 0; bus < maxBuses; bus++ {
		for slot := 0; slot < maxDevices; slot++ {
			for fn := 0; fn < maxFunctions; fn++ {
				d := newDevice(Address{
					Bus:      uint8(bus),
					Device:   uint8(slot),
					Function: uint8(fn),
				})

				rec, ok := Decode(d)
				if !ok {
					continue
				}

				found = append(found, Found{Device: d, Record: rec})
			}
		}
	}

	return found
}

// Find returns the first scanned device matching vendor and device IDs.
func Find(vendor, device uint16) (Found, bool) {
	for _, f := range Scan() {
		if f.Record.VendorID == vendor && f.Record.DeviceID == device {
			return f, true
		}
	}

	return Found{}, false
}
