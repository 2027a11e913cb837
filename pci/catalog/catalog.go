// PCI ID catalog
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package catalog provides the static lookup tables the formatter uses to
// turn vendor/device/class/subclass/prog-IF codes into human-readable
// strings. A miss returns "none"; callers fall back to hex, per spec.md
// §4.C.
package catalog

import "fmt"

// None is returned by every lookup function for an unrecognized key.
const None = "none"

type vendorKey = uint16

type deviceKey struct {
	vendor uint16
	device uint16
}

type subclassKey struct {
	class    uint8
	subclass uint8
}

type progIFKey struct {
	class    uint8
	subclass uint8
	progIF   uint8
}

var vendors = map[vendorKey]string{
	0x1022: "AMD",
	0x10de: "NVIDIA",
	0x1013: "Cirrus Logic",
	0x1af4: "Red Hat, Inc. (virtio)",
	0x8086: "Intel Corporation",
}

var devices = map[deviceKey]string{
	{0x8086, 0x1237}: "440FX - 82441FX PMC",
	{0x8086, 0x7000}: "82371SB PIIX3 ISA",
	{0x8086, 0x7010}: "82371SB PIIX3 IDE",
	{0x8086, 0x7020}: "82371SB PIIX3 USB",
	{0x8086, 0x7113}: "82371AB/EB/MB PIIX4 ACPI",
	{0x8086, 0x100e}: "82540EM Gigabit Ethernet Controller",
	{0x1022, 0x2000}: "PCnet-II - PCnet/FAST (Am79C970/971)",
}

var classes = map[uint8]string{
	0x00: "Unclassified",
	0x01: "Mass Storage Controller",
	0x02: "Network Controller",
	0x03: "Display Controller",
	0x04: "Multimedia Controller",
	0x05: "Memory Controller",
	0x06: "Bridge",
	0x07: "Simple Communication Controller",
	0x08: "Base System Peripheral",
	0x09: "Input Device Controller",
	0x0c: "Serial Bus Controller",
}

var subclasses = map[subclassKey]string{
	{0x01, 0x01}: "IDE Controller",
	{0x02, 0x00}: "Ethernet Controller",
	{0x03, 0x00}: "VGA Compatible Controller",
	{0x06, 0x00}: "Host Bridge",
	{0x06, 0x01}: "ISA Bridge",
	{0x06, 0x80}: "Other Bridge",
	{0x08, 0x00}: "PIC",
	{0x08, 0x01}: "DMA Controller",
	{0x08, 0x02}: "Timer",
	{0x08, 0x03}: "RTC Controller",
	{0x08, 0x80}: "Other Base System Peripheral",
	{0x0c, 0x03}: "USB Controller",
}

var progIFs = map[progIFKey]string{
	{0x01, 0x01, 0x80}: "ISA Compatibility mode-only controller",
	{0x03, 0x00, 0x00}: "VGA Controller",
}

var capabilities = map[uint8]string{
	0x01: "Power Management",
	0x02: "AGP",
	0x03: "VPD",
	0x04: "Slot Identification",
	0x05: "MSI",
	0x07: "PCI-X",
	0x0d: "Bridge Subsystem Vendor ID",
	0x10: "PCI Express",
	0x11: "MSI-X",
	0x12: "SATA",
}

// VendorName returns the human-readable name of a PCI vendor ID, or "none"
// if unrecognized.
func VendorName(vendor uint16) string {
	if name, ok := vendors[vendor]; ok {
		return name
	}
	return None
}

// DeviceName returns the human-readable name of a (vendor, device) pair, or
// "none" if unrecognized.
func DeviceName(vendor, device uint16) string {
	if name, ok := devices[deviceKey{vendor, device}]; ok {
		return name
	}
	return None
}

// ClassName returns the human-readable name of a PCI base class, or "none"
// if unrecognized.
func ClassName(class uint8) string {
	if name, ok := classes[class]; ok {
		return name
	}
	return None
}

// SubclassName returns the human-readable name of a (class, subclass) pair,
// or "none" if unrecognized.
func SubclassName(class, subclass uint8) string {
	if name, ok := subclasses[subclassKey{class, subclass}]; ok {
		return name
	}
	return None
}

// ProgIFName returns the human-readable name of a (class, subclass,
// prog-IF) triple, or "none" if unrecognized.
func ProgIFName(class, subclass, progIF uint8) string {
	if name, ok := progIFs[progIFKey{class, subclass, progIF}]; ok {
		return name
	}
	return None
}

// CapabilityName returns the human-readable name of a PCI capability ID, or
// "none" if unrecognized.
func CapabilityName(id uint8) string {
	if name, ok := capabilities[id]; ok {
		return name
	}
	return None
}

// HexFallback formats a numeric code as the formatter's fallback, used
// whenever a lookup above returns None.
func HexFallback[N ~uint8 | ~uint16 | ~uint32](n N) string {
	return fmt.Sprintf("0x%x", uint64(n))
}
