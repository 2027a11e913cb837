// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:build tamago && amd64

// Command kernel enumerates PCI configuration space, prints a report of
// every device found, brings up the AMD PCnet-II Ethernet controller, and
// polls it for incoming packets.
//
// This package assumes it is linked into a kernel image that has already
// completed CPU, interrupt controller, and console hardware bring-up, and
// that console.Default's sinks have been wired up by that surrounding init
// before main runs: this repository is the PCI/PCnet driver stack, not a
// board support package. Port I/O goes through ioport.Ports, whose default
// is this repository's own IN/OUT implementation.
package main

import (
	"fmt"

	"github.com/opencore/pcnetkernel/boot"
	"github.com/opencore/pcnetkernel/internal/console"
	"github.com/opencore/pcnetkernel/internal/ioport"
	"github.com/opencore/pcnetkernel/pcnet"
	"github.com/opencore/pcnetkernel/pci"
)

func logPCI(line string) {
	console.Default.Println("pci: " + line)
}

func logPCnet(line string) {
	console.Default.Println("pcnet32: " + line)
}

func enumerate() []pci.Found {
	found := pci.Scan()

	for _, f := range found {
		logPCI(pci.DisplayLine(f.Device.Addr, f.Record))

		for _, line := range pci.DisplayBlock(f.Device.Addr, f.Record) {
			logPCI(line)
		}

		for _, line := range pci.CapabilityLines(f.Device.Addr, f.Device) {
			logPCI(line)
		}
	}

	return found
}

func bringUpPCnet(found []pci.Found) {
	match, ok := pci.Find(pcnet.PCIVendorID, pcnet.PCIDeviceID)
	if !ok {
		logPCnet(fmt.Sprintf("no device matching vendor=%#04x device=%#04x found", pcnet.PCIVendorID, pcnet.PCIDeviceID))
		return
	}

	bar0 := match.Device.BaseAddress(0)

	driver := pcnet.New(match.Device, bar0, ioport.Ports)

	if err := driver.Bringup(); err != nil {
		logPCnet(fmt.Sprintf("bring-up failed: %v", err))
		return
	}

	logPCnet(fmt.Sprintf("mac %02x:%02x:%02x:%02x:%02x:%02x",
		driver.MAC[0], driver.MAC[1], driver.MAC[2], driver.MAC[3], driver.MAC[4], driver.MAC[5]))

	driver.PollReceive(func(payload []byte) {
		logPCnet(fmt.Sprintf("received %d bytes: % x", len(payload), payload))
	})
}

func main() {
	boot.AfterAllocInit(func() {
		logPCI("scanning configuration space")

		found := enumerate()

		logPCI(fmt.Sprintf("found %d device(s)", len(found)))

		bringUpPCnet(found)
	})
}
