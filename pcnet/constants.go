// AMD PCnet-II (Am79C970) Ethernet driver
// https://github.com/usbarmory/tamago
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pcnet implements a polling driver for the AMD PCnet-II
// (Am79C970) Ethernet controller: a DMA-programmed ring-buffer device
// reachable behind a PCI header-type-0 function.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=amd64`.
package pcnet

// PCI identity of the PCnet-II device on the reference QEMU machine.
const (
	PCIVendorID = 0x1022
	PCIDeviceID = 0x2000
)

// Port offsets relative to BAR0 (masked to its I/O base), per spec.md §6.
const (
	portAPROM0 = 0x00
	portAPROM1 = 0x04
	portRDP32  = 0x10
	portRAP32  = 0x14
	portReset  = 0x18
	portBCR32  = 0x1c

	portReset16 = 0x14
)

// CSR/BCR register numbers used during bring-up and data transfer.
const (
	csr0  = 0
	csr1  = 1
	csr2  = 2
	csr58 = 58

	bcr2 = 2
)

// CSR0 command/status bits.
const (
	csr0Init = 1 << 0
	csr0Strt = 1 << 1
	csr0Stop = 1 << 2
	csr0Tdmd = 1 << 3
	csr0Idon = 1 << 8
)

// BCR2 bits.
const (
	bcr2Asel = 1 << 1
)

// Ring geometry, fixed per spec.md §3.
const (
	numRxDescriptors = 32
	numTxDescriptors = 8
	packetBufferSize = 1520

	rxLenLog2 = 5 // log2(32)
	txLenLog2 = 3 // log2(8)
)

// PCI configuration space command register bits touched during bus
// enablement (spec.md §4.H step 1).
const (
	pciCommandIOSpace   = 1 << 0
	pciCommandBusMaster = 1 << 2
)
