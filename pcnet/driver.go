// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import (
	"fmt"

	"github.com/opencore/pcnetkernel/dma"
	"github.com/opencore/pcnetkernel/internal/ioport"
)

// configSpace is the slice of pci.Device's behavior Bringup depends on: a
// dword-granular read/write window onto the function's configuration
// space. Depending on the interface rather than *pci.Device lets tests
// drive bus enablement with a fake.
type configSpace interface {
	Read(off uint32) uint32
	Write(off uint32, val uint32)
}

// State is the bring-up state of a Driver instance.
type State int

const (
	Uninitialized State = iota
	Resetting
	Configured
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Resetting:
		return "resetting"
	case Configured:
		return "configured"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Driver drives a single PCnet-II function through reset, ring setup, and
// steady-state polling.
type Driver struct {
	dev configSpace
	win *window
	r   *rings

	MAC [6]byte

	state State
}

// New binds a Driver to the given PCI function. It does not touch hardware;
// call Bringup to reset and configure the card.
func New(dev configSpace, bar0 uint32, bus ioport.Bus) *Driver {
	return &Driver{
		dev: dev,
		win: newWindow(uint16(bar0&^0x3), bus),
	}
}

// Bringup executes the bus-enablement, reset, and ring-initialization
// sequence, leaving the card started and the driver in the Running state.
// It does not poll; PollReceive services the RX ring.
func (d *Driver) Bringup() error {
	d.state = Resetting

	cmd := d.dev.Read(0x04)
	if cmd == 0xffffffff {
		return ErrCardAbsent
	}
	cmd = (cmd &^ 0xffff) | pciCommandIOSpace | pciCommandBusMaster
	d.dev.Write(0x04, cmd)

	d.win.Reset()

	d.win.WriteRDP(0)

	d.win.SetCSR(csr58, (d.win.CSR(csr58)&0xff00)|2)
	d.win.SetBCR(bcr2, d.win.BCR(bcr2)|bcr2Asel)

	for i := range d.MAC {
		d.MAC[i] = d.win.ReadMACByte(i)
	}

	r, err := newRings(dma.Default())
	if err != nil {
		return fmt.Errorf("pcnet: ring allocation: %w", err)
	}
	d.r = r

	initBlockPhys, err := r.Initialize(d.MAC)
	if err != nil {
		return fmt.Errorf("pcnet: ring initialization: %w", err)
	}

	d.win.SetCSR(csr1, initBlockPhys&0xffff)
	d.win.SetCSR(csr2, initBlockPhys>>16)

	d.win.SetCSR(csr0, d.win.CSR(csr0)|csr0Init)

	for spins := 0; ; spins++ {
		status := d.win.CSR(csr0)

		if status == 0xffffffff {
			return ErrCardAbsent
		}

		if status&csr0Idon != 0 {
			break
		}

		if spins > initSpinLimit {
			return ErrInitTimeout
		}
	}

	status := d.win.CSR(csr0)
	status &^= csr0Init | csr0Stop
	status |= csr0Strt
	d.win.SetCSR(csr0, status)

	d.state = Running

	return nil
}

// initSpinLimit bounds the IDON wait; the reference device model always
// raises it well before this, so the bound only guards against a dead card.
const initSpinLimit = 1_000_000

// PollReceive walks the RX ring forever, invoking handler with each
// delivered packet's payload and re-arming the descriptor once handler
// returns. handler must not retain the slice past its call.
func (d *Driver) PollReceive(handler func([]byte)) error {
	if d.state != Running {
		return ErrNotRunning
	}

	for {
		buf, desc, ok := d.r.NextReceived()
		if !ok {
			continue
		}

		handler(buf)
		d.r.Rearm(desc)
	}
}

// Transmit queues payload on the next free TX descriptor and nudges the
// card with a transmit demand. It returns ErrBackpressure if every TX
// descriptor is still owned by the card.
func (d *Driver) Transmit(payload []byte) error {
	if d.state != Running {
		return ErrNotRunning
	}

	buf, desc, ok := d.r.NextFreeTransmit()
	if !ok {
		return ErrBackpressure
	}

	n := copy(buf, payload)

	if err := desc.SetLength(n); err != nil {
		return fmt.Errorf("pcnet: transmit: %w", err)
	}

	desc.GiveToCard()
	d.r.Advance()

	d.win.SetCSR(csr0, d.win.CSR(csr0)|csr0Tdmd)

	return nil
}

// Status returns the driver's current bring-up state.
func (d *Driver) Status() State {
	return d.state
}
