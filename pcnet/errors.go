// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pcnet

import "errors"

// ErrCardAbsent is returned when the PCI command/status dword, or CSR0 while
// Bringup waits for IDON, reads back all-ones, the same absence signature
// pci.Decode checks for. Any occurrence past initial PCI discovery means the
// card was removed or never answered, and bring-up cannot continue. The
// other register reads of bring-up (CSR58, BCR2, the APROM words) are not
// checked for this pattern.
var ErrCardAbsent = errors.New("pcnet: card did not respond")

// ErrInitTimeout is returned when the card fails to raise IDON within the
// bounded wait Bringup applies. The reference device model never fails this
// wait, but real hardware under a hung reset can.
var ErrInitTimeout = errors.New("pcnet: timed out waiting for IDON")

// ErrBackpressure is returned by Transmit when every TX descriptor is
// currently owned by the card.
var ErrBackpressure = errors.New("pcnet: transmit ring full")

// ErrNotRunning is returned by operations that require the driver to have
// completed Bringup.
var ErrNotRunning = errors.New("pcnet: driver not running")
