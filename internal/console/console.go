// Diagnostic text output
//
// Copyright (c) The pcnetkernel Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package console multiplexes kernel diagnostic output to the VGA text
// buffer and the 16550 serial port, the two line-oriented sinks the
// surrounding kernel provides and assigns to Default's fields. Neither sink
// is implemented here:
// both are external collaborators, consumed only through the io.Writer
// interface.
package console

import (
	"fmt"
	"io"
)

// Sink is a single line-oriented text output, satisfied by both the VGA
// text buffer and the serial port driver.
type Sink interface {
	io.Writer
}

// Logger writes every line to both the VGA and the serial sinks, so that a
// human at either console sees the same diagnostics.
type Logger struct {
	VGA    Sink
	Serial Sink
}

// Default is the Logger used by the PCI enumerator and the PCnet driver
// unless overridden by board initialization. It starts with both sinks
// nil, which makes Printf/Println no-ops until the board wires them up.
var Default = &Logger{}

// Printf formats according to a format specifier and writes the result,
// terminated by a newline, to both sinks.
func (l *Logger) Printf(format string, args ...any) {
	l.Println(fmt.Sprintf(format, args...))
}

// Println writes a single line to both sinks, prefixing neither — callers
// are expected to supply their own "pci: "/"pcnet32: " prefix per line, per
// the external interface convention.
func (l *Logger) Println(line string) {
	if l.VGA != nil {
		io.WriteString(l.VGA, line+"\n")
	}

	if l.Serial != nil {
		io.WriteString(l.Serial, line+"\n")
	}
}
