// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package vddcall implements the call protocol between a VM monitor's display
// device and a mini display driver: the client register snapshot handed to
// each call and the function-number dispatch table.
package vddcall

import "fmt"

// AltRegs is the secondary register block used when the monitor runs the call
// inside a nested or simulated execution context. Most functions never see
// one; ClientRegs.Alt stays nil unless the monitor supplies it.
type AltRegs struct {
	EIP    UInt32
	CS     uint16
	EFlags uint32
	ESP    UInt32
	SS     uint16
	ES     uint16
	DS     uint16
	FS     uint16
	GS     uint16
}

// ClientRegs is a snapshot of the guest CPU register file at the moment of a
// dispatched call. It is owned by the monitor for the duration of a single
// call; handlers read and write it in place and must not retain a reference
// past their return. Registers a handler does not document as outputs must be
// left untouched, since the monitor may propagate the whole snapshot back to
// the guest verbatim.
type ClientRegs struct {
	EDI UInt32
	ESI UInt32
	EBP UInt32
	ESP UInt32
	EBX UInt32
	EDX UInt32
	ECX UInt32
	EAX UInt32

	// Err is the monitor's per-call error slot. Handlers never set it.
	Err uint32

	EIP    UInt32
	CS     uint16
	EFlags uint32
	SS     uint16
	ES     uint16
	DS     uint16
	FS     uint16
	GS     uint16

	// Alt is the nested-execution register block, nil for ordinary calls.
	Alt *AltRegs
}

// String converts the snapshot to a string, useful for debugging.
func (r *ClientRegs) String() string {
	return fmt.Sprintf("ax=%8x bx=%8x cx=%8x dx=%8x si=%8x di=%8x bp=%8x sp=%8x",
		r.EAX.Value(), r.EBX.Value(), r.ECX.Value(), r.EDX.Value(),
		r.ESI.Value(), r.EDI.Value(), r.EBP.Value(), r.ESP.Value())
}
