// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package vddcall

// UInt32 is an unsigned 32-bit register word. The call protocol routinely
// packs two half words into one register (e.g. a VESA function code and a
// mode number), so both halves are addressable.
type UInt32 struct {
	High uint16
	Low  uint16
}

// Word returns the uint32 as a single word.
func (u *UInt32) Word() uint32 {
	return uint32(u.High)<<16 + uint32(u.Low)
}

// SetWord sets the value using a single word.
func (u *UInt32) SetWord(w uint32) {
	u.High = uint16(w >> 16)
	u.Low = uint16(w)
}

// Value returns the value of the uint32.
func (u *UInt32) Value() uint32 {
	return u.Word()
}

// SetValue sets the value of the uint32.
func (u *UInt32) SetValue(val uint32) {
	u.SetWord(val)
}
