// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package vddcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUInt32Halves(t *testing.T) {
	tests := []struct {
		name      string
		value     uint32
		high, low uint16
	}{
		{"zero", 0, 0, 0},
		{"low word only", 0x4F02, 0, 0x4F02},
		{"both halves", 0x011A4F02, 0x011A, 0x4F02},
		{"all bits", 0xFFFFFFFF, 0xFFFF, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UInt32
			u.SetValue(tt.value)

			assert.Equal(t, tt.high, u.High)
			assert.Equal(t, tt.low, u.Low)
			assert.Equal(t, tt.value, u.Value())
		})
	}
}

func TestUInt32SetHalf(t *testing.T) {
	var u UInt32
	u.SetValue(0xFFFFFFFF)
	u.Low = 0x1CE

	assert.Equal(t, uint32(0xFFFF01CE), u.Value())
}

func TestClientRegsString(t *testing.T) {
	regs := &ClientRegs{}
	regs.EAX.SetValue(0x4F02)
	regs.ECX.SetValue(0x101)

	s := regs.String()
	assert.Contains(t, s, "ax=")
	assert.Contains(t, s, "4f02")
	assert.Contains(t, s, "101")
}

func TestAltRegsOptional(t *testing.T) {
	regs := &ClientRegs{}
	assert.Nil(t, regs.Alt, "ordinary calls carry no alternate register block")

	regs.Alt = &AltRegs{CS: 0x28}
	assert.Equal(t, uint16(0x28), regs.Alt.CS)
}
