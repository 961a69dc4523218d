// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package vddcall

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchUnknownFunction(t *testing.T) {
	table := NewTable(testLogger())

	regs := &ClientRegs{}
	regs.EAX.SetValue(0x1234)
	regs.EDX.SetValue(0xBEEF)
	before := *regs

	for _, fn := range []Function{1, 99, 255, GetChipID} {
		cy := table.Dispatch(fn, regs)
		assert.False(t, cy, "unknown function %d must report carry clear", fn)
		assert.Equal(t, before, *regs, "unknown function %d must not touch the snapshot", fn)
	}
}

func TestDispatchInvokesHandler(t *testing.T) {
	table := NewTable(testLogger())

	table.Register(GetChipID, func(regs *ClientRegs) bool {
		regs.EAX.SetValue(0x15AD0405)

		return true
	})

	regs := &ClientRegs{}
	cy := table.Dispatch(GetChipID, regs)

	assert.True(t, cy)
	assert.Equal(t, uint32(0x15AD0405), regs.EAX.Value())
}

func TestDescriptorsSortedByFunction(t *testing.T) {
	table := NewTable(testLogger())
	nop := func(*ClientRegs) bool { return false }

	table.Register(GetChipID, nop)
	table.Register(RegisterDisplayDriver, nop)
	table.Register(SetBank, nop)

	descs := table.Descriptors()
	require.Len(t, descs, 3)
	assert.Equal(t, RegisterDisplayDriver, descs[0].Fn)
	assert.Equal(t, SetBank, descs[1].Fn)
	assert.Equal(t, GetChipID, descs[2].Fn)
	assert.Equal(t, "get_chip_id", descs[2].Name)
}

func TestFunctionString(t *testing.T) {
	assert.Equal(t, "set_bank", SetBank.String())
	assert.Equal(t, "vesa_call_post_processing", VESACallPostProcessing.String())
	assert.Equal(t, "unknown", Function(200).String())
}
