// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package svga

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emuhost/minivdd/pkg/minivdd"
)

func TestDefaults(t *testing.T) {
	e := New()

	assert.True(t, e.Initialized())
	assert.Equal(t, uint32(VendorIDVMware), e.ReadRegister(minivdd.RegVendorID))
	assert.Equal(t, uint32(DeviceIDSVGA2), e.ReadRegister(minivdd.RegDeviceID))
	assert.Equal(t, uint32(DefaultVRAMSize), e.ReadRegister(minivdd.RegVRAMSize))
	assert.Zero(t, e.ReadRegister(minivdd.RegFBStart))
}

func TestOptions(t *testing.T) {
	e := New(
		WithVRAMSize(4*1024*1024),
		WithPCIIdentity(0x1234, 0x5678),
		WithFBStart(0xE8000000),
	)

	assert.Equal(t, uint32(4*1024*1024), e.ReadRegister(minivdd.RegVRAMSize))
	assert.Equal(t, uint32(0x1234), e.ReadRegister(minivdd.RegVendorID))
	assert.Equal(t, uint32(0x5678), e.ReadRegister(minivdd.RegDeviceID))
	assert.Equal(t, uint32(0xE8000000), e.ReadRegister(minivdd.RegFBStart))
}

func TestUninitialized(t *testing.T) {
	e := New(Uninitialized())
	assert.False(t, e.Initialized())
}

func TestUnknownRegisters(t *testing.T) {
	e := New()

	assert.Zero(t, e.ReadRegister(0x1000))
	e.WriteRegister(0x1000, 42) // must not panic
}

func TestModeWritePreservesVRAM(t *testing.T) {
	e := New()
	e.VRAM()[0] = 0xAA

	e.WriteRegister(minivdd.RegMode, 0x200)
	assert.Equal(t, byte(0xAA), e.VRAM()[0])
}

func TestEnableClearsVRAM(t *testing.T) {
	e := New()
	e.VRAM()[0] = 0xAA

	e.WriteRegister(minivdd.RegEnable, 1)
	assert.Zero(t, e.VRAM()[0])

	// Already enabled: no clear on rewrite.
	e.VRAM()[0] = 0xBB
	e.WriteRegister(minivdd.RegEnable, 1)
	assert.Equal(t, byte(0xBB), e.VRAM()[0])
}
