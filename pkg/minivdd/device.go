// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package minivdd implements the mini display driver core for a virtual SVGA
// adapter: the display/bank state machine, the per-function call handlers and
// the port trap bookkeeping around hi-res mode transitions. The monitor's
// trampoline feeds calls into Device.Dispatch; everything else is reached
// from there.
package minivdd

import (
	"log/slog"

	"github.com/emuhost/minivdd/pkg/vddcall"
)

// Adapter register identifiers understood by ReadRegister/WriteRegister.
const (
	RegID        uint32 = 0
	RegEnable    uint32 = 1
	RegVendorID  uint32 = 2
	RegDeviceID  uint32 = 3
	RegVRAMSize  uint32 = 4
	RegFBStart   uint32 = 5
	RegReadBank  uint32 = 6
	RegWriteBank uint32 = 7
	RegMode      uint32 = 8
)

// BankSize is the byte size of one bank window at A000:0h.
const BankSize uint32 = 0x10000

// Adapter is the virtual graphics adapter the driver sits on top of. All
// register queries are gated on Initialized; an uninitialized adapter makes
// the driver decline calls so the monitor falls back to its BIOS path.
type Adapter interface {
	Initialized() bool
	ReadRegister(id uint32) uint32
	WriteRegister(id, val uint32)
}

// Device is the per-device driver context: one instance per attached virtual
// display device. The monitor serializes all dispatched calls for a device,
// so Device takes no locks; that serialization guarantee must be preserved by
// any embedding host.
type Device struct {
	logger  *slog.Logger
	adapter Adapter
	traps   TrapController
	state   DisplayState
	table   *vddcall.Table
}

// New initializes a Device, queries the adapter for its identity and builds
// the dispatch table. The table is immutable afterwards.
func New(logger *slog.Logger, adapter Adapter, traps TrapController) *Device {
	d := &Device{
		logger:  logger,
		adapter: adapter,
		traps:   traps,
		state:   DisplayState{Mode: StandardVGA},
		table:   vddcall.NewTable(logger),
	}

	if adapter.Initialized() {
		d.state.VRAMSize = adapter.ReadRegister(RegVRAMSize)
		d.state.ChipID = chipID(adapter)
	}

	d.table.Register(vddcall.RegisterDisplayDriver, d.registerDisplayDriver)
	d.table.Register(vddcall.PreHiResToVGA, d.preHiRes)
	d.table.Register(vddcall.PostHiResToVGA, d.postHiResToVGA)
	d.table.Register(vddcall.EnableTraps, d.enableTraps)
	d.table.Register(vddcall.DisplayDriverDisabling, d.displayDriverDisabling)
	d.table.Register(vddcall.GetCurrentBankWrite, d.getCurrentBankWrite)
	d.table.Register(vddcall.GetCurrentBankRead, d.getCurrentBankRead)
	d.table.Register(vddcall.SetBank, d.setBank)
	d.table.Register(vddcall.GetTotalVRAMSize, d.getTotalVRAMSize)
	d.table.Register(vddcall.GetBankSize, d.getBankSize)
	d.table.Register(vddcall.SetHiResMode, d.setHiResMode)
	d.table.Register(vddcall.PreHiResSaveRestore, d.preHiRes)
	d.table.Register(vddcall.PostHiResSaveRestore, d.postHiResSaveRestore)
	d.table.Register(vddcall.VESASupport, d.vesaSupport)
	d.table.Register(vddcall.GetChipID, d.getChipID)
	d.table.Register(vddcall.CheckScreenSwitchOK, d.checkScreenSwitchOK)
	d.table.Register(vddcall.VESACallPostProcessing, d.vesaCallPostProcessing)

	logger.Info("display device attached",
		"chip_id", d.state.ChipID, "vram_size", d.state.VRAMSize,
		"adapter_initialized", adapter.Initialized())

	return d
}

// Dispatch is the monitor entry point: it runs the handler for fn against the
// given register snapshot and returns the carry flag. Unknown function
// numbers leave the snapshot untouched and return carry clear.
func (d *Device) Dispatch(fn vddcall.Function, regs *vddcall.ClientRegs) bool {
	return d.table.Dispatch(fn, regs)
}

// Descriptors exposes the dispatch table for inspection tooling.
func (d *Device) Descriptors() []vddcall.Descriptor {
	return d.table.Descriptors()
}

// State returns a copy of the current display state.
func (d *Device) State() DisplayState {
	return d.state
}

// chipID composes the plug&play chip identity, vendor id in the upper half.
func chipID(adapter Adapter) uint32 {
	return adapter.ReadRegister(RegVendorID)<<16 | adapter.ReadRegister(RegDeviceID)&0xFFFF
}
