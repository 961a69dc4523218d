// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package svga emulates the register file of a VMware-style SVGA adapter.
// It backs the CLI and the driver tests; a real monitor supplies its own
// minivdd.Adapter implementation instead.
package svga

import "github.com/emuhost/minivdd/pkg/minivdd"

// VMware PCI identity of the emulated adapter.
const (
	VendorIDVMware = 0x15AD
	DeviceIDSVGA2  = 0x0405
)

// DefaultVRAMSize is 16 MiB, the usual SVGA II default.
const DefaultVRAMSize = 16 * 1024 * 1024

const registerCount = 16

// Emulated is an in-memory SVGA adapter. Register writes take effect
// immediately; VRAM content is modeled so that mode-register writes can be
// shown not to disturb it.
type Emulated struct {
	regs        [registerCount]uint32
	vram        []byte
	initialized bool
}

// Option configures an Emulated adapter.
type Option func(*Emulated)

// WithVRAMSize overrides the VRAM size register.
func WithVRAMSize(size uint32) Option {
	return func(e *Emulated) { e.regs[minivdd.RegVRAMSize] = size }
}

// WithPCIIdentity overrides the vendor and device id registers.
func WithPCIIdentity(vendor, device uint32) Option {
	return func(e *Emulated) {
		e.regs[minivdd.RegVendorID] = vendor
		e.regs[minivdd.RegDeviceID] = device
	}
}

// WithFBStart sets a linear framebuffer aperture address. Zero (the default)
// means the standard banked window at A000:0h.
func WithFBStart(addr uint32) Option {
	return func(e *Emulated) { e.regs[minivdd.RegFBStart] = addr }
}

// Uninitialized leaves the adapter in its pre-init state, where every driver
// query must be declined.
func Uninitialized() Option {
	return func(e *Emulated) { e.initialized = false }
}

// New builds an initialized adapter with the VMware SVGA II identity, a small
// VRAM model and default register values.
func New(opts ...Option) *Emulated {
	e := &Emulated{initialized: true}
	e.regs[minivdd.RegVendorID] = VendorIDVMware
	e.regs[minivdd.RegDeviceID] = DeviceIDSVGA2
	e.regs[minivdd.RegVRAMSize] = DefaultVRAMSize

	for _, opt := range opts {
		opt(e)
	}

	// The VRAM model stays small regardless of the advertised size; only its
	// contents matter to callers.
	e.vram = make([]byte, minivdd.BankSize)

	return e
}

// Initialized reports whether device init completed.
func (e *Emulated) Initialized() bool {
	return e.initialized
}

// ReadRegister returns the current value of a register. Unknown ids read as
// zero, like reserved SVGA registers.
func (e *Emulated) ReadRegister(id uint32) uint32 {
	if id >= registerCount {
		return 0
	}

	return e.regs[id]
}

// WriteRegister sets a register. Writing the enable register clears VRAM, as
// the real device does on a fresh enable; writing the mode register does not
// touch VRAM so a mid-restore mode set cannot erase the screen.
func (e *Emulated) WriteRegister(id, val uint32) {
	if id >= registerCount {
		return
	}

	if id == minivdd.RegEnable && val != 0 && e.regs[id] == 0 {
		clear(e.vram)
	}

	e.regs[id] = val
}

// VRAM exposes the VRAM model for content checks.
func (e *Emulated) VRAM() []byte {
	return e.vram
}
