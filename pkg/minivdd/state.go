// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package minivdd

// ModeClass classifies the display mode the virtual adapter is in.
type ModeClass int32

const (
	// StandardVGA is the initial state; bank indices carry no meaning here,
	// banking only applies to bank-switched hi-res addressing.
	StandardVGA ModeClass = iota
	// HiResVESA is a standard VESA mode, restorable through the monitor's
	// generic save/restore path.
	HiResVESA
	// HiResProprietary is a chipset-specific hi-res mode only this driver
	// knows how to restore.
	HiResProprietary
)

var modeClassNames = map[ModeClass]string{
	StandardVGA:      "standard_vga",
	HiResVESA:        "hires_vesa",
	HiResProprietary: "hires_proprietary",
}

// String returns the debug name of the mode class.
func (m ModeClass) String() string {
	if name, ok := modeClassNames[m]; ok {
		return name
	}

	return "unknown"
}

// DisplayState is the per-device display bookkeeping. It lives for as long as
// the virtual device is attached and is mutated only by dispatched calls,
// which the monitor serializes.
type DisplayState struct {
	Mode       ModeClass
	ModeNumber uint32
	ReadBank   uint32
	WriteBank  uint32
	VRAMSize   uint32
	ChipID     uint32
}
