// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package minivdd

// VBE constants, see the VESA BIOS Extension specification.
const (
	// vbeFuncSetMode is VESA function 4F02h, set SuperVGA mode.
	vbeFuncSetMode uint16 = 0x4F02
	// vbeFuncBank is VESA function 4F05h, CPU video memory window control.
	vbeFuncBank uint16 = 0x4F05

	// ModeFlagLinear requests a linear framebuffer on mode set (VBE 2.0).
	ModeFlagLinear uint32 = 1 << 14
	// ModeFlagNoClear asks the BIOS not to clear video memory on mode set.
	ModeFlagNoClear uint32 = 1 << 15

	// Standard VGA BIOS modes end at 13h; VBE 1.2 defines 100h..11Bh.
	vgaModeMax  = 0x13
	vesaModeMin = 0x100
	vesaModeMax = 0x11B
)

// IsStandardVGAMode reports whether mode is a standard VGA BIOS mode.
func IsStandardVGAMode(mode uint32) bool {
	return mode <= vgaModeMax
}

// IsStandardVESAMode reports whether mode is a VBE-defined mode number. The
// VBE mode-set flag bits are masked off before classification.
func IsStandardVESAMode(mode uint32) bool {
	mode &^= ModeFlagLinear | ModeFlagNoClear

	return mode >= vesaModeMin && mode <= vesaModeMax
}

// restorableMode reports whether the monitor's generic save/restore path can
// legally restore the given mode without this driver's help.
func restorableMode(mode uint32) bool {
	return IsStandardVGAMode(mode) || IsStandardVESAMode(mode)
}
