// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package vddcall

// Function identifies a mini display driver call. The numeric values are part
// of the wire contract with the monitor (ddk minivdd function numbers) and
// must never be renumbered.
type Function uint32

const (
	// RegisterDisplayDriver passes display driver registration data through
	// between the display driver and the mini driver.
	RegisterDisplayDriver Function = 0

	// PreHiResToVGA runs immediately before the monitor switches a hi-res
	// session back to VGA.
	PreHiResToVGA Function = 7
	// PostHiResToVGA runs immediately after the switch back to VGA.
	PostHiResToVGA Function = 8

	// EnableTraps re-enables port trapping after direct hardware access.
	EnableTraps Function = 16
	// DisableTraps hands the trapped ports to the guest. Unregistered in the
	// baseline; the pre hi-res hooks cover the same ports.
	DisableTraps Function = 17

	// DisplayDriverDisabling is the driver teardown notification.
	DisplayDriverDisabling Function = 29

	// GetCurrentBankWrite reports the hardware write bank register.
	GetCurrentBankWrite Function = 32
	// GetCurrentBankRead reports the hardware read bank register.
	GetCurrentBankRead Function = 33
	// SetBank programs the read and write banks together.
	SetBank Function = 34
	// CheckHiResMode asks whether a given hi-res mode is supported.
	CheckHiResMode Function = 35
	// GetTotalVRAMSize reports the total VRAM on the card.
	GetTotalVRAMSize Function = 36
	// GetBankSize reports the per-bank byte size and memory aperture.
	GetBankSize Function = 37
	// SetHiResMode restores a (possibly proprietary) hi-res mode.
	SetHiResMode Function = 38
	// PreHiResSaveRestore runs before a mode change into VESA/hi-res.
	PreHiResSaveRestore Function = 39
	// PostHiResSaveRestore runs after a mode change into VESA/hi-res.
	PostHiResSaveRestore Function = 40
	// VESASupport intercepts a guest VESA BIOS call.
	VESASupport Function = 41
	// GetChipID reports the display chip identity for plug&play checks.
	GetChipID Function = 42
	// CheckScreenSwitchOK asks whether focus may switch away from the
	// current display mode.
	CheckScreenSwitchOK Function = 43

	// VESACallPostProcessing runs after every guest VESA BIOS call.
	VESACallPostProcessing Function = 47
)

var functionNames = map[Function]string{
	RegisterDisplayDriver:  "register_display_driver",
	PreHiResToVGA:          "pre_hires_to_vga",
	PostHiResToVGA:         "post_hires_to_vga",
	EnableTraps:            "enable_traps",
	DisableTraps:           "disable_traps",
	DisplayDriverDisabling: "display_driver_disabling",
	GetCurrentBankWrite:    "get_current_bank_write",
	GetCurrentBankRead:     "get_current_bank_read",
	SetBank:                "set_bank",
	CheckHiResMode:         "check_hires_mode",
	GetTotalVRAMSize:       "get_total_vram_size",
	GetBankSize:            "get_bank_size",
	SetHiResMode:           "set_hires_mode",
	PreHiResSaveRestore:    "pre_hires_save_restore",
	PostHiResSaveRestore:   "post_hires_save_restore",
	VESASupport:            "vesa_support",
	GetChipID:              "get_chip_id",
	CheckScreenSwitchOK:    "check_screen_switch_ok",
	VESACallPostProcessing: "vesa_call_post_processing",
}

// String returns the debug name of the function.
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}

	return "unknown"
}
