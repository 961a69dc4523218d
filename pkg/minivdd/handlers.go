// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package minivdd

import "github.com/emuhost/minivdd/pkg/vddcall"

// knownVESAHint is the EAX value the monitor passes to check_screen_switch_ok
// when the guest believes it is running in a known VESA mode.
const knownVESAHint uint32 = 0xFFFFFFFF

// registerDisplayDriver (function 0) is a pass-through between the display
// driver and the monitor; the driver has nothing to add.
func (d *Device) registerDisplayDriver(*vddcall.ClientRegs) bool {
	return false
}

// getChipID (function 42) returns the chip identity in EAX, vendor id in the
// upper half. The monitor compares it against the value stored from the last
// run and surfaces a mismatch as a configuration change. An uninitialized
// adapter reports zero and declines.
func (d *Device) getChipID(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		regs.EAX.SetValue(0)

		return false
	}

	regs.EAX.SetValue(chipID(d.adapter))

	return true
}

// checkScreenSwitchOK (function 43) decides whether focus may leave the
// current hi-res application. Carry set means switching away is unsafe and
// the monitor will alert the user instead of corrupting the screen. Standard
// VESA and VGA modes restore through the monitor's generic path and are safe.
func (d *Device) checkScreenSwitchOK(regs *vddcall.ClientRegs) bool {
	if regs.EAX.Value() == knownVESAHint {
		return false
	}

	if mode := regs.ECX.Value(); mode != 0 {
		return !restorableMode(mode)
	}

	return d.state.Mode == HiResProprietary
}

// getBankSize (function 37) reports the per-bank byte size in EDX and the
// physical aperture address in EAX, zero meaning the standard window at
// A000:0h. Declines when the adapter is not up, so the monitor asks the VESA
// BIOS instead of trusting a stale value.
func (d *Device) getBankSize(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		return false
	}

	regs.EDX.SetValue(BankSize)
	regs.EAX.SetValue(d.adapter.ReadRegister(RegFBStart))

	return true
}

// getCurrentBankWrite (function 32) reports the hardware write bank register
// in EDX. Called when the guest switches focus away from a hi-res
// application; on decline the monitor issues VESA function 4F05h itself.
func (d *Device) getCurrentBankWrite(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		return false
	}

	regs.EDX.SetValue(d.adapter.ReadRegister(RegWriteBank))

	return true
}

// getCurrentBankRead (function 33) is the read-bank counterpart of
// getCurrentBankWrite.
func (d *Device) getCurrentBankRead(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		return false
	}

	regs.EDX.SetValue(d.adapter.ReadRegister(RegReadBank))

	return true
}

// setBank (function 34) programs the read bank from EAX and the write bank
// from EDX. Both registers are written before the state copy is updated, and
// the monitor serializes calls, so no caller can observe mismatched banks.
func (d *Device) setBank(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		return false
	}

	read, write := regs.EAX.Value(), regs.EDX.Value()
	d.adapter.WriteRegister(RegReadBank, read)
	d.adapter.WriteRegister(RegWriteBank, write)
	d.state.ReadBank, d.state.WriteBank = read, write

	return true
}

// getTotalVRAMSize (function 36) reports the total VRAM byte count in ECX.
// The monitor saves the whole of VRAM on a hi-res save, so a wrong answer
// here corrupts the save file; decline rather than guess.
func (d *Device) getTotalVRAMSize(regs *vddcall.ClientRegs) bool {
	if !d.adapter.Initialized() {
		regs.ECX.SetValue(0)

		return false
	}

	regs.ECX.SetValue(d.adapter.ReadRegister(RegVRAMSize))

	return true
}

// setHiResMode (function 38) restores the hi-res mode in EAX. Standard VESA
// and VGA numbers are declined so the monitor sets them through Int 10h
// function 4F02h. Proprietary numbers are programmed directly; the mode
// register write must not clear VRAM, the monitor may be mid-restore.
func (d *Device) setHiResMode(regs *vddcall.ClientRegs) bool {
	mode := regs.EAX.Value()
	if restorableMode(mode) {
		return false
	}

	if !d.adapter.Initialized() {
		return false
	}

	d.adapter.WriteRegister(RegMode, mode)
	d.state.Mode = HiResProprietary
	d.state.ModeNumber = mode

	return true
}

// preHiRes serves pre_hires_to_vga (function 7) and pre_hires_save_restore
// (function 39): both bracket a mode change the guest performs with direct
// hardware access, so trapping on the bank-select ports is handed over. The
// S3 sample driver routes both functions to one routine as well.
func (d *Device) preHiRes(*vddcall.ClientRegs) bool {
	d.traps.DisableGlobalTrap(BankIndexPort)
	d.traps.DisableGlobalTrap(BankDataPort)

	return true
}

// postHiResSaveRestore (function 40) re-arms trapping after the mode change
// into VESA/hi-res. It must run even when the mode change failed, or the
// ports stay untrapped for good; the monitor guarantees the pairing.
func (d *Device) postHiResSaveRestore(*vddcall.ClientRegs) bool {
	d.traps.EnableGlobalTrap(BankIndexPort)
	d.traps.EnableGlobalTrap(BankDataPort)

	return true
}

// postHiResToVGA (function 8) re-arms trapping and records that the device is
// back in standard VGA, where bank indices carry no meaning.
func (d *Device) postHiResToVGA(regs *vddcall.ClientRegs) bool {
	d.postHiResSaveRestore(regs)
	d.state = DisplayState{
		Mode:     StandardVGA,
		VRAMSize: d.state.VRAMSize,
		ChipID:   d.state.ChipID,
	}

	return true
}

// enableTraps (function 16) re-arms trapping on both bank-select ports.
func (d *Device) enableTraps(*vddcall.ClientRegs) bool {
	d.traps.EnableGlobalTrap(BankIndexPort)
	d.traps.EnableGlobalTrap(BankDataPort)

	return true
}

// displayDriverDisabling (function 29) is the teardown notification: the
// ports go untrapped and the display state resets without preserving screen
// content.
func (d *Device) displayDriverDisabling(*vddcall.ClientRegs) bool {
	d.traps.DisableGlobalTrap(BankIndexPort)
	d.traps.DisableGlobalTrap(BankDataPort)
	d.state = DisplayState{
		Mode:     StandardVGA,
		VRAMSize: d.state.VRAMSize,
		ChipID:   d.state.ChipID,
	}

	return true
}

// vesaSupport (function 41) could service the guest's VESA call entirely at
// this layer. The baseline always defers to the monitor's VESA BIOS path.
func (d *Device) vesaSupport(*vddcall.ClientRegs) bool {
	return false
}

// vesaCallPostProcessing (function 47) runs after every guest VESA BIOS
// call. The low word of EDX holds the function code; after a mode set
// (4F02h) the high word holds the new mode number. Purely reactive: it
// reclassifies the mode and re-reads the bank registers the BIOS may have
// moved, and never initiates a transition itself.
func (d *Device) vesaCallPostProcessing(regs *vddcall.ClientRegs) bool {
	fn := regs.EDX.Low

	if fn == vbeFuncSetMode {
		mode := uint32(regs.EDX.High)
		switch {
		case IsStandardVESAMode(mode):
			d.state.Mode = HiResVESA
		case IsStandardVGAMode(mode &^ (ModeFlagLinear | ModeFlagNoClear)):
			d.state.Mode = StandardVGA
		default:
			d.state.Mode = HiResProprietary
		}

		d.state.ModeNumber = mode &^ (ModeFlagLinear | ModeFlagNoClear)
		d.state.ReadBank, d.state.WriteBank = 0, 0
	}

	if (fn == vbeFuncSetMode || fn == vbeFuncBank) && d.adapter.Initialized() {
		d.state.ReadBank = d.adapter.ReadRegister(RegReadBank)
		d.state.WriteBank = d.adapter.ReadRegister(RegWriteBank)
	}

	return true
}
