// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package minivdd

import (
	"bytes"
	"errors"
	"fmt"

	xdr "github.com/rasky/go-xdr/xdr2"
)

// ErrBadSnapshot is returned when a snapshot fails to decode or carries an
// unknown mode class.
var ErrBadSnapshot = errors.New("malformed display state snapshot")

// Snapshot is the wire form of DisplayState kept by the monitor across a
// suspend/resume of the virtual machine.
//
//nolint:govet // the monitor expects the fields in exactly this order
type Snapshot struct {
	Mode       int32
	ModeNumber uint32
	ReadBank   uint32
	WriteBank  uint32
	VRAMSize   uint32
	ChipID     uint32
}

// SaveState encodes the current display state for the monitor's suspend
// bookkeeping.
func (d *Device) SaveState() ([]byte, error) {
	snap := Snapshot{
		Mode:       int32(d.state.Mode),
		ModeNumber: d.state.ModeNumber,
		ReadBank:   d.state.ReadBank,
		WriteBank:  d.state.WriteBank,
		VRAMSize:   d.state.VRAMSize,
		ChipID:     d.state.ChipID,
	}

	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, &snap); err != nil {
		return nil, fmt.Errorf("error encoding display state: %w", err)
	}

	return buf.Bytes(), nil
}

// RestoreState applies a snapshot taken by SaveState and reprograms the bank
// registers so the hardware matches the restored bookkeeping.
func (d *Device) RestoreState(data []byte) error {
	var snap Snapshot
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &snap); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	mode := ModeClass(snap.Mode)
	if _, ok := modeClassNames[mode]; !ok {
		return fmt.Errorf("%w: mode class %d", ErrBadSnapshot, snap.Mode)
	}

	d.state = DisplayState{
		Mode:       mode,
		ModeNumber: snap.ModeNumber,
		ReadBank:   snap.ReadBank,
		WriteBank:  snap.WriteBank,
		VRAMSize:   snap.VRAMSize,
		ChipID:     snap.ChipID,
	}

	if mode != StandardVGA && d.adapter.Initialized() {
		d.adapter.WriteRegister(RegReadBank, snap.ReadBank)
		d.adapter.WriteRegister(RegWriteBank, snap.WriteBank)
	}

	return nil
}
