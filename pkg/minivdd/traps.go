// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package minivdd

import "log/slog"

// Bank-select I/O ports of the virtual adapter (the Bochs/QEMU VBE dispi
// index and data ports). They are always trapped and untrapped as a pair.
const (
	BankIndexPort uint16 = 0x1CE
	BankDataPort  uint16 = 0x1CF
)

// TrapController hands ownership of an I/O port's interception between the
// monitor's pass-through emulation and direct hardware access. Both calls are
// idempotent per port. Callers must bracket direct-access intervals with a
// disable/enable pair and must not nest pairs on the same port; the driver
// keeps that symmetry by convention (pre/post hook pairing), there is no
// reference count.
type TrapController interface {
	EnableGlobalTrap(port uint16)
	DisableGlobalTrap(port uint16)
}

// PortTraps is an in-memory TrapController tracking the host-trapped flag per
// port. Ports start out trapped, matching the monitor's default before any
// hi-res session.
type PortTraps struct {
	logger    *slog.Logger
	untrapped map[uint16]bool
}

// NewPortTraps initializes a PortTraps with every port trapped.
func NewPortTraps(logger *slog.Logger) *PortTraps {
	return &PortTraps{
		logger:    logger,
		untrapped: make(map[uint16]bool),
	}
}

// EnableGlobalTrap returns a port to monitor interception.
func (t *PortTraps) EnableGlobalTrap(port uint16) {
	t.logger.Debug("enabling global trap", "port", port)
	delete(t.untrapped, port)
}

// DisableGlobalTrap hands a port to the guest for direct hardware access.
func (t *PortTraps) DisableGlobalTrap(port uint16) {
	t.logger.Debug("disabling global trap", "port", port)
	t.untrapped[port] = true
}

// Trapped reports whether the monitor currently intercepts the port.
func (t *PortTraps) Trapped(port uint16) bool {
	return !t.untrapped[port]
}
