// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package capcheck checks Linux capabilities of the current process. The
// backdoor channel does raw port I/O, which needs CAP_SYS_RAWIO; failing the
// check up front beats faulting inside the IN instruction.
package capcheck

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Capability bit positions, see include/uapi/linux/capability.h.
const (
	CapSysRawio = 17 // CAP_SYS_RAWIO
)

// HasCapability reports whether the given capability bit is in the effective
// set of the current process, read from /proc/self/status.
func HasCapability(capabilityBit int8) (bool, error) {
	procStatus, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return false, fmt.Errorf("error reading /proc/self/status: %w", err)
	}

	for _, line := range strings.Split(string(procStatus), "\n") {
		if !strings.HasPrefix(line, "CapEff:") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			return false, fmt.Errorf("invalid CapEff line format")
		}

		val, err := strconv.ParseUint(parts[1], 16, 64)
		if err != nil {
			return false, fmt.Errorf("error parsing CapEff value: %w", err)
		}

		return val&(1<<capabilityBit) != 0, nil
	}

	return false, fmt.Errorf("CapEff line not found")
}
