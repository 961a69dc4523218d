// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emuhost/minivdd/internal/capcheck"
	"github.com/emuhost/minivdd/internal/vmxreport"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "publish driver state to the VMX as guestinfo keys",
	Long:  "pushes chip id, VRAM size and mode bookkeeping to guestinfo.minivdd.* over the backdoor RPCI channel; only works inside a VMware VM",
	RunE:  report,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func report(_ *cobra.Command, _ []string) error {
	hascap, err := capcheck.HasCapability(capcheck.CapSysRawio)
	if err != nil {
		return err
	}

	if !hascap {
		return fmt.Errorf("we lack CAP_SYS_RAWIO and cannot talk to the backdoor")
	}

	device, _ := newDevice()

	reporter, err := vmxreport.New(logger.With("module", "vmxreport"))
	if err != nil {
		return err
	}

	defer func() {
		if err := reporter.Close(); err != nil {
			logger.Warn("failed to close RPCI channel", "err", err)
		}
	}()

	return reporter.PublishState(device.State())
}
