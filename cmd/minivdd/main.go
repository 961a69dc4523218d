// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package main is the main package invoking the tool
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emuhost/minivdd/internal/svga"
	"github.com/emuhost/minivdd/internal/util"
	"github.com/emuhost/minivdd/internal/version"
	"github.com/emuhost/minivdd/pkg/minivdd"
)

const (
	flagLogLevel      = "log-level"
	flagVRAMSize      = "vram-size"
	flagVendorID      = "vendor-id"
	flagDeviceID      = "device-id"
	flagFBStart       = "fb-start"
	flagUninitialized = "uninitialized"
)

var rootCmd = &cobra.Command{
	Use:               "minivdd",
	Short:             "mini display driver core for virtual SVGA adapters",
	Long:              "arbitrates hi-res/VESA mode ownership, VRAM banking and port trapping between a guest display driver and a virtual display device",
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var logger *slog.Logger

func setup(cmd *cobra.Command, _ []string) error {
	level, err := util.ParseLevel(viper.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logOpts := &slog.HandlerOptions{
		Level: level,
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, logOpts)).With("command", cmd.Name())

	logger.Debug("starting", "name", version.Name, "tag", version.Tag, "sha", version.SHA)

	return nil
}

// newDevice builds a driver instance on top of the emulated adapter
// configured through the persistent flags.
func newDevice() (*minivdd.Device, *minivdd.PortTraps) {
	opts := []svga.Option{
		svga.WithVRAMSize(viper.GetUint32(flagVRAMSize)),
		svga.WithPCIIdentity(viper.GetUint32(flagVendorID), viper.GetUint32(flagDeviceID)),
		svga.WithFBStart(viper.GetUint32(flagFBStart)),
	}
	if viper.GetBool(flagUninitialized) {
		opts = append(opts, svga.Uninitialized())
	}

	adapter := svga.New(opts...)
	traps := minivdd.NewPortTraps(logger.With("module", "traps"))

	return minivdd.New(logger.With("module", "minivdd"), adapter, traps), traps
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))
	viper.SetEnvPrefix("minivdd")

	pf := rootCmd.PersistentFlags()
	pf.String(flagLogLevel, "info", "log level (error, warning, info, debug, trace)")
	pf.Uint32(flagVRAMSize, svga.DefaultVRAMSize, "emulated adapter VRAM size in bytes")
	pf.Uint32(flagVendorID, svga.VendorIDVMware, "emulated adapter PCI vendor id")
	pf.Uint32(flagDeviceID, svga.DeviceIDSVGA2, "emulated adapter PCI device id")
	pf.Uint32(flagFBStart, 0, "linear framebuffer aperture address, 0 for the standard banked window")
	pf.Bool(flagUninitialized, false, "leave the emulated adapter uninitialized")

	if err := viper.BindPFlags(pf); err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
