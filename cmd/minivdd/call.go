// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emuhost/minivdd/pkg/minivdd"
	"github.com/emuhost/minivdd/pkg/vddcall"
)

const (
	flagFunction = "function"
	flagEAX      = "eax"
	flagEBX      = "ebx"
	flagECX      = "ecx"
	flagEDX      = "edx"
)

var callCmd = &cobra.Command{
	Use:   "call --function [number]",
	Short: "dispatch a single call against the emulated adapter",
	Long:  "builds a register snapshot from the flags, dispatches it and prints the resulting snapshot and carry flag",
	RunE:  call,
}

func init() {
	f := callCmd.Flags()
	f.Uint32(flagFunction, 0, "function number to dispatch")
	f.Uint32(flagEAX, 0, "EAX on entry")
	f.Uint32(flagEBX, 0, "EBX on entry")
	f.Uint32(flagECX, 0, "ECX on entry")
	f.Uint32(flagEDX, 0, "EDX on entry")

	if err := viper.BindPFlags(f); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(callCmd)
}

func call(_ *cobra.Command, _ []string) error {
	device, traps := newDevice()

	regs := &vddcall.ClientRegs{}
	regs.EAX.SetValue(viper.GetUint32(flagEAX))
	regs.EBX.SetValue(viper.GetUint32(flagEBX))
	regs.ECX.SetValue(viper.GetUint32(flagECX))
	regs.EDX.SetValue(viper.GetUint32(flagEDX))

	fn := vddcall.Function(viper.GetUint32(flagFunction))
	cy := device.Dispatch(fn, regs)

	fmt.Printf("function: %d (%s)\n", uint32(fn), fn)
	fmt.Printf("carry:    %v\n", cy)
	fmt.Printf("regs:     %s\n", regs)
	fmt.Printf("state:    mode=%s mode_number=0x%X read_bank=%d write_bank=%d\n",
		device.State().Mode, device.State().ModeNumber,
		device.State().ReadBank, device.State().WriteBank)
	fmt.Printf("traps:    0x%03X=%v 0x%03X=%v\n",
		minivdd.BankIndexPort, traps.Trapped(minivdd.BankIndexPort),
		minivdd.BankDataPort, traps.Trapped(minivdd.BankDataPort))

	return nil
}
