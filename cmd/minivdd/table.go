// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "print the call dispatch table",
	Long:  "lists every registered mini-VDD function with its wire number",
	RunE:  table,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func table(_ *cobra.Command, _ []string) error {
	device, _ := newDevice()

	for _, desc := range device.Descriptors() {
		fmt.Printf("%3d  %s\n", uint32(desc.Fn), desc.Name)
	}

	return nil
}
