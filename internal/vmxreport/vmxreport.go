// This file was adapted from govmomi/toolbox's channel.go and backdoor.go.
// The original copyright notice follows.

// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

// Package vmxreport publishes display driver state to a VMware VMX as
// guestinfo keys, over the backdoor RPCI channel. Only useful when the
// process actually runs inside a VMware virtual machine.
package vmxreport

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vmware/vmw-guestinfo/message"
	"github.com/vmware/vmw-guestinfo/vmcheck"

	"github.com/emuhost/minivdd/pkg/minivdd"
)

const rpciProtocol uint32 = 0x49435052

// keyPrefix namespaces all published guestinfo keys.
const keyPrefix = "guestinfo.minivdd."

var (
	// ErrNotVirtualWorld is returned when the current process is not running in a virtual world.
	ErrNotVirtualWorld = errors.New("not in a virtual world")

	// rpciOK is the return code for a successful RPCI request.
	rpciOK = []byte{'1', ' '}
)

// Reporter owns an RPCI channel to the VMX.
type Reporter struct {
	logger  *slog.Logger
	channel *message.Channel
}

// New opens the RPCI channel, failing fast outside a virtual world.
func New(logger *slog.Logger) (*Reporter, error) {
	if !vmcheck.IsVirtualCPU() {
		return nil, ErrNotVirtualWorld
	}

	channel, err := message.NewChannel(rpciProtocol)
	if err != nil {
		return nil, fmt.Errorf("error opening RPCI channel: %w", err)
	}

	return &Reporter{logger: logger, channel: channel}, nil
}

// Close tears down the RPCI channel.
func (r *Reporter) Close() error {
	return r.channel.Close()
}

// request sends one RPCI command and checks the return code.
func (r *Reporter) request(request []byte) error {
	r.logger.Debug("rpci request", "request", string(request))

	if err := r.channel.Send(request); err != nil {
		return err
	}

	reply, err := r.channel.Receive()
	if err != nil {
		return err
	}

	if !bytes.HasPrefix(reply, rpciOK) {
		return fmt.Errorf("failed request %q: %q", request, reply)
	}

	return nil
}

// Set publishes one guestinfo key.
func (r *Reporter) Set(key, value string) error {
	return r.request([]byte(fmt.Sprintf("info-set %s%s %s", keyPrefix, key, value)))
}

// PublishState pushes the device identity and mode bookkeeping to the VMX.
func (r *Reporter) PublishState(state minivdd.DisplayState) error {
	kv := []struct {
		key, value string
	}{
		{"chipid", fmt.Sprintf("0x%08X", state.ChipID)},
		{"vram_size", fmt.Sprintf("%d", state.VRAMSize)},
		{"mode_class", state.Mode.String()},
		{"mode_number", fmt.Sprintf("0x%X", state.ModeNumber)},
	}

	for _, e := range kv {
		if err := r.Set(e.key, e.value); err != nil {
			return fmt.Errorf("error publishing %s: %w", e.key, err)
		}
	}

	return nil
}
