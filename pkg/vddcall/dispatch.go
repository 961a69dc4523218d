// SPDX-FileCopyrightText: Copyright (c) 2025 the minivdd authors
// SPDX-License-Identifier: Apache-2.0

package vddcall

import (
	"log/slog"
	"sort"

	"github.com/emuhost/minivdd/internal/util"
)

// Handler services one dispatched call. The returned bool is the carry flag
// handed back to the monitor. For most functions carry set means the call was
// handled and the monitor must not fall back to its BIOS path; a handful of
// functions give the flag their own meaning (CheckScreenSwitchOK uses it for
// "unsafe to switch away").
type Handler func(regs *ClientRegs) bool

// Descriptor binds a function number to its handler.
type Descriptor struct {
	Fn      Function
	Name    string
	Handler Handler
}

// Table dispatches incoming calls by function number. It is populated once at
// device construction and never mutated afterwards, so dispatch needs no
// locking beyond the monitor's own call serialization.
type Table struct {
	logger   *slog.Logger
	handlers map[Function]Descriptor
}

// NewTable initializes an empty dispatch table.
func NewTable(logger *slog.Logger) *Table {
	return &Table{
		logger:   logger,
		handlers: make(map[Function]Descriptor),
	}
}

// Register adds a handler for a function number. Later registrations for the
// same number replace earlier ones; construction code is expected to register
// each number exactly once.
func (t *Table) Register(fn Function, handler Handler) {
	t.logger.Debug("registering call handler", "function", uint32(fn), "name", fn.String())
	t.handlers[fn] = Descriptor{Fn: fn, Name: fn.String(), Handler: handler}
}

// Dispatch invokes the handler registered for fn and returns its carry flag.
// An unknown function number is not an error: the snapshot is left untouched
// and carry clear tells the monitor to use its own fallback path.
func (t *Table) Dispatch(fn Function, regs *ClientRegs) bool {
	desc, ok := t.handlers[fn]
	if !ok {
		util.TraceLog(t.logger, "no handler for call", "function", uint32(fn))

		return false
	}

	cy := desc.Handler(regs)
	util.TraceLog(t.logger, "dispatched", "name", desc.Name, "cy", cy, "regs", regs.String())

	return cy
}

// Descriptors returns the registered descriptors ordered by function number,
// for inspection tooling.
func (t *Table) Descriptors() []Descriptor {
	descs := make([]Descriptor, 0, len(t.handlers))
	for _, d := range t.handlers {
		descs = append(descs, d)
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].Fn < descs[j].Fn })

	return descs
}
