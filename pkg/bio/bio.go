// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bio keeps the list of block devices registered during boot and
// renders it for the console. The storage drivers populate the registry;
// this package only consumes it.
package bio

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Device describes one registered block device.
type Device struct {
	Name   string
	Label  string
	Size   uint64
	SubDev bool
}

// Registry is a lock-protected list of block devices.
type Registry struct {
	mu   sync.Mutex
	devs []*Device
}

// Default is the registry the storage drivers register into.
var Default = &Registry{}

// Register appends d to the registry.
func (r *Registry) Register(d *Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devs = append(r.devs, d)
}

// Devices returns a snapshot of the registered devices.
func (r *Registry) Devices() []*Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Device(nil), r.devs...)
}

// Dump writes the device table to w. The registry lock is held for the
// whole iteration and released unconditionally afterwards.
func (r *Registry) Dump(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(w, "block devices:\n")
	fmt.Fprintf(w, " | dev    | label      | size      | S |\n")
	for _, d := range r.devs {
		sub := " "
		if d.SubDev {
			sub = "X"
		}
		fmt.Fprintf(w, " | %-6s | %-10s | %9s | %s |\n",
			d.Name, d.Label, humanize.IBytes(d.Size), sub)
	}
}

// Discover registers the block devices visible under /sys/class/block on a
// hosted build. Partitions are flagged as sub-devices.
func Discover(fs afero.Fs, r *Registry) error {
	entries, err := afero.ReadDir(fs, "/sys/class/block")
	if err != nil {
		return fmt.Errorf("read /sys/class/block: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		dir := filepath.Join("/sys/class/block", name)
		b, err := afero.ReadFile(fs, filepath.Join(dir, "size"))
		if err != nil {
			continue
		}
		sectors, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
		if err != nil {
			continue
		}
		sub, err := afero.Exists(fs, filepath.Join(dir, "partition"))
		if err != nil {
			sub = false
		}
		r.Register(&Device{
			Name:   name,
			Size:   sectors * 512,
			SubDev: sub,
		})
	}
	return nil
}
