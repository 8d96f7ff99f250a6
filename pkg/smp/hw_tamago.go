// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package smp

import (
	"time"
	"unsafe"
)

// Native returns the bare-metal register access for the firmware build.
// Registers are identity mapped; the MMU is either off or flat at this
// stage, so physical addresses are poked directly.
func Native() Hardware {
	return &bareHardware{}
}

type bareHardware struct{}

func (h *bareHardware) Read32(addr uint32) uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(addr)))
}

func (h *bareHardware) Write32(addr uint32, data uint32) {
	*(*uint32)(unsafe.Pointer(uintptr(addr))) = data
}

func (h *bareHardware) Barrier() {
	dsb()
}

func (h *bareHardware) Udelay(us int) {
	// Active spin. The boot core has nothing else to run and the delays in
	// the power recipes are too short to reschedule around.
	d := time.Duration(us) * time.Microsecond
	for start := time.Now(); time.Since(start) < d; {
	}
}

func (h *bareHardware) MaskInterrupts() func() {
	flags := irqSave()
	return func() { irqRestore(flags) }
}

func (h *bareHardware) CurrentCPU() uint32 {
	return readMPIDR() & 0xFFFFFF
}

func (h *bareHardware) Close() error {
	return nil
}

// Implemented in hw_arm.s.
func dsb()
func readMPIDR() uint32
func irqSave() uint32
func irqRestore(flags uint32)
