// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smp powers up secondary CPU cores before any OS is running.
//
// One already-running boot core drives the whole package: it resolves a
// core's power control registers from the device tree, then replays the
// documented power-up recipe for the target SoC family against them. The
// shared entry address must already have been programmed via scm.SetBootAddr.
//
// Exactly one Sequencer is linked into an image; the board's platform
// package picks it. There is no runtime strategy selection.
package smp

// Hardware is the register access capability handed to the sequencers.
// Register addresses are physical, as resolved from 32-bit device tree cells.
//
// The real implementations poke memory mapped registers; tests substitute a
// recording fake so sequences can be verified write by write.
type Hardware interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, data uint32)
	// Barrier completes all outstanding memory accesses before returning.
	Barrier()
	// Udelay busy-waits for at least us microseconds. The boot core spins;
	// there is nothing else to yield to.
	Udelay(us int)
	// MaskInterrupts suppresses local interrupt delivery and returns the
	// function that restores the previous state. Callers defer the restore
	// so every exit path, including early failure, unmasks.
	MaskInterrupts() func()
	// CurrentCPU returns the masked MPIDR of the executing core.
	CurrentCPU() uint32
	// Close releases the register access. Only the owner that obtained the
	// Hardware closes it; sequencers and the dispatcher never do.
	Close() error
}
