// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/fdt"
	"github.com/u-root/u-smp/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Settle time after releasing a core, before the caller moves on.
const bootSettleUs = 100

// Result is the terminal state of one core's bring-up.
type Result int

const (
	// Failed: a register could not be resolved. No hardware was touched.
	Failed Result = iota
	// Booted: the power sequence ran and the settle delay elapsed.
	Booted
	// Skipped: the target is the executing core, which is already running.
	Skipped
)

func (r Result) String() string {
	switch r {
	case Failed:
		return "failed"
	case Booted:
		return "booted"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Sequencer replays one SoC family's power-up recipe for a single core.
// acc is the core's resolved power control block; any further registers the
// recipe needs are resolved from the core's device tree node. Sequencers
// only fail before their first register write.
type Sequencer interface {
	Boot(hw Hardware, f *dt.FDT, cpu *dt.Node, acc uint32) error
}

// Booter brings up secondary cores one at a time, from the boot core.
type Booter struct {
	hw  Hardware
	seq Sequencer
	fdt *dt.FDT
}

func New(hw Hardware, seq Sequencer, f *dt.FDT) *Booter {
	return &Booter{hw: hw, seq: seq, fdt: f}
}

// Boot powers up the core described by cpu with hardware identifier mpidr.
// Register addresses are resolved fresh on every call; nothing is cached
// between cores. A Failed result aborts only this core.
func (b *Booter) Boot(cpu *dt.Node, mpidr uint32) (Result, error) {
	if b.hw.CurrentCPU() == mpidr {
		log.Infof("Skipping boot of current CPU (%x)", mpidr)
		return Skipped, nil
	}

	// The power control registers for the core live in its ACC node.
	acc := fdt.ReferenceReg(b.fdt, cpu, "qcom,acc", 0)
	if acc == 0 {
		return Failed, fmt.Errorf("no qcom,acc register for CPU%x", mpidr)
	}

	log.Infof("Booting CPU%x @ %#08x", mpidr, acc)

	if err := b.seq.Boot(b.hw, b.fdt, cpu, acc); err != nil {
		return Failed, fmt.Errorf("CPU%x: %w", mpidr, err)
	}

	// Give the core some time to start executing.
	b.hw.Udelay(bootSettleUs)
	return Booted, nil
}
