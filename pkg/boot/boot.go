// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boot wires the bring-up stage together: it programs the shared
// entry address once, then walks the device tree and powers up every
// secondary core in order.
package boot

import (
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/config"
	"github.com/u-root/u-smp/pkg/fdt"
	"github.com/u-root/u-smp/pkg/logger"
	"github.com/u-root/u-smp/pkg/metric"
	"github.com/u-root/u-smp/pkg/scm"
	"github.com/u-root/u-smp/pkg/smp"
)

var log = logger.LogContainer.GetSimpleLogger()

var bootOpts = metric.MetricOpts{Namespace: "usmp", Subsystem: "cpu", Name: "boot_total"}

var (
	cntBooted  = metric.Counter(bootOpts, []string{`result="booted"`})
	cntSkipped = metric.Counter(bootOpts, []string{`result="skipped"`})
	cntFailed  = metric.Counter(bootOpts, []string{`result="failed"`})
)

// StartSecondaries programs the secondary entry address and brings up all
// CPU cores listed in the tree, one at a time. A core that cannot be
// resolved is logged and skipped; a failing boot address call aborts the
// whole sequence since no core could start without it.
func StartSecondaries(hw smp.Hardware, seq smp.Sequencer, c scm.Caller, f *dt.FDT, cfg *config.Config) error {
	if err := scm.SetBootAddr(c, cfg.EntryAddr, cfg.Arm64); err != nil {
		return fmt.Errorf("set boot address %#x: %w", cfg.EntryAddr, err)
	}

	booter := smp.New(hw, seq, f)
	for _, cpu := range fdt.CPUNodes(f) {
		// cpu@0 is legal, so the sentinel helper does not apply here.
		mpidr, err := fdt.Lookup(cpu, "reg", 0)
		if err != nil {
			log.Errorf("CPU node %s has no usable reg: %v", cpu.Name, err)
			cntFailed.Inc()
			continue
		}
		res, err := booter.Boot(cpu, mpidr)
		switch res {
		case smp.Booted:
			cntBooted.Inc()
		case smp.Skipped:
			cntSkipped.Inc()
		case smp.Failed:
			log.Errorf("CPU%x bring-up failed: %v", mpidr, err)
			cntFailed.Inc()
		}
	}
	return nil
}
