// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/fdt"
)

// Cluster L2 power domain register offsets, relative to the APCS block.
const (
	L2_PWR_CTL_OVERRIDE uint32 = 0x0c
	L2_PWR_CTL          uint32 = 0x14
	L2_PWR_STATUS       uint32 = 0x18
	L2_CORE_CBCR        uint32 = 0x58

	L2_PWR_STATUS_L2_HS_STS uint32 = 1 << 16
)

// CortexA is the generic power sequencer for single-cluster Cortex-A SoCs
// (msm8916 class).
type CortexA struct{}

// Boot powers up the core at acc.
//
// The CPU clock happens to point to the APCS node that also controls the
// power signals for the L2 cache. The address does not have to be present
// since on SoCs with a single CPU cluster the L2 cache should already be
// powered on and active.
func (CortexA) Boot(hw Hardware, f *dt.FDT, cpu *dt.Node, acc uint32) error {
	apcs := fdt.ReferenceReg(f, cpu, "clocks", 0)
	if apcs != 0 {
		powerOnL2Cache(hw, apcs)
	}
	cortexAPowerOn(hw, acc)
	return nil
}

func powerOnL2Cache(hw Hardware, base uint32) {
	// Skip if cluster L2 is already powered on
	if hw.Read32(base+L2_PWR_STATUS)&L2_PWR_STATUS_L2_HS_STS != 0 {
		return
	}

	log.Infof("Powering on L2 cache @ %#08x", base)

	restore := hw.MaskInterrupts()
	defer restore()

	// Close L2/SCU Logic GDHS and power up the cache
	hw.Write32(base+L2_PWR_CTL, 0x10D700)

	// Assert PRESETDBGn
	hw.Write32(base+L2_PWR_CTL_OVERRIDE, 0x400000)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert L2/SCU memory Clamp
	hw.Write32(base+L2_PWR_CTL, 0x101700)

	// Wakeup L2/SCU RAMs by deasserting sleep signals
	hw.Write32(base+L2_PWR_CTL, 0x101703)
	hw.Barrier()
	hw.Udelay(2)

	// Enable clocks via SW_CLK_EN
	hw.Write32(base+L2_CORE_CBCR, 0x01)

	// De-assert L2/SCU logic clamp
	hw.Write32(base+L2_PWR_CTL, 0x101603)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert PRESETDBGn
	hw.Write32(base+L2_PWR_CTL_OVERRIDE, 0x0)

	// Turn on the PMIC_APC
	hw.Write32(base+L2_PWR_CTL, 0x903603)

	// Set H/W clock control for the cluster CPU clocks
	hw.Write32(base+L2_CORE_CBCR, 0x4501)
	hw.Barrier()
}

func cortexAPowerOn(hw Hardware, base uint32) {
	restore := hw.MaskInterrupts()
	defer restore()

	// Put the CPU into reset, clamps asserted
	val := CORE_RST | COREPOR_RST | CLAMP | CORE_MEM_CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()

	// Turn on the BHS and set the BHS_CNT to 16 XO clock cycles
	hw.Write32(base+APC_PWR_GATE_CTL, BHS_EN|0x10<<BHS_CNT_SHIFT)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert the memory clamp
	val &^= CORE_MEM_CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()

	// Close the core memory head switch
	val |= CORE_MEM_HS
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert the logic clamp
	val &^= CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	// Release the core from reset and bring it to life
	val &^= CORE_RST | COREPOR_RST
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()

	val |= CORE_PWRD_UP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
}
