// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/fdt"
)

// KPSSv1 is the power sequencer for first generation Krait subsystems
// (apq8064/msm8960 class). The core's SAW regulates its supply rail.
type KPSSv1 struct{}

func (KPSSv1) Boot(hw Hardware, f *dt.FDT, cpu *dt.Node, acc uint32) error {
	saw := fdt.ReferenceReg(f, cpu, "qcom,saw", 0)
	if saw == 0 {
		return fmt.Errorf("no qcom,saw register for %s", cpu.Name)
	}
	kpssv1PowerOn(hw, acc, saw)
	return nil
}

func kpssv1PowerOn(hw Hardware, base, saw uint32) {
	restore := hw.MaskInterrupts()
	defer restore()

	// Turn on the CPU rail
	hw.Write32(saw+APCS_SAW2_VCTL, 0xA4)
	hw.Barrier()
	hw.Udelay(512)

	// Krait bring-up sequence
	val := PLL_CLAMP | L2DT_SLP | CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)

	val &^= L2DT_SLP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(1)

	val |= COREPOR_RST
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	val &^= CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	val &^= COREPOR_RST
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(100)

	val |= CORE_PWRD_UP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
}

// KPSSv2 is the power sequencer for second generation Krait subsystems
// (msm8974 class). The SAW that matters sits on the next-level cache, not
// on the core itself.
type KPSSv2 struct{}

func (KPSSv2) Boot(hw Hardware, f *dt.FDT, cpu *dt.Node, acc uint32) error {
	cache, err := fdt.PhandleNode(f, cpu, "next-level-cache")
	if err != nil {
		log.Errorf("Cannot find CPU next-level-cache: %v", err)
		return fmt.Errorf("%s: %w", cpu.Name, err)
	}
	l2saw := fdt.ReferenceReg(f, cache, "qcom,saw", 0)
	if l2saw == 0 {
		return fmt.Errorf("no qcom,saw register for %s", cache.Name)
	}
	kpssv2PowerOn(hw, acc, l2saw)
	return nil
}

func kpssv2PowerOn(hw Hardware, base, l2saw uint32) {
	restore := hw.MaskInterrupts()
	defer restore()

	// Turn on the BHS, turn off LDO bypass and power down the LDO
	val := 64<<BHS_CNT_SHIFT | 0x3f<<LDO_PWR_DWN_SHIFT | BHS_EN
	hw.Write32(base+APC_PWR_GATE_CTL, val)
	hw.Barrier()
	// Wait for the BHS to settle
	hw.Udelay(1)

	// Turn on the BHS segments
	val |= 0x3f << BHS_SEG_SHIFT
	hw.Write32(base+APC_PWR_GATE_CTL, val)
	hw.Barrier()
	hw.Udelay(1)

	// Turn on the LDO bypass so that the BHS supplies power
	val |= 0x3f << LDO_BYP_SHIFT
	hw.Write32(base+APC_PWR_GATE_CTL, val)

	// Enable max phases on the L2 SAW
	hw.Write32(l2saw+APCS_SAW2_2_VCTL, 0x10003)
	hw.Barrier()
	hw.Udelay(50)

	val = COREPOR_RST | CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	val &^= CLAMP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
	hw.Udelay(2)

	val &^= COREPOR_RST
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()

	val |= CORE_PWRD_UP
	hw.Write32(base+CPU_PWR_CTL, val)
	hw.Barrier()
}
