// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/fdt"
)

const (
	L1_RST_DIS  uint32 = 0x284
	L2_VREG_CTL uint32 = 0x1c

	L2_PWR_STATUS_L2_HS_STS_MSM8994 uint32 = 1<<9 | 1<<28
)

// Delay for voltage to settle on the core rail.
const regulatorSetupUs = 2000

// MSM8994 is the power sequencer for the msm8992/8994 big cluster. On top
// of the per-core recipe it powers the cluster's L2 cache and its supply
// rail, driven by the SPM referenced from the L2 clock controller node.
//
// The L2 phase is skipped when the cache reports powered, so cores of an
// already live cluster are not re-sequenced. Only the cache status is
// checked, not the rail; a partial earlier sequence would be trusted.
type MSM8994 struct{}

// Boot resolves the L2 and rail control registers from the core's
// next-level-cache chain and powers everything up.
//
// The cpu node must contain next-level-cache, the cache node power-domain.
// The power-domain node must contain qcom,vctl-node and may carry a second
// reg tuple on the vctl target plus a qcom,vctl-val voltage word.
func (MSM8994) Boot(hw Hardware, f *dt.FDT, cpu *dt.Node, acc uint32) error {
	cache, err := fdt.PhandleNode(f, cpu, "next-level-cache")
	if err != nil {
		log.Errorf("Cannot find CPU next-level-cache: %v", err)
		return fmt.Errorf("%s: %w", cpu.Name, err)
	}
	pd, err := fdt.PhandleNode(f, cache, "power-domain")
	if err != nil {
		log.Errorf("Cannot find L2 power-domain: %v", err)
		return fmt.Errorf("%s: %w", cache.Name, err)
	}

	l2ccc := fdt.PropertyValue(pd, "reg", 0)
	if l2ccc != 0 {
		vctl0 := fdt.ReferenceReg(f, pd, "qcom,vctl-node", 0)
		if vctl0 == 0 {
			return fmt.Errorf("no qcom,vctl-node register for %s", pd.Name)
		}
		// The second vctl tuple (Q2S block) is optional.
		vctl1 := fdt.ReferenceReg(f, pd, "qcom,vctl-node", 1)
		vctlVal, err := fdt.Lookup(pd, "qcom,vctl-val", 0)
		if err != nil {
			vctlVal = 0
		}
		powerOnL2Cache8994(hw, l2ccc, vctl0, vctl1, vctlVal)
	}

	corePowerOn8994(hw, acc)
	return nil
}

// turnOnCPURail powers the cluster supply rail through the SPM before any
// logic is unclamped.
func turnOnCPURail(hw Hardware, vctl0, vctl1, vctlVal uint32) {
	if vctl1 != 0 {
		// Program Q2S to disable SPM legacy mode and ignore Q2S
		// channel requests.
		// bit[1] = qchannel_ignore = 1
		// bit[2] = spm_legacy_mode = 0
		hw.Write32(vctl1, 0x2)
		hw.Barrier()
	}

	// Set the CPU supply regulator voltage
	hw.Write32(vctl0+L2_VREG_CTL, vctlVal&0xFF)
	hw.Barrier()
	hw.Udelay(regulatorSetupUs)

	// Enable the CPU supply regulator
	hw.Write32(vctl0+L2_VREG_CTL, 0x30080)
	hw.Barrier()
	hw.Udelay(regulatorSetupUs)
}

func powerOnL2Cache8994(hw Hardware, l2ccc, vctl0, vctl1, vctlVal uint32) {
	// Skip if cluster L2 is already powered on
	if hw.Read32(l2ccc+L2_PWR_CTL)&L2_PWR_STATUS_L2_HS_STS_MSM8994 != 0 {
		return
	}

	turnOnCPURail(hw, vctl0, vctl1, vctlVal)

	log.Infof("Powering on L2 cache @ %#08x", l2ccc)

	restore := hw.MaskInterrupts()
	defer restore()

	// Enable L1 invalidation by h/w
	hw.Write32(l2ccc+L1_RST_DIS, 0x00000000)
	hw.Barrier()

	// Assert PRESETDBGn
	hw.Write32(l2ccc+L2_PWR_CTL_OVERRIDE, 0x00400000)
	hw.Barrier()

	// Close L2/SCU Logic GDHS and power up the cache
	hw.Write32(l2ccc+L2_PWR_CTL, 0x00029716)
	hw.Barrier()
	hw.Udelay(8)

	// De-assert L2/SCU memory Clamp
	hw.Write32(l2ccc+L2_PWR_CTL, 0x00023716)
	hw.Barrier()

	// Wakeup L2/SCU RAMs by deasserting sleep signals
	hw.Write32(l2ccc+L2_PWR_CTL, 0x0002371E)
	hw.Barrier()
	hw.Udelay(8)

	// Un-gate clock and wait for sequential waking up
	// of L2 rams with a delay of 2*X0 cycles
	hw.Write32(l2ccc+L2_PWR_CTL, 0x0002371C)
	hw.Barrier()
	hw.Udelay(4)

	// De-assert L2/SCU logic clamp
	hw.Write32(l2ccc+L2_PWR_CTL, 0x0002361C)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert L2/SCU logic reset
	hw.Write32(l2ccc+L2_PWR_CTL, 0x00022218)
	hw.Barrier()
	hw.Udelay(4)

	// Turn on the PMIC_APC
	hw.Write32(l2ccc+L2_PWR_CTL, 0x10022218)
	hw.Barrier()

	// De-assert PRESETDBGn
	hw.Write32(l2ccc+L2_PWR_CTL_OVERRIDE, 0x00000000)
	hw.Barrier()
}

func corePowerOn8994(hw Hardware, base uint32) {
	restore := hw.MaskInterrupts()
	defer restore()

	// Assert head switch enable few
	hw.Write32(base+APC_PWR_GATE_CTL, 0x00000001)
	hw.Barrier()
	hw.Udelay(1)

	// Assert head switch enable rest
	hw.Write32(base+APC_PWR_GATE_CTL, 0x00000003)
	hw.Barrier()
	hw.Udelay(1)

	// De-assert coremem clamp. This is asserted by default
	hw.Write32(base+CPU_PWR_CTL, 0x00000079)
	hw.Barrier()
	hw.Udelay(2)

	// Close coremem array gdhs
	hw.Write32(base+CPU_PWR_CTL, 0x0000007D)
	hw.Barrier()
	hw.Udelay(2)

	// De-assert clamp
	hw.Write32(base+CPU_PWR_CTL, 0x0000003D)
	hw.Barrier()

	// De-assert clamp
	hw.Write32(base+CPU_PWR_CTL, 0x0000003C)
	hw.Barrier()
	hw.Udelay(1)

	// De-assert core0 reset
	hw.Write32(base+CPU_PWR_CTL, 0x0000000C)
	hw.Barrier()

	// Assert PWRDUP
	hw.Write32(base+CPU_PWR_CTL, 0x0000008C)
	hw.Barrier()
}
