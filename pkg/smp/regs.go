// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

// Per-core ACC block register offsets, common to all Qualcomm families
// handled here.
const (
	CPU_PWR_CTL      uint32 = 0x04
	APC_PWR_GATE_CTL uint32 = 0x14
)

// CPU_PWR_CTL bits.
const (
	CLAMP          uint32 = 1 << 0
	CORE_MEM_CLAMP uint32 = 1 << 1
	CORE_MEM_HS    uint32 = 1 << 2
	L2DT_SLP       uint32 = 1 << 3
	CORE_RST       uint32 = 1 << 4
	COREPOR_RST    uint32 = 1 << 5
	CORE_PWRD_UP   uint32 = 1 << 7
	PLL_CLAMP      uint32 = 1 << 8
)

// APC_PWR_GATE_CTL fields.
const (
	BHS_EN           uint32 = 1 << 0
	BHS_SEG_SHIFT           = 1
	LDO_BYP_SHIFT           = 8
	LDO_PWR_DWN_SHIFT       = 16
	BHS_CNT_SHIFT           = 24
)

// SAW (SPM and AVS wrapper) register offsets.
const (
	APCS_SAW2_VCTL   uint32 = 0x14
	APCS_SAW2_2_VCTL uint32 = 0x1c
)
