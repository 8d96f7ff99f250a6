// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"testing"

	"github.com/u-root/u-root/pkg/dt"
)

func expectCortexACore(hw *fakeHW, base uint32) {
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x33)
	hw.ExpectWrite32(base+APC_PWR_GATE_CTL, 0x10000001)
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x31)
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x35)
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x34)
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x04)
	hw.ExpectWrite32(base+CPU_PWR_CTL, 0x84)
}

// A missing clocks reference is not an error: single-cluster SoCs have the
// L2 powered already and only the core sequence runs.
func TestCortexABootNoClocks(t *testing.T) {
	const acc = 0xF9000000
	hw := fakeHardware(t)
	cpu := cpuNode(1, 1)
	f := newFDT(
		&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}},
		regNode("acc", 1, []uint32{acc, 0x1000}),
	)

	expectCortexACore(hw, acc)

	res, err := New(hw, CortexA{}, f).Boot(cpu, 1)
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	if res != Booted {
		t.Errorf("Boot result %v, want %v", res, Booted)
	}
	if n := len(hw.delays); n == 0 || hw.delays[n-1] != 100 {
		t.Errorf("No settle delay after boot, delays %v", hw.delays)
	}
	hw.done()
}

func TestCortexABootPowersL2(t *testing.T) {
	const (
		acc  = 0xF9088000
		apcs = 0xF9010000
	)
	hw := fakeHardware(t)
	cpu := cpuNode(1, 1, u32p("clocks", 2))
	f := newFDT(
		&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}},
		regNode("acc", 1, []uint32{acc, 0x1000}),
		regNode("apcs", 2, []uint32{apcs, 0x1000}),
	)

	hw.FakeRead32(apcs+L2_PWR_STATUS, 0)
	hw.ExpectWrite32(apcs+L2_PWR_CTL, 0x10D700)
	hw.ExpectWrite32(apcs+L2_PWR_CTL_OVERRIDE, 0x400000)
	hw.ExpectWrite32(apcs+L2_PWR_CTL, 0x101700)
	hw.ExpectWrite32(apcs+L2_PWR_CTL, 0x101703)
	hw.ExpectWrite32(apcs+L2_CORE_CBCR, 0x01)
	hw.ExpectWrite32(apcs+L2_PWR_CTL, 0x101603)
	hw.ExpectWrite32(apcs+L2_PWR_CTL_OVERRIDE, 0x0)
	hw.ExpectWrite32(apcs+L2_PWR_CTL, 0x903603)
	hw.ExpectWrite32(apcs+L2_CORE_CBCR, 0x4501)
	expectCortexACore(hw, acc)

	res, err := New(hw, CortexA{}, f).Boot(cpu, 1)
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	if res != Booted {
		t.Errorf("Boot result %v, want %v", res, Booted)
	}
	if hw.masked != 2 {
		t.Errorf("MaskInterrupts called %d times, want 2", hw.masked)
	}
	hw.done()
}

func TestCortexASkipsPoweredL2(t *testing.T) {
	const (
		acc  = 0xF9088000
		apcs = 0xF9010000
	)
	hw := fakeHardware(t)
	cpu := cpuNode(1, 1, u32p("clocks", 2))
	f := newFDT(
		&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}},
		regNode("acc", 1, []uint32{acc, 0x1000}),
		regNode("apcs", 2, []uint32{apcs, 0x1000}),
	)

	hw.FakeRead32(apcs+L2_PWR_STATUS, L2_PWR_STATUS_L2_HS_STS)
	expectCortexACore(hw, acc)

	if _, err := New(hw, CortexA{}, f).Boot(cpu, 1); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	hw.done()
}
