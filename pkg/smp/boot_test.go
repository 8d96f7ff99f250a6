// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"testing"

	"github.com/u-root/u-root/pkg/dt"
)

func TestBootSkipsCurrentCPU(t *testing.T) {
	hw := fakeHardware(t)
	hw.cpu = 0x101
	cpu := cpuNode(0x101, 1)
	f := newFDT(
		&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}},
		regNode("acc", 1, []uint32{0xF9000000, 0x1000}),
	)

	res, err := New(hw, CortexA{}, f).Boot(cpu, 0x101)
	if err != nil {
		t.Fatalf("Boot: %v", err)
	}
	if res != Skipped {
		t.Errorf("Boot result %v, want %v", res, Skipped)
	}
	if len(hw.delays) != 0 {
		t.Errorf("Skipped boot delayed %v, want no delays", hw.delays)
	}
	hw.done()
}

func TestBootMissingACCFails(t *testing.T) {
	hw := fakeHardware(t)
	cpu := &dt.Node{Name: "cpu", Properties: []dt.Property{
		strp("device_type", "cpu"),
		u32p("reg", 1),
	}}
	f := newFDT(&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}})

	res, err := New(hw, CortexA{}, f).Boot(cpu, 1)
	if err == nil {
		t.Fatal("Boot succeeded without qcom,acc")
	}
	if res != Failed {
		t.Errorf("Boot result %v, want %v", res, Failed)
	}
	if len(hw.delays) != 0 {
		t.Errorf("Failed boot delayed %v, want no delays", hw.delays)
	}
	hw.done()
}

func TestBootUnresolvableACCFails(t *testing.T) {
	hw := fakeHardware(t)
	// The reference exists but no node carries its phandle.
	cpu := cpuNode(1, 9)
	f := newFDT(&dt.Node{Name: "cpus", Children: []*dt.Node{cpu}})

	res, err := New(hw, CortexA{}, f).Boot(cpu, 1)
	if err == nil {
		t.Fatal("Boot succeeded with dangling qcom,acc phandle")
	}
	if res != Failed {
		t.Errorf("Boot result %v, want %v", res, Failed)
	}
	hw.done()
}

func TestResultString(t *testing.T) {
	for r, want := range map[Result]string{
		Failed:  "failed",
		Booted:  "booted",
		Skipped: "skipped",
	} {
		if got := r.String(); got != want {
			t.Errorf("Result(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
