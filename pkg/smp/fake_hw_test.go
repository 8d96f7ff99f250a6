// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"fmt"
	"testing"
)

type op struct {
	write bool
	addr  uint32
	data  uint32
}

// fakeHW scripts the expected register traffic of a power sequence and
// fails the test on any deviation. Delays and interrupt masking are
// recorded on the side.
type fakeHW struct {
	t   *testing.T
	ops []op

	cpu      uint32
	delays   []int
	barriers int
	maskLvl  int
	masked   int
	closes   int
}

func fakeHardware(t *testing.T) *fakeHW {
	return &fakeHW{t: t}
}

func opstr(o *op) string {
	k := "read"
	if o.write {
		k = "write"
	}
	return fmt.Sprintf("{%s @ %08x = %08x}", k, o.addr, o.data)
}

func (m *fakeHW) Read32(a uint32) uint32 {
	if len(m.ops) == 0 {
		m.t.Errorf("Unexpected read on %08x", a)
		return 0
	}
	o := m.ops[0]
	m.ops = m.ops[1:]
	if o.write || o.addr != a {
		m.t.Errorf("Expected %s, got read on %08x", opstr(&o), a)
	}
	return o.data
}

func (m *fakeHW) Write32(a uint32, d uint32) {
	if len(m.ops) == 0 {
		m.t.Errorf("Unexpected write of %08x on %08x", d, a)
		return
	}
	o := m.ops[0]
	m.ops = m.ops[1:]
	if !o.write || o.addr != a || o.data != d {
		m.t.Errorf("Expected %s, got write of %08x on %08x", opstr(&o), d, a)
	}
}

func (m *fakeHW) Barrier() {
	m.barriers++
}

func (m *fakeHW) Udelay(us int) {
	m.delays = append(m.delays, us)
}

func (m *fakeHW) MaskInterrupts() func() {
	m.maskLvl++
	m.masked++
	return func() { m.maskLvl-- }
}

func (m *fakeHW) CurrentCPU() uint32 {
	return m.cpu
}

func (m *fakeHW) Close() error {
	m.closes++
	return nil
}

func (m *fakeHW) ExpectWrite32(a uint32, d uint32) {
	m.ops = append(m.ops, op{true, a, d})
}

func (m *fakeHW) FakeRead32(a uint32, d uint32) {
	m.ops = append(m.ops, op{false, a, d})
}

// done verifies the script ran to completion and masking was balanced.
func (m *fakeHW) done() {
	m.t.Helper()
	for _, o := range m.ops {
		m.t.Errorf("Expected %s, got nothing", opstr(&o))
	}
	if m.maskLvl != 0 {
		m.t.Errorf("Interrupt mask depth %d after sequence, want 0", m.maskLvl)
	}
	if m.closes != 0 {
		m.t.Errorf("Hardware closed %d times by the sequence, want 0", m.closes)
	}
}
