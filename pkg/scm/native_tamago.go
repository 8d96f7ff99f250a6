// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build tamago && arm

package scm

import (
	"runtime"
	"unsafe"
)

// Native returns a Caller that traps into the secure monitor with the SMC
// instruction. Only meaningful on the firmware build, where we run in
// non-secure EL1/SVC.
func Native() Caller {
	return &smcCaller{}
}

type smcCaller struct{}

// smcCall is implemented in smc_arm.s.
func smcCall(a0, a1, a2, a3, a4, a5, a6, a7 uint) int

func (c *smcCaller) V8() bool {
	// IS_CALL_AVAIL for BOOT_SET_ADDR_MC, issued with the ARMv8 convention.
	// Firmware that does not speak it fails the call itself.
	a := &Args{
		X0: SIPCmd(SVC_INFO, INFO_IS_CALL_AVAIL),
		X1: ArgsDesc(1),
		X2: SIPCmd(SVC_BOOT, BOOT_SET_ADDR_MC),
	}
	return c.Call(a) == nil
}

func (c *smcCaller) Call(a *Args) error {
	if r := smcCall(a.X0, a.X1, a.X2, a.X3, a.X4, a.X5[0], a.X5[1], a.X5[2]); r != 0 {
		return Error(r)
	}
	return nil
}

func (c *smcCaller) AtomicCall(svc, cmd, arg0, arg1 uint32) error {
	// The legacy convention wants a context ID pointer in r1. Memory is
	// identity mapped, so the stack address can be handed over as-is.
	var ctx uint32
	r := smcCall(uint(atomicID(svc, cmd, 2)), uint(uintptr(unsafe.Pointer(&ctx))),
		uint(arg0), uint(arg1), 0, 0, 0, 0)
	runtime.KeepAlive(&ctx)
	if r != 0 {
		return Error(r)
	}
	return nil
}
