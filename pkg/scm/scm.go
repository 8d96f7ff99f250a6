// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scm issues Qualcomm secure channel manager calls into trusted
// firmware. Two calling conventions exist: the ARMv8 SMC convention with up
// to eight register arguments, and the legacy register-based convention with
// two arguments. Which one applies is probed per call, never cached.
package scm

import (
	"fmt"

	"github.com/u-root/u-smp/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Boot service commands.
const (
	SVC_BOOT         uint32 = 0x1
	BOOT_SET_ADDR    uint32 = 0x01
	BOOT_SET_ADDR_MC uint32 = 0x11

	// Legacy BOOT_SET_ADDR flag word: cold boot all cores.
	BOOT_FLAG_COLD_ALL uint32 = 1<<0 | 1<<3 | 1<<5

	// BOOT_SET_ADDR_MC per-core flags word.
	BOOT_MC_FLAG_AARCH64  uint = 1 << 0
	BOOT_MC_FLAG_COLDBOOT uint = 1 << 1
	BOOT_MC_FLAG_WARMBOOT uint = 1 << 2
)

// Info service, used to probe for the ARMv8 convention.
const (
	SVC_INFO           uint32 = 0x6
	INFO_IS_CALL_AVAIL uint32 = 0x1
)

// Args is the register block for an ARMv8-convention call. X5 spills into
// x5, x6 and x7.
type Args struct {
	X0, X1, X2, X3, X4 uint
	X5                 [3]uint
}

// Caller abstracts the secure monitor so sequencer and boot code can be
// exercised against a recording fake.
type Caller interface {
	// V8 reports whether the firmware speaks the ARMv8 SMC convention.
	V8() bool
	// Call issues an ARMv8-convention call.
	Call(a *Args) error
	// AtomicCall issues a legacy two-argument register call.
	AtomicCall(svc, cmd, arg0, arg1 uint32) error
}

// Error is a nonzero return code from the secure monitor.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("scm call failed: %d", int(e))
}

// SIPCmd builds the x0 function word for a SIP service call.
func SIPCmd(svc, cmd uint32) uint {
	return uint(((svc<<8 | cmd) & 0xFFFF) | 0x02000000)
}

// ArgsDesc builds the x1 argument descriptor for n plain value arguments.
func ArgsDesc(n int) uint {
	return uint(n) & 0xf
}

// atomicID builds the legacy function word: register class, masked IRQs,
// service, command and argument count.
func atomicID(svc, cmd uint32, argc int) uint32 {
	return 0x2<<8 | 1<<5 | svc<<10 | cmd<<12 | uint32(argc)&0xf
}
