// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

// SetBootAddr programs the entry address that every secondary core jumps to
// when released. It must be called exactly once, before any core is powered
// up; the power sequencers assume the address is already in place.
//
// The multi-core BOOT_SET_ADDR_MC call covers all cores (full MPIDR masks)
// for cold boot. Firmware without the ARMv8 convention gets the legacy
// BOOT_SET_ADDR call instead.
func SetBootAddr(c Caller, addr uint, arm64 bool) error {
	var aarch64 uint
	if arm64 {
		aarch64 = BOOT_MC_FLAG_AARCH64
	}
	if c.V8() {
		return c.Call(&Args{
			X0: SIPCmd(SVC_BOOT, BOOT_SET_ADDR_MC),
			X1: ArgsDesc(6),
			X2: addr,
			X3: ^uint(0),
			X4: ^uint(0),
			X5: [3]uint{^uint(0), ^uint(0), aarch64 | BOOT_MC_FLAG_COLDBOOT},
		})
	}

	log.Infof("Falling back to legacy BOOT_SET_ADDR call")
	return c.AtomicCall(SVC_BOOT, BOOT_SET_ADDR, BOOT_FLAG_COLD_ALL, uint32(addr))
}
