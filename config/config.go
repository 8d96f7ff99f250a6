// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
)

type Version struct {
	Version string
	GitHash string
}

// Config carries the few knobs the bring-up stage has. Everything else is
// read from the device tree of the target.
type Config struct {
	// EntryAddr is the address every released secondary core jumps to.
	EntryAddr uint
	// Arm64 selects the aarch64 cold boot flag for the firmware call.
	Arm64 bool
	// DTBPath is where the hosted build reads the device tree from.
	DTBPath string
	Version Version
}

var DefaultConfig = &Config{
	// The secondary entry trampoline is linked at a fixed address; boards
	// override this when their memory map differs.
	EntryAddr: 0x8F600000,
	Arm64:     false,
	DTBPath:   "/sys/firmware/fdt",

	Version: Version{
		Version: "0.1",
		GitHash: "",
	},
}

// EntryAddr narrows a user supplied address to the target's word size. The
// firmware call takes a machine word; on 32-bit targets a wider address
// would be truncated silently.
func EntryAddr(addr uint64) (uint, error) {
	if addr > uint64(^uint(0)) {
		return 0, fmt.Errorf("entry address %#x exceeds the target word size", addr)
	}
	return uint(addr), nil
}
