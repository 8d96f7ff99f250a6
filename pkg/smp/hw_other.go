// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !(tamago && arm)

package smp

// Native has no register access on this platform.
func Native() Hardware {
	panic("smp: no native hardware access on this platform")
}
