// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform fixes the bring-up strategy for msm8992/8994 boards,
// whose big cluster needs the L2 cache and supply rail powered before the
// cores.
package platform

import (
	"github.com/u-root/u-smp/pkg/smp"
)

func Sequencer() smp.Sequencer {
	return smp.MSM8994{}
}

func Hardware() smp.Hardware {
	return smp.Native()
}
