// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform fixes the bring-up strategy for apq8064/msm8960 class
// boards (first generation Krait).
package platform

import (
	"github.com/u-root/u-smp/pkg/smp"
)

func Sequencer() smp.Sequencer {
	return smp.KPSSv1{}
}

func Hardware() smp.Hardware {
	return smp.Native()
}
