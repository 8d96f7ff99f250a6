// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package platform fixes the bring-up strategy for msm8916 class boards.
// Importing more than one platform package into an image is a bug; each
// image gets exactly one sequencer.
package platform

import (
	"github.com/u-root/u-smp/pkg/smp"
)

// Sequencer returns the power sequencer for this target.
func Sequencer() smp.Sequencer {
	return smp.CortexA{}
}

// Hardware returns the register access for this target.
func Hardware() smp.Hardware {
	return smp.Native()
}
