// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !arm && !arm64

package smp

// No device memory barrier exists off ARM; the hosted debug build on other
// architectures only ever talks to emulated registers.
func barrier() {}
