// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && (arm || arm64)

package smp

// Implemented in barrier_linux_*.s.
func barrier()
