// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"encoding/binary"
)

// Every SoC family handled here runs little-endian.
var hostEndian binary.ByteOrder = binary.LittleEndian
