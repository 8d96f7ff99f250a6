// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"math/bits"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	if DefaultConfig.EntryAddr == 0 {
		t.Fatal("DefaultConfig.EntryAddr must not be zero")
	}
	if DefaultConfig.DTBPath == "" {
		t.Fatal("DefaultConfig.DTBPath must not be empty")
	}
}

func TestEntryAddr(t *testing.T) {
	v, err := EntryAddr(0x8F600000)
	if err != nil {
		t.Fatalf("EntryAddr: %v", err)
	}
	if v != 0x8F600000 {
		t.Errorf("EntryAddr = %#x, want 0x8F600000", v)
	}
	// The full word range is usable.
	if _, err := EntryAddr(uint64(^uint(0))); err != nil {
		t.Errorf("EntryAddr rejected the word-size maximum: %v", err)
	}
	if bits.UintSize == 32 {
		if _, err := EntryAddr(math.MaxUint64); err == nil {
			t.Error("EntryAddr accepted an address beyond the word size")
		}
	}
}
