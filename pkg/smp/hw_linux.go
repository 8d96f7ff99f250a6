// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package smp

import (
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// Native returns a /dev/mem backed implementation for poking the power
// registers from a hosted debug build. Mappings are kept per page instead of
// being torn down after every access.
//
// Interrupt masking is a privileged operation and does not exist here; the
// hosted build relies on the registers only ever being written from this one
// process. CurrentCPU always reports the boot core.
func Native() Hardware {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0600)
	if err != nil {
		panic(err)
	}
	return &devMem{f: f, pages: make(map[uint32][]byte)}
}

type devMem struct {
	f *os.File

	mu    sync.Mutex
	pages map[uint32][]byte
}

func (m *devMem) page(addr uint32) ([]byte, uint32) {
	ps := uint32(unix.Getpagesize())
	base := addr &^ (ps - 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.pages[base]; ok {
		return p, addr - base
	}
	p, err := unix.Mmap(int(m.f.Fd()), int64(base), int(ps),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		panic(err)
	}
	m.pages[base] = p
	return p, addr - base
}

func (m *devMem) Read32(addr uint32) uint32 {
	p, off := m.page(addr)
	return hostEndian.Uint32(p[off:])
}

func (m *devMem) Write32(addr uint32, data uint32) {
	p, off := m.page(addr)
	hostEndian.PutUint32(p[off:], data)
}

func (m *devMem) Barrier() {
	barrier()
}

func (m *devMem) Udelay(us int) {
	d := time.Duration(us) * time.Microsecond
	for start := time.Now(); time.Since(start) < d; {
	}
}

func (m *devMem) MaskInterrupts() func() {
	return func() {}
}

func (m *devMem) CurrentCPU() uint32 {
	return 0
}

func (m *devMem) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for base, p := range m.pages {
		_ = unix.Munmap(p)
		delete(m.pages, base)
	}
	return m.f.Close()
}
