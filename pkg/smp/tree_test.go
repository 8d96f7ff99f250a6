// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smp

import (
	"encoding/binary"

	"github.com/u-root/u-root/pkg/dt"
)

func u32p(name string, vals ...uint32) dt.Property {
	b := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return dt.Property{Name: name, Value: b}
}

func strp(name, val string) dt.Property {
	return dt.Property{Name: name, Value: append([]byte(val), 0)}
}

func newFDT(children ...*dt.Node) *dt.FDT {
	return &dt.FDT{RootNode: &dt.Node{Name: "/", Children: children}}
}

// cpuNode builds a cpu node with an ACC reference to phandle accPh, plus
// any extra properties the strategy under test needs.
func cpuNode(mpidr uint32, accPh uint32, extra ...dt.Property) *dt.Node {
	props := []dt.Property{
		strp("device_type", "cpu"),
		u32p("reg", mpidr),
		u32p("qcom,acc", accPh),
	}
	return &dt.Node{Name: "cpu", Properties: append(props, extra...)}
}

// regNode builds a phandle target carrying reg tuples.
func regNode(name string, ph uint32, regs []uint32, extra ...dt.Property) *dt.Node {
	props := []dt.Property{
		u32p("phandle", ph),
		u32p("reg", regs...),
	}
	return &dt.Node{Name: name, Properties: append(props, extra...)}
}
