// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdt resolves hardware register addresses from a flattened device
// tree. It layers named-property and phandle lookups on top of the u-root
// dt parser; the tree itself is owned by the platform and only ever read.
//
// All lookups follow the convention that a zero register address means
// "resolution failed". Callers must not touch hardware after seeing a zero.
package fdt

import (
	"encoding/binary"
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/logger"
)

var log = logger.LogContainer.GetSimpleLogger()

// Lookup reads the property name on node n as an array of 32-bit big-endian
// words and returns the word at index. Unlike PropertyValue it reports
// failure out of band, for properties where 0 is a legal value.
func Lookup(n *dt.Node, name string, index int) (uint32, error) {
	p, ok := lookProperty(n, name)
	if !ok {
		return 0, fmt.Errorf("node %s has no %s property", n.Name, name)
	}
	if len(p.Value) < (index+1)*4 {
		return 0, fmt.Errorf("property %s of node %s is %d bytes, need %d",
			name, n.Name, len(p.Value), (index+1)*4)
	}
	return binary.BigEndian.Uint32(p.Value[index*4:]), nil
}

// PropertyValue reads word index of the property name on node n.
//
// Example node:
//
//	somenode {
//		someproperty = <1 2 3 4>;
//	};
//
// PropertyValue(somenode, "someproperty", 1) returns 2.
//
// Returns 0 and logs a critical diagnostic if the property is absent or
// shorter than index+1 words.
func PropertyValue(n *dt.Node, name string, index int) uint32 {
	v, err := Lookup(n, name, index)
	if err != nil {
		log.Errorf("Cannot read %s property of node %s: %v", name, n.Name, err)
		return 0
	}
	return v
}

// PhandleNode follows the phandle stored in the property prop of node n and
// returns the node it points at.
func PhandleNode(f *dt.FDT, n *dt.Node, prop string) (*dt.Node, error) {
	ph, err := Lookup(n, prop, 0)
	if err != nil {
		return nil, err
	}
	target := nodeByPhandle(f.RootNode, ph)
	if target == nil {
		return nil, fmt.Errorf("no node with phandle %#x (%s of %s)", ph, prop, n.Name)
	}
	return target, nil
}

// ReferenceReg resolves the phandle property prop of node n to a target node
// and returns the address of the target's reg tuple tupleIndex. reg holds
// (address, size) pairs, so tuple i starts at word 2*i.
//
// Example:
//
//	l2ccc_0: clock-controller@f900d000 {
//		reg = <0xf900d000 0x1000>;
//		qcom,vctl-node = <&cluster0_spm>;
//	};
//
//	cluster0_spm: qcom,spm@f9012000 {
//		reg = <0xf9012000 0x1000>,
//		      <0xf900d210 0x8>;
//	};
//
// ReferenceReg(f, l2ccc_0, "qcom,vctl-node", 1) returns 0xf900d210.
//
// Returns 0 and logs a critical diagnostic if the reference cannot be
// resolved; a short or missing reg on the target is reported the same way.
func ReferenceReg(f *dt.FDT, n *dt.Node, prop string, tupleIndex int) uint32 {
	target, err := PhandleNode(f, n, prop)
	if err != nil {
		log.Errorf("Cannot find %s node in %s: %v", prop, n.Name, err)
		return 0
	}
	return PropertyValue(target, "reg", tupleIndex*2)
}

// CPUNodes returns the CPU nodes of the tree: the children of /cpus whose
// device_type is "cpu". Order follows the tree.
func CPUNodes(f *dt.FDT) []*dt.Node {
	var cpus []*dt.Node
	for _, n := range f.RootNode.Children {
		if n.Name != "cpus" {
			continue
		}
		for _, c := range n.Children {
			if p, ok := lookProperty(c, "device_type"); ok && cstring(p.Value) == "cpu" {
				cpus = append(cpus, c)
			}
		}
	}
	return cpus
}

func lookProperty(n *dt.Node, name string) (*dt.Property, bool) {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return &n.Properties[i], true
		}
	}
	return nil, false
}

func nodeByPhandle(n *dt.Node, ph uint32) *dt.Node {
	for _, name := range []string{"phandle", "linux,phandle"} {
		if p, ok := lookProperty(n, name); ok && len(p.Value) == 4 {
			if binary.BigEndian.Uint32(p.Value) == ph {
				return n
			}
		}
	}
	for _, c := range n.Children {
		if m := nodeByPhandle(c, ph); m != nil {
			return m
		}
	}
	return nil
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
