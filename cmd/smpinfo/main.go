// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// smpinfo prints the secondary CPU topology described by a device tree:
// one line per CPU with its MPIDR, enable method and power controller base.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/pkg/fdt"
)

var dtbPath = flag.String("dtb", "/sys/firmware/fdt", "Path to the device tree blob.")

func enableMethod(n *dt.Node) string {
	for _, p := range n.Properties {
		if p.Name == "enable-method" {
			return string(bytes.TrimRight(p.Value, "\x00"))
		}
	}
	return "?"
}

func main() {
	flag.Parse()

	b, err := os.ReadFile(*dtbPath)
	if err != nil {
		log.Fatalf("Read %s: %v", *dtbPath, err)
	}
	f, err := dt.ReadFDT(bytes.NewReader(b))
	if err != nil {
		log.Fatalf("Parse %s: %v", *dtbPath, err)
	}

	for _, cpu := range fdt.CPUNodes(f) {
		mpidr, err := fdt.Lookup(cpu, "reg", 0)
		if err != nil {
			log.Fatalf("CPU %s has no reg property: %v", cpu.Name, err)
		}
		acc := fdt.ReferenceReg(f, cpu, "qcom,acc", 0)
		fmt.Printf("%-10s mpidr %#08x  %-22s acc %#08x\n",
			cpu.Name, mpidr, enableMethod(cpu), acc)
	}
}
