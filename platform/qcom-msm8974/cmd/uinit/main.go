// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/spf13/afero"
	"github.com/u-root/u-root/pkg/dt"

	"github.com/u-root/u-smp/config"
	"github.com/u-root/u-smp/pkg/bio"
	"github.com/u-root/u-smp/pkg/boot"
	"github.com/u-root/u-smp/pkg/logger"
	"github.com/u-root/u-smp/pkg/metric"
	"github.com/u-root/u-smp/pkg/scm"
	"github.com/u-root/u-smp/platform/qcom-msm8974/pkg/platform"
)

var log = logger.LogContainer.GetSimpleLogger()

func main() {
	cfg := config.DefaultConfig
	dtbPath := flag.String("dtb", cfg.DTBPath, "device tree blob to resolve registers from")
	entry := flag.Uint64("entry", uint64(cfg.EntryAddr), "secondary core entry address")
	flag.Parse()
	ea, err := config.EntryAddr(*entry)
	if err != nil {
		log.Fatalf("Invalid entry address: %v", err)
	}
	cfg.EntryAddr = ea

	f, err := os.Open(*dtbPath)
	if err != nil {
		log.Fatalf("Cannot open device tree: %v", err)
	}
	tree, err := dt.ReadFDT(f)
	f.Close()
	if err != nil {
		log.Fatalf("Cannot parse device tree %s: %v", *dtbPath, err)
	}

	hw := platform.Hardware()
	defer hw.Close()

	if err := boot.StartSecondaries(hw, platform.Sequencer(), scm.Native(), tree, cfg); err != nil {
		log.Fatalf("Secondary bring-up aborted: %v", err)
	}
	metric.Write(os.Stdout)

	if err := bio.Discover(afero.NewOsFs(), bio.Default); err != nil {
		log.Infof("No block devices discovered: %v", err)
	}
	bio.Default.Dump(os.Stdout)
}
