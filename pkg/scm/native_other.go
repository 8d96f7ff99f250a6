// Copyright 2023 the u-root Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(tamago && arm)

package scm

import "errors"

// ErrUnsupported is returned by the native caller on builds without a secure
// monitor to trap into.
var ErrUnsupported = errors.New("scm: no secure monitor on this platform")

func Native() Caller {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) V8() bool         { return false }
func (unsupported) Call(*Args) error { return ErrUnsupported }
func (unsupported) AtomicCall(svc, cmd, arg0, arg1 uint32) error {
	return ErrUnsupported
}
