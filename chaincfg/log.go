// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/btcsuite/btclog"

// log is the package-level logger. It is disabled by default, the standard
// btcsuite convention; a host application wires a real backend in with
// UseLogger. No function in this package writes to it.
var log = btclog.Disabled

// UseLogger sets the package-wide logger. This is the same
// log.go/UseLogger idiom every btcsuite subpackage exposes so a single host
// binary can route every subsystem's log lines through one backend.
func UseLogger(logger btclog.Logger) {
	log = logger
}
