// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/btcsuite/btclog"

// log is the package-level logger. Disabled by default; a host binary wires
// in a real backend with UseLogger. No function in this package writes to
// it.
var log = btclog.Disabled

// UseLogger sets the package-wide logger.
func UseLogger(logger btclog.Logger) {
	log = logger
}
