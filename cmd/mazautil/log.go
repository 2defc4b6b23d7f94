// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/balabhaskar27/maza/blockchain"
	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
)

var log = btclog.NewBackend(os.Stdout).Logger("MAZU")

var logRotator *rotator.Rotator

// initLogRotator sets up a rotating file logger at logFile, mirroring the
// pattern a full btcd-style daemon uses: stdout for interactive use, a
// rotated file for anything left running as a service.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o700); err != nil {
			return err
		}
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r

	backend := btclog.NewBackend(r)
	log = backend.Logger("MAZU")
	chaincfg.UseLogger(backend.Logger("CHCF"))
	blockchain.UseLogger(backend.Logger("CHAN"))
	return nil
}
