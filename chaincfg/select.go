// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

var current *Params

// Select installs the parameters for network ("main", "test", or "regtest")
// as the process-wide active network. It mirrors the original
// implementation's SelectParams: call once, early, from a main package.
func Select(network string) error {
	p, err := create(network)
	if err != nil {
		return err
	}
	current = p
	return nil
}

// Current returns the process-wide active network parameters installed by
// Select. Reading it before Select has been called is a programmer error —
// the original implementation asserts globalChainParams is non-null for the
// same reason — so this panics rather than returning a zero value that
// would silently validate against the wrong network.
func Current() *Params {
	if current == nil {
		panic("chaincfg: Current called before Select")
	}
	return current
}

// create returns the parameters for the named network without installing
// them as the process-wide active set.
func create(network string) (*Params, error) {
	switch network {
	case "main":
		return &MainNetParams, nil
	case "test":
		return &TestNetParams, nil
	case "regtest":
		return &RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}
}
