// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGenesisBlockHashesMatchRegisteredConstants guards against the genesis
// block literal ever drifting from the hash every other network constant
// (checkpoints, assumed-valid heights) is defined relative to.
func TestGenesisBlockHashesMatchRegisteredConstants(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
	}{
		{"main", &MainNetParams},
		{"test", &TestNetParams},
		{"regtest", &RegressionNetParams},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			computed := tc.params.GenesisBlock.Header.BlockHash()
			assert.Equal(t, *tc.params.GenesisHash, computed)
		})
	}
}

func TestGenesisBlockHasSingleCoinbaseTransaction(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		assert.Len(t, params.GenesisBlock.Transactions, 1)
		tx := params.GenesisBlock.Transactions[0]
		assert.Len(t, tx.TxIn, 1)
		assert.Equal(t, uint32(0xffffffff), tx.TxIn[0].PreviousOutPoint.Index)
	}
}

func TestGenesisBlockMerkleRootMatchesCoinbaseHash(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		coinbaseHash := params.GenesisBlock.Transactions[0].TxHash()
		assert.Equal(t, coinbaseHash, params.GenesisBlock.Header.MerkleRoot)
	}
}
