// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
)

func txWithLockTime(lockTime uint32) *btcutil.Tx {
	tx := wire.NewMsgTx(1)
	tx.LockTime = lockTime
	return btcutil.NewTx(tx)
}

func TestBuildMerkleTreeStoreSingleTx(t *testing.T) {
	tx := txWithLockTime(1)
	merkles := BuildMerkleTreeStore([]*btcutil.Tx{tx})

	want := *tx.Hash()
	assert.Equal(t, want, *merkles[len(merkles)-1])
}

func TestBuildMerkleTreeStoreOddCountDuplicatesLast(t *testing.T) {
	txs := []*btcutil.Tx{txWithLockTime(1), txWithLockTime(2), txWithLockTime(3)}
	merkles := BuildMerkleTreeStore(txs)
	assert.Len(t, merkles, 7) // nextPowerOfTwo(3)=4 -> 2*4-1

	root := merkles[len(merkles)-1]
	assert.NotNil(t, root)

	// The third leaf has no right sibling, so its parent hashes it with itself.
	assert.Equal(t, HashMerkleBranches(merkles[2], merkles[2]), *merkles[5])
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 9: 16}
	for in, want := range cases {
		assert.Equal(t, want, nextPowerOfTwo(in))
	}
}
