// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTxSource struct {
	calls int
	tx    *wire.MsgTx
	found bool
}

func (c *countingTxSource) FindTxByHashAndHeight(txHash chainhash.Hash, height int32) (*wire.MsgTx, int32, bool) {
	c.calls++
	return c.tx, height, c.found
}

func TestCachingTxByHeightSourceCachesHits(t *testing.T) {
	underlying := &countingTxSource{tx: wire.NewMsgTx(1), found: true}
	cache := NewCachingTxByHeightSource(underlying, 8)

	var hash chainhash.Hash
	hash[0] = 0x01

	tx1, height1, found1 := cache.FindTxByHashAndHeight(hash, 42)
	require.True(t, found1)
	assert.Equal(t, int32(42), height1)
	assert.Same(t, underlying.tx, tx1)
	assert.Equal(t, 1, underlying.calls)

	_, _, found2 := cache.FindTxByHashAndHeight(hash, 42)
	require.True(t, found2)
	assert.Equal(t, 1, underlying.calls, "second lookup should be served from cache")
}

func TestCachingTxByHeightSourceDoesNotCacheMisses(t *testing.T) {
	underlying := &countingTxSource{found: false}
	cache := NewCachingTxByHeightSource(underlying, 8)

	var hash chainhash.Hash
	hash[0] = 0x02

	_, _, found := cache.FindTxByHashAndHeight(hash, 10)
	require.False(t, found)
	assert.Equal(t, 1, underlying.calls)

	_, _, found = cache.FindTxByHashAndHeight(hash, 10)
	require.False(t, found)
	assert.Equal(t, 2, underlying.calls, "a miss should not be cached")
}
