// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/decred/dcrd/lru"
)

// cachedBCT is the deep-drill result this package caches: the transaction a
// block-scan fallback located, and the height it was found at.
type cachedBCT struct {
	tx     *wire.MsgTx
	height int32
}

// CachingTxByHeightSource wraps a TxByHeightSource with a bounded
// least-recently-used cache keyed by txid, so repeated Hive-proof checks
// against the same recent BCT (common while a tip is contested between
// competing miners) don't re-walk history on every candidate block.
type CachingTxByHeightSource struct {
	underlying TxByHeightSource
	cache      *lru.Cache[chainhash.Hash, cachedBCT]
}

// NewCachingTxByHeightSource wraps underlying with an LRU of the given
// capacity.
func NewCachingTxByHeightSource(underlying TxByHeightSource, capacity uint) *CachingTxByHeightSource {
	return &CachingTxByHeightSource{
		underlying: underlying,
		cache:      lru.NewCache[chainhash.Hash, cachedBCT](capacity),
	}
}

// FindTxByHashAndHeight is part of the TxByHeightSource interface.
func (c *CachingTxByHeightSource) FindTxByHashAndHeight(txHash chainhash.Hash, height int32) (*wire.MsgTx, int32, bool) {
	if hit, ok := c.cache.Get(txHash); ok {
		return hit.tx, hit.height, true
	}

	tx, foundHeight, found := c.underlying.FindTxByHashAndHeight(txHash, height)
	if found {
		c.cache.Add(txHash, cachedBCT{tx: tx, height: foundHeight})
	}
	return tx, foundHeight, found
}
