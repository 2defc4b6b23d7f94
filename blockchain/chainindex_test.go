// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// testEntry and testIndexer give the retarget and versionbits tests a
// minimal, in-memory BlockIndexer/Entry pair to walk, without pulling in a
// real block database.
type testEntry struct {
	hash    chainhash.Hash
	height  int32
	t       time.Time
	bits    uint32
	version int32
	isHive  bool
	powType PowType
}

func (e *testEntry) Hash() chainhash.Hash { return e.hash }
func (e *testEntry) Height() int32        { return e.height }
func (e *testEntry) Time() time.Time      { return e.t }
func (e *testEntry) Bits() uint32         { return e.bits }
func (e *testEntry) Header() *wire.BlockHeader {
	return &wire.BlockHeader{Version: e.version, Timestamp: e.t, Bits: e.bits}
}
func (e *testEntry) IsHive() bool      { return e.isHive }
func (e *testEntry) PowType() PowType { return e.powType }

type testIndexer struct {
	chain []*testEntry // genesis first, tip last
}

func (c *testIndexer) Tip() Entry {
	if len(c.chain) == 0 {
		return nil
	}
	return c.chain[len(c.chain)-1]
}

func (c *testIndexer) Prev(e Entry) Entry {
	te := e.(*testEntry)
	if te.height == 0 {
		return nil
	}
	return c.chain[te.height-1]
}

func (c *testIndexer) LookupHash(hash chainhash.Hash) Entry {
	for _, e := range c.chain {
		if e.hash == hash {
			return e
		}
	}
	return nil
}

// buildChain constructs a testIndexer of n blocks, each spaced spacing
// seconds apart, starting at genesis time base, all at the given bits and
// PowType, none of them Hive blocks.
func buildChain(n int, base time.Time, spacing time.Duration, bits uint32, powType PowType) *testIndexer {
	idx := &testIndexer{}
	for i := 0; i < n; i++ {
		e := &testEntry{
			height:  int32(i),
			t:       base.Add(time.Duration(i) * spacing),
			bits:    bits,
			powType: powType,
		}
		e.hash[0] = byte(i)
		e.hash[1] = byte(i >> 8)
		idx.chain = append(idx.chain, e)
	}
	return idx
}
