// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// PowType identifies which proof-of-work algorithm a header was mined
// under. It is carried in the high bits of the block version the same way
// the deployment bits are, so a header's algorithm is self-describing
// without consulting the block index.
type PowType int

const (
	PowTypeSHA256D PowType = iota
	PowTypeMinotaurX
)

// powTypeBit mirrors the original chain's header encoding: a Hive-mined
// block is marked by its nonce (HiveNonceMarker, see IsHiveMined), and a
// PoW-mined block's algorithm is read from bit 9 of the version field (bit
// 8 is reserved and always set alongside it, as the live miner does).
const powTypeBit = 1 << 9

// IsHiveMined reports whether a header was produced by the Hive bee-hash
// puzzle rather than by proof-of-work, per the network's configured nonce
// marker.
func IsHiveMined(header *wire.BlockHeader, hiveNonceMarker uint32) bool {
	return header.Nonce == hiveNonceMarker
}

// HeaderPowType extracts which proof-of-work algorithm produced header,
// reading the dedicated version bit the miner sets alongside the ordinary
// BIP9 signaling bits. Callers must first confirm the header is not
// Hive-mined; PowType is meaningless for a Hive block.
func HeaderPowType(header *wire.BlockHeader) PowType {
	if header.Version&powTypeBit != 0 {
		return PowTypeMinotaurX
	}
	return PowTypeSHA256D
}

// BlockIndexer is the minimal, read-only backward-iteration contract the
// retargeters and the Hive validator consume. Implementations own no
// mutable state visible to callers; entries are addressed by opaque
// identity (Entry) and are never freed out from under a caller walking
// backwards via Prev.
//
// This supersedes the full on-disk BlockChain/blockNode graph: every
// consumer in this package only ever needs to walk backwards from a
// starting point, so the contract is kept to exactly that.
type BlockIndexer interface {
	// Tip returns the current best-known entry, or nil if the indexer is
	// empty.
	Tip() Entry

	// Prev returns the parent of e, or nil if e is the genesis entry.
	Prev(e Entry) Entry

	// LookupHash returns the entry for hash, or nil if it is not present.
	LookupHash(hash chainhash.Hash) Entry
}

// Entry is a read-only view of one block's header metadata, as stored by a
// BlockIndexer.
type Entry interface {
	Hash() chainhash.Hash
	Height() int32
	Time() time.Time
	Bits() uint32
	Header() *wire.BlockHeader
	IsHive() bool
	PowType() PowType
}
