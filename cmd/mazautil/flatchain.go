// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/balabhaskar27/maza/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// flatEntry is one line of a flat-file block dump: height, hash, prev hash,
// bits, unix time, nonce, version (a block is Hive-mined when its nonce
// equals the network's HiveNonceMarker). This is the toy on-disk
// format mazautil reads instead of a full block database, so the library's
// retarget and PoW-check code can be exercised against a hand-built chain
// without standing up the out-of-scope networking/storage stack.
type flatEntry struct {
	hash    chainhash.Hash
	prev    chainhash.Hash
	height  int32
	bits    uint32
	t       time.Time
	nonce   uint32
	version int32
}

func (e *flatEntry) Hash() chainhash.Hash { return e.hash }
func (e *flatEntry) Height() int32        { return e.height }
func (e *flatEntry) Time() time.Time      { return e.t }
func (e *flatEntry) Bits() uint32         { return e.bits }
func (e *flatEntry) Header() *wire.BlockHeader {
	return &wire.BlockHeader{
		Version:   e.version,
		PrevBlock: e.prev,
		Timestamp: e.t,
		Bits:      e.bits,
		Nonce:     e.nonce,
	}
}
func (e *flatEntry) IsHive() bool                  { return e.nonce == hiveNonceMarker }
func (e *flatEntry) PowType() blockchain.PowType   { return blockchain.HeaderPowType(e.Header()) }

// hiveNonceMarker is set by loadFlatChain from the active network's
// parameters before any entry is constructed.
var hiveNonceMarker uint32

// flatChain is an in-memory BlockIndexer over a loaded flat-file dump,
// ordered by height.
type flatChain struct {
	byHeight []*flatEntry
	byHash   map[chainhash.Hash]*flatEntry
}

func (c *flatChain) Tip() blockchain.Entry {
	if len(c.byHeight) == 0 {
		return nil
	}
	return c.byHeight[len(c.byHeight)-1]
}

func (c *flatChain) Prev(e blockchain.Entry) blockchain.Entry {
	fe := e.(*flatEntry)
	if fe.height == 0 {
		return nil
	}
	prev, ok := c.byHash[fe.prev]
	if !ok {
		return nil
	}
	return prev
}

func (c *flatChain) LookupHash(hash chainhash.Hash) blockchain.Entry {
	e, ok := c.byHash[hash]
	if !ok {
		return nil
	}
	return e
}

// loadFlatChain parses a flat-file block dump. Each non-empty, non-comment
// line is: height hash prevhash bits time nonce version
func loadFlatChain(path string, nonceMarker uint32) (*flatChain, error) {
	hiveNonceMarker = nonceMarker

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	chain := &flatChain{byHash: make(map[chainhash.Hash]*flatEntry)}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 7 {
			return nil, fmt.Errorf("malformed line %q: expected 7 fields, got %d", line, len(fields))
		}

		height, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad height %q: %w", fields[0], err)
		}
		hash, err := chainhash.NewHashFromStr(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad hash %q: %w", fields[1], err)
		}
		prev, err := chainhash.NewHashFromStr(fields[2])
		if err != nil {
			return nil, fmt.Errorf("bad prev hash %q: %w", fields[2], err)
		}
		bits, err := strconv.ParseUint(fields[3], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad bits %q: %w", fields[3], err)
		}
		unixTime, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad time %q: %w", fields[4], err)
		}
		nonce, err := strconv.ParseUint(fields[5], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad nonce %q: %w", fields[5], err)
		}
		version, err := strconv.ParseInt(fields[6], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad version %q: %w", fields[6], err)
		}

		entry := &flatEntry{
			hash:    *hash,
			prev:    *prev,
			height:  int32(height),
			bits:    uint32(bits),
			t:       time.Unix(unixTime, 0).UTC(),
			nonce:   uint32(nonce),
			version: int32(version),
		}
		chain.byHeight = append(chain.byHeight, entry)
		chain.byHash[entry.hash] = entry
	}

	return chain, scanner.Err()
}
