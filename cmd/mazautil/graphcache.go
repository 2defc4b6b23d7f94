// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"

	"github.com/balabhaskar27/maza/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/syndtr/goleveldb/leveldb"
)

// graphCache persists the last computed bee population graph keyed by the
// tip hash it was computed against, so repeated hive-census runs against an
// unchanged tip skip the full rescan. This caches only this module's own
// derived output; it never touches the out-of-scope on-disk block store.
type graphCache struct {
	db *leveldb.DB
}

func openGraphCache(dir string) (*graphCache, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &graphCache{db: db}, nil
}

func (c *graphCache) Close() error {
	return c.db.Close()
}

// serializedGraphPointSize is 8 bytes immature + 8 bytes mature pop, per
// bucket.
const serializedGraphPointSize = 16

func graphKey(tip chainhash.Hash) []byte {
	return append([]byte("graph:"), tip[:]...)
}

func (c *graphCache) Load(tip chainhash.Hash, graph *[1024 * 40]blockchainPopulationGraphPoint) (bool, error) {
	data, err := c.db.Get(graphKey(tip), nil)
	if err == leveldb.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	n := len(data) / serializedGraphPointSize
	for i := 0; i < n && i < len(graph); i++ {
		off := i * serializedGraphPointSize
		graph[i].ImmaturePop = int64(binary.LittleEndian.Uint64(data[off:]))
		graph[i].MaturePop = int64(binary.LittleEndian.Uint64(data[off+8:]))
	}
	return true, nil
}

func (c *graphCache) Store(tip chainhash.Hash, graph *[1024 * 40]blockchainPopulationGraphPoint) error {
	buf := make([]byte, len(graph)*serializedGraphPointSize)
	for i, pt := range graph {
		off := i * serializedGraphPointSize
		binary.LittleEndian.PutUint64(buf[off:], uint64(pt.ImmaturePop))
		binary.LittleEndian.PutUint64(buf[off+8:], uint64(pt.MaturePop))
	}
	return c.db.Put(graphKey(tip), buf, nil)
}

// blockchainPopulationGraphPoint aliases the library's graph point type so
// this file doesn't need a wildcard import.
type blockchainPopulationGraphPoint = blockchain.PopulationGraphPoint
