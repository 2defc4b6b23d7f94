// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// genesisPubKeyHex is the uncompressed public key every network's genesis
// coinbase output pays to. The output is permanently unspendable in
// practice (no corresponding private key is known to exist), exactly as in
// the Bitcoin genesis block this scheme descends from.
const genesisPubKeyHex = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f"

// genesisScriptNumBytes is the minimally-encoded CScriptNum serialization
// of the constant 486604799 (0x1d00ffff). Every genesis coinbase script
// pushes this literal, independent of the block's own Bits field; it is a
// historical artifact inherited unchanged from Bitcoin's own genesis
// coinbase.
var genesisScriptNumBytes = []byte{0xff, 0xff, 0x00, 0x1d}

// pushData returns data prefixed with the minimal-push opcode/length byte(s)
// a script interpreter expects, following the same encoding a
// txscript.ScriptBuilder would produce for a plain data push. This module
// does not import a full script interpreter (out of scope); genesis
// construction only needs a handful of pushes and is built directly so it
// does not depend on one.
func pushData(data []byte) []byte {
	n := len(data)
	var prefix []byte
	switch {
	case n == 0:
		return []byte{0x00}
	case n <= 75:
		prefix = []byte{byte(n)}
	case n <= 0xff:
		prefix = []byte{0x4c, byte(n)}
	case n <= 0xffff:
		prefix = []byte{0x4d, byte(n), byte(n >> 8)}
	default:
		prefix = []byte{0x4e, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	}
	out := make([]byte, 0, len(prefix)+n)
	out = append(out, prefix...)
	out = append(out, data...)
	return out
}

const opCheckSig = 0xac

// createGenesisBlock builds a network's genesis block the way the original
// CreateGenesisBlock helper does: a single coinbase transaction whose
// signature script commits to the genesis timestamp message, and whose
// sole output pays the (permanently unspendable) genesis public key, under
// a header with a null previous block and a merkle root over just that one
// transaction.
func createGenesisBlock(timestampMsg string, nTime, nNonce, nBits uint32, version int32, rewardMaza int64) *wire.MsgBlock {
	pubKey, err := hex.DecodeString(genesisPubKeyHex)
	if err != nil {
		panic(err)
	}

	sigScript := make([]byte, 0, 8+len(timestampMsg))
	sigScript = append(sigScript, pushData(genesisScriptNumBytes)...)
	sigScript = append(sigScript, pushData([]byte{0x04})...)
	sigScript = append(sigScript, pushData([]byte(timestampMsg))...)

	pkScript := make([]byte, 0, len(pubKey)+2)
	pkScript = append(pkScript, pushData(pubKey)...)
	pkScript = append(pkScript, opCheckSig)

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Index: 0xffffffff},
		SignatureScript:  sigScript,
		Sequence:         0xffffffff,
	})
	coinbase.AddTxOut(&wire.TxOut{
		Value:    rewardMaza * 1e8,
		PkScript: pkScript,
	})

	coinbaseHash := coinbase.TxHash()

	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: coinbaseHash,
			Timestamp:  time.Unix(int64(nTime), 0).UTC(),
			Bits:       nBits,
			Nonce:      nNonce,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
}

// The genesis timestamp message, shared by all three networks' genesis
// blocks, matching the original implementation's hard-coded pszTimestamp
// literal.
const mainGenesisMessage = "February 5, 2014: The Black Hills are not for sale - 1868 Is The LAW!"

var mazaGenesisBlockMain = createGenesisBlock(mainGenesisMessage, 1390747675, 2091390249, 0x1e0ffff0, 1, 5000)

// mazaGenesisHashMain is the hash mazaGenesisBlockMain.Header must produce.
// Package initialization panics (a ProgrammerError) if the computed hash of
// any network's genesis block ever drifts
// from this literal, the same assert(...) the original implementation runs
// at startup.
var mazaGenesisHashMain = newHashFromStr("00000c7c73d8ce604178dae13f0fc6ec0be3275614366d44b1b4b5c6e238c60c")

var mazaGenesisBlockTest = createGenesisBlock(mainGenesisMessage, 1411587941, 2091634749, 0x1e0ffff0, 1, 5000)

var mazaGenesisHashTest = newHashFromStr("000003ae7f631de18a457fa4fa078e6fa8aff38e258458f8189810de5d62cede")

var mazaGenesisBlockRegtest = createGenesisBlock(mainGenesisMessage, 1390748221, 4, 0x207fffff, 1, 5000)

var mazaGenesisHashRegtest = newHashFromStr("57939ce0a96bf42965fee5956528a456d0edfb879b8bd699bcbb4786d27b979d")

func init() {
	// Bind the genesis blocks into the Params literals now that they're
	// built; Go initializes package-level vars in dependency order, so the
	// genesis blocks above are guaranteed ready before this runs.
	MainNetParams.GenesisBlock = mazaGenesisBlockMain
	MainNetParams.GenesisHash = mazaGenesisHashMain

	TestNetParams.GenesisBlock = mazaGenesisBlockTest
	TestNetParams.GenesisHash = mazaGenesisHashTest

	RegressionNetParams.GenesisBlock = mazaGenesisBlockRegtest
	RegressionNetParams.GenesisHash = mazaGenesisHashRegtest

	for _, p := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		if p.GenesisBlock.Header.BlockHash() != *p.GenesisHash {
			panic("chaincfg: " + p.Name + " genesis block hash does not match its hard-coded constant")
		}
	}
}
