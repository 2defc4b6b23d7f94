// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"

	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Hive coinbase payload byte offsets, within vout[0].scriptPubKey. See
// §4.7's schema table: every Hive coinbase encodes its proof at these fixed
// offsets rather than through ordinary script pushes, so the block is
// self-describing without running a script interpreter.
const (
	hiveProofMinLen = 144

	offOpReturn        = 0
	offOpBee           = 1
	offBeeNonceMarker  = 2
	offBeeNonce        = 3
	offBCTHeightMarker = 7
	offBCTHeight       = 8
	offCommunityFlag   = 12
	offTxidMarker      = 13
	offTxid            = 14
	txidLen            = 64
	offSigMarker       = 78
	offSig             = 79
	sigLen             = 65

	opReturn = 0x6a
	// opBee is the repurposed opcode Hive coinbases use as a proof marker
	// immediately after OP_RETURN.
	opBee = 0xb4

	sizeMarker4  = 0x04
	sizeMarker64 = 0x40
	sizeMarker65 = 0x41

	opTrue = 0x51
)

// BeeHasher computes the MinotaurX "arbitrary message" hash used by the
// bee-hash puzzle, returning it as the big-endian unsigned integer the
// puzzle compares against the current Hive target. Hashing itself is an
// external collaborator; this package only knows how to build the message
// and compare the result.
type BeeHasher interface {
	HashArbitrary(message string) *big.Int
}

// DeterministicRandStringer derives the per-block challenge string every
// bee's hash puzzle and signature are computed over.
type DeterministicRandStringer interface {
	DeterministicRandString(parent Entry) string
}

// PubKeyHasher computes hash160 over a serialized public key, the
// collaborator used to compare a recovered signing key against a coinbase
// output's P2PKH destination.
type PubKeyHasher interface {
	Hash160(serializedPubKey []byte) []byte
}

// SignatureRecoverer recovers the compressed public key that produced a
// 65-byte recoverable ECDSA signature over a message hash.
type SignatureRecoverer interface {
	RecoverCompact(sig []byte, msgHash []byte) (serializedCompressedPubKey []byte, err error)
}

// UTXOSource is the fast path for locating an unspent BCT output without
// scanning historical blocks.
type UTXOSource interface {
	FetchUTXO(outpoint wire.OutPoint) (value int64, pkScript []byte, height int32, found bool)
}

// TxByHeightSource is the block-scan fallback used when a BCT output has
// already been spent (so it's absent from the UTXO set) or the UTXO set
// itself isn't available.
type TxByHeightSource interface {
	FindTxByHashAndHeight(txHash chainhash.Hash, height int32) (tx *wire.MsgTx, foundHeight int32, found bool)
}

// BCTScriptDecoder recognizes the bee-creation script pattern and extracts
// the honey destination script embedded within it.
type BCTScriptDecoder interface {
	ExtractHoneyScript(bctPkScript []byte) (honeyScript []byte, ok bool)
}

// DestinationExtractor pulls a P2PKH hash160 out of an arbitrary output
// script, the same job txscript.ExtractPkScriptAddrs does upstream.
type DestinationExtractor interface {
	ExtractPubKeyHash(pkScript []byte) (hash160 []byte, ok bool)
}

// HiveEnv bundles every external collaborator CheckHiveProof needs, so the
// function signature itself stays readable.
type HiveEnv struct {
	Index         BlockIndexer
	BeeHash       BeeHasher
	RandString    DeterministicRandStringer
	PubKeyHash    PubKeyHasher
	Recoverer     SignatureRecoverer
	UTXO          UTXOSource
	TxByHeight    TxByHeightSource
	ScriptDecoder BCTScriptDecoder
	DestExtractor DestinationExtractor
	CommunityScript []byte
	BeeCreationScript []byte
}

// CheckHiveProof validates that block, whose previous block hash is
// prevHash, is a correctly proven Hive block: its coinbase commits to a bee
// that cleared gestation, hasn't exceeded its lifespan, and whose owner
// signed the current deterministic challenge.
func CheckHiveProof(block *wire.MsgBlock, prevHash chainhash.Hash, env HiveEnv, params *chaincfg.Params) error {
	parent := env.Index.LookupHash(prevHash)
	if parent == nil {
		return ruleError(ErrMissingParent, "couldn't locate previous block's index entry")
	}
	height := parent.Height() + 1

	if !IsMinotaurXEnabled(env.Index, parent, params) {
		return ruleError(ErrMinotaurXNotActive, "Hive is not yet enabled on the network")
	}

	hiveBlocksAtTip := int32(0)
	cursor := parent
	for cursor.IsHive() {
		next := env.Index.Prev(cursor)
		if next == nil {
			break
		}
		cursor = next
		hiveBlocksAtTip++
	}
	if hiveBlocksAtTip >= params.MaxConsecutiveHiveBlocks {
		return ruleError(ErrTooManyConsecutiveHiveBlocks, "too many Hive blocks without a PoW block")
	}

	for i := 1; i < len(block.Transactions); i++ {
		if isBCTAgainstScript(block.Transactions[i], env.BeeCreationScript) {
			return ruleError(ErrHiveBlockContainsBCT, "Hive-mined block contains a BCT")
		}
	}

	if len(block.Transactions) == 0 {
		return ruleError(ErrNoTransactions, "block has no transactions")
	}
	coinbase := block.Transactions[0]
	if !isCoinbase(coinbase) {
		return ruleError(ErrFirstTxNotCoinbase, "first transaction is not a coinbase")
	}

	if len(coinbase.TxOut) < 2 || len(coinbase.TxOut) > 3 {
		return ruleError(ErrBadHiveCoinbase, fmt.Sprintf("unexpected vout count %d", len(coinbase.TxOut)))
	}

	script := coinbase.TxOut[0].PkScript
	if len(script) < hiveProofMinLen {
		return ruleError(ErrBadHiveCoinbase, "vout[0] script too short for a Hive proof")
	}
	if script[offOpReturn] != opReturn || script[offOpBee] != opBee {
		return ruleError(ErrBadHiveCoinbase, "vout[0] script doesn't start OP_RETURN OP_BEE")
	}

	beeNonce := le32(script[offBeeNonce : offBeeNonce+4])
	bctClaimedHeight := int32(le32(script[offBCTHeight : offBCTHeight+4]))
	communityContrib := script[offCommunityFlag] == opTrue
	txidStr := string(script[offTxid : offTxid+txidLen])
	sig := script[offSig : offSig+sigLen]

	detRand := env.RandString.DeterministicRandString(parent)

	targetBits := calcNextHiveWorkRequired(env.Index, parent, true, params)
	target := compactToBig(targetBits)

	beeHash := env.BeeHash.HashArbitrary(fmt.Sprintf("%s%s%d", detRand, txidStr, beeNonce))
	if beeHash.Cmp(target) >= 0 {
		return ruleError(ErrBeeHashTargetNotMet, "bee does not meet hash target")
	}

	honeyScript := coinbase.TxOut[1].PkScript
	honeyDestination, ok := env.DestExtractor.ExtractPubKeyHash(honeyScript)
	if !ok {
		return ruleError(ErrBadHiveCoinbase, "couldn't extract honey destination")
	}

	// sha256d over the raw det_rand bytes, not a CompactSize-length-prefixed
	// serialization: the scenario this is grounded on phrases the signed
	// message as sha256d(det_rand) directly.
	msgHash := chainhash.DoubleHashB([]byte(detRand))
	recoveredPubKey, err := env.Recoverer.RecoverCompact(sig, msgHash)
	if err != nil {
		return ruleError(ErrBadHiveSignature, "couldn't recover pubkey from signature: "+err.Error())
	}
	if !bytesEqual(env.PubKeyHash.Hash160(recoveredPubKey), honeyDestination) {
		return ruleError(ErrBadHiveSignature, "signature does not match honey destination")
	}

	txidHash, err := chainhash.NewHashFromStr(txidStr)
	if err != nil {
		return ruleError(ErrBCTNotFound, "malformed BCT txid in coinbase payload")
	}

	var bctValue int64
	var bctScript []byte
	var bctFoundHeight int32
	var bctTx *wire.MsgTx

	beeOutpoint := wire.OutPoint{Hash: *txidHash, Index: 0}
	if value, pkScript, h, found := env.UTXO.FetchUTXO(beeOutpoint); found {
		bctValue, bctScript, bctFoundHeight = value, pkScript, h
	} else if tx, foundHeight, found := env.TxByHeight.FindTxByHashAndHeight(*txidHash, bctClaimedHeight); found {
		bctTx = tx
		bctFoundHeight = foundHeight
		bctValue = tx.TxOut[0].Value
		bctScript = tx.TxOut[0].PkScript
	} else {
		return ruleError(ErrBCTNotFound, "couldn't locate indicated BCT")
	}

	if communityContrib {
		var donation int64
		var found bool

		if bctTx == nil {
			commOutpoint := wire.OutPoint{Hash: *txidHash, Index: 1}
			if value, pkScript, _, ok := env.UTXO.FetchUTXO(commOutpoint); ok {
				if !bytesEqual(pkScript, env.CommunityScript) {
					return ruleError(ErrBadCommunityContribution, "community contrib indicated but not found")
				}
				donation = value
				found = true
			} else if tx, foundHeight, ok := env.TxByHeight.FindTxByHashAndHeight(*txidHash, bctClaimedHeight); ok {
				bctTx = tx
				bctFoundHeight = foundHeight
				found = true
			} else {
				return ruleError(ErrBCTNotFound, "couldn't locate indicated BCT")
			}
		}

		// bctTx is only set when a block-scan fallback ran. When the BCT
		// came from the UTXO fast path, this re-read of the community
		// output from the transaction body is skipped and the donation is
		// the UTXO value fetched above.
		if bctTx != nil {
			if len(bctTx.TxOut) < 2 || !bytesEqual(bctTx.TxOut[1].PkScript, env.CommunityScript) {
				return ruleError(ErrBadCommunityContribution, "community contrib indicated but not found")
			}
			donation = bctTx.TxOut[1].Value
			found = true
		}

		if !found {
			return ruleError(ErrBadCommunityContribution, "community contrib indicated but not found")
		}

		expectedDonation := (bctValue + donation) / params.CommunityContribFactor
		expectedDonation += expectedDonation >> 1
		if donation != expectedDonation {
			return ruleError(ErrBadCommunityContribution, fmt.Sprintf("BCT pays community fund incorrect amount %d (expected %d)", donation, expectedDonation))
		}

		bctValue += donation
	}

	if bctFoundHeight != bctClaimedHeight {
		return ruleError(ErrBCTHeightMismatch, fmt.Sprintf("claimed BCT height %d conflicts with found height %d", bctClaimedHeight, bctFoundHeight))
	}

	bctDepth := height - bctFoundHeight
	if bctDepth < params.BeeGestationBlocks {
		return ruleError(ErrBeeNotMature, "indicated BCT is immature")
	}
	if bctDepth > params.BeeGestationBlocks+params.BeeLifespanBlocks {
		return ruleError(ErrBeeNotMature, "indicated BCT is too old")
	}

	honeyScriptFromBCT, ok := env.ScriptDecoder.ExtractHoneyScript(bctScript)
	if !ok {
		return ruleError(ErrBadBCTScript, "indicated utxo is not a valid BCT script")
	}
	honeyDestinationBCT, ok := env.DestExtractor.ExtractPubKeyHash(honeyScriptFromBCT)
	if !ok {
		return ruleError(ErrBadBCTScript, "couldn't extract honey address from BCT utxo")
	}
	if !bytesEqual(honeyDestination, honeyDestinationBCT) {
		return ruleError(ErrBadBCTScript, "BCT's honey address does not match claimed honey address")
	}

	beeCost := GetBeeCost(bctFoundHeight, params)
	if bctValue < params.MinBeeCost {
		return ruleError(ErrBeeNonceOutOfRange, "BCT fee is less than the minimum possible bee cost")
	}
	if bctValue < beeCost {
		return ruleError(ErrBeeNonceOutOfRange, "BCT fee is less than the cost for a single bee")
	}
	beeCount := uint32(bctValue / beeCost)
	if beeNonce >= beeCount {
		return ruleError(ErrBeeNonceOutOfRange, "BCT did not create enough bees for claimed nonce")
	}

	return nil
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isCoinbase(tx *wire.MsgTx) bool {
	return len(tx.TxIn) == 1 &&
		tx.TxIn[0].PreviousOutPoint.Index == 0xffffffff &&
		tx.TxIn[0].PreviousOutPoint.Hash == chainhash.Hash{}
}

// isBCTAgainstScript reports whether tx has an output paying exactly
// beeCreationScript, the cheap structural check CheckHiveProof needs before
// rejecting a Hive block that smuggles a BCT. Full BCT classification
// (amounts, donation) lives in hive_census.go's BCTClassifier, which a
// caller building the full validation environment is expected to back with
// the same script comparison.
func isBCTAgainstScript(tx *wire.MsgTx, beeCreationScript []byte) bool {
	for _, out := range tx.TxOut {
		if bytesEqual(out.PkScript, beeCreationScript) {
			return true
		}
	}
	return false
}
