// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"
	"time"

	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

type fakeBeeHasher struct{ result *big.Int }

func (f fakeBeeHasher) HashArbitrary(message string) *big.Int { return f.result }

type fakeRandStringer struct{ s string }

func (f fakeRandStringer) DeterministicRandString(parent Entry) string { return f.s }

type fakePubKeyHasher struct{ hash160 []byte }

func (f fakePubKeyHasher) Hash160(serializedPubKey []byte) []byte { return f.hash160 }

type fakeRecoverer struct {
	pubKey []byte
	err    error
}

func (f fakeRecoverer) RecoverCompact(sig []byte, msgHash []byte) ([]byte, error) {
	return f.pubKey, f.err
}

type fakeUTXOSource struct {
	value    int64
	pkScript []byte
	height   int32
	found    bool
}

func (f fakeUTXOSource) FetchUTXO(outpoint wire.OutPoint) (int64, []byte, int32, bool) {
	return f.value, f.pkScript, f.height, f.found
}

type fakeTxByHeightSource struct{}

func (fakeTxByHeightSource) FindTxByHashAndHeight(txHash chainhash.Hash, height int32) (*wire.MsgTx, int32, bool) {
	return nil, 0, false
}

type fakeBCTScriptDecoder struct{ honeyScript []byte }

func (f fakeBCTScriptDecoder) ExtractHoneyScript(bctPkScript []byte) ([]byte, bool) {
	return f.honeyScript, true
}

type fakeDestExtractor struct{ hash160 []byte }

func (f fakeDestExtractor) ExtractPubKeyHash(pkScript []byte) ([]byte, bool) { return f.hash160, true }

// buildHiveProofScript lays out a Hive coinbase payload following the fixed
// byte-offset schema: OP_RETURN OP_BEE, bee nonce, claimed BCT height,
// community flag, BCT txid (ascii hex), recoverable signature.
func buildHiveProofScript(beeNonce uint32, bctHeight int32, communityContrib bool, txidHex string, sig []byte) []byte {
	script := make([]byte, hiveProofMinLen)
	script[offOpReturn] = opReturn
	script[offOpBee] = opBee
	script[offBeeNonceMarker] = sizeMarker4
	putLE32(script[offBeeNonce:], beeNonce)
	script[offBCTHeightMarker] = sizeMarker4
	putLE32(script[offBCTHeight:], uint32(bctHeight))
	if communityContrib {
		script[offCommunityFlag] = opTrue
	}
	script[offTxidMarker] = sizeMarker64
	copy(script[offTxid:offTxid+txidLen], []byte(txidHex))
	script[offSigMarker] = sizeMarker65
	copy(script[offSig:offSig+sigLen], sig)
	return script
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func hiveTestParams() *chaincfg.Params {
	params := testParams()
	params.MaxConsecutiveHiveBlocks = 2
	deployment := params.Deployments[chaincfg.DeploymentMinotaurX]
	deployment.AlwaysActiveHeight = 1
	params.Deployments[chaincfg.DeploymentMinotaurX] = deployment
	return params
}

func TestCheckHiveProofAcceptsWellFormedProof(t *testing.T) {
	params := hiveTestParams()
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(101, base, time.Second, 0, PowTypeSHA256D)
	parent := idx.chain[100]

	const txidHex = "0000000000000000000000000000000000000000000000000000000000000001"
	const bctHeight = int32(50)
	beeCost := GetBeeCost(bctHeight, params)

	honeyHash160 := []byte("0123456789abcdef0123")
	sig := make([]byte, sigLen)
	sig[0] = 0x42

	script := buildHiveProofScript(2, bctHeight, false, txidHex, sig)

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0xffffffff}, Sequence: 0xffffffff})
	coinbase.AddTxOut(&wire.TxOut{Value: 0, PkScript: script})
	coinbase.AddTxOut(&wire.TxOut{Value: 0, PkScript: []byte("honey-destination-script")})

	block := &wire.MsgBlock{Transactions: []*wire.MsgTx{coinbase}}

	env := HiveEnv{
		Index:      idx,
		BeeHash:    fakeBeeHasher{result: big.NewInt(1)},
		RandString: fakeRandStringer{s: "challenge"},
		PubKeyHash: fakePubKeyHasher{hash160: honeyHash160},
		Recoverer:  fakeRecoverer{pubKey: []byte("recovered-pubkey")},
		UTXO: fakeUTXOSource{
			value:    beeCost * 5,
			pkScript: []byte("bct-pkscript"),
			height:   bctHeight,
			found:    true,
		},
		TxByHeight:        fakeTxByHeightSource{},
		ScriptDecoder:     fakeBCTScriptDecoder{honeyScript: []byte("honey-destination-script")},
		DestExtractor:     fakeDestExtractor{hash160: honeyHash160},
		BeeCreationScript: []byte("bee-creation-script"),
	}

	err := CheckHiveProof(block, parent.Hash(), env, params)
	require.NoError(t, err)
}

func TestCheckHiveProofRejectsBeeHashAboveTarget(t *testing.T) {
	params := hiveTestParams()
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(101, base, time.Second, 0, PowTypeSHA256D)
	parent := idx.chain[100]

	const txidHex = "0000000000000000000000000000000000000000000000000000000000000001"
	script := buildHiveProofScript(0, 50, false, txidHex, make([]byte, sigLen))

	coinbase := wire.NewMsgTx(1)
	coinbase.AddTxIn(&wire.TxIn{PreviousOutPoint: wire.OutPoint{Index: 0xffffffff}, Sequence: 0xffffffff})
	coinbase.AddTxOut(&wire.TxOut{Value: 0, PkScript: script})
	coinbase.AddTxOut(&wire.TxOut{Value: 0, PkScript: []byte("honey")})

	block := &wire.MsgBlock{Transactions: []*wire.MsgTx{coinbase}}

	// An enormous hash result, well above any floor target, must fail the
	// puzzle before any of the collaborators left unset here is consulted.
	huge := new(big.Int).Lsh(big.NewInt(1), 300)
	env := HiveEnv{
		Index:             idx,
		BeeHash:           fakeBeeHasher{result: huge},
		RandString:        fakeRandStringer{s: "challenge"},
		BeeCreationScript: []byte("bee-creation-script"),
	}

	err := CheckHiveProof(block, parent.Hash(), env, params)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Equal(t, ErrBeeHashTargetNotMet, ruleErr.ErrorCode)
}

func TestCheckHiveProofRejectsTooManyConsecutiveHiveBlocks(t *testing.T) {
	params := hiveTestParams()
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(10, base, time.Second, 0, PowTypeSHA256D)
	for _, e := range idx.chain[7:] {
		e.isHive = true
	}
	parent := idx.chain[9]

	block := &wire.MsgBlock{Transactions: []*wire.MsgTx{wire.NewMsgTx(1)}}
	env := HiveEnv{Index: idx, BeeCreationScript: []byte("bee-creation-script")}

	err := CheckHiveProof(block, parent.Hash(), env, params)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Equal(t, ErrTooManyConsecutiveHiveBlocks, ruleErr.ErrorCode)
}

func TestCheckHiveProofRejectsMissingParent(t *testing.T) {
	params := hiveTestParams()
	idx := &testIndexer{}
	block := &wire.MsgBlock{Transactions: []*wire.MsgTx{wire.NewMsgTx(1)}}
	env := HiveEnv{Index: idx}

	var unknownHash chainhash.Hash
	err := CheckHiveProof(block, unknownHash, env, params)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Equal(t, ErrMissingParent, ruleErr.ErrorCode)
}
