// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
	"time"

	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

// fakeBlockReader hands back one coinbase-only block per height, each
// carrying a single fake BCT output whose value encodes how many bees it
// should be classified as buying.
type fakeBlockReader struct {
	beeFeePerBlock int64
}

func (r fakeBlockReader) ReadBlock(entry Entry) (*btcutil.Block, bool, bool) {
	tx := wire.NewMsgTx(1)
	tx.AddTxOut(&wire.TxOut{Value: r.beeFeePerBlock, PkScript: []byte{0x01}})
	block := &wire.MsgBlock{Transactions: []*wire.MsgTx{tx}}
	return btcutil.NewBlock(block), true, false
}

type fakeBCTClassifier struct{}

func (fakeBCTClassifier) IsBCT(tx *btcutil.Tx, params *chaincfg.Params) (bool, int64) {
	return true, tx.MsgTx().TxOut[0].Value
}

func (fakeBCTClassifier) CommunityDonation(tx *btcutil.Tx, params *chaincfg.Params) (bool, int64) {
	return false, 0
}

func TestGetNetworkHiveInfoCountsImmatureAndMatureBees(t *testing.T) {
	params := testParams()
	params.BeeGestationBlocks = 5
	params.BeeLifespanBlocks = 5
	// SubsidyHalvingInterval (150) outlives the 20-block chain below, so the
	// block reward and therefore GetBeeCost is constant across every height
	// walked here, keeping the bee count predictable.

	beeCost := GetBeeCost(0, params)
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(20, base, time.Second, 0, PowTypeSHA256D)

	result, err := GetNetworkHiveInfo(
		idx, fakeBlockReader{beeFeePerBlock: beeCost}, fakeBCTClassifier{},
		true, func() bool { return false }, nil, false, params,
	)
	require.NoError(t, err)

	// Walking back 10 blocks (gestation+lifespan) from the tip, the first 5
	// (i=0..4) count as immature, the next 5 (i=5..9) as mature, one bee and
	// one BCT each.
	require.Equal(t, int64(5), result.ImmatureBCTs)
	require.Equal(t, int64(5), result.MatureBCTs)
	require.Equal(t, int64(5), result.ImmatureBees)
	require.Equal(t, int64(5), result.MatureBees)
}

func TestGetNetworkHiveInfoRefusesDuringIBD(t *testing.T) {
	params := testParams()
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(5, base, time.Second, 0, PowTypeSHA256D)

	_, err := GetNetworkHiveInfo(
		idx, fakeBlockReader{}, fakeBCTClassifier{},
		true, func() bool { return true }, nil, false, params,
	)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Equal(t, ErrInitialBlockDownload, ruleErr.ErrorCode)
}

func TestGetNetworkHiveInfoSurfacesPrunedBlocks(t *testing.T) {
	params := testParams()
	base := time.Unix(1_600_000_000, 0)
	idx := buildChain(5, base, time.Second, 0, PowTypeSHA256D)

	_, err := GetNetworkHiveInfo(
		idx, prunedBlockReader{}, fakeBCTClassifier{},
		true, func() bool { return false }, nil, false, params,
	)
	require.Error(t, err)
	var ruleErr RuleError
	require.ErrorAs(t, err, &ruleErr)
	require.Equal(t, ErrPrunedBlockData, ruleErr.ErrorCode)
}

type prunedBlockReader struct{}

func (prunedBlockReader) ReadBlock(entry Entry) (*btcutil.Block, bool, bool) {
	return nil, false, true
}
