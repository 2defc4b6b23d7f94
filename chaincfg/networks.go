// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Network magics. Chosen to be unlikely in normal data and to produce a
// large 32-bit integer at any byte alignment, exactly as the upstream
// comment on pchMessageStart explains.
const (
	MainNet    wire.BitcoinNet = 0xdf03b5f8
	TestNet    wire.BitcoinNet = 0x01a9fe05
	RegTestNet wire.BitcoinNet = 0x5aa50ffa
)

func unix(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// MainNetParams defines the consensus parameters for the main Maza network.
var MainNetParams = Params{
	Name:        "main",
	Net:         MainNet,
	DefaultPort: "12835",
	DNSSeeds: []DNSSeed{
		{Host: "node.mazacoin.org", HasFiltering: false},
	},

	PowLimitSHA:        mainPowLimitSHA,
	PowLimitMinotaurX:  mainPowLimitMinotaurX,
	PowTypeLimits:      [NumPowTypes]*big.Int{mainPowLimitSHA, mainPowLimitMinotaurX},
	PowLimitHive:       mainPowLimitHive,
	StartingDifficulty: mainStartingDifficulty,

	PowTargetTimespan:        8 * time.Minute,
	PowTargetSpacing:         2 * time.Minute,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,

	RuleChangeActivationThreshold: 6048,
	MinerConfirmationWindow:       8064,
	DGWActivationHeight:           100000,
	PowForkTime:                   1644645600,

	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:         28,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1199145601)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1230767999)),
		},
		DeploymentCSV: {
			BitNumber:         0,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1644645600)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1644645600 + 31536000)),
		},
		DeploymentSegwit: {
			BitNumber:         1,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1644645600)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1644645600 + 31536000)),
		},
		DeploymentMinotaurX: {
			BitNumber:         7,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1644645600)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1644645600 + 31536000)),
		},
	},

	SubsidyHalvingInterval: 950000,
	BIP16Height:            1,
	BIP34Height:            1,
	BIP34Hash:              newHashFromStr("000000003302fe58f139f1d45f3a0a67601d39e63b82bc4918f48b8cd5df6ab0"),
	BIP65Height:            2105603,
	BIP66Height:            800000,

	CoinbaseMaturity: 100,

	MinimumChainWork:   newHashFromStr("000000000000000000000000000000000000000000000ac96eea62eb8eaf493d"),
	DefaultAssumeValid: newHashFromStr("00000000000002a124800233414bbbc58a789290f3fb1eb5352cdfd7033dfa27"),

	Checkpoints: []Checkpoint{
		{Height: 91800, Hash: newHashFromStr("00000000000000f35417a67ff0bb5cec6a1c64d13bb1359ae4a03d2c9d44d900")},
		{Height: 183600, Hash: newHashFromStr("0000000000000787f10fa4a547822f8170f1f182ca0de60ecd2de189471da885")},
		{Height: 1148232, Hash: newHashFromStr("00000000000000026e94b971fd0e966d9dba98eaf828a7814de2ef333312bb2c")},
		{Height: 2036783, Hash: newHashFromStr("00000000000002a124800233414bbbc58a789290f3fb1eb5352cdfd7033dfa27")},
	},

	MinBeeCost:                        10000,
	BeeCostFactor:                     2500,
	BeeCreationAddress:                "MCreateBeeMainXXXXXXXXXXXXXXVQWqkH",
	HiveCommunityAddress:              "4xscpVDbThrWVk4GD177JqniTvZ8RPa6qo",
	CommunityContribFactor:            10,
	BeeGestationBlocks:                30 * 24,
	BeeLifespanBlocks:                 30 * 24 * 14,
	MinHiveCheckBlock:                 2105603,
	HiveBlockSpacingTarget:            2,
	HiveBlockSpacingTargetTypical1x1:  2,
	HiveNonceMarker:                   192,
	MinK:                              2,
	MaxK:                              16,
	MaxHiveDiff:                       0.006,
	MaxKPow:                           5,
	PowSplit1:                         0.005,
	PowSplit2:                         0.0025,
	MaxConsecutiveHiveBlocks:          2,
	HiveDifficultyWindow:              36,
	LWMAAveragingWindow:               90,

	RelayNonStdTxs: false,

	Bech32HRPSegwit: "maza",

	PubKeyHashAddrID: 50,
	ScriptHashAddrID: 9,
	PrivateKeyID:     224,

	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xAD, 0xE4},
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xB2, 0x1E},

	HDCoinType: 12835,
}

// TestNetParams defines the consensus parameters for the Maza test network.
var TestNetParams = Params{
	Name:        "test",
	Net:         TestNet,
	DefaultPort: "11835",
	DNSSeeds: []DNSSeed{
		{Host: "mazatest.cryptoadhd.com", HasFiltering: false},
	},

	PowLimitSHA:        mainPowLimitSHA,
	PowLimitMinotaurX:  mainPowLimitMinotaurX,
	PowTypeLimits:      [NumPowTypes]*big.Int{mainPowLimitSHA, mainPowLimitMinotaurX},
	PowLimitHive:       mainPowLimitHive,
	StartingDifficulty: mainStartingDifficulty,

	PowTargetTimespan:        8 * time.Minute,
	PowTargetSpacing:         2 * time.Minute,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,

	RuleChangeActivationThreshold: 15,
	MinerConfirmationWindow:       20,
	DGWActivationHeight:           10,
	PowForkTime:                   1639094400,

	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:         28,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1639090000)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1639090000 + 315360)),
		},
		DeploymentCSV: {
			BitNumber:         0,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1639090000)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1639090000 + 315360)),
		},
		DeploymentSegwit: {
			BitNumber:         1,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1639094400)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1639094400 + 315360)),
		},
		DeploymentMinotaurX: {
			BitNumber:         7,
			DeploymentStarter: NewMedianTimeDeploymentStarter(unix(1639094400)),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(unix(1639094400 + 31536000)),
		},
	},

	SubsidyHalvingInterval: 950000,
	BIP16Height:            0,
	BIP34Height:            100,
	BIP34Hash:              newHashFromStr("000000095bbba46901bc8b723224e93b127319bb28e163a3d00857c7aef528be"),
	BIP65Height:            628001,
	BIP66Height:            100000,

	CoinbaseMaturity: 100,

	MinimumChainWork:   newHashFromStr("000000000000000000000000000000000000000000000000005f2e22e5a21778"),
	DefaultAssumeValid: newHashFromStr("00000000070a1a9e19174cf9b46a3a99ac672e560716bccf50c3087e0c542802"),

	Checkpoints: []Checkpoint{
		{Height: 1, Hash: newHashFromStr("00000002a0b59d902c562804e26e28b9208dd766e08867fb896dd5bbed4e9a15")},
		{Height: 110, Hash: newHashFromStr("000000031a3c2984813b9f1c842f741759b207bb2408170de536decc8e738652")},
		{Height: 261, Hash: newHashFromStr("000000000babe88050bc39ce5aeaa3b002013dc0a812f5d4e073447bf9668502")},
		{Height: 1999, Hash: newHashFromStr("0000000002efad4b1cd3160a512c46ba31181194165b0d8f8d68a722536df4f6")},
		{Height: 558275, Hash: newHashFromStr("0000000015510795ae4174f9f4bfb119b303b25e9ca59e47f518c305850ee28b")},
	},

	MinBeeCost:                       10000,
	BeeCostFactor:                    2500,
	BeeCreationAddress:               "ccReateBeetestnetXXXXXXXXXXXVPRtyV",
	HiveCommunityAddress:             "cUr9QKe9f7vk6174C45yyW6CLJ8Qq1MKLL",
	CommunityContribFactor:           10,
	BeeGestationBlocks:               40,
	BeeLifespanBlocks:                48 * 24 * 14,
	MinHiveCheckBlock:                628001,
	HiveBlockSpacingTarget:           2,
	HiveBlockSpacingTargetTypical1x1: 2,
	HiveNonceMarker:                  192,
	MinK:                             2,
	MaxK:                             10,
	MaxHiveDiff:                      0.002,
	MaxKPow:                          5,
	PowSplit1:                        0.001,
	PowSplit2:                        0.0005,
	MaxConsecutiveHiveBlocks:         2,
	HiveDifficultyWindow:             36,
	LWMAAveragingWindow:              90,

	RelayNonStdTxs: true,

	Bech32HRPSegwit: "tmaza",

	PubKeyHashAddrID: 88,
	ScriptHashAddrID: 188,
	PrivateKeyID:     239,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xCF},

	HDCoinType: 11835,
}

// RegressionNetParams defines the consensus parameters for the Maza
// regression test network.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         RegTestNet,
	DefaultPort: "11444",
	DNSSeeds:    nil,

	PowLimitSHA:        regtestPowLimitSHA,
	PowLimitMinotaurX:  regtestPowLimitSHA,
	PowTypeLimits:      [NumPowTypes]*big.Int{regtestPowLimitSHA, regtestPowLimitSHA},
	PowLimitHive:       mainPowLimitHive,
	StartingDifficulty: regtestPowLimitSHA,

	PowTargetTimespan:        8 * time.Minute,
	PowTargetSpacing:         2 * time.Minute,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,

	RuleChangeActivationThreshold: 108,
	MinerConfirmationWindow:       144,
	DGWActivationHeight:           4001,
	PowForkTime:                   0,

	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: {
			BitNumber:         28,
			DeploymentStarter: NewMedianTimeDeploymentStarter(time.Time{}),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(time.Time{}),
		},
		DeploymentCSV: {
			BitNumber:         0,
			DeploymentStarter: NewMedianTimeDeploymentStarter(time.Time{}),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(time.Time{}),
		},
		DeploymentSegwit: {
			BitNumber:         1,
			DeploymentStarter: NewMedianTimeDeploymentStarter(time.Time{}),
			DeploymentEnder:   NewMedianTimeDeploymentEnder(time.Time{}),
		},
		// MinotaurX is not a distinct versionbits campaign on regtest in the
		// original implementation; forced active from genesis so Hive-path
		// tests don't need to fabricate a signaling history.
		DeploymentMinotaurX: {
			BitNumber:          7,
			AlwaysActiveHeight: 1,
			DeploymentStarter:  NewMedianTimeDeploymentStarter(time.Time{}),
			DeploymentEnder:    NewMedianTimeDeploymentEnder(time.Time{}),
		},
	},

	SubsidyHalvingInterval: 150,
	BIP16Height:            0,
	BIP34Height:            100000000,
	BIP34Hash:              &chainhashZero,
	BIP65Height:            1351,
	BIP66Height:            1251,

	CoinbaseMaturity: 100,

	MinimumChainWork:   &chainhashZero,
	DefaultAssumeValid: &chainhashZero,

	Checkpoints: []Checkpoint{
		{Height: 0, Hash: newHashFromStr("000008ca1832a4baf228eb1553c03d3a2c8e02399550dd6ea8d65cec3ef23d2e")},
	},

	MinBeeCost:                       10000,
	BeeCostFactor:                    2500,
	BeeCreationAddress:               "ccReateBeetestnetXXXXXXXXXXXVPRtyV",
	HiveCommunityAddress:             "cUr9QKe9f7vk6174C45yyW6CLJ8Qq1MKLL",
	CommunityContribFactor:           10,
	BeeGestationBlocks:               40,
	BeeLifespanBlocks:                48 * 24 * 14,
	MinHiveCheckBlock:                0,
	HiveBlockSpacingTarget:           2,
	HiveBlockSpacingTargetTypical1x1: 2,
	HiveNonceMarker:                  192,
	MinK:                             2,
	MaxK:                             10,
	MaxHiveDiff:                      0.002,
	MaxKPow:                          5,
	PowSplit1:                        0.001,
	PowSplit2:                        0.0005,
	MaxConsecutiveHiveBlocks:         2,
	HiveDifficultyWindow:             36,
	LWMAAveragingWindow:              90,

	RelayNonStdTxs: true,

	Bech32HRPSegwit: "rmaza",

	PubKeyHashAddrID: 140,
	ScriptHashAddrID: 19,
	PrivateKeyID:     239,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xCF},

	HDCoinType: 1,
}

var chainhashZero chainhash.Hash
