// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Block types recognized by the pow_type_limits table. Index 0 is the
// original sha256d proof-of-work; index 1 is MinotaurX, the alternate
// algorithm activated by the MinotaurX deployment.
const (
	PowTypeSHA256D = 0
	PowTypeMinotaurX = 1

	// NumPowTypes is the number of entries pow_type_limits carries.
	NumPowTypes = 2
)

// These variables are the proof-of-work limit parameters for each default
// network. They are defined here to avoid the overhead of recomputing them
// on every Params literal.
var (
	bigOne = big.NewInt(1)

	// mainPowLimitSHA is the highest sha256d proof-of-work target a main
	// network block may have. 2^236 - 1 (0x00000fff...).
	mainPowLimitSHA = fromHex("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// mainPowLimitMinotaurX is the highest MinotaurX proof-of-work target a
	// main network block may have. 2^244 - 1 (0x000fffff...).
	mainPowLimitMinotaurX = fromHex("000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// mainPowLimitHive is the easiest (highest) bee-hash target a Hive
	// block's puzzle solution may fall under on the main network.
	mainPowLimitHive = fromHex("0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// mainStartingDifficulty is the initial difficulty used by the legacy
	// retarget until the chain has enough history to retarget normally.
	mainStartingDifficulty = fromHex("00000003ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	regtestPowLimitSHA = fromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// fromHex parses a big-endian hex string into a big.Int. It panics on a
// malformed literal since it is only ever called with hard-coded constants
// at package init time.
func fromHex(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("chaincfg: invalid hex constant " + hexStr)
	}
	return n
}

// Checkpoint identifies a known good point in the block chain. Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in via the version bits mechanism (BIP0009-style).
type ConsensusDeployment struct {
	// BitNumber is the bit within the block version this deployment uses.
	BitNumber uint8

	// MinActivationHeight, when non-zero, delays the LockedIn -> Active
	// transition until the block height reaches at least this value.
	MinActivationHeight uint32

	// CustomActivationThreshold, when non-zero, overrides
	// Params.RuleChangeActivationThreshold for this deployment.
	CustomActivationThreshold uint32

	// AlwaysActiveHeight, when non-zero, forces the deployment active from
	// that height onward regardless of signaling.
	AlwaysActiveHeight uint32

	// DeploymentStarter determines whether voting for the deployment may
	// begin at a given block.
	DeploymentStarter ConsensusDeploymentStarter

	// DeploymentEnder determines whether a still-unlocked deployment has
	// expired at a given block.
	DeploymentEnder ConsensusDeploymentEnder
}

// EffectiveAlwaysActiveHeight returns AlwaysActiveHeight, or the maximum
// uint32 when unset, so callers can compare against it unconditionally.
func (d *ConsensusDeployment) EffectiveAlwaysActiveHeight() uint32 {
	if d.AlwaysActiveHeight == 0 {
		return maxUint32
	}
	return d.AlwaysActiveHeight
}

const maxUint32 = 1<<32 - 1

// Constants defining the deployment offset into Params.Deployments.
const (
	DeploymentTestDummy = iota
	DeploymentCSV
	DeploymentSegwit
	DeploymentMinotaurX

	// DefinedDeployments must always come last.
	DefinedDeployments
)

// Params defines a Maza network by its consensus parameters. Once registered,
// only the deployment start/end conditions change, through
// UpdateVersionBitsParameters.
type Params struct {
	Name        string
	Net         wire.BitcoinNet
	DefaultPort string
	DNSSeeds    []DNSSeed

	GenesisBlock *wire.MsgBlock
	GenesisHash  *chainhash.Hash

	// PowLimitSHA / PowLimitMinotaurX are the per-algorithm proof-of-work
	// floors; PowTypeLimits indexes them by PowTypeSHA256D / PowTypeMinotaurX
	// for code that needs to range over "all algorithms".
	PowLimitSHA       *big.Int
	PowLimitMinotaurX *big.Int
	PowTypeLimits     [NumPowTypes]*big.Int

	// PowLimitHive is the easiest bee-hash puzzle target.
	PowLimitHive *big.Int

	// StartingDifficulty seeds the legacy retarget before the chain has
	// enough history for the normal averaging window.
	StartingDifficulty *big.Int

	PowTargetTimespan        time.Duration
	PowTargetSpacing         time.Duration
	AllowMinDifficultyBlocks bool
	NoRetargeting            bool

	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   [DefinedDeployments]ConsensusDeployment

	// DGWActivationHeight is the height at which DarkGravityWave supersedes
	// the legacy retarget (nPowDGWHeight in the original implementation).
	DGWActivationHeight int32

	// PowForkTime is advisory metadata carried from the original chain
	// parameters; retarget dispatch itself is driven by the MinotaurX
	// deployment's threshold state, not this timestamp directly.
	PowForkTime int64

	SubsidyHalvingInterval int32
	BIP16Height            int32
	BIP34Height            int32
	BIP34Hash              *chainhash.Hash
	BIP65Height            int32
	BIP66Height            int32

	CoinbaseMaturity uint16

	MinimumChainWork  *chainhash.Hash
	DefaultAssumeValid *chainhash.Hash

	Checkpoints []Checkpoint

	// Hive economics.
	MinBeeCost                      int64
	BeeCostFactor                   int64
	BeeCreationAddress               string
	HiveCommunityAddress             string
	CommunityContribFactor           int64
	BeeGestationBlocks               int32
	BeeLifespanBlocks                int32
	MinHiveCheckBlock                int32
	HiveBlockSpacingTarget           int64
	HiveBlockSpacingTargetTypical1x1 int64
	HiveNonceMarker                  uint32
	MinK                             int32
	MaxK                             int32
	MaxHiveDiff                      float64
	MaxKPow                          int32
	PowSplit1                        float64
	PowSplit2                        float64
	MaxConsecutiveHiveBlocks         int32
	HiveDifficultyWindow             int32
	LWMAAveragingWindow              int32

	RelayNonStdTxs bool

	Bech32HRPSegwit string

	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	HDCoinType uint32
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being registered.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided extended key
	// id is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID describes an error where the provided hd version
	// bytes are malformed.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")

	// ErrUnknownNetwork is returned by Select/create for any network name
	// outside {"main","test","regtest"}.
	ErrUnknownNetwork = errors.New("unknown network")
)

var (
	registeredNets       = make(map[wire.BitcoinNet]struct{})
	pubKeyHashAddrIDs    = make(map[byte]struct{})
	scriptHashAddrIDs    = make(map[byte]struct{})
	bech32SegwitPrefixes = make(map[string]struct{})
	hdPrivToPubKeyIDs    = make(map[[4]byte][]byte)
)

// Register registers the parameters for a network so library code can
// recognize addresses and keys belonging to it. It is idempotent-unsafe by
// design: registering the same net twice returns ErrDuplicateNet.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}
	pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}

	if err := RegisterHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:]); err != nil {
		return err
	}

	bech32SegwitPrefixes[params.Bech32HRPSegwit+"1"] = struct{}{}
	return nil
}

// mustRegister is Register except it panics on error. Only safe to call
// from package init.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("chaincfg: failed to register network: " + err.Error())
	}
}

// IsPubKeyHashAddrID returns whether id is a known P2PKH address prefix on
// any registered network.
func IsPubKeyHashAddrID(id byte) bool {
	_, ok := pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether id is a known P2SH address prefix on
// any registered network.
func IsScriptHashAddrID(id byte) bool {
	_, ok := scriptHashAddrIDs[id]
	return ok
}

// IsBech32SegwitPrefix returns whether prefix is a known bech32 HRP+"1" on
// any registered network.
func IsBech32SegwitPrefix(prefix string) bool {
	_, ok := bech32SegwitPrefixes[strings.ToLower(prefix)]
	return ok
}

// RegisterHDKeyID registers a public/private extended key id pair.
func RegisterHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}
	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	hdPrivToPubKeyIDs[keyID] = hdPublicKeyID
	return nil
}

// HDPrivateKeyToPublicKeyID returns the public extended key id registered
// for the given private one.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}
	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}
	return pubBytes, nil
}

// newHashFromStr panics on malformed input. Only safe for hard-coded,
// known-good hex literals evaluated at init time.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// UpdateVersionBitsParameters overrides the start/end conditions of a
// registered deployment. This exists for test harnesses that need to move a
// deployment's voting window without re-registering the whole network,
// mirroring the original implementation's mutator of the same name.
func (p *Params) UpdateVersionBitsParameters(id int, starter ConsensusDeploymentStarter, ender ConsensusDeploymentEnder) {
	p.Deployments[id].DeploymentStarter = starter
	p.Deployments[id].DeploymentEnder = ender
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}
