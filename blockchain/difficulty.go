// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CalcNextRequiredDifficulty computes the compact target the next block
// after parent must satisfy, dispatching among the four retargeting
// regimes the network may be in: Hive bee-target, LWMA-3 per-algorithm
// (post-MinotaurX), DarkGravityWave, or the legacy Bitcoin retarget.
//
// candidateIsHive and candidatePowType describe the block being built on
// top of parent; candidateTime is its claimed timestamp (used only by the
// allow-min-difficulty fast paths of the legacy and LWMA-3 retargets).
func CalcNextRequiredDifficulty(idx BlockIndexer, parent Entry, candidateIsHive bool, candidatePowType PowType, candidateTime int64, minotaurXActive bool, params *chaincfg.Params) uint32 {
	if parent == nil {
		return bigToCompact(params.PowLimitSHA)
	}

	if candidateIsHive {
		return calcNextHiveWorkRequired(idx, parent, minotaurXActive, params)
	}

	if minotaurXActive {
		return calcNextWorkRequiredLWMA(idx, parent, candidateTime, candidatePowType, params)
	}

	if parent.Height()+1 >= params.DGWActivationHeight {
		return calcDarkGravityWave(idx, parent, params)
	}

	return calcNextWorkRequiredBTC(idx, parent, candidateTime, params)
}

// clampInt64 clamps v to [lo, hi].
func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// calcDarkGravityWave implements DarkGravityWave V3, the 24-block moving
// target average used on sha256d blocks between height 100000 and the
// MinotaurX activation.
//
// The original source carries a commented-out "skip Hive blocks" branch in
// this walk; the live code never skips them, so a Hive block's target
// participates in the average exactly like a PoW block's. That is
// preserved here verbatim rather than "fixed": the comment was never live
// behavior on any network that ran this code.
func calcDarkGravityWave(idx BlockIndexer, parent Entry, params *chaincfg.Params) uint32 {
	const pastBlocks = 24

	if parent.Height() < pastBlocks {
		return bigToCompact(params.PowLimitSHA)
	}

	var avg *big.Int
	block := parent
	for count := int64(1); count <= pastBlocks; count++ {
		target := compactToBig(block.Bits())
		if count == 1 {
			avg = target
		} else {
			avg = new(big.Int).Add(new(big.Int).Mul(avg, big.NewInt(count)), target)
			avg.Div(avg, big.NewInt(count+1))
		}

		if count != pastBlocks {
			block = idx.Prev(block)
		}
	}

	actualTimespan := parent.Time().Unix() - block.Time().Unix()
	targetTimespan := pastBlocks * int64(params.PowTargetSpacing.Seconds())

	actualTimespan = clampInt64(actualTimespan, targetTimespan/3, targetTimespan*3)

	next := new(big.Int).Mul(avg, big.NewInt(actualTimespan))
	next.Div(next, big.NewInt(targetTimespan))

	if next.Cmp(params.PowLimitSHA) > 0 {
		next = params.PowLimitSHA
	}

	return bigToCompact(next)
}

// calcNextWorkRequiredBTC implements the legacy Bitcoin retarget: bits
// unchanged outside an interval boundary (subject to the allow-min-
// difficulty testnet rule), recomputed against a 20-interval averaging
// window on a boundary.
func calcNextWorkRequiredBTC(idx BlockIndexer, parent Entry, candidateTime int64, params *chaincfg.Params) uint32 {
	powLimitCompact := bigToCompact(params.PowLimitSHA)
	startingDifficultyCompact := bigToCompact(params.StartingDifficulty)

	interval := int64(params.MinerConfirmationWindow)
	nextHeight := int64(parent.Height()) + 1

	if nextHeight < interval*20 {
		return startingDifficultyCompact
	}

	if nextHeight%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			if candidateTime > parent.Time().Unix()+int64(params.PowTargetSpacing.Seconds())*2 {
				return powLimitCompact
			}
			block := parent
			for idx.Prev(block) != nil && block.Height()%int32(interval) != 0 && block.Bits() == powLimitCompact {
				block = idx.Prev(block)
			}
			return block.Bits()
		}
		return parent.Bits()
	}

	averagingInterval := interval * 20
	first := parent
	for i := int64(0); first != nil && i < averagingInterval-1; i++ {
		if idx.Prev(first) == nil {
			break
		}
		first = idx.Prev(first)
	}

	return calculateNextWorkRequiredBTC(parent, first.Time().Unix(), params)
}

// calculateNextWorkRequiredBTC applies the clamped-timespan retarget given
// the boundary block (parent) and the timestamp of the block
// averagingInterval-1 steps back (firstBlockTime).
func calculateNextWorkRequiredBTC(parent Entry, firstBlockTime int64, params *chaincfg.Params) uint32 {
	if params.NoRetargeting {
		return parent.Bits()
	}

	interval := int64(params.MinerConfirmationWindow)
	averagingInterval := interval * 20
	averagingTargetTimespan := averagingInterval * 120

	const maxAdjustDown = 20
	const maxAdjustUp = 15
	minActualTimespan := averagingTargetTimespan * (100 - maxAdjustUp) / 100
	maxActualTimespan := averagingTargetTimespan * (100 + maxAdjustDown) / 100

	actualTimespan := parent.Time().Unix() - firstBlockTime
	actualTimespan = clampInt64(actualTimespan, minActualTimespan, maxActualTimespan)

	next := new(big.Int).Mul(compactToBig(parent.Bits()), big.NewInt(actualTimespan))
	next.Div(next, big.NewInt(averagingTargetTimespan))

	if next.Cmp(params.PowLimitSHA) > 0 {
		next = params.PowLimitSHA
	}

	return bigToCompact(next)
}

// calcNextWorkRequiredLWMA implements the modified LWMA-3 retarget used per
// proof-of-work algorithm once MinotaurX has activated.
func calcNextWorkRequiredLWMA(idx BlockIndexer, parent Entry, candidateTime int64, powType PowType, params *chaincfg.Params) uint32 {
	powLimit := params.PowTypeLimits[powType]
	powLimitCompact := bigToCompact(powLimit)

	T := int64(params.PowTargetSpacing.Seconds()) * 2
	N := int64(params.LWMAAveragingWindow)
	k := N * (N + 1) * T / 2

	height := int64(parent.Height())

	if params.AllowMinDifficultyBlocks && candidateTime > parent.Time().Unix()+T*10 {
		return powLimitCompact
	}

	if height < N {
		return powLimitCompact
	}

	var wanted []Entry
	block := parent
	for int64(len(wanted)) < N {
		if block.Header().Version >= 0x20000000 {
			return powLimitCompact
		}
		if block.IsHive() || block.PowType() != powType {
			block = idx.Prev(block)
			continue
		}
		wanted = append(wanted, block)
		if int64(len(wanted)) == N {
			break
		}
		block = idx.Prev(block)
	}

	previousTimestamp := wanted[len(wanted)-1].Time().Unix()

	var sumWeighted, j int64
	avgTarget := big.NewInt(0)

	for i := len(wanted) - 1; i >= 0; i-- {
		b := wanted[i]

		thisTimestamp := b.Time().Unix()
		if thisTimestamp <= previousTimestamp {
			thisTimestamp = previousTimestamp + 1
		}

		solvetime := thisTimestamp - previousTimestamp
		if solvetime > 6*T {
			solvetime = 6 * T
		}
		previousTimestamp = thisTimestamp

		j++
		sumWeighted += solvetime * j

		target := compactToBig(b.Bits())
		term := new(big.Int).Div(target, big.NewInt(N))
		term.Div(term, big.NewInt(k))
		avgTarget.Add(avgTarget, term)
	}

	next := new(big.Int).Mul(avgTarget, big.NewInt(sumWeighted))

	if next.Cmp(powLimit) > 0 {
		return powLimitCompact
	}

	return bigToCompact(next)
}

// calcNextHiveWorkRequired computes the current bee-hash target by
// averaging the targets of the hiveDifficultyWindow most recent Hive
// blocks, then scaling by how quickly they actually appeared relative to
// HiveBlockSpacingTarget.
func calcNextHiveWorkRequired(idx BlockIndexer, parent Entry, minotaurXActive bool, params *chaincfg.Params) uint32 {
	powLimitCompact := bigToCompact(params.PowLimitHive)

	beeHashTarget := big.NewInt(0)
	hiveBlockCount := int32(0)
	totalBlockCount := int32(0)

	block := parent
	for hiveBlockCount < params.HiveDifficultyWindow && idx.Prev(block) != nil && minotaurXActive {
		if block.IsHive() {
			beeHashTarget.Add(beeHashTarget, compactToBig(block.Bits()))
			hiveBlockCount++
		}
		totalBlockCount++
		block = idx.Prev(block)
	}

	if hiveBlockCount < params.HiveDifficultyWindow {
		return powLimitCompact
	}

	beeHashTarget.Div(beeHashTarget, big.NewInt(int64(hiveBlockCount)))

	targetTotalBlockCount := int64(hiveBlockCount) * params.HiveBlockSpacingTarget
	beeHashTarget.Mul(beeHashTarget, big.NewInt(int64(totalBlockCount)))
	beeHashTarget.Div(beeHashTarget, big.NewInt(targetTotalBlockCount))

	if beeHashTarget.Cmp(params.PowLimitHive) > 0 {
		return powLimitCompact
	}

	return bigToCompact(beeHashTarget)
}

// CheckProofOfWork validates that hash satisfies the target encoded by
// bits, and that the target itself falls within the network's combined
// pow-limit envelope (the loosest of every per-algorithm limit).
func CheckProofOfWork(hash chainhash.Hash, bits uint32, params *chaincfg.Params) error {
	target, negative, overflow := compactToBigChecked(bits)

	envelope := big.NewInt(0)
	for i := 0; i < chaincfg.NumPowTypes; i++ {
		if params.PowTypeLimits[i].Cmp(envelope) > 0 {
			envelope = params.PowTypeLimits[i]
		}
	}

	if negative || target.Sign() == 0 || overflow || target.Cmp(envelope) > 0 {
		return ruleError(ErrBadProofOfWork, "proof of work target is out of range")
	}

	hashNum := new(big.Int).SetBytes(reverseBytes(hash[:]))
	if hashNum.Cmp(target) > 0 {
		return ruleError(ErrBadProofOfWork, "block hash does not meet claimed target")
	}

	return nil
}

// reverseBytes returns a copy of b with byte order reversed, converting a
// chainhash.Hash's internal little-endian byte layout into the big-endian
// order big.Int.SetBytes expects.
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
