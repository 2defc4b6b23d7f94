// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/balabhaskar27/maza/chaincfg"
	"github.com/btcsuite/btcd/btcutil"
)

// populationGraphSize is the fixed capacity of the bee population graph:
// 1024*40 buckets, large enough to cover the longest possible
// gestation+lifespan window on any registered network.
const populationGraphSize = 1024 * 40

// PopulationGraphPoint is one bucket of the bee population graph: the
// number of bees that are immature, and the number that are mature, at the
// block height the bucket represents.
type PopulationGraphPoint struct {
	ImmaturePop int64
	MaturePop   int64
}

// BlockReader supplies full block bodies by height, the collaborator the
// census walk needs in order to classify transactions as BCTs. A pruned
// node that cannot serve a given height returns ok=false with pruned=true;
// any other failure to locate the block (for instance, walking past
// genesis) returns ok=false with pruned=false.
type BlockReader interface {
	ReadBlock(entry Entry) (block *btcutil.Block, ok bool, pruned bool)
}

// BCTClassifier recognizes a Bee Creation Transaction and reports the
// total fee it paid toward bees, independent of any community-fund
// donation output.
type BCTClassifier interface {
	// IsBCT reports whether tx pays the network's bee-creation address,
	// and if so the fee amount committed to buying bees.
	IsBCT(tx *btcutil.Tx, params *chaincfg.Params) (isBCT bool, beeFeePaid int64)

	// CommunityDonation reports whether tx's second output pays the
	// network's community fund, and if so the donation amount.
	CommunityDonation(tx *btcutil.Tx, params *chaincfg.Params) (hasDonation bool, amount int64)
}

// HiveCensusResult is the outcome of a population census walk.
type HiveCensusResult struct {
	ImmatureBees            int64
	ImmatureBCTs            int64
	MatureBees              int64
	MatureBCTs              int64
	PotentialLifespanReward int64
}

// GetNetworkHiveInfo walks back bee_gestation+bee_lifespan blocks from tip,
// counting every Bee Creation Transaction it finds into either the
// immature or mature bucket and, if recalcGraph is set, populating graph
// with the per-height population curve those bees trace out.
//
// It refuses to run during initial block download (the caller-supplied
// inIBD callback), returning a TransientUnavailable error rather than a
// wrong answer built on an incomplete view of the chain. It also aborts
// with a TransientUnavailable error the first time the walk reaches a
// block whose body has been pruned from local storage.
func GetNetworkHiveInfo(idx BlockIndexer, reader BlockReader, classifier BCTClassifier, minotaurXActive bool, inIBD func() bool, graph *[populationGraphSize]PopulationGraphPoint, recalcGraph bool, params *chaincfg.Params) (HiveCensusResult, error) {
	var result HiveCensusResult

	tip := idx.Tip()
	if tip == nil {
		return result, ruleError(ErrMissingParent, "census requires a non-empty chain")
	}
	tipHeight := tip.Height()

	totalLifespan := params.BeeGestationBlocks + params.BeeLifespanBlocks

	blockReward := CalcBlockSubsidy(tipHeight, params)
	blockReward += blockReward >> 1
	result.PotentialLifespanReward = int64(params.BeeLifespanBlocks) * blockReward / params.HiveBlockSpacingTargetTypical1x1

	if recalcGraph && graph != nil {
		for i := int32(0); i < totalLifespan && int(i) < len(graph); i++ {
			graph[i] = PopulationGraphPoint{}
		}
	}

	if inIBD != nil && inIBD() {
		return result, ruleError(ErrInitialBlockDownload, "refusing census during initial block download")
	}

	cursor := tip
	for i := int32(0); i < totalLifespan; i++ {
		if !cursor.IsHive() {
			block, ok, pruned := reader.ReadBlock(cursor)
			if !ok {
				if pruned {
					return result, ruleError(ErrPrunedBlockData, "block data pruned during census walk")
				}
				return result, ruleError(ErrPrunedBlockData, "block data unavailable during census walk")
			}

			blockHeight := cursor.Height()
			beeCost := GetBeeCost(blockHeight, params)

			for _, tx := range block.Transactions() {
				isBCT, beeFeePaid := classifier.IsBCT(tx, params)
				if !isBCT {
					continue
				}

				if hasDonation, donation := classifier.CommunityDonation(tx, params); hasDonation {
					expectedDonation := (beeFeePaid + donation) / params.CommunityContribFactor
					if minotaurXActive {
						expectedDonation += expectedDonation >> 1
					}
					if donation != expectedDonation {
						continue
					}
					beeFeePaid += donation
				}

				beeCount := beeFeePaid / beeCost
				if i < params.BeeGestationBlocks {
					result.ImmatureBees += beeCount
					result.ImmatureBCTs++
				} else {
					result.MatureBees += beeCount
					result.MatureBCTs++
				}

				if recalcGraph && graph != nil {
					beeBorn := blockHeight
					beeMatures := beeBorn + params.BeeGestationBlocks
					beeDies := beeMatures + params.BeeLifespanBlocks
					for j := beeBorn; j < beeDies; j++ {
						graphPos := j - tipHeight
						if graphPos > 0 && int(graphPos) < len(graph) {
							if j < beeMatures {
								graph[graphPos].ImmaturePop += beeCount
							} else {
								graph[graphPos].MaturePop += beeCount
							}
						}
					}
				}
			}
		}

		if idx.Prev(cursor) == nil {
			return result, nil
		}
		cursor = idx.Prev(cursor)
	}

	return result, nil
}
