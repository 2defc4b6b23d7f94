// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/balabhaskar27/maza/chaincfg"

// baseSubsidy is the block reward paid at height 0, before any halving:
// 5000 MAZA expressed in the smallest unit.
const baseSubsidy = 5000 * 1e8

// CalcBlockSubsidy returns the base block subsidy at height, before any
// Hive-era boost. It halves every SubsidyHalvingInterval blocks and floors
// at zero once the reward has halved past the point of representing
// anything.
func CalcBlockSubsidy(height int32, params *chaincfg.Params) int64 {
	if params.SubsidyHalvingInterval == 0 {
		return baseSubsidy
	}

	halvings := height / params.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}

	return baseSubsidy >> uint(halvings)
}

// GetBeeCost returns the amount of currency required to purchase a single
// bee at height: the block reward at that height divided by BeeCostFactor,
// floored at MinBeeCost once the reward has halved away to nothing.
func GetBeeCost(height int32, params *chaincfg.Params) int64 {
	cost := CalcBlockSubsidy(height, params) / params.BeeCostFactor
	if cost < params.MinBeeCost {
		return params.MinBeeCost
	}
	return cost
}
