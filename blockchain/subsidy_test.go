// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcBlockSubsidyHalves(t *testing.T) {
	params := testParams()
	params.SubsidyHalvingInterval = 100

	assert.Equal(t, int64(baseSubsidy), CalcBlockSubsidy(0, params))
	assert.Equal(t, int64(baseSubsidy), CalcBlockSubsidy(99, params))
	assert.Equal(t, int64(baseSubsidy/2), CalcBlockSubsidy(100, params))
	assert.Equal(t, int64(baseSubsidy/4), CalcBlockSubsidy(200, params))
}

func TestCalcBlockSubsidyFloorsAtZero(t *testing.T) {
	params := testParams()
	params.SubsidyHalvingInterval = 1
	assert.Equal(t, int64(0), CalcBlockSubsidy(64, params))
}

func TestGetBeeCostTracksBlockRewardAndFloors(t *testing.T) {
	params := testParams()
	params.SubsidyHalvingInterval = 100
	params.MinBeeCost = 1000
	params.BeeCostFactor = 2500

	assert.Equal(t, int64(baseSubsidy/2500), GetBeeCost(0, params))
	assert.Equal(t, int64(baseSubsidy/2/2500), GetBeeCost(100, params))

	params.SubsidyHalvingInterval = 1
	assert.Equal(t, int64(1000), GetBeeCost(64, params))
}
