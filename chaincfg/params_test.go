// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectKnownNetworks(t *testing.T) {
	for _, name := range []string{"main", "test", "regtest"} {
		require.NoError(t, Select(name))
		assert.NotNil(t, Current())
	}
}

func TestSelectUnknownNetworkFails(t *testing.T) {
	err := Select("nonexistent")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestCurrentPanicsBeforeSelect(t *testing.T) {
	current = nil
	assert.Panics(t, func() { Current() })
	require.NoError(t, Select("main"))
}

func TestMainNetAddressIDsAreRegistered(t *testing.T) {
	assert.True(t, IsPubKeyHashAddrID(MainNetParams.PubKeyHashAddrID))
	assert.True(t, IsScriptHashAddrID(MainNetParams.ScriptHashAddrID))
}

func TestEffectiveAlwaysActiveHeightDefaultsToMax(t *testing.T) {
	d := ConsensusDeployment{}
	assert.Equal(t, uint32(maxUint32), d.EffectiveAlwaysActiveHeight())

	d.AlwaysActiveHeight = 500
	assert.Equal(t, uint32(500), d.EffectiveAlwaysActiveHeight())
}

func TestPowTypeLimitsIndexedConsistently(t *testing.T) {
	for _, params := range []*Params{&MainNetParams, &TestNetParams, &RegressionNetParams} {
		assert.Equal(t, 0, params.PowLimitSHA.Cmp(params.PowTypeLimits[PowTypeSHA256D]))
		assert.Equal(t, 0, params.PowLimitMinotaurX.Cmp(params.PowTypeLimits[PowTypeMinotaurX]))
	}
}

func TestRegressionNetMinotaurXAlwaysActiveFromGenesis(t *testing.T) {
	d := RegressionNetParams.Deployments[DeploymentMinotaurX]
	require.NotZero(t, d.AlwaysActiveHeight)
	assert.LessOrEqual(t, d.AlwaysActiveHeight, uint32(1))
}
