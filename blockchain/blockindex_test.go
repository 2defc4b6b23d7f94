// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
)

func TestIsHiveMined(t *testing.T) {
	header := &wire.BlockHeader{Nonce: 192}
	assert.True(t, IsHiveMined(header, 192))
	assert.False(t, IsHiveMined(header, 193))
}

func TestHeaderPowType(t *testing.T) {
	sha := &wire.BlockHeader{Version: 0x20000000}
	assert.Equal(t, PowTypeSHA256D, HeaderPowType(sha))

	minotaurX := &wire.BlockHeader{Version: 0x20000000 | powTypeBit}
	assert.Equal(t, PowTypeMinotaurX, HeaderPowType(minotaurX))
}
