// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCompactToBigKnownValues(t *testing.T) {
	tests := []struct {
		compact uint32
		want    int64
	}{
		{0x00000000, 0},
		{0x00123456, 0},
		{0x01123456, 0x12},
		{0x02123456, 0x1234},
		{0x03123456, 0x123456},
		{0x04123456, 0x12345600},
	}

	for _, tc := range tests {
		got := compactToBig(tc.compact)
		assert.Equal(t, big.NewInt(tc.want), got, "compact %08x", tc.compact)
	}
}

func TestBigToCompactRoundTrip(t *testing.T) {
	vals := []int64{0, 1, 0x12, 0x1234, 0x123456, 0x12345600}
	for _, v := range vals {
		compact := bigToCompact(big.NewInt(v))
		got := compactToBig(compact)
		assert.Equal(t, big.NewInt(v), got)
	}
}

// TestCompactCanonicalIdempotent exercises the law that re-encoding an
// already-canonical compact target is a no-op: decoding it and encoding the
// result back always reproduces the same compact word.
func TestCompactCanonicalIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		compact := rapid.Uint32().Draw(rt, "compact")

		target, negative, overflow := compactToBigChecked(compact)
		if negative || overflow || target.Sign() == 0 {
			rt.Skip("not a canonical positive target")
		}

		canonical := bigToCompact(target)
		roundTripped := compactToBig(canonical)
		assert.Equal(rt, 0, target.Cmp(roundTripped))

		reencoded := bigToCompact(roundTripped)
		assert.Equal(rt, canonical, reencoded)
	})
}

func TestCompactToBigCheckedFlagsOverflow(t *testing.T) {
	_, _, overflow := compactToBigChecked(0xff123456)
	assert.True(t, overflow)
}

func TestCompactToBigCheckedFlagsNegative(t *testing.T) {
	_, negative, _ := compactToBigChecked(0x01800001)
	assert.True(t, negative)
}
