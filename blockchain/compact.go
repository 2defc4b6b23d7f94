// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Maza developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "math/big"

// compactToBig converts a compact representation of a whole number N, held
// in an unsigned 32-bit number, to a big integer. The representation is
// similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa      |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] |  23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
func compactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := compact >> 24

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(uint(exponent)-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// bigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. The compact representation only provides 23
// bits of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number. See compactToBig for details.
func bigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var isNegative bool
	var mantissa uint32

	exponent := uint(len(n.Bytes()))

	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	isNegative = n.Sign() < 0

	compact := uint32(exponent<<24) | mantissa
	if isNegative {
		compact |= 0x00800000
	}
	return compact
}

// compactToBigChecked is compactToBig with the additional negative/overflow
// flags the proof-of-work check needs, mirroring arith_uint256::SetCompact.
// overflow is set when the decoded mantissa, shifted by the exponent, would
// require more than 256 bits to represent.
func compactToBigChecked(compact uint32) (target *big.Int, negative bool, overflow bool) {
	mantissa := compact & 0x007fffff
	exponent := compact >> 24
	negative = compact&0x00800000 != 0

	size := exponent
	var word uint32
	if size <= 3 {
		word = mantissa >> (8 * (3 - size))
	} else {
		word = mantissa
	}

	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))

	target = compactToBig(compact)
	return target, negative, overflow
}
