// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

import num "github.com/shabbyrobe/go-num"

// Bit-level primitives behind the operation vocabulary. Everything here is
// total over canonical patterns: the value occupies the low-order bits of
// the 128-bit container and every bit above its kind's width is zero.

var (
	u128One = num.U128From64(1)
	u128Max = num.U128FromRaw(^uint64(0), ^uint64(0))
)

// lowMask returns a mask covering the w low-order bits, w in [1, 128].
func lowMask(w uint) num.U128 {
	if w >= 128 {
		return u128Max
	}
	return u128One.Lsh(w).Sub(u128One)
}

// truncateBits narrows a canonical pattern to its w low-order bits.
func truncateBits(bits num.U128, w uint) num.U128 {
	return bits.And(lowMask(w))
}

// signExtendBits widens a canonical from-bit pattern to width to by
// replicating the sign bit: (x ^ m) - m with m = 1<<(from-1)
// (https://graphics.stanford.edu/~seander/bithacks.html, "Sign extending
// from a variable bit-width"). Subtraction wraps mod 2^128, which keeps the
// identity exact for negative patterns; the final mask restores canonical
// form at the target width.
//
// Zero extension needs no counterpart: canonical patterns already have zero
// high bits.
func signExtendBits(bits num.U128, from, to uint) num.U128 {
	m := u128One.Lsh(from - 1)
	return bits.Xor(m).Sub(m).And(lowMask(to))
}
