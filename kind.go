// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

// Kind identifies one of the ten supported integer types: a signedness
// paired with a bit width of 8, 16, 32, 64 or 128.
//
// Kinds are laid out as signed/unsigned pairs of increasing width, so the
// width and the opposite-sign counterpart derive directly from the ordinal.
type Kind uint8

const (
	S8 Kind = iota
	U8
	S16
	U16
	S32
	U32
	S64
	U64
	S128
	U128
)

// KindCount is the number of defined kinds.
const KindCount = 10

var kindNames = [KindCount]string{
	S8:   "i8",
	U8:   "u8",
	S16:  "i16",
	U16:  "u16",
	S32:  "i32",
	U32:  "u32",
	S64:  "i64",
	U64:  "u64",
	S128: "i128",
	U128: "u128",
}

// KindOf returns the kind with the given signedness and width.
// The second result is false when no kind has that width.
func KindOf(signed bool, width uint) (Kind, bool) {
	var k Kind
	switch width {
	case 8:
		k = S8
	case 16:
		k = S16
	case 32:
		k = S32
	case 64:
		k = S64
	case 128:
		k = S128
	default:
		return 0, false
	}
	if !signed {
		k |= 1
	}
	return k, true
}

// IsValid reports whether k is one of the ten defined kinds.
func (k Kind) IsValid() bool {
	return k < KindCount
}

// Width returns the bit width of k.
func (k Kind) Width() uint {
	return 8 << (k >> 1)
}

// IsSigned reports whether k interprets its patterns as two's complement.
func (k Kind) IsSigned() bool {
	return k&1 == 0
}

// Opposite returns the kind with the same width and flipped signedness.
// It is its own inverse.
func (k Kind) Opposite() Kind {
	return k ^ 1
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
