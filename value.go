// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

import (
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// Int is the set of integer types a [Value] converts to and from: the eight
// native fixed-width integer types plus the 128-bit [num.I128] and
// [num.U128].
type Int interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | num.I128 | num.U128
}

// Value is a fixed-width bit pattern tagged with its [Kind]. The pattern is
// held low-aligned in a 128-bit container with every bit above the kind's
// width clear; signedness is interpretation on read, never stored state.
//
// Values are comparable: two Values are equal iff their kinds and bit
// patterns are equal. The zero Value is the i8 value 0.
type Value struct {
	kind Kind
	bits num.U128
}

// In builds a Value from a native integer, inferring the kind from the
// static type of v. Signed negatives keep their two's complement pattern:
// In(int8(-1)) holds the pattern 0xFF tagged i8.
func In[T Int](v T) Value {
	switch x := any(v).(type) {
	case int8:
		return Value{kind: S8, bits: num.U128From8(uint8(x))}
	case uint8:
		return Value{kind: U8, bits: num.U128From8(x)}
	case int16:
		return Value{kind: S16, bits: num.U128From16(uint16(x))}
	case uint16:
		return Value{kind: U16, bits: num.U128From16(x)}
	case int32:
		return Value{kind: S32, bits: num.U128From32(uint32(x))}
	case uint32:
		return Value{kind: U32, bits: num.U128From32(x)}
	case int64:
		return Value{kind: S64, bits: num.U128From64(uint64(x))}
	case uint64:
		return Value{kind: U64, bits: num.U128From64(x)}
	case num.I128:
		return Value{kind: S128, bits: x.AsU128()}
	case num.U128:
		return Value{kind: U128, bits: x}
	}
	panic("yabe: Int constraint covers no further types")
}

// Out extracts the native integer of type T from v. The kind of v must
// match T exactly; a mismatch reports [ErrMalformedChain] rather than
// silently coercing.
func Out[T Int](v Value) (T, error) {
	var zero T
	if want := kindOfType[T](); v.kind != want {
		return zero, &MalformedChainError{Want: want, Got: v.kind}
	}
	_, lo := v.bits.Raw()
	var out any
	switch any(zero).(type) {
	case int8:
		out = int8(uint8(lo))
	case uint8:
		out = uint8(lo)
	case int16:
		out = int16(uint16(lo))
	case uint16:
		out = uint16(lo)
	case int32:
		out = int32(uint32(lo))
	case uint32:
		out = uint32(lo)
	case int64:
		out = int64(lo)
	case uint64:
		out = lo
	case num.I128:
		out = v.bits.AsI128()
	case num.U128:
		out = v.bits
	}
	return out.(T), nil
}

// kindOfType maps a static Int type to its kind tag.
func kindOfType[T Int]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return S8
	case uint8:
		return U8
	case int16:
		return S16
	case uint16:
		return U16
	case int32:
		return S32
	case uint32:
		return U32
	case int64:
		return S64
	case uint64:
		return U64
	case num.I128:
		return S128
	default:
		return U128
	}
}

// ValueOf builds a Value of kind k from a raw low-aligned bit pattern.
// Patterns with bits set above k's width do not fit k and report
// [ErrMalformedChain]; no implicit truncation takes place.
func ValueOf(k Kind, bits num.U128) (Value, error) {
	if !k.IsValid() {
		return Value{}, fmt.Errorf("%w: unknown kind %d", ErrMalformedChain, uint8(k))
	}
	if masked := bits.And(lowMask(k.Width())); masked != bits {
		return Value{}, fmt.Errorf("%w: bit pattern %v does not fit %v", ErrMalformedChain, bits, k)
	}
	return Value{kind: k, bits: bits}, nil
}

// Kind returns the kind tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Bits returns the canonical low-aligned bit pattern of v.
func (v Value) Bits() num.U128 {
	return v.bits
}

// Uint64 extracts v for unsigned kinds of width 64 or below.
// Other kinds report [ErrMalformedChain].
func (v Value) Uint64() (uint64, error) {
	if v.kind.IsSigned() || v.kind.Width() > 64 {
		return 0, fmt.Errorf("%w: %v does not extract to uint64", ErrMalformedChain, v.kind)
	}
	_, lo := v.bits.Raw()
	return lo, nil
}

// Int64 extracts v for signed kinds of width 64 or below, sign-extending
// the canonical pattern. Other kinds report [ErrMalformedChain].
func (v Value) Int64() (int64, error) {
	if !v.kind.IsSigned() || v.kind.Width() > 64 {
		return 0, fmt.Errorf("%w: %v does not extract to int64", ErrMalformedChain, v.kind)
	}
	_, lo := signExtendBits(v.bits, v.kind.Width(), 64).Raw()
	return int64(lo), nil
}

// String renders v in decimal under its kind's signedness.
func (v Value) String() string {
	if v.kind.IsSigned() {
		return signExtendBits(v.bits, v.kind.Width(), 128).AsI128().String()
	}
	return v.bits.String()
}

// Min returns the smallest representable value of k: zero for unsigned
// kinds, the lone-sign-bit pattern for signed kinds.
func (k Kind) Min() Value {
	if k.IsSigned() {
		return Value{kind: k, bits: u128One.Lsh(k.Width() - 1)}
	}
	return Value{kind: k}
}

// Max returns the largest representable value of k: all bits set for
// unsigned kinds, all but the sign bit for signed kinds.
func (k Kind) Max() Value {
	w := k.Width()
	if k.IsSigned() {
		w--
	}
	return Value{kind: k, bits: lowMask(w)}
}
