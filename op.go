// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

import (
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

// Op is one primitive cast operation. The zero Op is [Identity].
//
// An Op is pure kind-level data: whether it applies and which kind it
// produces is decided entirely by the input kind ([Op.Applicable],
// [Op.Output]) before any value is read. Value application is a total
// function once applicability holds.
type Op struct {
	fam   opFamily
	width uint
}

type opFamily uint8

const (
	famIdentity opFamily = iota
	famSignFlip
	famTruncate
	famExtend
)

// Identity maps every kind, and every value, to itself.
var Identity = Op{fam: famIdentity}

// SignFlip reinterprets the bit pattern under the opposite signedness.
// It maps every kind to its same-width counterpart; no bits change.
var SignFlip = Op{fam: famSignFlip}

// Truncate returns the operation narrowing a value to w bits, keeping the
// low-order bits and the signedness. Valid targets are 8, 16, 32 and 64,
// each only from a strictly wider kind; any other w yields an operation no
// kind accepts.
func Truncate(w uint) Op {
	return Op{fam: famTruncate, width: w}
}

// Extend returns the operation widening a value to w bits: sign extension
// for signed kinds, zero extension for unsigned. Valid targets are 16, 32,
// 64 and 128, each only from a strictly narrower kind; any other w yields
// an operation no kind accepts.
func Extend(w uint) Op {
	return Op{fam: famExtend, width: w}
}

// Applicable reports whether op accepts input kind k.
func (op Op) Applicable(k Kind) bool {
	if !k.IsValid() {
		return false
	}
	switch op.fam {
	case famIdentity, famSignFlip:
		return true
	case famTruncate:
		_, ok := KindOf(k.IsSigned(), op.width)
		return ok && op.width < k.Width()
	case famExtend:
		_, ok := KindOf(k.IsSigned(), op.width)
		return ok && op.width > k.Width()
	}
	return false
}

// Output resolves the kind op produces from input kind k, or reports
// [ErrInapplicableOperation] when op does not accept k.
func (op Op) Output(k Kind) (Kind, error) {
	if !op.Applicable(k) {
		return 0, &InapplicableOperationError{Op: op, Kind: k, Index: -1}
	}
	switch op.fam {
	case famSignFlip:
		return k.Opposite(), nil
	case famTruncate, famExtend:
		out, _ := KindOf(k.IsSigned(), op.width)
		return out, nil
	}
	return k, nil
}

// apply is op's value function. Callers must have established
// applicability; from there it is total and cannot fail.
func (op Op) apply(k Kind, bits num.U128) (Kind, num.U128) {
	switch op.fam {
	case famSignFlip:
		return k.Opposite(), bits
	case famTruncate:
		out, _ := KindOf(k.IsSigned(), op.width)
		return out, truncateBits(bits, op.width)
	case famExtend:
		out, _ := KindOf(k.IsSigned(), op.width)
		if k.IsSigned() {
			return out, signExtendBits(bits, k.Width(), op.width)
		}
		return out, bits
	}
	return k, bits
}

// String renders op with the mnemonics of the chain surface:
// id, flip, t8..t64, e16..e128.
func (op Op) String() string {
	switch op.fam {
	case famSignFlip:
		return "flip"
	case famTruncate:
		return "t" + strconv.FormatUint(uint64(op.width), 10)
	case famExtend:
		return "e" + strconv.FormatUint(uint64(op.width), 10)
	}
	return "id"
}
