// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

import (
	"fmt"
	"strings"
)

// Chain is an ordered sequence of operations with a statically resolved
// input and output kind. The output kind of each operation is the input
// kind of the next; the final one is the chain's output kind, fixed at
// construction and independent of any value.
//
// Chains are immutable values: extending one returns a new chain and never
// mutates the receiver. The zero Chain is the empty identity chain on i8.
type Chain struct {
	in  Kind
	out Kind
	ops []Op
	err error
}

// Begin returns the empty chain anchored at input kind k. Its output kind
// is k and applying it is the identity.
func Begin(k Kind) Chain {
	c := Chain{in: k, out: k}
	if !k.IsValid() {
		c.err = fmt.Errorf("%w: unknown kind %d", ErrMalformedChain, uint8(k))
	}
	return c
}

// Then extends c with op, resolving the new output kind. The extension is
// rejected, before any value flows, when op does not accept c's current
// output kind; the error pinpoints the op, the kind and the position.
func (c Chain) Then(op Op) (Chain, error) {
	if c.err != nil {
		return c, c.err
	}
	out, err := op.Output(c.out)
	if err != nil {
		return c, &InapplicableOperationError{Op: op, Kind: c.out, Index: len(c.ops)}
	}
	ops := make([]Op, len(c.ops), len(c.ops)+1)
	copy(ops, c.ops)
	return Chain{in: c.in, out: out, ops: append(ops, op)}, nil
}

// Compose builds and validates a chain over ops, starting from input kind
// k. It stops at the first inapplicable operation.
func Compose(k Kind, ops ...Op) (Chain, error) {
	c := Begin(k)
	if c.err != nil {
		return c, c.err
	}
	for _, op := range ops {
		var err error
		if c, err = c.Then(op); err != nil {
			return c, err
		}
	}
	return c, nil
}

// SignFlip returns c extended with [SignFlip]. Part of the fluent builder
// surface: the first ill-formed step latches and is reported by
// [Chain.Err] and every Apply.
func (c Chain) SignFlip() Chain {
	return c.then(SignFlip)
}

// Truncate returns c extended with [Truncate] to w bits, latching on an
// inapplicable target width.
func (c Chain) Truncate(w uint) Chain {
	return c.then(Truncate(w))
}

// Extend returns c extended with [Extend] to w bits, latching on an
// inapplicable target width.
func (c Chain) Extend(w uint) Chain {
	return c.then(Extend(w))
}

// then is the latching Then behind the fluent surface.
func (c Chain) then(op Op) Chain {
	next, err := c.Then(op)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return c
	}
	return next
}

// In returns the chain's declared input kind.
func (c Chain) In() Kind {
	return c.in
}

// Out returns the chain's resolved output kind.
func (c Chain) Out() Kind {
	return c.out
}

// Len returns the number of operations in the chain.
func (c Chain) Len() int {
	return len(c.ops)
}

// Err returns the ill-formedness latched by the fluent builder, nil for a
// well-formed chain.
func (c Chain) Err() error {
	return c.err
}

// Apply runs v through the chain, yielding a value of the output kind.
// It fails only statically: with the latched error when the chain is
// ill-formed, or with [ErrMalformedChain] when v's kind is not the chain's
// input kind. A well-formed chain applied to a matching value never fails.
func (c Chain) Apply(v Value) (Value, error) {
	if c.err != nil {
		return Value{}, c.err
	}
	if v.kind != c.in {
		return Value{}, &MalformedChainError{Want: c.in, Got: v.kind}
	}
	k, bits := v.kind, v.bits
	for _, op := range c.ops {
		k, bits = op.apply(k, bits)
	}
	return Value{kind: k, bits: bits}, nil
}

// Cast composes ops over v's kind and applies them to v in one step.
func Cast(v Value, ops ...Op) (Value, error) {
	c, err := Compose(v.kind, ops...)
	if err != nil {
		return Value{}, err
	}
	return c.Apply(v)
}

// String renders the chain as its input kind followed by the operation
// mnemonics, e.g. "i32: flip.e64.t8". The empty chain renders as "i8: id".
func (c Chain) String() string {
	var sb strings.Builder
	sb.WriteString(c.in.String())
	sb.WriteString(": ")
	if len(c.ops) == 0 {
		sb.WriteString("id")
		return sb.String()
	}
	for i, op := range c.ops {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}
