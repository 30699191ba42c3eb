// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe

import (
	"errors"
	"fmt"
)

// The two static error classes. Both are established while a chain is
// being built or typed, before any value is processed; applying a
// well-formed chain to a value of its input kind cannot fail.
var (
	// ErrInapplicableOperation reports an operation applied to a kind it
	// does not accept: truncating to an equal or wider width, extending to
	// an equal or narrower width, or a width outside the vocabulary.
	ErrInapplicableOperation = errors.New("inapplicable operation")

	// ErrMalformedChain reports an unresolvable composition or a value
	// whose kind does not match the chain or pattern it is supplied to.
	ErrMalformedChain = errors.New("malformed chain")
)

// InapplicableOperationError pinpoints a rejected operation: the op, the
// kind it was asked to transform, and its position in the chain. Index is
// -1 for a standalone [Op.Output] query.
//
// It matches [ErrInapplicableOperation] under errors.Is.
type InapplicableOperationError struct {
	Op    Op
	Kind  Kind
	Index int
}

func (e *InapplicableOperationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("inapplicable operation %s on %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("inapplicable operation %s on %s at position %d", e.Op, e.Kind, e.Index)
}

func (e *InapplicableOperationError) Unwrap() error {
	return ErrInapplicableOperation
}

// MalformedChainError reports a kind mismatch at a chain or extraction
// boundary: Want is the kind the boundary requires, Got the kind supplied.
//
// It matches [ErrMalformedChain] under errors.Is.
type MalformedChainError struct {
	Want Kind
	Got  Kind
}

func (e *MalformedChainError) Error() string {
	return fmt.Sprintf("malformed chain: want %s, got %s", e.Want, e.Got)
}

func (e *MalformedChainError) Unwrap() error {
	return ErrMalformedChain
}
