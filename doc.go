// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package yabe provides chained bit-reinterpretation casts over fixed-width
// integers.
//
// The package covers ten integer kinds (signed and unsigned at widths 8, 16,
// 32, 64 and 128) and four primitive operation families:
//
//   - [Identity]: maps every kind, and every value, to itself
//   - [SignFlip]: reinterprets the same bit pattern under the opposite signedness
//   - [Truncate]: narrows to a target width, keeping the low-order bits
//   - [Extend]: widens to a target width by sign extension (signed kinds)
//     or zero extension (unsigned kinds)
//
// Chaining these makes every explicit integer conversion auditable at the
// call site, which is the point: protocol codecs and binary parsers get the
// exact two's complement reinterpretation they spelled out, with nothing
// implicit in between.
//
// # Static chain typing
//
// A [Chain] is an ordered sequence of operations anchored at an input [Kind].
// Each operation's output kind depends only on the kind produced by its
// predecessor, never on a value, so a chain's output kind is resolved while
// the chain is built. Ill-formed chains (truncating to an equal or wider
// width, extending to an equal or narrower one, a width outside the
// vocabulary) are rejected at construction with [ErrInapplicableOperation].
// A well-formed chain applied to a value of its input kind cannot fail:
// every primitive is total over all 2^width patterns of its input kind.
//
// Order matters. SignFlip then Extend zero-extends when the flip made the
// kind unsigned; Extend then SignFlip would have extended under the original
// signedness first.
//
// # Values
//
// A [Value] is a bit pattern tagged with its kind, held low-aligned in a
// 128-bit container. [In] builds one from a native integer, inferring the
// kind from the static type; [Out] extracts one back, rejecting kind
// mismatches instead of coercing. The 128-bit kinds are backed by
// [num.I128] and [num.U128].
//
// # Construction surfaces
//
// Three equivalent ways to build and run a chain:
//
//   - [Cast]: one-shot variadic compose-and-apply
//   - [Compose] / [Chain.Then]: incremental, each step reporting rejection
//   - [Begin] with the fluent [Chain.SignFlip], [Chain.Truncate],
//     [Chain.Extend]: the first ill-formed step latches and surfaces from
//     [Chain.Err] and [Chain.Apply]
//
// # Errors
//
// Exactly two classes, both static: [ErrInapplicableOperation] for an
// operation rejected by the kind at its chain position, and
// [ErrMalformedChain] for a composition or value whose kinds cannot line up.
// Both are established before any value is processed; there are no
// value-dependent failures.
//
// # Example
//
//	v, err := yabe.Cast(yabe.In(int32(-1)), yabe.SignFlip, yabe.Extend(64), yabe.SignFlip)
//	if err != nil {
//		// unreachable here: every step accepts its input kind
//	}
//	// v is the i64 value 4294967295: the flip reinterprets -1 as u32
//	// 0xFFFFFFFF, the extension zero-fills, the final flip reinterprets back.
//
// All kinds, operations and chains are immutable values; any number of
// goroutines may build and apply chains concurrently without synchronization.
package yabe
