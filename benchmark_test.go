// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yabe_test

import (
	"testing"

	"github.com/Kolsky/yabe"
)

// BenchmarkCompose measures chain construction and validation.
func BenchmarkCompose(b *testing.B) {
	for b.Loop() {
		_, _ = yabe.Compose(yabe.S32, yabe.SignFlip, yabe.Extend(64), yabe.Truncate(8), yabe.SignFlip)
	}
}

// BenchmarkChainApply measures application of a prebuilt chain.
func BenchmarkChainApply(b *testing.B) {
	chain, err := yabe.Compose(yabe.S32, yabe.SignFlip, yabe.Extend(64), yabe.Truncate(8), yabe.SignFlip)
	if err != nil {
		b.Fatal(err)
	}
	v := yabe.In(int32(-1))

	for b.Loop() {
		_, _ = chain.Apply(v)
	}
}

// BenchmarkCast measures the one-shot compose-and-apply path.
func BenchmarkCast(b *testing.B) {
	v := yabe.In(uint8(0xFE))

	for b.Loop() {
		_, _ = yabe.Cast(v, yabe.SignFlip, yabe.Extend(16), yabe.SignFlip)
	}
}

// BenchmarkApply128 measures the sign-extension path through the wide kinds.
func BenchmarkApply128(b *testing.B) {
	chain, err := yabe.Compose(yabe.S8, yabe.Extend(128), yabe.SignFlip, yabe.Truncate(64))
	if err != nil {
		b.Fatal(err)
	}
	v := yabe.In(int8(-2))

	for b.Loop() {
		_, _ = chain.Apply(v)
	}
}
