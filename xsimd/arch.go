// Copyright 2025 go-xsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xsimd

// Arch is a capability tag: a zero-size type naming one instruction set.
//
// The set of tags is closed. Kernels are unexported methods, so only the
// tags declared in this package satisfy Arch. A tag that does not define an
// operation inherits it from the tag it embeds, which is also what Parent
// reports.
type Arch interface {
	// Name is the lower-case instruction set name ("sse4.1", "avx512bw").
	Name() string

	// Width is the register width in bytes.
	Width() int

	// Alignment is the alignment in bytes aligned loads and stores expect.
	Alignment() int

	// Parent is the tag this one falls back to, nil for Generic.
	Parent() Arch

	// Available reports whether the running CPU implements the instruction
	// set. It is informational: every tag runs everywhere.
	Available() bool

	kernel
}

// kernel is the per-tag operation set. Registers passed in and returned are
// Width() bytes wide; k describes the lane type.
type kernel interface {
	add(k kind, a, b Register) Register
	sub(k kind, a, b Register) Register
	mul(k kind, a, b Register) Register
	div(k kind, a, b Register) Register
	neg(k kind, a Register) Register

	bitwiseAnd(k kind, a, b Register) Register
	bitwiseOr(k kind, a, b Register) Register
	bitwiseXor(k kind, a, b Register) Register
	// bitwiseAndNot is a & ^b.
	bitwiseAndNot(k kind, a, b Register) Register
	bitwiseNot(k kind, a Register) Register
	lshift(k kind, a Register, n int) Register
	rshift(k kind, a Register, n int) Register

	eq(k kind, a, b Register) Register
	neq(k kind, a, b Register) Register
	lt(k kind, a, b Register) Register
	le(k kind, a, b Register) Register
	gt(k kind, a, b Register) Register
	ge(k kind, a, b Register) Register
	selectv(k kind, c, a, b Register) Register

	sadd(k kind, a, b Register) Register
	ssub(k kind, a, b Register) Register
	max(k kind, a, b Register) Register
	min(k kind, a, b Register) Register
	hadd(k kind, a Register) uint64
	zipLo(k kind, a, b Register) Register
	zipHi(k kind, a, b Register) Register

	broadcast(k kind, v uint64) Register
	set(k kind, vals []uint64) Register
	loadAligned(k kind, mem []byte) Register
	loadUnaligned(k kind, mem []byte) Register
	storeAligned(k kind, mem []byte, a Register)
	storeUnaligned(k kind, mem []byte, a Register)

	// toFloat converts int32/int64 lanes to float32/float64, toInt the
	// other way with truncation. k is the source kind.
	toFloat(k kind, a Register) Register
	toInt(k kind, a Register) Register

	boolKernel
}

// boolKernel operates on the tag's boolean register for lanes of kind k.
type boolKernel interface {
	boolAnd(k kind, a, b Register) Register
	boolOr(k kind, a, b Register) Register
	boolXor(k kind, a, b Register) Register
	boolAndNot(k kind, a, b Register) Register
	boolNot(k kind, a Register) Register
	boolEq(k kind, a, b Register) Register
	boolNeq(k kind, a, b Register) Register
	boolAll(k kind, a Register) bool
	boolAny(k kind, a Register) bool
	boolGet(k kind, a Register, i int) bool
	boolSet(k kind, a *Register, i int, v bool)
	boolPack(k kind, vals []bool) Register
	boolMask(k kind, a Register) uint64
	boolFromMask(k kind, m uint64) Register
}

// width is implemented by the register width markers kernels shared
// between tags are parameterized with.
type width interface {
	bytes() int
}

type (
	w128 struct{}
	w256 struct{}
	w512 struct{}
)

func (w128) bytes() int { return 16 }
func (w256) bytes() int { return 32 }
func (w512) bytes() int { return 64 }

func widthOf[W width]() int {
	var w W
	return w.bytes()
}

// Generic is the portable scalar kernel. It implements every operation for
// every lane type and ends every fallback chain.
type Generic struct{ genericKernel[w128] }

// SSE is the first x86 SIMD set. It only brings float32 arithmetic, which
// the SSE2 kernel covers, so its integer operations are generic.
type SSE struct{ Generic }

// SSE2 is the x86-64 baseline.
type SSE2 struct{ SSE }

type SSE3 struct{ SSE2 }

type SSSE3 struct{ SSE3 }

type SSE41 struct{ SSSE3 }

type SSE42 struct{ SSE41 }

// AVX widens the float instructions to 256 bits. Integer operations still
// run on two SSE4.2 halves.
type AVX struct{ splitKernel[SSE42, w256] }

type AVX2 struct{ AVX }

// AVX512F uses k-mask registers for 4 and 8 byte lanes. 1 and 2 byte lanes
// run on two AVX2 halves and use the fallback vector bool.
type AVX512F struct{ splitKernel[AVX2, w512] }

// AVX512BW adds byte and word instructions, so every lane width uses
// k-masks.
type AVX512BW struct{ AVX512F }

// NEON is 32-bit ARM Advanced SIMD: no float64 lanes and no vector divide.
type NEON struct{ Generic }

// NEON64 is AArch64 Advanced SIMD.
type NEON64 struct{ NEON }

func (Generic) Name() string    { return "generic" }
func (Generic) Width() int      { return 16 }
func (Generic) Alignment() int  { return 16 }
func (Generic) Parent() Arch    { return nil }
func (Generic) Available() bool { return true }

func (SSE) Name() string    { return "sse" }
func (SSE) Width() int      { return 16 }
func (SSE) Alignment() int  { return 16 }
func (SSE) Parent() Arch    { return Generic{} }
func (SSE) Available() bool { return hasSSE }

func (SSE2) Name() string    { return "sse2" }
func (SSE2) Width() int      { return 16 }
func (SSE2) Alignment() int  { return 16 }
func (SSE2) Parent() Arch    { return SSE{} }
func (SSE2) Available() bool { return hasSSE2 }

func (SSE3) Name() string    { return "sse3" }
func (SSE3) Width() int      { return 16 }
func (SSE3) Alignment() int  { return 16 }
func (SSE3) Parent() Arch    { return SSE2{} }
func (SSE3) Available() bool { return hasSSE3 }

func (SSSE3) Name() string    { return "ssse3" }
func (SSSE3) Width() int      { return 16 }
func (SSSE3) Alignment() int  { return 16 }
func (SSSE3) Parent() Arch    { return SSE3{} }
func (SSSE3) Available() bool { return hasSSSE3 }

func (SSE41) Name() string    { return "sse4.1" }
func (SSE41) Width() int      { return 16 }
func (SSE41) Alignment() int  { return 16 }
func (SSE41) Parent() Arch    { return SSSE3{} }
func (SSE41) Available() bool { return hasSSE41 }

func (SSE42) Name() string    { return "sse4.2" }
func (SSE42) Width() int      { return 16 }
func (SSE42) Alignment() int  { return 16 }
func (SSE42) Parent() Arch    { return SSE41{} }
func (SSE42) Available() bool { return hasSSE42 }

func (AVX) Name() string    { return "avx" }
func (AVX) Width() int      { return 32 }
func (AVX) Alignment() int  { return 32 }
func (AVX) Parent() Arch    { return SSE42{} }
func (AVX) Available() bool { return hasAVX }

func (AVX2) Name() string    { return "avx2" }
func (AVX2) Width() int      { return 32 }
func (AVX2) Alignment() int  { return 32 }
func (AVX2) Parent() Arch    { return AVX{} }
func (AVX2) Available() bool { return hasAVX2 }

func (AVX512F) Name() string    { return "avx512f" }
func (AVX512F) Width() int      { return 64 }
func (AVX512F) Alignment() int  { return 64 }
func (AVX512F) Parent() Arch    { return AVX2{} }
func (AVX512F) Available() bool { return hasAVX512F }

func (AVX512BW) Name() string    { return "avx512bw" }
func (AVX512BW) Width() int      { return 64 }
func (AVX512BW) Alignment() int  { return 64 }
func (AVX512BW) Parent() Arch    { return AVX512F{} }
func (AVX512BW) Available() bool { return hasAVX512BW }

func (NEON) Name() string    { return "neon" }
func (NEON) Width() int      { return 16 }
func (NEON) Alignment() int  { return 16 }
func (NEON) Parent() Arch    { return Generic{} }
func (NEON) Available() bool { return hasNEON }

func (NEON64) Name() string    { return "neon64" }
func (NEON64) Width() int      { return 16 }
func (NEON64) Alignment() int  { return 16 }
func (NEON64) Parent() Arch    { return NEON{} }
func (NEON64) Available() bool { return hasNEON64 }

// Archs lists every tag, least specialized first within each family.
func Archs() []Arch {
	return []Arch{
		Generic{},
		SSE{}, SSE2{}, SSE3{}, SSSE3{}, SSE41{}, SSE42{},
		AVX{}, AVX2{}, AVX512F{}, AVX512BW{},
		NEON{}, NEON64{},
	}
}

// Chain returns a and its ancestors, most specialized first. The last
// element is always Generic.
func Chain(a Arch) []Arch {
	var out []Arch
	for ; a != nil; a = a.Parent() {
		out = append(out, a)
	}
	return out
}

// ArchByName returns the tag called name, as reported by Name.
func ArchByName(name string) (Arch, bool) {
	for _, a := range Archs() {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}
