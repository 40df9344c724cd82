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

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// seq returns n lanes i*mul + off, wrapping for narrow integers.
func seq[T Lanes](n, mul, off int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i*mul + off)
	}
	return out
}

func runArchs[T Lanes](t *testing.T) {
	t.Run("generic", batchProperties[T, Generic])
	t.Run("sse2", batchProperties[T, SSE2])
	t.Run("sse4.1", batchProperties[T, SSE41])
	t.Run("sse4.2", batchProperties[T, SSE42])
	t.Run("avx", batchProperties[T, AVX])
	t.Run("avx2", batchProperties[T, AVX2])
	t.Run("avx512f", batchProperties[T, AVX512F])
	t.Run("avx512bw", batchProperties[T, AVX512BW])
	t.Run("neon", batchProperties[T, NEON])
	t.Run("neon64", batchProperties[T, NEON64])
}

func TestBatchInt8(t *testing.T)    { runArchs[int8](t) }
func TestBatchUint8(t *testing.T)   { runArchs[uint8](t) }
func TestBatchInt16(t *testing.T)   { runArchs[int16](t) }
func TestBatchUint16(t *testing.T)  { runArchs[uint16](t) }
func TestBatchInt32(t *testing.T)   { runArchs[int32](t) }
func TestBatchUint32(t *testing.T)  { runArchs[uint32](t) }
func TestBatchInt64(t *testing.T)   { runArchs[int64](t) }
func TestBatchUint64(t *testing.T)  { runArchs[uint64](t) }
func TestBatchFloat32(t *testing.T) { runArchs[float32](t) }
func TestBatchFloat64(t *testing.T) { runArchs[float64](t) }

func batchProperties[T Lanes, A Arch](t *testing.T) {
	var a A
	n := Batch[T, A]{}.Size()
	if want := a.Width() / kindOf[T]().size; n != want {
		t.Fatalf("Size: got %d, want %d", n, want)
	}

	src := seq[T](n, 3, 1)
	x := LoadUnaligned[A](src)
	y := LoadAligned[A](seq[T](n, 5, 2))

	dst := make([]T, n)
	StoreUnaligned(x, dst)
	if diff := cmp.Diff(src, dst); diff != "" {
		t.Errorf("load/store round trip (-want +got):\n%s", diff)
	}
	StoreAligned(x, dst)
	if diff := cmp.Diff(src, x.Slice()); diff != "" {
		t.Errorf("Slice (-want +got):\n%s", diff)
	}
	if got := x.Get(n - 1); got != src[n-1] {
		t.Errorf("Get(%d): got %v, want %v", n-1, got, src[n-1])
	}

	if diff := cmp.Diff(Set[A](src...).Slice(), src); diff != "" {
		t.Errorf("Set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(seq[T](n, 1, 0), Iota[A, T]().Slice()); diff != "" {
		t.Errorf("Iota (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(make([]T, n), Zero[A, T]().Slice()); diff != "" {
		t.Errorf("Zero (-want +got):\n%s", diff)
	}

	// select(x > y, x, y) == max and select(x <= y, x, y) == min.
	if diff := cmp.Diff(Max(x, y).Slice(), Select(GreaterThan(x, y), x, y).Slice()); diff != "" {
		t.Errorf("Max vs Select (-max +select):\n%s", diff)
	}
	if diff := cmp.Diff(Min(x, y).Slice(), Select(LessEqual(x, y), x, y).Slice()); diff != "" {
		t.Errorf("Min vs Select (-min +select):\n%s", diff)
	}

	if diff := cmp.Diff(x.Slice(), Sub(Add(x, y), y).Slice()); diff != "" {
		t.Errorf("(x+y)-y (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Add(x, y).Slice(), Add(y, x).Slice()); diff != "" {
		t.Errorf("x+y != y+x (-x+y +y+x):\n%s", diff)
	}
	if diff := cmp.Diff(x.Slice(), Neg(Neg(x)).Slice()); diff != "" {
		t.Errorf("-(-x) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(x.Slice(), Xor(Xor(x, y), y).Slice()); diff != "" {
		t.Errorf("(x^y)^y (-want +got):\n%s", diff)
	}

	if !Equal(x, x).All() {
		t.Errorf("Equal(x, x).All(): got false")
	}
	if NotEqual(x, x).Any() {
		t.Errorf("NotEqual(x, x).Any(): got true")
	}
	if got := LessThan(x, y).Not().Mask(); got != GreaterEqual(x, y).Mask() {
		t.Errorf("!(x<y) = %#x, x>=y = %#x", got, GreaterEqual(x, y).Mask())
	}

	k := T(3)
	if got, want := ReduceSum(Broadcast[A](k)), T(n)*k; got != want {
		t.Errorf("ReduceSum(broadcast %v): got %v, want %v", k, got, want)
	}

	lo, hi := ZipLower(x, y), ZipUpper(x, y)
	ys := y.Slice()
	for i := range n / 2 {
		if lo.Get(2*i) != src[i] || lo.Get(2*i+1) != ys[i] {
			t.Errorf("ZipLower: lanes %d,%d: got %v,%v, want %v,%v", 2*i, 2*i+1, lo.Get(2*i), lo.Get(2*i+1), src[i], ys[i])
		}
		if hi.Get(2*i) != src[n/2+i] || hi.Get(2*i+1) != ys[n/2+i] {
			t.Errorf("ZipUpper: lanes %d,%d: got %v,%v, want %v,%v", 2*i, 2*i+1, hi.Get(2*i), hi.Get(2*i+1), src[n/2+i], ys[n/2+i])
		}
	}

	bools := alternating(n)
	m := SetBool[A, T](bools...)
	got := make([]bool, n)
	m.Store(got)
	if diff := cmp.Diff(bools, got); diff != "" {
		t.Errorf("SetBool/Store (-want +got):\n%s", diff)
	}
	sel := Select(m, x, y)
	for i := range n {
		want := ys[i]
		if bools[i] {
			want = src[i]
		}
		if sel.Get(i) != want {
			t.Errorf("Select: lane %d: got %v, want %v", i, sel.Get(i), want)
		}
	}
	if !BoolBroadcast[A, T](true).All() || BoolBroadcast[A, T](false).Any() {
		t.Errorf("BoolBroadcast: All/Any mismatch")
	}
	if got := m.And(m.Not()).Any(); got {
		t.Errorf("m & !m: Any got true")
	}
	if !m.Or(m.Not()).All() {
		t.Errorf("m | !m: All got false")
	}
	m.Set(1, true)
	if !m.Get(1) || !m.Get(1+n) {
		t.Errorf("Set(1): Get(1)=%v Get(1+n)=%v, want true", m.Get(1), m.Get(1+n))
	}
}

func TestAddInt32(t *testing.T) {
	x := Set[SSE2](int32(1), 2, 3, 4)
	y := Set[SSE2](int32(10), 20, 30, 40)
	if diff := cmp.Diff([]int32{11, 22, 33, 44}, Add(x, y).Slice()); diff != "" {
		t.Errorf("Add (-want +got):\n%s", diff)
	}
	mask := SetBool[SSE2, int32](true, false, true, false)
	if diff := cmp.Diff([]int32{1, 20, 3, 40}, Select(mask, x, y).Slice()); diff != "" {
		t.Errorf("Select (-want +got):\n%s", diff)
	}
}

func TestSaturatedAdd(t *testing.T) {
	if got := SaturatedAdd(Broadcast[SSE2](int8(127)), Broadcast[SSE2](int8(1))).Get(0); got != 127 {
		t.Errorf("int8 127+1: got %d, want 127", got)
	}
	if got := SaturatedAdd(Broadcast[AVX2](uint8(255)), Broadcast[AVX2](uint8(1))).Get(31); got != 255 {
		t.Errorf("uint8 255+1: got %d, want 255", got)
	}
	if got := SaturatedSub(Broadcast[NEON](int16(-32768)), Broadcast[NEON](int16(1))).Get(3); got != -32768 {
		t.Errorf("int16 -32768-1: got %d, want -32768", got)
	}
	if got := SaturatedAdd(Broadcast[AVX512BW](int64(math.MaxInt64)), Broadcast[AVX512BW](int64(5))).Get(7); got != math.MaxInt64 {
		t.Errorf("int64 max+5: got %d", got)
	}
}

func TestShiftRightInt64(t *testing.T) {
	check := func(name string, got int64) {
		if got != -4 {
			t.Errorf("%s: -8>>1: got %d, want -4", name, got)
		}
	}
	check("generic", ShiftRight(Broadcast[Generic](int64(-8)), 1).Get(1))
	check("sse2", ShiftRight(Broadcast[SSE2](int64(-8)), 1).Get(1))
	check("avx2", ShiftRight(Broadcast[AVX2](int64(-8)), 1).Get(3))
	check("avx512f", ShiftRight(Broadcast[AVX512F](int64(-8)), 1).Get(7))
	check("neon64", ShiftRight(Broadcast[NEON64](int64(-8)), 1).Get(1))

	if got := ShiftRight(Broadcast[SSE2](int8(-128)), 7).Get(0); got != -1 {
		t.Errorf("int8 -128>>7: got %d, want -1", got)
	}
	if got := ShiftRight(Broadcast[AVX512F](uint8(0x80)), 7).Get(63); got != 1 {
		t.Errorf("uint8 0x80>>7: got %d, want 1", got)
	}
	if got := ShiftLeft(Broadcast[AVX2](uint8(0x81)), 1).Get(5); got != 0x02 {
		t.Errorf("uint8 0x81<<1: got %#x, want 0x02", got)
	}
}

func TestSetArity(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrArity) {
			t.Errorf("recovered %v, want an error wrapping ErrArity", err)
		}
	}()
	Set[SSE2](int32(1), 2, 3)
	t.Errorf("Set with 3 values on 4 lanes did not panic")
}

func TestGetOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Get(4) on 4 lanes did not panic")
		}
	}()
	Zero[SSE2, float32]().Get(4)
}

func TestConversions(t *testing.T) {
	i := Set[AVX](int32(-3), 0, 7, 1<<20, 5, -9, 11, 13)
	f := ConvertToFloat32(i)
	if diff := cmp.Diff([]float32{-3, 0, 7, 1 << 20, 5, -9, 11, 13}, f.Slice()); diff != "" {
		t.Errorf("ConvertToFloat32 (-want +got):\n%s", diff)
	}
	back := ConvertToInt32(Set[SSE41](float32(1.9), -1.9, 100.5, -0.25))
	if diff := cmp.Diff([]int32{1, -1, 100, 0}, back.Slice()); diff != "" {
		t.Errorf("ConvertToInt32 (-want +got):\n%s", diff)
	}
	d := ConvertToFloat64(Set[NEON64](int64(-1)<<40, 3))
	if diff := cmp.Diff([]float64{-(1 << 40), 3}, d.Slice()); diff != "" {
		t.Errorf("ConvertToFloat64 (-want +got):\n%s", diff)
	}
	l := ConvertToInt64(Set[AVX512F](7.9, -7.9, 0, 1e15, -2, 3, 4, 5))
	if diff := cmp.Diff([]int64{7, -7, 0, 1e15, -2, 3, 4, 5}, l.Slice()); diff != "" {
		t.Errorf("ConvertToInt64 (-want +got):\n%s", diff)
	}
}

func TestDivFloat(t *testing.T) {
	q := Div(Set[SSE](float32(1), 9, -6, 0.5), Broadcast[SSE](float32(2)))
	if diff := cmp.Diff([]float32{0.5, 4.5, -3, 0.25}, q.Slice()); diff != "" {
		t.Errorf("Div (-want +got):\n%s", diff)
	}
}

func TestLdexpFrexp(t *testing.T) {
	x := Set[SSE2](0.75, -12.0)
	frac, exp := Frexp[int64](x)
	if diff := cmp.Diff([]float64{0.75, -0.75}, frac.Slice()); diff != "" {
		t.Errorf("Frexp fraction (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{0, 4}, exp.Slice()); diff != "" {
		t.Errorf("Frexp exponent (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(x.Slice(), Ldexp(frac, exp).Slice()); diff != "" {
		t.Errorf("Ldexp(Frexp(x)) (-want +got):\n%s", diff)
	}
}

func TestBatchString(t *testing.T) {
	if got, want := Iota[SSE2, int32]().String(), "Batch[int32, sse2][0 1 2 3]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
	if got, want := SetBool[AVX512F, int64](true, false, true, false, true, false, true, false).String(),
		"BatchBool[int64, avx512f][true false true false true false true false]"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestBatchBoolMask(t *testing.T) {
	x := Iota[AVX512BW, uint8]()
	b := LessThan(x, Broadcast[AVX512BW](uint8(10)))
	if got, want := b.Mask(), uint64(0x3FF); got != want {
		t.Errorf("Mask: got %#x, want %#x", got, want)
	}
	if got, want := b.Register().w[0], uint64(0x3FF); got != want {
		t.Errorf("k-mask register: got %#x, want %#x", got, want)
	}
	fb := LessThan(Iota[AVX512F, int16](), Broadcast[AVX512F](int16(2)))
	if got := fb.Register().w[0]; got != 0x00000000FFFFFFFF {
		t.Errorf("fallback register: got %#x, want 0xffffffff", got)
	}
}

func boolRegisterRoundTrip[T Lanes, A Arch](t *testing.T) {
	t.Helper()
	var a A
	size := kindOf[T]().size
	b := LessThan(Iota[A, T](), Broadcast[A](T(3)))
	c := BoolFromRegister[T, A](b.Register())
	if c.Register() != b.Register() {
		t.Errorf("%s: register changed: got %v, want %v", a.Name(), c.Register(), b.Register())
	}
	if got, want := c.Mask(), uint64(0b111); got != want {
		t.Errorf("%s: Mask after round trip: got %#b, want %#b", a.Name(), got, want)
	}

	m := BoolFromMask[A, T](0b101)
	if got, want := m.Mask(), uint64(0b101); got != want {
		t.Errorf("%s: BoolFromMask: got %#b, want %#b", a.Name(), got, want)
	}
	if !m.Get(0) || m.Get(1) || !m.Get(2) {
		t.Errorf("%s: BoolFromMask lanes: got %v", a.Name(), m)
	}
	reg := m.AsBatch().Register()
	for i := range m.Size() {
		want := uint64(0)
		if i == 0 || i == 2 {
			want = laneMask(size)
		}
		if got := reg.lane(size, i); got != want {
			t.Errorf("%s: AsBatch: lane %d: got %#x, want %#x", a.Name(), i, got, want)
		}
	}
}

func TestBoolFromRegister(t *testing.T) {
	boolRegisterRoundTrip[int32, SSE2](t)
	boolRegisterRoundTrip[float64, AVX](t)
	boolRegisterRoundTrip[int32, AVX512F](t)
	boolRegisterRoundTrip[int16, AVX512F](t)
	boolRegisterRoundTrip[uint8, AVX512BW](t)
	boolRegisterRoundTrip[float32, NEON64](t)
}

func TestBoolFromMaskIgnoresHighBits(t *testing.T) {
	if got := BoolFromMask[SSE2, int64](^uint64(0)).Mask(); got != 0b11 {
		t.Errorf("sse2 int64: got %#b, want 0b11", got)
	}
	if got := BoolFromMask[AVX512F, float64](0x1FF).Mask(); got != 0xFF {
		t.Errorf("avx512f float64: got %#x, want 0xff", got)
	}
	if got := BoolFromMask[AVX512BW, int8](^uint64(0)).Mask(); got != ^uint64(0) {
		t.Errorf("avx512bw int8: got %#x, want all 64 bits", got)
	}
}

func TestSelectMask(t *testing.T) {
	got := SelectMask(0b1010, Iota[SSE2, int32](), Broadcast[SSE2](int32(9))).Slice()
	if diff := cmp.Diff([]int32{9, 1, 9, 3}, got); diff != "" {
		t.Errorf("SelectMask sse2 (-want +got):\n%s", diff)
	}
	yes := Iota[AVX512F, float32]()
	no := Neg(yes)
	got32 := SelectMask(0xFF00, yes, no).Slice()
	want32 := []float32{0, -1, -2, -3, -4, -5, -6, -7, 8, 9, 10, 11, 12, 13, 14, 15}
	if diff := cmp.Diff(want32, got32); diff != "" {
		t.Errorf("SelectMask avx512f (-want +got):\n%s", diff)
	}
}
