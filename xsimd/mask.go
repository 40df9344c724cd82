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

import "unsafe"

// Bools is the method set shared by every boolean batch representation:
// the dense k-mask (MaskBool), the 512-bit vector of sentinels
// (FallbackBool) and the façade type BatchBool.
//
// Indices passed to Get and Set wrap modulo Len(), which is always a power
// of two. Load and Store read or write exactly Len() booleans; alignment
// does not apply to bool slices, so there is no aligned variant.
type Bools[B any] interface {
	Len() int
	Get(i int) bool
	Set(i int, v bool)
	Load(src []bool)
	LoadFunc(f func(i int) bool)
	Store(dst []bool)
	StoreFunc(f func(i int, v bool))

	And(o B) B
	Or(o B) B
	Xor(o B) B
	// AndNot is the receiver AND NOT o.
	AndNot(o B) B
	Not() B
	Equal(o B) B
	NotEqual(o B) B

	All() bool
	Any() bool
}

var (
	_ Bools[MaskBool[uint8]]      = (*MaskBool[uint8])(nil)
	_ Bools[MaskBool[uint64]]     = (*MaskBool[uint64])(nil)
	_ Bools[FallbackBool[int8]]   = (*FallbackBool[int8])(nil)
	_ Bools[FallbackBool[uint16]] = (*FallbackBool[uint16])(nil)
)

// MaskWord is a k-mask register: one bit per lane.
type MaskWord interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// MaskBool is a batch of booleans stored as a dense bitmask, one bit per
// lane, the way AVX-512 k-registers hold comparison results.
// Its Len is the bit width of M.
type MaskBool[M MaskWord] struct {
	value M
}

// NewMaskBool builds a mask from exactly Len() booleans, lane 0 first.
// It panics with an *ArityError otherwise.
func NewMaskBool[M MaskWord](vals ...bool) MaskBool[M] {
	var m MaskBool[M]
	checkArity(m.Len(), len(vals))
	m.Load(vals)
	return m
}

// MaskFrom wraps a raw mask value.
func MaskFrom[M MaskWord](v M) MaskBool[M] {
	return MaskBool[M]{value: v}
}

// MaskBroadcast returns a mask with every lane set to b.
func MaskBroadcast[M MaskWord](b bool) MaskBool[M] {
	if b {
		return MaskBool[M]{value: ^M(0)}
	}
	return MaskBool[M]{}
}

func (MaskBool[M]) Len() int {
	var m M
	return int(unsafe.Sizeof(m)) * 8
}

// Value returns the raw mask.
func (m MaskBool[M]) Value() M { return m.value }

func (m MaskBool[M]) index(i int) uint { return uint(i) & uint(m.Len()-1) }

func (m MaskBool[M]) Get(i int) bool {
	return m.value>>m.index(i)&1 != 0
}

func (m *MaskBool[M]) Set(i int, v bool) {
	m.Bit(i).Set(v)
}

// Bit returns a handle on lane i that reads and writes the mask in place.
func (m *MaskBool[M]) Bit(i int) MaskProxy[M] {
	return MaskProxy[M]{ref: &m.value, idx: m.index(i)}
}

func (m *MaskBool[M]) Load(src []bool) {
	src = src[:m.Len()]
	var v M
	for i, b := range src {
		if b {
			v |= 1 << uint(i)
		}
	}
	m.value = v
}

func (m *MaskBool[M]) LoadFunc(f func(i int) bool) {
	var v M
	for i := range m.Len() {
		if f(i) {
			v |= 1 << uint(i)
		}
	}
	m.value = v
}

func (m *MaskBool[M]) Store(dst []bool) {
	dst = dst[:m.Len()]
	for i := range dst {
		dst[i] = m.Get(i)
	}
}

func (m *MaskBool[M]) StoreFunc(f func(i int, v bool)) {
	for i := range m.Len() {
		f(i, m.Get(i))
	}
}

func (m MaskBool[M]) And(o MaskBool[M]) MaskBool[M]    { return MaskBool[M]{m.value & o.value} }
func (m MaskBool[M]) Or(o MaskBool[M]) MaskBool[M]     { return MaskBool[M]{m.value | o.value} }
func (m MaskBool[M]) Xor(o MaskBool[M]) MaskBool[M]    { return MaskBool[M]{m.value ^ o.value} }
func (m MaskBool[M]) AndNot(o MaskBool[M]) MaskBool[M] { return MaskBool[M]{m.value &^ o.value} }
func (m MaskBool[M]) Not() MaskBool[M]                 { return MaskBool[M]{^m.value} }

func (m MaskBool[M]) Equal(o MaskBool[M]) MaskBool[M] {
	return MaskBool[M]{^(m.value ^ o.value)}
}

func (m MaskBool[M]) NotEqual(o MaskBool[M]) MaskBool[M] {
	return MaskBool[M]{m.value ^ o.value}
}

// All reports whether every lane is set. Len() is the full width of M, so
// this is a comparison against all ones.
func (m MaskBool[M]) All() bool { return m.value == ^M(0) }

func (m MaskBool[M]) Any() bool { return m.value != 0 }

// MaskProxy reads and writes one bit of a mask it does not own.
type MaskProxy[M MaskWord] struct {
	ref *M
	idx uint
}

func (p MaskProxy[M]) Get() bool {
	return *p.ref>>p.idx&1 != 0
}

// Set writes bit idx without a branch: ref ^= (-v ^ ref) & (1 << idx).
func (p MaskProxy[M]) Set(v bool) {
	var t M
	if v {
		t = 1
	}
	*p.ref ^= (-t ^ *p.ref) & (1 << p.idx)
}

// FallbackBool is the boolean batch AVX-512F uses for 1 and 2 byte lanes,
// which have no k-mask instructions without AVX-512BW. It is a full 512-bit
// register of lanes that are all ones (true) or all zeros (false).
type FallbackBool[T Lanes] struct {
	reg Register
}

// NewFallbackBool builds a fallback bool from exactly Len() booleans.
func NewFallbackBool[T Lanes](vals ...bool) FallbackBool[T] {
	var f FallbackBool[T]
	checkArity(f.Len(), len(vals))
	f.Load(vals)
	return f
}

// FallbackBroadcast returns a fallback bool with every lane set to b.
func FallbackBroadcast[T Lanes](b bool) FallbackBool[T] {
	var f FallbackBool[T]
	if b {
		f.reg = vAllOnes(MaxRegisterBytes)
	}
	return f
}

func fallbackFromRegister[T Lanes](r Register) FallbackBool[T] {
	return FallbackBool[T]{reg: r}
}

// Register returns the 512-bit register holding the sentinels.
func (f FallbackBool[T]) Register() Register { return f.reg }

func (FallbackBool[T]) Len() int {
	var t T
	return MaxRegisterBytes / int(unsafe.Sizeof(t))
}

// lanes views the register as [Len()]T. Register storage is 8 byte aligned,
// so the view is valid for every lane type.
func (f *FallbackBool[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&f.reg.w[0])), f.Len())
}

func (f *FallbackBool[T]) index(i int) int { return i & (f.Len() - 1) }

func (f FallbackBool[T]) Get(i int) bool {
	return f.lanes()[f.index(i)] != 0
}

func (f *FallbackBool[T]) Set(i int, v bool) {
	f.Lane(i).Set(v)
}

// Lane returns a handle on lane i that reads and writes the register in
// place.
func (f *FallbackBool[T]) Lane(i int) LaneProxy[T] {
	return LaneProxy[T]{ref: &f.lanes()[f.index(i)]}
}

func (f *FallbackBool[T]) Load(src []bool) {
	src = src[:f.Len()]
	l := f.lanes()
	for i, b := range src {
		l[i] = fromBits[T](sentinel(b))
	}
}

func (f *FallbackBool[T]) LoadFunc(fn func(i int) bool) {
	l := f.lanes()
	for i := range l {
		l[i] = fromBits[T](sentinel(fn(i)))
	}
}

func (f *FallbackBool[T]) Store(dst []bool) {
	dst = dst[:f.Len()]
	for i, v := range f.lanes() {
		dst[i] = v != 0
	}
}

func (f *FallbackBool[T]) StoreFunc(fn func(i int, v bool)) {
	for i, v := range f.lanes() {
		fn(i, v != 0)
	}
}

func (f FallbackBool[T]) And(o FallbackBool[T]) FallbackBool[T] {
	return FallbackBool[T]{vAnd(MaxRegisterBytes, f.reg, o.reg)}
}

func (f FallbackBool[T]) Or(o FallbackBool[T]) FallbackBool[T] {
	return FallbackBool[T]{vOr(MaxRegisterBytes, f.reg, o.reg)}
}

func (f FallbackBool[T]) Xor(o FallbackBool[T]) FallbackBool[T] {
	return FallbackBool[T]{vXor(MaxRegisterBytes, f.reg, o.reg)}
}

func (f FallbackBool[T]) AndNot(o FallbackBool[T]) FallbackBool[T] {
	return FallbackBool[T]{vAndNot(MaxRegisterBytes, o.reg, f.reg)}
}

func (f FallbackBool[T]) Not() FallbackBool[T] {
	return FallbackBool[T]{vXor(MaxRegisterBytes, f.reg, vAllOnes(MaxRegisterBytes))}
}

func (f FallbackBool[T]) Equal(o FallbackBool[T]) FallbackBool[T] {
	return f.Xor(o).Not()
}

func (f FallbackBool[T]) NotEqual(o FallbackBool[T]) FallbackBool[T] {
	return f.Xor(o)
}

// All tests both 256-bit halves with vptest: CF is set when every bit of
// the half is one.
func (f FallbackBool[T]) All() bool {
	ones := vAllOnes(32)
	return vTestC(32, f.reg.half(MaxRegisterBytes, true), ones) &&
		vTestC(32, f.reg.half(MaxRegisterBytes, false), ones)
}

// Any tests both 256-bit halves with vptest: ZF is clear when some bit of
// the half is one.
func (f FallbackBool[T]) Any() bool {
	hi, lo := f.reg.half(MaxRegisterBytes, true), f.reg.half(MaxRegisterBytes, false)
	return !vTestZ(32, hi, hi) || !vTestZ(32, lo, lo)
}

// LaneProxy reads and writes one lane of a FallbackBool.
type LaneProxy[T Lanes] struct {
	ref *T
}

func (p LaneProxy[T]) Get() bool { return *p.ref != 0 }

func (p LaneProxy[T]) Set(v bool) { *p.ref = fromBits[T](sentinel(v)) }
