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

import "fmt"

// BatchBool is the result of comparing two Batch[T, A]: one boolean per
// lane. Its register holds whatever representation A uses for lanes of T,
// a vector of all-ones/all-zeros lanes or a k-mask (see AVX512F).
type BatchBool[T Lanes, A Arch] struct {
	reg Register
}

var _ Bools[BatchBool[int32, SSE2]] = (*BatchBool[int32, SSE2])(nil)

func boolKernelOf[T Lanes, A Arch]() (A, kind) {
	var a A
	return a, kindOf[T]()
}

// BoolBroadcast returns a bool batch with every lane set to v.
func BoolBroadcast[A Arch, T Lanes](v bool) BatchBool[T, A] {
	var buf [MaxRegisterBytes]bool
	n := lanesOf[T, A]()
	for i := range n {
		buf[i] = v
	}
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolPack(k, buf[:n])}
}

// SetBool returns {vals[0], vals[1], ...}. It panics with an *ArityError
// unless len(vals) == Size().
func SetBool[A Arch, T Lanes](vals ...bool) BatchBool[T, A] {
	checkArity(lanesOf[T, A](), len(vals))
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolPack(k, vals)}
}

// LoadBoolAligned and LoadBoolUnaligned read Size() booleans from src.
// Alignment does not apply to bool slices, so they are the same operation.
func LoadBoolAligned[A Arch, T Lanes](src []bool) BatchBool[T, A] {
	var b BatchBool[T, A]
	b.Load(src)
	return b
}

func LoadBoolUnaligned[A Arch, T Lanes](src []bool) BatchBool[T, A] {
	return LoadBoolAligned[A, T](src)
}

// BoolFromMask returns a bool batch with lane i true where bit i of m is
// set. Bits at or past Size() are ignored.
func BoolFromMask[A Arch, T Lanes](m uint64) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	n := lanesOf[T, A]()
	if n < 64 {
		m &= 1<<uint(n) - 1
	}
	return BatchBool[T, A]{reg: a.boolFromMask(k, m)}
}

// BoolFromRegister reinterprets a raw register as a bool batch. The
// register must hold A's representation for lanes of T.
func BoolFromRegister[T Lanes, A Arch](r Register) BatchBool[T, A] {
	return BatchBool[T, A]{reg: r}
}

func (BatchBool[T, A]) Size() int { return lanesOf[T, A]() }

func (BatchBool[T, A]) Len() int { return lanesOf[T, A]() }

// Register returns the raw bool register.
func (b BatchBool[T, A]) Register() Register { return b.reg }

func (b BatchBool[T, A]) Get(i int) bool {
	a, k := boolKernelOf[T, A]()
	return a.boolGet(k, b.reg, i)
}

func (b *BatchBool[T, A]) Set(i int, v bool) {
	a, k := boolKernelOf[T, A]()
	a.boolSet(k, &b.reg, i, v)
}

func (b *BatchBool[T, A]) Load(src []bool) {
	n := b.Len()
	a, k := boolKernelOf[T, A]()
	b.reg = a.boolPack(k, src[:n])
}

func (b *BatchBool[T, A]) LoadFunc(f func(i int) bool) {
	var buf [MaxRegisterBytes]bool
	n := b.Len()
	for i := range n {
		buf[i] = f(i)
	}
	a, k := boolKernelOf[T, A]()
	b.reg = a.boolPack(k, buf[:n])
}

func (b *BatchBool[T, A]) Store(dst []bool) {
	dst = dst[:b.Len()]
	for i := range dst {
		dst[i] = b.Get(i)
	}
}

func (b *BatchBool[T, A]) StoreFunc(f func(i int, v bool)) {
	for i := range b.Len() {
		f(i, b.Get(i))
	}
}

// Mask returns bit i set for every true lane i.
func (b BatchBool[T, A]) Mask() uint64 {
	a, k := boolKernelOf[T, A]()
	return a.boolMask(k, b.reg)
}

// AsBatch returns the bools as a batch whose true lanes have every bit set
// and whose false lanes are zero, whatever A's bool representation.
func (b BatchBool[T, A]) AsBatch() Batch[T, A] {
	var a A
	return Batch[T, A]{reg: vMaskToVec(a.Width(), kindOf[T]().size, b.Mask())}
}

func (b BatchBool[T, A]) And(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolAnd(k, b.reg, o.reg)}
}

func (b BatchBool[T, A]) Or(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolOr(k, b.reg, o.reg)}
}

func (b BatchBool[T, A]) Xor(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolXor(k, b.reg, o.reg)}
}

// AndNot returns b AND NOT o.
func (b BatchBool[T, A]) AndNot(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolAndNot(k, b.reg, o.reg)}
}

func (b BatchBool[T, A]) Not() BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolNot(k, b.reg)}
}

func (b BatchBool[T, A]) Equal(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolEq(k, b.reg, o.reg)}
}

func (b BatchBool[T, A]) NotEqual(o BatchBool[T, A]) BatchBool[T, A] {
	a, k := boolKernelOf[T, A]()
	return BatchBool[T, A]{reg: a.boolNeq(k, b.reg, o.reg)}
}

func (b BatchBool[T, A]) All() bool {
	a, k := boolKernelOf[T, A]()
	return a.boolAll(k, b.reg)
}

func (b BatchBool[T, A]) Any() bool {
	a, k := boolKernelOf[T, A]()
	return a.boolAny(k, b.reg)
}

func (b BatchBool[T, A]) String() string {
	out := make([]bool, b.Len())
	b.Store(out)
	var a A
	return fmt.Sprintf("BatchBool[%s, %s]%v", kindOf[T](), a.Name(), out)
}
