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
	"fmt"
	"unsafe"
)

// Batch is one register of the instruction set A, split into lanes of type
// T. Size() is A.Width() / sizeof(T) and always a power of two.
//
// Batches are values. All operations are free functions that forward to A's
// kernel; the choice of instructions is fixed by A at compile time.
type Batch[T Lanes, A Arch] struct {
	reg Register
}

// Size returns the number of lanes.
func (Batch[T, A]) Size() int {
	return lanesOf[T, A]()
}

func lanesOf[T Lanes, A Arch]() int {
	var a A
	var t T
	return a.Width() / int(unsafe.Sizeof(t))
}

// Register returns the raw register.
func (b Batch[T, A]) Register() Register { return b.reg }

// FromRegister reinterprets a raw register as a batch. Bytes past
// A.Width() are dropped.
func FromRegister[T Lanes, A Arch](r Register) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: r.clip(a.Width())}
}

// Get returns lane i. It panics if i is not in [0, Size()).
func (b Batch[T, A]) Get(i int) T {
	n := b.Size()
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("xsimd: lane index %d out of range [0, %d)", i, n))
	}
	return fromBits[T](b.reg.lane(int(unsafe.Sizeof(T(0))), i))
}

// Slice returns the lanes as a new slice.
func (b Batch[T, A]) Slice() []T {
	out := make([]T, b.Size())
	StoreUnaligned(b, out)
	return out
}

func (b Batch[T, A]) String() string {
	var a A
	return fmt.Sprintf("Batch[%s, %s]%v", kindOf[T](), a.Name(), b.Slice())
}

// LoadAligned loads Size() lanes from src. src should start at an address
// that is a multiple of A{}.Alignment(); this is not checked. It panics if
// len(src) < Size().
func LoadAligned[A Arch, T Lanes](src []T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.loadAligned(kindOf[T](), asBytes(src[:lanesOf[T, A]()]))}
}

// LoadUnaligned loads Size() lanes from src. It panics if len(src) < Size().
func LoadUnaligned[A Arch, T Lanes](src []T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.loadUnaligned(kindOf[T](), asBytes(src[:lanesOf[T, A]()]))}
}

// StoreAligned writes the lanes of b to dst, which should be aligned to
// A{}.Alignment(). It panics if len(dst) < Size().
func StoreAligned[T Lanes, A Arch](b Batch[T, A], dst []T) {
	var a A
	a.storeAligned(kindOf[T](), asBytes(dst[:b.Size()]), b.reg)
}

// StoreUnaligned writes the lanes of b to dst. It panics if
// len(dst) < Size().
func StoreUnaligned[T Lanes, A Arch](b Batch[T, A], dst []T) {
	var a A
	a.storeUnaligned(kindOf[T](), asBytes(dst[:b.Size()]), b.reg)
}

// Broadcast returns a batch with every lane set to v.
func Broadcast[A Arch, T Lanes](v T) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.broadcast(kindOf[T](), toBits(v))}
}

// Set returns the batch {vals[0], vals[1], ...}. It panics with an
// *ArityError unless len(vals) == Size().
func Set[A Arch, T Lanes](vals ...T) Batch[T, A] {
	checkArity(lanesOf[T, A](), len(vals))
	var buf [MaxRegisterBytes]uint64
	for i, v := range vals {
		buf[i] = toBits(v)
	}
	var a A
	return Batch[T, A]{reg: a.set(kindOf[T](), buf[:len(vals)])}
}

// Zero returns a batch of zeros.
func Zero[A Arch, T Lanes]() Batch[T, A] {
	return Batch[T, A]{}
}

// Iota returns the batch {0, 1, 2, ...}.
func Iota[A Arch, T Lanes]() Batch[T, A] {
	n := lanesOf[T, A]()
	var buf [MaxRegisterBytes]uint64
	for i := range n {
		buf[i] = toBits(T(i))
	}
	var a A
	return Batch[T, A]{reg: a.set(kindOf[T](), buf[:n])}
}
