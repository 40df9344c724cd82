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

// Package xsimd provides fixed-width SIMD batches whose operations are
// resolved statically through a capability tag.
//
// A Batch[T, A] holds one register of the instruction set named by A. Every
// operation is forwarded to A's kernel, which either uses the instruction for
// that lane width, synthesizes it from cheaper instructions, or falls back to
// a less specialized tag and finally to the generic scalar kernel.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-xsimd/xsimd"
//
//	a := xsimd.LoadUnaligned[xsimd.SSE2]([]int32{1, 2, 3, 4})
//	b := xsimd.LoadUnaligned[xsimd.SSE2]([]int32{10, 20, 30, 40})
//	sum := xsimd.Add(a, b) // {11, 22, 33, 44}
//
//	out := make([]int32, sum.Size())
//	xsimd.StoreUnaligned(sum, out)
//
// The instructions themselves are emulated in Go with the bit layout and lane
// semantics of the hardware, so every tag runs on every host. Available and
// Best report what the current CPU actually supports.
package xsimd

import (
	"strconv"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// kind is the scalar description kernels dispatch on: lane byte size,
// signedness and whether the lane holds a float.
type kind struct {
	size   int
	signed bool
	float  bool
}

func kindOf[T Lanes]() kind {
	var zero T
	var one T = 1
	return kind{
		size:   int(unsafe.Sizeof(zero)),
		signed: zero-one < 0,
		float:  one/2 != 0,
	}
}

func (k kind) bits() int { return k.size * 8 }

func (k kind) integer() bool { return !k.float }

// unsigned returns the same-width unsigned integer kind.
func (k kind) unsigned() kind { return kind{size: k.size} }

func (k kind) String() string {
	switch {
	case k.float && k.size == 4:
		return "float32"
	case k.float && k.size == 8:
		return "float64"
	case k.signed:
		return "int" + strconv.Itoa(k.bits())
	default:
		return "uint" + strconv.Itoa(k.bits())
	}
}

// toBits reinterprets v as its raw bit pattern, zero extended to 64 bits.
func toBits[T Lanes](v T) uint64 {
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return *(*uint64)(unsafe.Pointer(&v))
	}
}

// fromBits reinterprets the low sizeof(T) bytes of u as a T.
func fromBits[T Lanes](u uint64) T {
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		*(*uint8)(unsafe.Pointer(&v)) = uint8(u)
	case 2:
		*(*uint16)(unsafe.Pointer(&v)) = uint16(u)
	case 4:
		*(*uint32)(unsafe.Pointer(&v)) = uint32(u)
	default:
		*(*uint64)(unsafe.Pointer(&v)) = u
	}
	return v
}

// asBytes views a lane slice as its backing bytes. Only load and store paths
// use it.
func asBytes[T Lanes](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
