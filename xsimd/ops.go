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

// Add returns x + y lane by lane. Integer lanes wrap.
func Add[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.add(kindOf[T](), x.reg, y.reg)}
}

// Sub returns x - y lane by lane.
func Sub[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.sub(kindOf[T](), x.reg, y.reg)}
}

// Mul returns x * y lane by lane, keeping the low half of integer products.
func Mul[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.mul(kindOf[T](), x.reg, y.reg)}
}

// Div returns x / y lane by lane.
func Div[T Floats, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.div(kindOf[T](), x.reg, y.reg)}
}

// Neg returns -x.
func Neg[T Lanes, A Arch](x Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.neg(kindOf[T](), x.reg)}
}

// And returns the bitwise AND of x and y.
func And[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.bitwiseAnd(kindOf[T](), x.reg, y.reg)}
}

// Or returns the bitwise OR of x and y.
func Or[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.bitwiseOr(kindOf[T](), x.reg, y.reg)}
}

// Xor returns the bitwise XOR of x and y.
func Xor[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.bitwiseXor(kindOf[T](), x.reg, y.reg)}
}

// AndNot returns x AND NOT y.
func AndNot[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.bitwiseAndNot(kindOf[T](), x.reg, y.reg)}
}

// Not returns the bitwise complement of x.
func Not[T Lanes, A Arch](x Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.bitwiseNot(kindOf[T](), x.reg)}
}

// ShiftLeft shifts every lane left by n bits. n must be in [0, bits(T)).
func ShiftLeft[T Integers, A Arch](x Batch[T, A], n int) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.lshift(kindOf[T](), x.reg, n)}
}

// ShiftRight shifts every lane right by n bits: arithmetic for signed lanes,
// logical for unsigned ones. n must be in [0, bits(T)).
func ShiftRight[T Integers, A Arch](x Batch[T, A], n int) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.rshift(kindOf[T](), x.reg, n)}
}

// Equal and the other comparisons return one bool per lane in A's bool
// representation for T.
func Equal[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.eq(kindOf[T](), x.reg, y.reg)}
}

func NotEqual[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.neq(kindOf[T](), x.reg, y.reg)}
}

func LessThan[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.lt(kindOf[T](), x.reg, y.reg)}
}

func LessEqual[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.le(kindOf[T](), x.reg, y.reg)}
}

func GreaterThan[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.gt(kindOf[T](), x.reg, y.reg)}
}

func GreaterEqual[T Lanes, A Arch](x, y Batch[T, A]) BatchBool[T, A] {
	var a A
	return BatchBool[T, A]{reg: a.ge(kindOf[T](), x.reg, y.reg)}
}

// Select returns yes[i] where cond[i] is true and no[i] elsewhere.
func Select[T Lanes, A Arch](cond BatchBool[T, A], yes, no Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.selectv(kindOf[T](), cond.reg, yes.reg, no.reg)}
}

// SelectMask is Select with the condition given as a bitmask: lane i comes
// from yes where bit i of mask is set. It is the form a mask known at
// compile time takes.
func SelectMask[T Lanes, A Arch](mask uint64, yes, no Batch[T, A]) Batch[T, A] {
	return Select(BoolFromMask[A, T](mask), yes, no)
}

// SaturatedAdd returns x + y clamped to the range of T.
func SaturatedAdd[T Integers, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.sadd(kindOf[T](), x.reg, y.reg)}
}

// SaturatedSub returns x - y clamped to the range of T.
func SaturatedSub[T Integers, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.ssub(kindOf[T](), x.reg, y.reg)}
}

// Max returns the larger lane of x and y. For floats, a NaN in either lane
// yields y's lane.
func Max[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.max(kindOf[T](), x.reg, y.reg)}
}

// Min returns the smaller lane of x and y.
func Min[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.min(kindOf[T](), x.reg, y.reg)}
}

// ReduceSum returns the sum of all lanes. Integer sums wrap; float sums are
// computed in the order the kernel's instructions add them.
func ReduceSum[T Lanes, A Arch](x Batch[T, A]) T {
	var a A
	return fromBits[T](a.hadd(kindOf[T](), x.reg))
}

// ZipLower interleaves the lower halves of x and y: {x0, y0, x1, y1, ...}.
func ZipLower[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.zipLo(kindOf[T](), x.reg, y.reg)}
}

// ZipUpper interleaves the upper halves of x and y.
func ZipUpper[T Lanes, A Arch](x, y Batch[T, A]) Batch[T, A] {
	var a A
	return Batch[T, A]{reg: a.zipHi(kindOf[T](), x.reg, y.reg)}
}

// ConvertToFloat32 converts int32 lanes to float32.
func ConvertToFloat32[A Arch](x Batch[int32, A]) Batch[float32, A] {
	var a A
	return Batch[float32, A]{reg: a.toFloat(kindOf[int32](), x.reg)}
}

// ConvertToFloat64 converts int64 lanes to float64.
func ConvertToFloat64[A Arch](x Batch[int64, A]) Batch[float64, A] {
	var a A
	return Batch[float64, A]{reg: a.toFloat(kindOf[int64](), x.reg)}
}

// ConvertToInt32 converts float32 lanes to int32, truncating. Lanes that
// are NaN or out of range give a tag-specific value.
func ConvertToInt32[A Arch](x Batch[float32, A]) Batch[int32, A] {
	var a A
	return Batch[int32, A]{reg: a.toInt(kindOf[float32](), x.reg)}
}

// ConvertToInt64 converts float64 lanes to int64, truncating.
func ConvertToInt64[A Arch](x Batch[float64, A]) Batch[int64, A] {
	var a A
	return Batch[int64, A]{reg: a.toInt(kindOf[float64](), x.reg)}
}
