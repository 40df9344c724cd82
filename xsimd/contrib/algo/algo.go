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

package algo

import (
	"math/bits"

	"github.com/ajroetker/go-xsimd/xsimd"
)

func lanes[A xsimd.Arch, T xsimd.Lanes]() int {
	return xsimd.Batch[T, A]{}.Size()
}

// apply2 runs fn over x and y one batch at a time and writes the lanes to
// dst. n is min(len(dst), len(x), len(y)).
func apply2[A xsimd.Arch, T xsimd.Lanes](dst, x, y []T, fn func(a, b xsimd.Batch[T, A]) xsimd.Batch[T, A]) {
	n := min(len(dst), len(x), len(y))
	step := lanes[A, T]()
	i := 0
	for ; i+step <= n; i += step {
		xsimd.StoreUnaligned(fn(xsimd.LoadUnaligned[A](x[i:]), xsimd.LoadUnaligned[A](y[i:])), dst[i:])
	}
	if rem := n - i; rem > 0 {
		var bx, by, out [xsimd.MaxRegisterBytes]T
		copy(bx[:], x[i:n])
		copy(by[:], y[i:n])
		xsimd.StoreUnaligned(fn(xsimd.LoadUnaligned[A](bx[:]), xsimd.LoadUnaligned[A](by[:])), out[:])
		copy(dst[i:n], out[:rem])
	}
}

// Add stores x[i] + y[i] into dst[i].
func Add[A xsimd.Arch, T xsimd.Lanes](dst, x, y []T) {
	apply2[A, T](dst, x, y, xsimd.Add[T, A])
}

// Sub stores x[i] - y[i] into dst[i].
func Sub[A xsimd.Arch, T xsimd.Lanes](dst, x, y []T) {
	apply2[A, T](dst, x, y, xsimd.Sub[T, A])
}

// Max stores the larger of x[i] and y[i] into dst[i].
func Max[A xsimd.Arch, T xsimd.Lanes](dst, x, y []T) {
	apply2[A, T](dst, x, y, xsimd.Max[T, A])
}

// Min stores the smaller of x[i] and y[i] into dst[i].
func Min[A xsimd.Arch, T xsimd.Lanes](dst, x, y []T) {
	apply2[A, T](dst, x, y, xsimd.Min[T, A])
}

// SaturatedAdd stores x[i] + y[i], clamped to the range of T, into dst[i].
func SaturatedAdd[A xsimd.Arch, T xsimd.Integers](dst, x, y []T) {
	apply2[A, T](dst, x, y, xsimd.SaturatedAdd[T, A])
}

// Sum returns the sum of x. Partial sums are kept per lane and reduced once
// at the end; integer sums wrap.
func Sum[A xsimd.Arch, T xsimd.Lanes](x []T) T {
	step := lanes[A, T]()
	acc := xsimd.Zero[A, T]()
	i := 0
	for ; i+step <= len(x); i += step {
		acc = xsimd.Add(acc, xsimd.LoadUnaligned[A](x[i:]))
	}
	if i < len(x) {
		var buf [xsimd.MaxRegisterBytes]T
		copy(buf[:], x[i:])
		acc = xsimd.Add(acc, xsimd.LoadUnaligned[A](buf[:]))
	}
	return xsimd.ReduceSum(acc)
}

// Select stores yes[i] into dst[i] where cond[i] is true and no[i]
// elsewhere.
func Select[A xsimd.Arch, T xsimd.Lanes](dst []T, cond []bool, yes, no []T) {
	n := min(len(dst), len(cond), len(yes), len(no))
	step := lanes[A, T]()
	i := 0
	for ; i+step <= n; i += step {
		c := xsimd.LoadBoolUnaligned[A, T](cond[i:])
		xsimd.StoreUnaligned(xsimd.Select(c, xsimd.LoadUnaligned[A](yes[i:]), xsimd.LoadUnaligned[A](no[i:])), dst[i:])
	}
	for ; i < n; i++ {
		if cond[i] {
			dst[i] = yes[i]
		} else {
			dst[i] = no[i]
		}
	}
}

// Count returns how many elements of x satisfy pred, which is evaluated one
// batch at a time.
func Count[A xsimd.Arch, T xsimd.Lanes](x []T, pred func(xsimd.Batch[T, A]) xsimd.BatchBool[T, A]) int {
	step := lanes[A, T]()
	count := 0
	i := 0
	for ; i+step <= len(x); i += step {
		count += bits.OnesCount64(pred(xsimd.LoadUnaligned[A](x[i:])).Mask())
	}
	if rem := len(x) - i; rem > 0 {
		var buf [xsimd.MaxRegisterBytes]T
		copy(buf[:], x[i:])
		m := pred(xsimd.LoadUnaligned[A](buf[:])).Mask()
		count += bits.OnesCount64(m & (1<<uint(rem) - 1))
	}
	return count
}

// CountGreater returns how many elements of x are greater than v.
func CountGreater[A xsimd.Arch, T xsimd.Lanes](x []T, v T) int {
	threshold := xsimd.Broadcast[A](v)
	return Count[A, T](x, func(b xsimd.Batch[T, A]) xsimd.BatchBool[T, A] {
		return xsimd.GreaterThan(b, threshold)
	})
}
