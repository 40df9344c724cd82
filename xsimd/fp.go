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

import "math"

// Ldexp and Frexp have no vector instruction on any tag and are always
// computed lane by lane. The integer lane type I must be as wide as T
// (int32 for float32, int64 for float64).

// Ldexp returns x * 2**e lane by lane.
func Ldexp[T Floats, I SignedInts, A Arch](x Batch[T, A], e Batch[I, A]) Batch[T, A] {
	kf, ki := checkFloatInt[T, I]("ldexp")
	var r Register
	for i := range x.Size() {
		f := laneFloat(kf, x.reg.lane(kf.size, i))
		v := math.Ldexp(f, int(sext(ki.size, e.reg.lane(ki.size, i))))
		r.setLane(kf.size, i, floatLane(kf, v))
	}
	return Batch[T, A]{reg: r}
}

// Frexp splits every lane of x into a fraction in [0.5, 1) and a power of
// two, as math.Frexp does.
func Frexp[I SignedInts, T Floats, A Arch](x Batch[T, A]) (frac Batch[T, A], exp Batch[I, A]) {
	kf, ki := checkFloatInt[T, I]("frexp")
	for i := range x.Size() {
		f, e := math.Frexp(laneFloat(kf, x.reg.lane(kf.size, i)))
		frac.reg.setLane(kf.size, i, floatLane(kf, f))
		exp.reg.setLane(ki.size, i, uint64(int64(e)))
	}
	return frac, exp
}

func checkFloatInt[T Floats, I SignedInts](op string) (kind, kind) {
	kf, ki := kindOf[T](), kindOf[I]()
	if kf.size != ki.size {
		unsupported(op, ki, "generic")
	}
	return kf, ki
}

func laneFloat(k kind, bits uint64) float64 {
	if k.size == 4 {
		return float64(math.Float32frombits(uint32(bits)))
	}
	return math.Float64frombits(bits)
}

func floatLane(k kind, f float64) uint64 {
	if k.size == 4 {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(f)
}
