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

const neonWidth = 16

// f64 reports float64 lanes, which 32-bit NEON has no instructions for.
func f64(k kind) bool { return k.float && k.size == 8 }

// NEON kernel.

func (n NEON) add(k kind, a, b Register) Register {
	switch {
	case f64(k):
		return n.Generic.add(k, a, b)
	case k.float:
		return vAddF(neonWidth, 4, a, b)
	}
	return vAdd(neonWidth, k.size, a, b)
}

func (n NEON) sub(k kind, a, b Register) Register {
	switch {
	case f64(k):
		return n.Generic.sub(k, a, b)
	case k.float:
		return vSubF(neonWidth, 4, a, b)
	}
	return vSub(neonWidth, k.size, a, b)
}

// mul is vmulq for everything but 64-bit lanes.
func (n NEON) mul(k kind, a, b Register) Register {
	switch {
	case k.size == 8:
		return n.Generic.mul(k, a, b)
	case k.float:
		return vMulF(neonWidth, 4, a, b)
	}
	return vMulLo(neonWidth, k.size, a, b)
}

func (n NEON) neg(k kind, a Register) Register {
	switch {
	case f64(k):
		return n.Generic.neg(k, a)
	case k.float:
		return vXor(neonWidth, a, vBroadcast(neonWidth, 4, signBit(4)))
	}
	return vSub(neonWidth, k.size, Register{}, a)
}

func (NEON) bitwiseAnd(_ kind, a, b Register) Register { return vAnd(neonWidth, a, b) }
func (NEON) bitwiseOr(_ kind, a, b Register) Register  { return vOr(neonWidth, a, b) }
func (NEON) bitwiseXor(_ kind, a, b Register) Register { return vXor(neonWidth, a, b) }

// bitwiseAndNot is vbicq.
func (NEON) bitwiseAndNot(_ kind, a, b Register) Register { return vAndNot(neonWidth, b, a) }

func (NEON) bitwiseNot(_ kind, a Register) Register {
	return vXor(neonWidth, a, vAllOnes(neonWidth))
}

func (NEON) lshift(k kind, a Register, c int) Register {
	return vShl(neonWidth, k.size, a, c)
}

func (NEON) rshift(k kind, a Register, c int) Register {
	if k.signed {
		return vSar(neonWidth, k.size, a, c)
	}
	return vShr(neonWidth, k.size, a, c)
}

// eq is vceqq. 64-bit lanes compare both 32-bit halves and and them with
// the vrev64q swapped result.
func (n NEON) eq(k kind, a, b Register) Register {
	switch {
	case f64(k):
		return n.Generic.eq(k, a, b)
	case k.size == 8:
		t := vCmp(neonWidth, kindI32, cmpEQ, a, b)
		return vAnd(neonWidth, t, vShuffle32(neonWidth, t, shuffleImm(2, 3, 0, 1)))
	}
	return vCmp(neonWidth, k, cmpEQ, a, b)
}

func (n NEON) neq(k kind, a, b Register) Register {
	if f64(k) {
		return n.Generic.neq(k, a, b)
	}
	return n.bitwiseNot(k, n.eq(k, a, b))
}

// lt, le, gt and ge are vcltq, vcleq, vcgtq and vcgeq, which exist for
// lanes up to 32 bits.

func (n NEON) lt(k kind, a, b Register) Register {
	if k.size == 8 {
		return n.Generic.lt(k, a, b)
	}
	return vCmp(neonWidth, k, cmpLT, a, b)
}

func (n NEON) le(k kind, a, b Register) Register {
	if k.size == 8 {
		return n.Generic.le(k, a, b)
	}
	return vCmp(neonWidth, k, cmpLE, a, b)
}

func (n NEON) gt(k kind, a, b Register) Register {
	if k.size == 8 {
		return n.Generic.gt(k, a, b)
	}
	return vCmp(neonWidth, k, cmpGT, a, b)
}

func (n NEON) ge(k kind, a, b Register) Register {
	if k.size == 8 {
		return n.Generic.ge(k, a, b)
	}
	return vCmp(neonWidth, k, cmpGE, a, b)
}

// selectv is vbslq.
func (n NEON) selectv(_ kind, c, a, b Register) Register {
	return vBitSelect(neonWidth, c, a, b)
}

// sadd and ssub are vqaddq / vqsubq, which exist for every integer width.
func (n NEON) sadd(k kind, a, b Register) Register {
	if k.float {
		return n.add(k, a, b)
	}
	return vAddSat(neonWidth, k, a, b)
}

func (n NEON) ssub(k kind, a, b Register) Register {
	if k.float {
		return n.sub(k, a, b)
	}
	return vSubSat(neonWidth, k, a, b)
}

func (n NEON) max(k kind, a, b Register) Register {
	switch {
	case k.size == 8:
		return n.selectv(k, n.gt(k, a, b), a, b)
	case k.float:
		return vMaxF(neonWidth, 4, a, b)
	}
	return vMax(neonWidth, k, a, b)
}

func (n NEON) min(k kind, a, b Register) Register {
	switch {
	case k.size == 8:
		return n.selectv(k, n.le(k, a, b), a, b)
	case k.float:
		return vMinF(neonWidth, 4, a, b)
	}
	return vMin(neonWidth, k, a, b)
}

// hadd reduces with pairwise adds (vpadd) until lane 0 holds the sum.
func (n NEON) hadd(k kind, a Register) uint64 {
	if f64(k) {
		return n.Generic.hadd(k, a)
	}
	for lanes := neonWidth / k.size; lanes > 1; lanes /= 2 {
		a = vHAddPairs(neonWidth, k, a, a)
	}
	return a.lane(k.size, 0)
}

// zipLo and zipHi are the two results of vzipq.
func (n NEON) zipLo(k kind, a, b Register) Register {
	return vZip1(neonWidth, k.size, a, b)
}

func (n NEON) zipHi(k kind, a, b Register) Register {
	return vZip2(neonWidth, k.size, a, b)
}

func (n NEON) broadcast(k kind, v uint64) Register {
	return vBroadcast(neonWidth, k.size, v)
}

func (n NEON) toFloat(k kind, a Register) Register {
	if k.size == 4 {
		return vCvtI32F32(neonWidth, a)
	}
	return n.Generic.toFloat(k, a)
}

// toInt is vcvtq_s32_f32, which saturates instead of producing the x86
// integer indefinite value.
func (n NEON) toInt(k kind, a Register) Register {
	if k.size == 4 {
		return vCvtF32I32Sat(neonWidth, a)
	}
	return n.Generic.toInt(k, a)
}

// NEON64 kernel: AArch64 adds float64 lanes, 64-bit compares, vector divide
// and across-vector reductions.

func (n NEON64) add(k kind, a, b Register) Register {
	if f64(k) {
		return vAddF(neonWidth, 8, a, b)
	}
	return n.NEON.add(k, a, b)
}

func (n NEON64) sub(k kind, a, b Register) Register {
	if f64(k) {
		return vSubF(neonWidth, 8, a, b)
	}
	return n.NEON.sub(k, a, b)
}

func (n NEON64) mul(k kind, a, b Register) Register {
	if f64(k) {
		return vMulF(neonWidth, 8, a, b)
	}
	return n.NEON.mul(k, a, b)
}

// div is vdivq_f32 / vdivq_f64.
func (n NEON64) div(k kind, a, b Register) Register {
	if k.float {
		return vDivF(neonWidth, k.size, a, b)
	}
	return n.NEON.div(k, a, b)
}

func (n NEON64) neg(k kind, a Register) Register {
	if f64(k) {
		return vXor(neonWidth, a, vBroadcast(neonWidth, 8, signBit(8)))
	}
	return n.NEON.neg(k, a)
}

func (n NEON64) eq(k kind, a, b Register) Register {
	if k.size == 8 {
		return vCmp(neonWidth, k, cmpEQ, a, b)
	}
	return n.NEON.eq(k, a, b)
}

func (n NEON64) neq(k kind, a, b Register) Register {
	if f64(k) {
		return n.bitwiseNot(k, n.eq(k, a, b))
	}
	return n.NEON.neq(k, a, b)
}

func (n NEON64) lt(k kind, a, b Register) Register {
	if k.size == 8 {
		return vCmp(neonWidth, k, cmpLT, a, b)
	}
	return n.NEON.lt(k, a, b)
}

func (n NEON64) le(k kind, a, b Register) Register {
	if k.size == 8 {
		return vCmp(neonWidth, k, cmpLE, a, b)
	}
	return n.NEON.le(k, a, b)
}

func (n NEON64) gt(k kind, a, b Register) Register {
	if k.size == 8 {
		return vCmp(neonWidth, k, cmpGT, a, b)
	}
	return n.NEON.gt(k, a, b)
}

func (n NEON64) ge(k kind, a, b Register) Register {
	if k.size == 8 {
		return vCmp(neonWidth, k, cmpGE, a, b)
	}
	return n.NEON.ge(k, a, b)
}

func (n NEON64) max(k kind, a, b Register) Register {
	switch {
	case f64(k):
		return vMaxF(neonWidth, 8, a, b)
	case k.size == 8:
		return n.selectv(k, n.gt(k, a, b), a, b)
	}
	return n.NEON.max(k, a, b)
}

func (n NEON64) min(k kind, a, b Register) Register {
	switch {
	case f64(k):
		return vMinF(neonWidth, 8, a, b)
	case k.size == 8:
		return n.selectv(k, n.le(k, a, b), a, b)
	}
	return n.NEON.min(k, a, b)
}

// hadd is vaddvq for integers and vpaddq pairs for floats.
func (n NEON64) hadd(k kind, a Register) uint64 {
	if k.float {
		for lanes := neonWidth / k.size; lanes > 1; lanes /= 2 {
			a = vHAddPairs(neonWidth, k, a, a)
		}
		return a.lane(k.size, 0)
	}
	return vAddAcross(neonWidth, k, a)
}

func (n NEON64) toFloat(k kind, a Register) Register {
	if k.size == 8 {
		return lanes1(neonWidth, 8, a, func(x uint64) uint64 {
			return math.Float64bits(float64(int64(x)))
		})
	}
	return n.NEON.toFloat(k, a)
}

// toInt on 64-bit lanes is vcvtq_s64_f64: saturating, NaN to zero.
func (n NEON64) toInt(k kind, a Register) Register {
	if k.size == 8 {
		return lanes1(neonWidth, 8, a, func(x uint64) uint64 {
			f := math.Float64frombits(x)
			switch {
			case math.IsNaN(f):
				return 0
			case f >= math.MaxInt64:
				return math.MaxInt64
			case f <= math.MinInt64:
				return 1 << 63
			}
			return uint64(int64(f))
		})
	}
	return n.NEON.toInt(k, a)
}
