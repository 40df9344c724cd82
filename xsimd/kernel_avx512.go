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

const avx512Width = 64

// Bool registers on AVX-512 hold the k-mask in word 0 for the lane widths
// the tag has mask compares for. AVX512F only has them for 4 and 8 byte
// lanes; 1 and 2 byte lanes run on two AVX2 halves and their bools are
// 512-bit sentinel vectors (FallbackBool).

func maskCmp512(k kind, p cmpPred, a, b Register) Register {
	var r Register
	r.w[0] = vCmpMask(avx512Width, k, p, a, b)
	return r
}

// maskSelect512 is vpblendm: lanes whose mask bit is set come from a.
func maskSelect512(k kind, c, a, b Register) Register {
	return vBlendMask(avx512Width, k.size, c.w[0], b, a)
}

// zip512 interleaves with the in-lane unpacks and reorders the 128-bit
// blocks with two vshufi32x4.
func zip512(size int, a, b Register, high bool) Register {
	lo := vUnpackLo(avx512Width, size, a, b)
	hi := vUnpackHi(avx512Width, size, a, b)
	var t Register
	if high {
		t = vShuffleI128(lo, hi, shuffleImm(3, 2, 3, 2))
	} else {
		t = vShuffleI128(lo, hi, shuffleImm(1, 0, 1, 0))
	}
	return vShuffleI128(t, t, shuffleImm(3, 1, 2, 0))
}

func shl8x64(a Register, n int) Register {
	return vAnd(avx512Width, vBroadcast(avx512Width, 1, 0xFF<<uint(n)), vShl(avx512Width, 4, a, n))
}

func shr8x64(k kind, a Register, n int) Register {
	if !k.signed {
		return vAnd(avx512Width, vBroadcast(avx512Width, 1, 0xFF>>uint(n)), vShr(avx512Width, 4, a, n))
	}
	signMask := vBroadcast(avx512Width, 2, (0xFF00>>uint(n))&0x00FF)
	negative := vCmp(avx512Width, kind{size: 1, signed: true}, cmpGT, Register{}, a)
	res := vSar(avx512Width, 2, a, n)
	return vOr(avx512Width, vAnd(avx512Width, signMask, negative), vAndNot(avx512Width, signMask, res))
}

// AVX512F kernel.

// masked reports whether lanes of kind k use k-mask bools.
func (AVX512F) masked(k kind) bool { return k.size >= 4 }

func (x AVX512F) add(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vAddF(avx512Width, k.size, a, b)
	case x.masked(k):
		return vAdd(avx512Width, k.size, a, b)
	}
	return x.splitKernel.add(k, a, b)
}

func (x AVX512F) sub(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vSubF(avx512Width, k.size, a, b)
	case x.masked(k):
		return vSub(avx512Width, k.size, a, b)
	}
	return x.splitKernel.sub(k, a, b)
}

// mul uses vpmulld, and for 64-bit lanes the vpmuludq sequence
// _mm512_mullox_epi64 expands to.
func (x AVX512F) mul(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vMulF(avx512Width, k.size, a, b)
	case x.masked(k):
		return vMulLo(avx512Width, k.size, a, b)
	}
	return x.splitKernel.mul(k, a, b)
}

func (x AVX512F) div(k kind, a, b Register) Register {
	if k.float {
		return vDivF(avx512Width, k.size, a, b)
	}
	return generic512{}.div(k, a, b)
}

func (x AVX512F) neg(k kind, a Register) Register {
	switch {
	case k.float:
		return vXor(avx512Width, a, vBroadcast(avx512Width, k.size, signBit(k.size)))
	case x.masked(k):
		return vSub(avx512Width, k.size, Register{}, a)
	}
	return x.splitKernel.neg(k, a)
}

func (x AVX512F) lshift(k kind, a Register, n int) Register {
	if x.masked(k) {
		return vShl(avx512Width, k.size, a, n)
	}
	return x.splitKernel.lshift(k, a, n)
}

// rshift has a native arithmetic shift for 64-bit lanes, vpsraq.
func (x AVX512F) rshift(k kind, a Register, n int) Register {
	switch {
	case x.masked(k) && k.signed:
		return vSar(avx512Width, k.size, a, n)
	case x.masked(k):
		return vShr(avx512Width, k.size, a, n)
	}
	return x.splitKernel.rshift(k, a, n)
}

func (x AVX512F) eq(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpEQ, a, b)
	}
	return x.splitKernel.eq(k, a, b)
}

func (x AVX512F) neq(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpNEQ, a, b)
	}
	return x.splitKernel.neq(k, a, b)
}

func (x AVX512F) lt(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpLT, a, b)
	}
	return x.splitKernel.lt(k, a, b)
}

func (x AVX512F) le(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpLE, a, b)
	}
	return x.splitKernel.le(k, a, b)
}

func (x AVX512F) gt(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpGT, a, b)
	}
	return x.splitKernel.gt(k, a, b)
}

func (x AVX512F) ge(k kind, a, b Register) Register {
	if x.masked(k) {
		return maskCmp512(k, cmpGE, a, b)
	}
	return x.splitKernel.ge(k, a, b)
}

func (x AVX512F) selectv(k kind, c, a, b Register) Register {
	if x.masked(k) {
		return maskSelect512(k, c, a, b)
	}
	return x.splitKernel.selectv(k, c, a, b)
}

func (x AVX512F) sadd(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.add(k, a, b)
	case x.masked(k):
		return generic512{}.sadd(k, a, b)
	}
	return x.splitKernel.sadd(k, a, b)
}

func (x AVX512F) ssub(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.sub(k, a, b)
	case x.masked(k):
		return generic512{}.ssub(k, a, b)
	}
	return x.splitKernel.ssub(k, a, b)
}

// max and min are native for 4 and 8 byte lanes, including vpmaxsq and
// vpmaxuq.
func (x AVX512F) max(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vMaxF(avx512Width, k.size, a, b)
	case x.masked(k):
		return vMax(avx512Width, k, a, b)
	}
	return x.splitKernel.max(k, a, b)
}

func (x AVX512F) min(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vMinF(avx512Width, k.size, a, b)
	case x.masked(k):
		return vMin(avx512Width, k, a, b)
	}
	return x.splitKernel.min(k, a, b)
}

func (x AVX512F) zipLo(k kind, a, b Register) Register {
	if x.masked(k) {
		return zip512(k.size, a, b, false)
	}
	return x.splitKernel.zipLo(k, a, b)
}

func (x AVX512F) zipHi(k kind, a, b Register) Register {
	if x.masked(k) {
		return zip512(k.size, a, b, true)
	}
	return x.splitKernel.zipHi(k, a, b)
}

// toFloat and toInt are native for 32-bit lanes. The 64-bit forms need
// AVX-512DQ.
func (x AVX512F) toFloat(k kind, a Register) Register {
	if k.size == 4 {
		return vCvtI32F32(avx512Width, a)
	}
	return generic512{}.toFloat(k, a)
}

func (x AVX512F) toInt(k kind, a Register) Register {
	if k.size == 4 {
		return vCvttF32I32(avx512Width, a)
	}
	return generic512{}.toInt(k, a)
}

func (x AVX512F) bools(k kind) boolOps {
	if x.masked(k) {
		return maskOps(avx512Width / k.size)
	}
	return fallbackOps(k)
}

func (x AVX512F) boolAnd(k kind, a, b Register) Register    { return x.bools(k).and(a, b) }
func (x AVX512F) boolOr(k kind, a, b Register) Register     { return x.bools(k).or(a, b) }
func (x AVX512F) boolXor(k kind, a, b Register) Register    { return x.bools(k).xor(a, b) }
func (x AVX512F) boolAndNot(k kind, a, b Register) Register { return x.bools(k).andNot(a, b) }
func (x AVX512F) boolNot(k kind, a Register) Register       { return x.bools(k).not(a) }
func (x AVX512F) boolEq(k kind, a, b Register) Register     { return x.bools(k).eq(a, b) }
func (x AVX512F) boolNeq(k kind, a, b Register) Register    { return x.bools(k).neq(a, b) }
func (x AVX512F) boolAll(k kind, a Register) bool           { return x.bools(k).all(a) }
func (x AVX512F) boolAny(k kind, a Register) bool           { return x.bools(k).any(a) }
func (x AVX512F) boolGet(k kind, a Register, i int) bool    { return x.bools(k).get(a, i) }
func (x AVX512F) boolSet(k kind, a *Register, i int, v bool) {
	x.bools(k).set(a, i, v)
}
func (x AVX512F) boolPack(k kind, vals []bool) Register  { return x.bools(k).pack(vals) }
func (x AVX512F) boolMask(k kind, a Register) uint64      { return x.bools(k).mask(a) }
func (x AVX512F) boolFromMask(k kind, m uint64) Register { return x.bools(k).fromMask(m) }

// AVX512BW kernel: byte and word lanes get the same treatment AVX512F gives
// dword and qword lanes.

func (x AVX512BW) add(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vAdd(avx512Width, k.size, a, b)
	}
	return x.AVX512F.add(k, a, b)
}

func (x AVX512BW) sub(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vSub(avx512Width, k.size, a, b)
	}
	return x.AVX512F.sub(k, a, b)
}

// mul has vpmullw for words. Bytes have no multiply at any width.
func (x AVX512BW) mul(k kind, a, b Register) Register {
	if !k.float && k.size == 2 {
		return vMulLo(avx512Width, 2, a, b)
	}
	return x.AVX512F.mul(k, a, b)
}

func (x AVX512BW) neg(k kind, a Register) Register {
	if !k.float && k.size <= 2 {
		return vSub(avx512Width, k.size, Register{}, a)
	}
	return x.AVX512F.neg(k, a)
}

func (x AVX512BW) lshift(k kind, a Register, n int) Register {
	switch k.size {
	case 1:
		return shl8x64(a, n)
	case 2:
		return vShl(avx512Width, 2, a, n)
	}
	return x.AVX512F.lshift(k, a, n)
}

func (x AVX512BW) rshift(k kind, a Register, n int) Register {
	switch {
	case k.size == 1:
		return shr8x64(k, a, n)
	case k.size == 2 && k.signed:
		return vSar(avx512Width, 2, a, n)
	case k.size == 2:
		return vShr(avx512Width, 2, a, n)
	}
	return x.AVX512F.rshift(k, a, n)
}

func (x AVX512BW) eq(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpEQ, a, b)
	}
	return x.AVX512F.eq(k, a, b)
}

func (x AVX512BW) neq(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpNEQ, a, b)
	}
	return x.AVX512F.neq(k, a, b)
}

func (x AVX512BW) lt(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpLT, a, b)
	}
	return x.AVX512F.lt(k, a, b)
}

func (x AVX512BW) le(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpLE, a, b)
	}
	return x.AVX512F.le(k, a, b)
}

func (x AVX512BW) gt(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpGT, a, b)
	}
	return x.AVX512F.gt(k, a, b)
}

func (x AVX512BW) ge(k kind, a, b Register) Register {
	if k.size <= 2 {
		return maskCmp512(k, cmpGE, a, b)
	}
	return x.AVX512F.ge(k, a, b)
}

func (x AVX512BW) selectv(k kind, c, a, b Register) Register {
	if k.size <= 2 {
		return maskSelect512(k, c, a, b)
	}
	return x.AVX512F.selectv(k, c, a, b)
}

func (x AVX512BW) sadd(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vAddSat(avx512Width, k, a, b)
	}
	return x.AVX512F.sadd(k, a, b)
}

func (x AVX512BW) ssub(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vSubSat(avx512Width, k, a, b)
	}
	return x.AVX512F.ssub(k, a, b)
}

func (x AVX512BW) max(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vMax(avx512Width, k, a, b)
	}
	return x.AVX512F.max(k, a, b)
}

func (x AVX512BW) min(k kind, a, b Register) Register {
	if !k.float && k.size <= 2 {
		return vMin(avx512Width, k, a, b)
	}
	return x.AVX512F.min(k, a, b)
}

func (x AVX512BW) zipLo(k kind, a, b Register) Register {
	if k.size <= 2 {
		return zip512(k.size, a, b, false)
	}
	return x.AVX512F.zipLo(k, a, b)
}

func (x AVX512BW) zipHi(k kind, a, b Register) Register {
	if k.size <= 2 {
		return zip512(k.size, a, b, true)
	}
	return x.AVX512F.zipHi(k, a, b)
}

func (AVX512BW) bools(k kind) boolOps {
	return maskOps(avx512Width / k.size)
}

func (x AVX512BW) boolAnd(k kind, a, b Register) Register    { return x.bools(k).and(a, b) }
func (x AVX512BW) boolOr(k kind, a, b Register) Register     { return x.bools(k).or(a, b) }
func (x AVX512BW) boolXor(k kind, a, b Register) Register    { return x.bools(k).xor(a, b) }
func (x AVX512BW) boolAndNot(k kind, a, b Register) Register { return x.bools(k).andNot(a, b) }
func (x AVX512BW) boolNot(k kind, a Register) Register       { return x.bools(k).not(a) }
func (x AVX512BW) boolEq(k kind, a, b Register) Register     { return x.bools(k).eq(a, b) }
func (x AVX512BW) boolNeq(k kind, a, b Register) Register    { return x.bools(k).neq(a, b) }
func (x AVX512BW) boolAll(k kind, a Register) bool           { return x.bools(k).all(a) }
func (x AVX512BW) boolAny(k kind, a Register) bool           { return x.bools(k).any(a) }
func (x AVX512BW) boolGet(k kind, a Register, i int) bool    { return x.bools(k).get(a, i) }
func (x AVX512BW) boolSet(k kind, a *Register, i int, v bool) {
	x.bools(k).set(a, i, v)
}
func (x AVX512BW) boolPack(k kind, vals []bool) Register  { return x.bools(k).pack(vals) }
func (x AVX512BW) boolMask(k kind, a Register) uint64      { return x.bools(k).mask(a) }
func (x AVX512BW) boolFromMask(k kind, m uint64) Register { return x.bools(k).fromMask(m) }
