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
	"encoding/binary"
	"strconv"
)

const sseWidth = 16

// int32 and int64 kinds the SSE2 kernel uses for its internal 32 and 64-bit
// steps, whatever the caller's lane type.
var (
	kindI32 = kind{size: 4, signed: true}
	kindI64 = kind{size: 8, signed: true}
)

// SSE kernel: float32 arithmetic only.

func (s SSE) add(k kind, a, b Register) Register {
	if k.float && k.size == 4 {
		return vAddF(sseWidth, 4, a, b)
	}
	return s.Generic.add(k, a, b)
}

func (s SSE) sub(k kind, a, b Register) Register {
	if k.float && k.size == 4 {
		return vSubF(sseWidth, 4, a, b)
	}
	return s.Generic.sub(k, a, b)
}

func (s SSE) mul(k kind, a, b Register) Register {
	if k.float && k.size == 4 {
		return vMulF(sseWidth, 4, a, b)
	}
	return s.Generic.mul(k, a, b)
}

func (s SSE) div(k kind, a, b Register) Register {
	if k.float && k.size == 4 {
		return vDivF(sseWidth, 4, a, b)
	}
	return s.Generic.div(k, a, b)
}

// SSE2 kernel.

func (s SSE2) add(k kind, a, b Register) Register {
	if k.float {
		return vAddF(sseWidth, k.size, a, b)
	}
	return vAdd(sseWidth, k.size, a, b)
}

func (s SSE2) sub(k kind, a, b Register) Register {
	if k.float {
		return vSubF(sseWidth, k.size, a, b)
	}
	return vSub(sseWidth, k.size, a, b)
}

func (s SSE2) mul(k kind, a, b Register) Register {
	if k.float {
		return vMulF(sseWidth, k.size, a, b)
	}
	switch k.size {
	case 2:
		return vMulLo(sseWidth, 2, a, b)
	case 4:
		// pmuludq on lanes 0, 2 and on lanes 1, 3, then gather the low
		// halves of the four products.
		imm := shuffleImm(3, 3, 1, 1)
		a13 := vShuffle32(sseWidth, a, imm)
		b13 := vShuffle32(sseWidth, b, imm)
		prod02 := vMulUDQ(sseWidth, a, b)
		prod13 := vMulUDQ(sseWidth, a13, b13)
		prod01 := vUnpackLo(sseWidth, 4, prod02, prod13)
		prod23 := vUnpackHi(sseWidth, 4, prod02, prod13)
		return vUnpackLo(sseWidth, 8, prod01, prod23)
	default:
		return generic128{}.mul(k, a, b)
	}
}

func (s SSE2) div(k kind, a, b Register) Register {
	if k.float {
		return vDivF(sseWidth, k.size, a, b)
	}
	return generic128{}.div(k, a, b)
}

func (s SSE2) neg(k kind, a Register) Register {
	if k.float {
		return vXor(sseWidth, a, vBroadcast(sseWidth, k.size, signBit(k.size)))
	}
	return vSub(sseWidth, k.size, Register{}, a)
}

func (SSE2) bitwiseAnd(_ kind, a, b Register) Register { return vAnd(sseWidth, a, b) }
func (SSE2) bitwiseOr(_ kind, a, b Register) Register  { return vOr(sseWidth, a, b) }
func (SSE2) bitwiseXor(_ kind, a, b Register) Register { return vXor(sseWidth, a, b) }

func (SSE2) bitwiseAndNot(_ kind, a, b Register) Register {
	return vAndNot(sseWidth, b, a)
}

func (SSE2) bitwiseNot(_ kind, a Register) Register {
	return vXor(sseWidth, a, vAllOnes(sseWidth))
}

func (s SSE2) lshift(k kind, a Register, n int) Register {
	switch k.size {
	case 1:
		// No byte shift: shift dwords and clear the bits that crossed into
		// the next byte.
		return vAnd(sseWidth, vBroadcast(sseWidth, 1, 0xFF<<uint(n)), vShl(sseWidth, 4, a, n))
	case 2, 4, 8:
		return vShl(sseWidth, k.size, a, n)
	}
	unsupported("bitwise_lshift", k, s.Name())
	return Register{}
}

func (s SSE2) rshift(k kind, a Register, n int) Register {
	if !k.signed {
		if k.size == 1 {
			return vAnd(sseWidth, vBroadcast(sseWidth, 1, 0xFF>>uint(n)), vShr(sseWidth, 4, a, n))
		}
		return vShr(sseWidth, k.size, a, n)
	}
	switch k.size {
	case 1:
		// Arithmetic word shift, then patch the bits the high byte shifted
		// into the low byte with the low byte's sign.
		signMask := vBroadcast(sseWidth, 2, (0xFF00>>uint(n))&0x00FF)
		negative := vCmp(sseWidth, kind{size: 1, signed: true}, cmpGT, Register{}, a)
		res := vSar(sseWidth, 2, a, n)
		return vOr(sseWidth, vAnd(sseWidth, signMask, negative), vAndNot(sseWidth, signMask, res))
	case 2, 4:
		return vSar(sseWidth, k.size, a, n)
	case 8:
		return sra64(sseWidth, a, n)
	}
	unsupported("bitwise_rshift", k, s.Name())
	return Register{}
}

// sra64 synthesizes an arithmetic right shift of 64-bit lanes, which has no
// instruction before AVX-512: the logical shift, or'ed with the sign word
// shifted into the vacated high bits.
func sra64(w int, a Register, n int) Register {
	sign := vSar(w, 4, vShuffle32(w, a, shuffleImm(3, 3, 1, 1)), 32)
	return vOr(w, vShr(w, 8, a, n), vShl(w, 8, sign, 64-n))
}

func (s SSE2) eq(k kind, a, b Register) Register {
	if k.float || k.size < 8 {
		return vCmp(sseWidth, k, cmpEQ, a, b)
	}
	return eq64(sseWidth, a, b)
}

// eq64 compares 64-bit lanes with pcmpeqd: both halves must match.
func eq64(w int, a, b Register) Register {
	t1 := vCmp(w, kindI32, cmpEQ, a, b)
	t2 := vShuffle32(w, t1, shuffleImm(2, 3, 0, 1))
	t3 := vAnd(w, t1, t2)
	t4 := vSar(w, 4, t3, 31)
	return vShuffle32(w, t4, shuffleImm(3, 3, 1, 1))
}

func (s SSE2) neq(k kind, a, b Register) Register {
	if k.float {
		return vCmp(sseWidth, k, cmpNEQ, a, b)
	}
	return s.bitwiseNot(k, s.eq(k, a, b))
}

func (s SSE2) lt(k kind, a, b Register) Register {
	if k.float {
		return vCmp(sseWidth, k, cmpLT, a, b)
	}
	if !k.signed {
		// Flip the sign bits and compare signed.
		bias := vBroadcast(sseWidth, k.size, signBit(k.size))
		a, b = vXor(sseWidth, a, bias), vXor(sseWidth, b, bias)
	}
	if k.size < 8 {
		return vCmp(sseWidth, kind{size: k.size, signed: true}, cmpGT, b, a)
	}
	return lt64(sseWidth, a, b)
}

// lt64 is a signed 64-bit less-than without pcmpgtq: when the signs differ
// the answer is the sign of a, otherwise the sign of a-b.
func lt64(w int, a, b Register) Register {
	t1 := vSub(w, 8, a, b)
	t2 := vXor(w, a, b)
	t3 := vAndNot(w, b, a)
	t4 := vAndNot(w, t2, t1)
	t5 := vOr(w, t3, t4)
	t6 := vSar(w, 4, t5, 31)
	return vShuffle32(w, t6, shuffleImm(3, 3, 1, 1))
}

func (s SSE2) gt(k kind, a, b Register) Register {
	if k.float {
		return vCmp(sseWidth, k, cmpGT, a, b)
	}
	if k.signed && k.size < 8 {
		return vCmp(sseWidth, k, cmpGT, a, b)
	}
	return generic128{}.gt(k, a, b)
}

func (s SSE2) le(k kind, a, b Register) Register {
	if k.float {
		return vCmp(sseWidth, k, cmpLE, a, b)
	}
	return s.bitwiseNot(k, s.gt(k, a, b))
}

func (s SSE2) ge(k kind, a, b Register) Register {
	if k.float {
		return vCmp(sseWidth, k, cmpGE, a, b)
	}
	return s.bitwiseNot(k, s.lt(k, a, b))
}

func (s SSE2) selectv(_ kind, c, a, b Register) Register {
	return vOr(sseWidth, vAnd(sseWidth, c, a), vAndNot(sseWidth, c, b))
}

func (s SSE2) sadd(k kind, a, b Register) Register {
	if k.float {
		return s.add(k, a, b)
	}
	if k.size <= 2 {
		return vAddSat(sseWidth, k, a, b)
	}
	return SSE{}.sadd(k, a, b)
}

func (s SSE2) ssub(k kind, a, b Register) Register {
	if k.float {
		return s.sub(k, a, b)
	}
	if k.size <= 2 {
		return vSubSat(sseWidth, k, a, b)
	}
	return SSE{}.ssub(k, a, b)
}

func (s SSE2) max(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vMaxF(sseWidth, k.size, a, b)
	case k.signed && k.size == 2, !k.signed && k.size == 1:
		return vMax(sseWidth, k, a, b)
	}
	return s.selectv(k, s.gt(k, a, b), a, b)
}

func (s SSE2) min(k kind, a, b Register) Register {
	switch {
	case k.float:
		return vMinF(sseWidth, k.size, a, b)
	case k.signed && k.size == 2, !k.signed && k.size == 1:
		return vMin(sseWidth, k, a, b)
	}
	return s.selectv(k, s.le(k, a, b), a, b)
}

func (s SSE2) hadd(k kind, a Register) uint64 {
	switch {
	case k.float && k.size == 4:
		// movehl + addps, then add lane 1 into lane 0.
		t0 := vAddF(sseWidth, 4, a, vShuffle32(sseWidth, a, shuffleImm(3, 2, 3, 2)))
		t1 := vAddF(sseWidth, 4, t0, vShuffle32(sseWidth, t0, shuffleImm(1, 1, 1, 1)))
		return uint64(vLow32(t1))
	case k.float:
		return vLow64(vAddF(sseWidth, 8, a, vUnpackHi(sseWidth, 8, a, a)))
	case k.size == 4:
		t2 := vAdd(sseWidth, 4, a, vShuffle32(sseWidth, a, 0x0E))
		t4 := vAdd(sseWidth, 4, t2, vShuffle32(sseWidth, t2, 0x01))
		return uint64(vLow32(t4))
	case k.size == 8:
		t2 := vAdd(sseWidth, 8, a, vShuffle32(sseWidth, a, 0x0E))
		if strconv.IntSize == 32 {
			// No 64-bit general purpose register to move into.
			b := vStoreLow64(t2)
			return binary.LittleEndian.Uint64(b[:])
		}
		return vLow64(t2)
	}
	return generic128{}.hadd(k, a)
}

func (s SSE2) zipLo(k kind, a, b Register) Register {
	return vUnpackLo(sseWidth, k.size, a, b)
}

func (s SSE2) zipHi(k kind, a, b Register) Register {
	return vUnpackHi(sseWidth, k.size, a, b)
}

func (s SSE2) broadcast(k kind, v uint64) Register {
	return vBroadcast(sseWidth, k.size, v)
}

func (s SSE2) set(k kind, vals []uint64) Register {
	checkArity(sseWidth/k.size, len(vals))
	return vSetR(sseWidth, k.size, vals)
}

func (s SSE2) loadAligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:sseWidth])
}

func (s SSE2) loadUnaligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:sseWidth])
}

func (s SSE2) storeAligned(_ kind, mem []byte, a Register) {
	copy(mem[:sseWidth], a.Bytes(sseWidth))
}

func (s SSE2) storeUnaligned(_ kind, mem []byte, a Register) {
	copy(mem[:sseWidth], a.Bytes(sseWidth))
}

func (s SSE2) toFloat(k kind, a Register) Register {
	if k.size == 4 {
		return vCvtI32F32(sseWidth, a)
	}
	return generic128{}.toFloat(k, a)
}

func (s SSE2) toInt(k kind, a Register) Register {
	if k.size == 4 {
		return vCvttF32I32(sseWidth, a)
	}
	return generic128{}.toInt(k, a)
}

// boolAll and boolAny on SSE read float32 bools with movmskps.
func (s SSE) boolAll(k kind, a Register) bool {
	if k.float && k.size == 4 {
		return vMoveMask(sseWidth, 4, a) == 0xF
	}
	return s.Generic.boolAll(k, a)
}

func (s SSE) boolAny(k kind, a Register) bool {
	if k.float && k.size == 4 {
		return vMoveMask(sseWidth, 4, a) != 0
	}
	return s.Generic.boolAny(k, a)
}

// sseMoveMask is movmskps / movmskpd for float lanes and pmovmskb for
// integer lanes. full is the result when every lane is true.
func sseMoveMask(k kind, a Register) (m, full uint64) {
	size := 1
	if k.float {
		size = k.size
	}
	return vMoveMask(sseWidth, size, a), 1<<(sseWidth/size) - 1
}

func (SSE2) boolAll(k kind, a Register) bool {
	m, full := sseMoveMask(k, a)
	return m == full
}

func (SSE2) boolAny(k kind, a Register) bool {
	m, _ := sseMoveMask(k, a)
	return m != 0
}
