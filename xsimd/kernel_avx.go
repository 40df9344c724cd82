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

const avxWidth = 32

// AVX kernel: 256-bit float instructions. Integer lanes go through the
// embedded split kernel to SSE4.2.

func (x AVX) add(k kind, a, b Register) Register {
	if k.float {
		return vAddF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.add(k, a, b)
}

func (x AVX) sub(k kind, a, b Register) Register {
	if k.float {
		return vSubF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.sub(k, a, b)
}

func (x AVX) mul(k kind, a, b Register) Register {
	if k.float {
		return vMulF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.mul(k, a, b)
}

func (x AVX) div(k kind, a, b Register) Register {
	if k.float {
		return vDivF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.div(k, a, b)
}

func (x AVX) neg(k kind, a Register) Register {
	if k.float {
		return vXor(avxWidth, a, vBroadcast(avxWidth, k.size, signBit(k.size)))
	}
	return x.splitKernel.neg(k, a)
}

func (x AVX) cmp(k kind, p cmpPred, a, b Register, split func(k kind, a, b Register) Register) Register {
	if k.float {
		return vCmp(avxWidth, k, p, a, b)
	}
	return split(k, a, b)
}

func (x AVX) eq(k kind, a, b Register) Register  { return x.cmp(k, cmpEQ, a, b, x.splitKernel.eq) }
func (x AVX) neq(k kind, a, b Register) Register { return x.cmp(k, cmpNEQ, a, b, x.splitKernel.neq) }
func (x AVX) lt(k kind, a, b Register) Register  { return x.cmp(k, cmpLT, a, b, x.splitKernel.lt) }
func (x AVX) le(k kind, a, b Register) Register  { return x.cmp(k, cmpLE, a, b, x.splitKernel.le) }
func (x AVX) gt(k kind, a, b Register) Register  { return x.cmp(k, cmpGT, a, b, x.splitKernel.gt) }
func (x AVX) ge(k kind, a, b Register) Register  { return x.cmp(k, cmpGE, a, b, x.splitKernel.ge) }

// selectv uses vblendvps / vblendvpd for floats.
func (x AVX) selectv(k kind, c, a, b Register) Register {
	if k.float {
		return vBlendVB(avxWidth, b, a, c)
	}
	return x.splitKernel.selectv(k, c, a, b)
}

func (x AVX) max(k kind, a, b Register) Register {
	if k.float {
		return vMaxF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.max(k, a, b)
}

func (x AVX) min(k kind, a, b Register) Register {
	if k.float {
		return vMinF(avxWidth, k.size, a, b)
	}
	return x.splitKernel.min(k, a, b)
}

func (x AVX) zipLo(k kind, a, b Register) Register {
	if k.float {
		return zip256(k.size, a, b, false)
	}
	return x.splitKernel.zipLo(k, a, b)
}

func (x AVX) zipHi(k kind, a, b Register) Register {
	if k.float {
		return zip256(k.size, a, b, true)
	}
	return x.splitKernel.zipHi(k, a, b)
}

// zip256 interleaves with the in-lane unpacks, then moves the 128-bit
// halves into order with vperm2f128 / vperm2i128.
func zip256(size int, a, b Register, high bool) Register {
	lo := vUnpackLo(avxWidth, size, a, b)
	hi := vUnpackHi(avxWidth, size, a, b)
	if high {
		return vPerm2x128(lo, hi, 0x31)
	}
	return vPerm2x128(lo, hi, 0x20)
}

func (x AVX) toFloat(k kind, a Register) Register {
	if k.size == 4 {
		return vCvtI32F32(avxWidth, a)
	}
	return x.splitKernel.toFloat(k, a)
}

func (x AVX) toInt(k kind, a Register) Register {
	if k.size == 4 {
		return vCvttF32I32(avxWidth, a)
	}
	return x.splitKernel.toInt(k, a)
}

// AVX2 kernel: 256-bit integer instructions.

func (x AVX2) add(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.add(k, a, b)
	}
	return vAdd(avxWidth, k.size, a, b)
}

func (x AVX2) sub(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.sub(k, a, b)
	}
	return vSub(avxWidth, k.size, a, b)
}

func (x AVX2) mul(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.AVX.mul(k, a, b)
	case k.size == 2, k.size == 4:
		return vMulLo(avxWidth, k.size, a, b)
	}
	return generic256{}.mul(k, a, b)
}

func (x AVX2) neg(k kind, a Register) Register {
	if k.float {
		return x.AVX.neg(k, a)
	}
	return vSub(avxWidth, k.size, Register{}, a)
}

func (x AVX2) lshift(k kind, a Register, n int) Register {
	if k.size == 1 {
		return vAnd(avxWidth, vBroadcast(avxWidth, 1, 0xFF<<uint(n)), vShl(avxWidth, 4, a, n))
	}
	return vShl(avxWidth, k.size, a, n)
}

func (x AVX2) rshift(k kind, a Register, n int) Register {
	if !k.signed {
		if k.size == 1 {
			return vAnd(avxWidth, vBroadcast(avxWidth, 1, 0xFF>>uint(n)), vShr(avxWidth, 4, a, n))
		}
		return vShr(avxWidth, k.size, a, n)
	}
	switch k.size {
	case 1:
		signMask := vBroadcast(avxWidth, 2, (0xFF00>>uint(n))&0x00FF)
		negative := vCmp(avxWidth, kind{size: 1, signed: true}, cmpGT, Register{}, a)
		res := vSar(avxWidth, 2, a, n)
		return vOr(avxWidth, vAnd(avxWidth, signMask, negative), vAndNot(avxWidth, signMask, res))
	case 8:
		return sra64(avxWidth, a, n)
	}
	return vSar(avxWidth, k.size, a, n)
}

func (x AVX2) eq(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.eq(k, a, b)
	}
	return vCmp(avxWidth, k, cmpEQ, a, b)
}

func (x AVX2) neq(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.neq(k, a, b)
	}
	return x.bitwiseNot(k, x.eq(k, a, b))
}

// gt is vpcmpgt{b,w,d,q}, with the sign bias for unsigned lanes.
func (x AVX2) gt(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.gt(k, a, b)
	}
	if !k.signed {
		bias := vBroadcast(avxWidth, k.size, signBit(k.size))
		a, b = vXor(avxWidth, a, bias), vXor(avxWidth, b, bias)
	}
	return vCmp(avxWidth, kind{size: k.size, signed: true}, cmpGT, a, b)
}

func (x AVX2) lt(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.lt(k, a, b)
	}
	return x.gt(k, b, a)
}

func (x AVX2) le(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.le(k, a, b)
	}
	return x.bitwiseNot(k, x.gt(k, a, b))
}

func (x AVX2) ge(k kind, a, b Register) Register {
	if k.float {
		return x.AVX.ge(k, a, b)
	}
	return x.bitwiseNot(k, x.lt(k, a, b))
}

func (x AVX2) selectv(k kind, c, a, b Register) Register {
	return vBlendVB(avxWidth, b, a, c)
}

func (x AVX2) sadd(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.add(k, a, b)
	case k.size <= 2:
		return vAddSat(avxWidth, k, a, b)
	}
	return generic256{}.sadd(k, a, b)
}

func (x AVX2) ssub(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.sub(k, a, b)
	case k.size <= 2:
		return vSubSat(avxWidth, k, a, b)
	}
	return generic256{}.ssub(k, a, b)
}

func (x AVX2) max(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.AVX.max(k, a, b)
	case k.size < 8:
		return vMax(avxWidth, k, a, b)
	}
	return x.selectv(k, x.gt(k, a, b), a, b)
}

func (x AVX2) min(k kind, a, b Register) Register {
	switch {
	case k.float:
		return x.AVX.min(k, a, b)
	case k.size < 8:
		return vMin(avxWidth, k, a, b)
	}
	return x.selectv(k, x.le(k, a, b), a, b)
}

func (x AVX2) hadd(k kind, a Register) uint64 {
	switch {
	case k.float:
	case k.size == 4:
		t1 := vHAddPairs(avxWidth, k, a, a)
		t2 := vHAddPairs(avxWidth, k, t1, t1)
		t4 := vAdd(sseWidth, 4, t2.half(avxWidth, false), t2.half(avxWidth, true))
		return uint64(vLow32(t4))
	case k.size == 8:
		t2 := vAdd(avxWidth, 8, a, vShuffle32(avxWidth, a, 0x0E))
		return vLow64(vAdd(sseWidth, 8, t2.half(avxWidth, false), t2.half(avxWidth, true)))
	}
	return x.AVX.hadd(k, a)
}

func (x AVX2) zipLo(k kind, a, b Register) Register {
	return zip256(k.size, a, b, false)
}

func (x AVX2) zipHi(k kind, a, b Register) Register {
	return zip256(k.size, a, b, true)
}

// boolAll and boolAny are vptest on the full 256-bit register.
func (AVX) boolAll(_ kind, a Register) bool {
	return vTestC(avxWidth, a, vAllOnes(avxWidth))
}

func (AVX) boolAny(_ kind, a Register) bool {
	return !vTestZ(avxWidth, a, a)
}
