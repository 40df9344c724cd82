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

// This file emulates the vector instructions the kernels are written against.
// Each function reproduces one instruction (or one family that differs only
// by lane width) over a register of w bytes, including its edge behaviour:
// shift counts past the lane width, saturation, x86 per-128-bit-lane
// shuffles, integer-indefinite float conversions.
//
// Which instruction exists on which tag is a kernel concern. For example
// vSar works for 8-byte lanes because AVX-512 has vpsraq, but the SSE2 and
// AVX2 kernels must not call it with size 8.

func lanes2(w, size int, a, b Register, f func(x, y uint64) uint64) Register {
	var r Register
	for i := range w / size {
		r.setLane(size, i, f(a.lane(size, i), b.lane(size, i)))
	}
	return r
}

func lanes1(w, size int, a Register, f func(x uint64) uint64) Register {
	var r Register
	for i := range w / size {
		r.setLane(size, i, f(a.lane(size, i)))
	}
	return r
}

// sentinel returns the all-ones or all-zeros lane pattern for b.
func sentinel(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

// Integer arithmetic: paddb/w/d/q, psubb/w/d/q, vaddq/vsubq.

func vAdd(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 { return x + y })
}

func vSub(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 { return x - y })
}

// vMulLo keeps the low half of each product: pmullw, pmulld, vpmullq, vmulq.
func vMulLo(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 { return x * y })
}

// vMulUDQ multiplies the low unsigned 32 bits of each 64-bit lane into a
// 64-bit product: pmuludq.
func vMulUDQ(w int, a, b Register) Register {
	return lanes2(w, 8, a, b, func(x, y uint64) uint64 { return uint64(uint32(x)) * uint64(uint32(y)) })
}

// vAddSat / vSubSat: paddsb/w, paddusb/w, vqaddq, vqsubq.
func vAddSat(w int, k kind, a, b Register) Register {
	return lanes2(w, k.size, a, b, func(x, y uint64) uint64 { return satAdd(k, x, y) })
}

func vSubSat(w int, k kind, a, b Register) Register {
	return lanes2(w, k.size, a, b, func(x, y uint64) uint64 { return satSub(k, x, y) })
}

func satAdd(k kind, x, y uint64) uint64 {
	m := laneMask(k.size)
	if !k.signed {
		s := (x + y) & m
		if s < x {
			return m
		}
		return s
	}
	sx, sy := sext(k.size, x), sext(k.size, y)
	s := sx + sy
	hi, lo := signedRange(k.size)
	// Two's complement overflow: operands share a sign the sum lacks.
	if k.size == 8 {
		if sx >= 0 && sy >= 0 && s < 0 {
			return uint64(hi)
		}
		if sx < 0 && sy < 0 && s >= 0 {
			return uint64(lo)
		}
		return uint64(s)
	}
	return uint64(min(max(s, lo), hi)) & m
}

func satSub(k kind, x, y uint64) uint64 {
	m := laneMask(k.size)
	if !k.signed {
		if y > x {
			return 0
		}
		return x - y
	}
	sx, sy := sext(k.size, x), sext(k.size, y)
	s := sx - sy
	hi, lo := signedRange(k.size)
	if k.size == 8 {
		if sx >= 0 && sy < 0 && s < 0 {
			return uint64(hi)
		}
		if sx < 0 && sy >= 0 && s >= 0 {
			return uint64(lo)
		}
		return uint64(s)
	}
	return uint64(min(max(s, lo), hi)) & m
}

func signedRange(size int) (hi, lo int64) {
	hi = int64(signBit(size) - 1)
	return hi, -hi - 1
}

// vMax / vMin: pmaxsb/sw/sd/sq, pmaxub/uw/ud/uq, vmaxq and the min forms.
func vMax(w int, k kind, a, b Register) Register {
	return lanes2(w, k.size, a, b, func(x, y uint64) uint64 {
		if compareLane(k, cmpGT, x, y) {
			return x
		}
		return y
	})
}

func vMin(w int, k kind, a, b Register) Register {
	return lanes2(w, k.size, a, b, func(x, y uint64) uint64 {
		if compareLane(k, cmpLT, x, y) {
			return x
		}
		return y
	})
}

// Floating point: addps/pd, subps/pd, mulps/pd, divps/pd, maxps/pd, minps/pd.

func floatOp(size int, x, y uint64, f32 func(a, b float32) float32, f64 func(a, b float64) float64) uint64 {
	if size == 4 {
		return uint64(math.Float32bits(f32(math.Float32frombits(uint32(x)), math.Float32frombits(uint32(y)))))
	}
	return math.Float64bits(f64(math.Float64frombits(x), math.Float64frombits(y)))
}

func vAddF(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		return floatOp(size, x, y, func(a, b float32) float32 { return a + b }, func(a, b float64) float64 { return a + b })
	})
}

func vSubF(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		return floatOp(size, x, y, func(a, b float32) float32 { return a - b }, func(a, b float64) float64 { return a - b })
	})
}

func vMulF(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		return floatOp(size, x, y, func(a, b float32) float32 { return a * b }, func(a, b float64) float64 { return a * b })
	})
}

func vDivF(w, size int, a, b Register) Register {
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		return floatOp(size, x, y, func(a, b float32) float32 { return a / b }, func(a, b float64) float64 { return a / b })
	})
}

// vMaxF returns a where a > b and b otherwise, so a NaN in either operand
// yields b, as maxps does.
func vMaxF(w, size int, a, b Register) Register {
	k := kind{size: size, signed: true, float: true}
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		if compareLane(k, cmpGT, x, y) {
			return x
		}
		return y
	})
}

func vMinF(w, size int, a, b Register) Register {
	k := kind{size: size, signed: true, float: true}
	return lanes2(w, size, a, b, func(x, y uint64) uint64 {
		if compareLane(k, cmpLT, x, y) {
			return x
		}
		return y
	})
}

// Logic: pand, por, pxor, pandn, ptest.

func words(w int, a, b Register, f func(x, y uint64) uint64) Register {
	var r Register
	for i := range w / 8 {
		r.w[i] = f(a.w[i], b.w[i])
	}
	return r
}

func vAnd(w int, a, b Register) Register {
	return words(w, a, b, func(x, y uint64) uint64 { return x & y })
}

func vOr(w int, a, b Register) Register {
	return words(w, a, b, func(x, y uint64) uint64 { return x | y })
}

func vXor(w int, a, b Register) Register {
	return words(w, a, b, func(x, y uint64) uint64 { return x ^ y })
}

// vAndNot computes ^a & b, the x86 operand order of pandn.
func vAndNot(w int, a, b Register) Register {
	return words(w, a, b, func(x, y uint64) uint64 { return ^x & y })
}

// vAllOnes returns a register of width w with every bit set (pcmpeqd x, x).
func vAllOnes(w int) Register {
	var r Register
	for i := range w / 8 {
		r.w[i] = ^uint64(0)
	}
	return r
}

// vTestC reports whether ^a & b is zero (the CF result of ptest).
func vTestC(w int, a, b Register) bool {
	for i := range w / 8 {
		if ^a.w[i]&b.w[i] != 0 {
			return false
		}
	}
	return true
}

// vTestZ reports whether a & b is zero (the ZF result of ptest).
func vTestZ(w int, a, b Register) bool {
	for i := range w / 8 {
		if a.w[i]&b.w[i] != 0 {
			return false
		}
	}
	return true
}

// vMoveMask gathers the sign bit of every lane: pmovmskb (size 1), movmskps
// (size 4), movmskpd (size 8).
func vMoveMask(w, size int, a Register) uint64 {
	var m uint64
	for i := range w / size {
		if a.lane(size, i)&signBit(size) != 0 {
			m |= 1 << i
		}
	}
	return m
}

// Comparisons.

type cmpPred uint8

const (
	cmpEQ cmpPred = iota
	cmpLT
	cmpLE
	cmpNEQ
	cmpGE
	cmpGT
)

func compareLane(k kind, p cmpPred, x, y uint64) bool {
	switch {
	case k.float && k.size == 4:
		return comparePred(p, math.Float32frombits(uint32(x)), math.Float32frombits(uint32(y)))
	case k.float:
		return comparePred(p, math.Float64frombits(x), math.Float64frombits(y))
	case k.signed:
		return comparePred(p, sext(k.size, x), sext(k.size, y))
	default:
		return comparePred(p, x, y)
	}
}

func comparePred[T int64 | uint64 | float32 | float64](p cmpPred, x, y T) bool {
	switch p {
	case cmpEQ:
		return x == y
	case cmpLT:
		return x < y
	case cmpLE:
		return x <= y
	case cmpNEQ:
		return x != y
	case cmpGE:
		return x >= y
	default:
		return x > y
	}
}

// vCmp produces an all-ones/all-zeros lane per predicate result: pcmpeq,
// pcmpgt, cmpps/cmppd, vceqq, vcgtq, vcgeq.
func vCmp(w int, k kind, p cmpPred, a, b Register) Register {
	return lanes2(w, k.size, a, b, func(x, y uint64) uint64 {
		return sentinel(compareLane(k, p, x, y))
	})
}

// vCmpMask writes the predicate of lane i into bit i of a k-mask: vpcmp[u]b,
// vpcmp[u]w, vpcmp[u]d, vpcmp[u]q, vcmpps, vcmppd.
func vCmpMask(w int, k kind, p cmpPred, a, b Register) uint64 {
	var m uint64
	for i := range w / k.size {
		if compareLane(k, p, a.lane(k.size, i), b.lane(k.size, i)) {
			m |= 1 << i
		}
	}
	return m
}

// Shifts by an immediate count. Counts past the lane width clear the lane
// (logical) or fill it with the sign (arithmetic), as on x86.

func vShl(w, size int, a Register, n int) Register {
	if n < 0 || n >= size*8 {
		return Register{}
	}
	return lanes1(w, size, a, func(x uint64) uint64 { return x << n })
}

func vShr(w, size int, a Register, n int) Register {
	if n < 0 || n >= size*8 {
		return Register{}
	}
	return lanes1(w, size, a, func(x uint64) uint64 { return x >> n })
}

func vSar(w, size int, a Register, n int) Register {
	n = min(max(n, 0), size*8-1)
	return lanes1(w, size, a, func(x uint64) uint64 { return uint64(sext(size, x) >> n) })
}

// Shuffles. x86 shuffles and unpacks operate inside each 128-bit lane.

// vShuffle32 is pshufd: dst[j] = src[(imm >> 2j) & 3] in every 128-bit lane.
func vShuffle32(w int, a Register, imm uint8) Register {
	var r Register
	for base := 0; base < w/4; base += 4 {
		for j := range 4 {
			src := base + int(imm>>(2*j))&3
			r.setLane(4, base+j, a.lane(4, src))
		}
	}
	return r
}

// shuffleImm builds the pshufd immediate, as _MM_SHUFFLE(z, y, x, w) does.
func shuffleImm(z, y, x, w uint8) uint8 {
	return z<<6 | y<<4 | x<<2 | w
}

// vUnpackLo is punpckl{bw,wd,dq,qdq}: interleave the low halves of every
// 128-bit lane of a and b.
func vUnpackLo(w, size int, a, b Register) Register {
	return unpack(w, size, a, b, 0)
}

// vUnpackHi is punpckh{bw,wd,dq,qdq}.
func vUnpackHi(w, size int, a, b Register) Register {
	return unpack(w, size, a, b, 16/size/2)
}

func unpack(w, size int, a, b Register, start int) Register {
	var r Register
	per := 16 / size
	for base := 0; base < w/size; base += per {
		for j := range per / 2 {
			r.setLane(size, base+2*j, a.lane(size, base+start+j))
			r.setLane(size, base+2*j+1, b.lane(size, base+start+j))
		}
	}
	return r
}

// vPerm2x128 is vperm2i128: each 128-bit half of the result picks one of
// a.lo, a.hi, b.lo, b.hi through a 2-bit selector (bits 0-1 and 4-5).
func vPerm2x128(a, b Register, imm uint8) Register {
	pick := func(sel uint8) Register {
		switch sel & 3 {
		case 0:
			return a.half(32, false)
		case 1:
			return a.half(32, true)
		case 2:
			return b.half(32, false)
		default:
			return b.half(32, true)
		}
	}
	return join(32, pick(imm), pick(imm>>4))
}

// vShuffleI128 is vshufi32x4 on 512-bit registers: result blocks 0 and 1
// are blocks of a, blocks 2 and 3 blocks of b, each picked by a 2-bit
// field of imm.
func vShuffleI128(a, b Register, imm uint8) Register {
	var r Register
	for j := range 4 {
		src := a
		if j >= 2 {
			src = b
		}
		sel := int(imm>>(2*j)) & 3
		copy(r.w[2*j:2*j+2], src.w[2*sel:2*sel+2])
	}
	return r
}

// vZip1 / vZip2 are the AArch64 zip1/zip2 instructions: interleave the low
// or high halves of the whole vector.
func vZip1(w, size int, a, b Register) Register {
	return zip(w, size, a, b, 0)
}

func vZip2(w, size int, a, b Register) Register {
	return zip(w, size, a, b, w/size/2)
}

func zip(w, size int, a, b Register, start int) Register {
	var r Register
	for j := range w / size / 2 {
		r.setLane(size, 2*j, a.lane(size, start+j))
		r.setLane(size, 2*j+1, b.lane(size, start+j))
	}
	return r
}

// Blends.

// vBlendVB is pblendvb: byte i comes from b when the top bit of mask byte i
// is set and from a otherwise.
func vBlendVB(w int, a, b, mask Register) Register {
	var r Register
	for i := range w {
		if mask.lane(1, i)&0x80 != 0 {
			r.setLane(1, i, b.lane(1, i))
		} else {
			r.setLane(1, i, a.lane(1, i))
		}
	}
	return r
}

// vBitSelect is the NEON bsl: (mask & a) | (^mask & b), bit by bit.
func vBitSelect(w int, mask, a, b Register) Register {
	var r Register
	for i := range w / 8 {
		r.w[i] = mask.w[i]&a.w[i] | ^mask.w[i]&b.w[i]
	}
	return r
}

// vBlendMask is vpblendm{b,w,d,q}/vblendmps: lane i comes from b when bit i
// of m is set and from a otherwise.
func vBlendMask(w, size int, m uint64, a, b Register) Register {
	var r Register
	for i := range w / size {
		if m>>i&1 != 0 {
			r.setLane(size, i, b.lane(size, i))
		} else {
			r.setLane(size, i, a.lane(size, i))
		}
	}
	return r
}

// vMaskToVec is vpmovm2{b,w,d,q}: expand a k-mask into sentinel lanes.
func vMaskToVec(w, size int, m uint64) Register {
	var r Register
	for i := range w / size {
		r.setLane(size, i, sentinel(m>>i&1 != 0))
	}
	return r
}

// vVecToMask is vpmov{b,w,d,q}2m: collect the top bit of every lane.
func vVecToMask(w, size int, a Register) uint64 {
	return vMoveMask(w, size, a)
}

// Construction.

// vBroadcast is pbroadcast / set1 / vdupq_n.
func vBroadcast(w, size int, v uint64) Register {
	var r Register
	for i := range w / size {
		r.setLane(size, i, v)
	}
	return r
}

// vSetR is setr: lane i = vals[i].
func vSetR(w, size int, vals []uint64) Register {
	var r Register
	for i := range w / size {
		r.setLane(size, i, vals[i])
	}
	return r
}

// Horizontal adds.

// vHAddPairs is phaddw/phaddd/haddps/haddpd: inside every 128-bit lane the
// result holds the pairwise sums of a followed by those of b.
func vHAddPairs(w int, k kind, a, b Register) Register {
	var r Register
	per := 16 / k.size
	add := func(x, y uint64) uint64 {
		if k.float {
			return floatOp(k.size, x, y, func(a, b float32) float32 { return a + b }, func(a, b float64) float64 { return a + b })
		}
		return x + y
	}
	for base := 0; base < w/k.size; base += per {
		for j := range per / 2 {
			r.setLane(k.size, base+j, add(a.lane(k.size, base+2*j), a.lane(k.size, base+2*j+1)))
			r.setLane(k.size, base+per/2+j, add(b.lane(k.size, base+2*j), b.lane(k.size, base+2*j+1)))
		}
	}
	return r
}

// vAddAcross is the AArch64 addv/faddp reduction of all lanes.
func vAddAcross(w int, k kind, a Register) uint64 {
	acc := a.lane(k.size, 0)
	for i := 1; i < w/k.size; i++ {
		if k.float {
			acc = floatOp(k.size, acc, a.lane(k.size, i), func(a, b float32) float32 { return a + b }, func(a, b float64) float64 { return a + b })
		} else {
			acc += a.lane(k.size, i)
		}
	}
	return acc & laneMask(k.size)
}

// Scalar moves.

// vLow64 is movq / cvtsi128_si64.
func vLow64(a Register) uint64 {
	return a.w[0]
}

// vLow32 is movd / cvtsi128_si32.
func vLow32(a Register) uint32 {
	return uint32(a.w[0])
}

// vStoreLow64 is movq to memory (storel_epi64).
func vStoreLow64(a Register) [8]byte {
	var b [8]byte
	copy(b[:], a.Bytes(8))
	return b
}

// Conversions.

// vCvtI32F32 is cvtdq2ps / vcvtq_f32_s32.
func vCvtI32F32(w int, a Register) Register {
	return lanes1(w, 4, a, func(x uint64) uint64 {
		return uint64(math.Float32bits(float32(int32(x))))
	})
}

// vCvttF32I32 is cvttps2dq: truncation, with NaN and out-of-range inputs
// producing the integer indefinite value 0x80000000.
func vCvttF32I32(w int, a Register) Register {
	return lanes1(w, 4, a, func(x uint64) uint64 {
		return uint64(uint32(truncIndefinite32(float64(math.Float32frombits(uint32(x))))))
	})
}

func truncIndefinite32(f float64) int32 {
	if math.IsNaN(f) || f >= 1<<31 || f <= -(1<<31)-1 {
		return math.MinInt32
	}
	return int32(f)
}

func truncIndefinite64(f float64) int64 {
	if math.IsNaN(f) || f >= 1<<63 || f < -(1<<63) {
		return math.MinInt64
	}
	return int64(f)
}

// vCvtF32I32Sat is vcvtq_s32_f32: truncation saturating to the int32 range,
// NaN converts to zero.
func vCvtF32I32Sat(w int, a Register) Register {
	return lanes1(w, 4, a, func(x uint64) uint64 {
		f := float64(math.Float32frombits(uint32(x)))
		switch {
		case math.IsNaN(f):
			return 0
		case f >= math.MaxInt32:
			return uint64(uint32(math.MaxInt32))
		case f <= math.MinInt32:
			return uint64(uint32(1 << 31))
		}
		return uint64(uint32(int32(f)))
	})
}
