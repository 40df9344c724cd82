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

// SSE3 through SSE4.2 each override the handful of operations their new
// instructions improve and inherit the rest from the previous tag.

// hadd uses haddps / haddpd.
func (s SSE3) hadd(k kind, a Register) uint64 {
	switch {
	case k.float && k.size == 4:
		t := vHAddPairs(sseWidth, k, a, a)
		t = vHAddPairs(sseWidth, k, t, t)
		return uint64(vLow32(t))
	case k.float:
		return vLow64(vHAddPairs(sseWidth, k, a, a))
	}
	return s.SSE2.hadd(k, a)
}

// hadd uses phaddw / phaddd for 2 and 4 byte lanes.
func (s SSSE3) hadd(k kind, a Register) uint64 {
	if k.float {
		return s.SSE3.hadd(k, a)
	}
	switch k.size {
	case 2:
		t := vHAddPairs(sseWidth, k, a, a)
		t = vHAddPairs(sseWidth, k, t, t)
		t = vHAddPairs(sseWidth, k, t, t)
		return uint64(vLow32(t)) & 0xFFFF
	case 4:
		t := vHAddPairs(sseWidth, k, a, a)
		t = vHAddPairs(sseWidth, k, t, t)
		return uint64(vLow32(t))
	}
	return s.SSE3.hadd(k, a)
}

func (s SSE41) mul(k kind, a, b Register) Register {
	if !k.float && k.size == 4 {
		return vMulLo(sseWidth, 4, a, b)
	}
	return s.SSSE3.mul(k, a, b)
}

func (s SSE41) eq(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return vCmp(sseWidth, k, cmpEQ, a, b)
	}
	return s.SSSE3.eq(k, a, b)
}

// selectv uses pblendvb. Sentinel lanes have the top bit of every byte
// set, so the byte blend selects whole lanes.
func (s SSE41) selectv(_ kind, c, a, b Register) Register {
	return vBlendVB(sseWidth, b, a, c)
}

// max and min are native for every integer width but 64 bits: pmaxsb,
// pmaxsd, pmaxuw, pmaxud here, pmaxsw and pmaxub from SSE2.
func (s SSE41) max(k kind, a, b Register) Register {
	if !k.float && k.size < 8 {
		return vMax(sseWidth, k, a, b)
	}
	return s.SSSE3.max(k, a, b)
}

func (s SSE41) min(k kind, a, b Register) Register {
	if !k.float && k.size < 8 {
		return vMin(sseWidth, k, a, b)
	}
	return s.SSSE3.min(k, a, b)
}

// gt and lt on 64-bit lanes use pcmpgtq, with the sign bias for unsigned
// lanes.
func (s SSE42) gt(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return gt64(sseWidth, k, a, b)
	}
	return s.SSE41.gt(k, a, b)
}

func (s SSE42) lt(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return gt64(sseWidth, k, b, a)
	}
	return s.SSE41.lt(k, a, b)
}

func (s SSE42) le(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return s.bitwiseNot(k, s.gt(k, a, b))
	}
	return s.SSE41.le(k, a, b)
}

func (s SSE42) ge(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return s.bitwiseNot(k, s.lt(k, a, b))
	}
	return s.SSE41.ge(k, a, b)
}

func (s SSE42) max(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return s.selectv(k, s.gt(k, a, b), a, b)
	}
	return s.SSE41.max(k, a, b)
}

func (s SSE42) min(k kind, a, b Register) Register {
	if !k.float && k.size == 8 {
		return s.selectv(k, s.le(k, a, b), a, b)
	}
	return s.SSE41.min(k, a, b)
}

func gt64(w int, k kind, a, b Register) Register {
	if !k.signed {
		bias := vBroadcast(w, 8, signBit(8))
		a, b = vXor(w, a, bias), vXor(w, b, bias)
	}
	return vCmp(w, kindI64, cmpGT, a, b)
}

// boolAll and boolAny use ptest: CF against all ones, ZF against itself.
func (SSE41) boolAll(_ kind, a Register) bool {
	return vTestC(sseWidth, a, vAllOnes(sseWidth))
}

func (SSE41) boolAny(_ kind, a Register) bool {
	return !vTestZ(sseWidth, a, a)
}
