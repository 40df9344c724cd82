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

// splitKernel runs the half-width kernel H on the low and high halves of a
// W-wide register and joins the results, with vextract/vinsert. It is how
// AVX runs integer code on SSE4.2 and AVX-512F runs byte and word code on
// AVX2.
//
// Bool registers stay sentinel vectors, so halves of a condition are valid
// conditions for H.
type splitKernel[H kernel, W width] struct{ vectorBools[W] }

func (splitKernel[H, W]) halves(a Register) (lo, hi Register) {
	w := widthOf[W]()
	return a.half(w, false), a.half(w, true)
}

func (s splitKernel[H, W]) split1(a Register, f func(a Register) Register) Register {
	lo, hi := s.halves(a)
	return join(widthOf[W](), f(lo), f(hi))
}

func (s splitKernel[H, W]) split2(a, b Register, f func(a, b Register) Register) Register {
	alo, ahi := s.halves(a)
	blo, bhi := s.halves(b)
	return join(widthOf[W](), f(alo, blo), f(ahi, bhi))
}

func (s splitKernel[H, W]) split3(c, a, b Register, f func(c, a, b Register) Register) Register {
	clo, chi := s.halves(c)
	alo, ahi := s.halves(a)
	blo, bhi := s.halves(b)
	return join(widthOf[W](), f(clo, alo, blo), f(chi, ahi, bhi))
}

func (s splitKernel[H, W]) add(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.add(k, a, b) })
}

func (s splitKernel[H, W]) sub(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.sub(k, a, b) })
}

func (s splitKernel[H, W]) mul(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.mul(k, a, b) })
}

func (s splitKernel[H, W]) div(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.div(k, a, b) })
}

func (s splitKernel[H, W]) neg(k kind, a Register) Register {
	var h H
	return s.split1(a, func(a Register) Register { return h.neg(k, a) })
}

func (splitKernel[H, W]) bitwiseAnd(_ kind, a, b Register) Register {
	return vAnd(widthOf[W](), a, b)
}

func (splitKernel[H, W]) bitwiseOr(_ kind, a, b Register) Register {
	return vOr(widthOf[W](), a, b)
}

func (splitKernel[H, W]) bitwiseXor(_ kind, a, b Register) Register {
	return vXor(widthOf[W](), a, b)
}

func (splitKernel[H, W]) bitwiseAndNot(_ kind, a, b Register) Register {
	return vAndNot(widthOf[W](), b, a)
}

func (splitKernel[H, W]) bitwiseNot(_ kind, a Register) Register {
	return vXor(widthOf[W](), a, vAllOnes(widthOf[W]()))
}

func (s splitKernel[H, W]) lshift(k kind, a Register, n int) Register {
	var h H
	return s.split1(a, func(a Register) Register { return h.lshift(k, a, n) })
}

func (s splitKernel[H, W]) rshift(k kind, a Register, n int) Register {
	var h H
	return s.split1(a, func(a Register) Register { return h.rshift(k, a, n) })
}

func (s splitKernel[H, W]) eq(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.eq(k, a, b) })
}

func (s splitKernel[H, W]) neq(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.neq(k, a, b) })
}

func (s splitKernel[H, W]) lt(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.lt(k, a, b) })
}

func (s splitKernel[H, W]) le(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.le(k, a, b) })
}

func (s splitKernel[H, W]) gt(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.gt(k, a, b) })
}

func (s splitKernel[H, W]) ge(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.ge(k, a, b) })
}

func (s splitKernel[H, W]) selectv(k kind, c, a, b Register) Register {
	var h H
	return s.split3(c, a, b, func(c, a, b Register) Register { return h.selectv(k, c, a, b) })
}

func (s splitKernel[H, W]) sadd(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.sadd(k, a, b) })
}

func (s splitKernel[H, W]) ssub(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.ssub(k, a, b) })
}

func (s splitKernel[H, W]) max(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.max(k, a, b) })
}

func (s splitKernel[H, W]) min(k kind, a, b Register) Register {
	var h H
	return s.split2(a, b, func(a, b Register) Register { return h.min(k, a, b) })
}

// hadd adds the two halves first, then reduces the half-width register.
func (s splitKernel[H, W]) hadd(k kind, a Register) uint64 {
	var h H
	lo, hi := s.halves(a)
	return h.hadd(k, h.add(k, lo, hi))
}

// zipLo interleaves the low halves of a and b: the low half of the result
// is H's zipLo of them, the high half H's zipHi.
func (s splitKernel[H, W]) zipLo(k kind, a, b Register) Register {
	var h H
	alo, _ := s.halves(a)
	blo, _ := s.halves(b)
	return join(widthOf[W](), h.zipLo(k, alo, blo), h.zipHi(k, alo, blo))
}

func (s splitKernel[H, W]) zipHi(k kind, a, b Register) Register {
	var h H
	_, ahi := s.halves(a)
	_, bhi := s.halves(b)
	return join(widthOf[W](), h.zipLo(k, ahi, bhi), h.zipHi(k, ahi, bhi))
}

func (splitKernel[H, W]) broadcast(k kind, v uint64) Register {
	return vBroadcast(widthOf[W](), k.size, v)
}

func (splitKernel[H, W]) set(k kind, vals []uint64) Register {
	checkArity(widthOf[W]()/k.size, len(vals))
	return vSetR(widthOf[W](), k.size, vals)
}

func (splitKernel[H, W]) loadAligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:widthOf[W]()])
}

func (splitKernel[H, W]) loadUnaligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:widthOf[W]()])
}

func (splitKernel[H, W]) storeAligned(_ kind, mem []byte, a Register) {
	copy(mem[:widthOf[W]()], a.Bytes(widthOf[W]()))
}

func (splitKernel[H, W]) storeUnaligned(_ kind, mem []byte, a Register) {
	copy(mem[:widthOf[W]()], a.Bytes(widthOf[W]()))
}

func (s splitKernel[H, W]) toFloat(k kind, a Register) Register {
	var h H
	return s.split1(a, func(a Register) Register { return h.toFloat(k, a) })
}

func (s splitKernel[H, W]) toInt(k kind, a Register) Register {
	var h H
	return s.split1(a, func(a Register) Register { return h.toInt(k, a) })
}
