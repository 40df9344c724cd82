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
	"math"
	"math/rand/v2"
	"testing"
)

var allKinds = []kind{
	{size: 1, signed: true}, {size: 1},
	{size: 2, signed: true}, {size: 2},
	{size: 4, signed: true}, {size: 4},
	{size: 8, signed: true}, {size: 8},
	{size: 4, signed: true, float: true},
	{size: 8, signed: true, float: true},
}

func genericFor(w int) kernel {
	switch w {
	case 16:
		return generic128{}
	case 32:
		return generic256{}
	default:
		return generic512{}
	}
}

// randLanes returns n lane values of kind k. Integers mix random bits with
// the range extremes so saturation is exercised; floats are small integers
// so every kernel's summation order gives the same exact result.
func randLanes(r *rand.Rand, k kind, n int) []uint64 {
	vals := make([]uint64, n)
	for i := range vals {
		switch {
		case k.float && k.size == 4:
			vals[i] = uint64(math.Float32bits(float32(r.IntN(201) - 100)))
		case k.float:
			vals[i] = math.Float64bits(float64(r.IntN(201) - 100))
		default:
			switch r.IntN(8) {
			case 0:
				vals[i] = 0
			case 1:
				if k.signed {
					vals[i] = signBit(k.size) - 1
				} else {
					vals[i] = laneMask(k.size)
				}
			case 2:
				if k.signed {
					vals[i] = signBit(k.size)
				} else {
					vals[i] = 1
				}
			default:
				vals[i] = r.Uint64() & laneMask(k.size)
			}
		}
	}
	return vals
}

func regOf(k kind, vals []uint64) Register {
	var reg Register
	for i, v := range vals {
		reg.setLane(k.size, i, v)
	}
	return reg
}

func randBools(r *rand.Rand, n int) []bool {
	b := make([]bool, n)
	for i := range b {
		b[i] = r.IntN(2) == 1
	}
	return b
}

func checkLanes(t *testing.T, op string, k kind, n int, got, want Register) {
	t.Helper()
	for i := range n {
		if g, w := got.lane(k.size, i), want.lane(k.size, i); g != w {
			t.Errorf("%s: lane %d: got %#x, want %#x", op, i, g, w)
			return
		}
	}
}

// checkBools compares bool registers lane by lane, each read with its own
// kernel: the two may use different representations.
func checkBools(t *testing.T, op string, k kind, n int, a kernel, got Register, g kernel, want Register) {
	t.Helper()
	for i := range n {
		if gv, wv := a.boolGet(k, got, i), g.boolGet(k, want, i); gv != wv {
			t.Errorf("%s: lane %d: got %v, want %v", op, i, gv, wv)
			return
		}
	}
}

func TestKernelsMatchGeneric(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, a := range Archs() {
		g := genericFor(a.Width())
		for _, k := range allKinds {
			n := a.Width() / k.size
			t.Run(a.Name()+"/"+k.String(), func(t *testing.T) {
				for range 64 {
					x := regOf(k, randLanes(r, k, n))
					y := regOf(k, randLanes(r, k, n))

					checkLanes(t, "add", k, n, a.add(k, x, y), g.add(k, x, y))
					checkLanes(t, "sub", k, n, a.sub(k, x, y), g.sub(k, x, y))
					checkLanes(t, "mul", k, n, a.mul(k, x, y), g.mul(k, x, y))
					checkLanes(t, "neg", k, n, a.neg(k, x), g.neg(k, x))
					checkLanes(t, "bitwise_and", k, n, a.bitwiseAnd(k, x, y), g.bitwiseAnd(k, x, y))
					checkLanes(t, "bitwise_or", k, n, a.bitwiseOr(k, x, y), g.bitwiseOr(k, x, y))
					checkLanes(t, "bitwise_xor", k, n, a.bitwiseXor(k, x, y), g.bitwiseXor(k, x, y))
					checkLanes(t, "bitwise_andnot", k, n, a.bitwiseAndNot(k, x, y), g.bitwiseAndNot(k, x, y))
					checkLanes(t, "bitwise_not", k, n, a.bitwiseNot(k, x), g.bitwiseNot(k, x))
					checkLanes(t, "sadd", k, n, a.sadd(k, x, y), g.sadd(k, x, y))
					checkLanes(t, "ssub", k, n, a.ssub(k, x, y), g.ssub(k, x, y))
					checkLanes(t, "max", k, n, a.max(k, x, y), g.max(k, x, y))
					checkLanes(t, "min", k, n, a.min(k, x, y), g.min(k, x, y))
					checkLanes(t, "zip_lo", k, n, a.zipLo(k, x, y), g.zipLo(k, x, y))
					checkLanes(t, "zip_hi", k, n, a.zipHi(k, x, y), g.zipHi(k, x, y))

					if got, want := a.hadd(k, x), g.hadd(k, x); got != want {
						t.Errorf("hadd: got %#x, want %#x", got, want)
					}

					checkBools(t, "eq", k, n, a, a.eq(k, x, y), g, g.eq(k, x, y))
					checkBools(t, "eq self", k, n, a, a.eq(k, x, x), g, g.eq(k, x, x))
					checkBools(t, "neq", k, n, a, a.neq(k, x, y), g, g.neq(k, x, y))
					checkBools(t, "lt", k, n, a, a.lt(k, x, y), g, g.lt(k, x, y))
					checkBools(t, "le", k, n, a, a.le(k, x, y), g, g.le(k, x, y))
					checkBools(t, "gt", k, n, a, a.gt(k, x, y), g, g.gt(k, x, y))
					checkBools(t, "ge", k, n, a, a.ge(k, x, y), g, g.ge(k, x, y))

					cond := randBools(r, n)
					checkLanes(t, "select", k, n,
						a.selectv(k, a.boolPack(k, cond), x, y),
						g.selectv(k, g.boolPack(k, cond), x, y))
					checkLanes(t, "select(lt)", k, n,
						a.selectv(k, a.lt(k, x, y), x, y),
						g.selectv(k, g.lt(k, x, y), x, y))

					if k.float {
						// Zero divisors become one so no NaN payloads are compared.
						d := a.selectv(k, a.eq(k, y, Register{}), a.broadcast(k, laneOne(k)), y)
						checkLanes(t, "div", k, n, a.div(k, x, d), g.div(k, x, d))
					} else {
						for _, s := range []int{0, 1, k.bits() / 2, k.bits() - 1} {
							checkLanes(t, "bitwise_lshift", k, n, a.lshift(k, x, s), g.lshift(k, x, s))
							checkLanes(t, "bitwise_rshift", k, n, a.rshift(k, x, s), g.rshift(k, x, s))
						}
					}

					switch {
					case k.float:
						checkLanes(t, "to_int", k, n, a.toInt(k, x), g.toInt(k, x))
					case k.signed && k.size >= 4:
						checkLanes(t, "to_float", k, n, a.toFloat(k, x), g.toFloat(k, x))
					}
				}
			})
		}
	}
}

// laneOne returns the bits of 1 in lanes of kind k.
func laneOne(k kind) uint64 {
	switch {
	case k.float && k.size == 4:
		return uint64(math.Float32bits(1))
	case k.float:
		return math.Float64bits(1)
	}
	return 1
}

func TestBoolKernelsMatchGeneric(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, a := range Archs() {
		g := genericFor(a.Width())
		for _, k := range allKinds {
			n := a.Width() / k.size
			t.Run(a.Name()+"/"+k.String(), func(t *testing.T) {
				for range 32 {
					p, q := randBools(r, n), randBools(r, n)
					ap, aq := a.boolPack(k, p), a.boolPack(k, q)
					gp, gq := g.boolPack(k, p), g.boolPack(k, q)

					checkBools(t, "pack", k, n, a, ap, g, gp)
					checkBools(t, "and", k, n, a, a.boolAnd(k, ap, aq), g, g.boolAnd(k, gp, gq))
					checkBools(t, "or", k, n, a, a.boolOr(k, ap, aq), g, g.boolOr(k, gp, gq))
					checkBools(t, "xor", k, n, a, a.boolXor(k, ap, aq), g, g.boolXor(k, gp, gq))
					checkBools(t, "andnot", k, n, a, a.boolAndNot(k, ap, aq), g, g.boolAndNot(k, gp, gq))
					checkBools(t, "not", k, n, a, a.boolNot(k, ap), g, g.boolNot(k, gp))
					checkBools(t, "eq", k, n, a, a.boolEq(k, ap, aq), g, g.boolEq(k, gp, gq))
					checkBools(t, "neq", k, n, a, a.boolNeq(k, ap, aq), g, g.boolNeq(k, gp, gq))

					if got, want := a.boolAll(k, ap), g.boolAll(k, gp); got != want {
						t.Errorf("all: got %v, want %v", got, want)
					}
					if got, want := a.boolAny(k, ap), g.boolAny(k, gp); got != want {
						t.Errorf("any: got %v, want %v", got, want)
					}

					if got, want := a.boolMask(k, ap), g.boolMask(k, gp); got != want {
						t.Errorf("mask: got %#x, want %#x", got, want)
					}
					m := r.Uint64()
					if n < 64 {
						m &= 1<<uint(n) - 1
					}
					checkBools(t, "from_mask", k, n, a, a.boolFromMask(k, m), g, g.boolFromMask(k, m))
					if got := a.boolMask(k, a.boolFromMask(k, m)); got != m {
						t.Errorf("mask round trip: got %#x, want %#x", got, m)
					}

					i := r.IntN(n)
					a.boolSet(k, &ap, i, !p[i])
					g.boolSet(k, &gp, i, !p[i])
					checkBools(t, "set", k, n, a, ap, g, gp)
				}

				for _, v := range []bool{false, true} {
					all := make([]bool, n)
					for i := range all {
						all[i] = v
					}
					b := a.boolPack(k, all)
					if a.boolAll(k, b) != v || a.boolAny(k, b) != v {
						t.Errorf("uniform %v: all=%v any=%v", v, a.boolAll(k, b), a.boolAny(k, b))
					}
				}
			})
		}
	}
}

// TestAVX512Representation checks which bool register each AVX-512 tag
// produces: a k-mask in word 0 or a full sentinel vector.
func TestAVX512Representation(t *testing.T) {
	x := vBroadcast(avx512Width, 8, 1)
	for _, tc := range []struct {
		arch   Arch
		k      kind
		masked bool
	}{
		{AVX512F{}, kind{size: 1, signed: true}, false},
		{AVX512F{}, kind{size: 2}, false},
		{AVX512F{}, kind{size: 4, signed: true}, true},
		{AVX512F{}, kind{size: 8, signed: true, float: true}, true},
		{AVX512BW{}, kind{size: 1, signed: true}, true},
		{AVX512BW{}, kind{size: 2}, true},
		{AVX512BW{}, kind{size: 4}, true},
	} {
		b := tc.arch.eq(tc.k, x, x)
		if tc.masked {
			want := ^uint64(0) >> (64 - avx512Width/tc.k.size)
			if b.w[0] != want || b.w[1] != 0 {
				t.Errorf("%s/%s: got %v, want mask %#x", tc.arch.Name(), tc.k, b, want)
			}
		} else if b != vAllOnes(avx512Width) {
			t.Errorf("%s/%s: got %v, want all-ones vector", tc.arch.Name(), tc.k, b)
		}
	}
}

func TestUnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(*UnsupportedError)
		if !ok {
			t.Fatalf("recovered %v, want *UnsupportedError", r)
		}
		if err.Op != "div" || err.Type != "int32" {
			t.Errorf("got %+v", err)
		}
	}()
	generic128{}.div(kind{size: 4, signed: true}, Register{}, Register{})
}

// TestSSEBoolReductions flips single lanes of an all-false and an all-true
// register, which the movemask and ptest forms must read like the generic
// lane loop.
func TestSSEBoolReductions(t *testing.T) {
	g := Generic{}
	for _, a := range []Arch{SSE{}, SSE2{}, SSE3{}, SSSE3{}, SSE41{}, SSE42{}, NEON{}, NEON64{}} {
		for _, k := range allKinds {
			n := a.Width() / k.size
			for i := range n {
				for _, base := range []bool{false, true} {
					vals := make([]bool, n)
					for j := range vals {
						vals[j] = base
					}
					vals[i] = !base
					ab, gb := a.boolPack(k, vals), g.boolPack(k, vals)
					if got, want := a.boolAll(k, ab), g.boolAll(k, gb); got != want {
						t.Errorf("%s/%s: all with lane %d flipped from %v: got %v, want %v", a.Name(), k, i, base, got, want)
					}
					if got, want := a.boolAny(k, ab), g.boolAny(k, gb); got != want {
						t.Errorf("%s/%s: any with lane %d flipped from %v: got %v, want %v", a.Name(), k, i, base, got, want)
					}
				}
			}
		}
	}
}

func TestSSE2MoveMask(t *testing.T) {
	k := kind{size: 8, signed: true, float: true}
	b := SSE2{}.boolPack(k, []bool{false, true})
	m, full := sseMoveMask(k, b)
	if m != 0b10 || full != 0b11 {
		t.Errorf("movmskpd: got %#b (full %#b), want 0b10 (full 0b11)", m, full)
	}
	k = kind{size: 4, signed: true}
	b = SSE2{}.boolPack(k, []bool{true, false, false, true})
	m, full = sseMoveMask(k, b)
	if m != 0xF00F || full != 0xFFFF {
		t.Errorf("pmovmskb: got %#x (full %#x), want 0xf00f (full 0xffff)", m, full)
	}
}
