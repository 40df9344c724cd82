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

// genericKernel implements every operation lane by lane in plain Go, for any
// register width. Tags call it directly for the lane widths their
// instruction set does not cover, e.g. generic256{}.gt(k, a, b) from AVX2.
type genericKernel[W width] struct{ vectorBools[W] }

type (
	generic128 = genericKernel[w128]
	generic256 = genericKernel[w256]
	generic512 = genericKernel[w512]
)

func (genericKernel[W]) n(k kind) int { return widthOf[W]() / k.size }

// arith applies an integer or floating point lane function.
func (g genericKernel[W]) arith(k kind, a, b Register, i func(x, y uint64) uint64, f func(x, y float64) float64) Register {
	var r Register
	for j := range g.n(k) {
		x, y := a.lane(k.size, j), b.lane(k.size, j)
		switch {
		case k.float && k.size == 4:
			v := f(float64(math.Float32frombits(uint32(x))), float64(math.Float32frombits(uint32(y))))
			r.setLane(4, j, uint64(math.Float32bits(float32(v))))
		case k.float:
			r.setLane(8, j, math.Float64bits(f(math.Float64frombits(x), math.Float64frombits(y))))
		default:
			r.setLane(k.size, j, i(x, y))
		}
	}
	return r
}

func (g genericKernel[W]) add(k kind, a, b Register) Register {
	return g.arith(k, a, b,
		func(x, y uint64) uint64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

func (g genericKernel[W]) sub(k kind, a, b Register) Register {
	return g.arith(k, a, b,
		func(x, y uint64) uint64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

func (g genericKernel[W]) mul(k kind, a, b Register) Register {
	return g.arith(k, a, b,
		func(x, y uint64) uint64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

func (g genericKernel[W]) div(k kind, a, b Register) Register {
	if !k.float {
		unsupported("div", k, "generic")
	}
	return g.arith(k, a, b, nil, func(x, y float64) float64 { return x / y })
}

func (g genericKernel[W]) neg(k kind, a Register) Register {
	if k.float {
		return g.bitwiseXor(k, a, g.broadcast(k, signBit(k.size)))
	}
	return g.sub(k, Register{}, a)
}

func (genericKernel[W]) bitwiseAnd(_ kind, a, b Register) Register {
	return words(widthOf[W](), a, b, func(x, y uint64) uint64 { return x & y })
}

func (genericKernel[W]) bitwiseOr(_ kind, a, b Register) Register {
	return words(widthOf[W](), a, b, func(x, y uint64) uint64 { return x | y })
}

func (genericKernel[W]) bitwiseXor(_ kind, a, b Register) Register {
	return words(widthOf[W](), a, b, func(x, y uint64) uint64 { return x ^ y })
}

func (genericKernel[W]) bitwiseAndNot(_ kind, a, b Register) Register {
	return words(widthOf[W](), a, b, func(x, y uint64) uint64 { return x &^ y })
}

func (genericKernel[W]) bitwiseNot(_ kind, a Register) Register {
	return words(widthOf[W](), a, a, func(x, _ uint64) uint64 { return ^x })
}

// lshift and rshift follow Go shift semantics: counts at or past the lane
// width give zero, or the sign fill for signed right shifts.
func (g genericKernel[W]) lshift(k kind, a Register, n int) Register {
	return lanes1(widthOf[W](), k.size, a, func(x uint64) uint64 { return x << uint(n) })
}

func (g genericKernel[W]) rshift(k kind, a Register, n int) Register {
	if k.signed {
		return lanes1(widthOf[W](), k.size, a, func(x uint64) uint64 { return uint64(sext(k.size, x) >> uint(n)) })
	}
	return lanes1(widthOf[W](), k.size, a, func(x uint64) uint64 { return x >> uint(n) })
}

func (genericKernel[W]) eq(k kind, a, b Register) Register  { return vCmp(widthOf[W](), k, cmpEQ, a, b) }
func (genericKernel[W]) neq(k kind, a, b Register) Register { return vCmp(widthOf[W](), k, cmpNEQ, a, b) }
func (genericKernel[W]) lt(k kind, a, b Register) Register  { return vCmp(widthOf[W](), k, cmpLT, a, b) }
func (genericKernel[W]) le(k kind, a, b Register) Register  { return vCmp(widthOf[W](), k, cmpLE, a, b) }
func (genericKernel[W]) gt(k kind, a, b Register) Register  { return vCmp(widthOf[W](), k, cmpGT, a, b) }
func (genericKernel[W]) ge(k kind, a, b Register) Register  { return vCmp(widthOf[W](), k, cmpGE, a, b) }

// selectv picks a's lane wherever the condition lane is true.
func (g genericKernel[W]) selectv(k kind, c, a, b Register) Register {
	var r Register
	for i := range g.n(k) {
		if c.lane(k.size, i) != 0 {
			r.setLane(k.size, i, a.lane(k.size, i))
		} else {
			r.setLane(k.size, i, b.lane(k.size, i))
		}
	}
	return r
}

// sadd and ssub saturate integer lanes. On floats they are plain add and
// sub.
func (g genericKernel[W]) sadd(k kind, a, b Register) Register {
	if k.float {
		return g.add(k, a, b)
	}
	return lanes2(widthOf[W](), k.size, a, b, func(x, y uint64) uint64 { return satAdd(k, x, y) })
}

func (g genericKernel[W]) ssub(k kind, a, b Register) Register {
	if k.float {
		return g.sub(k, a, b)
	}
	return lanes2(widthOf[W](), k.size, a, b, func(x, y uint64) uint64 { return satSub(k, x, y) })
}

func (g genericKernel[W]) max(k kind, a, b Register) Register {
	return g.selectv(k, g.gt(k, a, b), a, b)
}

func (g genericKernel[W]) min(k kind, a, b Register) Register {
	return g.selectv(k, g.le(k, a, b), a, b)
}

// hadd sums the lanes from first to last.
func (g genericKernel[W]) hadd(k kind, a Register) uint64 {
	acc := a.lane(k.size, 0)
	for i := 1; i < g.n(k); i++ {
		x := a.lane(k.size, i)
		switch {
		case k.float && k.size == 4:
			acc = uint64(math.Float32bits(math.Float32frombits(uint32(acc)) + math.Float32frombits(uint32(x))))
		case k.float:
			acc = math.Float64bits(math.Float64frombits(acc) + math.Float64frombits(x))
		default:
			acc = (acc + x) & laneMask(k.size)
		}
	}
	return acc
}

func (g genericKernel[W]) zipLo(k kind, a, b Register) Register {
	return g.zip(k, a, b, 0)
}

func (g genericKernel[W]) zipHi(k kind, a, b Register) Register {
	return g.zip(k, a, b, g.n(k)/2)
}

func (g genericKernel[W]) zip(k kind, a, b Register, from int) Register {
	var r Register
	for i := range g.n(k) / 2 {
		r.setLane(k.size, 2*i, a.lane(k.size, from+i))
		r.setLane(k.size, 2*i+1, b.lane(k.size, from+i))
	}
	return r
}

func (g genericKernel[W]) broadcast(k kind, v uint64) Register {
	var r Register
	for i := range g.n(k) {
		r.setLane(k.size, i, v)
	}
	return r
}

func (g genericKernel[W]) set(k kind, vals []uint64) Register {
	checkArity(g.n(k), len(vals))
	var r Register
	for i, v := range vals {
		r.setLane(k.size, i, v)
	}
	return r
}

func (genericKernel[W]) loadAligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:widthOf[W]()])
}

func (genericKernel[W]) loadUnaligned(_ kind, mem []byte) Register {
	return RegisterFromBytes(mem[:widthOf[W]()])
}

func (genericKernel[W]) storeAligned(_ kind, mem []byte, a Register) {
	copy(mem[:widthOf[W]()], a.Bytes(widthOf[W]()))
}

func (genericKernel[W]) storeUnaligned(_ kind, mem []byte, a Register) {
	copy(mem[:widthOf[W]()], a.Bytes(widthOf[W]()))
}

func (g genericKernel[W]) toFloat(k kind, a Register) Register {
	switch k.size {
	case 4:
		return lanes1(widthOf[W](), 4, a, func(x uint64) uint64 {
			return uint64(math.Float32bits(float32(int32(x))))
		})
	case 8:
		return lanes1(widthOf[W](), 8, a, func(x uint64) uint64 {
			return math.Float64bits(float64(int64(x)))
		})
	}
	unsupported("to_float", k, "generic")
	return Register{}
}

func (g genericKernel[W]) toInt(k kind, a Register) Register {
	switch k.size {
	case 4:
		return lanes1(widthOf[W](), 4, a, func(x uint64) uint64 {
			return uint64(uint32(truncIndefinite32(float64(math.Float32frombits(uint32(x))))))
		})
	case 8:
		return lanes1(widthOf[W](), 8, a, func(x uint64) uint64 {
			return uint64(truncIndefinite64(math.Float64frombits(x)))
		})
	}
	unsupported("to_int", k, "generic")
	return Register{}
}
