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

// vectorBools is the boolean kernel of every tag whose comparisons produce a
// vector of sentinel lanes. W is the register width.
type vectorBools[W width] struct{}

func (vectorBools[W]) boolAnd(_ kind, a, b Register) Register {
	return vAnd(widthOf[W](), a, b)
}

func (vectorBools[W]) boolOr(_ kind, a, b Register) Register {
	return vOr(widthOf[W](), a, b)
}

func (vectorBools[W]) boolXor(_ kind, a, b Register) Register {
	return vXor(widthOf[W](), a, b)
}

func (vectorBools[W]) boolAndNot(_ kind, a, b Register) Register {
	return vAndNot(widthOf[W](), b, a)
}

func (vectorBools[W]) boolNot(_ kind, a Register) Register {
	return vXor(widthOf[W](), a, vAllOnes(widthOf[W]()))
}

func (v vectorBools[W]) boolEq(k kind, a, b Register) Register {
	return v.boolNot(k, v.boolXor(k, a, b))
}

func (v vectorBools[W]) boolNeq(k kind, a, b Register) Register {
	return v.boolXor(k, a, b)
}

// boolAll and boolAny look at every lane. Tags with a test or movemask
// instruction override them.
func (vectorBools[W]) boolAll(k kind, a Register) bool {
	for i := range widthOf[W]() / k.size {
		if a.lane(k.size, i) == 0 {
			return false
		}
	}
	return true
}

func (vectorBools[W]) boolAny(k kind, a Register) bool {
	for i := range widthOf[W]() / k.size {
		if a.lane(k.size, i) != 0 {
			return true
		}
	}
	return false
}

// boolMask packs the lanes into bit i per lane i (vpmov*2m).
func (vectorBools[W]) boolMask(k kind, a Register) uint64 {
	return vVecToMask(widthOf[W](), k.size, a)
}

// boolFromMask expands bit i of m into a sentinel lane i (vpmovm2*).
func (vectorBools[W]) boolFromMask(k kind, m uint64) Register {
	return vMaskToVec(widthOf[W](), k.size, m)
}

func (vectorBools[W]) boolGet(k kind, a Register, i int) bool {
	return a.lane(k.size, i&(widthOf[W]()/k.size-1)) != 0
}

func (vectorBools[W]) boolSet(k kind, a *Register, i int, v bool) {
	a.setLane(k.size, i&(widthOf[W]()/k.size-1), sentinel(v))
}

func (vectorBools[W]) boolPack(k kind, vals []bool) Register {
	n := widthOf[W]() / k.size
	checkArity(n, len(vals))
	var r Register
	for i, b := range vals {
		r.setLane(k.size, i, sentinel(b))
	}
	return r
}

// boolOps is the boolean kernel of one AVX-512 lane width, either a k-mask
// in word 0 of the register or a fallback vector bool.
type boolOps interface {
	and(a, b Register) Register
	or(a, b Register) Register
	xor(a, b Register) Register
	andNot(a, b Register) Register
	not(a Register) Register
	eq(a, b Register) Register
	neq(a, b Register) Register
	all(a Register) bool
	any(a Register) bool
	get(a Register, i int) bool
	set(a *Register, i int, v bool)
	pack(vals []bool) Register
	mask(a Register) uint64
	fromMask(m uint64) Register
}

// maskKernel adapts MaskBool[M] to registers whose word 0 holds the mask.
type maskKernel[M MaskWord] struct{}

func (maskKernel[M]) of(a Register) MaskBool[M] { return MaskFrom(M(a.w[0])) }

func (maskKernel[M]) reg(m MaskBool[M]) Register {
	var r Register
	r.w[0] = uint64(m.Value())
	return r
}

func (k maskKernel[M]) and(a, b Register) Register    { return k.reg(k.of(a).And(k.of(b))) }
func (k maskKernel[M]) or(a, b Register) Register     { return k.reg(k.of(a).Or(k.of(b))) }
func (k maskKernel[M]) xor(a, b Register) Register    { return k.reg(k.of(a).Xor(k.of(b))) }
func (k maskKernel[M]) andNot(a, b Register) Register { return k.reg(k.of(a).AndNot(k.of(b))) }
func (k maskKernel[M]) not(a Register) Register       { return k.reg(k.of(a).Not()) }
func (k maskKernel[M]) eq(a, b Register) Register     { return k.reg(k.of(a).Equal(k.of(b))) }
func (k maskKernel[M]) neq(a, b Register) Register    { return k.reg(k.of(a).NotEqual(k.of(b))) }
func (k maskKernel[M]) all(a Register) bool           { return k.of(a).All() }
func (k maskKernel[M]) any(a Register) bool           { return k.of(a).Any() }
func (k maskKernel[M]) get(a Register, i int) bool    { return k.of(a).Get(i) }

func (k maskKernel[M]) set(a *Register, i int, v bool) {
	m := k.of(*a)
	m.Set(i, v)
	*a = k.reg(m)
}

func (k maskKernel[M]) pack(vals []bool) Register {
	return k.reg(NewMaskBool[M](vals...))
}

// mask and fromMask are kmov: the register already is the mask.
func (k maskKernel[M]) mask(a Register) uint64 { return uint64(k.of(a).Value()) }

func (k maskKernel[M]) fromMask(m uint64) Register { return k.reg(MaskFrom(M(m))) }

// fallbackKernel adapts FallbackBool[T] to registers.
type fallbackKernel[T Lanes] struct{}

func (fallbackKernel[T]) and(a, b Register) Register {
	return fallbackFromRegister[T](a).And(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) or(a, b Register) Register {
	return fallbackFromRegister[T](a).Or(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) xor(a, b Register) Register {
	return fallbackFromRegister[T](a).Xor(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) andNot(a, b Register) Register {
	return fallbackFromRegister[T](a).AndNot(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) not(a Register) Register {
	return fallbackFromRegister[T](a).Not().Register()
}

func (fallbackKernel[T]) eq(a, b Register) Register {
	return fallbackFromRegister[T](a).Equal(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) neq(a, b Register) Register {
	return fallbackFromRegister[T](a).NotEqual(fallbackFromRegister[T](b)).Register()
}

func (fallbackKernel[T]) all(a Register) bool { return fallbackFromRegister[T](a).All() }
func (fallbackKernel[T]) any(a Register) bool { return fallbackFromRegister[T](a).Any() }

func (fallbackKernel[T]) get(a Register, i int) bool {
	return fallbackFromRegister[T](a).Get(i)
}

func (fallbackKernel[T]) set(a *Register, i int, v bool) {
	f := fallbackFromRegister[T](*a)
	f.Set(i, v)
	*a = f.Register()
}

func (fallbackKernel[T]) pack(vals []bool) Register {
	return NewFallbackBool[T](vals...).Register()
}

func (fallbackKernel[T]) mask(a Register) uint64 {
	return vVecToMask(MaxRegisterBytes, kindOf[T]().size, a)
}

func (fallbackKernel[T]) fromMask(m uint64) Register {
	return vMaskToVec(MaxRegisterBytes, kindOf[T]().size, m)
}

// maskOps returns the k-mask kernel for a register of the given lane count.
func maskOps(lanes int) boolOps {
	switch lanes {
	case 8:
		return maskKernel[uint8]{}
	case 16:
		return maskKernel[uint16]{}
	case 32:
		return maskKernel[uint32]{}
	default:
		return maskKernel[uint64]{}
	}
}

// fallbackOps returns the fallback vector bool kernel for 1 or 2 byte lanes.
func fallbackOps(k kind) boolOps {
	if k.size == 1 {
		return fallbackKernel[uint8]{}
	}
	return fallbackKernel[uint16]{}
}
