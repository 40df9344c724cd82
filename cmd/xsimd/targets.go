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

package main

import (
	"fmt"
	"strings"
)

// Registers names the C types of a tag's data and boolean registers for one
// lane type.
type Registers struct {
	Register string
	Bool     string
}

// Target is the register declaration of one instruction set tag.
type Target struct {
	Name    string               // tag name, as Arch.Name reports it
	TypeMap map[string]Registers // lane type -> registers; missing types fall back
}

// laneTypes lists the lane types in table order.
var laneTypes = []string{
	"int8", "uint8", "int16", "uint16", "int32",
	"uint32", "int64", "uint64", "float32", "float64",
}

func laneSize(typ string) int {
	switch typ {
	case "int8", "uint8":
		return 1
	case "int16", "uint16":
		return 2
	case "int32", "uint32", "float32":
		return 4
	}
	return 8
}

// aliases maps a tag to the tag whose registers it reuses unchanged.
var aliases = map[string]string{
	"sse3":     "sse2",
	"ssse3":    "sse2",
	"sse4.1":   "sse2",
	"sse4.2":   "sse2",
	"avx2":     "avx",
	"avx512bw": "avx512f",
	"neon64":   "neon",
}

// x86Target declares __mNN, __mNNd and __mNNi registers; comparisons
// produce a register of the same type.
func x86Target(name, prefix string) Target {
	t := Target{Name: name, TypeMap: map[string]Registers{}}
	for _, typ := range laneTypes {
		reg := prefix + "i"
		switch typ {
		case "float32":
			reg = prefix
		case "float64":
			reg = prefix + "d"
		}
		t.TypeMap[typ] = Registers{Register: reg, Bool: reg}
	}
	return t
}

// GenericTarget is the portable 128-bit register.
func GenericTarget() Target {
	t := Target{Name: "generic", TypeMap: map[string]Registers{}}
	for _, typ := range laneTypes {
		t.TypeMap[typ] = Registers{Register: "[16]byte", Bool: "[16]byte"}
	}
	return t
}

// SSETarget declares float32 only; everything else comes from Generic.
func SSETarget() Target {
	return Target{Name: "sse", TypeMap: map[string]Registers{
		"float32": {Register: "__m128", Bool: "__m128"},
	}}
}

func SSE2Target() Target { return x86Target("sse2", "__m128") }

func AVXTarget() Target { return x86Target("avx", "__m256") }

// AVX512FTarget compares 4 and 8 byte lanes into k-masks. Narrower lanes
// have no mask instructions and keep a full vector of sentinels.
func AVX512FTarget() Target {
	t := x86Target("avx512f", "__m512")
	for typ, r := range t.TypeMap {
		if size := laneSize(typ); size >= 4 {
			r.Bool = maskName(64 / size)
		} else {
			r.Bool = "__m512i"
		}
		t.TypeMap[typ] = r
	}
	return t
}

// AVX512BWTarget adds k-masks for 1 and 2 byte lanes.
func AVX512BWTarget() Target {
	t := Target{Name: "avx512bw", TypeMap: map[string]Registers{}}
	for _, typ := range []string{"int8", "uint8", "int16", "uint16"} {
		t.TypeMap[typ] = Registers{Register: "__m512i", Bool: maskName(64 / laneSize(typ))}
	}
	return t
}

// NEONTarget declares every lane type but float64, which needs AArch64.
func NEONTarget() Target {
	t := Target{Name: "neon", TypeMap: map[string]Registers{}}
	for _, typ := range laneTypes {
		if typ == "float64" {
			continue
		}
		size := laneSize(typ)
		shape := fmt.Sprintf("%dx%d_t", size*8, 16/size)
		t.TypeMap[typ] = Registers{Register: strings.TrimSuffix(typ, fmt.Sprint(size*8)) + shape, Bool: "uint" + shape}
	}
	return t
}

func NEON64Target() Target {
	return Target{Name: "neon64", TypeMap: map[string]Registers{
		"float64": {Register: "float64x2_t", Bool: "uint64x2_t"},
	}}
}

// Targets returns every tag that declares registers of its own.
func Targets() []Target {
	return []Target{
		GenericTarget(), SSETarget(), SSE2Target(), AVXTarget(),
		AVX512FTarget(), AVX512BWTarget(), NEONTarget(), NEON64Target(),
	}
}

func maskName(lanes int) string {
	return fmt.Sprintf("__mmask%d", lanes)
}
