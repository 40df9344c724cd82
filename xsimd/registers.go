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

//go:generate go run ../cmd/xsimd gen registers --output register_table.go --package xsimd

package xsimd

import (
	"fmt"
	"strings"
)

type registerEntry struct {
	Register     string
	BoolRegister string
}

// RegisterInfo describes the hardware register a Batch[T, A] stands for.
type RegisterInfo struct {
	// Arch is the requested tag, Declared the tag whose table entry was
	// used after aliases and parents were followed.
	Arch     string
	Declared string

	// Type is the lane type name ("int16", "float64").
	Type string

	// Register and BoolRegister are the C type names of the data and
	// boolean registers, e.g. "__m512i" and "__mmask32".
	Register     string
	BoolRegister string

	Width int
	Lanes int
}

// Masked reports whether comparisons produce a k-mask register.
func (r RegisterInfo) Masked() bool {
	return strings.HasPrefix(r.BoolRegister, "__mmask")
}

func (r RegisterInfo) String() string {
	return fmt.Sprintf("%s/%s: %s x%d (bool %s)", r.Arch, r.Type, r.Register, r.Lanes, r.BoolRegister)
}

// LaneTypes returns the lane type names in table order.
func LaneTypes() []string {
	return []string{
		laneInt8, laneUint8, laneInt16, laneUint16, laneInt32,
		laneUint32, laneInt64, laneUint64, laneFloat32, laneFloat64,
	}
}

func laneSize(typ string) int {
	switch typ {
	case laneInt8, laneUint8:
		return 1
	case laneInt16, laneUint16:
		return 2
	case laneInt32, laneUint32, laneFloat32:
		return 4
	case laneInt64, laneUint64, laneFloat64:
		return 8
	}
	return 0
}

// RegisterOf returns the register description of Batch[T, A].
func RegisterOf[T Lanes, A Arch]() RegisterInfo {
	var a A
	info, ok := LookupRegister(a, kindOf[T]().String())
	if !ok {
		panic(&UnsupportedError{Op: "register", Type: kindOf[T]().String(), Arch: a.Name()})
	}
	return info
}

// LookupRegister resolves the register of lane type typ on tag a: the tag's
// own entry, else the entry of the tag it aliases, else its parent's,
// ending at Generic.
func LookupRegister(a Arch, typ string) (RegisterInfo, bool) {
	size := laneSize(typ)
	if size == 0 {
		return RegisterInfo{}, false
	}
	for t := a; t != nil; t = t.Parent() {
		name := t.Name()
		for {
			if e, ok := registerTable[name][typ]; ok {
				return RegisterInfo{
					Arch:         a.Name(),
					Declared:     name,
					Type:         typ,
					Register:     e.Register,
					BoolRegister: e.BoolRegister,
					Width:        a.Width(),
					Lanes:        a.Width() / size,
				}, true
			}
			next, ok := registerAliases[name]
			if !ok {
				break
			}
			name = next
		}
	}
	return RegisterInfo{}, false
}

// init asserts that every tag splits into a power-of-two number of lanes for
// every lane type; index wrapping relies on it.
func init() {
	for _, a := range Archs() {
		for _, typ := range LaneTypes() {
			if n := a.Width() / laneSize(typ); !isPow2(n) {
				panic(fmt.Sprintf("xsimd: %s has %d %s lanes, not a power of two", a.Name(), n, typ))
			}
		}
	}
}
