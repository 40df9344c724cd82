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
	"os"
	"strconv"
	"strings"
)

// CPU feature flags, set once by init() in dispatch_*.go files and read-only
// afterwards. Available() on each tag reports them.
var (
	hasSSE      bool
	hasSSE2     bool
	hasSSE3     bool
	hasSSSE3    bool
	hasSSE41    bool
	hasSSE42    bool
	hasAVX      bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
	hasNEON     bool
	hasNEON64   bool
)

// best is the tag Best returns, resolved in init().
var best Arch = Generic{}

// bestOrder lists tags from most to least specialized.
var bestOrder = []Arch{
	AVX512BW{}, AVX512F{}, AVX2{}, AVX{},
	SSE42{}, SSE41{}, SSSE3{}, SSE3{}, SSE2{}, SSE{},
	NEON64{}, NEON{},
}

// envArch returns the tag the environment forces, if any. XSIMD_NO_SIMD
// selects Generic unless it parses as a false boolean ("0", "false").
// Otherwise XSIMD_ARCH may name a tag; unknown names are ignored.
func envArch() (Arch, bool) {
	if v := os.Getenv("XSIMD_NO_SIMD"); v != "" {
		if on, err := strconv.ParseBool(v); err != nil || on {
			return Generic{}, true
		}
	}
	name := strings.ToLower(strings.TrimSpace(os.Getenv("XSIMD_ARCH")))
	if name == "" {
		return nil, false
	}
	return ArchByName(name)
}

// resolveBest picks the tag Best reports: the environment's choice, else
// the most specialized available tag.
func resolveBest() Arch {
	if a, ok := envArch(); ok {
		return a
	}
	for _, a := range bestOrder {
		if a.Available() {
			return a
		}
	}
	return Generic{}
}

// Best returns the most specialized tag the running CPU supports.
//
// Batches never consult it: the tag is a type parameter chosen by the
// caller. Best exists so that callers can pick which instantiation to run,
// for example in a switch over Best().Name().
func Best() Arch {
	return best
}

// Detected returns every tag the running CPU supports, most specialized
// first. Generic is always last.
func Detected() []Arch {
	var out []Arch
	for _, a := range bestOrder {
		if a.Available() {
			out = append(out, a)
		}
	}
	return append(out, Generic{})
}
