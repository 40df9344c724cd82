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

//go:build amd64

package xsimd

import "golang.org/x/sys/cpu"

func init() {
	detectCPUFeatures()
	best = resolveBest()
}

func detectCPUFeatures() {
	// SSE and SSE2 are part of the amd64 baseline.
	hasSSE = true
	hasSSE2 = cpu.X86.HasSSE2
	hasSSE3 = cpu.X86.HasSSE3
	hasSSSE3 = cpu.X86.HasSSSE3
	hasSSE41 = cpu.X86.HasSSE41
	hasSSE42 = cpu.X86.HasSSE42
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512F = cpu.X86.HasAVX512F
	hasAVX512BW = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}
