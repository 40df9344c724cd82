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

// Package algo applies xsimd batches to whole slices.
//
// Every function takes the instruction set as its first type parameter and
// walks the input one Batch[T, A] at a time. The last partial batch is
// copied into a zeroed buffer, processed as a full batch, and only the
// valid lanes are copied back, so results never depend on the slice length
// modulo the lane count.
//
// # Example Usage
//
//	import (
//		"github.com/ajroetker/go-xsimd/xsimd"
//		"github.com/ajroetker/go-xsimd/xsimd/contrib/algo"
//	)
//
//	algo.Add[xsimd.AVX2](out, x, y)
//	total := algo.Sum[xsimd.AVX2](out)
//
// Pool runs the same functions over large slices on several goroutines,
// splitting the input at batch boundaries.
package algo
