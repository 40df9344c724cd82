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

package algo

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-xsimd/xsimd"
)

// Lengths around the lane counts of every width, so full batches and
// partial tails are both covered.
var lengths = []int{1, 3, 4, 7, 16, 17, 31, 64, 100, 1000}

// intValued32 returns small integer-valued floats: sums are exact in any
// order, so the batch results can be compared with vek exactly.
func intValued32(r *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(r.IntN(2001) - 1000)
	}
	return out
}

func intValued64(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(r.IntN(2001) - 1000)
	}
	return out
}

func testFloat32[A xsimd.Arch](t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for _, n := range lengths {
		x, y := intValued32(r, n), intValued32(r, n)
		dst := make([]float32, n)

		Add[A](dst, x, y)
		assert.Equal(t, vek32.Add(x, y), dst, "Add n=%d", n)
		Sub[A](dst, x, y)
		assert.Equal(t, vek32.Sub(x, y), dst, "Sub n=%d", n)
		Max[A](dst, x, y)
		assert.Equal(t, vek32.Maximum(x, y), dst, "Max n=%d", n)
		Min[A](dst, x, y)
		assert.Equal(t, vek32.Minimum(x, y), dst, "Min n=%d", n)

		assert.Equal(t, vek32.Sum(x), Sum[A](x), "Sum n=%d", n)
		assert.Equal(t, vek.Count(vek32.GtNumber(x, 10)), CountGreater[A](x, float32(10)), "CountGreater n=%d", n)

		cond := vek32.Gt(x, y)
		Select[A](dst, cond, x, y)
		assert.Equal(t, vek32.Maximum(x, y), dst, "Select(x>y) n=%d", n)
	}
}

func testFloat64[A xsimd.Arch](t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	for _, n := range lengths {
		x, y := intValued64(r, n), intValued64(r, n)
		dst := make([]float64, n)

		Add[A](dst, x, y)
		assert.Equal(t, vek.Add(x, y), dst, "Add n=%d", n)
		Sub[A](dst, x, y)
		assert.Equal(t, vek.Sub(x, y), dst, "Sub n=%d", n)
		Max[A](dst, x, y)
		assert.Equal(t, vek.Maximum(x, y), dst, "Max n=%d", n)
		Min[A](dst, x, y)
		assert.Equal(t, vek.Minimum(x, y), dst, "Min n=%d", n)
		assert.Equal(t, vek.Sum(x), Sum[A](x), "Sum n=%d", n)
	}
}

func TestFloatSlices(t *testing.T) {
	t.Run("generic", testFloat32[xsimd.Generic])
	t.Run("sse", testFloat32[xsimd.SSE])
	t.Run("avx", testFloat32[xsimd.AVX])
	t.Run("avx512f", testFloat32[xsimd.AVX512F])
	t.Run("neon", testFloat32[xsimd.NEON])

	t.Run("generic/f64", testFloat64[xsimd.Generic])
	t.Run("sse2/f64", testFloat64[xsimd.SSE2])
	t.Run("avx2/f64", testFloat64[xsimd.AVX2])
	t.Run("avx512bw/f64", testFloat64[xsimd.AVX512BW])
	t.Run("neon64/f64", testFloat64[xsimd.NEON64])
}

func TestIntegerSlices(t *testing.T) {
	x := make([]uint8, 200)
	y := make([]uint8, 200)
	for i := range x {
		x[i] = uint8(i)
		y[i] = 100
	}
	dst := make([]uint8, 200)

	SaturatedAdd[xsimd.AVX2](dst, x, y)
	for i, v := range dst {
		want := min(int(x[i])+100, 255)
		if int(v) != want {
			t.Errorf("SaturatedAdd[%d]: got %d, want %d", i, v, want)
		}
	}

	Add[xsimd.SSE2](dst, x, y)
	for i, v := range dst {
		if v != x[i]+100 {
			t.Errorf("Add[%d]: got %d, want %d", i, v, x[i]+100)
		}
	}

	var want uint8
	for _, v := range x {
		want += v
	}
	if got := Sum[xsimd.AVX512BW](x); got != want {
		t.Errorf("Sum: got %d, want %d (wrapping)", got, want)
	}
	if got := CountGreater[xsimd.NEON](x, 149); got != 50 {
		t.Errorf("CountGreater: got %d, want 50", got)
	}
}

func TestEmptySlices(t *testing.T) {
	var dst, x []float32
	Add[xsimd.AVX512F](dst, x, x)
	Select[xsimd.SSE](dst, nil, x, x)
	assert.Equal(t, float32(0), Sum[xsimd.AVX](x))
	assert.Equal(t, 0, CountGreater[xsimd.NEON](x, 0))
}

func TestCountTailIgnoresPadding(t *testing.T) {
	// The zero padding of a partial batch satisfies the predicate; it must
	// not be counted.
	x := []int32{-1, -2, -3}
	got := Count[xsimd.AVX2](x, func(b xsimd.Batch[int32, xsimd.AVX2]) xsimd.BatchBool[int32, xsimd.AVX2] {
		return xsimd.Equal(b, xsimd.Zero[xsimd.AVX2, int32]())
	})
	assert.Equal(t, 0, got)
}

func TestPool(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()
	require.Equal(t, 4, pool.NumWorkers())

	r := rand.New(rand.NewPCG(3, 3))
	n := 10*chunkSize[xsimd.AVX2, float32]() + 5
	x, y := intValued32(r, n), intValued32(r, n)
	dst := make([]float32, n)

	ParallelAdd[xsimd.AVX2](pool, dst, x, y)
	assert.Equal(t, vek32.Add(x, y), dst)
	assert.Equal(t, vek32.Sum(x), ParallelSum[xsimd.AVX2](pool, x))
	assert.Equal(t, float32(0), ParallelSum[xsimd.AVX2](pool, []float32{}))
}

func TestPoolClosed(t *testing.T) {
	pool := NewPool(0)
	pool.Close()
	pool.Close()

	x := []int64{1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, int64(28), ParallelSum[xsimd.SSE2](pool, x))
}

func TestPoolCloseWhileRunning(t *testing.T) {
	pool := NewPool(4)
	x := make([]int32, 20*chunkSize[xsimd.SSE2, int32]()+3)
	for i := range x {
		x[i] = int32(i % 7)
	}
	want := vek.Sum(float64s(x))

	var wg sync.WaitGroup
	sums := make([]int32, 8)
	for g := range sums {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				sums[g] = ParallelSum[xsimd.SSE2](pool, x)
			}
		}()
	}
	pool.Close()
	wg.Wait()
	for g, s := range sums {
		assert.Equal(t, int32(want), s, "goroutine %d", g)
	}
}

func float64s(x []int32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
