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

func TestSaturation(t *testing.T) {
	i8 := kind{size: 1, signed: true}
	u8 := kind{size: 1}
	i64 := kind{size: 8, signed: true}
	for _, tc := range []struct {
		name string
		k    kind
		add  bool
		x, y uint64
		want uint64
	}{
		{"int8 127+1", i8, true, 127, 1, 127},
		{"int8 -128+-1", i8, true, 0x80, 0xFF, 0x80},
		{"int8 -128-1", i8, false, 0x80, 1, 0x80},
		{"int8 5-7", i8, false, 5, 7, 0xFE},
		{"uint8 255+1", u8, true, 255, 1, 255},
		{"uint8 3-4", u8, false, 3, 4, 0},
		{"int64 max+1", i64, true, math.MaxInt64, 1, math.MaxInt64},
		{"int64 min-1", i64, false, 1 << 63, 1, 1 << 63},
	} {
		var got uint64
		if tc.add {
			got = satAdd(tc.k, tc.x, tc.y)
		} else {
			got = satSub(tc.k, tc.x, tc.y)
		}
		if got != tc.want {
			t.Errorf("%s: got %#x, want %#x", tc.name, got, tc.want)
		}
	}
}

func TestShiftEdges(t *testing.T) {
	a := vBroadcast(16, 2, 0x8001)
	shl, shr, sar := vShl(16, 2, a, 16), vShr(16, 2, a, 17), vSar(16, 2, a, 40)
	if got := shl.lane(2, 0); got != 0 {
		t.Errorf("vShl past width: got %#x, want 0", got)
	}
	if got := shr.lane(2, 3); got != 0 {
		t.Errorf("vShr past width: got %#x, want 0", got)
	}
	if got := sar.lane(2, 7); got != 0xFFFF {
		t.Errorf("vSar past width: got %#x, want 0xffff", got)
	}
}

func TestSra64(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		vals := []uint64{r.Uint64(), r.Uint64() | 1<<63}
		a := vSetR(16, 8, vals)
		for _, n := range []int{1, 7, 32, 63} {
			got := sra64(16, a, n)
			for i, v := range vals {
				want := uint64(int64(v) >> n)
				if g := got.lane(8, i); g != want {
					t.Errorf("sra64(%#x, %d): got %#x, want %#x", v, n, g, want)
				}
			}
		}
	}
}

func TestCompare64(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for range 200 {
		x := []uint64{r.Uint64(), 1 << 63}
		y := []uint64{r.Uint64(), x[0]}
		if r.IntN(2) == 0 {
			y[0] = x[0]
		}
		a, b := vSetR(16, 8, x), vSetR(16, 8, y)
		eq, lt := eq64(16, a, b), lt64(16, a, b)
		gt := gt64(16, kind{size: 8, signed: true}, a, b)
		gtu := gt64(16, kind{size: 8}, a, b)
		for i := range 2 {
			if got, want := eq.lane(8, i), sentinel(x[i] == y[i]); got != want {
				t.Errorf("eq64 lane %d: got %#x, want %#x", i, got, want)
			}
			if got, want := lt.lane(8, i), sentinel(int64(x[i]) < int64(y[i])); got != want {
				t.Errorf("lt64 lane %d (%#x < %#x): got %#x, want %#x", i, x[i], y[i], got, want)
			}
			if got, want := gt.lane(8, i), sentinel(int64(x[i]) > int64(y[i])); got != want {
				t.Errorf("gt64 lane %d: got %#x, want %#x", i, got, want)
			}
			if got, want := gtu.lane(8, i), sentinel(x[i] > y[i]); got != want {
				t.Errorf("gt64 unsigned lane %d: got %#x, want %#x", i, got, want)
			}
		}
	}
}

func TestShuffles(t *testing.T) {
	a := vSetR(16, 4, []uint64{10, 11, 12, 13})
	got := vShuffle32(16, a, shuffleImm(0, 1, 2, 3))
	for i, want := range []uint64{13, 12, 11, 10} {
		if g := got.lane(4, i); g != want {
			t.Errorf("vShuffle32 reverse: lane %d: got %d, want %d", i, g, want)
		}
	}

	var x, y Register
	for i := range 8 {
		x.w[i] = uint64(i)
		y.w[i] = uint64(100 + i)
	}
	s := vShuffleI128(x, y, shuffleImm(0, 3, 2, 1))
	// blocks: a[1], a[2], b[3], b[0]
	for i, want := range []uint64{2, 3, 4, 5, 106, 107, 100, 101} {
		if s.w[i] != want {
			t.Errorf("vShuffleI128: word %d: got %d, want %d", i, s.w[i], want)
		}
	}

	p := vPerm2x128(x, y, 0x31)
	for i, want := range []uint64{2, 3, 102, 103} {
		if p.w[i] != want {
			t.Errorf("vPerm2x128: word %d: got %d, want %d", i, p.w[i], want)
		}
	}
}

func TestZip512(t *testing.T) {
	var a, b Register
	for i := range 16 {
		a.setLane(4, i, uint64(i))
		b.setLane(4, i, uint64(100+i))
	}
	lo, hi := zip512(4, a, b, false), zip512(4, a, b, true)
	for j := range 8 {
		if got := lo.lane(4, 2*j); got != uint64(j) {
			t.Errorf("zip512 low: lane %d: got %d, want %d", 2*j, got, j)
		}
		if got := lo.lane(4, 2*j+1); got != uint64(100+j) {
			t.Errorf("zip512 low: lane %d: got %d, want %d", 2*j+1, got, 100+j)
		}
		if got := hi.lane(4, 2*j); got != uint64(8+j) {
			t.Errorf("zip512 high: lane %d: got %d, want %d", 2*j, got, 8+j)
		}
	}
}

func TestTruncIndefinite(t *testing.T) {
	for _, tc := range []struct {
		f    float64
		want int32
	}{
		{1.9, 1}, {-1.9, -1}, {math.NaN(), math.MinInt32}, {3e9, math.MinInt32}, {-3e9, math.MinInt32},
	} {
		if got := truncIndefinite32(tc.f); got != tc.want {
			t.Errorf("truncIndefinite32(%v): got %d, want %d", tc.f, got, tc.want)
		}
	}
	if got := truncIndefinite64(math.Inf(1)); got != math.MinInt64 {
		t.Errorf("truncIndefinite64(+Inf): got %d", got)
	}
	sat := vCvtF32I32Sat(16, vSetR(16, 4, []uint64{
		uint64(math.Float32bits(3e9)), uint64(math.Float32bits(-3e9)),
		uint64(math.Float32bits(float32(math.NaN()))), uint64(math.Float32bits(-7.5)),
	}))
	for i, want := range []int32{math.MaxInt32, math.MinInt32, 0, -7} {
		if got := int32(sat.lane(4, i)); got != want {
			t.Errorf("vCvtF32I32Sat: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestMaskVectorRoundTrip(t *testing.T) {
	const m = 0xA5C3
	v := vMaskToVec(64, 4, m)
	if got := vVecToMask(64, 4, v); got != m {
		t.Errorf("mask round trip: got %#x, want %#x", got, m)
	}
	a, b := vBroadcast(64, 4, 1), vBroadcast(64, 4, 2)
	r := vBlendMask(64, 4, m, a, b)
	for i := range 16 {
		want := uint64(1)
		if m>>i&1 != 0 {
			want = 2
		}
		if got := r.lane(4, i); got != want {
			t.Errorf("vBlendMask: lane %d: got %d, want %d", i, got, want)
		}
	}
}
