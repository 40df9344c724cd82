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
	"encoding/binary"
	"fmt"
	"math/bits"
)

// MaxRegisterBytes is the width of the widest register any tag uses (AVX-512).
const MaxRegisterBytes = 64

// Register is the raw content of one hardware vector register.
//
// Lane i of a lane size s occupies bytes [i*s, (i+1)*s), little endian, the
// layout x86 and AArch64 registers use. Only the first Width() bytes of the
// owning tag are meaningful; the remaining bytes are zero. Registers are plain
// values and are copied by value.
type Register struct {
	w [MaxRegisterBytes / 8]uint64
}

// RegisterFromBytes builds a register from the first len(b) bytes of b.
// len(b) must not exceed MaxRegisterBytes.
func RegisterFromBytes(b []byte) Register {
	var r Register
	var buf [MaxRegisterBytes]byte
	copy(buf[:], b)
	for i := range r.w {
		r.w[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return r
}

// Bytes returns the first n bytes of the register.
func (r Register) Bytes(n int) []byte {
	var buf [MaxRegisterBytes]byte
	for i, w := range r.w {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out
}

// Words returns the register as eight little-endian 64-bit words.
func (r Register) Words() [MaxRegisterBytes / 8]uint64 {
	return r.w
}

// String formats the register as hexadecimal words, lowest first.
func (r Register) String() string {
	return fmt.Sprintf("%016x", r.w)
}

func laneMask(size int) uint64 {
	if size == 8 {
		return ^uint64(0)
	}
	return 1<<(size*8) - 1
}

// lane returns the raw bits of lane i for lanes of the given byte size.
func (r *Register) lane(size, i int) uint64 {
	off := i * size * 8
	return (r.w[off>>6] >> (off & 63)) & laneMask(size)
}

// setLane overwrites lane i, keeping every other bit.
func (r *Register) setLane(size, i int, v uint64) {
	off := i * size * 8
	m := laneMask(size)
	sh := off & 63
	r.w[off>>6] = r.w[off>>6]&^(m<<sh) | (v&m)<<sh
}

// half extracts the low or high half of a register of width w bytes as a
// register of width w/2 (vextracti128 / vextracti64x4).
func (r Register) half(w int, high bool) Register {
	var h Register
	n := w / 16
	off := 0
	if high {
		off = n
	}
	copy(h.w[:n], r.w[off:off+n])
	return h
}

// join concatenates two half-width registers into a register of width w
// (vinserti128 / vinserti64x4).
func join(w int, lo, hi Register) Register {
	var r Register
	n := w / 16
	copy(r.w[:n], lo.w[:n])
	copy(r.w[n:2*n], hi.w[:n])
	return r
}

// clip zeroes every byte past width w.
func (r Register) clip(w int) Register {
	for i := w / 8; i < len(r.w); i++ {
		r.w[i] = 0
	}
	return r
}

// sext sign extends the low size bytes of v.
func sext(size int, v uint64) int64 {
	s := uint(64 - size*8)
	return int64(v<<s) >> s
}

// signBit returns the sign bit of a lane of the given size.
func signBit(size int) uint64 {
	return 1 << (size*8 - 1)
}

// isPow2 reports whether n is a positive power of two.
func isPow2(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
