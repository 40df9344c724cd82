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
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is wrapped by the panic value raised when an operation
	// reaches a lane width no kernel in the fallback chain implements.
	ErrUnsupported = errors.New("xsimd: unsupported arch/op combination")

	// ErrArity is wrapped by the panic value raised when a batch is built
	// from a number of values different from its lane count.
	ErrArity = errors.New("xsimd: wrong number of lane values")
)

// UnsupportedError describes an (operation, lane type, arch) triple that has
// no implementation. It is a programming error in the kernels, never a
// condition callers are expected to recover from.
type UnsupportedError struct {
	Op   string
	Type string
	Arch string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%v: %s on %s lanes for %s", ErrUnsupported, e.Op, e.Type, e.Arch)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// ArityError reports a Set-style constructor called with the wrong number of
// values.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: want %d, got %d", ErrArity, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// unsupported aborts the current operation. Kernels call it from the default
// branch of their lane-width switches.
func unsupported(op string, k kind, arch string) {
	panic(&UnsupportedError{Op: op, Type: k.String(), Arch: arch})
}

func checkArity(want, got int) {
	if want != got {
		panic(&ArityError{Want: want, Got: got})
	}
}
