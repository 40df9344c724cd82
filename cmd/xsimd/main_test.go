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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaneIdent(t *testing.T) {
	assert.Equal(t, "laneInt8", laneIdent("int8"))
	assert.Equal(t, "laneUint16", laneIdent("uint16"))
	assert.Equal(t, "laneFloat64", laneIdent("float64"))
}

func TestTargets(t *testing.T) {
	byName := map[string]Target{}
	for _, tg := range Targets() {
		byName[tg.Name] = tg
	}
	assert.Equal(t, Registers{Register: "__m512i", Bool: "__mmask8"}, byName["avx512f"].TypeMap["int64"])
	assert.Equal(t, Registers{Register: "__m512", Bool: "__mmask16"}, byName["avx512f"].TypeMap["float32"])
	assert.Equal(t, Registers{Register: "__m512i", Bool: "__m512i"}, byName["avx512f"].TypeMap["uint8"])
	assert.Equal(t, Registers{Register: "__m512i", Bool: "__mmask64"}, byName["avx512bw"].TypeMap["int8"])
	assert.Equal(t, Registers{Register: "uint16x8_t", Bool: "uint16x8_t"}, byName["neon"].TypeMap["uint16"])
	assert.Equal(t, Registers{Register: "float32x4_t", Bool: "uint32x4_t"}, byName["neon"].TypeMap["float32"])
	assert.NotContains(t, byName["neon"].TypeMap, "float64")
	assert.Equal(t, Registers{Register: "__m128d", Bool: "__m128d"}, byName["sse2"].TypeMap["float64"])
	assert.Len(t, byName["sse"].TypeMap, 1)
	assert.Len(t, byName["generic"].TypeMap, len(laneTypes))
}

// TestRegisterTableUpToDate fails when xsimd/register_table.go was edited by
// hand or the declarations here changed without regenerating it.
func TestRegisterTableUpToDate(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "xsimd", "register_table.go"))
	require.NoError(t, err)
	got, err := GenerateRegisters("xsimd", Targets())
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./xsimd")
}

func TestGenerateRegistersPackage(t *testing.T) {
	got, err := GenerateRegisters("other", Targets())
	require.NoError(t, err)
	assert.Contains(t, string(got), "\npackage other\n")
	assert.True(t, strings.HasPrefix(string(got), "// Code generated"))
}

func TestGenerateRegistersBadAlias(t *testing.T) {
	_, err := GenerateRegisters("xsimd", []Target{GenericTarget(), SSE2Target()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no registers")
}

func TestGenRegistersCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "table.go")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"gen", "registers", "--output", out, "--package", "xsimd"})
	require.NoError(t, cmd.Execute())

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := GenerateRegisters("xsimd", Targets())
	require.NoError(t, err)
	assert.Equal(t, want, written)
}

func TestInfoCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"info", "--json"})
	require.NoError(t, cmd.Execute())

	var rows []archInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.NotEmpty(t, rows)

	var best int
	for _, r := range rows {
		assert.Equal(t, "generic", r.Chain[len(r.Chain)-1], r.Name)
		assert.Len(t, r.Registers, 10, r.Name)
		if r.Best {
			best++
			assert.True(t, r.Available, r.Name)
		}
	}
	assert.Equal(t, 1, best)

	buf.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"info"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "avx512bw")
	assert.Contains(t, buf.String(), "K-MASK LANES")
}

func TestUnknownCommand(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"frobnicate"})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
