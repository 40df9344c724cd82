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
	"fmt"
	"log/slog"
	"os"
	"slices"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

type laneData struct {
	Ident string
	Name  string
}

type entryData struct {
	Ident    string
	Register string
	Bool     string
}

type tableData struct {
	Arch    string
	Entries []entryData
}

type aliasData struct {
	From string
	To   string
}

type registerFile struct {
	Package string
	Lanes   []laneData
	Tables  []tableData
	Aliases []aliasData
}

var registerTemplate = template.Must(template.New("registers").Parse(`// Code generated by "xsimd gen registers"; DO NOT EDIT.

package {{.Package}}

// Lane type names, spelled the way kind.String reports them.
const (
{{- range .Lanes}}
	{{.Ident}} = {{printf "%q" .Name}}
{{- end}}
)

// registerTable lists the registers each tag declares, by tag name and lane
// type. Lane types a tag does not declare resolve through registerAliases,
// then through the parent tag.
var registerTable = map[string]map[string]registerEntry{
{{- range .Tables}}
	{{printf "%q" .Arch}}: {
	{{- range .Entries}}
		{{.Ident}}: {Register: {{printf "%q" .Register}}, BoolRegister: {{printf "%q" .Bool}}},
	{{- end}}
	},
{{- end}}
}

// registerAliases maps a tag to the tag whose registers it reuses.
var registerAliases = map[string]string{
{{- range .Aliases}}
	{{printf "%q" .From}}: {{printf "%q" .To}},
{{- end}}
}
`))

var title = cases.Title(language.English)

// laneIdent is the Go constant naming a lane type: "uint16" -> laneUint16.
func laneIdent(typ string) string {
	return "lane" + title.String(typ)
}

// buildRegisterFile collects the template data: lane types in table order,
// tags and aliases sorted by name.
func buildRegisterFile(pkg string, targets []Target) registerFile {
	f := registerFile{
		Package: pkg,
		Lanes: lo.Map(laneTypes, func(typ string, _ int) laneData {
			return laneData{Ident: laneIdent(typ), Name: typ}
		}),
	}

	byName := lo.KeyBy(targets, func(t Target) string { return t.Name })
	names := lo.Keys(byName)
	slices.Sort(names)
	for _, name := range names {
		t := byName[name]
		declared := lo.Filter(laneTypes, func(typ string, _ int) bool {
			_, ok := t.TypeMap[typ]
			return ok
		})
		f.Tables = append(f.Tables, tableData{
			Arch: name,
			Entries: lo.Map(declared, func(typ string, _ int) entryData {
				r := t.TypeMap[typ]
				return entryData{Ident: laneIdent(typ), Register: r.Register, Bool: r.Bool}
			}),
		})
		slog.Debug("register table", "arch", name, "types", len(declared))
	}

	from := lo.Keys(aliases)
	slices.Sort(from)
	f.Aliases = lo.Map(from, func(a string, _ int) aliasData {
		return aliasData{From: a, To: aliases[a]}
	})
	return f
}

// GenerateRegisters renders the register table source of package pkg,
// formatted as gofmt would.
func GenerateRegisters(pkg string, targets []Target) ([]byte, error) {
	if err := checkAliases(targets); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := registerTemplate.Execute(&buf, buildRegisterFile(pkg, targets)); err != nil {
		return nil, fmt.Errorf("executing register template: %w", err)
	}
	out, err := imports.Process("register_table.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting register table: %w", err)
	}
	return out, nil
}

// checkAliases rejects aliases whose target declares no registers.
func checkAliases(targets []Target) error {
	declared := lo.SliceToMap(targets, func(t Target) (string, bool) { return t.Name, true })
	for from, to := range aliases {
		if !declared[to] {
			return fmt.Errorf("alias %s -> %s: %s declares no registers", from, to, to)
		}
	}
	return nil
}

func newGenRegistersCmd() *cobra.Command {
	var output, pkg string
	cmd := &cobra.Command{
		Use:   "registers",
		Short: "Generate the register table of the xsimd package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := GenerateRegisters(pkg, Targets())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			slog.Info("wrote register table", "file", output, "bytes", len(src))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "register_table.go", "Output file, or - for stdout")
	cmd.Flags().StringVar(&pkg, "package", "xsimd", "Package name of the generated file")
	return cmd
}
