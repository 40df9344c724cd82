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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-xsimd/xsimd"
)

// archInfo is one row of the info report.
type archInfo struct {
	Name      string            `json:"name"`
	Width     int               `json:"width"`
	Chain     []string          `json:"chain"`
	Available bool              `json:"available"`
	Best      bool              `json:"best"`
	Registers map[string]string `json:"registers"`
	Masked    []string          `json:"masked,omitempty"`
}

func collectInfo() []archInfo {
	best := xsimd.Best().Name()
	return lo.Map(xsimd.Archs(), func(a xsimd.Arch, _ int) archInfo {
		info := archInfo{
			Name:      a.Name(),
			Width:     a.Width(),
			Chain:     lo.Map(xsimd.Chain(a), func(c xsimd.Arch, _ int) string { return c.Name() }),
			Available: a.Available(),
			Best:      a.Name() == best,
			Registers: map[string]string{},
		}
		for _, typ := range xsimd.LaneTypes() {
			r, ok := xsimd.LookupRegister(a, typ)
			if !ok {
				continue
			}
			info.Registers[typ] = r.Register
			if r.Masked() {
				info.Masked = append(info.Masked, typ)
			}
		}
		return info
	})
}

func writeInfoText(w io.Writer, rows []archInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARCH\tWIDTH\tAVAILABLE\tCHAIN\tK-MASK LANES")
	for _, r := range rows {
		name := r.Name
		if r.Best {
			name += " *"
		}
		fmt.Fprintf(tw, "%s\t%d\t%v\t%s\t%s\n", name, r.Width*8, r.Available,
			strings.Join(r.Chain, " > "), strings.Join(r.Masked, ","))
	}
	return tw.Flush()
}

func newInfoCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "info",
		Short: "List instruction set tags, their fallback chains and availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := collectInfo()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return writeInfoText(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}
