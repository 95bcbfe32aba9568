// Copyright 2026 sgbust-go Authors
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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chausner/sgbust-go/internal/gridfile"
	"github.com/chausner/sgbust-go/internal/randgrid"
)

func newGenerateCmd() *cobra.Command {
	var (
		seed         uint64
		width        uint8
		height       uint8
		numColors    int
		minGroupSize int
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "generate <grid-file>",
		Short: "Generate a random grid and write it in BGF2 format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "width", "height", "num-colors", "min-group-size"); err != nil {
				return err
			}

			grid, err := randgrid.Generate(randgrid.Options{
				Width:        width,
				Height:       height,
				NumColors:    numColors,
				MinGroupSize: minGroupSize,
				Seed:         seed,
			})
			if err != nil {
				return err
			}

			if err := gridfile.Save(args[0], grid, minGroupSize); err != nil {
				return err
			}

			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "generated %dx%d grid with %d colors to %s\n",
					width, height, grid.NumberOfColors(), args[0])
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().Uint8Var(&width, "width", 0, "grid width (1-255)")
	cmd.Flags().Uint8Var(&height, "height", 0, "grid height (1-255)")
	cmd.Flags().IntVar(&numColors, "num-colors", 0, "number of colors to draw from (1-7)")
	cmd.Flags().IntVar(&minGroupSize, "min-group-size", 0, "minimum qualifying group size (1-65025)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress confirmation output")

	return cmd
}
