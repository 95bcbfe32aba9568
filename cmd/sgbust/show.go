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

	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/gridfile"
	"github.com/chausner/sgbust-go/internal/render"
)

func newShowCmd() *cobra.Command {
	var solution string

	cmd := &cobra.Command{
		Use:   "show <grid-file>",
		Short: "Render a grid, optionally after replaying a solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, minGroupSize, err := gridfile.Load(args[0])
			if err != nil {
				return err
			}

			if solution != "" {
				sol, err := bloc.NewSolution(solution)
				if err != nil {
					return fmt.Errorf("%w: --solution: %v", ErrArgument, err)
				}
				if err := grid.ApplySolution(sol, minGroupSize); err != nil {
					return err
				}
			}

			return render.Grid(cmd.OutOrStdout(), grid)
		},
	}

	cmd.Flags().StringVar(&solution, "solution", "", "solution string to replay before rendering")

	return cmd
}
