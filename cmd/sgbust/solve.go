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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/gridfile"
	"github.com/chausner/sgbust-go/internal/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		sf                   scoringFlags
		prefix               string
		maxBeamSize          uint
		maxDepth             uint
		noTrim               bool
		trimmingSafetyFactor float64
		quiet                bool
	)

	cmd := &cobra.Command{
		Use:   "solve <grid-file>",
		Short: "Search for the best-scoring play of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scoringImpl, err := buildScoring(sf)
			if err != nil {
				return err
			}

			grid, minGroupSize, err := gridfile.Load(args[0])
			if err != nil {
				return err
			}

			solutionPrefix := bloc.Solution{}
			if prefix != "" {
				solutionPrefix, err = bloc.NewSolution(prefix)
				if err != nil {
					return fmt.Errorf("%w: --prefix: %v", ErrArgument, err)
				}
			}

			var progress io.Writer
			if !quiet {
				progress = os.Stdout
			}

			s := solver.New(solver.Options{
				MinGroupSize:         minGroupSize,
				Scoring:              scoringImpl,
				SolutionPrefix:       solutionPrefix,
				MaxDepth:             int(maxDepth),
				MaxBeamSize:          int(maxBeamSize),
				TrimmingSafetyFactor: trimmingSafetyFactor,
				NoTrim:               noTrim,
				Progress:             progress,
			})
			defer s.Close()

			result, err := s.Solve(grid)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "best score: %d\n", result.BestScore.Value)
			fmt.Fprintf(cmd.OutOrStdout(), "solution: %s\n", result.BestSolution.String())
			return nil
		},
	}

	addScoringFlags(cmd.Flags(), &sf)
	cmd.Flags().StringVar(&prefix, "prefix", "", "solution string applied to the grid before search")
	cmd.Flags().UintVarP(&maxBeamSize, "max-beam-size", "s", 0, "cap on beam size (0 = unbounded)")
	cmd.Flags().UintVarP(&maxDepth, "max-depth", "d", 0, "cap on search depth (0 = unbounded)")
	cmd.Flags().BoolVar(&noTrim, "no-trim", false, "disable adaptive beam trimming")
	cmd.Flags().Float64Var(&trimmingSafetyFactor, "trimming-safety-factor", 1.25, "safety factor applied to TrimBeam's reduced target")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress per-depth progress output")

	return cmd
}
