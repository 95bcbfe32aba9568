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
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chausner/sgbust-go/internal/randgrid"
	"github.com/chausner/sgbust-go/internal/solver"
)

func newBenchmarkCmd() *cobra.Command {
	var (
		sf           scoringFlags
		seed         uint64
		width        uint8
		height       uint8
		numColors    int
		minGroupSize int
		numGrids     uint
		maxBeamSize  uint
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Solve many randomly generated grids and report aggregate scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFlags(cmd, "width", "height", "num-colors", "min-group-size"); err != nil {
				return err
			}

			scoringImpl, err := buildScoring(sf)
			if err != nil {
				return err
			}

			n := int(numGrids)
			if n <= 0 {
				n = 1
			}

			scores := make([]int, n)

			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))

			var mu sync.Mutex
			for i := 0; i < n; i++ {
				i := i
				g.Go(func() error {
					grid, err := randgrid.Generate(randgrid.Options{
						Width:        width,
						Height:       height,
						NumColors:    numColors,
						MinGroupSize: minGroupSize,
						Seed:         seed + uint64(i),
					})
					if err != nil {
						return err
					}

					s := solver.New(solver.Options{
						MinGroupSize: minGroupSize,
						Scoring:      scoringImpl,
						MaxBeamSize:  int(maxBeamSize),
					})
					defer s.Close()

					result, err := s.Solve(grid)
					if err != nil {
						return err
					}

					mu.Lock()
					scores[i] = result.BestScore.Value
					mu.Unlock()
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			sum := 0
			for _, v := range scores {
				sum += v
			}
			fmt.Fprintf(cmd.OutOrStdout(), "grids: %d  mean score: %.2f\n", n, float64(sum)/float64(n))
			return nil
		},
	}

	addScoringFlags(cmd.Flags(), &sf)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for the first grid")
	cmd.Flags().Uint8Var(&width, "width", 0, "grid width (1-255)")
	cmd.Flags().Uint8Var(&height, "height", 0, "grid height (1-255)")
	cmd.Flags().IntVar(&numColors, "num-colors", 0, "number of colors to draw from (1-7)")
	cmd.Flags().IntVar(&minGroupSize, "min-group-size", 0, "minimum qualifying group size (1-65025)")
	cmd.Flags().UintVar(&numGrids, "num-grids", 1, "number of grids to solve")
	cmd.Flags().UintVar(&maxBeamSize, "max-beam-size", 0, "cap on beam size per solve (0 = unbounded)")

	return cmd
}
