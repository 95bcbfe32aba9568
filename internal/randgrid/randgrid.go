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

// Package randgrid generates random grids for the generate and benchmark
// CLI commands.
package randgrid

import (
	"fmt"
	"math/rand"

	"github.com/chausner/sgbust-go/internal/bloc"
)

// ErrInvalidArgument is returned when a generation parameter is out of the
// range the CLI contract allows.
var ErrInvalidArgument = fmt.Errorf("invalid argument")

// Options configures random grid generation.
type Options struct {
	Width        uint8
	Height       uint8
	NumColors    int
	MinGroupSize int
	Seed         uint64
}

// Generate builds a width*height grid with each cell drawn uniformly from
// the first NumColors colors, seeded deterministically by Seed.
func Generate(opts Options) (*bloc.Grid, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("%w: width and height must be at least 1", ErrInvalidArgument)
	}
	if opts.NumColors < 1 || opts.NumColors > bloc.NumColors {
		return nil, fmt.Errorf("%w: num-colors must be in [1,%d]", ErrInvalidArgument, bloc.NumColors)
	}
	if opts.MinGroupSize < 1 || opts.MinGroupSize > 65025 {
		return nil, fmt.Errorf("%w: min-group-size must be in [1,65025]", ErrInvalidArgument)
	}

	rng := rand.New(rand.NewSource(int64(opts.Seed)))

	g := bloc.NewGrid(opts.Width, opts.Height)
	for i := range g.Blocks {
		g.Blocks[i] = bloc.Block(1 + rng.Intn(opts.NumColors))
	}
	return g, nil
}
