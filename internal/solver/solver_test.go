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

package solver

import (
	"testing"

	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/bloc/scoring"
)

func quadratic() bloc.GroupSizeFunc {
	return func(n int) int { return n * (n - 1) }
}

// S1: 2x2 grid of one color, min group size 2. One group of 4 -> -4*3 = -12.
func TestSolveSingleStepClearance(t *testing.T) {
	g := bloc.NewGrid(2, 2)
	for i := range g.Blocks {
		g.Blocks[i] = bloc.BlockRed
	}

	s := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
	})
	defer s.Close()

	result, err := s.Solve(g)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if result.BestScore.Value != -12 {
		t.Errorf("BestScore.Value = %d, want -12", result.BestScore.Value)
	}
	if result.BestSolution.String() != "A" {
		t.Errorf("BestSolution = %q, want %q", result.BestSolution.String(), "A")
	}
	if !result.BestGrid.IsEmpty() {
		t.Errorf("BestGrid not empty")
	}
}

// S2: 1x1 grid, min group size 2 - already terminal at depth 0.
func TestSolveAlreadyTerminal(t *testing.T) {
	g := bloc.NewGrid(1, 1)
	g.Blocks[0] = bloc.BlockRed

	s := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
	})
	defer s.Close()

	result, err := s.Solve(g)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if !result.BestSolution.IsEmpty() {
		t.Errorf("BestSolution = %q, want empty", result.BestSolution.String())
	}
	if result.BestScore.Value != 0 {
		t.Errorf("BestScore.Value = %d, want 0", result.BestScore.Value)
	}
}

// S3: 2x3 grid, two columns of 3, min group size 2; either removal order
// reaches the same final score.
func TestSolveTwoStepPlay(t *testing.T) {
	g := bloc.NewGridFromBlocks(2, 3, []bloc.Block{
		bloc.BlockRed, bloc.BlockGreen,
		bloc.BlockRed, bloc.BlockGreen,
		bloc.BlockRed, bloc.BlockGreen,
	}, bloc.Solution{})

	s := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
	})
	defer s.Close()

	result, err := s.Solve(g)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if result.BestScore.Value != -12 {
		t.Errorf("BestScore.Value = %d, want -12", result.BestScore.Value)
	}
	if result.BestSolution.Len() != 2 {
		t.Errorf("BestSolution.Len() = %d, want 2", result.BestSolution.Len())
	}
	if !result.BestGrid.IsEmpty() {
		t.Errorf("BestGrid not empty")
	}
}

// S5: trimming must not change the best score or solution length when
// max_beam_size is well above the peak beam size.
func TestSolveTrimInvariance(t *testing.T) {
	newGrid := func() *bloc.Grid {
		return bloc.NewGridFromBlocks(2, 3, []bloc.Block{
			bloc.BlockRed, bloc.BlockGreen,
			bloc.BlockRed, bloc.BlockGreen,
			bloc.BlockRed, bloc.BlockGreen,
		}, bloc.Solution{})
	}

	untrimmed := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
	})
	defer untrimmed.Close()
	r1, err := untrimmed.Solve(newGrid())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	trimmed := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
		MaxBeamSize:  10000,
	})
	defer trimmed.Close()
	r2, err := trimmed.Solve(newGrid())
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}

	if r1.BestScore != r2.BestScore {
		t.Errorf("BestScore differs: untrimmed=%v trimmed=%v", r1.BestScore, r2.BestScore)
	}
	if r1.BestSolution.Len() != r2.BestSolution.Len() {
		t.Errorf("BestSolution.Len() differs: untrimmed=%d trimmed=%d", r1.BestSolution.Len(), r2.BestSolution.Len())
	}
}

func TestSolveRespectsMaxDepth(t *testing.T) {
	g := bloc.NewGridFromBlocks(2, 3, []bloc.Block{
		bloc.BlockRed, bloc.BlockGreen,
		bloc.BlockRed, bloc.BlockGreen,
		bloc.BlockRed, bloc.BlockGreen,
	}, bloc.Solution{})

	s := New(Options{
		MinGroupSize: 2,
		Scoring:      scoring.Greedy{GroupScore: quadratic()},
		MaxDepth:     1,
	})
	defer s.Close()

	result, err := s.Solve(g)
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if result.Depth > 1 {
		t.Errorf("Depth = %d, want <= 1", result.Depth)
	}
}
