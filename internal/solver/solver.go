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

// Package solver implements the parallel, bounded-beam best-first search
// that drives a Grid from its starting state toward the best score a
// Scoring can find, one depth at a time.
package solver

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/chausner/sgbust-go/internal/beam"
	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/workerpool"
)

// Options configures a Solver run.
type Options struct {
	MinGroupSize int
	Scoring      bloc.Scoring

	// SolutionPrefix is applied once to the starting grid before search
	// begins; it is prepended to every committed solution.
	SolutionPrefix bloc.Solution

	// MaxDepth bounds the number of depths explored. Zero means unbounded.
	MaxDepth int

	// MaxBeamSize caps the size of the beam produced at each depth (applied
	// whether or not trimming is enabled) and sets TrimBeam's target. Zero
	// disables both the cap and TrimBeam.
	MaxBeamSize int

	// TrimmingSafetyFactor multiplies the reduced target TrimBeam computes.
	// Defaults to 1.25 when zero.
	TrimmingSafetyFactor float64

	// NoTrim disables TrimBeam even when MaxBeamSize is set.
	NoTrim bool

	// NumWorkers sizes the worker pool; zero means runtime.GOMAXPROCS(0).
	NumWorkers int

	// Progress, when non-nil, receives one line of stats per depth.
	Progress io.Writer
}

// Stats summarizes one depth for progress reporting.
type Stats struct {
	Depth       int
	BeamSize    int
	NumBuckets  int
	ScoreMin    float64
	ScoreAvg    float64
	ScoreMax    float64
	ResidentMem string
}

// Result is the outcome of a Solve call.
type Result struct {
	BestScore    bloc.Score
	BestSolution bloc.Solution
	BestGrid     *bloc.Grid
	Depth        int
}

// Solver runs a depth-by-depth parallel beam search starting from a single
// Grid. Create one with New and call Solve once; a Solver is not meant to be
// reused across runs.
type Solver struct {
	opts Options
	pool *workerpool.Pool

	mu           sync.Mutex
	bestScore    bloc.Score
	bestScoreSet bool
	bestSolution bloc.Solution
	bestGrid     *bloc.Grid

	stop atomic.Bool

	beamSize   int
	multiplier float64
}

// New creates a Solver with the given options. The starting grid is passed
// to Solve, which deep-copies it.
func New(opts Options) *Solver {
	if opts.TrimmingSafetyFactor == 0 {
		opts.TrimmingSafetyFactor = 1.25
	}
	s := &Solver{
		opts:       opts,
		pool:       workerpool.New(opts.NumWorkers),
		multiplier: 1,
	}
	return s
}

// Close releases the Solver's worker pool.
func (s *Solver) Close() {
	s.pool.Close()
}

// Solve runs the beam search starting from grid and returns the best state
// found. grid is deep-copied; the caller's grid is never mutated.
func (s *Solver) Solve(grid *bloc.Grid) (Result, error) {
	start := grid.Clone()
	if !s.opts.SolutionPrefix.IsEmpty() {
		if err := start.ApplySolution(s.opts.SolutionPrefix, s.opts.MinGroupSize); err != nil {
			return Result{}, fmt.Errorf("applying solution prefix: %w", err)
		}
	}

	initialScore := s.opts.Scoring.CreateScore(start, s.opts.MinGroupSize)

	current := beam.New()
	if !initialScore.IsTerminal() {
		current.Insert(initialScore, bloc.NewCompactGrid(start))
		s.beamSize = 1
	}

	if !start.HasGroups(s.opts.MinGroupSize) {
		s.checkSolution(start, initialScore)
	}

	depth := 0
	for !s.stop.Load() && (s.opts.MaxDepth <= 0 || depth < s.opts.MaxDepth) {
		s.emitStats(depth, current)

		if s.opts.MaxBeamSize > 0 && !s.opts.NoTrim {
			s.trimBeam(current)
		}

		maxDepthReached := s.opts.MaxDepth > 0 && depth == s.opts.MaxDepth-1
		current = s.solveDepth(current, maxDepthReached)
		depth++
	}

	result := Result{Depth: depth}
	s.mu.Lock()
	if s.bestScoreSet {
		result.BestScore = s.bestScore
		result.BestSolution = s.bestSolution
		result.BestGrid = s.bestGrid
	}
	s.mu.Unlock()

	return result, nil
}

// solveDepth drains cur bucket-by-bucket in ascending score order, expanding
// every contained grid in parallel, and returns the next depth's beam.
func (s *Solver) solveDepth(cur *beam.Beam, maxDepthReached bool) *beam.Beam {
	next := beam.New()

	var gridsSolved int64

	for _, score := range cur.SortedScores() {
		if s.stop.Load() {
			break
		}
		if s.opts.MaxBeamSize > 0 && next.Len() >= s.opts.MaxBeamSize {
			break
		}

		bucket := cur.Bucket(score)
		if bucket == nil {
			continue
		}
		items := bucket.Items()

		s.pool.ParallelForAtomic(len(items), func(i int) {
			if s.stop.Load() {
				return
			}
			if s.opts.MaxBeamSize > 0 && next.Len() >= s.opts.MaxBeamSize {
				return
			}
			s.solveGrid(items[i], score, next, maxDepthReached)
			atomic.AddInt64(&gridsSolved, 1)
		})

		bucket.Release()
		cur.DeleteBucket(score)
	}

	newBeamSize := next.Len()
	if gridsSolved > 0 {
		s.multiplier = float64(newBeamSize) / float64(gridsSolved)
	}
	s.beamSize = newBeamSize
	if newBeamSize == 0 {
		s.stop.Store(true)
	}

	return next
}

// solveGrid expands one compact grid, inserting qualifying children into
// next or evaluating terminal children as candidate solutions.
func (s *Solver) solveGrid(compact bloc.CompactGrid, parentScore bloc.Score, next *beam.Beam, maxDepthReached bool) int {
	grid := compact.Expand()
	groups := grid.GetGroups(s.opts.MinGroupSize)

	inserted := 0
	for i, group := range groups {
		child := grid.Clone()
		child.Solution = child.Solution.Append(byte(i))
		child.RemoveGroup(group)

		newScore := s.opts.Scoring.RemoveGroup(parentScore, grid, group, child, s.opts.MinGroupSize)

		if newScore.IsTerminal() {
			s.checkSolution(child, newScore)
			continue
		}

		if maxDepthReached {
			continue
		}

		if next.Insert(newScore, bloc.NewCompactGrid(child)) {
			inserted++
		}
	}

	return inserted
}

// checkSolution compares score against the best committed so far and, if
// strictly better, records it along with the prefix-appended solution.
func (s *Solver) checkSolution(grid *bloc.Grid, score bloc.Score) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bestScoreSet && !(score.Value < s.bestScore.Value) {
		return
	}

	s.bestScoreSet = true
	s.bestScore = score
	s.bestSolution = s.opts.SolutionPrefix.AppendSolution(grid.Solution)

	saved := grid.Clone()
	saved.Solution = s.bestSolution
	s.bestGrid = saved

	if s.opts.Scoring.IsPerfectScore(score) {
		s.stop.Store(true)
	}
}

// trimBeam adaptively reduces cur to a predicted-safe size, preserving the
// lowest-Objective head and dropping from the highest-Objective tail. It is
// a no-op unless the growth multiplier exceeds 1.
func (s *Solver) trimBeam(cur *beam.Beam) {
	if s.multiplier <= 1 {
		return
	}

	reduced := int(math.Ceil(float64(s.opts.MaxBeamSize) / s.multiplier * s.opts.TrimmingSafetyFactor))
	beamSize := cur.Len()
	if beamSize <= reduced {
		return
	}

	scores := cur.SortedScores()
	running := 0
	for _, score := range scores {
		bucket := cur.Bucket(score)
		if bucket == nil {
			continue
		}
		bucketLen := bucket.Len()
		if running+bucketLen < reduced {
			running += bucketLen
			continue
		}

		overflow := running + bucketLen - reduced
		bucket.RemoveFirstN(overflow)
		running = reduced

		// Erase every strictly-higher-scored bucket.
		for _, higher := range scores {
			if higher.Less(score) || higher == score {
				continue
			}
			cur.DeleteBucket(higher)
		}
		break
	}

	s.beamSize = reduced
}

func (s *Solver) emitStats(depth int, cur *beam.Beam) {
	if s.opts.Progress == nil {
		return
	}

	scores := cur.SortedScores()
	stats := Stats{Depth: depth, BeamSize: cur.Len(), NumBuckets: len(scores)}
	if len(scores) > 0 {
		stats.ScoreMin = scores[0].Objective
		stats.ScoreMax = scores[len(scores)-1].Objective
		sum := 0.0
		for _, sc := range scores {
			sum += sc.Objective
		}
		stats.ScoreAvg = sum / float64(len(scores))
	}
	stats.ResidentMem = residentMemory()

	fmt.Fprintf(s.opts.Progress, "depth %d: beam=%d buckets=%d score[min=%.0f avg=%.1f max=%.0f] mem=%s\n",
		stats.Depth, stats.BeamSize, stats.NumBuckets, stats.ScoreMin, stats.ScoreAvg, stats.ScoreMax, stats.ResidentMem)
}
