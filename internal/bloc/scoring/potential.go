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

package scoring

import (
	"github.com/samber/lo"

	"github.com/chausner/sgbust-go/internal/bloc"
)

// Potential scores like Greedy but orders the frontier by a one-ply
// lookahead: Objective is Value minus the sum of GroupScore(|G|) over every
// group currently available, so states one step away from a big clear sort
// ahead of states that are not.
type Potential struct {
	GroupScore      bloc.GroupSizeFunc
	ClearanceBonus  int
	LeftoverPenalty bloc.LeftoverPenaltyFunc
}

func (p Potential) CreateScore(grid *bloc.Grid, minGroupSize int) bloc.Score {
	value := 0
	if p.ClearanceBonus != 0 && grid.IsEmpty() {
		value -= p.ClearanceBonus
	}
	groups := grid.GetGroups(minGroupSize)
	if p.LeftoverPenalty != nil && len(groups) == 0 {
		value += p.LeftoverPenalty(grid.NumberOfBlocks())
	}
	if len(groups) == 0 {
		return bloc.NewTerminalScore(value)
	}
	potential := lo.SumBy(groups, func(group bloc.Group) int { return p.GroupScore(len(group)) })
	return bloc.Score{Value: value, Objective: float64(value - potential)}
}

func (p Potential) RemoveGroup(oldScore bloc.Score, oldGrid *bloc.Grid, group bloc.Group, newGrid *bloc.Grid, minGroupSize int) bloc.Score {
	value := oldScore.Value - p.GroupScore(len(group))
	if p.ClearanceBonus != 0 && newGrid.IsEmpty() {
		value -= p.ClearanceBonus
	}
	groups := newGrid.GetGroups(minGroupSize)
	if p.LeftoverPenalty != nil && len(groups) == 0 {
		value += p.LeftoverPenalty(newGrid.NumberOfBlocks())
	}
	if len(groups) == 0 {
		return bloc.NewTerminalScore(value)
	}
	potential := lo.SumBy(groups, func(g bloc.Group) int { return p.GroupScore(len(g)) })
	return bloc.Score{Value: value, Objective: float64(value - potential)}
}

func (p Potential) IsPerfectScore(score bloc.Score) bool {
	return false
}
