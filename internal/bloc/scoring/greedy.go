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

import "github.com/chausner/sgbust-go/internal/bloc"

// Greedy accumulates -groupScore(|G|) per removed group, with an optional
// clearance bonus on an emptied grid and an optional leftover penalty once
// the grid is stuck. Its Objective tracks Value directly. It is terminal
// exactly when no groups remain.
type Greedy struct {
	GroupScore      bloc.GroupSizeFunc
	ClearanceBonus  int
	LeftoverPenalty bloc.LeftoverPenaltyFunc
}

func (g Greedy) CreateScore(grid *bloc.Grid, minGroupSize int) bloc.Score {
	value := 0
	if g.ClearanceBonus != 0 && grid.IsEmpty() {
		value -= g.ClearanceBonus
	}
	stuck := !grid.HasGroups(minGroupSize)
	if g.LeftoverPenalty != nil && stuck {
		value += g.LeftoverPenalty(grid.NumberOfBlocks())
	}
	if stuck {
		return bloc.NewTerminalScore(value)
	}
	return bloc.NewScore(value)
}

func (g Greedy) RemoveGroup(oldScore bloc.Score, oldGrid *bloc.Grid, group bloc.Group, newGrid *bloc.Grid, minGroupSize int) bloc.Score {
	value := oldScore.Value - g.GroupScore(len(group))
	if g.ClearanceBonus != 0 && newGrid.IsEmpty() {
		value -= g.ClearanceBonus
	}
	stuck := !newGrid.HasGroups(minGroupSize)
	if g.LeftoverPenalty != nil && stuck {
		value += g.LeftoverPenalty(newGrid.NumberOfBlocks())
	}
	if stuck {
		return bloc.NewTerminalScore(value)
	}
	return bloc.NewScore(value)
}

func (g Greedy) IsPerfectScore(score bloc.Score) bool {
	return false
}
