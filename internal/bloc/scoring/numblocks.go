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

// NumBlocksNotInGroups scores a state by how many non-empty cells are not
// part of any qualifying group: Value and Objective are both that count.
// It carries no configuration and is terminal exactly when no groups
// remain.
type NumBlocksNotInGroups struct{}

func (NumBlocksNotInGroups) CreateScore(grid *bloc.Grid, minGroupSize int) bloc.Score {
	groups := grid.GetGroups(minGroupSize)
	numInGroups := lo.SumBy(groups, func(g bloc.Group) int { return len(g) })
	value := grid.NumberOfBlocks() - numInGroups
	if len(groups) == 0 {
		return bloc.NewTerminalScore(value)
	}
	return bloc.NewScore(value)
}

func (s NumBlocksNotInGroups) RemoveGroup(oldScore bloc.Score, oldGrid *bloc.Grid, group bloc.Group, newGrid *bloc.Grid, minGroupSize int) bloc.Score {
	return s.CreateScore(newGrid, minGroupSize)
}

func (NumBlocksNotInGroups) IsPerfectScore(score bloc.Score) bool {
	return false
}
