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

package bloc

import (
	"errors"
	"testing"
)

// Invariant 1: GetGroups must not mutate the grid's blocks.
func TestGetGroupsLeavesBlocksUnchanged(t *testing.T) {
	g := NewGridFromBlocks(3, 2, []Block{
		BlockRed, BlockRed, BlockGreen,
		BlockGreen, BlockGreen, BlockGreen,
	}, Solution{})

	before := make([]Block, len(g.Blocks))
	copy(before, g.Blocks)

	_ = g.GetGroups(2)

	for i, b := range g.Blocks {
		if b != before[i] {
			t.Fatalf("Blocks[%d] changed: %v != %v", i, b, before[i])
		}
	}
}

func TestHasGroupsLeavesNoVisitedBits(t *testing.T) {
	g := NewGridFromBlocks(2, 2, []Block{
		BlockRed, BlockRed,
		BlockRed, BlockRed,
	}, Solution{})

	if !g.HasGroups(2) {
		t.Fatal("HasGroups(2) = false, want true")
	}
	for _, b := range g.Blocks {
		if b.visited() {
			t.Fatalf("visited bit left set: %v", b)
		}
	}
}

func TestGetGroupsScanOrderAndMinSize(t *testing.T) {
	g := NewGridFromBlocks(3, 1, []Block{BlockRed, BlockRed, BlockGreen}, Solution{})

	groups := g.GetGroups(2)
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	if len(groups[0]) != 2 {
		t.Fatalf("len(groups[0]) = %d, want 2", len(groups[0]))
	}
}

// Invariant 2: RemoveGroup reduces block count by |G| and clears the group's
// color, and the result satisfies the shape invariant (no holes).
func TestRemoveGroupBlockCountAndShape(t *testing.T) {
	g := NewGridFromBlocks(2, 2, []Block{
		BlockRed, BlockGreen,
		BlockRed, BlockGreen,
	}, Solution{})

	before := g.NumberOfBlocks()
	groups := g.GetGroups(2)
	if len(groups) == 0 {
		t.Fatal("expected at least one group")
	}
	group := groups[0]
	g.RemoveGroup(group)

	if g.NumberOfBlocks() != before-len(group) {
		t.Fatalf("NumberOfBlocks() = %d, want %d", g.NumberOfBlocks(), before-len(group))
	}

	assertShapeInvariant(t, g)
}

func TestRemoveGroupFullClearanceShrinksToEmpty(t *testing.T) {
	g := NewGridFromBlocks(2, 2, []Block{
		BlockRed, BlockRed,
		BlockRed, BlockRed,
	}, Solution{})

	groups := g.GetGroups(2)
	g.RemoveGroup(groups[0])

	if !g.IsEmpty() {
		t.Fatalf("grid not empty after clearing all blocks")
	}
	if g.Width != 0 || g.Height != 0 {
		t.Fatalf("Width=%d Height=%d, want 0,0 (Width==0 <=> Height==0)", g.Width, g.Height)
	}
}

func TestRemoveGroupColumnCompaction(t *testing.T) {
	// Left column all red (one group of 2), right column mixed so it
	// survives; removing the left column's group should shift the right
	// column left.
	g := NewGridFromBlocks(2, 2, []Block{
		BlockRed, BlockGreen,
		BlockRed, BlockBlue,
	}, Solution{})

	groups := g.GetGroups(2)
	if len(groups) != 1 {
		t.Fatalf("len(groups) = %d, want 1", len(groups))
	}
	g.RemoveGroup(groups[0])

	if g.Width != 1 {
		t.Fatalf("Width = %d, want 1 after column compaction", g.Width)
	}
	assertShapeInvariant(t, g)
}

func assertShapeInvariant(t *testing.T, g *Grid) {
	t.Helper()
	if (g.Width == 0) != (g.Height == 0) {
		t.Fatalf("Width==0 xor Height==0: Width=%d Height=%d", g.Width, g.Height)
	}
	for x := uint8(0); x < g.Width; x++ {
		seenNonEmpty := false
		for y := uint8(0); y < g.Height; y++ {
			if g.at(x, y) != BlockNone {
				seenNonEmpty = true
			} else if seenNonEmpty {
				t.Fatalf("hole above non-empty cell at column %d, row %d", x, y)
			}
		}
	}
}

func TestApplySolutionRejectsOutOfRangeStep(t *testing.T) {
	g := NewGridFromBlocks(2, 2, []Block{
		BlockRed, BlockRed,
		BlockRed, BlockRed,
	}, Solution{})

	sol := Solution{}.Append(5)
	err := g.ApplySolution(sol, 2)
	if !errors.Is(err, ErrInvalidSolutionForGrid) {
		t.Fatalf("ApplySolution error = %v, want ErrInvalidSolutionForGrid", err)
	}
}

func TestApplySolutionIdempotentAcrossReplay(t *testing.T) {
	g1 := NewGridFromBlocks(2, 3, []Block{
		BlockRed, BlockGreen,
		BlockRed, BlockGreen,
		BlockRed, BlockGreen,
	}, Solution{})
	g2 := g1.Clone()

	groups := g1.GetGroups(2)
	g1.RemoveGroup(groups[0])
	sol1 := Solution{}.Append(0)

	sol2, err := NewSolution(sol1.String())
	if err != nil {
		t.Fatalf("NewSolution error: %v", err)
	}
	if err := g2.ApplySolution(sol2, 2); err != nil {
		t.Fatalf("ApplySolution error: %v", err)
	}

	if g1.Width != g2.Width || g1.Height != g2.Height {
		t.Fatalf("dims differ: (%d,%d) vs (%d,%d)", g1.Width, g1.Height, g2.Width, g2.Height)
	}
	for i := range g1.Blocks {
		if g1.Blocks[i] != g2.Blocks[i] {
			t.Fatalf("Blocks[%d] differ: %v vs %v", i, g1.Blocks[i], g2.Blocks[i])
		}
	}
}

func TestNumberOfColors(t *testing.T) {
	g := NewGridFromBlocks(3, 1, []Block{BlockRed, BlockRed, BlockGreen}, Solution{})
	if g.NumberOfColors() != 2 {
		t.Fatalf("NumberOfColors() = %d, want 2", g.NumberOfColors())
	}
}
