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
	"fmt"
	"sync"
)

// ErrInvalidSolutionForGrid is returned by ApplySolution when a step index
// exceeds the number of groups available at some depth during replay.
var ErrInvalidSolutionForGrid = fmt.Errorf("solution step exceeds group count for grid")

// Grid is a rectangular matrix of Blocks, plus the Solution recording how it
// reached its current state from some origin grid. Width and Height are
// zero together (an empty grid) or both in [1, 255].
//
// Blocks is stored row-major: index y*Width+x, y ascending top to bottom.
type Grid struct {
	Width, Height uint8
	Blocks        []Block
	Solution      Solution
}

// NewGrid allocates an all-empty grid of the given dimensions.
func NewGrid(width, height uint8) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Blocks: make([]Block, int(width)*int(height)),
	}
}

// NewGridFromBlocks copies blocks into a new Grid with the given Solution
// attached.
func NewGridFromBlocks(width, height uint8, blocks []Block, solution Solution) *Grid {
	g := &Grid{Width: width, Height: height, Blocks: make([]Block, len(blocks)), Solution: solution}
	copy(g.Blocks, blocks)
	return g
}

// Clone returns a deep copy: a fresh Blocks buffer and the same Solution
// value (Solution is itself immutable-by-value, so it is shared safely).
func (g *Grid) Clone() *Grid {
	return NewGridFromBlocks(g.Width, g.Height, g.Blocks, g.Solution)
}

func (g *Grid) at(x, y uint8) Block {
	return g.Blocks[int(y)*int(g.Width)+int(x)]
}

func (g *Grid) set(x, y uint8, b Block) {
	g.Blocks[int(y)*int(g.Width)+int(x)] = b
}

// IsEmpty reports whether every cell is BlockNone.
func (g *Grid) IsEmpty() bool {
	for _, b := range g.Blocks {
		if b != BlockNone {
			return false
		}
	}
	return true
}

// NumberOfBlocks counts non-empty cells.
func (g *Grid) NumberOfBlocks() int {
	n := 0
	for _, b := range g.Blocks {
		if b != BlockNone {
			n++
		}
	}
	return n
}

// NumberOfColors counts how many of the seven colors appear at least once.
func (g *Grid) NumberOfColors() int {
	var seen [NumColors + 1]bool
	for _, b := range g.Blocks {
		seen[b] = true
	}
	n := 0
	for _, s := range seen[1:] {
		if s {
			n++
		}
	}
	return n
}

var floodStackPool = sync.Pool{
	New: func() any { s := make([]Position, 0, 64); return &s },
}

// GetGroups enumerates all connected same-color regions of size >=
// minGroupSize. Cells are scanned in row-major order (y ascending outer, x
// ascending inner); for each unvisited non-empty cell, 4-neighbor flood fill
// marks the connected region and emits it if large enough. The visited mark
// is cleared before GetGroups returns, leaving Blocks bit-identical to its
// pre-call values.
func (g *Grid) GetGroups(minGroupSize int) []Group {
	groups := make([]Group, 0, 24)

	stackPtr := floodStackPool.Get().(*[]Position)
	defer floodStackPool.Put(stackPtr)

	for y := uint8(0); y < g.Height; y++ {
		for x := uint8(0); x < g.Width; x++ {
			b := g.at(x, y)
			if b.visited() || b.color() == BlockNone {
				continue
			}

			if minGroupSize > 1 && x != g.Width-1 && y != g.Height-1 &&
				b.color() != g.at(x+1, y).color() && b.color() != g.at(x, y+1).color() {
				continue
			}

			region := g.floodFill(x, y, stackPtr)
			if len(region) >= minGroupSize {
				cp := make(Group, len(region))
				copy(cp, region)
				groups = append(groups, cp)
			}
		}
	}

	g.clearVisited()

	return groups
}

// HasGroups reports whether at least one qualifying group exists, without
// allocating the full group list. When minGroupSize <= 1 it is equivalent to
// "grid is non-empty".
func (g *Grid) HasGroups(minGroupSize int) bool {
	if minGroupSize <= 1 {
		return !g.IsEmpty()
	}

	stackPtr := floodStackPool.Get().(*[]Position)
	defer floodStackPool.Put(stackPtr)

	found := false

outer:
	for y := uint8(0); y < g.Height; y++ {
		for x := uint8(0); x < g.Width; x++ {
			b := g.at(x, y)
			if b.visited() || b.color() == BlockNone {
				continue
			}

			if x != g.Width-1 && y != g.Height-1 &&
				b.color() != g.at(x+1, y).color() && b.color() != g.at(x, y+1).color() {
				continue
			}

			region := g.floodFill(x, y, stackPtr)
			if len(region) >= minGroupSize {
				found = true
				break outer
			}
		}
	}

	g.clearVisited()

	return found
}

// floodFill marks the 4-connected same-color region starting at (x, y) as
// visited and returns its positions. The caller is responsible for clearing
// visited bits afterward (via clearVisited); stackPtr supplies pooled
// scratch storage for the traversal stack.
func (g *Grid) floodFill(x, y uint8, stackPtr *[]Position) []Position {
	color := g.at(x, y).color()

	var region []Position

	stack := (*stackPtr)[:0]
	stack = append(stack, Position{X: x, Y: y})
	g.set(x, y, color.withVisited())

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)

		if p.X > 0 {
			if n := g.at(p.X-1, p.Y); !n.visited() && n.color() == color {
				g.set(p.X-1, p.Y, color.withVisited())
				stack = append(stack, Position{X: p.X - 1, Y: p.Y})
			}
		}
		if p.Y > 0 {
			if n := g.at(p.X, p.Y-1); !n.visited() && n.color() == color {
				g.set(p.X, p.Y-1, color.withVisited())
				stack = append(stack, Position{X: p.X, Y: p.Y - 1})
			}
		}
		if p.X < g.Width-1 {
			if n := g.at(p.X+1, p.Y); !n.visited() && n.color() == color {
				g.set(p.X+1, p.Y, color.withVisited())
				stack = append(stack, Position{X: p.X + 1, Y: p.Y})
			}
		}
		if p.Y < g.Height-1 {
			if n := g.at(p.X, p.Y+1); !n.visited() && n.color() == color {
				g.set(p.X, p.Y+1, color.withVisited())
				stack = append(stack, Position{X: p.X, Y: p.Y + 1})
			}
		}
	}

	*stackPtr = stack[:0]

	return region
}

func (g *Grid) clearVisited() {
	for i, b := range g.Blocks {
		g.Blocks[i] = b.withoutVisited()
	}
}

// RemoveGroup clears every cell in group, lets the column(s) it touched fall
// under gravity, compacts columns leftward if the bottom row was disturbed,
// and trims empty top rows.
func (g *Grid) RemoveGroup(group Group) {
	left, right, bottom := uint8(255), uint8(0), uint8(0)
	for _, p := range group {
		if p.X < left {
			left = p.X
		}
		if p.X > right {
			right = p.X
		}
		if p.Y > bottom {
			bottom = p.Y
		}
		g.set(p.X, p.Y, BlockNone)
	}

	// Gravity: within each touched column, pack non-empty cells down.
	for x := left; x <= right; x++ {
		yy := int(bottom)
		for y := int(bottom); y >= 0; y-- {
			if b := g.at(x, uint8(y)); b != BlockNone {
				if yy != y {
					g.set(x, uint8(yy), b)
					g.set(x, uint8(y), BlockNone)
				}
				yy--
			}
		}
	}

	newWidth := g.Width

	// Column compaction: only needed if the bottom row was disturbed.
	if bottom == g.Height-1 {
		xx := left
		for x := left; x < g.Width; x++ {
			if g.at(x, g.Height-1) != BlockNone {
				if xx != x {
					for y := uint8(0); y < g.Height; y++ {
						g.set(xx, y, g.at(x, y))
						g.set(x, y, BlockNone)
					}
				}
				xx++
			}
		}
		newWidth = xx
	}

	firstNonEmpty := len(g.Blocks)
	for i, b := range g.Blocks {
		if b != BlockNone {
			firstNonEmpty = i
			break
		}
	}
	newHeight := g.Height - uint8(firstNonEmpty/int(g.Width))

	if newWidth != g.Width || newHeight != g.Height {
		newBlocks := make([]Block, int(newWidth)*int(newHeight))
		rowOffset := int(g.Height - newHeight)
		if newWidth != g.Width {
			for y := 0; y < int(newHeight); y++ {
				for x := 0; x < int(newWidth); x++ {
					newBlocks[y*int(newWidth)+x] = g.at(uint8(x), uint8(rowOffset+y))
				}
			}
		} else {
			copy(newBlocks, g.Blocks[rowOffset*int(g.Width):])
		}

		g.Width = newWidth
		g.Height = newHeight
		g.Blocks = newBlocks
	}
}

// ApplySolution replays each step of solution against the grid, enumerating
// groups fresh at every depth and removing the indexed one. It fails with
// ErrInvalidSolutionForGrid, leaving the grid as mutated up to that point,
// if a step index is out of range for its depth's enumeration.
func (g *Grid) ApplySolution(solution Solution, minGroupSize int) error {
	for i := 0; i < solution.Len(); i++ {
		groups := g.GetGroups(minGroupSize)
		step := int(solution.At(i))
		if step >= len(groups) {
			return fmt.Errorf("%w: step %d at depth %d, only %d groups available", ErrInvalidSolutionForGrid, step, i, len(groups))
		}
		g.RemoveGroup(groups[step])
	}
	return nil
}
