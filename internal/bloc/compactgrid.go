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
	"bytes"
	"hash/fnv"
)

// CompactGrid is an immutable, bit-packed Grid representation sized for
// frontier storage: 3 bits per cell, cell-major/row-major (the same linear
// order as Grid.Blocks), so cell i occupies bits [3i, 3i+3) of the packed
// buffer with the low-indexed cell in the low bits. Two CompactGrids are
// equal iff Width, Height, and the full packed byte range match; Solution is
// not part of identity, so distinct play sequences reaching the same
// physical state collapse to one frontier entry.
type CompactGrid struct {
	Width, Height uint8
	Data          []byte
	Solution      Solution
}

// PackedLen returns the number of bytes needed to pack width*height cells at
// 3 bits each.
func PackedLen(width, height uint8) int {
	n := int(width) * int(height)
	return (n*3 + 7) / 8
}

// NewCompactGrid packs grid into its compact representation.
func NewCompactGrid(grid *Grid) CompactGrid {
	data := make([]byte, PackedLen(grid.Width, grid.Height))
	for i, b := range grid.Blocks {
		bitPos := i * 3
		byteIdx := bitPos / 8
		bitOff := uint(bitPos % 8)
		v := byte(b.color())
		data[byteIdx] |= v << bitOff
		if bitOff+3 > 8 {
			data[byteIdx+1] |= v >> (8 - bitOff)
		}
	}
	return CompactGrid{Width: grid.Width, Height: grid.Height, Data: data, Solution: grid.Solution}
}

// Expand rebuilds a fresh Grid with the same Width, Height, blocks, and
// Solution as the grid this CompactGrid was packed from.
func (c CompactGrid) Expand() *Grid {
	n := int(c.Width) * int(c.Height)
	blocks := make([]Block, n)
	for i := range blocks {
		bitPos := i * 3
		byteIdx := bitPos / 8
		bitOff := uint(bitPos % 8)
		v := (c.Data[byteIdx] >> bitOff) & 0b111
		if bitOff+3 > 8 {
			v |= (c.Data[byteIdx+1] << (8 - bitOff)) & 0b111
		}
		blocks[i] = Block(v)
	}
	return &Grid{Width: c.Width, Height: c.Height, Blocks: blocks, Solution: c.Solution}
}

// Equal reports whether two CompactGrids have identical Width, Height, and
// packed bytes (Solution is excluded from identity).
func (c CompactGrid) Equal(other CompactGrid) bool {
	return c.Width == other.Width && c.Height == other.Height && bytes.Equal(c.Data, other.Data)
}

// Hash returns a non-cryptographic, deterministic hash of the packed bytes,
// suitable for use as a hash-set key alongside Equal. A hash collision
// across different dimensions is harmless: Equal still discriminates on
// Width and Height.
func (c CompactGrid) Hash() uint64 {
	h := fnv.New64a()
	h.Write(c.Data)
	return h.Sum64()
}
