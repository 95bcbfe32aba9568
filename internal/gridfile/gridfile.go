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

// Package gridfile loads and saves the BGF2 on-disk grid format: a 4-byte
// magic, a one-byte width, height, and minimum group size, followed by
// width*height block bytes (0 = empty, 1..7 = color).
package gridfile

import (
	"fmt"
	"io"
	"os"

	"github.com/chausner/sgbust-go/internal/bloc"
)

const magic = "BGF2"

// ErrInvalidGridFile is returned for a magic mismatch, truncated read, or
// out-of-range header field.
var ErrInvalidGridFile = fmt.Errorf("invalid grid file")

// Load reads a BGF2 grid file from path, returning the Grid and the minimum
// group size stored alongside it.
func Load(path string) (*bloc.Grid, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidGridFile, path, err)
	}
	return Decode(data)
}

// Decode parses a BGF2 grid file already read into memory.
func Decode(data []byte) (*bloc.Grid, int, error) {
	if len(data) < 7 {
		return nil, 0, fmt.Errorf("%w: truncated header", ErrInvalidGridFile)
	}
	if string(data[:4]) != magic {
		return nil, 0, fmt.Errorf("%w: bad magic %q", ErrInvalidGridFile, data[:4])
	}

	width, height, minGroupSize := data[4], data[5], data[6]

	if (width == 0) != (height == 0) {
		return nil, 0, fmt.Errorf("%w: width and height must be both zero or both non-zero", ErrInvalidGridFile)
	}
	if minGroupSize == 0 {
		return nil, 0, fmt.Errorf("%w: min group size must be at least 1", ErrInvalidGridFile)
	}

	want := 7 + int(width)*int(height)
	if len(data) != want {
		return nil, 0, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidGridFile, want, len(data))
	}

	blocks := make([]bloc.Block, int(width)*int(height))
	for i, raw := range data[7:] {
		if raw > 7 {
			return nil, 0, fmt.Errorf("%w: block byte %d out of range [0,7]", ErrInvalidGridFile, raw)
		}
		blocks[i] = bloc.Block(raw)
	}

	return bloc.NewGridFromBlocks(width, height, blocks, bloc.Solution{}), int(minGroupSize), nil
}

// Save writes grid to path in BGF2 format with the given minimum group
// size.
func Save(path string, grid *bloc.Grid, minGroupSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidGridFile, path, err)
	}
	defer f.Close()
	return Encode(f, grid, minGroupSize)
}

// Encode writes grid in BGF2 format to w.
func Encode(w io.Writer, grid *bloc.Grid, minGroupSize int) error {
	if minGroupSize < 1 || minGroupSize > 255 {
		return fmt.Errorf("%w: min group size %d out of range [1,255]", ErrInvalidGridFile, minGroupSize)
	}

	header := []byte{magic[0], magic[1], magic[2], magic[3], grid.Width, grid.Height, byte(minGroupSize)}
	if _, err := w.Write(header); err != nil {
		return err
	}

	raw := make([]byte, len(grid.Blocks))
	for i, b := range grid.Blocks {
		raw[i] = byte(b)
	}
	_, err := w.Write(raw)
	return err
}
