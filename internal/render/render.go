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

// Package render draws a Grid to a terminal using ANSI background colors.
package render

import (
	"fmt"
	"io"

	"github.com/chausner/sgbust-go/internal/bloc"
)

const reset = "\x1b[0m"

// ansiBackground maps a Block to its ANSI background color escape. Index is
// the Block's color value (0 = empty, 1..7 = the seven colors).
var ansiBackground = [bloc.NumColors + 1]string{
	bloc.BlockNone:    "\x1b[40m", // black
	bloc.BlockBlack:   "\x1b[47m", // white
	bloc.BlockRed:     "\x1b[41m",
	bloc.BlockGreen:   "\x1b[42m",
	bloc.BlockBlue:    "\x1b[44m",
	bloc.BlockMagenta: "\x1b[45m",
	bloc.BlockYellow:  "\x1b[43m",
	bloc.BlockCyan:    "\x1b[46m",
}

// Grid writes grid to w one text line per row, each cell as two spaces on
// its color's background, with the colors reset at the end of each row.
func Grid(w io.Writer, grid *bloc.Grid) error {
	for y := uint8(0); y < grid.Height; y++ {
		for x := uint8(0); x < grid.Width; x++ {
			b := grid.Blocks[int(y)*int(grid.Width)+int(x)]
			if _, err := fmt.Fprint(w, ansiBackground[b], "  "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, reset); err != nil {
			return err
		}
	}
	return nil
}
