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

package gridfile

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chausner/sgbust-go/internal/bloc"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g := bloc.NewGridFromBlocks(2, 2, []bloc.Block{
		bloc.BlockRed, bloc.BlockNone,
		bloc.BlockGreen, bloc.BlockBlue,
	}, bloc.Solution{})

	var buf bytes.Buffer
	if err := Encode(&buf, g, 2); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	decoded, minGroupSize, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if minGroupSize != 2 {
		t.Fatalf("minGroupSize = %d, want 2", minGroupSize)
	}
	if decoded.Width != g.Width || decoded.Height != g.Height {
		t.Fatalf("dims = (%d,%d), want (%d,%d)", decoded.Width, decoded.Height, g.Width, g.Height)
	}
	for i := range g.Blocks {
		if decoded.Blocks[i] != g.Blocks[i] {
			t.Errorf("Blocks[%d] = %v, want %v", i, decoded.Blocks[i], g.Blocks[i])
		}
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := []byte("XXXX\x01\x01\x01\x00")
	if _, _, err := Decode(data); !errors.Is(err, ErrInvalidGridFile) {
		t.Fatalf("error = %v, want ErrInvalidGridFile", err)
	}
}

func TestDecodeRejectsMismatchedZeroDimensions(t *testing.T) {
	data := []byte("BGF2\x00\x01\x01")
	if _, _, err := Decode(data); !errors.Is(err, ErrInvalidGridFile) {
		t.Fatalf("error = %v, want ErrInvalidGridFile", err)
	}
}

func TestDecodeRejectsTruncatedBlocks(t *testing.T) {
	data := []byte("BGF2\x02\x02\x01\x00\x00")
	if _, _, err := Decode(data); !errors.Is(err, ErrInvalidGridFile) {
		t.Fatalf("error = %v, want ErrInvalidGridFile", err)
	}
}

func TestDecodeRejectsOutOfRangeBlock(t *testing.T) {
	data := []byte("BGF2\x01\x01\x01\x09")
	if _, _, err := Decode(data); !errors.Is(err, ErrInvalidGridFile) {
		t.Fatalf("error = %v, want ErrInvalidGridFile", err)
	}
}
