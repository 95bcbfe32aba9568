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

import "fmt"

// ErrInvalidSolutionString is returned when a textual solution does not
// match the step grammar (letters A-Z, or "(XY)" quadruples for steps >= 26).
var ErrInvalidSolutionString = fmt.Errorf("invalid solution string")

// Solution is an immutable-by-value, append-only sequence of step indices.
// Step index s at depth d means "at depth d, remove the group at index s in
// the enumeration order GetGroups produces for that depth". A Solution is
// only meaningful against the specific starting grid and minimum group size
// it was produced against.
//
// The zero value is the empty solution.
type Solution struct {
	steps []byte
}

// NewSolution parses a textual solution: single steps 0..25 are letters
// 'A'..'Z'; steps 26..254 are written "(XY)" where X = (n/26)+'@' and
// Y = (n%26)+'A'. The empty string parses to the empty Solution.
func NewSolution(s string) (Solution, error) {
	if s == "" {
		return Solution{}, nil
	}

	steps := make([]byte, 0, len(s))

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			steps = append(steps, c-'A')
			i++
		case c == '(':
			if i+3 >= len(s) || s[i+3] != ')' || !isUpper(s[i+1]) || !isUpper(s[i+2]) {
				return Solution{}, ErrInvalidSolutionString
			}
			n := int(s[i+1]-'@')*26 + int(s[i+2]-'A')
			if n > 254 {
				return Solution{}, ErrInvalidSolutionString
			}
			steps = append(steps, byte(n))
			i += 4
		default:
			return Solution{}, ErrInvalidSolutionString
		}
	}

	return Solution{steps: steps}, nil
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Len reports the number of steps in the solution.
func (s Solution) Len() int {
	return len(s.steps)
}

// IsEmpty reports whether the solution has no steps.
func (s Solution) IsEmpty() bool {
	return len(s.steps) == 0
}

// At returns the step index recorded at the given position.
func (s Solution) At(i int) byte {
	return s.steps[i]
}

// Steps returns the raw step indices. The returned slice must not be
// mutated by the caller; it aliases the Solution's backing storage.
func (s Solution) Steps() []byte {
	return s.steps
}

// Append returns a new Solution with step appended; the receiver is
// unmodified.
func (s Solution) Append(step byte) Solution {
	next := make([]byte, len(s.steps)+1)
	copy(next, s.steps)
	next[len(s.steps)] = step
	return Solution{steps: next}
}

// AppendSolution returns a new Solution with other's steps appended after
// the receiver's; neither argument is modified.
func (s Solution) AppendSolution(other Solution) Solution {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	next := make([]byte, len(s.steps)+len(other.steps))
	copy(next, s.steps)
	copy(next[len(s.steps):], other.steps)
	return Solution{steps: next}
}

// String renders the solution in the textual grammar accepted by
// NewSolution.
func (s Solution) String() string {
	var b []byte
	for _, step := range s.steps {
		if step < 26 {
			b = append(b, step+'A')
		} else {
			b = append(b, '(', byte(step/26)+'@', byte(step%26)+'A', ')')
		}
	}
	return string(b)
}
