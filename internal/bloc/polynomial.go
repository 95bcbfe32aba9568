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
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPolynomial is returned when a textual polynomial does not match
// the term grammar ParsePolynomial accepts.
var ErrInvalidPolynomial = fmt.Errorf("invalid polynomial")

// Polynomial is a polynomial in a single non-negative integer variable n,
// used for --scoring-group-score and --scoring-leftover-penalty. Coefficient
// i (zero-based) multiplies n^i.
type Polynomial struct {
	coefficients []int
}

// NewPolynomial builds a Polynomial directly from coefficients, lowest
// degree first.
func NewPolynomial(coefficients ...int) Polynomial {
	return Polynomial{coefficients: coefficients}
}

var termPattern = regexp.MustCompile(`^([+-]?[0-9]*)(n(\^([0-9]+))?)?`)

// ParsePolynomial parses a sum of terms matching [+-]?[0-9]*(n(\^[0-9]+)?)?.
// An empty coefficient is 1 (or -1 when preceded by '-'); a missing 'n' is a
// constant term; a missing exponent is 1.
func ParsePolynomial(s string) (Polynomial, error) {
	var coefficients []int

	for s != "" {
		m := termPattern.FindStringSubmatch(s)
		if m == nil || len(m[0]) == 0 {
			return Polynomial{}, fmt.Errorf("%w: %q", ErrInvalidPolynomial, s)
		}

		coeffStr, hasN, expStr := m[1], m[2] != "", m[4]

		var coefficient int
		switch coeffStr {
		case "":
			coefficient = 1
		case "+":
			coefficient = 1
		case "-":
			coefficient = -1
		default:
			n, err := strconv.Atoi(coeffStr)
			if err != nil {
				return Polynomial{}, fmt.Errorf("%w: %q", ErrInvalidPolynomial, s)
			}
			coefficient = n
		}

		exponent := 0
		if hasN {
			exponent = 1
			if expStr != "" {
				n, err := strconv.Atoi(expStr)
				if err != nil {
					return Polynomial{}, fmt.Errorf("%w: %q", ErrInvalidPolynomial, s)
				}
				exponent = n
			}
		}

		for len(coefficients) < exponent+1 {
			coefficients = append(coefficients, 0)
		}
		coefficients[exponent] += coefficient

		s = s[len(m[0]):]
	}

	return Polynomial{coefficients: coefficients}, nil
}

// Evaluate computes the polynomial's value at n using Horner's scheme.
func (p Polynomial) Evaluate(n int) int {
	result := 0
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result*n + p.coefficients[i]
	}
	return result
}

// String renders the polynomial back in the grammar ParsePolynomial accepts.
func (p Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.coefficients {
		if c == 0 {
			continue
		}
		switch {
		case i == 0 && c < 0:
			b.WriteByte('-')
		case i > 0 && c < 0:
			b.WriteByte('-')
		case i > 0:
			b.WriteByte('+')
		}
		abs := c
		if abs < 0 {
			abs = -abs
		}
		fmt.Fprintf(&b, "%d", abs)
		switch {
		case i >= 2:
			fmt.Fprintf(&b, "n^%d", i)
		case i == 1:
			b.WriteByte('n')
		}
	}
	return b.String()
}
