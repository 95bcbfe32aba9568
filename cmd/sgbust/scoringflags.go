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

package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/bloc/scoring"
)

// scoringFlags holds the --scoring* flag values shared by solve and
// benchmark.
type scoringFlags struct {
	kind            string
	groupScore      string
	clearanceBonus  int
	leftoverPenalty string
}

func addScoringFlags(flags *pflag.FlagSet, sf *scoringFlags) {
	flags.StringVar(&sf.kind, "scoring", "greedy", "scoring function: greedy|potential|num-blocks-not-in-groups")
	flags.StringVar(&sf.groupScore, "scoring-group-score", "", "polynomial in n for per-group score (required for greedy/potential)")
	flags.IntVar(&sf.clearanceBonus, "scoring-clearance-bonus", 0, "bonus subtracted from value on full clearance")
	flags.StringVar(&sf.leftoverPenalty, "scoring-leftover-penalty", "", "polynomial in n for the leftover-blocks penalty")
}

// buildScoring validates sf against the CLI's scoring-consistency rules and
// constructs the corresponding bloc.Scoring.
func buildScoring(sf scoringFlags) (bloc.Scoring, error) {
	switch sf.kind {
	case "greedy", "potential":
		if sf.groupScore == "" {
			return nil, fmt.Errorf("%w: --scoring-group-score is required for --scoring=%s", ErrArgument, sf.kind)
		}
		groupScore, err := bloc.ParsePolynomial(sf.groupScore)
		if err != nil {
			return nil, fmt.Errorf("%w: --scoring-group-score: %v", ErrArgument, err)
		}

		var leftoverPenalty bloc.LeftoverPenaltyFunc
		if sf.leftoverPenalty != "" {
			poly, err := bloc.ParsePolynomial(sf.leftoverPenalty)
			if err != nil {
				return nil, fmt.Errorf("%w: --scoring-leftover-penalty: %v", ErrArgument, err)
			}
			leftoverPenalty = poly.Evaluate
		}

		if sf.kind == "greedy" {
			return scoring.Greedy{
				GroupScore:      groupScore.Evaluate,
				ClearanceBonus:  sf.clearanceBonus,
				LeftoverPenalty: leftoverPenalty,
			}, nil
		}
		return scoring.Potential{
			GroupScore:      groupScore.Evaluate,
			ClearanceBonus:  sf.clearanceBonus,
			LeftoverPenalty: leftoverPenalty,
		}, nil

	case "num-blocks-not-in-groups":
		if sf.groupScore != "" {
			return nil, fmt.Errorf("%w: --scoring-group-score is not valid for --scoring=num-blocks-not-in-groups", ErrArgument)
		}
		if sf.clearanceBonus != 0 {
			return nil, fmt.Errorf("%w: --scoring-clearance-bonus is not valid for --scoring=num-blocks-not-in-groups", ErrArgument)
		}
		if sf.leftoverPenalty != "" {
			return nil, fmt.Errorf("%w: --scoring-leftover-penalty is not valid for --scoring=num-blocks-not-in-groups", ErrArgument)
		}
		return scoring.NumBlocksNotInGroups{}, nil

	default:
		return nil, fmt.Errorf("%w: unknown --scoring %q", ErrArgument, sf.kind)
	}
}
