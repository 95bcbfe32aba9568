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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chausner/sgbust-go/internal/bloc"
	"github.com/chausner/sgbust-go/internal/randgrid"
)

// ErrArgument marks a CLI validation failure (exit code 2).
var ErrArgument = errors.New("invalid argument")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sgbust",
		Short:         "Solve, generate, display, and benchmark SameGame (Bloc) puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSolveCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newBenchmarkCmd())

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrArgument, err)
	})

	return root
}

// requireFlags reports ErrArgument for the first name in names that was not
// set on the command line, mirroring cobra's MarkFlagRequired but routed through
// the CLI's own exit-code contract instead of cobra's generic usage error.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("%w: required flag --%s not set", ErrArgument, name)
		}
	}
	return nil
}

// exitCodeFor maps an error returned from Execute to the CLI's exit code
// contract: 0 success (unreachable here, err is non-nil), 2 for argument
// validation failures, 1 for everything else.
func exitCodeFor(err error) int {
	if errors.Is(err, ErrArgument) ||
		errors.Is(err, randgrid.ErrInvalidArgument) ||
		errors.Is(err, bloc.ErrInvalidSolutionString) {
		return 2
	}
	return 1
}
