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

// Package bloc provides the canonical SameGame ("Bloc") grid representation
// and mutation algebra: connected-group discovery, group removal with
// gravity and column compaction, the bit-packed CompactGrid frontier
// representation, and the pluggable Scoring interface that shapes a beam
// search's frontier.
//
// # Grid lifecycle
//
// A Grid is created from a file, from random generation, or by cloning
// another Grid, then mutated only through RemoveGroup and ApplySolution:
//
//	groups := grid.GetGroups(minGroupSize)
//	grid.RemoveGroup(groups[0])
//
// # Compact representation
//
// CompactGrid packs each cell into 3 bits for use as a frontier identity key:
//
//	compact := NewCompactGrid(grid)
//	grid2 := compact.Expand()
package bloc
