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

// Package beam implements the solver's frontier: an ordered mapping from
// bloc.Score to a set of unique bloc.CompactGrid states sharing that score.
// Each bucket shards its set across several lock-guarded partitions so that
// concurrent inserts from many worker goroutines contend on narrow locks
// instead of one.
package beam
