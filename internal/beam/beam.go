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

package beam

import (
	"sort"
	"sync"

	"github.com/chausner/sgbust-go/internal/bloc"
)

// Beam is the solver's frontier: an ordered mapping from bloc.Score to the
// Bucket of grids that share it. Buckets are created lazily as new scores
// are produced during a depth.
type Beam struct {
	mu      sync.RWMutex
	buckets map[bloc.Score]*Bucket
}

// New creates an empty Beam.
func New() *Beam {
	return &Beam{buckets: make(map[bloc.Score]*Bucket)}
}

// GetOrCreate returns the Bucket for score, creating it if necessary. It
// attempts a read lock first since buckets are usually already present by
// the time many goroutines are inserting into the same score concurrently;
// it only takes the write lock when a new bucket must be created.
func (b *Beam) GetOrCreate(score bloc.Score) *Bucket {
	b.mu.RLock()
	bucket, ok := b.buckets[score]
	b.mu.RUnlock()
	if ok {
		return bucket
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if bucket, ok := b.buckets[score]; ok {
		return bucket
	}
	bucket = newBucket()
	b.buckets[score] = bucket
	return bucket
}

// Insert adds c under score, creating the bucket if needed, and reports
// whether c was newly inserted (false if an identical grid was already
// present in that bucket).
func (b *Beam) Insert(score bloc.Score, c bloc.CompactGrid) bool {
	return b.GetOrCreate(score).Insert(c)
}

// Len reports the total number of grids across every bucket.
func (b *Beam) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, bucket := range b.buckets {
		n += bucket.Len()
	}
	return n
}

// NumBuckets reports the number of distinct scores currently present.
func (b *Beam) NumBuckets() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.buckets)
}

// SortedScores returns every score currently present, ascending (lowest,
// i.e. best, Objective first, per bloc.Score.Less). SolveDepth iterates in
// this order to expand the best candidates first; TrimBeam walks it in the
// same order to keep the head and drop the highest-Objective tail.
func (b *Beam) SortedScores() []bloc.Score {
	b.mu.RLock()
	defer b.mu.RUnlock()

	scores := make([]bloc.Score, 0, len(b.buckets))
	for score := range b.buckets {
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Less(scores[j])
	})
	return scores
}

// Bucket returns the bucket for score, or nil if none exists yet. Unlike
// GetOrCreate, this never allocates a new bucket.
func (b *Beam) Bucket(score bloc.Score) *Bucket {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buckets[score]
}

// DeleteBucket removes the bucket for score entirely, releasing its memory.
func (b *Beam) DeleteBucket(score bloc.Score) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.buckets, score)
}

// Clear removes every bucket, resetting the Beam to empty.
func (b *Beam) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buckets = make(map[bloc.Score]*Bucket)
}
