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
	"sync"

	"github.com/chausner/sgbust-go/internal/bloc"
)

// numShards is the number of lock-guarded partitions a Bucket splits its set
// across. Chosen as a small power of two, large enough that parallel
// inserts from a typical worker pool rarely collide on the same shard.
const numShards = 16

type shard struct {
	mu      sync.Mutex
	entries map[string]bloc.CompactGrid
}

// Bucket is a concurrent set of unique bloc.CompactGrid values, all sharing
// one bloc.Score.
type Bucket struct {
	shards [numShards]shard
}

func newBucket() *Bucket {
	b := &Bucket{}
	for i := range b.shards {
		b.shards[i].entries = make(map[string]bloc.CompactGrid)
	}
	return b
}

func gridKey(c bloc.CompactGrid) string {
	key := make([]byte, 2+len(c.Data))
	key[0] = c.Width
	key[1] = c.Height
	copy(key[2:], c.Data)
	return string(key)
}

func shardIndex(c bloc.CompactGrid) int {
	return int(c.Hash() % numShards)
}

// Insert adds c if not already present (by identity, ignoring Solution) and
// reports whether it was newly inserted.
func (b *Bucket) Insert(c bloc.CompactGrid) bool {
	s := &b.shards[shardIndex(c)]
	key := gridKey(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		return false
	}
	s.entries[key] = c
	return true
}

// Len reports the total number of unique grids in the bucket.
func (b *Bucket) Len() int {
	n := 0
	for i := range b.shards {
		s := &b.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Items returns a snapshot slice of every grid in the bucket. The solver
// uses this to hand a fixed-size index range to a parallel-for.
func (b *Bucket) Items() []bloc.CompactGrid {
	items := make([]bloc.CompactGrid, 0, b.Len())
	for i := range b.shards {
		s := &b.shards[i]
		s.mu.Lock()
		for _, c := range s.entries {
			items = append(items, c)
		}
		s.mu.Unlock()
	}
	return items
}

// RemoveFirstN deletes up to n entries from the bucket, in whatever order
// the underlying shards happen to iterate. Entries within a bucket are
// interchangeable from the scoring perspective, so no particular order is
// required. It returns the number actually removed (less than n only if the
// bucket holds fewer than n entries).
func (b *Bucket) RemoveFirstN(n int) int {
	removed := 0
	for i := range b.shards {
		if removed >= n {
			break
		}
		s := &b.shards[i]
		s.mu.Lock()
		for key := range s.entries {
			if removed >= n {
				break
			}
			delete(s.entries, key)
			removed++
		}
		s.mu.Unlock()
	}
	return removed
}

// Release drops every entry, letting the packed byte buffers they held be
// garbage collected. Called once a bucket's items have all been expanded
// during a depth, so peak memory does not include both the drained bucket
// and the depth's freshly produced beam at once.
func (b *Bucket) Release() {
	for i := range b.shards {
		s := &b.shards[i]
		s.mu.Lock()
		s.entries = make(map[string]bloc.CompactGrid)
		s.mu.Unlock()
	}
}
