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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	results := make([]int32, n)

	pool.ParallelForAtomic(n, func(i int) {
		atomic.StoreInt32(&results[i], int32(i*2))
	})

	for i, v := range results {
		if v != int32(i*2) {
			t.Fatalf("results[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestParallelForAtomicSingleWorker(t *testing.T) {
	pool := New(1)
	defer pool.Close()

	var sum atomic.Int64
	pool.ParallelForAtomic(100, func(i int) {
		sum.Add(int64(i))
	})

	if sum.Load() != 4950 {
		t.Errorf("sum = %d, want 4950", sum.Load())
	}
}

func TestParallelForAtomicAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	var sum atomic.Int64
	pool.ParallelForAtomic(10, func(i int) {
		sum.Add(int64(i))
	})

	if sum.Load() != 45 {
		t.Errorf("sum = %d, want 45", sum.Load())
	}
}

func TestParallelForAtomicEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelForAtomic(0, func(i int) { called = true })

	if called {
		t.Error("fn should not be called for n <= 0")
	}
}
