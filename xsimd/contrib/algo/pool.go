// Copyright 2025 go-xsimd Authors
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

package algo

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-xsimd/xsimd"
)

// DefaultChunk is the number of batches a worker takes per grab.
const DefaultChunk = 256

// Pool runs the chunks of Parallel* calls on a fixed set of goroutines
// started by NewPool. One pool can serve concurrent calls.
//
// Close lets the workers finish the tasks already handed to them. Calls
// made after Close run all their chunks on the calling goroutine.
type Pool struct {
	workers int
	tasks   chan func()
	running sync.WaitGroup

	// mu is read-held by every call while it hands out tasks, and
	// write-held by Close while it closes tasks.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts n workers, or GOMAXPROCS of them if n <= 0.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: n, tasks: make(chan func(), n)}
	p.running.Add(n)
	for range n {
		go func() {
			defer p.running.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Close stops the workers and waits for them to exit. Extra calls do
// nothing.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.running.Wait()
}

// chunks calls fn(idx, start, end) for consecutive ranges of [0, n), each
// size elements long except the last. The caller and up to NumWorkers()-1
// workers grab ranges from a shared counter. It blocks until every range is
// done.
func (p *Pool) chunks(n, size int, fn func(idx, start, end int)) {
	if n <= 0 {
		return
	}
	numChunks := (n + size - 1) / size
	var next atomic.Int32
	drain := func() {
		for {
			c := int(next.Add(1)) - 1
			if c >= numChunks {
				return
			}
			fn(c, c*size, min((c+1)*size, n))
		}
	}

	helpers := min(p.workers, numChunks) - 1
	p.mu.RLock()
	if p.closed || helpers <= 0 {
		p.mu.RUnlock()
		drain()
		return
	}
	var wg sync.WaitGroup
	wg.Add(helpers)
	for range helpers {
		p.tasks <- func() {
			defer wg.Done()
			drain()
		}
	}
	p.mu.RUnlock()

	// The caller takes chunks too, so a call finishes even when every
	// worker is busy with another call.
	drain()
	wg.Wait()
}

// chunkSize returns DefaultChunk batches of A worth of T elements, so that
// only the final range has a partial batch.
func chunkSize[A xsimd.Arch, T xsimd.Lanes]() int {
	return DefaultChunk * lanes[A, T]()
}

// ParallelAdd is Add with the slices split across p.
func ParallelAdd[A xsimd.Arch, T xsimd.Lanes](p *Pool, dst, x, y []T) {
	n := min(len(dst), len(x), len(y))
	p.chunks(n, chunkSize[A, T](), func(_, start, end int) {
		Add[A](dst[start:end], x[start:end], y[start:end])
	})
}

// ParallelSum is Sum with the slice split across p. Chunk sums are added in
// chunk order, so the result does not depend on scheduling.
func ParallelSum[A xsimd.Arch, T xsimd.Lanes](p *Pool, x []T) T {
	size := chunkSize[A, T]()
	partial := make([]T, (len(x)+size-1)/size)
	p.chunks(len(x), size, func(idx, start, end int) {
		partial[idx] = Sum[A](x[start:end])
	})
	var total T
	for _, s := range partial {
		total += s
	}
	return total
}
