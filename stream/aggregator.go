// Copyright (c) 2024 Symbol Not Found LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:SymbolNotFound/hyperminhash/stream/aggregator.go

package stream

import (
	"sync"

	"github.com/SymbolNotFound/hyperminhash"
)

// Aggregator lets many goroutines feed items into one Sketch concurrently
// without sharing a lock per-item. Each worker accumulates into its own
// local Sketch; the local sketches are folded together with Merge only
// once, when the submitting side calls Close. This is a channel-wrapped
// worker pattern for contention-free concurrent access to a single
// underlying resource.
type Aggregator struct {
	items chan []byte
	wg    sync.WaitGroup
	mu    sync.Mutex
	total *hyperminhash.Sketch
}

// NewAggregator starts workers goroutines (at least 1) ready to receive
// items via Add. Call Close to stop accepting items and obtain the
// combined Sketch.
func NewAggregator(workers int) *Aggregator {
	if workers < 1 {
		workers = 1
	}
	a := &Aggregator{
		items: make(chan []byte, workers*4),
		total: hyperminhash.New(),
	}
	a.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go a.run()
	}
	return a
}

func (a *Aggregator) run() {
	defer a.wg.Done()
	local := hyperminhash.New()
	for item := range a.items {
		local.AddBytes(item)
	}
	a.mu.Lock()
	a.total.Merge(local)
	a.mu.Unlock()
}

// Add submits one item for hashing. Safe to call from multiple
// goroutines; blocks only on channel backpressure, never on a shared
// register lock.
func (a *Aggregator) Add(item []byte) {
	a.items <- item
}

// Close stops accepting new items, waits for every worker to fold its
// local sketch into the total, and returns the combined result. Add must
// not be called again afterward.
func (a *Aggregator) Close() *hyperminhash.Sketch {
	close(a.items)
	a.wg.Wait()
	return a.total
}
