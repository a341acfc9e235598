// Copyright (c) 2016 Uber Technologies, Inc.
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
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package bytebuf

import (
	"sync"

	"github.com/lukw00heck/gonio/src/x/allocator"
)

// countingAllocator allocates with make/copy like the default allocator and tracks every live
// region by identity, so tests can assert that every Allocate/Reallocate
// is matched by exactly one Free once the last owning Buffer is released.
type countingAllocator struct {
	mu   sync.Mutex
	live map[*byte]int
}

func newCountingAllocator() *countingAllocator {
	return &countingAllocator{live: make(map[*byte]int)}
}

func regionKey(region []byte) *byte {
	if len(region) == 0 && cap(region) == 0 {
		return nil
	}
	return &region[:1][0]
}

func (c *countingAllocator) handle() allocator.Handle {
	return allocator.Handle{
		Allocate:   c.allocate,
		Reallocate: c.reallocate,
		Free:       c.free,
		Copy:       func(dst, src []byte) { copy(dst, src) },
	}
}

func (c *countingAllocator) allocate(n uint32) []byte {
	region := make([]byte, n)
	c.mu.Lock()
	defer c.mu.Unlock()
	if key := regionKey(region); key != nil {
		c.live[key]++
	}
	return region
}

func (c *countingAllocator) reallocate(region []byte, n uint32) []byte {
	next := c.allocate(n)
	copy(next, region)
	c.free(region)
	return next
}

func (c *countingAllocator) free(region []byte) {
	key := regionKey(region)
	if key == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.live[key]--
}

// outstanding returns the number of allocations without a matching free.
func (c *countingAllocator) outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, count := range c.live {
		if count != 0 {
			n++
		}
	}
	return n
}
