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

package allocator

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/lukw00heck/gonio/src/x/instrument"
)

func TestPooledAllocateFromBucket(t *testing.T) {
	h := NewPooled([]Bucket{
		{Capacity: 16, Count: 2},
		{Capacity: 64, Count: 2},
	}, instrument.NewOptions())

	region := h.Allocate(10)
	assert.Len(t, region, 10)
	assert.True(t, cap(region) >= 16)
}

func TestPooledAllocateBeyondLargestBucketFallsBack(t *testing.T) {
	h := NewPooled([]Bucket{
		{Capacity: 16, Count: 2},
	}, instrument.NewOptions())

	region := h.Allocate(1000)
	assert.Len(t, region, 1000)
}

func TestPooledFreeReturnsToPool(t *testing.T) {
	h := NewPooled([]Bucket{
		{Capacity: 16, Count: 1},
		{Capacity: 64, Count: 1},
	}, instrument.NewOptions())

	region := h.Allocate(50)
	h.Free(region)

	// The next allocation in the same size class should be satisfiable
	// without falling back to a fresh make(), i.e. it should not panic
	// and should still respect the requested length.
	next := h.Allocate(50)
	assert.Len(t, next, 50)
}

func TestPooledReallocatePreservesPrefix(t *testing.T) {
	h := NewPooled([]Bucket{
		{Capacity: 16, Count: 1},
		{Capacity: 64, Count: 1},
	}, instrument.NewOptions())

	region := h.Allocate(4)
	copy(region, []byte{9, 8, 7, 6})

	grown := h.Reallocate(region, 40)
	assert.Len(t, grown, 40)
	assert.Equal(t, []byte{9, 8, 7, 6}, grown[:4])
}

func TestPooledConcurrentUseLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewPooled([]Bucket{
		{Capacity: 32, Count: 4},
		{Capacity: 256, Count: 4},
	}, instrument.NewOptions())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				region := h.Allocate(20)
				region[0] = 1
				h.Free(region)
			}
		}()
	}
	wg.Wait()
}
