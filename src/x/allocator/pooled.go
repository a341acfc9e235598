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
	"sort"
	"sync"

	"github.com/lukw00heck/gonio/src/x/instrument"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// pooledBucket is one size class of a pooled Handle.
type pooledBucket struct {
	capacity uint32
	pool     sync.Pool
}

// NewPooled returns a Handle whose Allocate/Free draw from and return to a
// size-bucketed sync.Pool per bucket, satisfying the base spec's "the
// allocator may implement pooling transparently": nothing above this
// Handle (Storage, Buffer) is aware that its regions are pooled.
//
// Reallocate draws the new region from the smallest bucket that fits the
// target size, copies, and returns the old region to its bucket. Requests
// (including Reallocate targets) larger than every configured bucket fall
// back to a raw make(); this fallback is logged at debug level and counted on the "alloc-max" counter,
// mirroring src/m3x/pool/bytes.go's maxAlloc accounting.
func NewPooled(buckets []Bucket, iopts instrument.Options) Handle {
	if iopts == nil {
		iopts = instrument.NewOptions()
	}

	sorted := make([]Bucket, len(buckets))
	copy(sorted, buckets)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})

	p := &pooledAllocator{
		buckets:  make([]pooledBucket, len(sorted)),
		log:      iopts.Logger(),
		maxAlloc: iopts.MetricsScope().Counter("alloc-max"),
	}
	for i, b := range sorted {
		capacity := b.Capacity
		p.buckets[i].capacity = capacity
		p.buckets[i].pool.New = func() interface{} {
			return make([]byte, capacity)
		}
		for j := 0; j < b.Count; j++ {
			p.buckets[i].pool.Put(make([]byte, capacity))
		}
	}
	if len(sorted) > 0 {
		p.maxBucketCapacity = sorted[len(sorted)-1].Capacity
	}

	return Handle{
		Allocate:   p.allocate,
		Reallocate: p.reallocate,
		Free:       p.free,
		Copy: func(dst, src []byte) {
			copy(dst, src)
		},
	}
}

type pooledAllocator struct {
	buckets           []pooledBucket
	maxBucketCapacity uint32
	log               *zap.Logger
	maxAlloc          tally.Counter
}

func (p *pooledAllocator) allocate(n uint32) []byte {
	if n > p.maxBucketCapacity || len(p.buckets) == 0 {
		p.maxAlloc.Inc(1)
		p.log.Debug("allocation exceeds largest bucket, falling back to raw alloc",
			zap.Uint32("requested", n),
			zap.Uint32("maxBucketCapacity", p.maxBucketCapacity))
		return make([]byte, n)
	}
	for i := range p.buckets {
		if p.buckets[i].capacity >= n {
			region := p.buckets[i].pool.Get().([]byte)
			return region[:n]
		}
	}
	return make([]byte, n)
}

func (p *pooledAllocator) reallocate(region []byte, n uint32) []byte {
	next := p.allocate(n)
	copy(next, region)
	p.free(region)
	return next
}

func (p *pooledAllocator) free(region []byte) {
	capacity := uint32(cap(region))
	if capacity == 0 || capacity > p.maxBucketCapacity {
		return
	}
	for i := len(p.buckets) - 1; i >= 0; i-- {
		if capacity >= p.buckets[i].capacity {
			p.buckets[i].pool.Put(region[:p.buckets[i].capacity])
			return
		}
	}
}
