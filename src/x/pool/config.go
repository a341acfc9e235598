// Copyright (c) 2017 Uber Technologies, Inc.
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

// Package pool contains the configuration surface for the pooled Allocator
// Handle variant (src/x/allocator's NewPooled).
package pool

import (
	"github.com/lukw00heck/gonio/src/x/allocator"
	"github.com/lukw00heck/gonio/src/x/instrument"
)

// BucketConfiguration contains configuration for one pool bucket.
type BucketConfiguration struct {
	// Capacity is the size in bytes of every region in this bucket.
	Capacity int `yaml:"capacity"`

	// Count is the number of regions to pre-allocate into this bucket.
	Count int `yaml:"count"`
}

// WatermarkConfiguration contains watermark configuration for refilling a
// pool in the background as it's drawn down. NewAllocator does not read it:
// the pooled allocator does no background refilling.
type WatermarkConfiguration struct {
	// RefillLowWatermark is the low watermark to start refilling the
	// pool at, if zero refilling is disabled.
	RefillLowWatermark float64 `yaml:"low" validate:"min=0.0,max=1.0"`

	// RefillHighWatermark is the high watermark to stop refilling the
	// pool at, if zero refilling is disabled.
	RefillHighWatermark float64 `yaml:"high" validate:"min=0.0,max=1.0"`
}

// PooledAllocatorConfiguration configures the bucketized pooled Allocator
// Handle (src/x/allocator.NewPooled).
type PooledAllocatorConfiguration struct {
	// Buckets configures the size classes the pool maintains.
	Buckets []BucketConfiguration `yaml:"buckets"`

	// Watermark is parsed but not used by NewAllocator; no background
	// refilling of the buckets takes place.
	Watermark WatermarkConfiguration `yaml:"watermark"`
}

// NewAllocator builds a pooled allocator.Handle from this configuration,
// mirroring src/x/pool/config.go's NewObjectPoolOptions builder method in
// the teacher codebase.
func (c PooledAllocatorConfiguration) NewAllocator(iopts instrument.Options) allocator.Handle {
	buckets := make([]allocator.Bucket, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		buckets = append(buckets, allocator.Bucket{
			Capacity: uint32(b.Capacity),
			Count:    b.Count,
		})
	}
	return allocator.NewPooled(buckets, iopts)
}
