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
	"math/bits"

	"github.com/lukw00heck/gonio/src/x/allocator"
	"github.com/lukw00heck/gonio/src/x/checked"
)

// maxCapacity is the 32-bit ceiling every index and capacity in this
// package must fit under.
const maxCapacity = ^uint32(0)

// storage is the heap-allocated byte region a Buffer's slice points into.
// Multiple Buffers may share one storage; ref tracks how many. A storage
// is destroyed exactly once, when the last sharer releases it.
type storage struct {
	ref       checked.RefCount
	base      []byte
	allocator allocator.Handle
}

// allocateFreshStorage rounds minCapacity up to the next power of two and
// allocates a new, singly-owned storage bound to alloc.
func allocateFreshStorage(alloc allocator.Handle, minCapacity uint32) *storage {
	capacity := nextPow2ClampedToMax(minCapacity)
	s := &storage{
		base:      alloc.Allocate(capacity),
		allocator: alloc,
	}
	s.ref.IncRef()
	return s
}

// reallocateSharingSlice allocates a fresh storage of newCapacity (after
// pow2 rounding) and bulk-copies the [lo, hi) window of s into the new
// storage starting at offset 0. The caller is responsible for rebasing its
// slice and indices against the returned storage.
func (s *storage) reallocateSharingSlice(lo, hi, newCapacity uint32) *storage {
	capacity := nextPow2ClampedToMax(newCapacity)
	next := &storage{
		base:      s.allocator.Allocate(capacity),
		allocator: s.allocator,
	}
	next.ref.IncRef()
	if hi > lo {
		s.allocator.Copy(next.base, s.base[lo:hi])
	}
	return next
}

// growInPlace asks the allocator to grow this storage's region to
// newCapacity (after pow2 rounding), preserving existing bytes. Valid only
// when s is uniquely owned — copy-on-write must already have happened
// otherwise.
func (s *storage) growInPlace(newCapacity uint32) {
	capacity := nextPow2ClampedToMax(newCapacity)
	s.base = s.allocator.Reallocate(s.base, capacity)
}

func (s *storage) capacity() uint32 {
	return uint32(len(s.base))
}

// isUnique reports whether s has exactly one owner, the precondition for
// any in-place mutation.
func (s *storage) isUnique() bool {
	return s.ref.NumRef() == 1
}

func (s *storage) retain() {
	s.ref.IncRef()
}

// release drops one reference, destroying the region through its
// allocator once the last reference is gone.
func (s *storage) release() {
	s.ref.DecRef()
	if s.ref.NumRef() == 0 {
		s.allocator.Free(s.base)
		s.ref.Finalize()
		s.base = nil
	}
}

// nextPow2ClampedToMax returns the smallest power of two >= n, or
// maxCapacity if that power of two would overflow a u32. Zero stays zero.
func nextPow2ClampedToMax(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	exp := bits.Len32(n - 1)
	if exp >= 32 {
		return maxCapacity
	}
	return uint32(1) << uint(exp)
}
