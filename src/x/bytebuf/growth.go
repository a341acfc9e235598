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

// ensureAvailableCapacity is the entry point every mutating operation
// calls before touching bytes. It always leaves the Storage uniquely
// owned (copy-on-write if it wasn't already), and if atIndex+need would
// not fit in the current capacity, grows the Storage in place and extends
// this Buffer's slice upward to cover it.
func (b *Buffer) ensureAvailableCapacity(need, atIndex uint32) {
	capacity := b.Capacity()
	required := uint64(atIndex) + uint64(need)

	if required <= uint64(capacity) {
		b.ensureUnique(0)
		return
	}

	newCapacity := computeGrownCapacity(capacity, atIndex, need)
	extra := newCapacity - capacity
	wasUnique := b.storage.isUnique()

	b.ensureUnique(extra)
	if wasUnique && b.storage.capacity()-b.lo < newCapacity {
		// ensureUnique was a no-op (already unique); grow the existing
		// Storage in place instead of the fresh-allocation path above.
		b.storage.growInPlace(b.lo + newCapacity)
	}
	b.hi = b.lo + newCapacity
}

// computeGrownCapacity doubles startingFrom max(1, currentCapacity) until
// the result covers atIndex+need, clamping at the 32-bit ceiling. It aborts
// if atIndex+need itself is not representable in 32 bits.
func computeGrownCapacity(currentCapacity, atIndex, need uint32) uint32 {
	required := uint64(atIndex) + uint64(need)
	if required > uint64(maxCapacity) {
		abortOverflow("need %d bytes at index %d exceeds max capacity", need, atIndex)
		return currentCapacity
	}

	next := uint64(currentCapacity)
	if next < 1 {
		next = 1
	}
	for next < required {
		if next > uint64(maxCapacity)/2 {
			next = uint64(maxCapacity)
			break
		}
		next *= 2
	}
	return uint32(next)
}

// ChangeCapacity sets this Buffer's capacity to exactly the pow2-rounded
// newCapacity. newCapacity must be >= WriterIndex(), otherwise this is a
// precondition violation (fatal abort). A request that already matches
// the Storage's capacity, with this Buffer already spanning the whole
// Storage, is a no-op — no allocation, no copy, no copy-on-write.
func (b *Buffer) ChangeCapacity(newCapacity uint32) {
	if newCapacity < b.writerIndex {
		abortPrecondition("change_capacity target %d below writerIndex %d", newCapacity, b.writerIndex)
		return
	}

	rounded := nextPow2ClampedToMax(newCapacity)
	if rounded == b.storage.capacity() && b.lo == 0 && b.hi == b.storage.capacity() {
		return
	}

	if b.storage.isUnique() && b.lo == 0 {
		if b.storage.capacity() < rounded {
			b.storage.growInPlace(rounded)
		}
		b.hi = rounded
		return
	}

	next := b.storage.reallocateSharingSlice(b.lo, b.hi, rounded)
	old := b.storage
	b.storage = next
	b.lo = 0
	b.hi = next.capacity()
	old.release()
}
