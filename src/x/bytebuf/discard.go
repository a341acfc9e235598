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

// DiscardReadBytes shifts the readable window down to the start of this
// Buffer's slice, reclaiming the space already consumed by reads. It
// returns false without doing anything when ReaderIndex is already 0.
//
// When the Storage is uniquely owned the shift is an in-place move (via
// Go's overlap-safe copy, since the source and destination ranges can
// overlap — unlike the Allocator Handle's Copy, which assumes disjoint
// regions). When shared, a fresh Storage holding only the readable window
// replaces it, which is copy-on-write's "reset indices" variant from the
// general case in ensureUnique.
func (b *Buffer) DiscardReadBytes() bool {
	if b.readerIndex == 0 {
		return false
	}

	readable := b.writerIndex - b.readerIndex

	if b.storage.isUnique() {
		dst := b.lo
		src := b.lo + b.readerIndex
		copy(b.storage.base[dst:dst+readable], b.storage.base[src:src+readable])
	} else {
		capacity := b.Capacity()
		next := b.storage.reallocateSharingSlice(b.lo+b.readerIndex, b.lo+b.writerIndex, capacity)
		old := b.storage
		b.storage = next
		b.lo = 0
		b.hi = capacity
		old.release()
	}

	b.writerIndex = readable
	b.readerIndex = 0
	return true
}

// Clear resets both indices to 0 without touching Capacity. If the
// Storage is shared, a fresh, uninitialized Storage of the same capacity
// replaces it — cheaper than copying, and correct because no bytes of the
// old Storage are observable through this Buffer afterward anyway. If
// uniquely owned, nothing is allocated or copied: the bytes stay in
// memory but become indeterminate now that they fall outside
// [ReaderIndex, WriterIndex).
func (b *Buffer) Clear() {
	if !b.storage.isUnique() {
		capacity := b.Capacity()
		next := allocateFreshStorage(b.storage.allocator, capacity)
		old := b.storage
		b.storage = next
		b.lo = 0
		b.hi = capacity
		old.release()
	}

	b.readerIndex = 0
	b.writerIndex = 0
}
