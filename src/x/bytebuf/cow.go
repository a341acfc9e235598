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

// ensureUnique performs copy-on-write if this Buffer's Storage is shared:
// it allocates a fresh Storage sized to this Buffer's current capacity
// plus extraCapacity headroom, bulk-copies this Buffer's [lo, hi) window
// into it rebased to offset 0, releases the old Storage reference, and
// points this Buffer at the new one. readerIndex/writerIndex are
// unchanged — callers that need to reset indices (discardReadBytes) do
// their own rebase instead of calling this.
//
// No-op when the Storage is already uniquely owned by this Buffer.
func (b *Buffer) ensureUnique(extraCapacity uint32) {
	if b.storage.isUnique() {
		return
	}

	capacity := b.Capacity()
	next := b.storage.reallocateSharingSlice(b.lo, b.hi, capacity+extraCapacity)

	old := b.storage
	b.storage = next
	b.lo = 0
	b.hi = capacity
	old.release()
}
