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

// GetBytes returns a read-only view of length bytes starting at absolute
// offset at within this Buffer's window. at and length are index-agnostic:
// callers must ensure the range has been written, since bytes outside
// [ReaderIndex, WriterIndex) are indeterminate but not unsafe to read.
// An at+length past Capacity() is a precondition violation (fatal abort),
// not a recoverable error — GetSlice is the only operation with a
// recoverable out-of-range signal.
//
// The returned slice aliases this Buffer's Storage directly; callers must
// not retain it past the Buffer's next mutation and must not write through
// it (use SetBytes to mutate).
func (b Buffer) GetBytes(at, length uint32) []byte {
	if uint64(at)+uint64(length) > uint64(b.Capacity()) {
		abortPrecondition("get_bytes at=%d length=%d exceeds capacity %d", at, length, b.Capacity())
		return nil
	}
	abs := b.lo + at
	return b.storage.base[abs : abs+length]
}

// SetBytes bulk-copies source into this Buffer starting at absolute offset
// at, growing (see ensureAvailableCapacity) and copy-on-writing first if
// needed. It does not move WriterIndex. Returns the number of bytes
// copied, always len(source).
func (b *Buffer) SetBytes(at uint32, source []byte) uint32 {
	n := uint32(len(source))
	b.ensureAvailableCapacity(n, at)

	abs := b.lo + at
	b.storage.allocator.Copy(b.storage.base[abs:abs+n], source)
	return n
}

// SetBytesSequence is the element-by-element counterpart to SetBytes for
// sources that aren't laid out contiguously in memory: next is called
// repeatedly and must return false once exhausted. lengthHint is an
// underestimate of the number of elements next will yield, used to size
// the initial growth so the common case needs no further reallocation;
// an inaccurate hint only costs extra incremental growth, never
// correctness. Like SetBytes, this does not move WriterIndex and returns
// the number of bytes written.
func (b *Buffer) SetBytesSequence(at, lengthHint uint32, next func() (byte, bool)) uint32 {
	b.ensureAvailableCapacity(lengthHint, at)

	var n uint32
	for {
		v, ok := next()
		if !ok {
			return n
		}
		b.ensureAvailableCapacity(1, at+n)
		b.storage.base[b.lo+at+n] = v
		n++
	}
}
