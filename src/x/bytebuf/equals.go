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

import "bytes"

// Equals reports whether b and other have identical readable bytes. It
// ignores capacity, reader/writer positions beyond the readable window,
// and whether the two Buffers share a Storage. Two Buffers holding the
// exact same window (same Storage, bounds, and indices) are equal without
// a byte comparison.
func (b Buffer) Equals(other Buffer) bool {
	if b.storage == other.storage &&
		b.lo == other.lo && b.hi == other.hi &&
		b.readerIndex == other.readerIndex && b.writerIndex == other.writerIndex {
		return true
	}

	return bytes.Equal(
		b.storage.base[b.absReaderIndex():b.absWriterIndex()],
		other.storage.base[other.absReaderIndex():other.absWriterIndex()],
	)
}
