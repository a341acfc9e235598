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

// GetSlice returns a new Buffer sharing this Buffer's Storage, windowed to
// [at, at+length) of this Buffer's own window, with its own ReaderIndex
// reset to 0 and WriterIndex set to length. The second return value is
// false (with the first unusable) when at+length exceeds Capacity() — this
// is the one recoverable failure signal in the package; every other
// structural violation aborts.
//
// The returned Buffer must be Release()'d independently of its parent: it
// holds its own Storage reference.
func (b Buffer) GetSlice(at, length uint32) (Buffer, bool) {
	if uint64(at)+uint64(length) > uint64(b.Capacity()) {
		return Buffer{}, false
	}

	b.storage.retain()
	lo := b.lo + at
	return Buffer{
		storage:     b.storage,
		lo:          lo,
		hi:          lo + length,
		readerIndex: 0,
		writerIndex: length,
	}, true
}
