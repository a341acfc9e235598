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

import "fmt"

const debugStringMaxBytes = 1024

// String returns a compact, human-readable description: indices,
// capacity, this Buffer's slice bounds, and its Storage's address.
func (b Buffer) String() string {
	return fmt.Sprintf(
		"Buffer{reader=%d, writer=%d, capacity=%d, slice=[%d,%d), storage=%p}",
		b.readerIndex, b.writerIndex, b.Capacity(), b.lo, b.hi, b.storage,
	)
}

// DebugString is String plus up to 1024 readable bytes rendered as hex.
// Longer readable windows are truncated; the truncation is not indicated
// beyond the hex simply stopping short of ReadableBytes().
func (b Buffer) DebugString() string {
	readable := b.storage.base[b.absReaderIndex():b.absWriterIndex()]
	if len(readable) > debugStringMaxBytes {
		readable = readable[:debugStringMaxBytes]
	}
	return fmt.Sprintf("%s hex=%x", b.String(), readable)
}
