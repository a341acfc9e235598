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

import "io"

// ReadFrom implements io.ReaderFrom: it reads from r into this Buffer's
// writable window until r is exhausted, growing the Storage whenever the
// window fills up, and returns the total bytes read. Unlike Write, which
// takes an already-sized source, ReadFrom is the raw-view escape hatch's
// natural home for driving a socket or file directly into a Buffer
// without an intermediate copy.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		if b.WritableBytes() == 0 {
			b.ensureAvailableCapacity(1, b.writerIndex)
		}

		b.ensureUnique(0)
		region := b.storage.base[b.absWriterIndex():b.hi]

		n, err := r.Read(region)
		b.writerIndex += uint32(n)
		total += int64(n)

		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo implements io.WriterTo: it loops over the readable window, each
// iteration handing w the remaining readable bytes via
// WithUnsafeReadOnlyBytes and advancing ReaderIndex by whatever w accepted,
// until readableBytes() reaches zero or w reports an error. A w that only
// partially consumes what it's given (short Write) is handled by simply
// looping again against the remainder, rather than assuming one Write call
// drains the window.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for b.ReadableBytes() > 0 {
		var n int
		var err error
		b.WithUnsafeReadOnlyBytes(func(p []byte) {
			n, err = w.Write(p)
		})

		b.readerIndex += uint32(n)
		total += int64(n)

		if err != nil {
			return total, err
		}
	}
	return total, nil
}
