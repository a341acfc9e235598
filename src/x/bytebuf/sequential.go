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

// MoveReaderIndex sets ReaderIndex to to. to must be in [0, WriterIndex()];
// violating that is a precondition violation (fatal abort).
func (b *Buffer) MoveReaderIndex(to uint32) {
	if to > b.writerIndex {
		abortPrecondition("move_reader_index to=%d exceeds writerIndex %d", to, b.writerIndex)
		return
	}
	b.readerIndex = to
}

// MoveReaderIndexForwardBy advances ReaderIndex by delta.
func (b *Buffer) MoveReaderIndexForwardBy(delta uint32) {
	next := uint64(b.readerIndex) + uint64(delta)
	if next > uint64(maxCapacity) {
		abortOverflow("move_reader_index forward by %d overflows", delta)
		return
	}
	b.MoveReaderIndex(uint32(next))
}

// MoveWriterIndex sets WriterIndex to to. to must be in [0, Capacity()];
// violating that is a precondition violation (fatal abort).
func (b *Buffer) MoveWriterIndex(to uint32) {
	if to > b.Capacity() {
		abortPrecondition("move_writer_index to=%d exceeds capacity %d", to, b.Capacity())
		return
	}
	b.writerIndex = to
}

// MoveWriterIndexForwardBy advances WriterIndex by delta.
func (b *Buffer) MoveWriterIndexForwardBy(delta uint32) {
	next := uint64(b.writerIndex) + uint64(delta)
	if next > uint64(maxCapacity) {
		abortOverflow("move_writer_index forward by %d overflows", delta)
		return
	}
	b.MoveWriterIndex(uint32(next))
}

// Read implements io.Reader over the readable window: it copies up to
// len(p) readable bytes into p and advances ReaderIndex by that much.
// Read never triggers copy-on-write or growth — it only observes bytes.
// It returns io.EOF once ReadableBytes() is zero, matching io.Reader's
// contract for an exhausted source.
func (b *Buffer) Read(p []byte) (int, error) {
	readable := b.ReadableBytes()
	if readable == 0 {
		return 0, io.EOF
	}

	n := readable
	if uint32(len(p)) < n {
		n = uint32(len(p))
	}

	abs := b.absReaderIndex()
	copy(p, b.storage.base[abs:abs+n])
	b.readerIndex += n
	return int(n), nil
}

// Write implements io.Writer: it copies all of p starting at WriterIndex,
// growing (and copy-on-writing) first if needed, then advances WriterIndex
// by len(p). Write never returns a short count or an error — growth
// aborts instead of failing, matching the rest of this package's
// precondition-violation policy.
func (b *Buffer) Write(p []byte) (int, error) {
	n := uint32(len(p))
	b.ensureAvailableCapacity(n, b.writerIndex)

	abs := b.absWriterIndex()
	b.storage.allocator.Copy(b.storage.base[abs:abs+n], p)
	b.writerIndex += n
	return int(n), nil
}

// StorageHandle is an opaque reference to a Buffer's Storage, obtained from
// a raw-view callback that needs the underlying region to outlive the
// callback's dynamic extent. Retain and Release calls must balance:
// unbalanced Retain leaks the Storage, unbalanced Release frees it while
// still referenced elsewhere.
type StorageHandle struct {
	s *storage
}

// Retain increments the Storage's reference count.
func (h StorageHandle) Retain() {
	h.s.retain()
}

// Release decrements the Storage's reference count, freeing the region
// through its Allocator if this was the last reference.
func (h StorageHandle) Release() {
	h.s.release()
}

// WithUnsafeReadOnlyBytes yields a read-only view over the readable window
// to fn. The view must not be retained past fn's return; it may be
// invalidated by any subsequent mutation of this Buffer.
func (b Buffer) WithUnsafeReadOnlyBytes(fn func(p []byte)) {
	fn(b.storage.base[b.absReaderIndex():b.absWriterIndex()])
}

// WithUnsafeReadOnlyBytesAndHandle is WithUnsafeReadOnlyBytes plus a
// StorageHandle fn can Retain to keep the Storage alive (and the view's
// backing memory valid) past the call, balancing with a later Release.
func (b Buffer) WithUnsafeReadOnlyBytesAndHandle(fn func(p []byte, handle StorageHandle)) {
	fn(b.storage.base[b.absReaderIndex():b.absWriterIndex()], StorageHandle{s: b.storage})
}

// WithUnsafeMutableReadableBytes performs copy-on-write if needed, then
// yields a mutable view over the readable window to fn. Indices are not
// moved; this is a raw escape hatch, not a sequential operation.
func (b *Buffer) WithUnsafeMutableReadableBytes(fn func(p []byte)) {
	b.ensureUnique(0)
	fn(b.storage.base[b.absReaderIndex():b.absWriterIndex()])
}

// WithUnsafeMutableWritableBytes performs copy-on-write if needed, then
// yields a mutable view over the writable window ([WriterIndex, Capacity))
// to fn. WriterIndex is not advanced; use WriteWithRawWritableRegion if
// the write should be reflected in WriterIndex.
func (b *Buffer) WithUnsafeMutableWritableBytes(fn func(p []byte)) {
	b.ensureUnique(0)
	fn(b.storage.base[b.absWriterIndex():b.hi])
}

// WriteWithRawWritableRegion performs copy-on-write if needed, then yields
// a mutable view over the writable window to fn; fn returns how many bytes
// it actually wrote, and WriterIndex advances by that much. fn reporting
// more bytes than the region's length is a precondition violation.
func (b *Buffer) WriteWithRawWritableRegion(fn func(p []byte) uint32) uint32 {
	b.ensureUnique(0)
	region := b.storage.base[b.absWriterIndex():b.hi]
	n := fn(region)
	if n > uint32(len(region)) {
		abortPrecondition("write_with_raw_writable_region reported %d bytes into a %d-byte region", n, len(region))
		return 0
	}
	b.writerIndex += n
	return n
}
