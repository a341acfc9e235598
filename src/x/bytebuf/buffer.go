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

// Package bytebuf implements the copy-on-write, reference-counted byte
// buffer that backs a networking stack's pipeline: frames read from
// sockets, partially parsed protocol units, outbound payloads, and slices
// passed between pipeline stages.
//
// A Buffer is a value type: a shared Storage reference, a window [lo, hi)
// into that Storage, and a reader/writer index pair relative to that
// window. Go has no copy constructors or destructors, so two things the
// base spec leaves implicit in languages that do are explicit methods
// here: Clone() bumps the Storage refcount and must be called instead of a
// bare struct assignment whenever a second owner needs to outlive the
// first, and Release() drops a reference, freeing the Storage through its
// Allocator once the last reference is gone. A plain Go assignment
// (b2 := b1) still gives two Buffer values with independent slices and
// indices sharing one Storage — exactly per the base spec's "clone is
// independent in its slice and indices" — but does not bump the refcount,
// so only use it when the two values' lifetimes are nested (b2 provably
// outlived by b1, or vice versa); reach for Clone() whenever that is not
// obviously true.
package bytebuf

import (
	"github.com/lukw00heck/gonio/src/x/allocator"
)

// Buffer is a window of bytes with independent reader and writer cursors
// over a (possibly shared) Storage region.
type Buffer struct {
	storage *storage

	// lo, hi are absolute offsets into storage.base: this Buffer's slice.
	lo, hi uint32

	// readerIndex, writerIndex are relative to lo.
	readerIndex uint32
	writerIndex uint32
}

// New allocates a fresh Buffer with the given starting capacity, rounded
// up to the next power of two (zero stays zero), using alloc to obtain
// the backing region. This is the Go expression of the base spec's
// `allocator.buffer(starting_capacity)`.
func New(alloc allocator.Handle, startingCapacity uint32) Buffer {
	s := allocateFreshStorage(alloc, startingCapacity)
	return Buffer{
		storage: s,
		lo:      0,
		hi:      s.capacity(),
	}
}

// Clone returns a new Buffer value sharing this Buffer's Storage, with an
// independent copy of the slice and index fields. The clone must be
// Release()'d independently of the original.
func (b Buffer) Clone() Buffer {
	b.storage.retain()
	return b
}

// Release drops this Buffer's reference to its Storage, freeing the
// region through its Allocator once the last reference is released. A
// released Buffer must not be used again.
func (b *Buffer) Release() {
	b.storage.release()
}

// Capacity returns the size of this Buffer's window.
func (b Buffer) Capacity() uint32 {
	return b.hi - b.lo
}

// ReaderIndex returns the offset of the next byte a sequential Read will
// consume, relative to this Buffer's window.
func (b Buffer) ReaderIndex() uint32 {
	return b.readerIndex
}

// WriterIndex returns the offset of the next byte a sequential Write will
// produce, relative to this Buffer's window.
func (b Buffer) WriterIndex() uint32 {
	return b.writerIndex
}

// ReadableBytes returns WriterIndex() - ReaderIndex().
func (b Buffer) ReadableBytes() uint32 {
	return b.writerIndex - b.readerIndex
}

// WritableBytes returns Capacity() - WriterIndex().
func (b Buffer) WritableBytes() uint32 {
	return b.Capacity() - b.writerIndex
}

// absReaderIndex is the absolute offset into storage.base of ReaderIndex.
func (b Buffer) absReaderIndex() uint32 {
	return b.lo + b.readerIndex
}

// absWriterIndex is the absolute offset into storage.base of WriterIndex.
func (b Buffer) absWriterIndex() uint32 {
	return b.lo + b.writerIndex
}
