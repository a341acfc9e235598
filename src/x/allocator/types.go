// Copyright (c) 2017 Uber Technologies, Inc.
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

// Package allocator defines the four-callable memory allocation contract
// that a buffer's Storage is built on.
package allocator

// Handle is an immutable bundle of the four primitives a Storage needs to
// manage its heap region. A Handle is cheap to copy and safe to share
// across any number of Storages; it performs no allocation itself, it only
// describes how to perform one.
type Handle struct {
	// Allocate returns a region of exactly n bytes, contents indeterminate.
	Allocate func(n uint32) []byte

	// Reallocate returns a region of exactly n bytes, preserving the first
	// min(len(region), n) bytes of region. It may return region itself
	// (grown/shrunk in place) or a different region (moved).
	Reallocate func(region []byte, n uint32) []byte

	// Free releases a region previously returned by Allocate or
	// Reallocate. It is idempotent only against a region returned from a
	// zero-length Allocate.
	Free func(region []byte)

	// Copy performs a bulk copy of len(src) bytes from src into dst. dst
	// and src must not overlap.
	Copy func(dst, src []byte)
}

// Bucket describes one size class of a pooled Handle: Count regions of
// exactly Capacity bytes each, pre-allocated at construction.
type Bucket struct {
	Capacity uint32
	Count    int
}
