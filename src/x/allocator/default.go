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

package allocator

// NewDefault returns a Handle backed directly by Go's runtime allocator.
// Free is a no-op: Go has no explicit free, regions are reclaimed by the
// garbage collector once unreferenced. The hook still exists so that
// alternative Handles (see NewPooled) can return regions to a pool instead.
func NewDefault() Handle {
	return Handle{
		Allocate: func(n uint32) []byte {
			return make([]byte, n)
		},
		Reallocate: func(region []byte, n uint32) []byte {
			next := make([]byte, n)
			copy(next, region)
			return next
		},
		Free: func(region []byte) {},
		Copy: func(dst, src []byte) {
			copy(dst, src)
		},
	}
}
