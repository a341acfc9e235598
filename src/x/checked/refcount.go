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

// Package checked provides a reference counted primitive used to implement
// copy-on-write sharing of an underlying resource.
package checked

import (
	"fmt"

	"go.uber.org/atomic"
)

// Finalizer finalizes a checked resource.
type Finalizer interface {
	Finalize()
}

// OnFinalize is called when a RefCount reaches zero references.
type OnFinalize interface {
	Finalize()
}

// OnFinalizeFn is a function literal that implements OnFinalize.
type OnFinalizeFn func()

// Finalize calls the function literal as an OnFinalize.
func (fn OnFinalizeFn) Finalize() {
	fn()
}

var panicFn PanicFn = defaultPanic

// PanicFn is invoked whenever a RefCount detects a violation of its
// contract (negative ref count, finalize before zero ref count, etc).
type PanicFn func(err error)

// SetPanicFn overrides the function invoked on a RefCount contract
// violation. Tests use this to assert on the violation without crashing
// the test binary.
func SetPanicFn(fn PanicFn) {
	panicFn = fn
}

// ResetPanicFn restores the default panic-based violation handler.
func ResetPanicFn() {
	panicFn = defaultPanic
}

func defaultPanic(err error) {
	panic(err)
}

// RefCount is an atomically reference counted primitive. A zero-value
// RefCount has a ref count of zero and no finalizer. It is the building
// block a Storage uses to know whether it is safe to mutate in place or
// whether it must copy-on-write first.
type RefCount struct {
	n          atomic.Int32
	onFinalize OnFinalize
}

// IncRef increments the ref count.
func (c *RefCount) IncRef() {
	c.n.Inc()
}

// DecRef decrements the ref count. It does not finalize automatically —
// callers decide when to call Finalize once NumRef reaches zero, mirroring
// the explicit (non-destructor) ownership model Go requires.
func (c *RefCount) DecRef() {
	n := c.n.Dec()
	if n < 0 {
		panicFn(fmt.Errorf("negative ref count, ref=%d", n))
	}
}

// NumRef returns the current ref count.
func (c *RefCount) NumRef() int {
	return int(c.n.Load())
}

// Finalize invokes the finalizer, if any. The ref count must be zero.
func (c *RefCount) Finalize() {
	if n := c.NumRef(); n != 0 {
		panicFn(fmt.Errorf("finalize before zero ref count, ref=%d", n))
		return
	}
	if c.onFinalize != nil {
		c.onFinalize.Finalize()
	}
}

// OnFinalize returns the currently set finalizer, or nil.
func (c *RefCount) OnFinalize() OnFinalize {
	return c.onFinalize
}

// SetOnFinalize sets the finalizer invoked by Finalize.
func (c *RefCount) SetOnFinalize(f OnFinalize) {
	c.onFinalize = f
}
