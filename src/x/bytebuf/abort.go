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

import "github.com/pkg/errors"

// AbortFn is invoked whenever a Buffer or Storage detects a violation of
// its structural contract: a negative or out-of-range index, or capacity
// growth past the 32-bit ceiling. These are programming errors, not
// recoverable conditions, so the default AbortFn panics. Tests override it
// with SetAbortFn to assert on the triggering error without crashing the
// test binary.
type AbortFn func(err error)

var abortFn AbortFn = defaultAbort

// SetAbortFn overrides the fatal-abort handler.
func SetAbortFn(fn AbortFn) {
	abortFn = fn
}

// ResetAbortFn restores the default panic-based abort handler.
func ResetAbortFn() {
	abortFn = defaultAbort
}

func defaultAbort(err error) {
	panic(err)
}

func abortPrecondition(format string, args ...interface{}) {
	abortFn(errors.Errorf("precondition violation: "+format, args...))
}

func abortOverflow(format string, args ...interface{}) {
	abortFn(errors.Errorf("capacity overflow: "+format, args...))
}
