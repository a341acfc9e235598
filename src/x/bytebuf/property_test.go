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

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lukw00heck/gonio/src/x/allocator"
)

// opKind enumerates the public operations the random-sequence property
// test drives a Buffer through.
type opKind int

const (
	opWrite opKind = iota
	opRead
	opDiscard
	opClear
	opChangeCapacity
)

type op struct {
	kind   opKind
	amount uint32
}

func genOp() gopter.Gen {
	return gen.IntRange(0, 4).FlatMap(func(k interface{}) gopter.Gen {
		kind := opKind(k.(int))
		return gen.IntRange(0, 64).Map(func(n interface{}) op {
			return op{kind: kind, amount: uint32(n.(int))}
		})
	}, reflect.TypeOf(op{}))
}

func genOpSequence() gopter.Gen {
	return gen.SliceOfN(40, genOp())
}

// TestBufferInvariantsPropertyBased drives a freshly allocated Buffer
// through a random sequence of public operations and checks, after every
// single one, that the structural invariants from the data model hold:
// reader/writer/capacity ordering, the derived-quantity identities, and
// growth monotonicity outside of ChangeCapacity.
func TestBufferInvariantsPropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 256
	parameters.Rng.Seed(time.Now().UnixNano())

	props := gopter.NewProperties(parameters)
	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)

	props.Property("structural invariants hold after every operation", prop.ForAll(
		func(ops []op) (bool, error) {
			alloc := allocator.NewDefault()
			b := New(alloc, 0)
			defer b.Release()

			lastCapacity := b.Capacity()

			for i, o := range ops {
				switch o.kind {
				case opWrite:
					payload := bytes.Repeat([]byte{0x7A}, int(o.amount))
					b.Write(payload)
				case opRead:
					n := o.amount
					if n > b.ReadableBytes() {
						n = b.ReadableBytes()
					}
					buf := make([]byte, n)
					b.Read(buf)
				case opDiscard:
					b.DiscardReadBytes()
				case opClear:
					b.Clear()
				case opChangeCapacity:
					target := o.amount
					if target < b.WriterIndex() {
						target = b.WriterIndex()
					}
					b.ChangeCapacity(target)
				}

				if !(b.ReaderIndex() <= b.WriterIndex()) {
					return false, fmt.Errorf("op %d (%v): readerIndex %d > writerIndex %d", i, o, b.ReaderIndex(), b.WriterIndex())
				}
				if !(b.WriterIndex() <= b.Capacity()) {
					return false, fmt.Errorf("op %d (%v): writerIndex %d > capacity %d", i, o, b.WriterIndex(), b.Capacity())
				}
				if b.ReadableBytes() != b.WriterIndex()-b.ReaderIndex() {
					return false, fmt.Errorf("op %d (%v): readableBytes mismatch", i, o)
				}
				if b.WritableBytes() != b.Capacity()-b.WriterIndex() {
					return false, fmt.Errorf("op %d (%v): writableBytes mismatch", i, o)
				}
				if o.kind != opChangeCapacity && b.Capacity() < lastCapacity {
					return false, fmt.Errorf("op %d (%v): capacity shrank from %d to %d without ChangeCapacity", i, o, lastCapacity, b.Capacity())
				}
				lastCapacity = b.Capacity()
			}

			return true, nil
		},
		genOpSequence(),
	))

	if !props.Run(reporter) {
		t.Error("structural invariant property failed")
	}
}

// TestBufferRoundTripPropertyBased checks invariant 3 from the testable
// properties: writing a random byte sequence at a fixed offset (3 for
// SetBytes, 5 for SetBytesSequence) of a capacity-8 Buffer, growing it when
// the sequence does not fit, and reading it back at the same offset yields
// the original bytes, for both the contiguous and sequence variants.
func TestBufferRoundTripPropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 256
	parameters.Rng.Seed(time.Now().UnixNano())

	props := gopter.NewProperties(parameters)
	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)

	genPayload := gen.SliceOf(gen.UInt8())

	props.Property("set_bytes/get_bytes round trips", prop.ForAll(
		func(raw []byte) bool {
			alloc := allocator.NewDefault()
			b := New(alloc, 8)
			defer b.Release()

			b.SetBytes(3, raw)
			return bytes.Equal(raw, b.GetBytes(3, uint32(len(raw))))
		},
		genPayload,
	))

	props.Property("set_bytes_sequence/get_bytes round trips", prop.ForAll(
		func(raw []byte) bool {
			alloc := allocator.NewDefault()
			b := New(alloc, 8)
			defer b.Release()

			idx := 0
			next := func() (byte, bool) {
				if idx >= len(raw) {
					return 0, false
				}
				v := raw[idx]
				idx++
				return v, true
			}
			b.SetBytesSequence(5, uint32(len(raw)), next)
			return bytes.Equal(raw, b.GetBytes(5, uint32(len(raw))))
		},
		genPayload,
	))

	if !props.Run(reporter) {
		t.Error("round-trip property failed")
	}
}

// TestBufferSliceIsolationPropertyBased checks invariant 5 in the
// child-to-parent direction: a slice's mutations never become visible
// through its parent.
func TestBufferSliceIsolationPropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 128
	parameters.Rng.Seed(time.Now().UnixNano())

	props := gopter.NewProperties(parameters)
	reporter := gopter.NewFormatedReporter(true, 160, os.Stdout)

	props.Property("mutating a slice never changes its parent's readable bytes", prop.ForAll(
		func(at, length uint8) bool {
			alloc := allocator.NewDefault()
			a := New(alloc, 64)
			defer a.Release()

			original := bytes.Repeat([]byte{0x11}, 64)
			a.Write(original)

			childAt := uint32(at) % 64
			childLen := uint32(length) % (64 - childAt + 1)
			if childLen == 0 {
				return true
			}

			child, ok := a.GetSlice(childAt, childLen)
			if !ok {
				return false
			}
			defer child.Release()

			beforeParent := append([]byte{}, a.GetBytes(0, 64)...)
			child.SetBytes(0, bytes.Repeat([]byte{0xFF}, int(childLen)))

			return bytes.Equal(beforeParent, a.GetBytes(0, 64))
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	if !props.Run(reporter) {
		t.Error("slice isolation property failed")
	}
}
