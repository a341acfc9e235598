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

// Package instrument bundles the logger and metrics scope threaded through
// the allocator and pool constructors. Nothing in src/x/bytebuf itself
// depends on this package — the core buffer engine stays allocation-hook
// pure — but the pooled allocator variant reports through it.
package instrument

import (
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// Options is an immutable bundle of a logger and a metrics scope.
type Options interface {
	// Logger returns the logger.
	Logger() *zap.Logger

	// SetLogger returns a copy of these options with the logger set.
	SetLogger(value *zap.Logger) Options

	// MetricsScope returns the metrics scope.
	MetricsScope() tally.Scope

	// SetMetricsScope returns a copy of these options with the scope set.
	SetMetricsScope(value tally.Scope) Options
}

type options struct {
	logger *zap.Logger
	scope  tally.Scope
}

// NewOptions returns a new set of instrument options defaulting to a no-op
// logger and a no-op metrics scope, so leaving these options unset imposes
// zero observability overhead.
func NewOptions() Options {
	return &options{
		logger: zap.NewNop(),
		scope:  tally.NoopScope,
	}
}

func (o *options) Logger() *zap.Logger {
	return o.logger
}

func (o *options) SetLogger(value *zap.Logger) Options {
	opts := *o
	opts.logger = value
	return &opts
}

func (o *options) MetricsScope() tally.Scope {
	return o.scope
}

func (o *options) SetMetricsScope(value tally.Scope) Options {
	opts := *o
	opts.scope = value
	return &opts
}
