// SPDX-License-Identifier: MIT

// Package traverse: functional configuration of the parallel visitors.
//
// Defaults are resolved at call time (the worker count follows GOMAXPROCS).
// WithX constructors panic on nonsensical values; those are programmer errors.
package traverse

import (
	"log/slog"
	"runtime"
)

// DefaultMinRegion is the smallest number of dimension-0 rows handed to one
// worker.
const DefaultMinRegion = 1

const (
	panicWorkersInvalid   = "traverse: WithWorkers: n must be >= 1"
	panicMinRegionInvalid = "traverse: WithMinRegion: rows must be >= 1"
)

// Option mutates internal options.
type Option func(*options)

type options struct {
	workers   int          // >= 1; GOMAXPROCS by default
	minRegion int          // >= 1; DefaultMinRegion
	log       *slog.Logger // never nil after gather
}

// WithWorkers bounds the number of regions processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithMinRegion sets the minimum region height (rows along dimension 0).
// Small views then run on fewer goroutines. Panics if rows < 1.
func WithMinRegion(rows int) Option {
	if rows < 1 {
		panic(panicMinRegionInvalid)
	}

	return func(o *options) { o.minRegion = rows }
}

// WithLogger sets the logger used for per-region debug records.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		workers:   runtime.GOMAXPROCS(0),
		minRegion: DefaultMinRegion,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// parts is the number of regions a view with the given row count is split
// into: at most one per worker, each at least minRegion rows high.
func (o options) parts(rows int) int {
	p := rows / o.minRegion
	if p > o.workers {
		p = o.workers
	}
	if p < 1 {
		p = 1
	}

	return p
}
