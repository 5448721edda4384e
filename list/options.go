// SPDX-License-Identifier: MIT

// Functional configuration for List constructors.
//
// Defaults:
//   - allocator: alloc.Heap{} (stateless, never propagates, copies share it)
//   - logger:    zap.NewNop()
//
// Options are applied left to right; a later option overrides an earlier one.
// Constructors panic only on nonsensical values (programmer error).

package list

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlist/alloc"
)

// Options holds the configuration of a List under construction.
type Options struct {
	allocator alloc.Allocator
	logger    *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		allocator: alloc.Heap{},
		logger:    zap.NewNop(),
	}
}

// WithAllocator sets the storage strategy. A nil allocator panics.
func WithAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic(panicNilAllocator)
	}

	return func(o *Options) {
		o.allocator = a
	}
}

// WithLogger sets the logger used to report rollbacks. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.logger = log
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
