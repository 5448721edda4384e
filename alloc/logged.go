// SPDX-License-Identifier: MIT
//
// File: logged.go
// Role: zap decorator. Logs every step of the wrapped strategy.

package alloc

import "go.uber.org/zap"

// Logged writes every step of a wrapped strategy to a zap logger: successful
// steps at Debug, failures at Warn.
type Logged struct {
	base Allocator
	log  *zap.Logger
}

// NewLogged wraps base. A nil logger panics; pass zap.NewNop() to silence it.
func NewLogged(base Allocator, log *zap.Logger) *Logged {
	if base == nil {
		panic(panicNilBase)
	}
	if log == nil {
		panic(panicNilLogger)
	}

	return &Logged{base: base, log: log}
}

// Allocate forwards and logs the outcome.
func (l *Logged) Allocate(n int, size uintptr) (Block, error) {
	b, err := l.base.Allocate(n, size)
	if err != nil {
		l.log.Warn("allocation failed",
			zap.Int("count", n),
			zap.Uintptr("size", size),
			zap.Error(err),
		)
		return Block{}, err
	}
	l.log.Debug("allocated",
		zap.Uint64("block", b.ID),
		zap.Int("count", b.Count),
		zap.Uintptr("bytes", b.Bytes()),
	)

	return b, nil
}

// Deallocate forwards and logs.
func (l *Logged) Deallocate(b Block) {
	l.base.Deallocate(b)
	l.log.Debug("deallocated", zap.Uint64("block", b.ID), zap.Uintptr("bytes", b.Bytes()))
}

// Construct forwards and logs the outcome.
func (l *Logged) Construct(b Block, ctor func() error) error {
	if err := l.base.Construct(b, ctor); err != nil {
		l.log.Warn("construction failed", zap.Uint64("block", b.ID), zap.Error(err))
		return err
	}
	l.log.Debug("constructed", zap.Uint64("block", b.ID))

	return nil
}

// Destroy forwards and logs.
func (l *Logged) Destroy(b Block, dtor func()) {
	l.base.Destroy(b, dtor)
	l.log.Debug("destroyed", zap.Uint64("block", b.ID))
}

// Unwrap to satisfy Unwrapper.
func (l *Logged) Unwrap() Allocator { return l.base }

// SelectOnCopy to satisfy CopySelector. Copies share the logger.
func (l *Logged) SelectOnCopy() Allocator {
	sel, fresh := reselect(l.base)
	if !fresh {
		return l
	}

	return &Logged{base: sel, log: l.log}
}

// PropagateOnCopyAssignment to satisfy Propagator.
func (l *Logged) PropagateOnCopyAssignment() bool { return PropagatesOnCopyAssignment(l.base) }

// Equal to satisfy Equaler.
func (l *Logged) Equal(other Allocator) bool { return Equal(l.base, Base(other)) }
