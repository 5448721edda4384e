// SPDX-License-Identifier: MIT

package alloc

import "github.com/sirkon/errors"

// Sentinel errors of the alloc package. Strategies wrap them with structured
// context; match with errors.Is.
const (
	// ErrExhausted is returned by Allocate when a strategy has no storage left.
	ErrExhausted errors.Const = "alloc: storage exhausted"

	// ErrInvalidCount is returned by Allocate for n <= 0 or a zero object size.
	ErrInvalidCount errors.Const = "alloc: invalid allocation request"
)

func validateRequest(n int, size uintptr) error {
	if n > 0 && size > 0 {
		return nil
	}

	return errors.Wrap(ErrInvalidCount, "validate allocation request").
		Int("requested-count", n).
		Uint64("object-size", uint64(size))
}
