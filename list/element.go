// SPDX-License-Identifier: MIT
//
// File: element.go
// Role: optional element lifecycle hooks (default, copy, destroy) and their
// fallbacks.

package list

// Defaulter is implemented by *T when default construction of T can fail or
// needs more than the zero value.
type Defaulter interface {
	InitDefault() error
}

// Copier is implemented by *T when copy construction of T can fail or needs
// more than plain assignment. The receiver starts as the zero value.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Destroyer is implemented by *T when T needs teardown before its storage is
// released.
type Destroyer interface {
	Destroy()
}

func defaultValue[T any](dst *T) error {
	if d, ok := any(dst).(Defaulter); ok {
		return d.InitDefault()
	}

	return nil
}

func copyValue[T any](dst, src *T) error {
	if c, ok := any(dst).(Copier[T]); ok {
		return c.CopyFrom(src)
	}
	*dst = *src

	return nil
}

func destroyValue[T any](v *T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}

// copyOf returns a constructor copying src.
func copyOf[T any](src *T) func(*T) error {
	return func(dst *T) error {
		return copyValue(dst, src)
	}
}
