package list_test

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"

	"github.com/katalvlaran/lvlist/list"
)

// errCursed is returned by ThrowingAccountant when its construction is rigged
// to fail.
const errCursed errors.Const = "cursed construction"

// Accountant counts every construction and destruction in package-level
// counters. Tests using it must not run in parallel.
type Accountant struct {
	_ [40]byte
}

var (
	ctorCalls int
	dtorCalls int
)

func resetAccountant() {
	ctorCalls, dtorCalls = 0, 0
}

func (a *Accountant) InitDefault() error        { ctorCalls++; return nil }
func (a *Accountant) CopyFrom(*Accountant) error { ctorCalls++; return nil }
func (a *Accountant) Destroy()                   { dtorCalls++ }

// ThrowingAccountant is an Accountant whose construction fails whenever the
// construction counter lands on 4 modulo 5 while needThrow is set. A failed
// construction has already counted itself and undoes that with a destruction.
type ThrowingAccountant struct {
	Accountant
	Value int
}

var needThrow bool

func (a *ThrowingAccountant) construct() error {
	ctorCalls++
	if needThrow && ctorCalls%5 == 4 {
		dtorCalls++
		return errCursed
	}

	return nil
}

func (a *ThrowingAccountant) InitDefault() error { return a.construct() }

func (a *ThrowingAccountant) CopyFrom(src *ThrowingAccountant) error {
	a.Value = src.Value
	return a.construct()
}

// Counted shares its counters with every copy made from it, so copies of the
// same origin compare equal.
type Counted struct {
	Value    int
	defaults *int
	copies   *int
}

func newCounted(v int) Counted {
	return Counted{Value: v, defaults: new(int), copies: new(int)}
}

func (c *Counted) InitDefault() error {
	c.defaults, c.copies = new(int), new(int)
	*c.defaults++
	return nil
}

func (c *Counted) CopyFrom(src *Counted) error {
	*c = *src
	*c.copies++
	return nil
}

// digits concatenates the elements of l front to back.
func digits(l *list.List[int]) string {
	var sb strings.Builder
	for v := range l.All() {
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}
