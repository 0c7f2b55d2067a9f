package crmath

import (
	"strings"
)

// Exception is a set of IEEE 754 exception conditions raised by a call.
// Go has no floating-point environment, so the Status variants of each
// function return them alongside the result.
type Exception uint8

const (
	// Invalid is raised when the result is NaN for a non-NaN argument.
	Invalid Exception = 1 << iota

	// Inexact is raised when the result is not the exact mathematical value.
	Inexact
)

func (e Exception) Has(flag Exception) bool { return e&flag == flag }

func (e Exception) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	if e.Has(Invalid) {
		parts = append(parts, "invalid")
	}
	if e.Has(Inexact) {
		parts = append(parts, "inexact")
	}
	return strings.Join(parts, "|")
}
