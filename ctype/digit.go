// Package ctype classifies characters the way the C library's <ctype.h>
// does in the "C" locale.
//
// Every classifier has a form taking the locale explicitly. Only the C
// locale exists, so the argument is accepted and ignored; it is never read
// from global state.
package ctype

import (
	"golang.org/x/exp/constraints"
)

// Locale is the capability passed to the *L classifiers.
type Locale interface {
	Name() string
}

type cLocale struct{}

func (cLocale) Name() string { return "C" }

var CLocale Locale = cLocale{}

// IsDigit reports whether c is one of '0' to '9'. Values outside the byte
// range, including negative values, are not digits.
func IsDigit[T constraints.Integer](c T) bool {
	return c >= '0' && c <= '9'
}

// IsXDigit reports whether c is a hexadecimal digit.
func IsXDigit[T constraints.Integer](c T) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func IsDigitL(c int, loc Locale) bool  { return IsDigit(c) }
func IsXDigitL(c int, loc Locale) bool { return IsXDigit(c) }
