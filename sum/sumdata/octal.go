// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"bytes"
	"fmt"
	"math"

	"go.chromium.org/luci/common/errors"
)

// DigitMode selects which characters ParseOctal accepts as digits.
type DigitMode int

const (
	// DigitsOctal accepts only '0' through '7'.
	DigitsOctal DigitMode = iota

	// DigitsDecimal accepts '0' through '9' and weights '8' and '9' like any
	// other digit. The result is not a meaningful octal value; this mode only
	// exists to reproduce the old unvalidated conversion.
	DigitsDecimal
)

func (m DigitMode) String() string {
	switch m {
	case DigitsOctal:
		return "octal"
	case DigitsDecimal:
		return "decimal"
	}
	return fmt.Sprintf("DigitMode(%d)", int(m))
}

// ParseDigitMode maps "octal" and "decimal" to their DigitMode. The empty
// string is DigitsOctal.
func ParseDigitMode(name string) (DigitMode, error) {
	switch name {
	case "", "octal":
		return DigitsOctal, nil
	case "decimal":
		return DigitsDecimal, nil
	}
	return 0, errors.Reason("unknown digit mode %q (expected octal|decimal)", name).Err()
}

func (m DigitMode) max() byte {
	if m == DigitsDecimal {
		return '9'
	}
	return '7'
}

// BadDigitError is returned from ParseOctal when a character of the input is
// not an acceptable digit.
type BadDigitError struct {
	Input string
	Pos   int
	Char  byte
	Mode  DigitMode
}

func (e *BadDigitError) Error() string {
	return fmt.Sprintf("bad %s digit %q at position %d of %q", e.Mode, e.Char,
		e.Pos, e.Input)
}

// ParseOctal returns the value of s read as a base-8 number, most significant
// digit first: the sum of digit*8^i where i counts from the rightmost
// character. The empty string is 0 and leading zeros have no effect.
//
// No whitespace, sign or prefix is accepted.
func ParseOctal(s string, mode DigitMode) (uint64, error) {
	var ret, weight uint64 = 0, 1
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > mode.max() {
			return 0, &BadDigitError{s, i, c, mode}
		}
		d := uint64(c - '0')
		if d != 0 {
			if weight == 0 || d > (math.MaxUint64-ret)/weight {
				return 0, errors.Reason("octal value %q overflows uint64", s).Err()
			}
			ret += d * weight
		}
		// weight becomes 0 once it has shifted past 64 bits; only zeros may
		// follow after that.
		weight <<= 3
	}
	return ret, nil
}

// ParseOctalField parses a tar numeric field: optional leading spaces, octal
// digits, then NUL or space padding.
func ParseOctalField(b []byte) (uint64, error) {
	b = bytes.TrimLeft(b, " ")
	b = bytes.TrimRight(b, " \x00")
	v, err := ParseOctal(string(b), DigitsOctal)
	if err != nil {
		return 0, errors.Annotate(err, "parsing numeric field").Err()
	}
	return v, nil
}
