// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"fmt"
	"strings"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// ReferenceScheme selects where the value a byte sum is compared against
// comes from.
type ReferenceScheme byte

// These are the available reference schemes.
const (
	// ReferenceLiteral uses an expected value supplied by the caller.
	ReferenceLiteral ReferenceScheme = iota + 1

	// ReferenceHeaderField reads the octal chksum field stored in the first
	// header block of the input.
	ReferenceHeaderField

	// ReferenceHeaderComputed computes the tar checksum of the first header
	// block of the input.
	ReferenceHeaderComputed
)

var referenceNames = map[ReferenceScheme]string{
	ReferenceLiteral:        "literal",
	ReferenceHeaderField:    "header-field",
	ReferenceHeaderComputed: "header",
}

// ReferenceNames is the set of names accepted by ParseReferenceScheme.
var ReferenceNames = stringset.New(len(referenceNames))

func init() {
	for _, n := range referenceNames {
		ReferenceNames.Add(n)
	}
}

// Valid returns nil iff the ReferenceScheme is valid.
func (s ReferenceScheme) Valid() error {
	if _, ok := referenceNames[s]; !ok {
		return errors.Reason("unknown reference scheme 0x%x", byte(s)).Err()
	}
	return nil
}

func (s ReferenceScheme) String() string {
	if n, ok := referenceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("ReferenceScheme(0x%x)", byte(s))
}

// NeedsHeader is true if the scheme reads the first header block of the input.
func (s ReferenceScheme) NeedsHeader() bool {
	return s == ReferenceHeaderField || s == ReferenceHeaderComputed
}

// Resolve produces the reference value for a scheme which NeedsHeader.
func (s ReferenceScheme) Resolve(h *Header) (int64, error) {
	switch s {
	case ReferenceHeaderField:
		if err := h.CheckMagic(); err != nil {
			return 0, err
		}
		return h.StoredChecksum()
	case ReferenceHeaderComputed:
		unsigned, _ := h.Checksum()
		return unsigned, nil
	}
	if err := s.Valid(); err != nil {
		return 0, err
	}
	return 0, errors.Reason("reference scheme %s does not read the header", s).Err()
}

// ParseReferenceScheme maps a scheme name to its ReferenceScheme. The empty
// string is ReferenceLiteral.
func ParseReferenceScheme(name string) (ReferenceScheme, error) {
	if name == "" {
		return ReferenceLiteral, nil
	}
	for s, n := range referenceNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Reason("unknown reference scheme %q (expected %s)",
		name, strings.Join(ReferenceNames.ToSortedSlice(), "|")).Err()
}
