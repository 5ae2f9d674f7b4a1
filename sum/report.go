// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sum

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/riannucci/tarsum/sum/sumdata"
)

// Report is the outcome of File or Reader.
type Report struct {
	// Name is the path (or label) of the input.
	Name string

	sumdata.ByteSum

	// Reference is the scheme Expected was obtained with.
	Reference sumdata.ReferenceScheme
	// Expected is the reference value, or nil if ReferenceLiteral was used
	// without WithExpected.
	Expected *int64

	// Digest is DigestNone unless WithDigest was supplied.
	Digest    sumdata.DigestScheme
	DigestSum []byte
}

// Match is true if there is a reference value and it equals the sum.
func (r *Report) Match() bool {
	return r.Expected != nil && *r.Expected >= 0 && uint64(*r.Expected) == r.Sum
}

// Print writes the labelled sum and reference lines to w, followed by the
// digest line if a digest was computed.
//
// The reference line is green when it matches the sum and red when it does
// not, unless color output is disabled.
func (r *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Sum of non-zero bytes: %d\n", r.Sum); err != nil {
		return err
	}

	var err error
	switch {
	case r.Expected == nil:
		_, err = fmt.Fprintln(w, "Reference checksum: n/a")
	case r.Match():
		_, err = color.New(color.FgGreen).Fprintf(w, "Reference checksum: %d\n", *r.Expected)
	default:
		_, err = color.New(color.FgRed).Fprintf(w, "Reference checksum: %d\n", *r.Expected)
	}
	if err != nil {
		return err
	}

	if r.Digest != sumdata.DigestNone {
		_, err = fmt.Fprintf(w, "Digest (%s): %s\n", r.Digest, hex.EncodeToString(r.DigestSum))
	}
	return err
}
