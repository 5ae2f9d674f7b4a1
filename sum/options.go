// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sum

import (
	"github.com/riannucci/tarsum/sum/sumdata"
)

type optionData struct {
	reference sumdata.ReferenceScheme
	expected  *int64
	digest    sumdata.DigestScheme
}

func (o optionData) valid() error {
	if err := o.reference.Valid(); err != nil {
		return err
	}
	return o.digest.Valid()
}

// Option functions can be supplied to File and Reader.
type Option func(*optionData)

// WithExpected sets the literal reference value used by ReferenceLiteral.
func WithExpected(val int64) Option {
	return func(o *optionData) {
		o.expected = &val
	}
}

// WithReference selects where the reference value comes from. It defaults to
// sumdata.ReferenceLiteral.
func WithReference(val sumdata.ReferenceScheme) Option {
	return func(o *optionData) {
		o.reference = val
	}
}

// WithDigest additionally computes a digest of the input in the same pass as
// the sum.
func WithDigest(val sumdata.DigestScheme) Option {
	return func(o *optionData) {
		o.digest = val
	}
}
