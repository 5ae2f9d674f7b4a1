// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sum

import (
	"bufio"
	"context"
	"hash"
	"io"
	"os"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/tarsum/sum/sumdata"
)

// File sums the non-zero bytes of the file at path.
//
// The file is opened read-only and is closed before File returns, whether or
// not the sum succeeded.
func File(ctx context.Context, path string, options ...Option) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "opening input").Err()
	}
	defer f.Close()
	logging.Debugf(ctx, "opened %q", path)

	return Reader(ctx, path, bufio.NewReader(f), options...)
}

// Reader sums the non-zero bytes of r, reading it to the end exactly once.
//
// name only labels the returned Report.
func Reader(ctx context.Context, name string, r io.Reader, options ...Option) (*Report, error) {
	opts := optionData{
		reference: sumdata.ReferenceLiteral,
	}
	for _, o := range options {
		o(&opts)
	}
	if err := opts.valid(); err != nil {
		return nil, err
	}

	var h hash.Hash
	if opts.digest != sumdata.DigestNone {
		h = opts.digest.Hash()
		r = io.TeeReader(r, h)
	}
	var capture *sumdata.HeaderCapture
	if opts.reference.NeedsHeader() {
		capture = &sumdata.HeaderCapture{}
		r = io.TeeReader(r, capture)
	}

	s, err := sumdata.SumNonZero(r)
	if err != nil {
		return nil, errors.Annotate(err, "summing %q", name).Err()
	}
	logging.Debugf(ctx, "summed %d bytes of %q (%d non-zero): %d", s.Read, name,
		s.NonZero, s.Sum)

	ret := &Report{
		Name:      name,
		ByteSum:   s,
		Reference: opts.reference,
	}

	switch {
	case capture != nil:
		hdr, err := capture.Header()
		if err != nil {
			return nil, errors.Annotate(err, "reading first header block of %q", name).Err()
		}
		v, err := opts.reference.Resolve(hdr)
		if err != nil {
			return nil, errors.Annotate(err, "resolving %s reference", opts.reference).Err()
		}
		ret.Expected = &v
	case opts.expected != nil:
		v := *opts.expected
		ret.Expected = &v
	}
	if ret.Expected != nil {
		logging.Debugf(ctx, "reference resolved (%s): %d", opts.reference, *ret.Expected)
	}

	if h != nil {
		ret.Digest = opts.digest
		ret.DigestSum = h.Sum(nil)
	}
	return ret, nil
}
