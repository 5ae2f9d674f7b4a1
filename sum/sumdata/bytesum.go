// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"io"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/iotools"
)

// ByteSum is the result of SumNonZero.
type ByteSum struct {
	// Sum is the sum of every non-zero byte value in the stream.
	Sum uint64

	// Read is the number of bytes consumed from the stream.
	Read int64

	// NonZero is the number of bytes which contributed to Sum.
	NonZero int64
}

// SumNonZero reads r one byte at a time until io.EOF and adds up the value of
// every byte which is not zero. Zero bytes are skipped, so they count towards
// Read but not NonZero.
//
// Any error other than io.EOF aborts the sum and is returned along with the
// partial ByteSum.
func SumNonZero(r io.Reader) (ret ByteSum, err error) {
	cr := &iotools.CountingReader{Reader: r}
	br := newByteReader(cr)
	defer func() { ret.Read = cr.Count }()

	for {
		b, rerr := br.ReadByte()
		if rerr == io.EOF {
			return
		}
		if rerr != nil {
			err = errors.Annotate(rerr, "reading byte %d", cr.Count).Err()
			return
		}
		if b != 0 {
			ret.Sum += uint64(b)
			ret.NonZero++
		}
	}
}
