// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"io"

	"go.chromium.org/luci/common/errors"
)

// BlockSize is the size of a tar header block.
const BlockSize = 512

// Offsets of the header fields tarsum looks at.
const (
	chksumOffset  = 148
	chksumLen     = 8
	magicOffset   = 257
	versionOffset = 263
	versionEnd    = 265
)

const (
	magicUSTAR   = "ustar\x00"
	versionUSTAR = "00"
	magicGNU     = "ustar "
	versionGNU   = " \x00"
)

// Header is a single raw tar header block.
type Header [BlockSize]byte

// ReadHeader reads exactly one header block from r.
func ReadHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	if _, err := io.ReadFull(r, h[:]); err != nil {
		return nil, err
	}
	return h, nil
}

// CheckMagic returns nil iff the block carries either the POSIX ustar magic
// and version ("ustar\0" "00") or the old GNU one ("ustar " " \0").
func (h *Header) CheckMagic() error {
	magic := string(h[magicOffset:versionOffset])
	version := string(h[versionOffset:versionEnd])
	switch {
	case magic == magicUSTAR && version == versionUSTAR:
	case magic == magicGNU && version == versionGNU:
	case magic == magicUSTAR:
		return errors.Reason("bad version: %q", version).Err()
	default:
		return errors.Reason("bad magic: %q", magic).Err()
	}
	return nil
}

// Checksum computes the header checksum as tar defines it: the sum of all 512
// bytes with the chksum field itself counted as eight spaces.
//
// POSIX specifies unsigned byte values, but some historic tar implementations
// summed signed bytes, so both are returned.
func (h *Header) Checksum() (unsigned, signed int64) {
	for i := 0; i < len(h); i++ {
		if i == chksumOffset {
			unsigned += ' ' * chksumLen
			signed += ' ' * chksumLen
			i += chksumLen - 1
			continue
		}
		unsigned += int64(h[i])
		signed += int64(int8(h[i]))
	}
	return
}

// StoredChecksum parses the octal chksum field of the block.
func (h *Header) StoredChecksum() (int64, error) {
	v, err := ParseOctalField(h[chksumOffset : chksumOffset+chksumLen])
	if err != nil {
		return 0, errors.Annotate(err, "chksum field").Err()
	}
	return int64(v), nil
}

// HeaderCapture is an io.Writer which retains the first BlockSize bytes
// written to it and discards everything after.
type HeaderCapture struct {
	h Header
	n int
}

var _ io.Writer = (*HeaderCapture)(nil)

func (c *HeaderCapture) Write(bs []byte) (int, error) {
	c.n += copy(c.h[c.n:], bs)
	return len(bs), nil
}

// Header returns the captured block, or io.ErrUnexpectedEOF if fewer than
// BlockSize bytes were written.
func (c *HeaderCapture) Header() (*Header, error) {
	if c.n < BlockSize {
		return nil, io.ErrUnexpectedEOF
	}
	h := c.h
	return &h, nil
}
