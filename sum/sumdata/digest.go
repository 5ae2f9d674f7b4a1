// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sumdata

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// DigestScheme is a content digest which can be computed alongside the byte
// sum.
type DigestScheme byte

// These are the available digest algorithms.
const (
	DigestNone DigestScheme = iota
	DigestSHA2_256
	DigestSHA2_512
	DigestBLAKE2s
	DigestBLAKE2b
	DigestSHA3_256
	DigestSHA3_512
)

var digestNames = map[DigestScheme]string{
	DigestSHA2_256: "sha2-256",
	DigestSHA2_512: "sha2-512",
	DigestBLAKE2s:  "blake2s",
	DigestBLAKE2b:  "blake2b",
	DigestSHA3_256: "sha3-256",
	DigestSHA3_512: "sha3-512",
}

// DigestNames is the set of names accepted by ParseDigestScheme.
var DigestNames = stringset.New(len(digestNames))

func init() {
	for _, n := range digestNames {
		DigestNames.Add(n)
	}
}

// Valid returns nil iff the DigestScheme is valid. DigestNone is valid.
func (d DigestScheme) Valid() error {
	if d == DigestNone {
		return nil
	}
	if _, ok := digestNames[d]; !ok {
		return errors.Reason("unknown digest scheme 0x%x", byte(d)).Err()
	}
	return nil
}

func (d DigestScheme) String() string {
	if d == DigestNone {
		return "none"
	}
	if n, ok := digestNames[d]; ok {
		return n
	}
	return fmt.Sprintf("DigestScheme(0x%x)", byte(d))
}

// Hash gets the Hash associated with this scheme. It returns nil for
// DigestNone and panics for invalid schemes.
func (d DigestScheme) Hash() hash.Hash {
	var h hash.Hash
	switch d {
	case DigestNone:
		return nil
	case DigestSHA2_256:
		h = sha256.New()
	case DigestSHA2_512:
		h = sha512.New()
	case DigestBLAKE2s:
		h, _ = blake2s.New256(nil)
	case DigestBLAKE2b:
		h, _ = blake2b.New512(nil)
	case DigestSHA3_256:
		h = sha3.New256()
	case DigestSHA3_512:
		h = sha3.New512()
	}
	if h == nil {
		panic(d.Valid())
	}
	return h
}

// ParseDigestScheme maps a digest name to its DigestScheme. The empty string
// and "none" are DigestNone.
func ParseDigestScheme(name string) (DigestScheme, error) {
	if name == "" || name == "none" {
		return DigestNone, nil
	}
	for d, n := range digestNames {
		if n == name {
			return d, nil
		}
	}
	return 0, errors.Reason("unknown digest %q (expected one of %s)",
		name, strings.Join(DigestNames.ToSortedSlice(), ", ")).Err()
}
