// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package tarsum sums the bytes of a tar header the way one does by hand when
// checking it against the stored checksum, and converts the octal numeric
// fields of such headers to integers.
//
// The byte sum skips zero bytes: it is the sum of every non-zero byte of the
// input. It is printed next to a reference value, which is either a literal
// supplied by the caller or derived from the first 512-byte header block of
// the input:
//   * literal: an expected value from a flag or profile.
//   * header-field: the octal chksum field stored in the header.
//   * header: the tar checksum of the header, which sums all 512 bytes with
//     the chksum field counted as eight spaces.
//
// The non-zero sum is not the tar checksum, and neither is adjusted to match
// the other.
//
// Octal conversion rejects anything but '0'-'7' unless the legacy decimal
// digit mode is selected, in which '8' and '9' are weighted like other digits.
//
// Layout:
//   * sum/sumdata: byte sum, octal parsing, header block, reference and digest
//     schemes.
//   * sum: File and Reader, the Report they produce, and octal input.
//   * internal/profile: YAML presets.
//   * internal/cli: the tarsum command.
package tarsum
