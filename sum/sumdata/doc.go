// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package sumdata implements the low-level routines of tarsum: the non-zero
// byte sum, octal digit parsing, the 512-byte ustar header block, and the
// reference and digest schemes a sum can be reported against.
package sumdata
