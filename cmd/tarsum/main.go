// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command tarsum sums the non-zero bytes of a file next to a reference
// checksum, and converts octal size strings to integers.
package main

import "github.com/riannucci/tarsum/internal/cli"

func main() {
	cli.Execute()
}
