// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package sum

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/tarsum/sum/sumdata"
)

// OctalPrompt is written before reading octal digits interactively.
const OctalPrompt = "size octal: "

// ReadOctal writes OctalPrompt to prompt (if non-nil), reads a single line
// from in and converts it with sumdata.ParseOctal.
//
// Surrounding whitespace, including the line terminator, is ignored.
func ReadOctal(ctx context.Context, in io.Reader, prompt io.Writer, mode sumdata.DigitMode) (uint64, error) {
	if prompt != nil {
		if _, err := io.WriteString(prompt, OctalPrompt); err != nil {
			return 0, err
		}
	}

	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, errors.Annotate(err, "reading octal input").Err()
		}
		return 0, errors.New("no octal input")
	}
	line := strings.TrimSpace(sc.Text())
	logging.Debugf(ctx, "read octal input %q", line)

	return Octal(ctx, line, mode)
}

// Octal converts s with sumdata.ParseOctal, logging the result.
func Octal(ctx context.Context, s string, mode sumdata.DigitMode) (uint64, error) {
	v, err := sumdata.ParseOctal(s, mode)
	if err != nil {
		return 0, err
	}
	logging.Debugf(ctx, "octal %q (%s digits) = %d", s, mode, v)
	return v, nil
}

// PrintOctal writes the labelled result of an octal conversion.
func PrintOctal(w io.Writer, v uint64) error {
	_, err := fmt.Fprintf(w, "octal to int: %d\n", v)
	return err
}
