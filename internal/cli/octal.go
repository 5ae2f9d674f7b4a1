// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/riannucci/tarsum/internal/profile"
	"github.com/riannucci/tarsum/sum"
	"github.com/riannucci/tarsum/sum/sumdata"
)

// octalInput is where the digits come from: a literal, or a prompt on in.
type octalInput struct {
	literal *string
	mode    sumdata.DigitMode
}

func (o octalInput) fromProfile(p *profile.Profile) octalInput {
	o.mode = p.Digits
	if o.literal == nil {
		o.literal = p.Octal
	}
	return o
}

func (o octalInput) convert(ctx context.Context, in io.Reader, out io.Writer) error {
	var v uint64
	var err error
	if o.literal != nil {
		v, err = sum.Octal(ctx, *o.literal, o.mode)
	} else {
		v, err = sum.ReadOctal(ctx, in, out, o.mode)
	}
	if err != nil {
		return err
	}
	return sum.PrintOctal(out, v)
}

func octalCmd(g *globalOptions) *cobra.Command {
	var profileName string
	var legacy bool

	c := &cobra.Command{
		Use:   "octal [DIGITS]",
		Short: "Convert octal digits to an integer (prompts on stdin without DIGITS)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in octalInput
			if len(args) > 0 {
				in.literal = &args[0]
			}
			if profileName != "" {
				set, err := g.profiles()
				if err != nil {
					return err
				}
				p, err := set.Get(profileName)
				if err != nil {
					return err
				}
				in = in.fromProfile(p)
			}
			if legacy {
				in.mode = sumdata.DigitsDecimal
			}
			return in.convert(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	c.Flags().StringVarP(&profileName, "profile", "p", "", "profile to take the octal input and digit mode from")
	c.Flags().BoolVar(&legacy, "legacy-digits", false, "accept 8 and 9 as digits, like the old unvalidated conversion")
	return c
}
