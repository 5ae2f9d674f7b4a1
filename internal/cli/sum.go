// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/tarsum/sum"
	"github.com/riannucci/tarsum/sum/sumdata"
)

type sumFlags struct {
	profile   string
	expect    int64
	reference string
	digest    string
}

func (f *sumFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&f.profile, "profile", "p", "", "profile to take path and reference from")
	c.Flags().Int64Var(&f.expect, "expect", 0, "literal reference checksum to print next to the sum")
	c.Flags().StringVar(&f.reference, "reference", "", "reference scheme: literal|header-field|header")
	c.Flags().StringVar(&f.digest, "digest", "", "also print a digest: sha2-256|sha2-512|blake2s|blake2b|sha3-256|sha3-512")
}

// resolve merges the profile (if any) with the flags, flags winning.
func (f *sumFlags) resolve(c *cobra.Command, g *globalOptions, args []string) (path string, opts []sum.Option, err error) {
	if f.profile != "" {
		set, err := g.profiles()
		if err != nil {
			return "", nil, err
		}
		p, err := set.Get(f.profile)
		if err != nil {
			return "", nil, err
		}
		path = p.Path
		opts = p.SumOptions()
	}
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", nil, errors.New("need a PATH or --profile")
	}

	if c.Flags().Changed("expect") {
		opts = append(opts, sum.WithExpected(f.expect))
	}
	if c.Flags().Changed("reference") {
		r, err := sumdata.ParseReferenceScheme(f.reference)
		if err != nil {
			return "", nil, err
		}
		opts = append(opts, sum.WithReference(r))
	}
	if c.Flags().Changed("digest") {
		d, err := sumdata.ParseDigestScheme(f.digest)
		if err != nil {
			return "", nil, err
		}
		opts = append(opts, sum.WithDigest(d))
	}
	return path, opts, nil
}

func sumCmd(g *globalOptions) *cobra.Command {
	f := &sumFlags{}

	c := &cobra.Command{
		Use:   "sum [PATH]",
		Short: "Sum the non-zero bytes of a file and print it with its reference checksum",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, opts, err := f.resolve(cmd, g, args)
			if err != nil {
				return err
			}
			r, err := sum.File(cmd.Context(), path, opts...)
			if err != nil {
				return err
			}
			return r.Print(cmd.OutOrStdout())
		},
	}

	f.register(c)
	return c
}
