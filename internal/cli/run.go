// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/tarsum/sum"
)

func runCmd(g *globalOptions) *cobra.Command {
	var profileName string

	c := &cobra.Command{
		Use:   "run",
		Short: "Sum a profile's file, then convert its octal input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			set, err := g.profiles()
			if err != nil {
				return err
			}
			p, err := set.Get(profileName)
			if err != nil {
				return err
			}
			logging.Debugf(ctx, "running profile %q", p.Name)

			r, err := sum.File(ctx, p.Path, p.SumOptions()...)
			if err != nil {
				return errors.Annotate(err, "profile %q", p.Name).Err()
			}
			if err := r.Print(cmd.OutOrStdout()); err != nil {
				return err
			}

			return octalInput{}.fromProfile(p).convert(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	c.Flags().StringVarP(&profileName, "profile", "p", "header", "profile to run")
	return c
}
