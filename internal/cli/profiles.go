// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/riannucci/tarsum/internal/profile"
	"github.com/riannucci/tarsum/sum/sumdata"
)

func profilesCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := g.profiles()
			if err != nil {
				return err
			}
			printProfiles(cmd.OutOrStdout(), set)
			return nil
		},
	}
}

func printProfiles(w io.Writer, set profile.Set) {
	for _, name := range set.Names() {
		p := set[name]

		expect := "-"
		if p.Expect != nil {
			expect = strconv.FormatInt(*p.Expect, 10)
		}
		octal := "<stdin>"
		if p.Octal != nil {
			octal = strconv.Quote(*p.Octal)
		}

		fmt.Fprintf(w, "%s\n", name)
		fmt.Fprintf(w, "  path:      %s\n", p.Path)
		fmt.Fprintf(w, "  reference: %s (expect %s)\n", p.Reference, expect)
		fmt.Fprintf(w, "  octal:     %s (%s digits)\n", octal, p.Digits)
		if p.Digest != sumdata.DigestNone {
			fmt.Fprintf(w, "  digest:    %s\n", p.Digest)
		}
	}
}
