// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package cli implements the tarsum command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/riannucci/tarsum/internal/profile"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	verbose      bool
	profilesPath string
}

func (g *globalOptions) profiles() (profile.Set, error) {
	if g.profilesPath == "" {
		return profile.Defaults(), nil
	}
	return profile.Load(g.profilesPath)
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "tarsum",
		Short:        "tarsum sums the non-zero bytes of a file and converts octal sizes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg := gologger.StdConfig
			cfg.Out = cmd.ErrOrStderr()
			ctx := cfg.Use(cmd.Context())

			level := logging.Warning
			if g.verbose {
				level = logging.Debug
			}
			cmd.SetContext(logging.SetLevel(ctx, level))
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&g.profilesPath, "profiles", "", "YAML profile file (built-in profiles if omitted)")

	cmd.AddCommand(
		sumCmd(g),
		octalCmd(g),
		runCmd(g),
		profilesCmd(g),
		versionCmd(),
	)
	return cmd
}
