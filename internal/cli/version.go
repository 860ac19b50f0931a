// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/go-fea/gofea2d/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the gofea2d version number",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("gofea2d v%s\n", version.Version)
		if version.GitCommit != "unknown" {
			io.Pf("commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			io.Pf("built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
