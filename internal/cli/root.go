// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the gofea2d command-line interface: a cobra root
// command with "run" and "version" subcommands, grounded on gorcb's
// cmd/root.go banner pattern and on main.go's io.Pf/chk.Panic recover idiom
// for reporting pipeline errors.
package cli

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/go-fea/gofea2d/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gofea2d",
	Short: "2D linear-elastic finite element engine",
	Long: `gofea2d - 2D Linear-Elastic Finite Element Engine

A constant-strain-triangle plane-stress solver: given a mesh, a material,
and a set of boundary rules, it assembles the global stiffness matrix,
solves for nodal displacements, and recovers per-element stresses.`,
	Run: func(cmd *cobra.Command, args []string) {
		io.PfWhite("\ngofea2d v%s -- 2D Linear-Elastic FEM\n\n", version.Version)
		io.Pf("Constant-strain-triangle plane-stress solver.\n")
		io.Pf("Use 'gofea2d --help' to see available commands.\n\n")
	},
}

// Execute runs the root command, printing any error to stdout via
// io.PfRed (mirroring main.go's recover block) and exiting non-zero.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", r)
			os.Exit(1)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
