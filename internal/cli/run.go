// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/go-fea/gofea2d/internal/config"
	"github.com/go-fea/gofea2d/internal/engine"
)

var (
	runJobFile   string
	runOutDir    string
	runPlot      bool
	runVerbose   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a 2D linear-elastic analysis from a job file",
	Long: `Reads a job (.fea.json) file describing a mesh, material and
boundary rules, solves the resulting linear system, and writes the node and
element report tables to the output directory.

Example:
  gofea2d run --file plate-hole.fea.json --out /tmp/gofea2d`,
	Run: runAnalysis,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runJobFile, "file", "f", "", "path to job .fea.json file [required]")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "/tmp/gofea2d", "output directory for report files")
	runCmd.Flags().BoolVar(&runPlot, "plot", false, "also write a von Mises stress PNG plot")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", true, "print a summary to stdout")
	runCmd.MarkFlagRequired("file")
}

func runAnalysis(cmd *cobra.Command, args []string) {
	if runVerbose {
		io.Pf("\n%v\n", io.ArgsTable(
			"job file", "file", runJobFile,
			"output directory", "out", runOutDir,
			"write plot", "plot", runPlot,
		))
	}

	job, err := config.Load(runJobFile)
	if err != nil {
		chk.Panic("failed to load job: %v", err)
	}

	if err := os.MkdirAll(runOutDir, 0777); err != nil {
		chk.Panic("failed to create output directory: %v", err)
	}

	table, err := engine.Analyze(job)
	if err != nil {
		chk.Panic("analysis failed: %v", err)
	}

	key := strings.TrimSuffix(filepath.Base(runJobFile), filepath.Ext(runJobFile))
	if err := table.WriteJSON(filepath.Join(runOutDir, key+"_results.json")); err != nil {
		chk.Panic("failed to write JSON report: %v", err)
	}
	if err := table.WriteNodesCSV(filepath.Join(runOutDir, key+"_nodes.csv")); err != nil {
		chk.Panic("failed to write node report: %v", err)
	}
	if err := table.WriteElementsCSV(filepath.Join(runOutDir, key+"_elements.csv")); err != nil {
		chk.Panic("failed to write element report: %v", err)
	}
	if runPlot {
		if err := table.PlotVonMises(filepath.Join(runOutDir, key+"_vonmises.png")); err != nil {
			chk.Panic("failed to write plot: %v", err)
		}
	}

	if runVerbose {
		io.Pf("\n%d nodes, %d elements solved\n", len(table.Nodes), len(table.Elements))
		io.PfYel("results written to %s\n\n", runOutDir)
	}
}
