package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mMerlin/stl2scad/internal/config"
	"github.com/mMerlin/stl2scad/internal/logger"
	"github.com/mMerlin/stl2scad/pkg/convert"
)

var (
	convertConfigFile  string
	convertMode        string
	convertSplit       bool
	convertAnalyze     bool
	convertPrecision   int
	convertIndent      string
	convertScadVersion string
	convertOutputDir   string
	convertForce       bool
	convertVerbose     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert STL files to OpenSCAD module files",
	Long: `Convert one or more STL files to OpenSCAD scripts. By default each
input produces a single .scad file with a deduplicated point table. With
--split, a mesh containing several disjoint closed surfaces produces one
module file per surface plus a wrapper script that loads them all.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertConfigFile, "config", "", "Path to a YAML options file")
	convertCmd.Flags().StringVarP(&convertMode, "mode", "m", config.ModeDedup, "Conversion mode: raw, dedup or split")
	convertCmd.Flags().BoolVarP(&convertSplit, "split", "s", false, "Output separate modules for each disjoint surface (same as --mode split)")
	convertCmd.Flags().BoolVarP(&convertAnalyze, "analyze", "a", false, "Check the mesh for manifold integrity problems")
	convertCmd.Flags().IntVarP(&convertPrecision, "precision", "p", 9, "Significant digits for point coordinates")
	convertCmd.Flags().StringVarP(&convertIndent, "indent", "i", "\t", "Indent unit for generated OpenSCAD")
	convertCmd.Flags().StringVarP(&convertScadVersion, "scad-version", "C", "current", "OpenSCAD compatibility version: current or 2014.03")
	convertCmd.Flags().StringVarP(&convertOutputDir, "output-dir", "d", "", "Directory for generated files (default: next to each input)")
	convertCmd.Flags().BoolVarP(&convertForce, "force", "f", false, "Overwrite existing output files")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "V", false, "Show verbose output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := config.Load(convertConfigFile)
	if err != nil {
		return err
	}

	// CLI flags override file and default values.
	if cmd.Flags().Changed("mode") {
		opts.Mode = convertMode
	}
	if convertSplit {
		opts.Mode = config.ModeSplit
	}
	if convertAnalyze {
		opts.Analyze = true
	}
	if cmd.Flags().Changed("precision") {
		opts.Precision = convertPrecision
	}
	if cmd.Flags().Changed("indent") {
		opts.Indent = convertIndent
	}
	if cmd.Flags().Changed("scad-version") {
		opts.ScadVersion = convertScadVersion
	}
	if cmd.Flags().Changed("output-dir") {
		opts.OutputDir = convertOutputDir
	}
	if convertForce {
		opts.Force = true
	}
	if convertVerbose {
		opts.Logging.Level = "debug"
	}

	if err := opts.Validate(); err != nil {
		return err
	}
	if err := logger.Init(opts.Logging.Level, opts.Logging.LogFile); err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return convert.Files(ctx, args, opts)
}
