package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/escapetime/internal/config"
)

var (
	dataDir string
	cRe     float64
	cIm     float64
	maxIter int
	radius  float64
	// Config file
	configFile string
	// Preset name
	preset string
	// run output
	save    bool
	summary bool
	// analyze
	cycleTol  float64
	maxPeriod int
)

// main builds the escapetime CLI. With no subcommand it traces the
// compiled-in constant to stdout.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "escapetime",
		Short:        "escape-time orbit of a single point under z^2 + c",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runDefault,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".escapetime", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "trace an orbit",
		Args:  cobra.NoArgs,
		RunE:  runOrbit,
	}
	addOrbitFlags(runCmd)
	runCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	runCmd.Flags().BoolVar(&summary, "summary", false, "print a summary after the trace")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "page through an orbit",
		Args:  cobra.NoArgs,
		RunE:  viewOrbit,
	}
	addOrbitFlags(viewCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "cycle and spectrum analysis of a saved orbit",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().Float64Var(&cycleTol, "tol", 1e-12, "cycle match tolerance (0 = bit-exact)")
	analyzeCmd.Flags().IntVar(&maxPeriod, "max-period", 64, "longest cycle to look for")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	rootCmd.AddCommand(runCmd, viewCmd, presetsCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd)
	return rootCmd
}

func addOrbitFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&cRe, "cre", config.DefaultCRe, "real part of c")
	cmd.Flags().Float64Var(&cIm, "cim", config.DefaultCIm, "imaginary part of c")
	cmd.Flags().IntVar(&maxIter, "iter", config.DefaultMaxIter, "iteration budget")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "divergence radius")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}
