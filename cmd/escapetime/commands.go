package main

import (
	"fmt"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/escapetime/internal/analysis"
	"github.com/san-kum/escapetime/internal/config"
	"github.com/san-kum/escapetime/internal/experiment"
	"github.com/san-kum/escapetime/internal/orbit"
	"github.com/san-kum/escapetime/internal/storage"
	"github.com/san-kum/escapetime/internal/trace"
	"github.com/san-kum/escapetime/internal/viz"
)

func runDefault(cmd *cobra.Command, args []string) error {
	w := trace.NewWriter(cmd.OutOrStdout())
	orbit.Iterate(config.DefaultConfig().Params(), w)
	return w.Err()
}

// resolveConfig applies preset, then config file, then flags the user set
// explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	// without a preset or file the flag defaults are the compiled-in values
	bare := preset == "" && configFile == ""
	flags := cmd.Flags()
	if bare || flags.Changed("cre") {
		cfg.CRe = cRe
	}
	if bare || flags.Changed("cim") {
		cfg.CIm = cIm
	}
	if bare || flags.Changed("iter") {
		cfg.MaxIter = maxIter
	}
	if bare || flags.Changed("radius") {
		cfg.Radius = radius
	}
	if bare && cfg.Params() != orbit.DefaultParams() {
		cfg.Name = "custom"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newExperiment(cfg *config.Config) (*experiment.Experiment, error) {
	exp := experiment.New(cfg)
	registry := experiment.NewRegistry()
	if err := exp.Setup(registry.DefaultMetrics(cfg.Radius)); err != nil {
		return nil, err
	}
	return exp, nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := trace.NewWriter(cmd.OutOrStdout())
	observers := []orbit.Observer{w}

	var rec *orbit.Recorder
	if save {
		rec = orbit.NewRecorder()
		observers = append(observers, rec)
	}

	exp, err := newExperiment(cfg)
	if err != nil {
		return err
	}
	out, err := exp.Run(observers...)
	if err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return err
	}

	p := cfg.Params()

	if summary {
		fmt.Fprintln(cmd.OutOrStdout(), viz.Summary(cfg.Name, p, out))
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Name, p, out, rec.Records)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "run id: %s\n", runID)
	}

	return nil
}

func viewOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	exp, err := newExperiment(cfg)
	if err != nil {
		return err
	}
	rec := orbit.NewRecorder()
	out, err := exp.Run(rec)
	if err != nil {
		return err
	}
	return viz.RunPager(rec.Records, out)
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tC_RE\tC_IM\tMAX_ITER\tRADIUS")
	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			name,
			trace.FormatDecimal(p.CRe),
			trace.FormatDecimal(p.CIm),
			p.MaxIter,
			trace.FormatDecimal(p.Radius),
		)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tC\tSTEPS\tESCAPE")

	for _, run := range runs {
		escape := "-"
		if run.Escaped {
			escape = fmt.Sprintf("%d", run.EscapeStep)
		}
		fmt.Fprintf(w, "%s\t%s\t(%s, %s)\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			trace.FormatDecimal(run.CRe),
			trace.FormatDecimal(run.CIm),
			run.Steps,
			escape,
		)
	}

	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []orbit.Record, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	records, err := st.LoadOrbit(runID)
	if err != nil {
		return nil, nil, err
	}
	return meta, records, nil
}

// asciigraph draws NaN as a gap but cannot scale infinities. ok is false
// when nothing finite is left to draw.
func plottable(data []float64) (out []float64, ok bool) {
	out = make([]float64, len(data))
	for i, v := range data {
		if math.IsInf(v, 0) {
			v = math.NaN()
		}
		if !math.IsNaN(v) {
			ok = true
		}
		out[i] = v
	}
	return out, ok
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return fmt.Errorf("%s: %w", meta.ID, orbit.ErrNoRecords)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "c: (%s, %s)\n", trace.FormatDecimal(meta.CRe), trace.FormatDecimal(meta.CIm))
	fmt.Fprintf(out, "records: %d\n\n", len(records))

	re, im := analysis.Components(records)
	series := []struct {
		caption string
		data    []float64
	}{
		{"|z|^2", analysis.Magnitudes(records)},
		{"z_real", re},
		{"z_imag", im},
	}

	for _, s := range series {
		data, ok := plottable(s.data)
		if !ok {
			fmt.Fprintf(out, "%s: no finite values\n\n", s.caption)
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(args[0])
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return fmt.Errorf("%s: %w", meta.ID, orbit.ErrNoRecords)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "orbit analysis: %s\n", meta.ID)
	if meta.Escaped {
		fmt.Fprintf(out, "escaped at step %d\n", meta.EscapeStep)
	} else {
		fmt.Fprintf(out, "bounded for %d steps\n", meta.Steps)
	}

	if period, ok := analysis.DetectCycle(records, cycleTol, maxPeriod); ok {
		fmt.Fprintf(out, "cycle: period %d\n", period)
	} else {
		fmt.Fprintln(out, "cycle: none found")
	}

	fmt.Fprintf(out, "lyapunov exponent: %.6f\n", analysis.LyapunovExponent(records))

	re, _ := analysis.Components(records)
	period, err := analysis.DominantPeriod(re)
	switch {
	case err != nil:
		// a single record has no spectrum
		fmt.Fprintln(out, "dominant period: n/a")
	case math.IsInf(period, 1):
		fmt.Fprintln(out, "dominant period: none (constant)")
	default:
		fmt.Fprintf(out, "dominant period: %.3f steps\n", period)
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, records, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta, records)
}
