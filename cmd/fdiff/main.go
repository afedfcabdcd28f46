package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/jakujobi/Math374Project1/internal/config"
	"github.com/jakujobi/Math374Project1/internal/diff"
	"github.com/jakujobi/Math374Project1/internal/export"
	"github.com/jakujobi/Math374Project1/internal/storage"
	"github.com/jakujobi/Math374Project1/internal/sweep"
	"github.com/jakujobi/Math374Project1/internal/tui"
)

var (
	dataDir    string
	hMinExp    int
	hMaxExp    int
	points     int
	eps        float64
	configFile string
	preset     string
	// SVG output
	outDir    string
	svgWidth  int
	svgHeight int
)

// main registers commands and flags and launches the interactive TUI
// when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fdiff",
		Short: "finite-difference error analysis lab for f(x) = sin(x) at x = 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fdiff", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run an error sweep over a log-spaced range of step sizes",
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&hMinExp, "h-min", sweep.DefaultMinExp, "smallest exponent k of the largest step size 10^-k")
	sweepCmd.Flags().IntVar(&hMaxExp, "h-max", sweep.DefaultMaxExp, "largest exponent k of the smallest step size 10^-k")
	sweepCmd.Flags().IntVar(&points, "points", sweep.DefaultPoints, "number of step sizes")
	sweepCmd.Flags().Float64Var(&eps, "eps", sweep.DefaultEps, "machine epsilon")
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	optimalCmd := &cobra.Command{
		Use:   "optimal",
		Short: "print the optimal step size and minimum error for each formula",
		RunE:  runOptimal,
	}
	optimalCmd.Flags().Float64Var(&eps, "eps", sweep.DefaultEps, "machine epsilon")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweeps",
		RunE:  listSweeps,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [sweep_id]",
		Short: "plot a stored sweep as terminal log-log charts",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSweep,
	}

	showCmd := &cobra.Command{
		Use:   "show [sweep_id]",
		Short: "print sweep metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showSweep,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [sweep_id]",
		Short: "write sweep data to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [sweep_id]",
		Short: "write sweep data to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [sweep_id]",
		Short: "render a stored sweep to SVG charts",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	svgCmd.Flags().IntVar(&svgWidth, "width", 640, "chart width in pixels")
	svgCmd.Flags().IntVar(&svgHeight, "height", 480, "chart height in pixels")

	compareCmd := &cobra.Command{
		Use:   "compare [eps1] [eps2] ...",
		Short: "compare optimal points across machine epsilons",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareEps,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sweep presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(sweepCmd, optimalCmd, listCmd, plotCmd, showCmd, exportCSVCmd, exportJSONCmd, svgCmd, compareCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override preset and config file.
	if cmd.Flags().Changed("h-min") {
		cfg.HMinExp = hMinExp
	}
	if cmd.Flags().Changed("h-max") {
		cfg.HMaxExp = hMaxExp
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = points
	}
	if cmd.Flags().Changed("eps") {
		cfg.Eps = eps
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	hs, err := cfg.StepSizes()
	if err != nil {
		return err
	}

	series, err := diff.ComputeSeries(hs, cfg.Eps)
	if err != nil {
		return err
	}
	optimal, err := diff.ComputeOptimalPoints(cfg.Eps)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	sweepID, err := st.Save(cfg.HMinExp, cfg.HMaxExp, cfg.Points, cfg.Eps, series, optimal)
	if err != nil {
		return err
	}

	fmt.Printf("sweep of %d step sizes, h in [1e-%d, 1e-%d], eps = %.6e\n\n", cfg.Points, cfg.HMaxExp, cfg.HMinExp, cfg.Eps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tERR_FWD\tERR_CTR\tTRUNC_FWD\tTRUNC_CTR\tROUND_FWD\tROUND_CTR")
	for _, rec := range series {
		fmt.Fprintf(w, "%.3e\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\n",
			rec.H, rec.ErrForward, rec.ErrCentral,
			rec.TruncForward, rec.TruncCentral,
			rec.RoundForward, rec.RoundCentral)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	printOptimal(optimal)
	fmt.Printf("\nsweep id: %s\n", sweepID)
	return nil
}

func runOptimal(cmd *cobra.Command, args []string) error {
	optimal, err := diff.ComputeOptimalPoints(eps)
	if err != nil {
		return err
	}
	fmt.Printf("eps = %.6e\n\n", eps)
	printOptimal(optimal)
	return nil
}

func printOptimal(optimal diff.OptimalPoints) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORMULA\tH_OPT\tMIN_ERROR")
	fmt.Fprintf(w, "forward (sqrt(2*eps))\t%.4e\t%.4e\n", optimal.Forward.H, optimal.Forward.MinError)
	fmt.Fprintf(w, "central ((3*eps)^(1/3))\t%.4e\t%.4e\n", optimal.Central.H, optimal.Central.MinError)
	w.Flush()
}

func listSweeps(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	sweeps, err := st.List()
	if err != nil {
		return err
	}

	if len(sweeps) == 0 {
		fmt.Println("no sweeps found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tRANGE\tPOINTS\tEPS")
	for _, s := range sweeps {
		fmt.Fprintf(w, "%s\t%s\t[1e-%d, 1e-%d]\t%d\t%.2e\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.HMaxExp,
			s.HMinExp,
			s.Points,
			s.Eps,
		)
	}
	return w.Flush()
}

func plotSweep(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("sweep: %s\n", meta.ID)
	fmt.Printf("eps: %.6e\n", meta.Eps)
	fmt.Printf("samples: %d\n\n", len(series))

	charts := []struct {
		caption string
		curves  [][]float64
	}{
		{
			caption: "forward difference: log10 actual / truncation / rounding vs log10(h)",
			curves:  [][]float64{logCurve(series.ErrForward()), logCurve(series.TruncForward()), logCurve(series.RoundForward())},
		},
		{
			caption: "central difference: log10 actual / truncation / rounding vs log10(h)",
			curves:  [][]float64{logCurve(series.ErrCentral()), logCurve(series.TruncCentral()), logCurve(series.RoundCentral())},
		},
	}

	for _, chart := range charts {
		graph := asciigraph.PlotMany(chart.curves,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(chart.caption),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func logCurve(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log10(v)
	}
	return out
}

func showSweep(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"h", "err_fwd", "err_ctr", "trunc_fwd", "trunc_ctr", "round_fwd", "round_ctr"}); err != nil {
		return err
	}
	for _, rec := range series {
		row := []string{
			strconv.FormatFloat(rec.H, 'e', -1, 64),
			strconv.FormatFloat(rec.ErrForward, 'e', -1, 64),
			strconv.FormatFloat(rec.ErrCentral, 'e', -1, 64),
			strconv.FormatFloat(rec.TruncForward, 'e', -1, 64),
			strconv.FormatFloat(rec.TruncCentral, 'e', -1, 64),
			strconv.FormatFloat(rec.RoundForward, 'e', -1, 64),
			strconv.FormatFloat(rec.RoundCentral, 'e', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	out := struct {
		Meta   *storage.SweepMetadata `json:"meta"`
		Series diff.Series            `json:"series"`
	}{Meta: meta, Series: series}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("no data to render")
	}

	fwd := diff.OptimalPoint{H: meta.OptimalForward.H, MinError: meta.OptimalForward.MinError}
	ctr := diff.OptimalPoint{H: meta.OptimalCentral.H, MinError: meta.OptimalCentral.MinError}

	outputs := []struct {
		name string
		svg  string
	}{
		{name: meta.ID + "_forward.svg", svg: export.ForwardChart(series, fwd, svgWidth, svgHeight)},
		{name: meta.ID + "_central.svg", svg: export.CentralChart(series, ctr, svgWidth, svgHeight)},
	}

	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := os.WriteFile(path, []byte(out.svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func compareEps(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EPS\tH_OPT_FWD\tMIN_ERR_FWD\tH_OPT_CTR\tMIN_ERR_CTR")

	for _, arg := range args {
		e, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid eps %q: %w", arg, err)
		}
		optimal, err := diff.ComputeOptimalPoints(e)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%.2e\t%.4e\t%.4e\t%.4e\t%.4e\n",
			e,
			optimal.Forward.H, optimal.Forward.MinError,
			optimal.Central.H, optimal.Central.MinError)
	}
	return w.Flush()
}
