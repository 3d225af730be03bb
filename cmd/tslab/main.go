package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/automation"
	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/export"
	"github.com/san-kum/tslab/internal/logging"
	"github.com/san-kum/tslab/internal/server"
	"github.com/san-kum/tslab/internal/sim"
	"github.com/san-kum/tslab/internal/tui"
)

var (
	n         int
	seed      int64
	sigma     float64
	phi       string
	theta     string
	orderP    int
	orderD    int
	orderQ    int
	slope     float64
	noise     float64
	amplitude float64
	period    float64
	// Config file
	configFile string
	// Preset name
	preset   string
	logLevel string
	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	// ensemble
	runs int
	// serve
	addr string
)

var (
	registry = experiment.NewRegistry()
	logger   = logging.Discard()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tslab",
		Short:         "stochastic time-series lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logLevel, os.Stderr)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the explorer when no command given
			return tui.RunExplorer(registry, seed)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	generateCmd := &cobra.Command{
		Use:   "generate [model]",
		Short: "generate a series and print it as a table",
		Args:  cobra.ExactArgs(1),
		RunE:  generateSeries,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot a generated series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSeries,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [model]",
		Short: "summary, autocorrelation and spectrum of a generated series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeSeries,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [model]",
		Short: "write a generated series as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [model]",
		Short: "write a generated series as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [model]",
		Short: "write a generated series as an SVG chart to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run a model across a range of one parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "phi1", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", -0.9, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 0.9, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 7, "number of values")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [model]",
		Short: "run many independent series and show the pointwise mean",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&runs, "runs", 50, "number of runs")

	for _, c := range []*cobra.Command{generateCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, sweepCmd, ensembleCmd} {
		addSeriesFlags(c)
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tDESCRIPTION")
			for _, name := range registry.ListModels() {
				fmt.Fprintf(w, "%s\t%s\n", name, registry.Describe(name))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-18s %s\n", p, registry.Label(args[0], cfg.Params))
			}
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run the steps of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve generated series over http and websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(registry, logger).ListenAndServe(cmd.Context(), addr, os.Stderr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive terminal explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunExplorer(registry, seed)
		},
	}
	exploreCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	rootCmd.AddCommand(generateCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd,
		modelsCmd, presetsCmd, sweepCmd, scenarioCmd, ensembleCmd, serveCmd, exploreCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func addSeriesFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", config.DefaultN, "series length")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&sigma, "sigma", 1, "innovation standard deviation")
	cmd.Flags().StringVar(&phi, "phi", "0.7", "AR coefficients, comma separated")
	cmd.Flags().StringVar(&theta, "theta", "0.5", "MA coefficients, comma separated")
	cmd.Flags().IntVar(&orderP, "p", 1, "ARIMA AR order")
	cmd.Flags().IntVar(&orderD, "d", 1, "ARIMA differencing order")
	cmd.Flags().IntVar(&orderQ, "q", 1, "ARIMA MA order")
	cmd.Flags().Float64Var(&slope, "slope", 0.1, "trend slope")
	cmd.Flags().Float64Var(&noise, "noise", 1, "trend/seasonal noise amplitude")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 2, "seasonal amplitude")
	cmd.Flags().Float64Var(&period, "period", 12, "seasonal period")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig builds the run config for model. The preset is applied
// first, then the config file, then any flag set explicitly on the
// command line.
func resolveConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	if _, err := registry.GetModel(model, sim.Params{}); err != nil {
		return nil, fmt.Errorf("%w (available: %v)", err, registry.ListModels())
	}

	cfg := config.DefaultConfigFor(model)
	cfg.Seed = seed

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg.N = p.N
		cfg.Params = p.Params
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg.N = fileCfg.N
		cfg.Params = fileCfg.Params
		if fileCfg.Seed != 0 && !cmd.Flags().Changed("seed") {
			cfg.Seed = fileCfg.Seed
		}
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = n
	}
	if flags.Changed("phi") {
		coeffs, err := sim.ParseCoefficients(phi)
		if err != nil {
			return nil, &sim.ParamError{Name: "phi", Err: err}
		}
		cfg.Params.Phi = coeffs
	}
	if flags.Changed("theta") {
		coeffs, err := sim.ParseCoefficients(theta)
		if err != nil {
			return nil, &sim.ParamError{Name: "theta", Err: err}
		}
		cfg.Params.Theta = coeffs
	}

	values := map[string]float64{
		"sigma":     sigma,
		"p":         float64(orderP),
		"d":         float64(orderD),
		"q":         float64(orderQ),
		"slope":     slope,
		"noise":     noise,
		"amplitude": amplitude,
		"period":    period,
	}
	// an explicit --phi or --theta fixes the coefficients; p and q then
	// only set the order
	for _, name := range []string{"sigma", "p", "d", "q", "slope", "noise", "amplitude", "period"} {
		if !flags.Changed(name) {
			continue
		}
		if name == "p" && flags.Changed("phi") {
			cfg.Params.P = orderP
			continue
		}
		if name == "q" && flags.Changed("theta") {
			cfg.Params.Q = orderQ
			continue
		}
		if err := cfg.Params.Set(name, values[name]); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func runModel(cmd *cobra.Command, model string) (*config.Config, *sim.Result, error) {
	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return nil, nil, err
	}
	res, err := experiment.Execute(cmd.Context(), registry, cfg.ExperimentConfig())
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("generated series", "model", model, "label", res.Label, "n", cfg.N, "seed", cfg.Seed)
	return cfg, res, nil
}

func generateSeries(cmd *cobra.Command, args []string) error {
	_, res, err := runModel(cmd, args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TIME\tVALUE\t")
	for _, p := range res.Series {
		fmt.Fprintf(w, "%d\t%g\t\n", p.Time, p.Value)
	}
	return w.Flush()
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, res, err := runModel(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("model: %s\n", res.Label)
	fmt.Printf("seed: %d\n", cfg.Seed)
	fmt.Printf("samples: %d\n\n", len(res.Series))

	graph := asciigraph.Plot(res.Series.Values(),
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(res.Label),
	)
	fmt.Println(graph)
	fmt.Println()
	printMetrics(res)
	return nil
}

func printMetrics(res *sim.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEAN\tSTDDEV\tMIN\tMAX\tACF1")
	fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
		res.Metrics["mean"], res.Metrics["stddev"], res.Metrics["min"], res.Metrics["max"], res.Metrics["acf1"])
	w.Flush()
}

func analyzeSeries(cmd *cobra.Command, args []string) error {
	model := args[0]
	cfg, res, err := runModel(cmd, model)
	if err != nil {
		return err
	}
	values := res.Series.Values()

	fmt.Printf("analysis: %s (seed %d)\n\n", res.Label, cfg.Seed)
	printMetrics(res)
	fmt.Println()

	switch model {
	case "ar":
		fmt.Printf("stationary: %v\n", analysis.IsStationary(cfg.Params.Phi))
	case "arima":
		fmt.Printf("branch: %s\n", cfg.Params.ARIMA().Branch())
		fmt.Printf("stationary (ar part): %v\n", analysis.IsStationary(cfg.Params.Phi))
	}

	acf := analysis.ACF(values, 10)
	if len(acf) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "LAG\tACF\t")
		for k, v := range acf {
			fmt.Fprintf(w, "%d\t%.3f\t\n", k, v)
		}
		w.Flush()
		fmt.Println()
	}

	ps := analysis.PowerSpectrum(values)
	if len(ps) > 2 {
		graph := asciigraph.Plot(ps[1:],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if p, ok := analysis.DominantPeriod(values); ok {
		fmt.Printf("dominant period: %.2f samples\n", p)
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, res, err := runModel(cmd, args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, res.Series)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	model := args[0]
	cfg, res, err := runModel(cmd, model)
	if err != nil {
		return err
	}

	doc := export.NewDocument(model, cfg.Seed, res.Series)
	doc.Label = res.Label
	doc.Metrics = res.Metrics
	if model == "arima" {
		doc.Branch = string(cfg.Params.ARIMA().Branch())
	}
	return export.WriteJSON(os.Stdout, doc)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, res, err := runModel(cmd, args[0])
	if err != nil {
		return err
	}
	opts := export.DefaultSVGOptions()
	opts.Title = res.Label
	return export.WriteSVG(os.Stdout, res.Series, opts)
}

func runSweep(cmd *cobra.Command, args []string) error {
	model := args[0]
	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
		Model:     model,
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		N:         cfg.N,
		Seed:      cfg.Seed,
		Base:      cfg.Params,
	}, registry, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMODEL\tMEAN\tSTDDEV\tACF1\tSTATIONARY\n", sweepParam)
	for _, r := range results {
		fmt.Fprintf(w, "%.3f\t%s\t%.3f\t%.3f\t%.3f\t%v\n",
			r.ParamValue, r.Label, r.Mean, r.StdDev, r.ACF1, r.Stationary)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger.Info("scenario loaded", "name", sc.Name, "steps", len(sc.Steps))

	results, err := automation.RunScenario(cmd.Context(), sc, registry, logger)
	printScenario(results)
	return err
}

func printScenario(results []automation.StepResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMODEL\tN\tSEED\tMEAN\tSTDDEV\tACF1")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.3f\t%.3f\n",
			r.Name, r.Result.Label, len(r.Result.Series), r.Result.Seed,
			r.Result.Metrics["mean"], r.Result.Metrics["stddev"], r.Result.Metrics["acf1"])
	}
	w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	model := args[0]
	cfg, err := resolveConfig(cmd, model)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := automation.RunMonteCarlo(cmd.Context(), &automation.MonteCarloConfig{
		Model:     model,
		Params:    cfg.Params,
		N:         cfg.N,
		NumTrials: runs,
		Seed:      cfg.Seed,
	}, registry, logger)
	if err != nil {
		return err
	}
	logger.Info("ensemble done", "runs", runs, "elapsed", time.Since(start))

	graph := asciigraph.PlotMany([][]float64{res.MeanAt, band(res, 1), band(res, -1)},
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: mean ± 1 sd over %d runs", registry.Label(model, cfg.Params), runs)),
	)
	fmt.Println(graph)
	fmt.Println()

	means := make([]float64, len(res.Trials))
	for i, t := range res.Trials {
		means[i] = t.Summary.Mean
	}
	s := analysis.Summarize(means)
	fmt.Printf("run means: avg %.3f  sd %.3f  min %.3f  max %.3f\n", s.Mean, s.StdDev, s.Min, s.Max)
	return nil
}

func band(res *automation.MonteCarloResult, k float64) []float64 {
	out := make([]float64, len(res.MeanAt))
	for i := range out {
		out[i] = res.MeanAt[i] + k*res.StdDevAt[i]
	}
	return out
}
