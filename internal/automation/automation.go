package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/sim"
	"github.com/san-kum/tslab/internal/stochastic"
)

// Scenario defines a scripted sequence of generation runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run. Params are applied by name on top of the
// preset (or the model defaults when Preset is empty).
type ScenarioStep struct {
	Name   string             `yaml:"name"`
	Model  string             `yaml:"model"`
	Preset string             `yaml:"preset"`
	N      int                `yaml:"n"`
	Seed   int64              `yaml:"seed"`
	Params map[string]float64 `yaml:"params"`
}

type StepResult struct {
	Name   string
	Result *sim.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s ScenarioStep) config() (*config.Config, error) {
	cfg := config.DefaultConfigFor(s.Model)
	if s.Preset != "" {
		cfg = config.GetPreset(s.Model, s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for model %s", s.Preset, s.Model)
		}
	}
	if s.N != 0 {
		cfg.N = s.N
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	for name, v := range s.Params {
		if err := cfg.Params.Set(name, v); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// RunScenario executes all steps in order, stopping at the first failure.
// Results of the steps that completed are returned along with the error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, log *slog.Logger) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", step.Model, i+1)
		}
		log.Info("running step", "step", i+1, "of", len(scenario.Steps), "name", name, "model", step.Model)

		cfg, err := step.config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		result, err := experiment.Execute(ctx, registry, cfg.ExperimentConfig())
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		results = append(results, StepResult{Name: name, Result: result})
	}

	return results, nil
}

// ParameterSweep runs one model across evenly spaced values of a parameter
type ParameterSweep struct {
	Model     string
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	N         int
	Seed      int64
	Base      sim.Params
}

// SweepResult holds the statistics of one sweep point
type SweepResult struct {
	ParamValue float64
	Label      string
	Mean       float64
	StdDev     float64
	ACF1       float64
	Stationary bool
}

// RunSweep executes a parameter sweep. Every point uses the same seed so
// differences come from the parameter alone.
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry, log *slog.Logger) ([]SweepResult, error) {
	if sweep.NumSteps < 1 {
		return nil, &sim.ParamError{Name: "steps", Err: sim.ErrInvalidParam}
	}
	if _, err := sweep.Base.Get(sweep.ParamName); err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, sweep.NumSteps)

	paramStep := 0.0
	if sweep.NumSteps > 1 {
		paramStep = (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)
	}

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		params := sweep.Base.Clone()
		if err := params.Set(sweep.ParamName, paramVal); err != nil {
			return nil, err
		}

		result, err := experiment.Execute(ctx, registry, experiment.Config{
			Model:  sweep.Model,
			N:      sweep.N,
			Seed:   sweep.Seed,
			Params: params,
		})
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Label:      result.Label,
			Mean:       result.Metrics["mean"],
			StdDev:     result.Metrics["stddev"],
			ACF1:       result.Metrics["acf1"],
			Stationary: analysis.IsStationary(params.Phi),
		})

		log.Debug("sweep point", "step", i+1, "of", sweep.NumSteps, sweep.ParamName, paramVal)
	}

	return results, nil
}

// MonteCarloConfig defines an ensemble of independent runs of one model
type MonteCarloConfig struct {
	Model     string
	Params    sim.Params
	N         int
	NumTrials int
	Seed      int64
}

// TrialSummary describes one run of the ensemble
type TrialSummary struct {
	TrialID int
	Seed    int64
	Summary analysis.Summary
}

// MonteCarloResult holds per-trial summaries and the pointwise mean and
// standard deviation across trials.
type MonteCarloResult struct {
	Trials   []TrialSummary
	MeanAt   []float64
	StdDevAt []float64
}

// RunMonteCarlo runs NumTrials independent series concurrently; trial i
// uses seed Seed+i.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry, log *slog.Logger) (*MonteCarloResult, error) {
	if cfg.N <= 0 {
		return nil, fmt.Errorf("%w, got %d", sim.ErrInvalidLength, cfg.N)
	}
	if cfg.NumTrials < 1 {
		return nil, &sim.ParamError{Name: "runs", Err: sim.ErrInvalidParam}
	}

	gen, err := registry.GetModel(cfg.Model, cfg.Params)
	if err != nil {
		return nil, err
	}

	log.Info("monte carlo", "model", cfg.Model, "trials", cfg.NumTrials, "n", cfg.N, "seed", cfg.Seed)

	runs, err := stochastic.NewEnsemble(gen, cfg.NumTrials, cfg.Seed).Run(ctx, cfg.N)
	if err != nil {
		return nil, err
	}

	res := &MonteCarloResult{
		Trials:   make([]TrialSummary, len(runs)),
		MeanAt:   make([]float64, cfg.N),
		StdDevAt: make([]float64, cfg.N),
	}
	for i, s := range runs {
		res.Trials[i] = TrialSummary{
			TrialID: i,
			Seed:    cfg.Seed + int64(i),
			Summary: analysis.Summarize(s.Values()),
		}
	}

	column := make([]float64, 0, len(runs))
	for t := 0; t < cfg.N; t++ {
		column = column[:0]
		for _, s := range runs {
			if t < len(s) {
				column = append(column, s[t].Value)
			}
		}
		switch len(column) {
		case 0:
		case 1:
			res.MeanAt[t] = column[0]
		default:
			res.MeanAt[t], res.StdDevAt[t] = stat.MeanStdDev(column, nil)
		}
	}

	return res, nil
}
