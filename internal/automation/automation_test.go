package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/logging"
	"github.com/san-kum/tslab/internal/sim"
)

const scenarioYAML = `
name: demo
description: two steps
steps:
  - name: persistent
    model: ar
    n: 40
    seed: 3
    params:
      phi1: 0.9
  - model: arima
    preset: random-walk-diff
    n: 30
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", sc.Name)
	require.Len(t, sc.Steps, 2)
	assert.Equal(t, 0.9, sc.Steps[0].Params["phi1"])
	assert.Equal(t, "random-walk-diff", sc.Steps[1].Preset)
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), logging.Discard())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "persistent", results[0].Name)
	assert.Len(t, results[0].Result.Series, 40)
	assert.Equal(t, int64(3), results[0].Result.Seed)

	assert.Equal(t, "arima-2", results[1].Name)
	assert.Len(t, results[1].Result.Series, 30)
	assert.Equal(t, "ARIMA(1,1,0) [ar-differenced]", results[1].Result.Label)
}

func TestRunScenario_StopsAtFailure(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Model: "noise", N: 10},
		{Model: "ar", N: 10, Params: map[string]float64{"gamma": 1}},
		{Model: "ma", N: 10},
	}}

	results, err := RunScenario(context.Background(), sc, experiment.NewRegistry(), logging.Discard())
	require.ErrorIs(t, err, sim.ErrUnknownParam)
	assert.Len(t, results, 1)

	sc = &Scenario{Steps: []ScenarioStep{{Model: "ar", Preset: "missing"}}}
	_, err = RunScenario(context.Background(), sc, experiment.NewRegistry(), logging.Discard())
	assert.Error(t, err)
}

func TestRunSweep(t *testing.T) {
	sweep := &ParameterSweep{
		Model:     "ar",
		ParamName: "phi1",
		ParamMin:  0,
		ParamMax:  1,
		NumSteps:  5,
		N:         300,
		Seed:      11,
		Base:      sim.DefaultParams(),
	}

	results, err := RunSweep(context.Background(), sweep, experiment.NewRegistry(), logging.Discard())
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.InDelta(t, 0.0, results[0].ParamValue, 1e-12)
	assert.InDelta(t, 0.5, results[2].ParamValue, 1e-12)
	assert.InDelta(t, 1.0, results[4].ParamValue, 1e-12)
	assert.True(t, results[3].Stationary)
	assert.False(t, results[4].Stationary)
	assert.Greater(t, results[3].ACF1, results[0].ACF1)
	assert.Equal(t, []float64{0.7}, sweep.Base.Phi, "base params must not change")
}

func TestRunSweep_Errors(t *testing.T) {
	reg := experiment.NewRegistry()

	_, err := RunSweep(context.Background(), &ParameterSweep{Model: "ar", ParamName: "phi1", NumSteps: 0, N: 10}, reg, logging.Discard())
	assert.ErrorIs(t, err, sim.ErrInvalidParam)

	_, err = RunSweep(context.Background(), &ParameterSweep{Model: "ar", ParamName: "kappa", NumSteps: 2, N: 10}, reg, logging.Discard())
	assert.ErrorIs(t, err, sim.ErrUnknownParam)

	_, err = RunSweep(context.Background(), &ParameterSweep{Model: "ar", ParamName: "sigma", NumSteps: 2, N: 0}, reg, logging.Discard())
	assert.ErrorIs(t, err, sim.ErrInvalidLength)
}

func TestRunMonteCarlo(t *testing.T) {
	cfg := &MonteCarloConfig{
		Model:     "noise",
		Params:    sim.DefaultParams(),
		N:         50,
		NumTrials: 200,
		Seed:      100,
	}

	res, err := RunMonteCarlo(context.Background(), cfg, experiment.NewRegistry(), logging.Discard())
	require.NoError(t, err)
	require.Len(t, res.Trials, 200)
	assert.Equal(t, int64(105), res.Trials[5].Seed)
	assert.Equal(t, 50, res.Trials[5].Summary.N)
	require.Len(t, res.MeanAt, 50)

	for t0 := range res.MeanAt {
		assert.InDelta(t, 0, res.MeanAt[t0], 0.35)
		assert.InDelta(t, 1, res.StdDevAt[t0], 0.25)
	}

	again, err := RunMonteCarlo(context.Background(), cfg, experiment.NewRegistry(), logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, res.MeanAt, again.MeanAt)
}

func TestRunMonteCarlo_Errors(t *testing.T) {
	reg := experiment.NewRegistry()

	_, err := RunMonteCarlo(context.Background(), &MonteCarloConfig{Model: "ar", N: 10, NumTrials: 0}, reg, logging.Discard())
	assert.ErrorIs(t, err, sim.ErrInvalidParam)

	_, err = RunMonteCarlo(context.Background(), &MonteCarloConfig{Model: "nope", N: 10, NumTrials: 2}, reg, logging.Discard())
	assert.ErrorIs(t, err, sim.ErrUnknownModel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunMonteCarlo(ctx, &MonteCarloConfig{Model: "ar", Params: sim.DefaultParams(), N: 10, NumTrials: 4}, reg, logging.Discard())
	assert.ErrorIs(t, err, context.Canceled)
}
