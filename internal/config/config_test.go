package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/sim"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "ar" {
		t.Errorf("expected model ar, got %s", cfg.Model)
	}
	if cfg.N <= 0 {
		t.Error("n should be positive")
	}
	if cfg.Params.Sigma != 1 {
		t.Errorf("expected sigma 1, got %f", cfg.Params.Sigma)
	}
}

func TestDefaultConfigFor(t *testing.T) {
	assert.Equal(t, 250, DefaultConfigFor("stock").N)
	assert.Equal(t, 100, DefaultConfigFor("noise").N)
	assert.Equal(t, 200, DefaultConfigFor("arima").N)
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tslab.yaml")

	cfg := DefaultConfig()
	cfg.Model = "arima"
	cfg.Seed = 99
	cfg.Params.Phi = []float64{0.4, -0.2}
	cfg.Params.D = 2
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, writeFile(path, "model: ma\nparams:\n  theta: [0.9]\n"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ma", cfg.Model)
	assert.Equal(t, []float64{0.9}, cfg.Params.Theta)
	assert.Equal(t, DefaultN, cfg.N)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, writeFile(path, "n: [not a number\n"))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ar", "ar2")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Phi[1] != 0.3 {
		t.Errorf("expected phi2 0.3, got %f", cfg.Params.Phi[1])
	}

	cfg.Params.Phi[0] = 0
	assert.Equal(t, 0.5, GetPreset("ar", "ar2").Params.Phi[0], "presets must not be shared")
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("ar", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "ar2")
	if cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestPresetsCoverRegistry(t *testing.T) {
	for _, model := range experiment.NewRegistry().ListModels() {
		names := ListPresets(model)
		require.NotEmpty(t, names, model)
		for _, name := range names {
			assert.Equal(t, model, GetPreset(model, name).Model)
		}
	}
	assert.Nil(t, ListPresets("nonexistent"))
}

func TestRanges(t *testing.T) {
	for _, model := range experiment.NewRegistry().ListModels() {
		for _, name := range ParamNames(model) {
			r, ok := Ranges[name]
			require.True(t, ok, name)
			assert.Less(t, r.Min, r.Max, name)
			assert.Contains(t, sim.ParamNames, name)
		}
	}

	r := Ranges["period"]
	assert.Equal(t, 4.0, r.Clamp(1))
	assert.Equal(t, 24.0, r.Clamp(100))
	assert.Equal(t, 12.0, r.Clamp(12))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
