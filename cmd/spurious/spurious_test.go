package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gospurious/crossval"
	"github.com/sartorproj/gospurious/datasets"
)

func TestLoadScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	content := `scenarios:
  - name: walks
    trials: 50
    length: 80
    noise_sd: 2.0
  - name: trended
    trend: 1.5
    horizon: 3
    seed: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	scenarios, err := loadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "walks", scenarios[0].Name)
	assert.Equal(t, 50, scenarios[0].Trials)
	assert.Equal(t, 80, scenarios[0].Length)
	assert.Equal(t, 2.0, scenarios[0].NoiseSD)

	assert.Equal(t, "trended", scenarios[1].Name)
	assert.Equal(t, 1.5, scenarios[1].Trend)
	assert.Equal(t, 3, scenarios[1].Horizon)
	assert.Equal(t, uint64(7), scenarios[1].Seed)
}

func TestLoadScenariosEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: []\n"), 0o644))

	_, err := loadScenarios(path)
	assert.Error(t, err)
}

func TestRunScenariosRendersTable(t *testing.T) {
	var buf bytes.Buffer
	err := runScenarios(&buf, []Scenario{
		{Name: "smoke", Trials: 5, Length: 60, NoiseSD: 1, Horizon: 1},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "smoke")
	assert.Contains(t, out, "Rate")
}

func TestPrintReportVerdict(t *testing.T) {
	y := datasets.AusAirPassengers()
	x := datasets.GuineaRice()

	res, err := crossval.Detect(y, x, crossval.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	printReport(&buf, y, x, res)

	out := buf.String()
	assert.Contains(t, out, "SPURIOUS")
	assert.Contains(t, out, "naive drift")
	assert.Contains(t, out, "Ljung-Box")
}
