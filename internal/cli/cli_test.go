package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vvforecast/internal/output"
	"vvforecast/pkg/api"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errB bytes.Buffer
	code = Run(args, &out, &errB)
	return code, out.String(), errB.String()
}

func TestExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"--help"}, 0},
		{"version", []string{"version"}, 0},
		{"unknown flag", []string{"forecast", "--bogus"}, 2},
		{"unknown command", []string{"bogus"}, 2},
		{"positional", []string{"forecast", "extra"}, 2},
		{"bad output", []string{"series", "-o", "xml"}, 2},
		{"bad number", []string{"forecast", "--lambda", "abc"}, 2},
		{"strict field", []string{"forecast", "--no-clamp", "--strict", "--doubling-time", "0"}, 2},
		{"strict poisson", []string{"poisson", "--strict", "--k", "-1"}, 2},
		{"bad k-max", []string{"poisson", "--k-max", "-1"}, 2},
		{"bad sweep param", []string{"sweep", "--param", "moi"}, 2},
		{"bad threads", []string{"sweep", "--threads", "-1"}, 2},
		{"bad sweep range", []string{"sweep", "--from", "2", "--to", "1"}, 2},
		{"missing config", []string{"forecast", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, stderr := run(t, tc.args...)
			assert.Equal(t, tc.want, code, "stderr: %s", stderr)
			if tc.want != 0 {
				assert.Contains(t, stderr, "error:")
			}
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "vvforecast version dev\n", out)
}

func TestForecast_ClampWarns(t *testing.T) {
	code, out, stderr := run(t, "forecast", "--lambda", "9")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "WARN")
	assert.Contains(t, stderr, "lambda: 9 clamped to 5.5")
	assert.Contains(t, out, "5.50 IU/cell")

	code, _, stderr = run(t, "forecast", "-q", "--lambda", "9")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr, "quiet suppresses warnings")
}

func TestForecast_LogJSON(t *testing.T) {
	code, _, stderr := run(t, "forecast", "--log-json", "--lambda", "9")
	require.Equal(t, 0, code)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(stderr)), &rec), stderr)
	assert.Equal(t, "warn", rec["level"])
	assert.Equal(t, "lambda", rec["field"])
	assert.Contains(t, rec["msg"], "clamped to 5.5")
}

func TestUsageMessages(t *testing.T) {
	_, _, stderr := run(t, "poisson", "--k-max", "20000")
	assert.Contains(t, stderr, "error: --k-max must be in [0, 10000], got 20000")

	_, _, stderr = run(t, "sweep", "--threads", "-2")
	assert.Contains(t, stderr, "error: --threads must be ≥ 0, got -2")
}

func TestForecast_NoClampShowsUndefined(t *testing.T) {
	code, out, _ := run(t, "forecast", "--no-clamp", "--doubling-time", "0")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cell density at day 5     —")
	assert.Contains(t, out, "95.02%")
}

func TestForecast_JSON(t *testing.T) {
	code, out, _ := run(t, "forecast", "-o", "json")
	require.Equal(t, 0, code)
	var v api.ForecastV1
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Len(t, v.Series, 29)
}

func TestSeries_Text(t *testing.T) {
	code, out, _ := run(t, "series", "--step-hours", "24")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, output.SeriesTSVHeader, lines[0])
}

func TestPoisson(t *testing.T) {
	code, out, _ := run(t, "poisson", "--lambda", "0", "--k", "0")
	require.Equal(t, 0, code)
	assert.Equal(t, "P(X=0; lambda=0) = 1 (100.00%)\n", out)

	code, out, _ = run(t, "poisson", "--lambda", "3", "--no-header")
	require.Equal(t, 0, code)
	assert.Equal(t, 13, strings.Count(out, "\n"))
}

func TestConfigPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inputs:\n  lambda: 1\nwindow:\n  step_hours: 24\n"), 0o644))

	code, out, stderr := run(t, "series", "--config", path, "-o", "jsonl")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, 8, strings.Count(out, "\n"))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("inputs:\n  moi: 1\n"), 0o644))
	code, _, _ = run(t, "forecast", "--config", bad)
	assert.Equal(t, 2, code, "unknown keys are a usage error")
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errB bytes.Buffer
	code := RunContext(ctx, []string{"sweep", "--param", "burst-size", "--from", "1", "--to", "1000", "--step", "1"}, &out, &errB)
	assert.Equal(t, 130, code)
	assert.Empty(t, errB.String())
}
