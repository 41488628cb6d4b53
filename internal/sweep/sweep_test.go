package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"vvforecast-core/bioprocess"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGrid(t *testing.T) {
	g, err := Grid(0.1, 0.5, 0.1)
	require.NoError(t, err)
	require.Len(t, g, 5, "upper bound included despite representation error")
	assert.InDelta(t, 0.5, g[4], 1e-12)

	g, err = Grid(3, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, g)

	for name, args := range map[string][3]float64{
		"zero step": {0, 1, 0},
		"neg step":  {0, 1, -1},
		"reversed":  {2, 1, 0.5},
		"too many":  {0, 1e9, 1e-3},
		"nan bound": {0, math.NaN(), 1},
		"inf bound": {0, math.Inf(1), 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Grid(args[0], args[1], args[2])
			assert.Error(t, err)
		})
	}
}

func TestParseParam(t *testing.T) {
	for _, p := range Params {
		got, err := ParseParam(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParseParam("moi")
	assert.Error(t, err)
}

func TestRun_OrderedAndMatchesSummarize(t *testing.T) {
	base := bioprocess.DefaultInputs()
	rows, err := Run(context.Background(), base, Config{Param: Lambda, From: 0.5, To: 5.5, Step: 0.05, Threads: 8})
	require.NoError(t, err)
	require.Len(t, rows, 101)
	for i, r := range rows {
		if i > 0 {
			require.Greater(t, r.Value, rows[i-1].Value)
		}
		want := base
		want.Lambda = r.Value
		assert.Equal(t, want, r.Inputs)
		if diff := cmp.Diff(bioprocess.Summarize(want), r.Outputs, cmpopts.EquateNaNs()); diff != "" {
			t.Fatalf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	// Efficiency grows with lambda.
	assert.Greater(t, rows[100].Outputs.InfectionEfficiency, rows[0].Outputs.InfectionEfficiency)
}

func TestRun_UndefinedPointsDoNotFail(t *testing.T) {
	rows, err := Run(context.Background(), bioprocess.DefaultInputs(), Config{Param: DoublingTime, From: 0, To: 10, Step: 5, Threads: 2})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, math.IsNaN(rows[0].Outputs.Day5CellDensity), "dt=0 is undefined")
	assert.False(t, math.IsNaN(rows[1].Outputs.Day5CellDensity))
}

func TestRun_StrictStopsAtInvalid(t *testing.T) {
	_, err := Run(context.Background(), bioprocess.DefaultInputs(), Config{Param: DoublingTime, From: 0, To: 10, Step: 5, Threads: 1, Strict: true})
	var fe *bioprocess.FieldError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, "doubling_time_hours", fe.Field)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rows, err := Run(ctx, bioprocess.DefaultInputs(), Config{Param: BurstSize, From: 1, To: 1000, Step: 1, Threads: 2})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rows)
}

func TestRun_BadConfig(t *testing.T) {
	_, err := Run(context.Background(), bioprocess.DefaultInputs(), Config{Param: "nope", From: 0, To: 1, Step: 1})
	assert.Error(t, err)
	_, err = Run(context.Background(), bioprocess.DefaultInputs(), Config{Param: Lambda, From: 1, To: 0, Step: 1})
	assert.Error(t, err)
}
