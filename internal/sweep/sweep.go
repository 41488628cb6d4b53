// Package sweep evaluates the forecast over a one-parameter grid with a
// bounded worker pool. Rows come back in grid order.
package sweep

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/runutil"
)

// Param names an input that can be swept.
type Param string

const (
	Lambda       Param = "lambda"
	DoublingTime Param = "doubling-time"
	SeedDensity  Param = "seed-density"
	BurstSize    Param = "burst-size"
)

// Params lists the sweepable inputs in flag order.
var Params = []Param{Lambda, DoublingTime, SeedDensity, BurstSize}

// MaxPoints bounds a single sweep.
const MaxPoints = 100_000

func ParseParam(s string) (Param, error) {
	for _, p := range Params {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown sweep parameter %q (want one of %v)", s, Params)
}

// Set returns in with the field named by p replaced by v.
func (p Param) Set(in bioprocess.Inputs, v float64) bioprocess.Inputs {
	switch p {
	case Lambda:
		in.Lambda = v
	case DoublingTime:
		in.DoublingTimeHours = v
	case SeedDensity:
		in.SeedDensity = v
	case BurstSize:
		in.BurstSize = v
	}
	return in
}

// Grid returns from, from+step, ... up to and including to.
func Grid(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("sweep range must be finite (from=%g to=%g step=%g)", from, to, step)
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("sweep step must be > 0, got %g", step)
	}
	if to < from {
		return nil, fmt.Errorf("sweep range is empty: to=%g < from=%g", to, from)
	}
	// Tolerate representation error at the upper bound.
	n := math.Floor((to-from)/step+1e-9) + 1
	if n > MaxPoints {
		return nil, fmt.Errorf("sweep has %.0f points, limit is %d", n, MaxPoints)
	}
	out := make([]float64, int(n))
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out, nil
}

// Config controls a sweep.
type Config struct {
	Param   Param
	From    float64
	To      float64
	Step    float64
	Threads int  // worker goroutines; <=0 means one per CPU
	Strict  bool // validate each grid point and stop at the first bad one
}

// Row is one evaluated grid point.
type Row struct {
	Value   float64
	Inputs  bioprocess.Inputs
	Outputs bioprocess.Outputs
}

// Run evaluates base with cfg.Param set to every grid value.
// It returns the first error encountered (including context cancellation).
func Run(ctx context.Context, base bioprocess.Inputs, cfg Config) ([]Row, error) {
	if _, err := ParseParam(string(cfg.Param)); err != nil {
		return nil, err
	}
	grid, err := Grid(cfg.From, cfg.To, cfg.Step)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(grid))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runutil.EffectiveThreads(cfg.Threads))
	for i, v := range grid {
		i, v := i, v
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in := cfg.Param.Set(base, v)
			if cfg.Strict {
				if err := in.Validate(); err != nil {
					return fmt.Errorf("%s=%g: %w", cfg.Param, v, err)
				}
			}
			rows[i] = Row{Value: v, Inputs: in, Outputs: bioprocess.Summarize(in)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early on cancellation without any worker seeing it.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
