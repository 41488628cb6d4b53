// internal/clibase/examples.go
package clibase

// Example blocks shown by `--help` for each command.
const (
	ForecastExamples = `  # default run (λ=3, 27.7 h doubling, 3e6 cells/mL, 100 vp/cell)
  vvforecast forecast

  # lower MOI, faster cells, full JSON with the series
  vvforecast forecast --lambda 1 --doubling-time 20 -o json`

	SeriesExamples = `  # 6-hourly table from seeding to day 7
  vvforecast series

  # daily JSONL from a preset, ASCII chart in text mode
  vvforecast series --config preset.yaml --step-hours 24 -o jsonl
  vvforecast series --pretty`

	PoissonExamples = `  # P(X=k) for k=0..12 with bars
  vvforecast poisson --lambda 3 --pretty

  # a single term
  vvforecast poisson --lambda 0.5 --k 2`

	SweepExamples = `  # efficiency and yield across the MOI slider
  vvforecast sweep --param lambda --from 0.1 --to 5.5 --step 0.05

  # doubling-time sensitivity as JSON, 4 workers
  vvforecast sweep --param doubling-time --from 10 --to 72 --step 1 -o json --threads 4`

	ServeExamples = `  vvforecast serve --addr :9090
  curl 'localhost:9090/api/v1/forecast?lambda=2&burst_size=250'`
)
