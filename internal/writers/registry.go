// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/pretty"
	"vvforecast/pkg/api"
)

// Options shared by every writer. Writers ignore what they do not use.
type Options struct {
	Header        bool
	Pretty        bool
	PrettyOptions pretty.Options
	// InfectionHour places the marker in pretty series blocks.
	InfectionHour float64
}

type (
	SeriesFunc       func(io.Writer, []bioprocess.Point, Options) error
	DistributionFunc func(io.Writer, api.DistributionV1, Options) error
	SweepFunc        func(io.Writer, []api.SweepRowV1, Options) error
)

// Writer registries (format → handler), filled from init() blocks.
var (
	SeriesWriters       = map[string]SeriesFunc{}
	DistributionWriters = map[string]DistributionFunc{}
	SweepWriters        = map[string]SweepFunc{}
)

// Register helpers (idempotent last-wins)
func RegisterSeries(format string, fn SeriesFunc) { SeriesWriters[format] = fn }
func RegisterDistribution(format string, fn DistributionFunc) { DistributionWriters[format] = fn }
func RegisterSweep(format string, fn SweepFunc) { SweepWriters[format] = fn }

func WriteSeries(format string, w io.Writer, pts []bioprocess.Point, opt Options) error {
	fn, ok := SeriesWriters[format]
	if !ok {
		return fmt.Errorf("unknown series format %q (no writer registered)", format)
	}
	return fn(w, pts, opt)
}

func WriteDistribution(format string, w io.Writer, d api.DistributionV1, opt Options) error {
	fn, ok := DistributionWriters[format]
	if !ok {
		return fmt.Errorf("unknown distribution format %q (no writer registered)", format)
	}
	return fn(w, d, opt)
}

func WriteSweep(format string, w io.Writer, rows []api.SweepRowV1, opt Options) error {
	fn, ok := SweepWriters[format]
	if !ok {
		return fmt.Errorf("unknown sweep format %q (no writer registered)", format)
	}
	return fn(w, rows, opt)
}

// Formats lists the registered format names of a registry, sorted.
func Formats[F any](registry map[string]F) []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
