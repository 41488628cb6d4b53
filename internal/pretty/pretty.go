// Package pretty renders ASCII bar charts of Poisson tables and cell
// populations. Every line carries the "# " prefix so a block can follow
// TSV output without breaking column parsers.
package pretty

import (
	"fmt"
	"math"
	"strings"

	"vvforecast-core/bioprocess"
	"vvforecast-core/poisson"
	"vvforecast/internal/format"
)

// Options control the ASCII rendering.
type Options struct {
	// Bar width at the largest value. If <=0, use default (40).
	Width int

	// Glyphs
	BarGlyph        string // default "█"
	EscapeGlyph     string // k=0 bar, default "░"
	UninfectedGlyph string // default "█"
	InfectedGlyph   string // default "▒"
}

// DefaultOptions is the look used by the CLI's --pretty flag.
var DefaultOptions = Options{
	Width:           40,
	BarGlyph:        "█",
	EscapeGlyph:     "░",
	UninfectedGlyph: "█",
	InfectedGlyph:   "▒",
}

const linePrefix = "# "

func (o Options) width() int {
	if o.Width <= 0 {
		return DefaultOptions.Width
	}
	return o.Width
}

func glyph(g, fallback string) string {
	if g == "" {
		return fallback
	}
	return g
}

// cells scales v against max onto [0,width]. Undefined values get no cells.
func cells(v, max float64, width int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || !(max > 0) {
		return 0
	}
	n := int(math.Round(v / max * float64(width)))
	if n > width {
		n = width
	}
	return n
}

// RenderDistribution draws one bar per term, k=0 in the escape glyph,
// followed by the escaped/infected split for lambda.
func RenderDistribution(lambda float64, terms []poisson.Term) string {
	return RenderDistributionWithOptions(lambda, terms, DefaultOptions)
}

func RenderDistributionWithOptions(lambda float64, terms []poisson.Term, opt Options) string {
	var b strings.Builder
	w := opt.width()
	fmt.Fprintf(&b, "%sPoisson lambda=%s\n", linePrefix, format.Fixed(lambda, 2))
	if len(terms) == 0 {
		b.WriteString(linePrefix + "(no distribution: lambda undefined)\n")
		return b.String()
	}
	max := 0.0
	for _, t := range terms {
		if t.P > max {
			max = t.P
		}
	}
	kw := len(fmt.Sprint(terms[len(terms)-1].K))
	for _, t := range terms {
		g := glyph(opt.BarGlyph, DefaultOptions.BarGlyph)
		if t.K == 0 {
			g = glyph(opt.EscapeGlyph, DefaultOptions.EscapeGlyph)
		}
		n := cells(t.P, max, w)
		fmt.Fprintf(&b, "%sk=%*d %s%s %7s\n",
			linePrefix, kw, t.K,
			strings.Repeat(g, n), strings.Repeat(" ", w-n),
			format.Percent(t.P))
	}
	escaped, infected := poisson.Split(lambda)
	fmt.Fprintf(&b, "%sescaped (k=0) %s, infected (k>=1) %s\n",
		linePrefix, format.Percent(escaped), format.Percent(infected))
	return b.String()
}

// RenderSeries draws one stacked bar per point: uninfected then infected.
// A marker line is inserted after the last point at or before the infection hour.
func RenderSeries(pts []bioprocess.Point, infectionHour float64) string {
	return RenderSeriesWithOptions(pts, infectionHour, DefaultOptions)
}

func RenderSeriesWithOptions(pts []bioprocess.Point, infectionHour float64, opt Options) string {
	var b strings.Builder
	w := opt.width()
	ug := glyph(opt.UninfectedGlyph, DefaultOptions.UninfectedGlyph)
	ig := glyph(opt.InfectedGlyph, DefaultOptions.InfectedGlyph)
	fmt.Fprintf(&b, "%scells/mL (%s uninfected, %s infected)\n", linePrefix, ug, ig)

	max := 0.0
	for _, p := range pts {
		if !math.IsNaN(p.Total) && !math.IsInf(p.Total, 0) && p.Total > max {
			max = p.Total
		}
	}
	marked := false
	for _, p := range pts {
		if !marked && p.Hour > infectionHour {
			fmt.Fprintf(&b, "%s%s infection at day %s\n", linePrefix, strings.Repeat("-", 10), format.Fixed(infectionHour/24, 2))
			marked = true
		}
		nu := cells(p.Uninfected, max, w)
		ni := cells(p.Infected, max, w)
		if nu+ni > w {
			ni = w - nu
		}
		fmt.Fprintf(&b, "%sday %5s %s%s%s %s\n",
			linePrefix, format.Fixed(p.Day, 2),
			strings.Repeat(ug, nu), strings.Repeat(ig, ni), strings.Repeat(" ", w-nu-ni),
			format.Count(p.Total))
	}
	return b.String()
}
