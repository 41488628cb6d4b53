// internal/writers/series.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/jsonlutil"
	"vvforecast/internal/output"
	"vvforecast/internal/pretty"
)

func init() {
	RegisterSeries(output.FormatText, func(w io.Writer, pts []bioprocess.Point, opt Options) error {
		if err := output.WriteSeriesTSV(w, pts, opt.Header); err != nil {
			return err
		}
		return writeSeriesPretty(w, pts, opt)
	})
	RegisterSeries(output.FormatJSON, func(w io.Writer, pts []bioprocess.Point, _ Options) error {
		return output.WriteSeriesJSON(w, pts)
	})
	RegisterSeries(output.FormatJSONL, func(w io.Writer, pts []bioprocess.Point, _ Options) error {
		enc := json.NewEncoder(w)
		for _, p := range pts {
			if err := encodePoint(enc, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodePoint(enc *json.Encoder, p bioprocess.Point) error {
	return enc.Encode(output.ToAPIPoint(p))
}

func writeSeriesPretty(w io.Writer, pts []bioprocess.Point, opt Options) error {
	if !opt.Pretty || len(pts) == 0 {
		return nil
	}
	_, err := io.WriteString(w, pretty.RenderSeriesWithOptions(pts, opt.InfectionHour, opt.PrettyOptions))
	return err
}

// StartSeriesJSONLWriter streams each point as one JSON line (v1).
func StartSeriesJSONLWriter(out io.Writer, bufSize int) (chan<- bioprocess.Point, <-chan error) {
	return jsonlutil.Start[bioprocess.Point](out, bufSize, encodePoint, IsBrokenPipe)
}

// StartSeriesWriter spins up a writer goroutine for series points.
// Text rows and JSONL lines are written as points arrive. Any other
// registered format gets the whole series from SeriesWriters after close.
// The caller closes the channel and reads one error from done.
func StartSeriesWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- bioprocess.Point, <-chan error) {
	if format == output.FormatJSONL {
		return StartSeriesJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan bioprocess.Point, bufSize)
	errCh := make(chan error, 1)

	fn, known := SeriesWriters[format]

	go func() {
		var err error
		switch {
		case !known:
			err = fmt.Errorf("unknown series format %q (no writer registered)", format)
		case format == output.FormatText:
			err = streamSeriesText(out, in, opt)
		default:
			var buf []bioprocess.Point
			for p := range in {
				buf = append(buf, p)
			}
			err = fn(out, buf, opt)
		}
		// Drain so senders never block after an error.
		for range in {
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func streamSeriesText(out io.Writer, in <-chan bioprocess.Point, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(out, output.SeriesTSVHeader); err != nil {
			return err
		}
	}
	var seen []bioprocess.Point
	for p := range in {
		if _, err := fmt.Fprintln(out, output.FormatPointRow(p)); err != nil {
			return err
		}
		if opt.Pretty {
			seen = append(seen, p)
		}
	}
	return writeSeriesPretty(out, seen, opt)
}
