// internal/writers/sweep.go
package writers

import (
	"encoding/json"
	"io"

	"vvforecast/internal/output"
	"vvforecast/pkg/api"
)

func init() {
	RegisterSweep(output.FormatText, func(w io.Writer, rows []api.SweepRowV1, opt Options) error {
		return output.WriteSweepTSV(w, rows, opt.Header)
	})
	RegisterSweep(output.FormatJSON, func(w io.Writer, rows []api.SweepRowV1, _ Options) error {
		return output.WriteSweepJSON(w, rows)
	})
	RegisterSweep(output.FormatJSONL, func(w io.Writer, rows []api.SweepRowV1, _ Options) error {
		enc := json.NewEncoder(w)
		for _, r := range rows {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	})
}
