// internal/writers/distribution.go
package writers

import (
	"encoding/json"
	"io"

	"vvforecast-core/poisson"
	"vvforecast/internal/jsonutil"
	"vvforecast/internal/output"
	"vvforecast/internal/pretty"
	"vvforecast/pkg/api"
)

func init() {
	RegisterDistribution(output.FormatText, func(w io.Writer, d api.DistributionV1, opt Options) error {
		if err := output.WriteDistributionTSV(w, d, opt.Header); err != nil {
			return err
		}
		if !opt.Pretty {
			return nil
		}
		terms := make([]poisson.Term, 0, len(d.Terms))
		for _, t := range d.Terms {
			terms = append(terms, poisson.Term{K: t.K, P: t.P})
		}
		_, err := io.WriteString(w, pretty.RenderDistributionWithOptions(d.Lambda, terms, opt.PrettyOptions))
		return err
	})
	RegisterDistribution(output.FormatJSON, func(w io.Writer, d api.DistributionV1, _ Options) error {
		return jsonutil.EncodePretty(w, d)
	})
	RegisterDistribution(output.FormatJSONL, func(w io.Writer, d api.DistributionV1, _ Options) error {
		enc := json.NewEncoder(w)
		for _, t := range d.Terms {
			if err := enc.Encode(t); err != nil {
				return err
			}
		}
		return nil
	})
}
