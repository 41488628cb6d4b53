package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"vvforecast-core/bioprocess"
	"vvforecast-core/poisson"
	"vvforecast/internal/jsonutil"
	"vvforecast/internal/output"
	"vvforecast/internal/runutil"
	"vvforecast/pkg/api"
)

// MaxKMax bounds the Poisson table size of one request.
const MaxKMax = 10_000

type forecastKey struct {
	lambda, dt, seed, burst uint64
	infection, end, step    uint64
}

func keyOf(in bioprocess.Inputs, w bioprocess.Window) forecastKey {
	return forecastKey{
		lambda:    runutil.FloatKey(in.Lambda),
		dt:        runutil.FloatKey(in.DoublingTimeHours),
		seed:      runutil.FloatKey(in.SeedDensity),
		burst:     runutil.FloatKey(in.BurstSize),
		infection: runutil.FloatKey(w.InfectionHour),
		end:       runutil.FloatKey(w.EndHour),
		step:      runutil.FloatKey(w.StepHours),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports err as 400; field errors name the offending input.
func writeError(w http.ResponseWriter, status int, err error) {
	body := api.ErrorV1{Error: err.Error()}
	var fe *bioprocess.FieldError
	var ae *poisson.ArgError
	switch {
	case errors.As(err, &fe):
		body.Field = fe.Field
	case errors.As(err, &ae):
		body.Field = ae.Arg
	}
	writeJSON(w, status, body)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// floatParam reads an optional float query parameter.
func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q", name, raw)
	}
	// JSON cannot carry NaN or Inf back to the client.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number, got %q", name, raw)
	}
	return v, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("malformed %s %q", name, raw)
	}
	return v, nil
}

func strictParam(q url.Values) (bool, error) {
	raw := q.Get("strict")
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("malformed strict %q", raw)
	}
	return v, nil
}

func (s *Server) getForecast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in, win := s.Config.Defaults, s.Config.Window
	params := []struct {
		name string
		dst  *float64
	}{
		{"lambda", &in.Lambda},
		{"doubling_time", &in.DoublingTimeHours},
		{"seed_density", &in.SeedDensity},
		{"burst_size", &in.BurstSize},
		{"infection_hour", &win.InfectionHour},
		{"end_hour", &win.EndHour},
		{"step_hours", &win.StepHours},
	}
	for _, p := range params {
		v, err := floatParam(q, p.name, *p.dst)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		*p.dst = v
	}
	strict, err := strictParam(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.serveForecast(w, in, win, strict)
}

func (s *Server) postForecast(w http.ResponseWriter, r *http.Request) {
	strict, err := strictParam(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// Pre-fill so omitted fields keep the defaults.
	win := output.ToAPIWindow(s.Config.Window)
	req := api.ForecastRequestV1{InputsV1: output.ToAPIInputs(s.Config.Defaults), Window: &win}
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Window == nil {
		req.Window = &win
	}
	s.serveForecast(w, output.FromAPIInputs(req.InputsV1), output.FromAPIWindow(*req.Window), strict)
}

func (s *Server) serveForecast(w http.ResponseWriter, in bioprocess.Inputs, win bioprocess.Window, strict bool) {
	if strict {
		if err := in.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := win.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	key := keyOf(in, win)
	if v, ok := s.cache.Get(key); ok {
		s.metrics.cacheHits.Inc()
		writeJSON(w, http.StatusOK, v)
		return
	}
	s.metrics.cacheMisses.Inc()
	o, pts := bioprocess.Evaluate(in, win)
	v := output.ToAPIForecast(in, win, o, pts)
	s.cache.Put(key, v)
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) getPoisson(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lambda, err := floatParam(q, "lambda", s.Config.Defaults.Lambda)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	strict, err := strictParam(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if q.Get("k") != "" {
		k, err := intParam(q, "k", 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if strict {
			if err := poisson.Check(k, lambda); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
		}
		writeJSON(w, http.StatusOK, output.ToAPIPMF(k, lambda))
		return
	}
	kMax, err := intParam(q, "k_max", 12)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if kMax < 0 || kMax > MaxKMax {
		writeError(w, http.StatusBadRequest, fmt.Errorf("k_max must be in [0, %d], got %d", MaxKMax, kMax))
		return
	}
	if strict {
		if err := poisson.Check(0, lambda); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, output.ToAPIDistribution(lambda, kMax))
}
