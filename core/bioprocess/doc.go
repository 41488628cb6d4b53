// Package bioprocess forecasts a two-phase viral-vector production run:
// exponential growth of a seeded culture until the infection timepoint, a
// Poisson-distributed infection at MOI λ, then continued growth of the cells
// that escaped infection.
//
// Everything here is a pure function of its arguments. Numeric edge cases
// never panic or error; they degrade to NaN (the undefined marker) and the
// rest of the result is still produced. EvaluateStrict is the fail-fast
// alternative for callers that prefer a validation error.
//
// It never imports internal/ packages; keep it domain-only.
package bioprocess
