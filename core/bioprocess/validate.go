// core/bioprocess/validate.go
package bioprocess

import (
	"fmt"

	"vvforecast-core/num"
)

// FieldError names the first input outside its domain.
type FieldError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks each input against its domain, in declaration order.
func (in Inputs) Validate() error {
	switch {
	case !num.Defined(in.Lambda):
		return &FieldError{"lambda", in.Lambda, "must be finite"}
	case in.Lambda < 0:
		return &FieldError{"lambda", in.Lambda, "must be ≥ 0"}
	case !num.Defined(in.DoublingTimeHours):
		return &FieldError{"doubling_time_hours", in.DoublingTimeHours, "must be finite"}
	case in.DoublingTimeHours <= 0:
		return &FieldError{"doubling_time_hours", in.DoublingTimeHours, "must be > 0"}
	case !num.Defined(in.SeedDensity):
		return &FieldError{"seed_density", in.SeedDensity, "must be finite"}
	case in.SeedDensity <= 0:
		return &FieldError{"seed_density", in.SeedDensity, "must be > 0"}
	case !num.Defined(in.BurstSize):
		return &FieldError{"burst_size", in.BurstSize, "must be finite"}
	}
	return nil
}

// Validate checks that the window can be sampled.
func (w Window) Validate() error {
	switch {
	case !num.Defined(w.InfectionHour):
		return &FieldError{"infection_hour", w.InfectionHour, "must be finite"}
	case w.InfectionHour < 0:
		return &FieldError{"infection_hour", w.InfectionHour, "must be ≥ 0"}
	case !num.Defined(w.EndHour):
		return &FieldError{"end_hour", w.EndHour, "must be finite"}
	case w.EndHour < 0:
		return &FieldError{"end_hour", w.EndHour, "must be ≥ 0"}
	case !num.Defined(w.StepHours):
		return &FieldError{"step_hours", w.StepHours, "must be finite"}
	case w.StepHours <= 0:
		return &FieldError{"step_hours", w.StepHours, "must be > 0"}
	}
	if _, ok := w.count(); !ok {
		return &FieldError{"step_hours", w.StepHours, fmt.Sprintf("yields more than %d points", MaxPoints)}
	}
	return nil
}

// EvaluateStrict validates inputs and window before evaluating.
func EvaluateStrict(in Inputs, w Window) (Outputs, []Point, error) {
	if err := in.Validate(); err != nil {
		return Outputs{}, nil, err
	}
	if err := w.Validate(); err != nil {
		return Outputs{}, nil, err
	}
	out, pts := Evaluate(in, w)
	return out, pts, nil
}
