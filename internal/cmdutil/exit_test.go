package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"

	"vvforecast-core/bioprocess"
	"vvforecast-core/poisson"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"broken pipe", fmt.Errorf("write: %w", syscall.EPIPE), ExitOK},
		{"cancelled", fmt.Errorf("sweep: %w", context.Canceled), ExitCancelled},
		{"usage", Usagef("bad --output %q", "xml"), ExitUsage},
		{"field", fmt.Errorf("strict: %w", &bioprocess.FieldError{Field: "lambda", Value: -1, Reason: "must be ≥ 0"}), ExitUsage},
		{"poisson arg", poisson.Check(-1, 3), ExitUsage},
		{"io", errors.New("open preset.yaml: no such file"), ExitIO},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestUsageError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := error(&UsageError{Err: inner})
	if !errors.Is(err, inner) || err.Error() != "inner" {
		t.Fatalf("unwrap/message broken: %v", err)
	}
}
