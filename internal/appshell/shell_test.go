package appshell

import (
	"context"
	"io"
	"testing"
)

func TestExec_EmptyArgvShowsHelp(t *testing.T) {
	var got []string
	code := Exec(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	if code != 0 || len(got) != 1 || got[0] != "--help" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}

func TestExec_PassesCode(t *testing.T) {
	code := Exec(func(context.Context, []string, io.Writer, io.Writer) int { return 3 }, []string{"x"}, io.Discard, io.Discard)
	if code != 3 {
		t.Fatalf("want 3, got %d", code)
	}
}
