// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

func listPackages(t *testing.T) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "vvforecast/...", "vvforecast-core/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	var list []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		list = append(list, p)
	}
	return list
}

func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".") && !strings.HasPrefix(first, "vvforecast")
}

// The model core stays pure: stdlib and its own packages only.
func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range listPackages(t) {
		if !strings.HasPrefix(p.ImportPath, "vvforecast-core/") {
			continue
		}
		for _, dep := range p.Imports {
			if !isStdlib(dep) && !strings.HasPrefix(dep, "vvforecast-core/") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core import violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

func TestImportBoundaries(t *testing.T) {
	presentation := []string{
		"vvforecast/internal/cli", "vvforecast/internal/server",
		"vvforecast/internal/appshell", "vvforecast/cmd/",
	}
	bans := map[string][]string{
		"vvforecast/pkg/api":          append([]string{"vvforecast/internal/"}, presentation...),
		"vvforecast/internal/format":  append([]string{"vvforecast/internal/output", "vvforecast/internal/writers"}, presentation...),
		"vvforecast/internal/output":  append([]string{"vvforecast/internal/writers", "vvforecast/internal/sweep"}, presentation...),
		"vvforecast/internal/pretty":  append([]string{"vvforecast/internal/output", "vvforecast/internal/writers"}, presentation...),
		"vvforecast/internal/writers": append([]string{"vvforecast/internal/sweep"}, presentation...),
		"vvforecast/internal/sweep":   append([]string{"vvforecast/internal/output", "vvforecast/internal/writers"}, presentation...),
		"vvforecast/internal/params":  presentation,
		"vvforecast/internal/config":  presentation,
		"vvforecast/internal/server":  {"vvforecast/internal/cli", "vvforecast/cmd/"},
	}

	var violations []string
	for _, p := range listPackages(t) {
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, prefix+"/") {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
