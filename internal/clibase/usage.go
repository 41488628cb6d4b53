// internal/clibase/usage.go
package clibase

import (
	"fmt"

	"vvforecast/internal/version"
)

// LongDescription is the shared header of the root help text.
func LongDescription(name string) string {
	return fmt.Sprintf(`%s – viral-vector production forecast

Projects cell growth, infection efficiency (Poisson, k=0 escapes) and
viral yield for a batch culture infected at a chosen multiplicity.
Undefined results are shown as "—" (text) or null (JSON).

Version: %s`, name, version.Version)
}
