// cmd/vvforecast/main.go
package main

import (
	"vvforecast/internal/appshell"
	"vvforecast/internal/cli"
)

func main() { appshell.Main(cli.RunContext) }
