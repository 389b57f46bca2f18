// Package main is the single-binary entrypoint for Ritual.
// One binary, local state, no accounts.
package main

import "github.com/ritualforge/ritual/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
