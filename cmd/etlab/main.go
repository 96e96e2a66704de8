package main

import (
	"os"

	"github.com/etlab/etlab/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "v1.1.0"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
