package main

import (
	"os"

	"alfredoptarigan/talent-matcher/internal/cli"
)

// Version is set by the build script.
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
