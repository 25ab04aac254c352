// Command cadcodec converts drawings between DXF interchange text, command
// scripts and JSON or YAML document values.
package main

import (
	"os"

	"github.com/tsawler/cadcodec/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
