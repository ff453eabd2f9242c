// @MX:ANCHOR: [AUTO] main is the only entry point of the modular binary; any command error exits 1.
// @MX:REASON: [AUTO] delegates to cli.Execute, which owns the command tree
package main

import (
	"os"

	"github.com/modu-ai/modular/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
