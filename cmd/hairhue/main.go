// hairhue - hair colour palette, validation and prompt tooling
//
// hairhue validates salon hair colour choices, compiles them into
// image-generation prompts and serves the result over HTTP.
package main

import (
	"os"

	"github.com/jmylchreest/hairhue/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
