// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command respx sends a request through a respx.Client and prints how
// the response was resolved.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogama/respx/internal/commands"
)

var version = "dev" // Set during build

func main() {
	rootCmd := &cobra.Command{
		Use:   "respx",
		Short: "Resolve HTTP responses from the command line",
		Long: `respx sends a request, classifies the response against the configured
success and retry codes, retries where allowed, decodes the body, and
prints the delivered result.

Configuration is read from defaults, an optional YAML file, and RESPX_*
environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		commands.NewGetCommand(),
		commands.NewVersionCommand(version),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
