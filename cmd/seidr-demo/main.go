package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seidr-demo",
		Short: "Demo server for the Seidr reactive state layer",
		Long: `seidr-demo serves a small server-rendered page built on Seidr.

The page is rendered with a live dependency capture embedded as an
inline script, and exposes the same observables over WebSocket so
connected clients see value changes as they happen.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
