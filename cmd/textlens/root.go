// ABOUTME: Root cobra command for the textlens command line tool
// ABOUTME: Holds global flags and registers the subcommands

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags
var version = "dev"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textlens",
		Short: "Analyze text for statistics, keywords and sentiment",
		Long: `textlens reports character and sentence statistics, the most frequent
keywords and a sentiment label with a short summary for a piece of text.

Text can be passed inline, read from a file or standard input, or fetched
from a web page. Configuration is read from the same environment variables
as the API server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(NewAnalyzeCmd())

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
