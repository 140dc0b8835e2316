// Package cli implements schedulectl, an offline tool for trying utterances
// against schedule files.
package cli

import (
	"github.com/spf13/cobra"

	"schedule-interpreter/pkg/log"
)

var (
	timezone string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "schedulectl",
	Short:        "Interpret Croatian schedule commands offline",
	Long:         `schedulectl parses voice-style schedule commands and applies them to YAML schedule files without running the API.`,
	Version:      "0.1.0",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Europe/Zagreb", "IANA timezone used for \"today\"")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log interpreter decisions to stderr")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(importCalendarCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() log.Logger {
	if !verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{
		Level:        "debug",
		Mode:         log.ModeDebug,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})
}
