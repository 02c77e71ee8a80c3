package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "splitqr",
	Short: "VietQR payment payloads and shareable split bills",
	Long: `splitqr builds EMV-style payment payloads for Vietnamese bank transfers
and packs shared bills into compact URL tokens. Scan-ready QR content,
bill tokens, per-payer splits and spreadsheet exports all come from the
same deterministic core, so any two people decoding the same token see
the same numbers.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envDefault returns value unless it is empty, then the environment
// fallback. Flag defaults can't read the environment directly because
// .env is loaded after flag registration.
func envDefault(value, envKey string) string {
	if value != "" {
		return value
	}
	return os.Getenv(envKey)
}
