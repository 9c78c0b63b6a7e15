// Package main provides the entry point for the otp CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/yawning/onetimepad.git/cmd/otp/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "otp",
		Short: "One time pad encoder and decoder",
		Long: `otp encodes and decodes text with a one time pad over a configurable alphabet.

Commands:
  encode    Encode plain text to cipher text
  decode    Decode cipher text back to plain text`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("alphabet", "",
		"Custom alphabet (default: the 95 symbol printable ASCII alphabet)")

	rootCmd.AddCommand(commands.NewEncodeCommand())
	rootCmd.AddCommand(commands.NewDecodeCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
