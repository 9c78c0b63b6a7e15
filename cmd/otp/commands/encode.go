// Package commands implements CLI command handlers for otp.
package commands

import (
	"fmt"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	onetimepad "gitlab.com/yawning/onetimepad.git"
)

// EncodeCommand holds configuration for the encode command.
type EncodeCommand struct {
	pad     string
	noColor bool
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand() *cobra.Command {
	ec := &EncodeCommand{}

	cmd := &cobra.Command{
		Use:   "encode [plaintext]",
		Short: "Encode plain text to cipher text",
		Long:  "Encode plain text to cipher text, consuming one pad symbol per input symbol.",
		Args:  cobra.ExactArgs(1),
		RunE:  ec.run,
	}

	cmd.Flags().StringVarP(&ec.pad, "pad", "p", "", "Pad text to use; randomly generated when omitted")
	cmd.Flags().BoolVar(&ec.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (ec *EncodeCommand) run(cmd *cobra.Command, args []string) error {
	if ec.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	otp, err := newPad(cmd)
	if err != nil {
		return err
	}

	plainText := args[0]
	if ec.pad != "" {
		err = otp.PushToPad(ec.pad)
		if err != nil {
			return fmt.Errorf("failed to encode: %w", err)
		}
	} else {
		otp.GeneratePad(utf8.RuneCountInString(plainText))
	}

	res, err := otp.Encode(plainText)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}

	// The pad and label go to stderr so the cipher text is clean for piping.
	label := color.New(color.FgCyan)
	label.Fprintf(cmd.ErrOrStderr(), "       Pad: %s\n", res.Pad)
	label.Fprintf(cmd.ErrOrStderr(), "Ciphertext: ")
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", res.CipherText)

	return nil
}

// newPad builds the engine from the persistent --alphabet flag.
func newPad(cmd *cobra.Command) (*onetimepad.OneTimePad, error) {
	alphabet, err := cmd.Flags().GetString("alphabet")
	if err != nil {
		return nil, err
	}

	if alphabet == "" {
		return onetimepad.New(), nil
	}

	return onetimepad.NewWithAlphabet(alphabet)
}
