package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDecodeCommand creates the decode command.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [ciphertext] [pad]",
		Short: "Decode cipher text back to plain text",
		Long:  "Decode cipher text back to plain text. The ciphertext and pad arguments are interchangeable.",
		Args:  cobra.ExactArgs(2),
		RunE:  runDecode,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	otp, err := newPad(cmd)
	if err != nil {
		return err
	}

	err = otp.PushToPad(args[1])
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	plainText, err := otp.Decode(args[0])
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", plainText)

	return nil
}
