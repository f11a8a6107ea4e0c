package cli

import (
	"fmt"

	"github.com/alovak/cardcheck/card"
	"github.com/spf13/cobra"
)

// ChecksumCmd returns the checksum command
func ChecksumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checksum NUMBER...",
		Short: "Print the Luhn checksum of each number",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runChecksum,
	}
	cmd.Flags().Bool("verbose", false, "Print full numbers (otherwise masked)")
	return cmd
}

func runChecksum(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	for _, number := range args {
		sum, err := card.ComputeChecksum(number)
		if err != nil {
			return fmt.Errorf("%s: %w", displayNumber(number, verbose), err)
		}
		status := "invalid"
		if card.ValidChecksum(sum) {
			status = "valid"
		}
		fmt.Fprintf(out, "%s\t%d\t%s\n", displayNumber(number, verbose), sum, status)
	}
	return nil
}
