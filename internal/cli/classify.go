package cli

import (
	"fmt"

	"github.com/alovak/cardcheck/card"
	"github.com/spf13/cobra"
)

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify NUMBER...",
		Short: "Classify each number as AMEX, VISA, MASTERCARD or INVALID",
		Long: `Classify card numbers by issuer network.

A number is INVALID when its Luhn checksum fails or when its prefix and
length match none of:
  AMEX        34, 37           15 digits
  VISA        4                13 or 16 digits
  MASTERCARD  51-55            16 digits

Usage:
  cardcheck classify 4111111111111111
  cardcheck classify --verbose 378282246310005 5105105105105100`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
	cmd.Flags().Bool("verbose", false, "Print full numbers (otherwise masked)")
	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	out := cmd.OutOrStdout()

	for _, number := range args {
		network, err := card.Classify(number)
		if err != nil {
			return fmt.Errorf("%s: %w", displayNumber(number, verbose), err)
		}
		fmt.Fprintf(out, "%s\t%s\n", displayNumber(number, verbose), colorNetwork(network))
	}
	return nil
}
