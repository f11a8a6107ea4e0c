package cli

import (
	"fmt"

	"github.com/alovak/cardcheck/card"
	"github.com/alovak/cardcheck/internal/cardgen"
	"github.com/spf13/cobra"
)

// GenCmd returns the gen command
func GenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random Luhn-valid test numbers for a network",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}
	cmd.Flags().String("network", "visa", "Network: amex|visa|mastercard")
	cmd.Flags().Int("length", 0, "Number length (defaults to the network's first accepted length)")
	cmd.Flags().Int("count", 1, "How many numbers to generate")
	return cmd
}

func runGen(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("network")
	length, _ := cmd.Flags().GetInt("length")
	count, _ := cmd.Flags().GetInt("count")

	network, err := card.ParseNetwork(name)
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		pan, err := cardgen.Generate(network, length)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pan)
	}
	return nil
}
