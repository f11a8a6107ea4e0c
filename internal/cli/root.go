package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alovak/cardcheck/internal/version"
)

// NewRootCmd returns the cardcheck command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cardcheck",
		Short:   "Luhn checksum and issuer network classification for card numbers",
		Version: version.String(),
		Long: `cardcheck validates card numbers with Luhn's algorithm and classifies
valid ones as AMEX, VISA or MASTERCARD by prefix and length.

Numbers must be given as plain digits; spaces and dashes are rejected.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(ChecksumCmd())
	rootCmd.AddCommand(ClassifyCmd())
	rootCmd.AddCommand(GenCmd())
	rootCmd.AddCommand(ServeCmd())

	return rootCmd
}
