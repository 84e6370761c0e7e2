package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stefasaur/bank-bee-csv/internal/schema"
)

func newBanksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported banks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range schema.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s (%s, %s)\n", s.ID, s.Name, s.DateFormat, s.CurrencySymbol)
			}
			return nil
		},
	}
}
