package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

var (
	incomeColor  = color.New(color.FgGreen)
	expenseColor = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
)

func newTransactionsCommand() *cobra.Command {
	var bankID string

	cmd := &cobra.Command{
		Use:   "transactions <statement-file>",
		Short: "Parse a statement and list its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(bankID, args[0])
			if err != nil {
				return err
			}
			if msg := sess.Diagnostic(); msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				return nil
			}

			currency := sess.Bank().CurrencySymbol
			for _, t := range sess.Transactions() {
				amount := expenseColor.Sprintf("-%s %s", t.Amount.StringFixed(2), currency)
				if t.Type == model.TypeIncome {
					amount = incomeColor.Sprintf("+%s %s", t.Amount.StringFixed(2), currency)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %14s  %-40s %s\n", t.Day(), amount, t.Description, t.Recipient)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bankID, "bank", "", "bank id (see 'bankbee banks')")
	return cmd
}
