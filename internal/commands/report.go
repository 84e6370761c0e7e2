package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
	"github.com/Stefasaur/bank-bee-csv/internal/session"
)

func newReportCommand() *cobra.Command {
	var bankID, monthStr, typeStr, viewStr string

	cmd := &cobra.Command{
		Use:   "report <statement-file>",
		Short: "Aggregate a month of transactions by category, recipient, or day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if typeStr == "" {
				typeStr = cfg.Report.Type
			}
			if viewStr == "" {
				viewStr = cfg.Report.View
			}
			typ := model.TxType(typeStr)
			if typ != model.TypeIncome && typ != model.TypeExpense {
				return fmt.Errorf("unknown type %q (want income or expense)", typeStr)
			}

			sess, err := loadSession(bankID, args[0])
			if err != nil {
				return err
			}
			if msg := sess.Diagnostic(); msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				return nil
			}

			year, month, err := pickMonth(monthStr, sess)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			currency := sess.Bank().CurrencySymbol
			headerColor.Fprintf(out, "%s %04d-%02d (%s)\n", sess.Bank().Name, year, month, typ)

			switch viewStr {
			case "category":
				for _, b := range sess.Categories(year, month, typ) {
					fmt.Fprintf(out, "%-20s %12s %s  (%d transactions)\n", b.Category, b.Amount.StringFixed(2), currency, len(b.Transactions))
				}
			case "recipient":
				for _, r := range sess.Recipients(year, month, typ) {
					fmt.Fprintf(out, "%-30s %12s %s\n", r.Label, r.Amount.StringFixed(2), currency)
				}
			case "day":
				for _, d := range sess.Days(year, month, typ) {
					fmt.Fprintf(out, "%s %12s %s  (%d transactions)\n", d.Date, d.Amount.StringFixed(2), currency, d.Count)
				}
			default:
				return fmt.Errorf("unknown view %q (want category, recipient, or day)", viewStr)
			}

			headerColor.Fprintf(out, "%-20s %12s %s\n", "Total", sess.Total(year, month, typ).StringFixed(2), currency)
			return nil
		},
	}

	cmd.Flags().StringVar(&bankID, "bank", "", "bank id (see 'bankbee banks')")
	cmd.Flags().StringVar(&monthStr, "month", "", "report month as yyyy-mm (default: newest transaction's month)")
	cmd.Flags().StringVar(&typeStr, "type", "", "income or expense")
	cmd.Flags().StringVar(&viewStr, "view", "", "category, recipient, or day")
	return cmd
}

// pickMonth parses --month, or falls back to the month of the newest
// transaction in the loaded statement.
func pickMonth(monthStr string, sess *session.Session) (int, time.Month, error) {
	if monthStr != "" {
		t, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing month %q: %w", monthStr, err)
		}
		return t.Year(), t.Month(), nil
	}

	var newest time.Time
	for _, t := range sess.Transactions() {
		if t.Date.After(newest) {
			newest = t.Date
		}
	}
	if newest.IsZero() {
		newest = time.Now()
	}
	return newest.Year(), newest.Month(), nil
}
