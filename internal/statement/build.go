package statement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Stefasaur/bank-bee-csv/internal/fieldparse"
	"github.com/Stefasaur/bank-bee-csv/internal/model"
	"github.com/Stefasaur/bank-bee-csv/internal/schema"
)

// ErrMissingColumns reports that a qualified sheet still lacks a column
// the bank's layout requires at build time.
var ErrMissingColumns = errors.New("required columns not found")

// Build converts a reframed sheet's data rows into transactions. Rows with
// a blank or unparsable date are skipped, as are amounts that normalize to
// exactly zero. Separate-column schemas may emit up to two transactions
// per row (one income, one expense); single signed-amount schemas emit at
// most one, with polarity taken from the sign.
func Build(sheet model.RawSheet, s schema.Schema) ([]model.Transaction, error) {
	cols := ResolveColumns(sheet.Headers, s)
	if cols.Date < 0 {
		return nil, fmt.Errorf("%w: %s needs column %q", ErrMissingColumns, s.Name, s.DateColumn)
	}
	if s.SingleAmount() && cols.Income < 0 {
		return nil, fmt.Errorf("%w: %s needs column %q", ErrMissingColumns, s.Name, s.IncomeColumn)
	}

	var txns []model.Transaction
	for _, row := range sheet.Rows {
		rawDate := cell(row, cols.Date)
		if strings.TrimSpace(rawDate) == "" {
			continue
		}
		date, err := fieldparse.Date(rawDate, s.DateFormat)
		if err != nil {
			// Malformed row; drop it and keep going.
			continue
		}

		desc := textOrUnknown(cell(row, cols.Description))
		recipient := textOrUnknown(cell(row, cols.Recipient))

		if s.SingleAmount() {
			amt := fieldparse.Amount(cell(row, cols.Income))
			if amt.IsZero() {
				continue
			}
			typ := model.TypeIncome
			if amt.IsNegative() {
				typ = model.TypeExpense
			}
			txns = append(txns, model.Transaction{
				Date:        date,
				Amount:      amt.Abs(),
				Description: desc,
				Recipient:   recipient,
				Type:        typ,
			})
			continue
		}

		// Negative values in a dedicated income or expense column are
		// treated as not present.
		if cols.Income >= 0 {
			if amt := fieldparse.Amount(cell(row, cols.Income)); amt.IsPositive() {
				txns = append(txns, model.Transaction{
					Date:        date,
					Amount:      amt,
					Description: desc,
					Recipient:   recipient,
					Type:        model.TypeIncome,
				})
			}
		}
		if cols.Expense >= 0 {
			if amt := fieldparse.Amount(cell(row, cols.Expense)); amt.IsPositive() {
				txns = append(txns, model.Transaction{
					Date:        date,
					Amount:      amt,
					Description: desc,
					Recipient:   recipient,
					Type:        model.TypeExpense,
				})
			}
		}
	}
	return txns, nil
}

// cell returns the cell at idx or "" when the row is sparse or the column
// never resolved.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func textOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Unknown"
	}
	return s
}
