// Package statement resolves a raw sheet against a bank schema and builds
// canonical transactions from its rows.
package statement

import (
	"strings"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
	"github.com/Stefasaur/bank-bee-csv/internal/schema"
)

// Columns holds the resolved 0-based index of each logical column; -1
// means the column was not found in the header row.
type Columns struct {
	Date        int
	Income      int
	Expense     int
	Description int
	Recipient   int
}

// FindHeaderRow scans the grid top to bottom and returns the index of the
// first row containing a cell whose raw text contains the schema's date or
// amount column text (case-sensitive). Some exports put title and account
// metadata rows above the real header. Returns -1 when nothing matches.
func FindHeaderRow(grid [][]string, s schema.Schema) int {
	for i, row := range grid {
		for _, text := range row {
			if strings.Contains(text, s.DateColumn) || strings.Contains(text, s.IncomeColumn) {
				return i
			}
		}
	}
	return -1
}

// Reframe returns the sheet with its true header row discovered. Ingest
// readers assume row 0 is the header; when a later row matches the
// schema's column text, everything before it is dropped and that row
// becomes the header. With no match the original framing stands.
func Reframe(sheet model.RawSheet, s schema.Schema) model.RawSheet {
	grid := make([][]string, 0, len(sheet.Rows)+1)
	grid = append(grid, sheet.Headers)
	grid = append(grid, sheet.Rows...)

	idx := FindHeaderRow(grid, s)
	if idx < 0 {
		idx = 0
	}
	return model.RawSheet{Name: sheet.Name, Headers: grid[idx], Rows: grid[idx+1:]}
}

// ResolveColumns matches each schema pattern against the header cells:
// case-insensitive substring for all columns except recipient, which is
// tested as a regular expression. First matching cell wins per column.
func ResolveColumns(headers []string, s schema.Schema) Columns {
	cols := Columns{Date: -1, Income: -1, Expense: -1, Description: -1, Recipient: -1}
	for i, h := range headers {
		lower := strings.ToLower(h)
		if cols.Date < 0 && strings.Contains(lower, strings.ToLower(s.DateColumn)) {
			cols.Date = i
		}
		if cols.Income < 0 && strings.Contains(lower, strings.ToLower(s.IncomeColumn)) {
			cols.Income = i
		}
		if cols.Expense < 0 && strings.Contains(lower, strings.ToLower(s.ExpenseColumn)) {
			cols.Expense = i
		}
		if cols.Description < 0 && strings.Contains(lower, strings.ToLower(s.DescriptionColumn)) {
			cols.Description = i
		}
		if cols.Recipient < 0 && s.RecipientPattern != nil && s.RecipientPattern.MatchString(h) {
			cols.Recipient = i
		}
	}
	return cols
}

// Qualifies reports whether the sheet looks like a transaction statement
// for s: the date column resolves and at least one amount column does.
// Callers evaluate this against the first sheet of a file only.
func Qualifies(sheet model.RawSheet, s schema.Schema) bool {
	cols := ResolveColumns(sheet.Headers, s)
	return cols.Date >= 0 && (cols.Income >= 0 || cols.Expense >= 0)
}
