package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType marks a transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Transaction is one canonical statement entry. Amount is always strictly
// positive; polarity lives in Type. The currency is implied by the bank
// schema that produced the transaction.
type Transaction struct {
	Date        time.Time // calendar date, no time component
	Amount      decimal.Decimal
	Description string // "Unknown" when the export has no value
	Recipient   string // "Unknown" when the export has no value
	Type        TxType
}

// Day returns the transaction date as an ISO calendar day string.
func (t Transaction) Day() string {
	return t.Date.Format("2006-01-02")
}
