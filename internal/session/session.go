// Package session owns the pipeline state for one loaded statement: the
// selected bank and the transactions parsed from the most recent file.
// Both are replaced wholesale on every user action; nothing is merged.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Stefasaur/bank-bee-csv/internal/aggregate"
	"github.com/Stefasaur/bank-bee-csv/internal/category"
	"github.com/Stefasaur/bank-bee-csv/internal/model"
	"github.com/Stefasaur/bank-bee-csv/internal/schema"
	"github.com/Stefasaur/bank-bee-csv/internal/statement"
)

// Session holds the currently selected bank and the parsed transaction
// set. It is owned by a single caller and never accessed concurrently.
type Session struct {
	bank       schema.Schema
	haveBank   bool
	sheets     []model.RawSheet
	txns       []model.Transaction
	qualified  bool
	diagnostic string
	rules      category.RuleSet
}

// New returns an empty session using the built-in category rules.
func New() *Session {
	return &Session{rules: category.Defaults()}
}

// SetRules swaps in an override rule set for subsequent aggregation.
func (s *Session) SetRules(rs category.RuleSet) {
	s.rules = rs
}

// SelectBank switches the active bank and discards any loaded statement.
func (s *Session) SelectBank(id string) error {
	sc, err := schema.Lookup(id)
	if err != nil {
		return err
	}
	s.bank = sc
	s.haveBank = true
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.sheets = nil
	s.txns = nil
	s.qualified = false
	s.diagnostic = ""
}

// Load replaces the session's statement with sheets. Qualification is
// judged on the first sheet only; later sheets stay available for display
// but are never parsed. A sheet that does not qualify, or that is missing
// a bank-mandatory column, leaves an empty transaction set and a single
// human-readable diagnostic rather than an error.
func (s *Session) Load(sheets []model.RawSheet) error {
	if !s.haveBank {
		return errors.New("no bank selected")
	}
	s.reset()
	s.sheets = sheets
	if len(sheets) == 0 {
		return nil
	}

	first := statement.Reframe(sheets[0], s.bank)
	if !statement.Qualifies(first, s.bank) {
		s.diagnostic = fmt.Sprintf("file does not look like a %s statement", s.bank.Name)
		return nil
	}
	s.qualified = true

	txns, err := statement.Build(first, s.bank)
	if err != nil {
		s.diagnostic = err.Error()
		return nil
	}
	s.txns = txns
	return nil
}

// Bank returns the active schema.
func (s *Session) Bank() schema.Schema { return s.bank }

// Qualified reports whether the loaded file qualified as a transaction
// statement for the active bank.
func (s *Session) Qualified() bool { return s.qualified }

// Diagnostic returns the per-file message explaining why no transactions
// were produced, or "" when parsing went through.
func (s *Session) Diagnostic() string { return s.diagnostic }

// Sheets returns the raw sheets of the loaded file.
func (s *Session) Sheets() []model.RawSheet { return s.sheets }

// Transactions returns the parsed transaction set.
func (s *Session) Transactions() []model.Transaction { return s.txns }

// Month selects the (year, month, type) slice of the transaction set that
// the aggregate views operate on.
func (s *Session) Month(year int, month time.Month, typ model.TxType) []model.Transaction {
	return aggregate.Filter(s.txns, year, month, typ)
}

// Categories aggregates one month of one type per category.
func (s *Session) Categories(year int, month time.Month, typ model.TxType) []aggregate.CategoryBucket {
	return aggregate.ByCategory(s.Month(year, month, typ), s.rules)
}

// Recipients ranks the top recipients for one month of one type.
func (s *Session) Recipients(year int, month time.Month, typ model.TxType) []aggregate.RecipientSummary {
	return aggregate.ByRecipient(s.Month(year, month, typ))
}

// Days aggregates one month of one type per calendar day.
func (s *Session) Days(year int, month time.Month, typ model.TxType) []aggregate.DailyBucket {
	return aggregate.ByDay(s.Month(year, month, typ))
}

// Total returns the grand total for one month of one type.
func (s *Session) Total(year int, month time.Month, typ model.TxType) decimal.Decimal {
	return aggregate.Total(s.Month(year, month, typ))
}
