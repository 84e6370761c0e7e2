// Package aggregate folds a filtered transaction set into the three
// report views: per category, per recipient, per calendar day. Every fold
// is a pure function; identical input yields identical output.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Stefasaur/bank-bee-csv/internal/category"
	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// Filter returns the transactions of the given type falling in the given
// year and month. The aggregators expect their input already filtered;
// this is the helper callers use to honor that contract.
func Filter(txns []model.Transaction, year int, month time.Month, typ model.TxType) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Type == typ && t.Date.Year() == year && t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// Total sums the amounts of txns.
func Total(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		sum = sum.Add(t.Amount)
	}
	return sum
}

// CategoryBucket accumulates one category's share of a transaction set.
type CategoryBucket struct {
	Category     string
	Amount       decimal.Decimal
	Transactions []model.Transaction
}

// ByCategory groups txns by their category label under the given rules.
// Buckets appear in first-hit order; transactions keep input order within
// a bucket, so no transaction is dropped or counted twice.
func ByCategory(txns []model.Transaction, rules category.RuleSet) []CategoryBucket {
	index := make(map[string]int)
	var buckets []CategoryBucket
	for _, t := range txns {
		label := rules.Categorize(t)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, CategoryBucket{Category: label, Amount: decimal.Zero})
		}
		buckets[i].Amount = buckets[i].Amount.Add(t.Amount)
		buckets[i].Transactions = append(buckets[i].Transactions, t)
	}
	return buckets
}

// DailyBucket accumulates one calendar day's transactions.
type DailyBucket struct {
	Date         string // yyyy-mm-dd
	Amount       decimal.Decimal
	Count        int
	Transactions []model.Transaction
}

// ByDay groups txns per calendar day, sorted ascending by date.
func ByDay(txns []model.Transaction) []DailyBucket {
	index := make(map[string]int)
	var buckets []DailyBucket
	for _, t := range txns {
		day := t.Day()
		i, ok := index[day]
		if !ok {
			i = len(buckets)
			index[day] = i
			buckets = append(buckets, DailyBucket{Date: day, Amount: decimal.Zero})
		}
		buckets[i].Amount = buckets[i].Amount.Add(t.Amount)
		buckets[i].Count++
		buckets[i].Transactions = append(buckets[i].Transactions, t)
	}
	sort.Slice(buckets, func(a, b int) bool { return buckets[a].Date < buckets[b].Date })
	return buckets
}
