// Package category assigns one label to each transaction from fixed,
// priority-ordered keyword lists. The first matching rule wins, so
// overlapping keywords resolve deterministically by list position.
package category

import (
	"strings"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// Rule matches keywords against a transaction's text fields. Matching is
// case-insensitive substring; RecipientOnly rules ignore the description.
type Rule struct {
	Category      string   `yaml:"category"`
	Keywords      []string `yaml:"keywords"`
	RecipientOnly bool     `yaml:"recipient_only,omitempty"`
}

// RuleSet holds the ordered expense and income rules. Transactions no rule
// matches fall through to the type's fallback label.
type RuleSet struct {
	Expense []Rule `yaml:"expense"`
	Income  []Rule `yaml:"income"`
}

const (
	FallbackExpense = "Other Expenses"
	FallbackIncome  = "Other Income"
)

var defaultRules = RuleSet{
	Expense: []Rule{
		{Category: "Digital Payments", Keywords: []string{"paypal", "revolut", "flik", "sumup", "stripe"}},
		{Category: "Groceries", Keywords: []string{"mercator", "spar", "hofer", "lidl", "tuš", "market", "trgovina"}},
		{Category: "Restaurants", Keywords: []string{"restavracija", "gostilna", "pizzeria", "kavarna", "mcdonald", "okrepčevalnica"}},
		{Category: "Gas", Keywords: []string{"petrol", "omv", "bencin", "črpalka"}},
		{Category: "Telecom", Keywords: []string{"telekom", "telemach", "a1 slovenija", "t-2"}},
		{Category: "Education", Keywords: []string{"univerza", "fakulteta", "šola", "vrtec", "gimnazija"}, RecipientOnly: true},
		{Category: "Insurance", Keywords: []string{"zavarovaln", "triglav", "vzajemna", "generali"}},
		{Category: "Rent", Keywords: []string{"najemnina", "najem", "rent"}},
	},
	Income: []Rule{
		{Category: "Salary", Keywords: []string{"plača", "placa", "osebni dohodek", "salary"}},
		{Category: "Dividends", Keywords: []string{"dividend"}},
		{Category: "Interest", Keywords: []string{"obresti", "interest"}},
		{Category: "Transfer", Keywords: []string{"prenos", "nakazilo", "transfer"}},
		{Category: "Refund", Keywords: []string{"vračilo", "vracilo", "povračilo", "refund"}},
		{Category: "Freelance", Keywords: []string{"avtorski honorar", "honorar", "po pogodbi"}},
		{Category: "Gift", Keywords: []string{"darilo", "gift"}},
	},
}

// Defaults returns the built-in rule set.
func Defaults() RuleSet {
	return defaultRules
}

// Categorize labels t using the built-in rules.
func Categorize(t model.Transaction) string {
	return defaultRules.Categorize(t)
}

// Categorize returns the first matching rule's category for t, or the
// type-appropriate fallback when nothing matches.
func (rs RuleSet) Categorize(t model.Transaction) string {
	rules := rs.Expense
	fallback := FallbackExpense
	if t.Type == model.TypeIncome {
		rules = rs.Income
		fallback = FallbackIncome
	}

	desc := strings.ToLower(t.Description)
	recipient := strings.ToLower(t.Recipient)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(recipient, kw) {
				return r.Category
			}
			if !r.RecipientOnly && strings.Contains(desc, kw) {
				return r.Category
			}
		}
	}
	return fallback
}
