package aggregate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// RecipientSummary is one row of the top-recipients ranking.
type RecipientSummary struct {
	Name   string // normalized grouping key
	Label  string // display form, e.g. "MERCATOR (4x)"
	Amount decimal.Decimal
	Count  int
}

const (
	topRecipients    = 10
	minRecipientLen  = 3
	maxRecipientLen  = 25
	truncRecipientTo = 22
	frequencyBonus   = 10
)

// Legal-entity tokens around Slovenian company names. The trailing ones
// must stand as a separate word so a name ending in the same letters is
// left alone.
var (
	leadingEntityToken  = regexp.MustCompile(`^(?:PODJETJE|FIRMA|DRUŽBA)\s+`)
	trailingEntityToken = regexp.MustCompile(`[\s,]+(?:D\.?\s?O\.?\s?O|D\.?\s?D|D\.?\s?N\.?\s?O|S\.?\s?P|K\.?\s?D)\.?\s*$`)
	innerWhitespace     = regexp.MustCompile(`\s+`)
)

// NormalizeRecipient maps a raw recipient to its grouping key: uppercase,
// legal-entity tokens stripped, whitespace collapsed, long names truncated
// with an ellipsis.
func NormalizeRecipient(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	name = leadingEntityToken.ReplaceAllString(name, "")
	name = trailingEntityToken.ReplaceAllString(name, "")
	name = innerWhitespace.ReplaceAllString(strings.TrimSpace(name), " ")
	if utf8.RuneCountInString(name) > maxRecipientLen {
		name = string([]rune(name)[:truncRecipientTo]) + "..."
	}
	return name
}

// ByRecipient ranks recipients by amount plus a frequency bonus of ten per
// transaction, so a merchant paid often outranks a similar-sized one-off.
// Names that normalize to "UNKNOWN" or fewer than three characters cannot
// be grouped meaningfully and are left out. At most ten rows are returned.
func ByRecipient(txns []model.Transaction) []RecipientSummary {
	index := make(map[string]int)
	var sums []RecipientSummary
	for _, t := range txns {
		name := NormalizeRecipient(t.Recipient)
		if name == "UNKNOWN" || utf8.RuneCountInString(name) < minRecipientLen {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(sums)
			index[name] = i
			sums = append(sums, RecipientSummary{Name: name, Amount: decimal.Zero})
		}
		sums[i].Amount = sums[i].Amount.Add(t.Amount)
		sums[i].Count++
	}

	sort.SliceStable(sums, func(a, b int) bool {
		return score(sums[a]).GreaterThan(score(sums[b]))
	})
	if len(sums) > topRecipients {
		sums = sums[:topRecipients]
	}
	for i := range sums {
		sums[i].Label = fmt.Sprintf("%s (%dx)", sums[i].Name, sums[i].Count)
	}
	return sums
}

func score(r RecipientSummary) decimal.Decimal {
	return r.Amount.Add(decimal.NewFromInt(int64(r.Count * frequencyBonus)))
}
