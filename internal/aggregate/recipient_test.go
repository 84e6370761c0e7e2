package aggregate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

func TestNormalizeRecipient(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Podjetje ABC d.o.o.", "ABC"},
		{"Mercator d.d.", "MERCATOR"},
		{"Janez Novak s.p.", "JANEZ NOVAK"},
		{"  Telekom   Slovenije, d.d. ", "TELEKOM SLOVENIJE"},
		{"plain name", "PLAIN NAME"},
		{"MADD", "MADD"}, // trailing letters that only look like a suffix stay
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeRecipient(c.raw), "raw %q", c.raw)
	}
}

func TestNormalizeRecipient_Truncation(t *testing.T) {
	long := "Very Long Recipient Name That Goes On"
	got := NormalizeRecipient(long)
	assert.Equal(t, "VERY LONG RECIPIENT NA...", got)

	// At the boundary nothing is cut.
	exact := "ABCDEFGHIJKLMNOPQRSTUVWXY" // 25 runes
	assert.Equal(t, exact, NormalizeRecipient(exact))
}

func recipientTxn(amount, recipient string) model.Transaction {
	return model.Transaction{
		Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:    dec(amount),
		Recipient: recipient,
		Type:      model.TypeExpense,
	}
}

func TestByRecipient_GroupsAndLabels(t *testing.T) {
	txns := []model.Transaction{
		recipientTxn("12.40", "Mercator d.d."),
		recipientTxn("8.20", "MERCATOR D.D."),
		recipientTxn("30.00", "Petrol d.d."),
	}
	got := ByRecipient(txns)
	require.Len(t, got, 2)

	byName := map[string]RecipientSummary{}
	for _, r := range got {
		byName[r.Name] = r
	}
	m := byName["MERCATOR"]
	assert.Equal(t, 2, m.Count)
	assert.Equal(t, "20.60", m.Amount.StringFixed(2))
	assert.Equal(t, "MERCATOR (2x)", m.Label)
}

func TestByRecipient_FrequencyOutranksOneOff(t *testing.T) {
	// Four visits of 25 score 100 + 40; one payment of 110 scores 120.
	txns := []model.Transaction{
		recipientTxn("110.00", "One Off Shop"),
		recipientTxn("25.00", "Corner Cafe"),
		recipientTxn("25.00", "Corner Cafe"),
		recipientTxn("25.00", "Corner Cafe"),
		recipientTxn("25.00", "Corner Cafe"),
	}
	got := ByRecipient(txns)
	require.Len(t, got, 2)
	assert.Equal(t, "CORNER CAFE", got[0].Name)
	assert.Equal(t, "ONE OFF SHOP", got[1].Name)
}

func TestByRecipient_ExcludesUngroupable(t *testing.T) {
	txns := []model.Transaction{
		recipientTxn("10.00", "Unknown"),
		recipientTxn("10.00", "AB"), // shorter than 3 after normalization
		recipientTxn("10.00", "Mercator"),
	}
	got := ByRecipient(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "MERCATOR", got[0].Name)
}

func TestByRecipient_TopTen(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 15; i++ {
		// Distinct names with strictly increasing amounts.
		txns = append(txns, recipientTxn(fmt.Sprintf("%d.00", (i+1)*10), fmt.Sprintf("Shop Number %02d", i)))
	}
	got := ByRecipient(txns)
	require.Len(t, got, 10)
	// Highest amount first, and the five smallest fell off.
	assert.Equal(t, "SHOP NUMBER 14", got[0].Name)
	assert.Equal(t, "SHOP NUMBER 05", got[9].Name)
}

func TestByRecipient_Deterministic(t *testing.T) {
	txns := []model.Transaction{
		recipientTxn("10.00", "Alpha"),
		recipientTxn("10.00", "Beta"), // same score: insertion order breaks the tie
		recipientTxn("20.00", "Gamma"),
	}
	first := ByRecipient(txns)
	second := ByRecipient(txns)
	assert.Equal(t, first, second)
	assert.Equal(t, "GAMMA", first[0].Name)
	assert.Equal(t, "ALPHA", first[1].Name)
	assert.Equal(t, "BETA", first[2].Name)
}
