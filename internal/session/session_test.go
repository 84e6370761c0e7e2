package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
	"github.com/Stefasaur/bank-bee-csv/internal/schema"
)

func nlbSheet() model.RawSheet {
	return model.RawSheet{
		Name:    "Promet",
		Headers: []string{"Datum valute", "Namen", "Prejemnik", "V dobro", "V breme"},
		Rows: [][]string{
			{"05.03.2024", "Nakup", "Mercator d.d.", "", "12,40"},
			{"15.03.2024", "Plača marec", "ACME d.o.o.", "2.000,00", ""},
		},
	}
}

func TestSelectBank_Unknown(t *testing.T) {
	s := New()
	err := s.SelectBank("monzo")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnknownBank)
}

func TestLoad_WithoutBank(t *testing.T) {
	s := New()
	assert.Error(t, s.Load([]model.RawSheet{nlbSheet()}))
}

func TestLoad_QualifiesAndParses(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("nlb"))
	require.NoError(t, s.Load([]model.RawSheet{nlbSheet()}))

	assert.True(t, s.Qualified())
	assert.Empty(t, s.Diagnostic())
	require.Len(t, s.Transactions(), 2)
	assert.Equal(t, "€", s.Bank().CurrencySymbol)
}

func TestLoad_NonQualifyingSheet(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("nlb"))

	sheet := model.RawSheet{
		Headers: []string{"Artikel", "Cena"},
		Rows:    [][]string{{"mleko", "1,09"}},
	}
	require.NoError(t, s.Load([]model.RawSheet{sheet}))

	assert.False(t, s.Qualified())
	assert.Contains(t, s.Diagnostic(), "NLB")
	assert.Empty(t, s.Transactions())
	// The raw grid stays available for display.
	assert.Len(t, s.Sheets(), 1)
}

func TestLoad_OnlyFirstSheetParsed(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("nlb"))

	other := model.RawSheet{Name: "Povzetek", Headers: []string{"X"}, Rows: [][]string{{"y"}}}
	require.NoError(t, s.Load([]model.RawSheet{nlbSheet(), other}))

	assert.True(t, s.Qualified())
	assert.Len(t, s.Transactions(), 2)
	assert.Len(t, s.Sheets(), 2)
}

func TestSelectBank_DiscardsPreviousState(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("nlb"))
	require.NoError(t, s.Load([]model.RawSheet{nlbSheet()}))
	require.NotEmpty(t, s.Transactions())

	require.NoError(t, s.SelectBank("erste"))
	assert.Empty(t, s.Transactions())
	assert.Empty(t, s.Sheets())
	assert.False(t, s.Qualified())
}

func TestAggregateViews(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("nlb"))
	require.NoError(t, s.Load([]model.RawSheet{nlbSheet()}))

	cats := s.Categories(2024, time.March, model.TypeExpense)
	require.Len(t, cats, 1)
	assert.Equal(t, "Groceries", cats[0].Category)

	recips := s.Recipients(2024, time.March, model.TypeIncome)
	require.Len(t, recips, 1)
	assert.Equal(t, "ACME", recips[0].Name)

	days := s.Days(2024, time.March, model.TypeExpense)
	require.Len(t, days, 1)
	assert.Equal(t, "2024-03-05", days[0].Date)

	assert.Equal(t, "12.40", s.Total(2024, time.March, model.TypeExpense).StringFixed(2))
	assert.Equal(t, "2000.00", s.Total(2024, time.March, model.TypeIncome).StringFixed(2))
}

func TestLoad_DateOnlySheetDoesNotQualify(t *testing.T) {
	s := New()
	require.NoError(t, s.SelectBank("erste"))

	sheet := model.RawSheet{
		Headers: []string{"Datum", "Opis"},
		Rows:    [][]string{{"05.03.2024", "Nakup"}},
	}
	require.NoError(t, s.Load([]model.RawSheet{sheet}))
	assert.False(t, s.Qualified())
	assert.NotEmpty(t, s.Diagnostic())
	assert.Empty(t, s.Transactions())
}
