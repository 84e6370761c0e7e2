// Package fieldparse contains the locale-tolerant cell parsers shared by
// all bank schemas. Both parsers are pure functions.
package fieldparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat enumerates the date layouts seen in bank exports.
type DateFormat string

const (
	DateDotted  DateFormat = "dd.mm.yyyy"
	DateSlashed DateFormat = "dd/mm/yyyy"
	DateGeneric DateFormat = ""
)

// Amount parses a money cell that may use either '.' or ',' as the decimal
// separator and the other as a thousands separator. When both appear, the
// one occurring later is the decimal separator. With a lone comma, the
// comma is decimal only when the fraction looks like cents (at most two
// digits); otherwise every comma is a thousands separator. Unparsable
// input yields zero, which callers treat as "no value".
func Amount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(normalizeSeparators(cleanAmount(raw)))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cleanAmount strips everything except digits, separators, and a leading
// minus sign. Currency symbols and whitespace drop out here.
func cleanAmount(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			s = parts[0] + "." + parts[1]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}

// Date parses a date cell according to the schema's declared format. The
// dotted and slashed layouts are consumed day-first; anything else falls
// back to a handful of generic layouts. Malformed input is an error, never
// a coerced date; the caller decides what to do with the row.
func Date(raw string, format DateFormat) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	switch format {
	case DateDotted:
		return splitDate(raw, ".")
	case DateSlashed:
		return splitDate(raw, "/")
	default:
		return genericDate(raw)
	}
}

func splitDate(raw, sep string) (time.Time, error) {
	parts := strings.Split(raw, sep)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date %q: want 3 parts, got %d", raw, len(parts))
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad day: %w", raw, err)
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad month: %w", raw, err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: bad year: %w", raw, err)
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("date %q: out of range", raw)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

var genericLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2.1.2006",
}

func genericDate(raw string) (time.Time, error) {
	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
