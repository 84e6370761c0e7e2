package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// CSVReader tokenizes comma- or semicolon-separated statement exports.
type CSVReader struct{}

// Format returns the reader name.
func (p *CSVReader) Format() string { return "csv" }

// Read parses the file into a single sheet. Bank exports are ragged and
// quote inconsistently, so field counts are not enforced.
func (p *CSVReader) Read(r io.ReadSeeker) ([]model.RawSheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return []model.RawSheet{{Name: "Sheet1"}}, nil
	}
	return []model.RawSheet{{Name: "Sheet1", Headers: records[0], Rows: records[1:]}}, nil
}

// sniffDelimiter picks ';' when the first line has more semicolons than
// commas. EU bank exports commonly use semicolons because the comma is
// the decimal separator.
func sniffDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
