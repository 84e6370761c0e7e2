package model

// RawSheet is one tokenized spreadsheet tab as delivered by an ingest
// reader: a grid of plain string cells with no type information. Rows may
// be sparse, so a row can be shorter than the header.
type RawSheet struct {
	Name    string
	Headers []string
	Rows    [][]string
}
