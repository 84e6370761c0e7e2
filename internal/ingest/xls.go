package ingest

import (
	"fmt"
	"io"

	"github.com/extrame/xls"

	"github.com/Stefasaur/bank-bee-csv/internal/model"
)

// XLSReader tokenizes legacy Excel (.xls) workbooks, the format most
// Slovenian bank portals still export.
type XLSReader struct{}

// Format returns the reader name.
func (p *XLSReader) Format() string { return "xls" }

// Read converts every worksheet into a raw sheet. The first row of each
// sheet is taken as the header; true header rows buried below metadata are
// recovered later by statement.Reframe.
func (p *XLSReader) Read(r io.ReadSeeker) ([]model.RawSheet, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("opening xls: %w", err)
	}

	var sheets []model.RawSheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}

		var grid [][]string
		for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
			row := ws.Row(rowIdx)
			if row == nil {
				grid = append(grid, nil)
				continue
			}
			cells := make([]string, 0, row.LastCol())
			for col := 0; col < row.LastCol(); col++ {
				cells = append(cells, row.Col(col))
			}
			grid = append(grid, cells)
		}

		sheet := model.RawSheet{Name: ws.Name}
		if len(grid) > 0 {
			sheet.Headers = grid[0]
			sheet.Rows = grid[1:]
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}
