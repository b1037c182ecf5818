package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Writer is the excelize-backed IWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// BuildWorkbook renders the sheet into a single-worksheet xlsx file and
// returns its bytes. The header row is written bold.
func (w *Writer) BuildWorkbook(sheet Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}

	idx, err := f.NewSheet(name)
	if err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", name, err)
	}
	f.SetActiveSheet(idx)
	// Drop the default sheet when we named ours differently.
	if name != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("delete default sheet: %w", err)
		}
	}

	for col, header := range sheet.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(name, cell, header); err != nil {
			return nil, fmt.Errorf("write header %q: %w", header, err)
		}
	}

	if len(sheet.Headers) > 0 {
		styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err == nil {
			first, _ := excelize.CoordinatesToCellName(1, 1)
			last, _ := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
			_ = f.SetCellStyle(name, first, last, styleID)
		}
	}

	for r, row := range sheet.Rows {
		for cIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
