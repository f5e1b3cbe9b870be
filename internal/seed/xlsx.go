package seed

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the dataset as an XLSX workbook (as bytes) with one
// "Takeoff" sheet in the canonical column order.
func WriteXLSX(ds *Dataset) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Takeoff"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for r, row := range ds.Table() {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen the identifying columns
	_ = f.SetColWidth(sheet, "A", "A", 16) // drawing
	_ = f.SetColWidth(sheet, "D", "D", 18) // commodity code
	_ = f.SetColWidth(sheet, "F", "F", 28) // description
	_ = f.SetColWidth(sheet, "I", "I", 20) // spool id

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV renders the dataset as CSV bytes in the same column order.
func WriteCSV(ds *Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(ds.Table()); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
