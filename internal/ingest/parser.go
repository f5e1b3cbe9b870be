package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pipetrak/pipetrak/internal/importer"
)

// Document is a parsed tabular payload: the ordered header row plus data
// rows, ready for the column mapper.
type Document struct {
	Headers []string
	Rows    []importer.RawRow
}

// Parse dispatches on file extension. Size is checked before any parsing.
func Parse(filename string, data []byte) (*Document, error) {
	if err := CheckSize(len(data)); err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return ParseXLSX(data)
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return ParseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}

// ParseXLSX reads the first sheet of a workbook. The first non-empty row is
// the header row; everything after it is data.
func ParseXLSX(data []byte) (*Document, error) {
	if err := CheckSize(len(data)); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return buildDocument(rows)
}

// ParseCSV reads a comma-separated payload, first line as headers.
func ParseCSV(data []byte) (*Document, error) {
	if err := CheckSize(len(data)); err != nil {
		return nil, err
	}
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows are padded below
	r.TrimLeadingSpace = true

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, rec)
	}
	return buildDocument(records)
}

func buildDocument(rows [][]string) (*Document, error) {
	headerIdx := -1
	for i, row := range rows {
		if !rowEmpty(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("document has no header row")
	}

	headers := make([]string, 0, len(rows[headerIdx]))
	for _, h := range rows[headerIdx] {
		headers = append(headers, strings.TrimSpace(h))
	}

	doc := &Document{Headers: headers}
	rowNum := 0
	for _, row := range rows[headerIdx+1:] {
		if rowEmpty(row) {
			continue
		}
		rowNum++
		cells := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				cells[h] = row[i]
			} else {
				cells[h] = ""
			}
		}
		doc.Rows = append(doc.Rows, importer.RawRow{Number: rowNum, Cells: cells})
	}
	return doc, nil
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
