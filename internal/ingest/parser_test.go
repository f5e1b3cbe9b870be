package ingest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := workbookBytes(t, [][]string{
		{"DRAWING", "TYPE", "QTY", "COMMODITY CODE"},
		{"P-1001-01", "VALVE", "1", "VLV-1"},
		{"", "", "", ""}, // blank line in the middle
		{"P-1002-01", "SUPPORT", "2", "SUP-HD"},
	})

	doc, err := ParseXLSX(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"DRAWING", "TYPE", "QTY", "COMMODITY CODE"}, doc.Headers)
	require.Len(t, doc.Rows, 2, "blank rows are dropped")
	assert.Equal(t, 1, doc.Rows[0].Number)
	assert.Equal(t, "P-1001-01", doc.Rows[0].Cells["DRAWING"])
	assert.Equal(t, 2, doc.Rows[1].Number)
	assert.Equal(t, "SUP-HD", doc.Rows[1].Cells["COMMODITY CODE"])
}

func TestParseXLSX_SkipsLeadingBlankRows(t *testing.T) {
	data := workbookBytes(t, [][]string{
		{"", ""},
		{" DRAWING ", "QTY"},
		{"P-1001-01", "1"},
	})

	doc, err := ParseXLSX(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"DRAWING", "QTY"}, doc.Headers, "headers are trimmed")
	require.Len(t, doc.Rows, 1)
}

func TestParseCSV(t *testing.T) {
	data := []byte("DRAWING,TYPE,QTY,COMMODITY CODE\nP-1001-01,VALVE,1,VLV-1\nP-1002-01,SUPPORT,2\n")

	doc, err := ParseCSV(data)
	require.NoError(t, err)

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "", doc.Rows[1].Cells["COMMODITY CODE"], "ragged rows are padded")
}

func TestParse_Dispatch(t *testing.T) {
	csvData := []byte("DRAWING,QTY\nP-1,1\n")

	doc, err := Parse("takeoff.CSV", csvData)
	require.NoError(t, err)
	assert.Len(t, doc.Rows, 1)

	_, err = Parse("takeoff.pdf", csvData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestParse_RejectsOversizedPayload(t *testing.T) {
	big := make([]byte, MaxPayloadBytes+1)
	_, err := Parse("takeoff.csv", big)
	require.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := ParseCSV([]byte("\n\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParseEnvelope(t *testing.T) {
	payload := []byte(`{
		"filename": "takeoff.xlsx",
		"columns": ["DRAWING", "TYPE", "QTY", "COMMODITY CODE"],
		"rows": [
			{"DRAWING": "P-1001-01", "TYPE": "VALVE", "QTY": "1", "COMMODITY CODE": "VLV-1"},
			{"DRAWING": "P-1002-01", "TYPE": "SUPPORT", "QTY": "2", "COMMODITY CODE": "SUP-HD"}
		]
	}`)

	doc, err := ParseEnvelope(payload)
	require.NoError(t, err)

	assert.Len(t, doc.Headers, 4)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, 1, doc.Rows[0].Number)
	assert.Equal(t, "P-1002-01", doc.Rows[1].Cells["DRAWING"])
}

func TestParseEnvelope_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing columns", `{"rows": []}`},
		{"empty columns", `{"columns": [], "rows": []}`},
		{"non-string cell", `{"columns": ["QTY"], "rows": [{"QTY": 5}]}`},
		{"unknown top-level key", `{"columns": ["A"], "rows": [], "extra": true}`},
		{"not json", `DRAWING,QTY`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestCheckSize_Boundary(t *testing.T) {
	assert.NoError(t, CheckSize(MaxPayloadBytes))
	err := CheckSize(MaxPayloadBytes + 1)
	require.ErrorIs(t, err, ErrPayloadTooLarge)
	assert.Contains(t, err.Error(), fmt.Sprintf("limit %d", MaxPayloadBytes))
}
