package importer

import "strings"

// RawRow is one data line of the uploaded document: cell values keyed by the
// source column header. Column order lives on the payload (the header slice
// handed to MapColumns), not on each row. RawRows are discarded after mapping.
type RawRow struct {
	// Number is the 1-based data row number in source order (header excluded).
	Number int
	Cells  map[string]string
}

// MappedRow is a RawRow after column mapping: cell values keyed by expected
// field, with unmapped columns preserved as passthrough attributes.
type MappedRow struct {
	Number     int
	Fields     map[ExpectedField]string
	Attributes map[string]string
}

// Get returns the trimmed value for a field, or "" when absent.
func (m MappedRow) Get(f ExpectedField) string {
	return strings.TrimSpace(m.Fields[f])
}

// ApplyMapping converts raw rows to mapped rows using a computed column
// mapping. The mapping is immutable once computed; this is a pure transform.
func ApplyMapping(rows []RawRow, mapping MappingResult) []MappedRow {
	mapped := make([]MappedRow, 0, len(rows))
	for _, raw := range rows {
		row := MappedRow{
			Number:     raw.Number,
			Fields:     make(map[ExpectedField]string, len(mapping.Mappings)),
			Attributes: make(map[string]string),
		}
		for _, cm := range mapping.Mappings {
			if v, ok := raw.Cells[cm.InputColumn]; ok {
				row.Fields[cm.Field] = v
			}
		}
		for _, col := range mapping.UnmappedColumns {
			if v := strings.TrimSpace(raw.Cells[col]); v != "" {
				row.Attributes[col] = v
			}
		}
		mapped = append(mapped, row)
	}
	return mapped
}

// NormalizeDrawing produces the canonical form of a drawing number used for
// natural-key lookups: uppercase with all whitespace removed.
func NormalizeDrawing(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "")
}
