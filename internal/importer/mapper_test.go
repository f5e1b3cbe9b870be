package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapColumns_CanonicalHeaders(t *testing.T) {
	headers := []string{"DRAWING", "TYPE", "QTY", "COMMODITY CODE", "SIZE"}
	result := MapColumns(headers)

	require.True(t, result.HasAllRequiredFields)
	require.Empty(t, result.MissingRequired)
	require.Empty(t, result.UnmappedColumns)
	for _, m := range result.Mappings {
		assert.Equal(t, ConfidenceExact, m.Confidence, "header %q", m.InputColumn)
		assert.Equal(t, TierExact, m.Tier)
	}
}

func TestMapColumns_MixedTiers(t *testing.T) {
	// one exact, one case-insensitive, one synonym, one unmapped
	headers := []string{"DRAWING", "type", "Quantity", "Cmdty Code", "VENDOR"}
	result := MapColumns(headers)

	require.True(t, result.HasAllRequiredFields)
	byField := make(map[ExpectedField]ColumnMapping)
	for _, m := range result.Mappings {
		byField[m.Field] = m
	}

	assert.Equal(t, ConfidenceExact, byField[FieldDrawing].Confidence)
	assert.Equal(t, TierCaseInsensitive, byField[FieldType].Tier)
	assert.Equal(t, ConfidenceCaseInsensitive, byField[FieldType].Confidence)
	assert.Equal(t, TierSynonym, byField[FieldQty].Tier)
	assert.Equal(t, ConfidenceSynonym, byField[FieldQty].Confidence)
	assert.Equal(t, "Cmdty Code", byField[FieldCommodityCode].InputColumn)
	assert.Equal(t, []string{"VENDOR"}, result.UnmappedColumns)
}

func TestMapColumns_MissingRequired(t *testing.T) {
	result := MapColumns([]string{"DRAWING", "QTY", "DESCRIPTION"})

	assert.False(t, result.HasAllRequiredFields)
	assert.ElementsMatch(t, []ExpectedField{FieldType, FieldCommodityCode}, result.MissingRequired)
}

func TestMapColumns_HeaderClaimedOnce(t *testing.T) {
	// "SPOOL ID" must go to the spool field exactly, not be re-claimed by a
	// synonym of another field
	headers := []string{"DRAWING", "TYPE", "QTY", "COMMODITY CODE", "SPOOL ID", "SPOOL NO"}
	result := MapColumns(headers)

	var spoolMatches []ColumnMapping
	for _, m := range result.Mappings {
		if m.Field == FieldSpoolID {
			spoolMatches = append(spoolMatches, m)
		}
	}
	require.Len(t, spoolMatches, 1)
	assert.Equal(t, "SPOOL ID", spoolMatches[0].InputColumn)
	assert.Equal(t, []string{"SPOOL NO"}, result.UnmappedColumns)
}

func TestMapColumns_SynonymTrimsAndLowercases(t *testing.T) {
	result := MapColumns([]string{"  Dwg No  ", "Item Type", "Count", "Material Code"})

	require.True(t, result.HasAllRequiredFields)
	for _, m := range result.Mappings {
		assert.Equal(t, TierSynonym, m.Tier, "header %q", m.InputColumn)
	}
}

func TestMapColumns_WeldColumns(t *testing.T) {
	result := MapColumns([]string{"DRAWING", "TYPE", "QTY", "COMMODITY CODE",
		"Weld No", "Joint Type", "Welder Stencil"})

	require.True(t, result.HasAllRequiredFields)
	assert.Equal(t, "Weld No", result.ByField[FieldWeldID])
	assert.Equal(t, "Joint Type", result.ByField[FieldWeldType])
	assert.Equal(t, "Welder Stencil", result.ByField[FieldWelder])
}

func TestApplyMapping_Passthrough(t *testing.T) {
	headers := []string{"DRAWING", "TYPE", "QTY", "COMMODITY CODE", "VENDOR", "PO NUMBER"}
	mapping := MapColumns(headers)
	rows := []RawRow{
		{Number: 1, Cells: map[string]string{
			"DRAWING": "P-1001", "TYPE": "VALVE", "QTY": "1",
			"COMMODITY CODE": "VLV-1", "VENDOR": "Acme", "PO NUMBER": "",
		}},
	}

	mapped := ApplyMapping(rows, mapping)
	require.Len(t, mapped, 1)
	assert.Equal(t, "P-1001", mapped[0].Get(FieldDrawing))
	assert.Equal(t, map[string]string{"VENDOR": "Acme"}, mapped[0].Attributes,
		"empty passthrough cells are dropped")
}

func TestNormalizeDrawing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p-1001-01", "P-1001-01"},
		{"  P-1001 - 01 ", "P-1001-01"},
		{"p 1001\t01", "P100101"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDrawing(tt.in), "input %q", tt.in)
	}
}
