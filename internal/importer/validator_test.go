package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/constants"
)

func mkRow(n int, fields map[ExpectedField]string) MappedRow {
	return MappedRow{Number: n, Fields: fields}
}

func baseFields(overrides map[ExpectedField]string) map[ExpectedField]string {
	fields := map[ExpectedField]string{
		FieldDrawing:       "P-1001-01",
		FieldType:          "VALVE",
		FieldQty:           "1",
		FieldCommodityCode: "VLV-GATE-150",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	return fields
}

func TestValidateRows_AllValid(t *testing.T) {
	rows := []MappedRow{
		mkRow(1, baseFields(nil)),
		mkRow(2, baseFields(map[ExpectedField]string{FieldCommodityCode: "VLV-GLOBE-300"})),
	}
	summary := ValidateRows(rows)

	assert.Equal(t, 2, summary.TotalRows)
	assert.Equal(t, 2, summary.ValidCount)
	assert.Zero(t, summary.SkippedCount)
	assert.Zero(t, summary.ErrorCount)
	assert.True(t, summary.CanImport)
	assert.Len(t, summary.ValidRows(), 2)
}

func TestValidateRows_SkipsNeverBlock(t *testing.T) {
	rows := []MappedRow{
		mkRow(1, baseFields(nil)),
		mkRow(2, baseFields(map[ExpectedField]string{FieldQty: "0"})),
		mkRow(3, baseFields(map[ExpectedField]string{FieldType: "GASKET"})),
	}
	summary := ValidateRows(rows)

	assert.Equal(t, 1, summary.ValidCount)
	assert.Equal(t, 2, summary.SkippedCount)
	assert.Zero(t, summary.ErrorCount)
	assert.True(t, summary.CanImport, "skipped rows must not block the import")
	assert.Equal(t, 1, summary.ByCategory[constants.CategoryZeroQuantity])
	assert.Equal(t, 1, summary.ByCategory[constants.CategoryUnsupportedType])
}

func TestValidateRows_ErrorsBlock(t *testing.T) {
	rows := []MappedRow{
		mkRow(1, baseFields(nil)),
		mkRow(2, baseFields(map[ExpectedField]string{FieldDrawing: "  "})),
	}
	summary := ValidateRows(rows)

	assert.Equal(t, 1, summary.ErrorCount)
	assert.False(t, summary.CanImport, "a single error row blocks the whole import")
}

func TestValidateRows_PredicateOrder(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[ExpectedField]string
		status   constants.RowStatus
		category constants.ValidationCategory
	}{
		{
			// empty drawing wins even when everything else is broken too
			name: "empty drawing first",
			fields: baseFields(map[ExpectedField]string{
				FieldDrawing: "",
				FieldQty:     "abc",
				FieldType:    "GASKET",
			}),
			status:   constants.RowError,
			category: constants.CategoryEmptyDrawing,
		},
		{
			name: "missing required before quantity",
			fields: baseFields(map[ExpectedField]string{
				FieldCommodityCode: "",
				FieldQty:           "abc",
			}),
			status:   constants.RowError,
			category: constants.CategoryMissingRequiredField,
		},
		{
			name:     "invalid quantity before type",
			fields:   baseFields(map[ExpectedField]string{FieldQty: "n/a", FieldType: "GASKET"}),
			status:   constants.RowError,
			category: constants.CategoryInvalidQuantity,
		},
		{
			name:     "negative quantity is malformed data",
			fields:   baseFields(map[ExpectedField]string{FieldQty: "-3"}),
			status:   constants.RowError,
			category: constants.CategoryMalformedData,
		},
		{
			name:     "zero quantity before unsupported type",
			fields:   baseFields(map[ExpectedField]string{FieldQty: "0", FieldType: "GASKET"}),
			status:   constants.RowSkipped,
			category: constants.CategoryZeroQuantity,
		},
		{
			name:     "unsupported type",
			fields:   baseFields(map[ExpectedField]string{FieldType: "GASKET"}),
			status:   constants.RowSkipped,
			category: constants.CategoryUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ValidateRows([]MappedRow{mkRow(1, tt.fields)})
			require.Len(t, summary.Results, 1)
			assert.Equal(t, tt.status, summary.Results[0].Status)
			assert.Equal(t, tt.category, summary.Results[0].Category)
		})
	}
}

func TestValidateRows_QuantityTolerance(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		qty   int
	}{
		{"2", true, 2},
		{"2.0", true, 2},
		{"1,200", true, 1200},
		{" 3 ", true, 3},
		{"2.5", false, 0},
		{"two", false, 0},
	}
	for _, tt := range tests {
		summary := ValidateRows([]MappedRow{
			mkRow(1, baseFields(map[ExpectedField]string{FieldQty: tt.raw})),
		})
		if tt.valid {
			require.Equal(t, 1, summary.ValidCount, "qty %q", tt.raw)
			assert.Equal(t, tt.qty, summary.Results[0].Data.Quantity)
		} else {
			assert.Equal(t, 1, summary.ErrorCount, "qty %q", tt.raw)
		}
	}
}

func TestValidateRows_DuplicateIdentityKey(t *testing.T) {
	rows := []MappedRow{
		mkRow(1, baseFields(map[ExpectedField]string{FieldSize: "2\""})),
		mkRow(2, baseFields(map[ExpectedField]string{FieldSize: "2\""})),
	}
	summary := ValidateRows(rows)

	require.Equal(t, 1, summary.ErrorCount)
	res := summary.Results[1]
	assert.Equal(t, constants.CategoryDuplicateIdentityKey, res.Category)
	assert.Contains(t, res.Reason, "row 1")
	assert.False(t, summary.CanImport)
}

func TestValidateRows_SeqDisambiguates(t *testing.T) {
	// two supports on the same drawing at the same size and commodity code,
	// told apart by the SEQ column
	sup := map[ExpectedField]string{
		FieldType: "SUPPORT", FieldCommodityCode: "SUP-HD", FieldSize: "4\"",
	}
	row1 := baseFields(sup)
	row1[FieldSeq] = "1"
	row2 := baseFields(sup)
	row2[FieldSeq] = "2"

	summary := ValidateRows([]MappedRow{mkRow(1, row1), mkRow(2, row2)})
	assert.Equal(t, 2, summary.ValidCount)
	assert.True(t, summary.CanImport)
}

func TestValidateRows_SameKeyDifferentType(t *testing.T) {
	// identical natural key fields on different component types never collide
	rows := []MappedRow{
		mkRow(1, baseFields(map[ExpectedField]string{FieldType: "VALVE"})),
		mkRow(2, baseFields(map[ExpectedField]string{FieldType: "FITTING"})),
	}
	summary := ValidateRows(rows)
	assert.Equal(t, 2, summary.ValidCount)
}

func TestValidateRows_NormalizesRowData(t *testing.T) {
	fields := baseFields(map[ExpectedField]string{
		FieldDrawing: " p-2001  - 03 ",
		FieldArea:    " B-68 ",
	})
	summary := ValidateRows([]MappedRow{mkRow(1, fields)})

	require.Equal(t, 1, summary.ValidCount)
	data := summary.Results[0].Data
	assert.Equal(t, "P-2001-03", data.DrawingNorm)
	assert.Equal(t, "p-2001  - 03", data.DrawingNumber)
	assert.Equal(t, "B-68", data.Area)
}
