package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/importer"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := Generate(cfg)
	b := Generate(cfg)

	require.Equal(t, len(a.Rows), len(b.Rows))
	assert.Equal(t, a.Welders, b.Welders)
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].Key.String(), b.Rows[i].Key.String(), "row %d", i)
		assert.Equal(t, a.Rows[i].Area, b.Rows[i].Area, "row %d", i)
		assert.Equal(t, a.Rows[i].Milestones, b.Rows[i].Milestones, "row %d", i)
	}

	cfg.Seed = 2
	c := Generate(cfg)
	different := false
	for i := range a.Rows {
		if a.Rows[i].Area != c.Rows[i].Area || a.Rows[i].Size != c.Rows[i].Size {
			different = true
			break
		}
	}
	assert.True(t, different, "a different seed yields a different dataset")
}

func TestGenerate_Shape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drawings = 4
	cfg.SpoolsPerDrawing = 2
	cfg.ValvesPerDrawing = 1
	cfg.WeldsPerDrawing = 3
	cfg.Welders = 5
	ds := Generate(cfg)

	// per drawing: 2 spools + 4 supports + 1 valve + 3 welds
	assert.Len(t, ds.Rows, 4*(2+4+1+3))
	assert.Len(t, ds.Welders, 5)

	counts := make(map[constants.ComponentType]int)
	for _, r := range ds.Rows {
		counts[r.Type]++
	}
	assert.Equal(t, 8, counts[constants.Spool])
	assert.Equal(t, 16, counts[constants.Support], "every spool brings two supports")
	assert.Equal(t, 4, counts[constants.Valve])
	assert.Equal(t, 12, counts[constants.FieldWeld])
}

func TestGenerate_KeysAreUnique(t *testing.T) {
	ds := Generate(DefaultConfig())
	seen := make(map[string]struct{})
	for _, r := range ds.Rows {
		k := string(r.Type) + "|" + r.Key.String()
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %s", k)
		seen[k] = struct{}{}
	}
}

func TestGenerate_ProgressHonorsSequencing(t *testing.T) {
	ds := Generate(DefaultConfig())
	withProgress := 0
	for _, r := range ds.Rows {
		require.NotNil(t, r.Milestones)
		require.NoError(t, importer.CheckSequencing(r.Milestones), "row %d", r.RowNumber)
		if r.Milestones.PercentComplete() > 0 {
			withProgress++
		}
	}
	assert.Positive(t, withProgress, "the default dataset carries progress")
}

func TestGenerate_WithoutProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WithProgress = false
	ds := Generate(cfg)
	for _, r := range ds.Rows {
		assert.Nil(t, r.Milestones)
	}
}

func TestGenerate_WeldsCarryRosterAndType(t *testing.T) {
	cfg := DefaultConfig()
	ds := Generate(cfg)

	used := make(map[string]struct{})
	for _, r := range ds.Rows {
		if r.Type != constants.FieldWeld {
			assert.Empty(t, r.Welder, "row %d", r.RowNumber)
			continue
		}
		require.NotEmpty(t, r.Welder, "row %d", r.RowNumber)
		require.NotEmpty(t, r.WeldType, "row %d", r.RowNumber)
		used[r.Welder] = struct{}{}
	}
	// the rotation puts every stencil on at least one weld, so importing
	// the sheet recreates the whole roster
	assert.Len(t, used, len(ds.Welders))
}

func TestTable_RoundTripsThroughMapper(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WithProgress = false
	ds := Generate(cfg)
	table := ds.Table()

	require.Len(t, table, len(ds.Rows)+1)
	mapping := importer.MapColumns(table[0])
	require.True(t, mapping.HasAllRequiredFields)
	for _, m := range mapping.Mappings {
		assert.Equal(t, importer.ConfidenceExact, m.Confidence, "column %q", m.InputColumn)
	}
}

func TestWriteXLSX_ParsesBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drawings = 2
	ds := Generate(cfg)

	data, err := WriteXLSX(ds)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestWriteCSV_HasHeaderAndRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Drawings = 1
	ds := Generate(cfg)

	data, err := WriteCSV(ds)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DRAWING,TYPE,QTY")
}
