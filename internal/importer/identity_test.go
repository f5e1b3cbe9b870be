package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetrak/pipetrak/constants"
)

func TestKeyForRow_SpoolUsesSpoolID(t *testing.T) {
	row := mkRow(1, map[ExpectedField]string{
		FieldDrawing: "P-1001-01",
		FieldSpoolID: "p-1001-01-sp01",
	})
	key := KeyForRow(constants.Spool, row, 1)

	spool, ok := key.(SpoolKey)
	require.True(t, ok)
	assert.Equal(t, constants.Spool, spool.ComponentType())
	assert.Equal(t, "P-1001-01-SP01", key.String(), "canonical form is uppercased")
}

func TestKeyForRow_SpoolWithoutIDFallsBack(t *testing.T) {
	row := mkRow(1, map[ExpectedField]string{
		FieldDrawing:       "P-1001-01",
		FieldCommodityCode: "PIPE-CS",
		FieldSize:          "4\"",
	})
	key := KeyForRow(constants.Spool, row, 2)

	std, ok := key.(StandardKey)
	require.True(t, ok, "sparse takeoff spools use the standard key")
	assert.Equal(t, constants.Spool, std.ComponentType())
	assert.Equal(t, "P-1001-01|PIPE-CS|4\"|2", key.String())
}

func TestKeyForRow_Weld(t *testing.T) {
	row := mkRow(1, map[ExpectedField]string{
		FieldDrawing: "p-1001 - 01",
		FieldWeldID:  "fw-012",
	})
	key := KeyForRow(constants.FieldWeld, row, 1)

	weld, ok := key.(WeldKey)
	require.True(t, ok)
	assert.Equal(t, constants.FieldWeld, weld.ComponentType())
	assert.Equal(t, "P-1001-01|FW-012", key.String(),
		"drawing is normalized and weld number uppercased")
}

func TestKeyForRow_WeldWithoutNumberUsesSeq(t *testing.T) {
	row := mkRow(1, map[ExpectedField]string{FieldDrawing: "P-1001-01"})
	key := KeyForRow(constants.FieldWeld, row, 7)
	assert.Equal(t, "P-1001-01|7", key.String())
}

func TestKeyForRow_StandardKeyCanonicalForm(t *testing.T) {
	row := mkRow(1, map[ExpectedField]string{
		FieldDrawing:       "P-1001-01",
		FieldCommodityCode: "vlv-gate-150",
		FieldSize:          "2\"",
	})
	key := KeyForRow(constants.Valve, row, 1)
	assert.Equal(t, "P-1001-01|VLV-GATE-150|2\"|1", key.String())
}

func TestStandardKey_SeqDistinguishesInstances(t *testing.T) {
	a := StandardKey{Type: constants.Support, DrawingNorm: "P-1", CommodityCode: "SUP", Size: "4\"", Seq: 1}
	b := StandardKey{Type: constants.Support, DrawingNorm: "P-1", CommodityCode: "SUP", Size: "4\"", Seq: 2}
	assert.NotEqual(t, a.String(), b.String())
}
