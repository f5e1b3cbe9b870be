package seed

import (
	"strconv"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// TableHeaders is the column order used by Table, matching the canonical
// expected-field names so a generated sheet maps at full confidence.
var TableHeaders = []string{
	string(importer.FieldDrawing),
	string(importer.FieldType),
	string(importer.FieldQty),
	string(importer.FieldCommodityCode),
	string(importer.FieldSpec),
	string(importer.FieldDescription),
	string(importer.FieldSize),
	string(importer.FieldSeq),
	string(importer.FieldSpoolID),
	string(importer.FieldArea),
	string(importer.FieldSystem),
	string(importer.FieldTestPackage),
	string(importer.FieldWeldID),
	string(importer.FieldWeldType),
	string(importer.FieldWelder),
}

// Table renders the dataset as header + data rows, the shape a takeoff
// spreadsheet arrives in. Milestone progress does not survive the trip; a
// sheet written from here always imports as a fresh takeoff.
func (d *Dataset) Table() [][]string {
	out := make([][]string, 0, len(d.Rows)+1)
	out = append(out, TableHeaders)
	for _, r := range d.Rows {
		spoolID := ""
		if k, ok := r.Key.(importer.SpoolKey); ok {
			spoolID = k.SpoolID
		}
		seq := ""
		if r.Type != constants.Spool && r.Type != constants.FieldWeld {
			seq = strconv.Itoa(r.Seq)
		}
		out = append(out, []string{
			r.DrawingNumber,
			string(r.Type),
			strconv.Itoa(r.Quantity),
			r.CommodityCode,
			r.Spec,
			r.Description,
			r.Size,
			seq,
			spoolID,
			r.Area,
			r.System,
			r.TestPackage,
			r.WeldNumber,
			r.WeldType,
			r.Welder,
		})
	}
	return out
}
