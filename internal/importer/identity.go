package importer

import (
	"fmt"
	"strings"

	"github.com/pipetrak/pipetrak/constants"
)

// IdentityKey is the structured natural key uniquely identifying a component
// within a project. The shape varies by component type, so each variant is a
// distinct struct and callers dispatch on ComponentType, never on structure.
type IdentityKey interface {
	ComponentType() constants.ComponentType
	// String is the canonical form stored in components.identity_key and
	// used for in-batch and cross-import deduplication.
	String() string
}

// SpoolKey identifies a spool by its shop-assigned spool ID.
type SpoolKey struct {
	Type    constants.ComponentType
	SpoolID string
}

func (k SpoolKey) ComponentType() constants.ComponentType { return k.Type }

func (k SpoolKey) String() string {
	return strings.ToUpper(strings.TrimSpace(k.SpoolID))
}

// WeldKey identifies a field weld by drawing and weld number.
type WeldKey struct {
	DrawingNorm string
	WeldNumber  string
}

func (k WeldKey) ComponentType() constants.ComponentType { return constants.FieldWeld }

func (k WeldKey) String() string {
	return fmt.Sprintf("%s|%s", k.DrawingNorm, strings.ToUpper(strings.TrimSpace(k.WeldNumber)))
}

// StandardKey identifies every other component type by drawing, commodity
// code, size and an instance sequence number.
type StandardKey struct {
	Type          constants.ComponentType
	DrawingNorm   string
	CommodityCode string
	Size          string
	Seq           int
}

func (k StandardKey) ComponentType() constants.ComponentType { return k.Type }

func (k StandardKey) String() string {
	return fmt.Sprintf("%s|%s|%s|%d",
		k.DrawingNorm,
		strings.ToUpper(strings.TrimSpace(k.CommodityCode)),
		strings.ToUpper(strings.TrimSpace(k.Size)),
		k.Seq,
	)
}

// KeyForRow derives the identity key for a mapped row of a known component
// type. A spool without a SPOOL ID cell falls back to the standard key so a
// sparse take-off still imports.
func KeyForRow(ct constants.ComponentType, row MappedRow, seq int) IdentityKey {
	drawingNorm := NormalizeDrawing(row.Get(FieldDrawing))

	switch ct {
	case constants.Spool:
		if spoolID := row.Get(FieldSpoolID); spoolID != "" {
			return SpoolKey{Type: ct, SpoolID: spoolID}
		}
		return StandardKey{
			Type:          ct,
			DrawingNorm:   drawingNorm,
			CommodityCode: row.Get(FieldCommodityCode),
			Size:          row.Get(FieldSize),
			Seq:           seq,
		}
	case constants.FieldWeld:
		weldNo := row.Get(FieldWeldID)
		if weldNo == "" {
			weldNo = fmt.Sprintf("%d", seq)
		}
		return WeldKey{DrawingNorm: drawingNorm, WeldNumber: weldNo}
	default:
		return StandardKey{
			Type:          ct,
			DrawingNorm:   drawingNorm,
			CommodityCode: row.Get(FieldCommodityCode),
			Size:          row.Get(FieldSize),
			Seq:           seq,
		}
	}
}
