package importer

// ExpectedField is one of the semantic fields the column mapper targets.
// The string value is the field's canonical header name.
type ExpectedField string

const (
	FieldDrawing       ExpectedField = "DRAWING"
	FieldType          ExpectedField = "TYPE"
	FieldQty           ExpectedField = "QTY"
	FieldCommodityCode ExpectedField = "COMMODITY CODE"
	FieldSpec          ExpectedField = "SPEC"
	FieldDescription   ExpectedField = "DESCRIPTION"
	FieldSize          ExpectedField = "SIZE"
	FieldComments      ExpectedField = "COMMENTS"
	FieldSeq           ExpectedField = "SEQ"
	FieldSpoolID       ExpectedField = "SPOOL ID"
	FieldArea          ExpectedField = "AREA"
	FieldSystem        ExpectedField = "SYSTEM"
	FieldTestPackage   ExpectedField = "TEST PACKAGE"
	FieldWeldID        ExpectedField = "WELD ID"
	FieldWeldType      ExpectedField = "WELD TYPE"
	FieldWelder        ExpectedField = "WELDER"
	FieldMaterial      ExpectedField = "MATERIAL"
)

// RequiredFields must all be mapped for an import to proceed past the column
// mapper. Order here is the order fields claim headers.
var RequiredFields = []ExpectedField{
	FieldDrawing,
	FieldType,
	FieldQty,
	FieldCommodityCode,
}

// OptionalFields enrich rows when present but never block an import.
var OptionalFields = []ExpectedField{
	FieldSpec,
	FieldDescription,
	FieldSize,
	FieldComments,
	FieldSeq,
	FieldSpoolID,
	FieldArea,
	FieldSystem,
	FieldTestPackage,
	FieldWeldID,
	FieldWeldType,
	FieldWelder,
	FieldMaterial,
}

// fieldSynonyms maps known alternate spellings (lowercased) to expected
// fields. Matching here yields the lowest confidence tier.
var fieldSynonyms = map[string]ExpectedField{
	"drawing number":           FieldDrawing,
	"drawing no":               FieldDrawing,
	"dwg":                      FieldDrawing,
	"dwg no":                   FieldDrawing,
	"dwg #":                    FieldDrawing,
	"iso":                      FieldDrawing,
	"iso number":               FieldDrawing,
	"isometric":                FieldDrawing,
	"component type":           FieldType,
	"item type":                FieldType,
	"category":                 FieldType,
	"quantity":                 FieldQty,
	"qty.":                     FieldQty,
	"count":                    FieldQty,
	"cmdty code":               FieldCommodityCode,
	"cmdty":                    FieldCommodityCode,
	"commodity":                FieldCommodityCode,
	"item code":                FieldCommodityCode,
	"material code":            FieldCommodityCode,
	"pipe spec":                FieldSpec,
	"spec code":                FieldSpec,
	"line spec":                FieldSpec,
	"desc":                     FieldDescription,
	"material description":     FieldDescription,
	"description of materials": FieldDescription,
	"nps":                      FieldSize,
	"nominal size":             FieldSize,
	"size (in)":                FieldSize,
	"dia":                      FieldSize,
	"remark":                   FieldComments,
	"remarks":                  FieldComments,
	"notes":                    FieldComments,
	"note":                     FieldComments,
	"sequence":                 FieldSeq,
	"item no":                  FieldSeq,
	"spool":                    FieldSpoolID,
	"spool no":                 FieldSpoolID,
	"spool number":             FieldSpoolID,
	"piece mark":               FieldSpoolID,
	"mark no":                  FieldSpoolID,
	"unit area":                FieldArea,
	"work area":                FieldArea,
	"sub area":                 FieldArea,
	"sys":                      FieldSystem,
	"system name":              FieldSystem,
	"system no":                FieldSystem,
	"test pkg":                 FieldTestPackage,
	"test pkg no":              FieldTestPackage,
	"test package number":      FieldTestPackage,
	"tp":                       FieldTestPackage,
	"weld number":              FieldWeldID,
	"weld no":                  FieldWeldID,
	"weld #":                   FieldWeldID,
	"weld id":                  FieldWeldID,
	"type of weld":             FieldWeldType,
	"joint type":               FieldWeldType,
	"welder stencil":           FieldWelder,
	"stencil":                  FieldWelder,
	"material grade":           FieldMaterial,
	"matl":                     FieldMaterial,
}

// IsRequired reports whether f is one of the required fields.
func IsRequired(f ExpectedField) bool {
	for _, r := range RequiredFields {
		if r == f {
			return true
		}
	}
	return false
}
