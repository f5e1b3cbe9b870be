package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
)

// ComponentRow is a validated, normalized row ready for the bulk writer.
type ComponentRow struct {
	RowNumber     int
	Type          constants.ComponentType
	Key           IdentityKey
	DrawingNumber string
	DrawingNorm   string
	CommodityCode string
	Spec          string
	Description   string
	Size          string
	Quantity      int
	Seq           int
	Comments      string
	Area          string
	System        string
	TestPackage   string
	WeldNumber    string
	WeldType      string
	Welder        string
	Material      string
	Attributes    map[string]string
	// Milestones carries pre-seeded progress when the row comes from the
	// demo generator; nil means "freshly initialized" and the writer builds
	// the initial state from the type's template.
	Milestones entity.MilestoneState
}

// RowResult is the outcome of validating a single row.
type RowResult struct {
	RowNumber int                          `json:"rowNumber"`
	Status    constants.RowStatus          `json:"status"`
	Category  constants.ValidationCategory `json:"category,omitempty"`
	Reason    string                       `json:"reason,omitempty"`
	Data      *ComponentRow                `json:"-"`
}

// Summary aggregates per-row results for the whole batch.
type Summary struct {
	TotalRows    int                                  `json:"totalRows"`
	ValidCount   int                                  `json:"validCount"`
	SkippedCount int                                  `json:"skippedCount"`
	ErrorCount   int                                  `json:"errorCount"`
	CanImport    bool                                 `json:"canImport"`
	Results      []RowResult                          `json:"results"`
	ByStatus     map[constants.RowStatus]int          `json:"resultsByStatus"`
	ByCategory   map[constants.ValidationCategory]int `json:"resultsByCategory"`
}

// ValidRows returns the normalized payloads of all valid rows, in source order.
func (s Summary) ValidRows() []ComponentRow {
	rows := make([]ComponentRow, 0, s.ValidCount)
	for _, r := range s.Results {
		if r.Status == constants.RowValid && r.Data != nil {
			rows = append(rows, *r.Data)
		}
	}
	return rows
}

// ValidateRows classifies every mapped row as valid, skipped or error.
// Checks run in a fixed order and the first failing check decides the row's
// fate; a row's status is never revisited. Skips (zero quantity, unsupported
// type) are placeholder lines and never block the import; errors indicate
// source-data problems and block it entirely, so the file gets fixed once
// instead of partial imports proliferating.
func ValidateRows(rows []MappedRow) Summary {
	summary := Summary{
		TotalRows:  len(rows),
		ByStatus:   make(map[constants.RowStatus]int),
		ByCategory: make(map[constants.ValidationCategory]int),
	}
	seenKeys := make(map[string]int) // canonical key -> first row number

	for _, row := range rows {
		res := validateRow(row, seenKeys)
		summary.Results = append(summary.Results, res)
		summary.ByStatus[res.Status]++
		if res.Category != "" {
			summary.ByCategory[res.Category]++
		}
		switch res.Status {
		case constants.RowValid:
			summary.ValidCount++
		case constants.RowSkipped:
			summary.SkippedCount++
		case constants.RowError:
			summary.ErrorCount++
		}
	}

	// Skips never block; errors always do.
	summary.CanImport = summary.ErrorCount == 0
	return summary
}

func validateRow(row MappedRow, seenKeys map[string]int) RowResult {
	res := RowResult{RowNumber: row.Number}

	if row.Get(FieldDrawing) == "" {
		return rowError(res, constants.CategoryEmptyDrawing, "DRAWING is empty")
	}

	for _, f := range RequiredFields {
		if f == FieldDrawing {
			continue
		}
		if row.Get(f) == "" {
			return rowError(res, constants.CategoryMissingRequiredField,
				fmt.Sprintf("%s is empty", f))
		}
	}

	qty, err := parseQuantity(row.Get(FieldQty))
	if err != nil {
		return rowError(res, err.category, err.reason)
	}
	if qty == 0 {
		// a placeholder line item, not a defect
		return rowSkip(res, constants.CategoryZeroQuantity, "quantity is zero")
	}

	ct, ok := constants.CanonicalizeType(row.Get(FieldType))
	if !ok {
		return rowSkip(res, constants.CategoryUnsupportedType,
			fmt.Sprintf("type %q is not supported", row.Get(FieldType)))
	}

	seq := 1
	if s := row.Get(FieldSeq); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			seq = n
		}
	}

	key := KeyForRow(ct, row, seq)
	dedup := string(ct) + "\x00" + key.String()
	if first, dup := seenKeys[dedup]; dup {
		return rowError(res, constants.CategoryDuplicateIdentityKey,
			fmt.Sprintf("identity key %q duplicates row %d", key.String(), first))
	}
	seenKeys[dedup] = row.Number

	res.Status = constants.RowValid
	res.Data = &ComponentRow{
		RowNumber:     row.Number,
		Type:          ct,
		Key:           key,
		DrawingNumber: row.Get(FieldDrawing),
		DrawingNorm:   NormalizeDrawing(row.Get(FieldDrawing)),
		CommodityCode: row.Get(FieldCommodityCode),
		Spec:          row.Get(FieldSpec),
		Description:   row.Get(FieldDescription),
		Size:          row.Get(FieldSize),
		Quantity:      qty,
		Seq:           seq,
		Comments:      row.Get(FieldComments),
		Area:          row.Get(FieldArea),
		System:        row.Get(FieldSystem),
		TestPackage:   row.Get(FieldTestPackage),
		WeldNumber:    row.Get(FieldWeldID),
		WeldType:      row.Get(FieldWeldType),
		Welder:        row.Get(FieldWelder),
		Material:      row.Get(FieldMaterial),
		Attributes:    row.Attributes,
	}
	return res
}

type quantityError struct {
	category constants.ValidationCategory
	reason   string
}

func (e *quantityError) Error() string { return e.reason }

func parseQuantity(raw string) (int, *quantityError) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	qty, err := strconv.Atoi(cleaned)
	if err != nil {
		// tolerate "2.0" style cells from spreadsheet exports
		if f, ferr := strconv.ParseFloat(cleaned, 64); ferr == nil && f == float64(int(f)) {
			qty = int(f)
		} else {
			return 0, &quantityError{
				category: constants.CategoryInvalidQuantity,
				reason:   fmt.Sprintf("quantity %q is not numeric", raw),
			}
		}
	}
	if qty < 0 {
		return 0, &quantityError{
			category: constants.CategoryMalformedData,
			reason:   fmt.Sprintf("quantity %q is negative", raw),
		}
	}
	return qty, nil
}

func rowError(res RowResult, cat constants.ValidationCategory, reason string) RowResult {
	res.Status = constants.RowError
	res.Category = cat
	res.Reason = reason
	return res
}

func rowSkip(res RowResult, cat constants.ValidationCategory, reason string) RowResult {
	res.Status = constants.RowSkipped
	res.Category = cat
	res.Reason = reason
	return res
}
