package importer

import "strings"

// MatchTier is the strength of a header-to-field match.
type MatchTier string

const (
	TierExact           MatchTier = "exact"
	TierCaseInsensitive MatchTier = "case-insensitive"
	TierSynonym         MatchTier = "synonym"
)

// Confidence per tier. These exact values surface in the mapping preview.
const (
	ConfidenceExact           = 100
	ConfidenceCaseInsensitive = 95
	ConfidenceSynonym         = 85
)

// ColumnMapping records one accepted header-to-field match.
type ColumnMapping struct {
	InputColumn string        `json:"inputColumn"`
	Field       ExpectedField `json:"expectedField"`
	Confidence  int           `json:"confidence"`
	Tier        MatchTier     `json:"matchTier"`
}

// MappingResult is the column mapper's full output. It is computed once per
// import attempt from the header row and immutable thereafter.
type MappingResult struct {
	Mappings             []ColumnMapping          `json:"mappings"`
	ByField              map[ExpectedField]string `json:"-"`
	UnmappedColumns      []string                 `json:"unmappedColumns"`
	MissingRequired      []ExpectedField          `json:"missingRequiredFields"`
	HasAllRequiredFields bool                     `json:"hasAllRequiredFields"`
}

// MapColumns maps input column headers to expected fields. For each field,
// match tiers are tried in priority order (exact, case-insensitive, synonym)
// over headers not yet claimed by another field; the first tier that matches
// wins. A missing required field is reported as data, never as an error;
// blocking on it is the caller's decision.
func MapColumns(headers []string) MappingResult {
	result := MappingResult{
		ByField: make(map[ExpectedField]string),
	}
	claimed := make([]bool, len(headers))

	fields := make([]ExpectedField, 0, len(RequiredFields)+len(OptionalFields))
	fields = append(fields, RequiredFields...)
	fields = append(fields, OptionalFields...)

	for _, field := range fields {
		idx, tier, conf := matchHeader(field, headers, claimed)
		if idx < 0 {
			continue
		}
		claimed[idx] = true
		result.ByField[field] = headers[idx]
		result.Mappings = append(result.Mappings, ColumnMapping{
			InputColumn: headers[idx],
			Field:       field,
			Confidence:  conf,
			Tier:        tier,
		})
	}

	for i, h := range headers {
		if !claimed[i] {
			result.UnmappedColumns = append(result.UnmappedColumns, h)
		}
	}
	for _, f := range RequiredFields {
		if _, ok := result.ByField[f]; !ok {
			result.MissingRequired = append(result.MissingRequired, f)
		}
	}
	result.HasAllRequiredFields = len(result.MissingRequired) == 0
	return result
}

func matchHeader(field ExpectedField, headers []string, claimed []bool) (int, MatchTier, int) {
	canonical := string(field)

	for i, h := range headers {
		if !claimed[i] && strings.TrimSpace(h) == canonical {
			return i, TierExact, ConfidenceExact
		}
	}
	for i, h := range headers {
		if !claimed[i] && strings.EqualFold(strings.TrimSpace(h), canonical) {
			return i, TierCaseInsensitive, ConfidenceCaseInsensitive
		}
	}
	for i, h := range headers {
		if claimed[i] {
			continue
		}
		if f, ok := fieldSynonyms[strings.ToLower(strings.TrimSpace(h))]; ok && f == field {
			return i, TierSynonym, ConfidenceSynonym
		}
	}
	return -1, "", 0
}
