package constants

// RowStatus is the outcome of validating one input row.
type RowStatus string

const (
	RowValid   RowStatus = "valid"
	RowSkipped RowStatus = "skipped" // excluded from the import, never blocks it
	RowError   RowStatus = "error"   // blocks the whole import until corrected
)

// ValidationCategory is the closed reason taxonomy shared by row validation
// and write-stage reporting.
type ValidationCategory string

const (
	CategoryUnsupportedType        ValidationCategory = "unsupported_type"
	CategoryZeroQuantity           ValidationCategory = "zero_quantity"
	CategoryMissingRequiredField   ValidationCategory = "missing_required_field"
	CategoryDuplicateIdentityKey   ValidationCategory = "duplicate_identity_key"
	CategoryEmptyDrawing           ValidationCategory = "empty_drawing"
	CategoryInvalidQuantity        ValidationCategory = "invalid_quantity"
	CategoryMalformedData          ValidationCategory = "malformed_data"
	CategoryMissingRequiredColumns ValidationCategory = "missing_required_columns"
)
