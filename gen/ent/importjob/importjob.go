// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the importjob type in the database.
	Label = "import_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalRows holds the string denoting the total_rows field in the database.
	FieldTotalRows = "total_rows"
	// FieldValidRows holds the string denoting the valid_rows field in the database.
	FieldValidRows = "valid_rows"
	// FieldSkippedRows holds the string denoting the skipped_rows field in the database.
	FieldSkippedRows = "skipped_rows"
	// FieldErrorRows holds the string denoting the error_rows field in the database.
	FieldErrorRows = "error_rows"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// Table holds the table name of the importjob in the database.
	Table = "import_jobs"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "import_jobs"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for importjob fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldFilename,
	FieldStatus,
	FieldTotalRows,
	FieldValidRows,
	FieldSkippedRows,
	FieldErrorRows,
	FieldResult,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultTotalRows holds the default value on creation for the "total_rows" field.
	DefaultTotalRows int
	// TotalRowsValidator is a validator for the "total_rows" field. It is called by the builders before save.
	TotalRowsValidator func(int) error
	// DefaultValidRows holds the default value on creation for the "valid_rows" field.
	DefaultValidRows int
	// ValidRowsValidator is a validator for the "valid_rows" field. It is called by the builders before save.
	ValidRowsValidator func(int) error
	// DefaultSkippedRows holds the default value on creation for the "skipped_rows" field.
	DefaultSkippedRows int
	// SkippedRowsValidator is a validator for the "skipped_rows" field. It is called by the builders before save.
	SkippedRowsValidator func(int) error
	// DefaultErrorRows holds the default value on creation for the "error_rows" field.
	DefaultErrorRows int
	// ErrorRowsValidator is a validator for the "error_rows" field. It is called by the builders before save.
	ErrorRowsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ImportJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalRows orders the results by the total_rows field.
func ByTotalRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRows, opts...).ToFunc()
}

// ByValidRows orders the results by the valid_rows field.
func ByValidRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidRows, opts...).ToFunc()
}

// BySkippedRows orders the results by the skipped_rows field.
func BySkippedRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedRows, opts...).ToFunc()
}

// ByErrorRows orders the results by the error_rows field.
func ByErrorRows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorRows, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
