// Code generated by ent, DO NOT EDIT.

package fieldweld

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the fieldweld type in the database.
	Label = "field_weld"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldDrawingID holds the string denoting the drawing_id field in the database.
	FieldDrawingID = "drawing_id"
	// FieldWelderID holds the string denoting the welder_id field in the database.
	FieldWelderID = "welder_id"
	// FieldWeldNumber holds the string denoting the weld_number field in the database.
	FieldWeldNumber = "weld_number"
	// FieldWeldType holds the string denoting the weld_type field in the database.
	FieldWeldType = "weld_type"
	// FieldMaterial holds the string denoting the material field in the database.
	FieldMaterial = "material"
	// FieldCurrentMilestones holds the string denoting the current_milestones field in the database.
	FieldCurrentMilestones = "current_milestones"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeDrawing holds the string denoting the drawing edge name in mutations.
	EdgeDrawing = "drawing"
	// EdgeWelder holds the string denoting the welder edge name in mutations.
	EdgeWelder = "welder"
	// Table holds the table name of the fieldweld in the database.
	Table = "field_welds"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "field_welds"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// DrawingTable is the table that holds the drawing relation/edge.
	DrawingTable = "field_welds"
	// DrawingInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingInverseTable = "drawings"
	// DrawingColumn is the table column denoting the drawing relation/edge.
	DrawingColumn = "drawing_id"
	// WelderTable is the table that holds the welder relation/edge.
	WelderTable = "field_welds"
	// WelderInverseTable is the table name for the Welder entity.
	// It exists in this package in order to avoid circular dependency with the "welder" package.
	WelderInverseTable = "welders"
	// WelderColumn is the table column denoting the welder relation/edge.
	WelderColumn = "welder_id"
)

// Columns holds all SQL columns for fieldweld fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldDrawingID,
	FieldWelderID,
	FieldWeldNumber,
	FieldWeldType,
	FieldMaterial,
	FieldCurrentMilestones,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// WeldNumberValidator is a validator for the "weld_number" field. It is called by the builders before save.
	WeldNumberValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FieldWeld queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByDrawingID orders the results by the drawing_id field.
func ByDrawingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrawingID, opts...).ToFunc()
}

// ByWelderID orders the results by the welder_id field.
func ByWelderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWelderID, opts...).ToFunc()
}

// ByWeldNumber orders the results by the weld_number field.
func ByWeldNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeldNumber, opts...).ToFunc()
}

// ByWeldType orders the results by the weld_type field.
func ByWeldType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeldType, opts...).ToFunc()
}

// ByMaterial orders the results by the material field.
func ByMaterial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaterial, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByDrawingField orders the results by drawing field.
func ByDrawingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDrawingStep(), sql.OrderByField(field, opts...))
	}
}

// ByWelderField orders the results by welder field.
func ByWelderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWelderStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newDrawingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DrawingInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
	)
}
func newWelderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WelderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WelderTable, WelderColumn),
	)
}
