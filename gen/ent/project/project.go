// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldJobNumber holds the string denoting the job_number field in the database.
	FieldJobNumber = "job_number"
	// FieldClient holds the string denoting the client field in the database.
	FieldClient = "client"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAreas holds the string denoting the areas edge name in mutations.
	EdgeAreas = "areas"
	// EdgeSystems holds the string denoting the systems edge name in mutations.
	EdgeSystems = "systems"
	// EdgeTestPackages holds the string denoting the test_packages edge name in mutations.
	EdgeTestPackages = "test_packages"
	// EdgeDrawings holds the string denoting the drawings edge name in mutations.
	EdgeDrawings = "drawings"
	// EdgeComponents holds the string denoting the components edge name in mutations.
	EdgeComponents = "components"
	// EdgeFieldWelds holds the string denoting the field_welds edge name in mutations.
	EdgeFieldWelds = "field_welds"
	// EdgeWelders holds the string denoting the welders edge name in mutations.
	EdgeWelders = "welders"
	// EdgeImportJobs holds the string denoting the import_jobs edge name in mutations.
	EdgeImportJobs = "import_jobs"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// AreasTable is the table that holds the areas relation/edge.
	AreasTable = "areas"
	// AreasInverseTable is the table name for the Area entity.
	// It exists in this package in order to avoid circular dependency with the "area" package.
	AreasInverseTable = "areas"
	// AreasColumn is the table column denoting the areas relation/edge.
	AreasColumn = "project_id"
	// SystemsTable is the table that holds the systems relation/edge.
	SystemsTable = "systems"
	// SystemsInverseTable is the table name for the System entity.
	// It exists in this package in order to avoid circular dependency with the "system" package.
	SystemsInverseTable = "systems"
	// SystemsColumn is the table column denoting the systems relation/edge.
	SystemsColumn = "project_id"
	// TestPackagesTable is the table that holds the test_packages relation/edge.
	TestPackagesTable = "test_packages"
	// TestPackagesInverseTable is the table name for the TestPackage entity.
	// It exists in this package in order to avoid circular dependency with the "testpackage" package.
	TestPackagesInverseTable = "test_packages"
	// TestPackagesColumn is the table column denoting the test_packages relation/edge.
	TestPackagesColumn = "project_id"
	// DrawingsTable is the table that holds the drawings relation/edge.
	DrawingsTable = "drawings"
	// DrawingsInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingsInverseTable = "drawings"
	// DrawingsColumn is the table column denoting the drawings relation/edge.
	DrawingsColumn = "project_id"
	// ComponentsTable is the table that holds the components relation/edge.
	ComponentsTable = "components"
	// ComponentsInverseTable is the table name for the Component entity.
	// It exists in this package in order to avoid circular dependency with the "component" package.
	ComponentsInverseTable = "components"
	// ComponentsColumn is the table column denoting the components relation/edge.
	ComponentsColumn = "project_id"
	// FieldWeldsTable is the table that holds the field_welds relation/edge.
	FieldWeldsTable = "field_welds"
	// FieldWeldsInverseTable is the table name for the FieldWeld entity.
	// It exists in this package in order to avoid circular dependency with the "fieldweld" package.
	FieldWeldsInverseTable = "field_welds"
	// FieldWeldsColumn is the table column denoting the field_welds relation/edge.
	FieldWeldsColumn = "project_id"
	// WeldersTable is the table that holds the welders relation/edge.
	WeldersTable = "welders"
	// WeldersInverseTable is the table name for the Welder entity.
	// It exists in this package in order to avoid circular dependency with the "welder" package.
	WeldersInverseTable = "welders"
	// WeldersColumn is the table column denoting the welders relation/edge.
	WeldersColumn = "project_id"
	// ImportJobsTable is the table that holds the import_jobs relation/edge.
	ImportJobsTable = "import_jobs"
	// ImportJobsInverseTable is the table name for the ImportJob entity.
	// It exists in this package in order to avoid circular dependency with the "importjob" package.
	ImportJobsInverseTable = "import_jobs"
	// ImportJobsColumn is the table column denoting the import_jobs relation/edge.
	ImportJobsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldJobNumber,
	FieldClient,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Project queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByJobNumber orders the results by the job_number field.
func ByJobNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobNumber, opts...).ToFunc()
}

// ByClient orders the results by the client field.
func ByClient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClient, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAreasCount orders the results by areas count.
func ByAreasCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAreasStep(), opts...)
	}
}

// ByAreas orders the results by areas terms.
func ByAreas(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAreasStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySystemsCount orders the results by systems count.
func BySystemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSystemsStep(), opts...)
	}
}

// BySystems orders the results by systems terms.
func BySystems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSystemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTestPackagesCount orders the results by test_packages count.
func ByTestPackagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestPackagesStep(), opts...)
	}
}

// ByTestPackages orders the results by test_packages terms.
func ByTestPackages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestPackagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDrawingsCount orders the results by drawings count.
func ByDrawingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDrawingsStep(), opts...)
	}
}

// ByDrawings orders the results by drawings terms.
func ByDrawings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDrawingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByComponentsCount orders the results by components count.
func ByComponentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newComponentsStep(), opts...)
	}
}

// ByComponents orders the results by components terms.
func ByComponents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newComponentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFieldWeldsCount orders the results by field_welds count.
func ByFieldWeldsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFieldWeldsStep(), opts...)
	}
}

// ByFieldWelds orders the results by field_welds terms.
func ByFieldWelds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldWeldsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWeldersCount orders the results by welders count.
func ByWeldersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWeldersStep(), opts...)
	}
}

// ByWelders orders the results by welders terms.
func ByWelders(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWeldersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByImportJobsCount orders the results by import_jobs count.
func ByImportJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImportJobsStep(), opts...)
	}
}

// ByImportJobs orders the results by import_jobs terms.
func ByImportJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImportJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAreasStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AreasInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AreasTable, AreasColumn),
	)
}
func newSystemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SystemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SystemsTable, SystemsColumn),
	)
}
func newTestPackagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestPackagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestPackagesTable, TestPackagesColumn),
	)
}
func newDrawingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DrawingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DrawingsTable, DrawingsColumn),
	)
}
func newComponentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ComponentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ComponentsTable, ComponentsColumn),
	)
}
func newFieldWeldsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldWeldsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FieldWeldsTable, FieldWeldsColumn),
	)
}
func newWeldersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WeldersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WeldersTable, WeldersColumn),
	)
}
func newImportJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImportJobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImportJobsTable, ImportJobsColumn),
	)
}
