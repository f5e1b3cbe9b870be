// Code generated by ent, DO NOT EDIT.

package component

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the component type in the database.
	Label = "component"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldDrawingID holds the string denoting the drawing_id field in the database.
	FieldDrawingID = "drawing_id"
	// FieldAreaID holds the string denoting the area_id field in the database.
	FieldAreaID = "area_id"
	// FieldSystemID holds the string denoting the system_id field in the database.
	FieldSystemID = "system_id"
	// FieldTestPackageID holds the string denoting the test_package_id field in the database.
	FieldTestPackageID = "test_package_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldIdentityKey holds the string denoting the identity_key field in the database.
	FieldIdentityKey = "identity_key"
	// FieldCommodityCode holds the string denoting the commodity_code field in the database.
	FieldCommodityCode = "commodity_code"
	// FieldSpec holds the string denoting the spec field in the database.
	FieldSpec = "spec"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldComments holds the string denoting the comments field in the database.
	FieldComments = "comments"
	// FieldAttributes holds the string denoting the attributes field in the database.
	FieldAttributes = "attributes"
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
	// EdgeArea holds the string denoting the area edge name in mutations.
	EdgeArea = "area"
	// EdgeSystem holds the string denoting the system edge name in mutations.
	EdgeSystem = "system"
	// EdgeTestPackage holds the string denoting the test_package edge name in mutations.
	EdgeTestPackage = "test_package"
	// Table holds the table name of the component in the database.
	Table = "components"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "components"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// DrawingTable is the table that holds the drawing relation/edge.
	DrawingTable = "components"
	// DrawingInverseTable is the table name for the Drawing entity.
	// It exists in this package in order to avoid circular dependency with the "drawing" package.
	DrawingInverseTable = "drawings"
	// DrawingColumn is the table column denoting the drawing relation/edge.
	DrawingColumn = "drawing_id"
	// AreaTable is the table that holds the area relation/edge.
	AreaTable = "components"
	// AreaInverseTable is the table name for the Area entity.
	// It exists in this package in order to avoid circular dependency with the "area" package.
	AreaInverseTable = "areas"
	// AreaColumn is the table column denoting the area relation/edge.
	AreaColumn = "area_id"
	// SystemTable is the table that holds the system relation/edge.
	SystemTable = "components"
	// SystemInverseTable is the table name for the System entity.
	// It exists in this package in order to avoid circular dependency with the "system" package.
	SystemInverseTable = "systems"
	// SystemColumn is the table column denoting the system relation/edge.
	SystemColumn = "system_id"
	// TestPackageTable is the table that holds the test_package relation/edge.
	TestPackageTable = "components"
	// TestPackageInverseTable is the table name for the TestPackage entity.
	// It exists in this package in order to avoid circular dependency with the "testpackage" package.
	TestPackageInverseTable = "test_packages"
	// TestPackageColumn is the table column denoting the test_package relation/edge.
	TestPackageColumn = "test_package_id"
)

// Columns holds all SQL columns for component fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldDrawingID,
	FieldAreaID,
	FieldSystemID,
	FieldTestPackageID,
	FieldType,
	FieldIdentityKey,
	FieldCommodityCode,
	FieldSpec,
	FieldDescription,
	FieldSize,
	FieldQuantity,
	FieldSeq,
	FieldComments,
	FieldAttributes,
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
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// IdentityKeyValidator is a validator for the "identity_key" field. It is called by the builders before save.
	IdentityKeyValidator func(string) error
	// DefaultQuantity holds the default value on creation for the "quantity" field.
	DefaultQuantity int
	// QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	QuantityValidator func(int) error
	// DefaultSeq holds the default value on creation for the "seq" field.
	DefaultSeq int
	// SeqValidator is a validator for the "seq" field. It is called by the builders before save.
	SeqValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Component queries.
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

// ByAreaID orders the results by the area_id field.
func ByAreaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaID, opts...).ToFunc()
}

// BySystemID orders the results by the system_id field.
func BySystemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemID, opts...).ToFunc()
}

// ByTestPackageID orders the results by the test_package_id field.
func ByTestPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestPackageID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByIdentityKey orders the results by the identity_key field.
func ByIdentityKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdentityKey, opts...).ToFunc()
}

// ByCommodityCode orders the results by the commodity_code field.
func ByCommodityCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommodityCode, opts...).ToFunc()
}

// BySpec orders the results by the spec field.
func BySpec(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpec, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByComments orders the results by the comments field.
func ByComments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComments, opts...).ToFunc()
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

// ByAreaField orders the results by area field.
func ByAreaField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAreaStep(), sql.OrderByField(field, opts...))
	}
}

// BySystemField orders the results by system field.
func BySystemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSystemStep(), sql.OrderByField(field, opts...))
	}
}

// ByTestPackageField orders the results by test_package field.
func ByTestPackageField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestPackageStep(), sql.OrderByField(field, opts...))
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
func newAreaStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AreaInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AreaTable, AreaColumn),
	)
}
func newSystemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SystemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SystemTable, SystemColumn),
	)
}
func newTestPackageStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestPackageInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestPackageTable, TestPackageColumn),
	)
}
