// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// JobNumber applies equality check predicate on the "job_number" field. It's identical to JobNumberEQ.
func JobNumber(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldJobNumber, v))
}

// Client applies equality check predicate on the "client" field. It's identical to ClientEQ.
func Client(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClient, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldName, v))
}

// JobNumberEQ applies the EQ predicate on the "job_number" field.
func JobNumberEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldJobNumber, v))
}

// JobNumberNEQ applies the NEQ predicate on the "job_number" field.
func JobNumberNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldJobNumber, v))
}

// JobNumberIn applies the In predicate on the "job_number" field.
func JobNumberIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldJobNumber, vs...))
}

// JobNumberNotIn applies the NotIn predicate on the "job_number" field.
func JobNumberNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldJobNumber, vs...))
}

// JobNumberGT applies the GT predicate on the "job_number" field.
func JobNumberGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldJobNumber, v))
}

// JobNumberGTE applies the GTE predicate on the "job_number" field.
func JobNumberGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldJobNumber, v))
}

// JobNumberLT applies the LT predicate on the "job_number" field.
func JobNumberLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldJobNumber, v))
}

// JobNumberLTE applies the LTE predicate on the "job_number" field.
func JobNumberLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldJobNumber, v))
}

// JobNumberContains applies the Contains predicate on the "job_number" field.
func JobNumberContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldJobNumber, v))
}

// JobNumberHasPrefix applies the HasPrefix predicate on the "job_number" field.
func JobNumberHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldJobNumber, v))
}

// JobNumberHasSuffix applies the HasSuffix predicate on the "job_number" field.
func JobNumberHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldJobNumber, v))
}

// JobNumberIsNil applies the IsNil predicate on the "job_number" field.
func JobNumberIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldJobNumber))
}

// JobNumberNotNil applies the NotNil predicate on the "job_number" field.
func JobNumberNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldJobNumber))
}

// JobNumberEqualFold applies the EqualFold predicate on the "job_number" field.
func JobNumberEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldJobNumber, v))
}

// JobNumberContainsFold applies the ContainsFold predicate on the "job_number" field.
func JobNumberContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldJobNumber, v))
}

// ClientEQ applies the EQ predicate on the "client" field.
func ClientEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldClient, v))
}

// ClientNEQ applies the NEQ predicate on the "client" field.
func ClientNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldClient, v))
}

// ClientIn applies the In predicate on the "client" field.
func ClientIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldClient, vs...))
}

// ClientNotIn applies the NotIn predicate on the "client" field.
func ClientNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldClient, vs...))
}

// ClientGT applies the GT predicate on the "client" field.
func ClientGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldClient, v))
}

// ClientGTE applies the GTE predicate on the "client" field.
func ClientGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldClient, v))
}

// ClientLT applies the LT predicate on the "client" field.
func ClientLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldClient, v))
}

// ClientLTE applies the LTE predicate on the "client" field.
func ClientLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldClient, v))
}

// ClientContains applies the Contains predicate on the "client" field.
func ClientContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldClient, v))
}

// ClientHasPrefix applies the HasPrefix predicate on the "client" field.
func ClientHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldClient, v))
}

// ClientHasSuffix applies the HasSuffix predicate on the "client" field.
func ClientHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldClient, v))
}

// ClientIsNil applies the IsNil predicate on the "client" field.
func ClientIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldClient))
}

// ClientNotNil applies the NotNil predicate on the "client" field.
func ClientNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldClient))
}

// ClientEqualFold applies the EqualFold predicate on the "client" field.
func ClientEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldClient, v))
}

// ClientContainsFold applies the ContainsFold predicate on the "client" field.
func ClientContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldClient, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAreas applies the HasEdge predicate on the "areas" edge.
func HasAreas() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AreasTable, AreasColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAreasWith applies the HasEdge predicate on the "areas" edge with a given conditions (other predicates).
func HasAreasWith(preds ...predicate.Area) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newAreasStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystems applies the HasEdge predicate on the "systems" edge.
func HasSystems() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SystemsTable, SystemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemsWith applies the HasEdge predicate on the "systems" edge with a given conditions (other predicates).
func HasSystemsWith(preds ...predicate.System) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newSystemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestPackages applies the HasEdge predicate on the "test_packages" edge.
func HasTestPackages() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TestPackagesTable, TestPackagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestPackagesWith applies the HasEdge predicate on the "test_packages" edge with a given conditions (other predicates).
func HasTestPackagesWith(preds ...predicate.TestPackage) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newTestPackagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDrawings applies the HasEdge predicate on the "drawings" edge.
func HasDrawings() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DrawingsTable, DrawingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingsWith applies the HasEdge predicate on the "drawings" edge with a given conditions (other predicates).
func HasDrawingsWith(preds ...predicate.Drawing) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newDrawingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComponents applies the HasEdge predicate on the "components" edge.
func HasComponents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ComponentsTable, ComponentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasComponentsWith applies the HasEdge predicate on the "components" edge with a given conditions (other predicates).
func HasComponentsWith(preds ...predicate.Component) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newComponentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFieldWelds applies the HasEdge predicate on the "field_welds" edge.
func HasFieldWelds() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldWeldsTable, FieldWeldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldWeldsWith applies the HasEdge predicate on the "field_welds" edge with a given conditions (other predicates).
func HasFieldWeldsWith(preds ...predicate.FieldWeld) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newFieldWeldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWelders applies the HasEdge predicate on the "welders" edge.
func HasWelders() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WeldersTable, WeldersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWeldersWith applies the HasEdge predicate on the "welders" edge with a given conditions (other predicates).
func HasWeldersWith(preds ...predicate.Welder) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newWeldersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImportJobs applies the HasEdge predicate on the "import_jobs" edge.
func HasImportJobs() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ImportJobsTable, ImportJobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImportJobsWith applies the HasEdge predicate on the "import_jobs" edge with a given conditions (other predicates).
func HasImportJobsWith(preds ...predicate.ImportJob) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newImportJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
