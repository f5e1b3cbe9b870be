// Code generated by ent, DO NOT EDIT.

package drawing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldProjectID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldAreaID, v))
}

// SystemID applies equality check predicate on the "system_id" field. It's identical to SystemIDEQ.
func SystemID(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldSystemID, v))
}

// Number applies equality check predicate on the "number" field. It's identical to NumberEQ.
func Number(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldNumber, v))
}

// NormNumber applies equality check predicate on the "norm_number" field. It's identical to NormNumberEQ.
func NormNumber(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldNormNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldTitle, v))
}

// Revision applies equality check predicate on the "revision" field. It's identical to RevisionEQ.
func Revision(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldRevision, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldProjectID, vs...))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDIsNil applies the IsNil predicate on the "area_id" field.
func AreaIDIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldAreaID))
}

// AreaIDNotNil applies the NotNil predicate on the "area_id" field.
func AreaIDNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldAreaID))
}

// SystemIDEQ applies the EQ predicate on the "system_id" field.
func SystemIDEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldSystemID, v))
}

// SystemIDNEQ applies the NEQ predicate on the "system_id" field.
func SystemIDNEQ(v uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldSystemID, v))
}

// SystemIDIn applies the In predicate on the "system_id" field.
func SystemIDIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldSystemID, vs...))
}

// SystemIDNotIn applies the NotIn predicate on the "system_id" field.
func SystemIDNotIn(vs ...uuid.UUID) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldSystemID, vs...))
}

// SystemIDIsNil applies the IsNil predicate on the "system_id" field.
func SystemIDIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldSystemID))
}

// SystemIDNotNil applies the NotNil predicate on the "system_id" field.
func SystemIDNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldSystemID))
}

// NumberEQ applies the EQ predicate on the "number" field.
func NumberEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldNumber, v))
}

// NumberNEQ applies the NEQ predicate on the "number" field.
func NumberNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldNumber, v))
}

// NumberIn applies the In predicate on the "number" field.
func NumberIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldNumber, vs...))
}

// NumberNotIn applies the NotIn predicate on the "number" field.
func NumberNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldNumber, vs...))
}

// NumberGT applies the GT predicate on the "number" field.
func NumberGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldNumber, v))
}

// NumberGTE applies the GTE predicate on the "number" field.
func NumberGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldNumber, v))
}

// NumberLT applies the LT predicate on the "number" field.
func NumberLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldNumber, v))
}

// NumberLTE applies the LTE predicate on the "number" field.
func NumberLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldNumber, v))
}

// NumberContains applies the Contains predicate on the "number" field.
func NumberContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldNumber, v))
}

// NumberHasPrefix applies the HasPrefix predicate on the "number" field.
func NumberHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldNumber, v))
}

// NumberHasSuffix applies the HasSuffix predicate on the "number" field.
func NumberHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldNumber, v))
}

// NumberEqualFold applies the EqualFold predicate on the "number" field.
func NumberEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldNumber, v))
}

// NumberContainsFold applies the ContainsFold predicate on the "number" field.
func NumberContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldNumber, v))
}

// NormNumberEQ applies the EQ predicate on the "norm_number" field.
func NormNumberEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldNormNumber, v))
}

// NormNumberNEQ applies the NEQ predicate on the "norm_number" field.
func NormNumberNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldNormNumber, v))
}

// NormNumberIn applies the In predicate on the "norm_number" field.
func NormNumberIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldNormNumber, vs...))
}

// NormNumberNotIn applies the NotIn predicate on the "norm_number" field.
func NormNumberNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldNormNumber, vs...))
}

// NormNumberGT applies the GT predicate on the "norm_number" field.
func NormNumberGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldNormNumber, v))
}

// NormNumberGTE applies the GTE predicate on the "norm_number" field.
func NormNumberGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldNormNumber, v))
}

// NormNumberLT applies the LT predicate on the "norm_number" field.
func NormNumberLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldNormNumber, v))
}

// NormNumberLTE applies the LTE predicate on the "norm_number" field.
func NormNumberLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldNormNumber, v))
}

// NormNumberContains applies the Contains predicate on the "norm_number" field.
func NormNumberContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldNormNumber, v))
}

// NormNumberHasPrefix applies the HasPrefix predicate on the "norm_number" field.
func NormNumberHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldNormNumber, v))
}

// NormNumberHasSuffix applies the HasSuffix predicate on the "norm_number" field.
func NormNumberHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldNormNumber, v))
}

// NormNumberEqualFold applies the EqualFold predicate on the "norm_number" field.
func NormNumberEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldNormNumber, v))
}

// NormNumberContainsFold applies the ContainsFold predicate on the "norm_number" field.
func NormNumberContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldNormNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldTitle, v))
}

// RevisionEQ applies the EQ predicate on the "revision" field.
func RevisionEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldRevision, v))
}

// RevisionNEQ applies the NEQ predicate on the "revision" field.
func RevisionNEQ(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldRevision, v))
}

// RevisionIn applies the In predicate on the "revision" field.
func RevisionIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldRevision, vs...))
}

// RevisionNotIn applies the NotIn predicate on the "revision" field.
func RevisionNotIn(vs ...string) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldRevision, vs...))
}

// RevisionGT applies the GT predicate on the "revision" field.
func RevisionGT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldRevision, v))
}

// RevisionGTE applies the GTE predicate on the "revision" field.
func RevisionGTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldRevision, v))
}

// RevisionLT applies the LT predicate on the "revision" field.
func RevisionLT(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldRevision, v))
}

// RevisionLTE applies the LTE predicate on the "revision" field.
func RevisionLTE(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldRevision, v))
}

// RevisionContains applies the Contains predicate on the "revision" field.
func RevisionContains(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContains(FieldRevision, v))
}

// RevisionHasPrefix applies the HasPrefix predicate on the "revision" field.
func RevisionHasPrefix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasPrefix(FieldRevision, v))
}

// RevisionHasSuffix applies the HasSuffix predicate on the "revision" field.
func RevisionHasSuffix(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldHasSuffix(FieldRevision, v))
}

// RevisionIsNil applies the IsNil predicate on the "revision" field.
func RevisionIsNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldIsNull(FieldRevision))
}

// RevisionNotNil applies the NotNil predicate on the "revision" field.
func RevisionNotNil() predicate.Drawing {
	return predicate.Drawing(sql.FieldNotNull(FieldRevision))
}

// RevisionEqualFold applies the EqualFold predicate on the "revision" field.
func RevisionEqualFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldEqualFold(FieldRevision, v))
}

// RevisionContainsFold applies the ContainsFold predicate on the "revision" field.
func RevisionContainsFold(v string) predicate.Drawing {
	return predicate.Drawing(sql.FieldContainsFold(FieldRevision, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Drawing {
	return predicate.Drawing(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArea applies the HasEdge predicate on the "area" edge.
func HasArea() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AreaTable, AreaColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAreaWith applies the HasEdge predicate on the "area" edge with a given conditions (other predicates).
func HasAreaWith(preds ...predicate.Area) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newAreaStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSystem applies the HasEdge predicate on the "system" edge.
func HasSystem() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SystemTable, SystemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSystemWith applies the HasEdge predicate on the "system" edge with a given conditions (other predicates).
func HasSystemWith(preds ...predicate.System) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newSystemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasComponents applies the HasEdge predicate on the "components" edge.
func HasComponents() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ComponentsTable, ComponentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasComponentsWith applies the HasEdge predicate on the "components" edge with a given conditions (other predicates).
func HasComponentsWith(preds ...predicate.Component) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newComponentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFieldWelds applies the HasEdge predicate on the "field_welds" edge.
func HasFieldWelds() predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldWeldsTable, FieldWeldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldWeldsWith applies the HasEdge predicate on the "field_welds" edge with a given conditions (other predicates).
func HasFieldWeldsWith(preds ...predicate.FieldWeld) predicate.Drawing {
	return predicate.Drawing(func(s *sql.Selector) {
		step := newFieldWeldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Drawing) predicate.Drawing {
	return predicate.Drawing(sql.NotPredicates(p))
}
