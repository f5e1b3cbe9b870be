// Code generated by ent, DO NOT EDIT.

package welder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldName, v))
}

// Stencil applies equality check predicate on the "stencil" field. It's identical to StencilEQ.
func Stencil(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldStencil, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.Welder {
	return predicate.Welder(sql.FieldNotIn(FieldProjectID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Welder {
	return predicate.Welder(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Welder {
	return predicate.Welder(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Welder {
	return predicate.Welder(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Welder {
	return predicate.Welder(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Welder {
	return predicate.Welder(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Welder {
	return predicate.Welder(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Welder {
	return predicate.Welder(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Welder {
	return predicate.Welder(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Welder {
	return predicate.Welder(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Welder {
	return predicate.Welder(sql.FieldContainsFold(FieldName, v))
}

// StencilEQ applies the EQ predicate on the "stencil" field.
func StencilEQ(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldStencil, v))
}

// StencilNEQ applies the NEQ predicate on the "stencil" field.
func StencilNEQ(v string) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldStencil, v))
}

// StencilIn applies the In predicate on the "stencil" field.
func StencilIn(vs ...string) predicate.Welder {
	return predicate.Welder(sql.FieldIn(FieldStencil, vs...))
}

// StencilNotIn applies the NotIn predicate on the "stencil" field.
func StencilNotIn(vs ...string) predicate.Welder {
	return predicate.Welder(sql.FieldNotIn(FieldStencil, vs...))
}

// StencilGT applies the GT predicate on the "stencil" field.
func StencilGT(v string) predicate.Welder {
	return predicate.Welder(sql.FieldGT(FieldStencil, v))
}

// StencilGTE applies the GTE predicate on the "stencil" field.
func StencilGTE(v string) predicate.Welder {
	return predicate.Welder(sql.FieldGTE(FieldStencil, v))
}

// StencilLT applies the LT predicate on the "stencil" field.
func StencilLT(v string) predicate.Welder {
	return predicate.Welder(sql.FieldLT(FieldStencil, v))
}

// StencilLTE applies the LTE predicate on the "stencil" field.
func StencilLTE(v string) predicate.Welder {
	return predicate.Welder(sql.FieldLTE(FieldStencil, v))
}

// StencilContains applies the Contains predicate on the "stencil" field.
func StencilContains(v string) predicate.Welder {
	return predicate.Welder(sql.FieldContains(FieldStencil, v))
}

// StencilHasPrefix applies the HasPrefix predicate on the "stencil" field.
func StencilHasPrefix(v string) predicate.Welder {
	return predicate.Welder(sql.FieldHasPrefix(FieldStencil, v))
}

// StencilHasSuffix applies the HasSuffix predicate on the "stencil" field.
func StencilHasSuffix(v string) predicate.Welder {
	return predicate.Welder(sql.FieldHasSuffix(FieldStencil, v))
}

// StencilEqualFold applies the EqualFold predicate on the "stencil" field.
func StencilEqualFold(v string) predicate.Welder {
	return predicate.Welder(sql.FieldEqualFold(FieldStencil, v))
}

// StencilContainsFold applies the ContainsFold predicate on the "stencil" field.
func StencilContainsFold(v string) predicate.Welder {
	return predicate.Welder(sql.FieldContainsFold(FieldStencil, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Welder {
	return predicate.Welder(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Welder {
	return predicate.Welder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Welder {
	return predicate.Welder(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWelds applies the HasEdge predicate on the "welds" edge.
func HasWelds() predicate.Welder {
	return predicate.Welder(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WeldsTable, WeldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWeldsWith applies the HasEdge predicate on the "welds" edge with a given conditions (other predicates).
func HasWeldsWith(preds ...predicate.FieldWeld) predicate.Welder {
	return predicate.Welder(func(s *sql.Selector) {
		step := newWeldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Welder) predicate.Welder {
	return predicate.Welder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Welder) predicate.Welder {
	return predicate.Welder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Welder) predicate.Welder {
	return predicate.Welder(sql.NotPredicates(p))
}
