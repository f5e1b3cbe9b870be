// Code generated by ent, DO NOT EDIT.

package fieldweld

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldProjectID, v))
}

// DrawingID applies equality check predicate on the "drawing_id" field. It's identical to DrawingIDEQ.
func DrawingID(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldDrawingID, v))
}

// WelderID applies equality check predicate on the "welder_id" field. It's identical to WelderIDEQ.
func WelderID(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWelderID, v))
}

// WeldNumber applies equality check predicate on the "weld_number" field. It's identical to WeldNumberEQ.
func WeldNumber(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWeldNumber, v))
}

// WeldType applies equality check predicate on the "weld_type" field. It's identical to WeldTypeEQ.
func WeldType(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWeldType, v))
}

// Material applies equality check predicate on the "material" field. It's identical to MaterialEQ.
func Material(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldMaterial, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldProjectID, vs...))
}

// DrawingIDEQ applies the EQ predicate on the "drawing_id" field.
func DrawingIDEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldDrawingID, v))
}

// DrawingIDNEQ applies the NEQ predicate on the "drawing_id" field.
func DrawingIDNEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldDrawingID, v))
}

// DrawingIDIn applies the In predicate on the "drawing_id" field.
func DrawingIDIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldDrawingID, vs...))
}

// DrawingIDNotIn applies the NotIn predicate on the "drawing_id" field.
func DrawingIDNotIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldDrawingID, vs...))
}

// WelderIDEQ applies the EQ predicate on the "welder_id" field.
func WelderIDEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWelderID, v))
}

// WelderIDNEQ applies the NEQ predicate on the "welder_id" field.
func WelderIDNEQ(v uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldWelderID, v))
}

// WelderIDIn applies the In predicate on the "welder_id" field.
func WelderIDIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldWelderID, vs...))
}

// WelderIDNotIn applies the NotIn predicate on the "welder_id" field.
func WelderIDNotIn(vs ...uuid.UUID) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldWelderID, vs...))
}

// WelderIDIsNil applies the IsNil predicate on the "welder_id" field.
func WelderIDIsNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIsNull(FieldWelderID))
}

// WelderIDNotNil applies the NotNil predicate on the "welder_id" field.
func WelderIDNotNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotNull(FieldWelderID))
}

// WeldNumberEQ applies the EQ predicate on the "weld_number" field.
func WeldNumberEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWeldNumber, v))
}

// WeldNumberNEQ applies the NEQ predicate on the "weld_number" field.
func WeldNumberNEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldWeldNumber, v))
}

// WeldNumberIn applies the In predicate on the "weld_number" field.
func WeldNumberIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldWeldNumber, vs...))
}

// WeldNumberNotIn applies the NotIn predicate on the "weld_number" field.
func WeldNumberNotIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldWeldNumber, vs...))
}

// WeldNumberGT applies the GT predicate on the "weld_number" field.
func WeldNumberGT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldWeldNumber, v))
}

// WeldNumberGTE applies the GTE predicate on the "weld_number" field.
func WeldNumberGTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldWeldNumber, v))
}

// WeldNumberLT applies the LT predicate on the "weld_number" field.
func WeldNumberLT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldWeldNumber, v))
}

// WeldNumberLTE applies the LTE predicate on the "weld_number" field.
func WeldNumberLTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldWeldNumber, v))
}

// WeldNumberContains applies the Contains predicate on the "weld_number" field.
func WeldNumberContains(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContains(FieldWeldNumber, v))
}

// WeldNumberHasPrefix applies the HasPrefix predicate on the "weld_number" field.
func WeldNumberHasPrefix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasPrefix(FieldWeldNumber, v))
}

// WeldNumberHasSuffix applies the HasSuffix predicate on the "weld_number" field.
func WeldNumberHasSuffix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasSuffix(FieldWeldNumber, v))
}

// WeldNumberEqualFold applies the EqualFold predicate on the "weld_number" field.
func WeldNumberEqualFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEqualFold(FieldWeldNumber, v))
}

// WeldNumberContainsFold applies the ContainsFold predicate on the "weld_number" field.
func WeldNumberContainsFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContainsFold(FieldWeldNumber, v))
}

// WeldTypeEQ applies the EQ predicate on the "weld_type" field.
func WeldTypeEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldWeldType, v))
}

// WeldTypeNEQ applies the NEQ predicate on the "weld_type" field.
func WeldTypeNEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldWeldType, v))
}

// WeldTypeIn applies the In predicate on the "weld_type" field.
func WeldTypeIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldWeldType, vs...))
}

// WeldTypeNotIn applies the NotIn predicate on the "weld_type" field.
func WeldTypeNotIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldWeldType, vs...))
}

// WeldTypeGT applies the GT predicate on the "weld_type" field.
func WeldTypeGT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldWeldType, v))
}

// WeldTypeGTE applies the GTE predicate on the "weld_type" field.
func WeldTypeGTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldWeldType, v))
}

// WeldTypeLT applies the LT predicate on the "weld_type" field.
func WeldTypeLT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldWeldType, v))
}

// WeldTypeLTE applies the LTE predicate on the "weld_type" field.
func WeldTypeLTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldWeldType, v))
}

// WeldTypeContains applies the Contains predicate on the "weld_type" field.
func WeldTypeContains(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContains(FieldWeldType, v))
}

// WeldTypeHasPrefix applies the HasPrefix predicate on the "weld_type" field.
func WeldTypeHasPrefix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasPrefix(FieldWeldType, v))
}

// WeldTypeHasSuffix applies the HasSuffix predicate on the "weld_type" field.
func WeldTypeHasSuffix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasSuffix(FieldWeldType, v))
}

// WeldTypeIsNil applies the IsNil predicate on the "weld_type" field.
func WeldTypeIsNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIsNull(FieldWeldType))
}

// WeldTypeNotNil applies the NotNil predicate on the "weld_type" field.
func WeldTypeNotNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotNull(FieldWeldType))
}

// WeldTypeEqualFold applies the EqualFold predicate on the "weld_type" field.
func WeldTypeEqualFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEqualFold(FieldWeldType, v))
}

// WeldTypeContainsFold applies the ContainsFold predicate on the "weld_type" field.
func WeldTypeContainsFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContainsFold(FieldWeldType, v))
}

// MaterialEQ applies the EQ predicate on the "material" field.
func MaterialEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldMaterial, v))
}

// MaterialNEQ applies the NEQ predicate on the "material" field.
func MaterialNEQ(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldMaterial, v))
}

// MaterialIn applies the In predicate on the "material" field.
func MaterialIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldMaterial, vs...))
}

// MaterialNotIn applies the NotIn predicate on the "material" field.
func MaterialNotIn(vs ...string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldMaterial, vs...))
}

// MaterialGT applies the GT predicate on the "material" field.
func MaterialGT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldMaterial, v))
}

// MaterialGTE applies the GTE predicate on the "material" field.
func MaterialGTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldMaterial, v))
}

// MaterialLT applies the LT predicate on the "material" field.
func MaterialLT(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldMaterial, v))
}

// MaterialLTE applies the LTE predicate on the "material" field.
func MaterialLTE(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldMaterial, v))
}

// MaterialContains applies the Contains predicate on the "material" field.
func MaterialContains(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContains(FieldMaterial, v))
}

// MaterialHasPrefix applies the HasPrefix predicate on the "material" field.
func MaterialHasPrefix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasPrefix(FieldMaterial, v))
}

// MaterialHasSuffix applies the HasSuffix predicate on the "material" field.
func MaterialHasSuffix(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldHasSuffix(FieldMaterial, v))
}

// MaterialIsNil applies the IsNil predicate on the "material" field.
func MaterialIsNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIsNull(FieldMaterial))
}

// MaterialNotNil applies the NotNil predicate on the "material" field.
func MaterialNotNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotNull(FieldMaterial))
}

// MaterialEqualFold applies the EqualFold predicate on the "material" field.
func MaterialEqualFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEqualFold(FieldMaterial, v))
}

// MaterialContainsFold applies the ContainsFold predicate on the "material" field.
func MaterialContainsFold(v string) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldContainsFold(FieldMaterial, v))
}

// CurrentMilestonesIsNil applies the IsNil predicate on the "current_milestones" field.
func CurrentMilestonesIsNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIsNull(FieldCurrentMilestones))
}

// CurrentMilestonesNotNil applies the NotNil predicate on the "current_milestones" field.
func CurrentMilestonesNotNil() predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotNull(FieldCurrentMilestones))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FieldWeld {
	return predicate.FieldWeld(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDrawing applies the HasEdge predicate on the "drawing" edge.
func HasDrawing() predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DrawingTable, DrawingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDrawingWith applies the HasEdge predicate on the "drawing" edge with a given conditions (other predicates).
func HasDrawingWith(preds ...predicate.Drawing) predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := newDrawingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWelder applies the HasEdge predicate on the "welder" edge.
func HasWelder() predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WelderTable, WelderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWelderWith applies the HasEdge predicate on the "welder" edge with a given conditions (other predicates).
func HasWelderWith(preds ...predicate.Welder) predicate.FieldWeld {
	return predicate.FieldWeld(func(s *sql.Selector) {
		step := newWelderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldWeld) predicate.FieldWeld {
	return predicate.FieldWeld(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldWeld) predicate.FieldWeld {
	return predicate.FieldWeld(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldWeld) predicate.FieldWeld {
	return predicate.FieldWeld(sql.NotPredicates(p))
}
