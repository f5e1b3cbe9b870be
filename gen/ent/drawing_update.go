// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
)

// DrawingUpdate is the builder for updating Drawing entities.
type DrawingUpdate struct {
	config
	hooks    []Hook
	mutation *DrawingMutation
}

// Where appends a list predicates to the DrawingUpdate builder.
func (_u *DrawingUpdate) Where(ps ...predicate.Drawing) *DrawingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *DrawingUpdate) SetProjectID(v uuid.UUID) *DrawingUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableProjectID(v *uuid.UUID) *DrawingUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *DrawingUpdate) SetAreaID(v uuid.UUID) *DrawingUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableAreaID(v *uuid.UUID) *DrawingUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *DrawingUpdate) ClearAreaID() *DrawingUpdate {
	_u.mutation.ClearAreaID()
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *DrawingUpdate) SetSystemID(v uuid.UUID) *DrawingUpdate {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableSystemID(v *uuid.UUID) *DrawingUpdate {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *DrawingUpdate) ClearSystemID() *DrawingUpdate {
	_u.mutation.ClearSystemID()
	return _u
}

// SetNumber sets the "number" field.
func (_u *DrawingUpdate) SetNumber(v string) *DrawingUpdate {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableNumber(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetNormNumber sets the "norm_number" field.
func (_u *DrawingUpdate) SetNormNumber(v string) *DrawingUpdate {
	_u.mutation.SetNormNumber(v)
	return _u
}

// SetNillableNormNumber sets the "norm_number" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableNormNumber(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetNormNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DrawingUpdate) SetTitle(v string) *DrawingUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableTitle(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DrawingUpdate) ClearTitle() *DrawingUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetRevision sets the "revision" field.
func (_u *DrawingUpdate) SetRevision(v string) *DrawingUpdate {
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableRevision(v *string) *DrawingUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// ClearRevision clears the value of the "revision" field.
func (_u *DrawingUpdate) ClearRevision() *DrawingUpdate {
	_u.mutation.ClearRevision()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DrawingUpdate) SetCreatedAt(v time.Time) *DrawingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DrawingUpdate) SetNillableCreatedAt(v *time.Time) *DrawingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DrawingUpdate) SetUpdatedAt(v time.Time) *DrawingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DrawingUpdate) SetProject(v *Project) *DrawingUpdate {
	return _u.SetProjectID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_u *DrawingUpdate) SetArea(v *Area) *DrawingUpdate {
	return _u.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *DrawingUpdate) SetSystem(v *System) *DrawingUpdate {
	return _u.SetSystemID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *DrawingUpdate) AddComponentIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *DrawingUpdate) AddComponents(v ...*Component) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by IDs.
func (_u *DrawingUpdate) AddFieldWeldIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.AddFieldWeldIDs(ids...)
	return _u
}

// AddFieldWelds adds the "field_welds" edges to the FieldWeld entity.
func (_u *DrawingUpdate) AddFieldWelds(v ...*FieldWeld) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldWeldIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_u *DrawingUpdate) Mutation() *DrawingMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DrawingUpdate) ClearProject() *DrawingUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *DrawingUpdate) ClearArea() *DrawingUpdate {
	_u.mutation.ClearArea()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *DrawingUpdate) ClearSystem() *DrawingUpdate {
	_u.mutation.ClearSystem()
	return _u
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *DrawingUpdate) ClearComponents() *DrawingUpdate {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *DrawingUpdate) RemoveComponentIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *DrawingUpdate) RemoveComponents(v ...*Component) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearFieldWelds clears all "field_welds" edges to the FieldWeld entity.
func (_u *DrawingUpdate) ClearFieldWelds() *DrawingUpdate {
	_u.mutation.ClearFieldWelds()
	return _u
}

// RemoveFieldWeldIDs removes the "field_welds" edge to FieldWeld entities by IDs.
func (_u *DrawingUpdate) RemoveFieldWeldIDs(ids ...uuid.UUID) *DrawingUpdate {
	_u.mutation.RemoveFieldWeldIDs(ids...)
	return _u
}

// RemoveFieldWelds removes "field_welds" edges to FieldWeld entities.
func (_u *DrawingUpdate) RemoveFieldWelds(v ...*FieldWeld) *DrawingUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldWeldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrawingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrawingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrawingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrawingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DrawingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := drawing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrawingUpdate) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := drawing.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Drawing.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormNumber(); ok {
		if err := drawing.NormNumberValidator(v); err != nil {
			return &ValidationError{Name: "norm_number", err: fmt.Errorf(`ent: validator failed for field "Drawing.norm_number": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Drawing.project"`)
	}
	return nil
}

func (_u *DrawingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drawing.Table, drawing.Columns, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(drawing.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormNumber(); ok {
		_spec.SetField(drawing.FieldNormNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(drawing.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(drawing.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(drawing.FieldRevision, field.TypeString, value)
	}
	if _u.mutation.RevisionCleared() {
		_spec.ClearField(drawing.FieldRevision, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(drawing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(drawing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.ProjectTable,
			Columns: []string{drawing.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.ProjectTable,
			Columns: []string{drawing.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AreaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.AreaTable,
			Columns: []string{drawing.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.AreaTable,
			Columns: []string{drawing.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.SystemTable,
			Columns: []string{drawing.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.SystemTable,
			Columns: []string{drawing.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldWeldsIDs(); len(nodes) > 0 && !_u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldWeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drawing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrawingUpdateOne is the builder for updating a single Drawing entity.
type DrawingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrawingMutation
}

// SetProjectID sets the "project_id" field.
func (_u *DrawingUpdateOne) SetProjectID(v uuid.UUID) *DrawingUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableProjectID(v *uuid.UUID) *DrawingUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *DrawingUpdateOne) SetAreaID(v uuid.UUID) *DrawingUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableAreaID(v *uuid.UUID) *DrawingUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// ClearAreaID clears the value of the "area_id" field.
func (_u *DrawingUpdateOne) ClearAreaID() *DrawingUpdateOne {
	_u.mutation.ClearAreaID()
	return _u
}

// SetSystemID sets the "system_id" field.
func (_u *DrawingUpdateOne) SetSystemID(v uuid.UUID) *DrawingUpdateOne {
	_u.mutation.SetSystemID(v)
	return _u
}

// SetNillableSystemID sets the "system_id" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableSystemID(v *uuid.UUID) *DrawingUpdateOne {
	if v != nil {
		_u.SetSystemID(*v)
	}
	return _u
}

// ClearSystemID clears the value of the "system_id" field.
func (_u *DrawingUpdateOne) ClearSystemID() *DrawingUpdateOne {
	_u.mutation.ClearSystemID()
	return _u
}

// SetNumber sets the "number" field.
func (_u *DrawingUpdateOne) SetNumber(v string) *DrawingUpdateOne {
	_u.mutation.SetNumber(v)
	return _u
}

// SetNillableNumber sets the "number" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableNumber(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetNumber(*v)
	}
	return _u
}

// SetNormNumber sets the "norm_number" field.
func (_u *DrawingUpdateOne) SetNormNumber(v string) *DrawingUpdateOne {
	_u.mutation.SetNormNumber(v)
	return _u
}

// SetNillableNormNumber sets the "norm_number" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableNormNumber(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetNormNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DrawingUpdateOne) SetTitle(v string) *DrawingUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableTitle(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DrawingUpdateOne) ClearTitle() *DrawingUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetRevision sets the "revision" field.
func (_u *DrawingUpdateOne) SetRevision(v string) *DrawingUpdateOne {
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableRevision(v *string) *DrawingUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// ClearRevision clears the value of the "revision" field.
func (_u *DrawingUpdateOne) ClearRevision() *DrawingUpdateOne {
	_u.mutation.ClearRevision()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DrawingUpdateOne) SetCreatedAt(v time.Time) *DrawingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DrawingUpdateOne) SetNillableCreatedAt(v *time.Time) *DrawingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DrawingUpdateOne) SetUpdatedAt(v time.Time) *DrawingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *DrawingUpdateOne) SetProject(v *Project) *DrawingUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetArea sets the "area" edge to the Area entity.
func (_u *DrawingUpdateOne) SetArea(v *Area) *DrawingUpdateOne {
	return _u.SetAreaID(v.ID)
}

// SetSystem sets the "system" edge to the System entity.
func (_u *DrawingUpdateOne) SetSystem(v *System) *DrawingUpdateOne {
	return _u.SetSystemID(v.ID)
}

// AddComponentIDs adds the "components" edge to the Component entity by IDs.
func (_u *DrawingUpdateOne) AddComponentIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.AddComponentIDs(ids...)
	return _u
}

// AddComponents adds the "components" edges to the Component entity.
func (_u *DrawingUpdateOne) AddComponents(v ...*Component) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddComponentIDs(ids...)
}

// AddFieldWeldIDs adds the "field_welds" edge to the FieldWeld entity by IDs.
func (_u *DrawingUpdateOne) AddFieldWeldIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.AddFieldWeldIDs(ids...)
	return _u
}

// AddFieldWelds adds the "field_welds" edges to the FieldWeld entity.
func (_u *DrawingUpdateOne) AddFieldWelds(v ...*FieldWeld) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldWeldIDs(ids...)
}

// Mutation returns the DrawingMutation object of the builder.
func (_u *DrawingUpdateOne) Mutation() *DrawingMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *DrawingUpdateOne) ClearProject() *DrawingUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearArea clears the "area" edge to the Area entity.
func (_u *DrawingUpdateOne) ClearArea() *DrawingUpdateOne {
	_u.mutation.ClearArea()
	return _u
}

// ClearSystem clears the "system" edge to the System entity.
func (_u *DrawingUpdateOne) ClearSystem() *DrawingUpdateOne {
	_u.mutation.ClearSystem()
	return _u
}

// ClearComponents clears all "components" edges to the Component entity.
func (_u *DrawingUpdateOne) ClearComponents() *DrawingUpdateOne {
	_u.mutation.ClearComponents()
	return _u
}

// RemoveComponentIDs removes the "components" edge to Component entities by IDs.
func (_u *DrawingUpdateOne) RemoveComponentIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.RemoveComponentIDs(ids...)
	return _u
}

// RemoveComponents removes "components" edges to Component entities.
func (_u *DrawingUpdateOne) RemoveComponents(v ...*Component) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveComponentIDs(ids...)
}

// ClearFieldWelds clears all "field_welds" edges to the FieldWeld entity.
func (_u *DrawingUpdateOne) ClearFieldWelds() *DrawingUpdateOne {
	_u.mutation.ClearFieldWelds()
	return _u
}

// RemoveFieldWeldIDs removes the "field_welds" edge to FieldWeld entities by IDs.
func (_u *DrawingUpdateOne) RemoveFieldWeldIDs(ids ...uuid.UUID) *DrawingUpdateOne {
	_u.mutation.RemoveFieldWeldIDs(ids...)
	return _u
}

// RemoveFieldWelds removes "field_welds" edges to FieldWeld entities.
func (_u *DrawingUpdateOne) RemoveFieldWelds(v ...*FieldWeld) *DrawingUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldWeldIDs(ids...)
}

// Where appends a list predicates to the DrawingUpdate builder.
func (_u *DrawingUpdateOne) Where(ps ...predicate.Drawing) *DrawingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrawingUpdateOne) Select(field string, fields ...string) *DrawingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Drawing entity.
func (_u *DrawingUpdateOne) Save(ctx context.Context) (*Drawing, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrawingUpdateOne) SaveX(ctx context.Context) *Drawing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrawingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrawingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DrawingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := drawing.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrawingUpdateOne) check() error {
	if v, ok := _u.mutation.Number(); ok {
		if err := drawing.NumberValidator(v); err != nil {
			return &ValidationError{Name: "number", err: fmt.Errorf(`ent: validator failed for field "Drawing.number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormNumber(); ok {
		if err := drawing.NormNumberValidator(v); err != nil {
			return &ValidationError{Name: "norm_number", err: fmt.Errorf(`ent: validator failed for field "Drawing.norm_number": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Drawing.project"`)
	}
	return nil
}

func (_u *DrawingUpdateOne) sqlSave(ctx context.Context) (_node *Drawing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drawing.Table, drawing.Columns, sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Drawing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drawing.FieldID)
		for _, f := range fields {
			if !drawing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drawing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Number(); ok {
		_spec.SetField(drawing.FieldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormNumber(); ok {
		_spec.SetField(drawing.FieldNormNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(drawing.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(drawing.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(drawing.FieldRevision, field.TypeString, value)
	}
	if _u.mutation.RevisionCleared() {
		_spec.ClearField(drawing.FieldRevision, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(drawing.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(drawing.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.ProjectTable,
			Columns: []string{drawing.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.ProjectTable,
			Columns: []string{drawing.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AreaCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.AreaTable,
			Columns: []string{drawing.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AreaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.AreaTable,
			Columns: []string{drawing.AreaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(area.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SystemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.SystemTable,
			Columns: []string{drawing.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SystemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   drawing.SystemTable,
			Columns: []string{drawing.SystemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(system.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedComponentsIDs(); len(nodes) > 0 && !_u.mutation.ComponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ComponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.ComponentsTable,
			Columns: []string{drawing.ComponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(component.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldWeldsIDs(); len(nodes) > 0 && !_u.mutation.FieldWeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldWeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   drawing.FieldWeldsTable,
			Columns: []string{drawing.FieldWeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Drawing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drawing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
