// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// FieldWeldUpdate is the builder for updating FieldWeld entities.
type FieldWeldUpdate struct {
	config
	hooks    []Hook
	mutation *FieldWeldMutation
}

// Where appends a list predicates to the FieldWeldUpdate builder.
func (_u *FieldWeldUpdate) Where(ps ...predicate.FieldWeld) *FieldWeldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *FieldWeldUpdate) SetProjectID(v uuid.UUID) *FieldWeldUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableProjectID(v *uuid.UUID) *FieldWeldUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *FieldWeldUpdate) SetDrawingID(v uuid.UUID) *FieldWeldUpdate {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableDrawingID(v *uuid.UUID) *FieldWeldUpdate {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetWelderID sets the "welder_id" field.
func (_u *FieldWeldUpdate) SetWelderID(v uuid.UUID) *FieldWeldUpdate {
	_u.mutation.SetWelderID(v)
	return _u
}

// SetNillableWelderID sets the "welder_id" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableWelderID(v *uuid.UUID) *FieldWeldUpdate {
	if v != nil {
		_u.SetWelderID(*v)
	}
	return _u
}

// ClearWelderID clears the value of the "welder_id" field.
func (_u *FieldWeldUpdate) ClearWelderID() *FieldWeldUpdate {
	_u.mutation.ClearWelderID()
	return _u
}

// SetWeldNumber sets the "weld_number" field.
func (_u *FieldWeldUpdate) SetWeldNumber(v string) *FieldWeldUpdate {
	_u.mutation.SetWeldNumber(v)
	return _u
}

// SetNillableWeldNumber sets the "weld_number" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableWeldNumber(v *string) *FieldWeldUpdate {
	if v != nil {
		_u.SetWeldNumber(*v)
	}
	return _u
}

// SetWeldType sets the "weld_type" field.
func (_u *FieldWeldUpdate) SetWeldType(v string) *FieldWeldUpdate {
	_u.mutation.SetWeldType(v)
	return _u
}

// SetNillableWeldType sets the "weld_type" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableWeldType(v *string) *FieldWeldUpdate {
	if v != nil {
		_u.SetWeldType(*v)
	}
	return _u
}

// ClearWeldType clears the value of the "weld_type" field.
func (_u *FieldWeldUpdate) ClearWeldType() *FieldWeldUpdate {
	_u.mutation.ClearWeldType()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *FieldWeldUpdate) SetMaterial(v string) *FieldWeldUpdate {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableMaterial(v *string) *FieldWeldUpdate {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *FieldWeldUpdate) ClearMaterial() *FieldWeldUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_u *FieldWeldUpdate) SetCurrentMilestones(v json.RawMessage) *FieldWeldUpdate {
	_u.mutation.SetCurrentMilestones(v)
	return _u
}

// AppendCurrentMilestones appends value to the "current_milestones" field.
func (_u *FieldWeldUpdate) AppendCurrentMilestones(v json.RawMessage) *FieldWeldUpdate {
	_u.mutation.AppendCurrentMilestones(v)
	return _u
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (_u *FieldWeldUpdate) ClearCurrentMilestones() *FieldWeldUpdate {
	_u.mutation.ClearCurrentMilestones()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldWeldUpdate) SetCreatedAt(v time.Time) *FieldWeldUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldWeldUpdate) SetNillableCreatedAt(v *time.Time) *FieldWeldUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldWeldUpdate) SetUpdatedAt(v time.Time) *FieldWeldUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FieldWeldUpdate) SetProject(v *Project) *FieldWeldUpdate {
	return _u.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *FieldWeldUpdate) SetDrawing(v *Drawing) *FieldWeldUpdate {
	return _u.SetDrawingID(v.ID)
}

// SetWelder sets the "welder" edge to the Welder entity.
func (_u *FieldWeldUpdate) SetWelder(v *Welder) *FieldWeldUpdate {
	return _u.SetWelderID(v.ID)
}

// Mutation returns the FieldWeldMutation object of the builder.
func (_u *FieldWeldUpdate) Mutation() *FieldWeldMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FieldWeldUpdate) ClearProject() *FieldWeldUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *FieldWeldUpdate) ClearDrawing() *FieldWeldUpdate {
	_u.mutation.ClearDrawing()
	return _u
}

// ClearWelder clears the "welder" edge to the Welder entity.
func (_u *FieldWeldUpdate) ClearWelder() *FieldWeldUpdate {
	_u.mutation.ClearWelder()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldWeldUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldWeldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldWeldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldWeldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldWeldUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldweld.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldWeldUpdate) check() error {
	if v, ok := _u.mutation.WeldNumber(); ok {
		if err := fieldweld.WeldNumberValidator(v); err != nil {
			return &ValidationError{Name: "weld_number", err: fmt.Errorf(`ent: validator failed for field "FieldWeld.weld_number": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldWeld.project"`)
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldWeld.drawing"`)
	}
	return nil
}

func (_u *FieldWeldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldweld.Table, fieldweld.Columns, sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WeldNumber(); ok {
		_spec.SetField(fieldweld.FieldWeldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeldType(); ok {
		_spec.SetField(fieldweld.FieldWeldType, field.TypeString, value)
	}
	if _u.mutation.WeldTypeCleared() {
		_spec.ClearField(fieldweld.FieldWeldType, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(fieldweld.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(fieldweld.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentMilestones(); ok {
		_spec.SetField(fieldweld.FieldCurrentMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldweld.FieldCurrentMilestones, value)
		})
	}
	if _u.mutation.CurrentMilestonesCleared() {
		_spec.ClearField(fieldweld.FieldCurrentMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldweld.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldweld.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.ProjectTable,
			Columns: []string{fieldweld.ProjectColumn},
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
			Table:   fieldweld.ProjectTable,
			Columns: []string{fieldweld.ProjectColumn},
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
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.DrawingTable,
			Columns: []string{fieldweld.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.DrawingTable,
			Columns: []string{fieldweld.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WelderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.WelderTable,
			Columns: []string{fieldweld.WelderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WelderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.WelderTable,
			Columns: []string{fieldweld.WelderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldweld.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldWeldUpdateOne is the builder for updating a single FieldWeld entity.
type FieldWeldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldWeldMutation
}

// SetProjectID sets the "project_id" field.
func (_u *FieldWeldUpdateOne) SetProjectID(v uuid.UUID) *FieldWeldUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableProjectID(v *uuid.UUID) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDrawingID sets the "drawing_id" field.
func (_u *FieldWeldUpdateOne) SetDrawingID(v uuid.UUID) *FieldWeldUpdateOne {
	_u.mutation.SetDrawingID(v)
	return _u
}

// SetNillableDrawingID sets the "drawing_id" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableDrawingID(v *uuid.UUID) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetDrawingID(*v)
	}
	return _u
}

// SetWelderID sets the "welder_id" field.
func (_u *FieldWeldUpdateOne) SetWelderID(v uuid.UUID) *FieldWeldUpdateOne {
	_u.mutation.SetWelderID(v)
	return _u
}

// SetNillableWelderID sets the "welder_id" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableWelderID(v *uuid.UUID) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetWelderID(*v)
	}
	return _u
}

// ClearWelderID clears the value of the "welder_id" field.
func (_u *FieldWeldUpdateOne) ClearWelderID() *FieldWeldUpdateOne {
	_u.mutation.ClearWelderID()
	return _u
}

// SetWeldNumber sets the "weld_number" field.
func (_u *FieldWeldUpdateOne) SetWeldNumber(v string) *FieldWeldUpdateOne {
	_u.mutation.SetWeldNumber(v)
	return _u
}

// SetNillableWeldNumber sets the "weld_number" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableWeldNumber(v *string) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetWeldNumber(*v)
	}
	return _u
}

// SetWeldType sets the "weld_type" field.
func (_u *FieldWeldUpdateOne) SetWeldType(v string) *FieldWeldUpdateOne {
	_u.mutation.SetWeldType(v)
	return _u
}

// SetNillableWeldType sets the "weld_type" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableWeldType(v *string) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetWeldType(*v)
	}
	return _u
}

// ClearWeldType clears the value of the "weld_type" field.
func (_u *FieldWeldUpdateOne) ClearWeldType() *FieldWeldUpdateOne {
	_u.mutation.ClearWeldType()
	return _u
}

// SetMaterial sets the "material" field.
func (_u *FieldWeldUpdateOne) SetMaterial(v string) *FieldWeldUpdateOne {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableMaterial(v *string) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// ClearMaterial clears the value of the "material" field.
func (_u *FieldWeldUpdateOne) ClearMaterial() *FieldWeldUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// SetCurrentMilestones sets the "current_milestones" field.
func (_u *FieldWeldUpdateOne) SetCurrentMilestones(v json.RawMessage) *FieldWeldUpdateOne {
	_u.mutation.SetCurrentMilestones(v)
	return _u
}

// AppendCurrentMilestones appends value to the "current_milestones" field.
func (_u *FieldWeldUpdateOne) AppendCurrentMilestones(v json.RawMessage) *FieldWeldUpdateOne {
	_u.mutation.AppendCurrentMilestones(v)
	return _u
}

// ClearCurrentMilestones clears the value of the "current_milestones" field.
func (_u *FieldWeldUpdateOne) ClearCurrentMilestones() *FieldWeldUpdateOne {
	_u.mutation.ClearCurrentMilestones()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FieldWeldUpdateOne) SetCreatedAt(v time.Time) *FieldWeldUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FieldWeldUpdateOne) SetNillableCreatedAt(v *time.Time) *FieldWeldUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldWeldUpdateOne) SetUpdatedAt(v time.Time) *FieldWeldUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *FieldWeldUpdateOne) SetProject(v *Project) *FieldWeldUpdateOne {
	return _u.SetProjectID(v.ID)
}

// SetDrawing sets the "drawing" edge to the Drawing entity.
func (_u *FieldWeldUpdateOne) SetDrawing(v *Drawing) *FieldWeldUpdateOne {
	return _u.SetDrawingID(v.ID)
}

// SetWelder sets the "welder" edge to the Welder entity.
func (_u *FieldWeldUpdateOne) SetWelder(v *Welder) *FieldWeldUpdateOne {
	return _u.SetWelderID(v.ID)
}

// Mutation returns the FieldWeldMutation object of the builder.
func (_u *FieldWeldUpdateOne) Mutation() *FieldWeldMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *FieldWeldUpdateOne) ClearProject() *FieldWeldUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearDrawing clears the "drawing" edge to the Drawing entity.
func (_u *FieldWeldUpdateOne) ClearDrawing() *FieldWeldUpdateOne {
	_u.mutation.ClearDrawing()
	return _u
}

// ClearWelder clears the "welder" edge to the Welder entity.
func (_u *FieldWeldUpdateOne) ClearWelder() *FieldWeldUpdateOne {
	_u.mutation.ClearWelder()
	return _u
}

// Where appends a list predicates to the FieldWeldUpdate builder.
func (_u *FieldWeldUpdateOne) Where(ps ...predicate.FieldWeld) *FieldWeldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldWeldUpdateOne) Select(field string, fields ...string) *FieldWeldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldWeld entity.
func (_u *FieldWeldUpdateOne) Save(ctx context.Context) (*FieldWeld, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldWeldUpdateOne) SaveX(ctx context.Context) *FieldWeld {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldWeldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldWeldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldWeldUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fieldweld.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldWeldUpdateOne) check() error {
	if v, ok := _u.mutation.WeldNumber(); ok {
		if err := fieldweld.WeldNumberValidator(v); err != nil {
			return &ValidationError{Name: "weld_number", err: fmt.Errorf(`ent: validator failed for field "FieldWeld.weld_number": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldWeld.project"`)
	}
	if _u.mutation.DrawingCleared() && len(_u.mutation.DrawingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FieldWeld.drawing"`)
	}
	return nil
}

func (_u *FieldWeldUpdateOne) sqlSave(ctx context.Context) (_node *FieldWeld, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fieldweld.Table, fieldweld.Columns, sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldWeld.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fieldweld.FieldID)
		for _, f := range fields {
			if !fieldweld.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fieldweld.FieldID {
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
	if value, ok := _u.mutation.WeldNumber(); ok {
		_spec.SetField(fieldweld.FieldWeldNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeldType(); ok {
		_spec.SetField(fieldweld.FieldWeldType, field.TypeString, value)
	}
	if _u.mutation.WeldTypeCleared() {
		_spec.ClearField(fieldweld.FieldWeldType, field.TypeString)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(fieldweld.FieldMaterial, field.TypeString, value)
	}
	if _u.mutation.MaterialCleared() {
		_spec.ClearField(fieldweld.FieldMaterial, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentMilestones(); ok {
		_spec.SetField(fieldweld.FieldCurrentMilestones, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMilestones(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fieldweld.FieldCurrentMilestones, value)
		})
	}
	if _u.mutation.CurrentMilestonesCleared() {
		_spec.ClearField(fieldweld.FieldCurrentMilestones, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fieldweld.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fieldweld.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.ProjectTable,
			Columns: []string{fieldweld.ProjectColumn},
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
			Table:   fieldweld.ProjectTable,
			Columns: []string{fieldweld.ProjectColumn},
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
	if _u.mutation.DrawingCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.DrawingTable,
			Columns: []string{fieldweld.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DrawingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.DrawingTable,
			Columns: []string{fieldweld.DrawingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(drawing.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WelderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.WelderTable,
			Columns: []string{fieldweld.WelderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WelderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   fieldweld.WelderTable,
			Columns: []string{fieldweld.WelderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldWeld{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fieldweld.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
