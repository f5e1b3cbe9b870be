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
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// WelderUpdate is the builder for updating Welder entities.
type WelderUpdate struct {
	config
	hooks    []Hook
	mutation *WelderMutation
}

// Where appends a list predicates to the WelderUpdate builder.
func (_u *WelderUpdate) Where(ps ...predicate.Welder) *WelderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *WelderUpdate) SetProjectID(v uuid.UUID) *WelderUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *WelderUpdate) SetNillableProjectID(v *uuid.UUID) *WelderUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WelderUpdate) SetName(v string) *WelderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WelderUpdate) SetNillableName(v *string) *WelderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStencil sets the "stencil" field.
func (_u *WelderUpdate) SetStencil(v string) *WelderUpdate {
	_u.mutation.SetStencil(v)
	return _u
}

// SetNillableStencil sets the "stencil" field if the given value is not nil.
func (_u *WelderUpdate) SetNillableStencil(v *string) *WelderUpdate {
	if v != nil {
		_u.SetStencil(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WelderUpdate) SetActive(v bool) *WelderUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WelderUpdate) SetNillableActive(v *bool) *WelderUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WelderUpdate) SetCreatedAt(v time.Time) *WelderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WelderUpdate) SetNillableCreatedAt(v *time.Time) *WelderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *WelderUpdate) SetProject(v *Project) *WelderUpdate {
	return _u.SetProjectID(v.ID)
}

// AddWeldIDs adds the "welds" edge to the FieldWeld entity by IDs.
func (_u *WelderUpdate) AddWeldIDs(ids ...uuid.UUID) *WelderUpdate {
	_u.mutation.AddWeldIDs(ids...)
	return _u
}

// AddWelds adds the "welds" edges to the FieldWeld entity.
func (_u *WelderUpdate) AddWelds(v ...*FieldWeld) *WelderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWeldIDs(ids...)
}

// Mutation returns the WelderMutation object of the builder.
func (_u *WelderUpdate) Mutation() *WelderMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *WelderUpdate) ClearProject() *WelderUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearWelds clears all "welds" edges to the FieldWeld entity.
func (_u *WelderUpdate) ClearWelds() *WelderUpdate {
	_u.mutation.ClearWelds()
	return _u
}

// RemoveWeldIDs removes the "welds" edge to FieldWeld entities by IDs.
func (_u *WelderUpdate) RemoveWeldIDs(ids ...uuid.UUID) *WelderUpdate {
	_u.mutation.RemoveWeldIDs(ids...)
	return _u
}

// RemoveWelds removes "welds" edges to FieldWeld entities.
func (_u *WelderUpdate) RemoveWelds(v ...*FieldWeld) *WelderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWeldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WelderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WelderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WelderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WelderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WelderUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := welder.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Welder.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stencil(); ok {
		if err := welder.StencilValidator(v); err != nil {
			return &ValidationError{Name: "stencil", err: fmt.Errorf(`ent: validator failed for field "Welder.stencil": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Welder.project"`)
	}
	return nil
}

func (_u *WelderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(welder.Table, welder.Columns, sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(welder.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stencil(); ok {
		_spec.SetField(welder.FieldStencil, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(welder.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(welder.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   welder.ProjectTable,
			Columns: []string{welder.ProjectColumn},
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
			Table:   welder.ProjectTable,
			Columns: []string{welder.ProjectColumn},
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
	if _u.mutation.WeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeldsIDs(); len(nodes) > 0 && !_u.mutation.WeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
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
	if nodes := _u.mutation.WeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
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
			err = &NotFoundError{welder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WelderUpdateOne is the builder for updating a single Welder entity.
type WelderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WelderMutation
}

// SetProjectID sets the "project_id" field.
func (_u *WelderUpdateOne) SetProjectID(v uuid.UUID) *WelderUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *WelderUpdateOne) SetNillableProjectID(v *uuid.UUID) *WelderUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *WelderUpdateOne) SetName(v string) *WelderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WelderUpdateOne) SetNillableName(v *string) *WelderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStencil sets the "stencil" field.
func (_u *WelderUpdateOne) SetStencil(v string) *WelderUpdateOne {
	_u.mutation.SetStencil(v)
	return _u
}

// SetNillableStencil sets the "stencil" field if the given value is not nil.
func (_u *WelderUpdateOne) SetNillableStencil(v *string) *WelderUpdateOne {
	if v != nil {
		_u.SetStencil(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WelderUpdateOne) SetActive(v bool) *WelderUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WelderUpdateOne) SetNillableActive(v *bool) *WelderUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WelderUpdateOne) SetCreatedAt(v time.Time) *WelderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WelderUpdateOne) SetNillableCreatedAt(v *time.Time) *WelderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *WelderUpdateOne) SetProject(v *Project) *WelderUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddWeldIDs adds the "welds" edge to the FieldWeld entity by IDs.
func (_u *WelderUpdateOne) AddWeldIDs(ids ...uuid.UUID) *WelderUpdateOne {
	_u.mutation.AddWeldIDs(ids...)
	return _u
}

// AddWelds adds the "welds" edges to the FieldWeld entity.
func (_u *WelderUpdateOne) AddWelds(v ...*FieldWeld) *WelderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWeldIDs(ids...)
}

// Mutation returns the WelderMutation object of the builder.
func (_u *WelderUpdateOne) Mutation() *WelderMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *WelderUpdateOne) ClearProject() *WelderUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearWelds clears all "welds" edges to the FieldWeld entity.
func (_u *WelderUpdateOne) ClearWelds() *WelderUpdateOne {
	_u.mutation.ClearWelds()
	return _u
}

// RemoveWeldIDs removes the "welds" edge to FieldWeld entities by IDs.
func (_u *WelderUpdateOne) RemoveWeldIDs(ids ...uuid.UUID) *WelderUpdateOne {
	_u.mutation.RemoveWeldIDs(ids...)
	return _u
}

// RemoveWelds removes "welds" edges to FieldWeld entities.
func (_u *WelderUpdateOne) RemoveWelds(v ...*FieldWeld) *WelderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWeldIDs(ids...)
}

// Where appends a list predicates to the WelderUpdate builder.
func (_u *WelderUpdateOne) Where(ps ...predicate.Welder) *WelderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WelderUpdateOne) Select(field string, fields ...string) *WelderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Welder entity.
func (_u *WelderUpdateOne) Save(ctx context.Context) (*Welder, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WelderUpdateOne) SaveX(ctx context.Context) *Welder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WelderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WelderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WelderUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := welder.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Welder.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stencil(); ok {
		if err := welder.StencilValidator(v); err != nil {
			return &ValidationError{Name: "stencil", err: fmt.Errorf(`ent: validator failed for field "Welder.stencil": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Welder.project"`)
	}
	return nil
}

func (_u *WelderUpdateOne) sqlSave(ctx context.Context) (_node *Welder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(welder.Table, welder.Columns, sqlgraph.NewFieldSpec(welder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Welder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, welder.FieldID)
		for _, f := range fields {
			if !welder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != welder.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(welder.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stencil(); ok {
		_spec.SetField(welder.FieldStencil, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(welder.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(welder.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   welder.ProjectTable,
			Columns: []string{welder.ProjectColumn},
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
			Table:   welder.ProjectTable,
			Columns: []string{welder.ProjectColumn},
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
	if _u.mutation.WeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fieldweld.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWeldsIDs(); len(nodes) > 0 && !_u.mutation.WeldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
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
	if nodes := _u.mutation.WeldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   welder.WeldsTable,
			Columns: []string{welder.WeldsColumn},
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
	_node = &Welder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{welder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
