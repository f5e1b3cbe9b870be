// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/importjob"
	"github.com/pipetrak/pipetrak/gen/ent/project"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ImportJobCreate) SetProjectID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ImportJobCreate) SetFilename(v string) *ImportJobCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalRows sets the "total_rows" field.
func (_c *ImportJobCreate) SetTotalRows(v int) *ImportJobCreate {
	_c.mutation.SetTotalRows(v)
	return _c
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableTotalRows(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetTotalRows(*v)
	}
	return _c
}

// SetValidRows sets the "valid_rows" field.
func (_c *ImportJobCreate) SetValidRows(v int) *ImportJobCreate {
	_c.mutation.SetValidRows(v)
	return _c
}

// SetNillableValidRows sets the "valid_rows" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableValidRows(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetValidRows(*v)
	}
	return _c
}

// SetSkippedRows sets the "skipped_rows" field.
func (_c *ImportJobCreate) SetSkippedRows(v int) *ImportJobCreate {
	_c.mutation.SetSkippedRows(v)
	return _c
}

// SetNillableSkippedRows sets the "skipped_rows" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableSkippedRows(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetSkippedRows(*v)
	}
	return _c
}

// SetErrorRows sets the "error_rows" field.
func (_c *ImportJobCreate) SetErrorRows(v int) *ImportJobCreate {
	_c.mutation.SetErrorRows(v)
	return _c
}

// SetNillableErrorRows sets the "error_rows" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorRows(v *int) *ImportJobCreate {
	if v != nil {
		_c.SetErrorRows(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *ImportJobCreate) SetResult(v json.RawMessage) *ImportJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportJobCreate) SetErrorMessage(v string) *ImportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableErrorMessage(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportJobCreate) SetCreatedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableCreatedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportJobCreate) SetFinishedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFinishedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ImportJobCreate) SetProject(v *Project) *ImportJobCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalRows(); !ok {
		v := importjob.DefaultTotalRows
		_c.mutation.SetTotalRows(v)
	}
	if _, ok := _c.mutation.ValidRows(); !ok {
		v := importjob.DefaultValidRows
		_c.mutation.SetValidRows(v)
	}
	if _, ok := _c.mutation.SkippedRows(); !ok {
		v := importjob.DefaultSkippedRows
		_c.mutation.SetSkippedRows(v)
	}
	if _, ok := _c.mutation.ErrorRows(); !ok {
		v := importjob.DefaultErrorRows
		_c.mutation.SetErrorRows(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ImportJob.project_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ImportJob.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRows(); !ok {
		return &ValidationError{Name: "total_rows", err: errors.New(`ent: missing required field "ImportJob.total_rows"`)}
	}
	if v, ok := _c.mutation.TotalRows(); ok {
		if err := importjob.TotalRowsValidator(v); err != nil {
			return &ValidationError{Name: "total_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.total_rows": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidRows(); !ok {
		return &ValidationError{Name: "valid_rows", err: errors.New(`ent: missing required field "ImportJob.valid_rows"`)}
	}
	if v, ok := _c.mutation.ValidRows(); ok {
		if err := importjob.ValidRowsValidator(v); err != nil {
			return &ValidationError{Name: "valid_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.valid_rows": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkippedRows(); !ok {
		return &ValidationError{Name: "skipped_rows", err: errors.New(`ent: missing required field "ImportJob.skipped_rows"`)}
	}
	if v, ok := _c.mutation.SkippedRows(); ok {
		if err := importjob.SkippedRowsValidator(v); err != nil {
			return &ValidationError{Name: "skipped_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.skipped_rows": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorRows(); !ok {
		return &ValidationError{Name: "error_rows", err: errors.New(`ent: missing required field "ImportJob.error_rows"`)}
	}
	if v, ok := _c.mutation.ErrorRows(); ok {
		if err := importjob.ErrorRowsValidator(v); err != nil {
			return &ValidationError{Name: "error_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.error_rows": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportJob.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ImportJob.project"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalRows(); ok {
		_spec.SetField(importjob.FieldTotalRows, field.TypeInt, value)
		_node.TotalRows = value
	}
	if value, ok := _c.mutation.ValidRows(); ok {
		_spec.SetField(importjob.FieldValidRows, field.TypeInt, value)
		_node.ValidRows = value
	}
	if value, ok := _c.mutation.SkippedRows(); ok {
		_spec.SetField(importjob.FieldSkippedRows, field.TypeInt, value)
		_node.SkippedRows = value
	}
	if value, ok := _c.mutation.ErrorRows(); ok {
		_spec.SetField(importjob.FieldErrorRows, field.TypeInt, value)
		_node.ErrorRows = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importjob.ProjectTable,
			Columns: []string{importjob.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
