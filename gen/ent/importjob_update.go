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
	"github.com/pipetrak/pipetrak/gen/ent/importjob"
	"github.com/pipetrak/pipetrak/gen/ent/predicate"
	"github.com/pipetrak/pipetrak/gen/ent/project"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ImportJobUpdate) SetProjectID(v uuid.UUID) *ImportJobUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableProjectID(v *uuid.UUID) *ImportJobUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportJobUpdate) SetFilename(v string) *ImportJobUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFilename(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *ImportJobUpdate) SetTotalRows(v int) *ImportJobUpdate {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableTotalRows(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *ImportJobUpdate) AddTotalRows(v int) *ImportJobUpdate {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetValidRows sets the "valid_rows" field.
func (_u *ImportJobUpdate) SetValidRows(v int) *ImportJobUpdate {
	_u.mutation.ResetValidRows()
	_u.mutation.SetValidRows(v)
	return _u
}

// SetNillableValidRows sets the "valid_rows" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableValidRows(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetValidRows(*v)
	}
	return _u
}

// AddValidRows adds value to the "valid_rows" field.
func (_u *ImportJobUpdate) AddValidRows(v int) *ImportJobUpdate {
	_u.mutation.AddValidRows(v)
	return _u
}

// SetSkippedRows sets the "skipped_rows" field.
func (_u *ImportJobUpdate) SetSkippedRows(v int) *ImportJobUpdate {
	_u.mutation.ResetSkippedRows()
	_u.mutation.SetSkippedRows(v)
	return _u
}

// SetNillableSkippedRows sets the "skipped_rows" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableSkippedRows(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetSkippedRows(*v)
	}
	return _u
}

// AddSkippedRows adds value to the "skipped_rows" field.
func (_u *ImportJobUpdate) AddSkippedRows(v int) *ImportJobUpdate {
	_u.mutation.AddSkippedRows(v)
	return _u
}

// SetErrorRows sets the "error_rows" field.
func (_u *ImportJobUpdate) SetErrorRows(v int) *ImportJobUpdate {
	_u.mutation.ResetErrorRows()
	_u.mutation.SetErrorRows(v)
	return _u
}

// SetNillableErrorRows sets the "error_rows" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorRows(v *int) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorRows(*v)
	}
	return _u
}

// AddErrorRows adds value to the "error_rows" field.
func (_u *ImportJobUpdate) AddErrorRows(v int) *ImportJobUpdate {
	_u.mutation.AddErrorRows(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ImportJobUpdate) SetResult(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ImportJobUpdate) AppendResult(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ImportJobUpdate) ClearResult() *ImportJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdate) SetErrorMessage(v string) *ImportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableErrorMessage(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdate) ClearErrorMessage() *ImportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportJobUpdate) SetCreatedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableCreatedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ImportJobUpdate) ClearStartedAt() *ImportJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdate) SetFinishedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFinishedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdate) ClearFinishedAt() *ImportJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ImportJobUpdate) SetProject(v *Project) *ImportJobUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ImportJobUpdate) ClearProject() *ImportJobUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRows(); ok {
		if err := importjob.TotalRowsValidator(v); err != nil {
			return &ValidationError{Name: "total_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.total_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidRows(); ok {
		if err := importjob.ValidRowsValidator(v); err != nil {
			return &ValidationError{Name: "valid_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.valid_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedRows(); ok {
		if err := importjob.SkippedRowsValidator(v); err != nil {
			return &ValidationError{Name: "skipped_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.skipped_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorRows(); ok {
		if err := importjob.ErrorRowsValidator(v); err != nil {
			return &ValidationError{Name: "error_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.error_rows": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.project"`)
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(importjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(importjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidRows(); ok {
		_spec.SetField(importjob.FieldValidRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidRows(); ok {
		_spec.AddField(importjob.FieldValidRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedRows(); ok {
		_spec.SetField(importjob.FieldSkippedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedRows(); ok {
		_spec.AddField(importjob.FieldSkippedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorRows(); ok {
		_spec.SetField(importjob.FieldErrorRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorRows(); ok {
		_spec.AddField(importjob.FieldErrorRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(importjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(importjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ImportJobUpdateOne) SetProjectID(v uuid.UUID) *ImportJobUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableProjectID(v *uuid.UUID) *ImportJobUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportJobUpdateOne) SetFilename(v string) *ImportJobUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFilename(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *ImportJobUpdateOne) SetTotalRows(v int) *ImportJobUpdateOne {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableTotalRows(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *ImportJobUpdateOne) AddTotalRows(v int) *ImportJobUpdateOne {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetValidRows sets the "valid_rows" field.
func (_u *ImportJobUpdateOne) SetValidRows(v int) *ImportJobUpdateOne {
	_u.mutation.ResetValidRows()
	_u.mutation.SetValidRows(v)
	return _u
}

// SetNillableValidRows sets the "valid_rows" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableValidRows(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetValidRows(*v)
	}
	return _u
}

// AddValidRows adds value to the "valid_rows" field.
func (_u *ImportJobUpdateOne) AddValidRows(v int) *ImportJobUpdateOne {
	_u.mutation.AddValidRows(v)
	return _u
}

// SetSkippedRows sets the "skipped_rows" field.
func (_u *ImportJobUpdateOne) SetSkippedRows(v int) *ImportJobUpdateOne {
	_u.mutation.ResetSkippedRows()
	_u.mutation.SetSkippedRows(v)
	return _u
}

// SetNillableSkippedRows sets the "skipped_rows" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableSkippedRows(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetSkippedRows(*v)
	}
	return _u
}

// AddSkippedRows adds value to the "skipped_rows" field.
func (_u *ImportJobUpdateOne) AddSkippedRows(v int) *ImportJobUpdateOne {
	_u.mutation.AddSkippedRows(v)
	return _u
}

// SetErrorRows sets the "error_rows" field.
func (_u *ImportJobUpdateOne) SetErrorRows(v int) *ImportJobUpdateOne {
	_u.mutation.ResetErrorRows()
	_u.mutation.SetErrorRows(v)
	return _u
}

// SetNillableErrorRows sets the "error_rows" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorRows(v *int) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorRows(*v)
	}
	return _u
}

// AddErrorRows adds value to the "error_rows" field.
func (_u *ImportJobUpdateOne) AddErrorRows(v int) *ImportJobUpdateOne {
	_u.mutation.AddErrorRows(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ImportJobUpdateOne) SetResult(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ImportJobUpdateOne) AppendResult(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ImportJobUpdateOne) ClearResult() *ImportJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportJobUpdateOne) SetErrorMessage(v string) *ImportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableErrorMessage(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportJobUpdateOne) ClearErrorMessage() *ImportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ImportJobUpdateOne) SetCreatedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ImportJobUpdateOne) ClearStartedAt() *ImportJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportJobUpdateOne) SetFinishedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportJobUpdateOne) ClearFinishedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ImportJobUpdateOne) SetProject(v *Project) *ImportJobUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ImportJobUpdateOne) ClearProject() *ImportJobUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRows(); ok {
		if err := importjob.TotalRowsValidator(v); err != nil {
			return &ValidationError{Name: "total_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.total_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidRows(); ok {
		if err := importjob.ValidRowsValidator(v); err != nil {
			return &ValidationError{Name: "valid_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.valid_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkippedRows(); ok {
		if err := importjob.SkippedRowsValidator(v); err != nil {
			return &ValidationError{Name: "skipped_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.skipped_rows": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ErrorRows(); ok {
		if err := importjob.ErrorRowsValidator(v); err != nil {
			return &ValidationError{Name: "error_rows", err: fmt.Errorf(`ent: validator failed for field "ImportJob.error_rows": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportJob.project"`)
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(importjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(importjob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidRows(); ok {
		_spec.SetField(importjob.FieldValidRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValidRows(); ok {
		_spec.AddField(importjob.FieldValidRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkippedRows(); ok {
		_spec.SetField(importjob.FieldSkippedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkippedRows(); ok {
		_spec.AddField(importjob.FieldSkippedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorRows(); ok {
		_spec.SetField(importjob.FieldErrorRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorRows(); ok {
		_spec.AddField(importjob.FieldErrorRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(importjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(importjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(importjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
