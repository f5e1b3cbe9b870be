// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// Welder is the model entity for the Welder schema.
type Welder struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Stencil holds the value of the "stencil" field.
	Stencil string `json:"stencil,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WelderQuery when eager-loading is set.
	Edges        WelderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WelderEdges holds the relations/edges for other nodes in the graph.
type WelderEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Welds holds the value of the welds edge.
	Welds []*FieldWeld `json:"welds,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WelderEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// WeldsOrErr returns the Welds value or an error if the edge
// was not loaded in eager-loading.
func (e WelderEdges) WeldsOrErr() ([]*FieldWeld, error) {
	if e.loadedTypes[1] {
		return e.Welds, nil
	}
	return nil, &NotLoadedError{edge: "welds"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Welder) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case welder.FieldActive:
			values[i] = new(sql.NullBool)
		case welder.FieldName, welder.FieldStencil:
			values[i] = new(sql.NullString)
		case welder.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case welder.FieldID, welder.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Welder fields.
func (_m *Welder) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case welder.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case welder.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case welder.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case welder.FieldStencil:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stencil", values[i])
			} else if value.Valid {
				_m.Stencil = value.String
			}
		case welder.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case welder.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Welder.
// This includes values selected through modifiers, order, etc.
func (_m *Welder) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Welder entity.
func (_m *Welder) QueryProject() *ProjectQuery {
	return NewWelderClient(_m.config).QueryProject(_m)
}

// QueryWelds queries the "welds" edge of the Welder entity.
func (_m *Welder) QueryWelds() *FieldWeldQuery {
	return NewWelderClient(_m.config).QueryWelds(_m)
}

// Update returns a builder for updating this Welder.
// Note that you need to call Welder.Unwrap() before calling this method if this Welder
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Welder) Update() *WelderUpdateOne {
	return NewWelderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Welder entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Welder) Unwrap() *Welder {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Welder is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Welder) String() string {
	var builder strings.Builder
	builder.WriteString("Welder(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("stencil=")
	builder.WriteString(_m.Stencil)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Welders is a parsable slice of Welder.
type Welders []*Welder
