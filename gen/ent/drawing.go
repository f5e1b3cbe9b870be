// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
)

// Drawing is the model entity for the Drawing schema.
type Drawing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// AreaID holds the value of the "area_id" field.
	AreaID *uuid.UUID `json:"area_id,omitempty"`
	// SystemID holds the value of the "system_id" field.
	SystemID *uuid.UUID `json:"system_id,omitempty"`
	// Number holds the value of the "number" field.
	Number string `json:"number,omitempty"`
	// NormNumber holds the value of the "norm_number" field.
	NormNumber string `json:"norm_number,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Revision holds the value of the "revision" field.
	Revision *string `json:"revision,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DrawingQuery when eager-loading is set.
	Edges        DrawingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DrawingEdges holds the relations/edges for other nodes in the graph.
type DrawingEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Area holds the value of the area edge.
	Area *Area `json:"area,omitempty"`
	// System holds the value of the system edge.
	System *System `json:"system,omitempty"`
	// Components holds the value of the components edge.
	Components []*Component `json:"components,omitempty"`
	// FieldWelds holds the value of the field_welds edge.
	FieldWelds []*FieldWeld `json:"field_welds,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DrawingEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// AreaOrErr returns the Area value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DrawingEdges) AreaOrErr() (*Area, error) {
	if e.Area != nil {
		return e.Area, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: area.Label}
	}
	return nil, &NotLoadedError{edge: "area"}
}

// SystemOrErr returns the System value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DrawingEdges) SystemOrErr() (*System, error) {
	if e.System != nil {
		return e.System, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: system.Label}
	}
	return nil, &NotLoadedError{edge: "system"}
}

// ComponentsOrErr returns the Components value or an error if the edge
// was not loaded in eager-loading.
func (e DrawingEdges) ComponentsOrErr() ([]*Component, error) {
	if e.loadedTypes[3] {
		return e.Components, nil
	}
	return nil, &NotLoadedError{edge: "components"}
}

// FieldWeldsOrErr returns the FieldWelds value or an error if the edge
// was not loaded in eager-loading.
func (e DrawingEdges) FieldWeldsOrErr() ([]*FieldWeld, error) {
	if e.loadedTypes[4] {
		return e.FieldWelds, nil
	}
	return nil, &NotLoadedError{edge: "field_welds"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Drawing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drawing.FieldAreaID, drawing.FieldSystemID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case drawing.FieldNumber, drawing.FieldNormNumber, drawing.FieldTitle, drawing.FieldRevision:
			values[i] = new(sql.NullString)
		case drawing.FieldCreatedAt, drawing.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case drawing.FieldID, drawing.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Drawing fields.
func (_m *Drawing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drawing.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case drawing.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case drawing.FieldAreaID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field area_id", values[i])
			} else if value.Valid {
				_m.AreaID = new(uuid.UUID)
				*_m.AreaID = *value.S.(*uuid.UUID)
			}
		case drawing.FieldSystemID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field system_id", values[i])
			} else if value.Valid {
				_m.SystemID = new(uuid.UUID)
				*_m.SystemID = *value.S.(*uuid.UUID)
			}
		case drawing.FieldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field number", values[i])
			} else if value.Valid {
				_m.Number = value.String
			}
		case drawing.FieldNormNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field norm_number", values[i])
			} else if value.Valid {
				_m.NormNumber = value.String
			}
		case drawing.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case drawing.FieldRevision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revision", values[i])
			} else if value.Valid {
				_m.Revision = new(string)
				*_m.Revision = value.String
			}
		case drawing.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case drawing.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Drawing.
// This includes values selected through modifiers, order, etc.
func (_m *Drawing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Drawing entity.
func (_m *Drawing) QueryProject() *ProjectQuery {
	return NewDrawingClient(_m.config).QueryProject(_m)
}

// QueryArea queries the "area" edge of the Drawing entity.
func (_m *Drawing) QueryArea() *AreaQuery {
	return NewDrawingClient(_m.config).QueryArea(_m)
}

// QuerySystem queries the "system" edge of the Drawing entity.
func (_m *Drawing) QuerySystem() *SystemQuery {
	return NewDrawingClient(_m.config).QuerySystem(_m)
}

// QueryComponents queries the "components" edge of the Drawing entity.
func (_m *Drawing) QueryComponents() *ComponentQuery {
	return NewDrawingClient(_m.config).QueryComponents(_m)
}

// QueryFieldWelds queries the "field_welds" edge of the Drawing entity.
func (_m *Drawing) QueryFieldWelds() *FieldWeldQuery {
	return NewDrawingClient(_m.config).QueryFieldWelds(_m)
}

// Update returns a builder for updating this Drawing.
// Note that you need to call Drawing.Unwrap() before calling this method if this Drawing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Drawing) Update() *DrawingUpdateOne {
	return NewDrawingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Drawing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Drawing) Unwrap() *Drawing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Drawing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Drawing) String() string {
	var builder strings.Builder
	builder.WriteString("Drawing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	if v := _m.AreaID; v != nil {
		builder.WriteString("area_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SystemID; v != nil {
		builder.WriteString("system_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("number=")
	builder.WriteString(_m.Number)
	builder.WriteString(", ")
	builder.WriteString("norm_number=")
	builder.WriteString(_m.NormNumber)
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Revision; v != nil {
		builder.WriteString("revision=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Drawings is a parsable slice of Drawing.
type Drawings []*Drawing
