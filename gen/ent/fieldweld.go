// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/fieldweld"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/welder"
)

// FieldWeld is the model entity for the FieldWeld schema.
type FieldWeld struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// DrawingID holds the value of the "drawing_id" field.
	DrawingID uuid.UUID `json:"drawing_id,omitempty"`
	// WelderID holds the value of the "welder_id" field.
	WelderID *uuid.UUID `json:"welder_id,omitempty"`
	// WeldNumber holds the value of the "weld_number" field.
	WeldNumber string `json:"weld_number,omitempty"`
	// WeldType holds the value of the "weld_type" field.
	WeldType *string `json:"weld_type,omitempty"`
	// Material holds the value of the "material" field.
	Material *string `json:"material,omitempty"`
	// CurrentMilestones holds the value of the "current_milestones" field.
	CurrentMilestones json.RawMessage `json:"current_milestones,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldWeldQuery when eager-loading is set.
	Edges        FieldWeldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldWeldEdges holds the relations/edges for other nodes in the graph.
type FieldWeldEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Drawing holds the value of the drawing edge.
	Drawing *Drawing `json:"drawing,omitempty"`
	// Welder holds the value of the welder edge.
	Welder *Welder `json:"welder,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldWeldEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// DrawingOrErr returns the Drawing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldWeldEdges) DrawingOrErr() (*Drawing, error) {
	if e.Drawing != nil {
		return e.Drawing, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: drawing.Label}
	}
	return nil, &NotLoadedError{edge: "drawing"}
}

// WelderOrErr returns the Welder value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FieldWeldEdges) WelderOrErr() (*Welder, error) {
	if e.Welder != nil {
		return e.Welder, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: welder.Label}
	}
	return nil, &NotLoadedError{edge: "welder"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldWeld) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fieldweld.FieldWelderID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case fieldweld.FieldCurrentMilestones:
			values[i] = new([]byte)
		case fieldweld.FieldWeldNumber, fieldweld.FieldWeldType, fieldweld.FieldMaterial:
			values[i] = new(sql.NullString)
		case fieldweld.FieldCreatedAt, fieldweld.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fieldweld.FieldID, fieldweld.FieldProjectID, fieldweld.FieldDrawingID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldWeld fields.
func (_m *FieldWeld) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fieldweld.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fieldweld.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case fieldweld.FieldDrawingID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field drawing_id", values[i])
			} else if value != nil {
				_m.DrawingID = *value
			}
		case fieldweld.FieldWelderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field welder_id", values[i])
			} else if value.Valid {
				_m.WelderID = new(uuid.UUID)
				*_m.WelderID = *value.S.(*uuid.UUID)
			}
		case fieldweld.FieldWeldNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weld_number", values[i])
			} else if value.Valid {
				_m.WeldNumber = value.String
			}
		case fieldweld.FieldWeldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field weld_type", values[i])
			} else if value.Valid {
				_m.WeldType = new(string)
				*_m.WeldType = value.String
			}
		case fieldweld.FieldMaterial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field material", values[i])
			} else if value.Valid {
				_m.Material = new(string)
				*_m.Material = value.String
			}
		case fieldweld.FieldCurrentMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentMilestones); err != nil {
					return fmt.Errorf("unmarshal field current_milestones: %w", err)
				}
			}
		case fieldweld.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fieldweld.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FieldWeld.
// This includes values selected through modifiers, order, etc.
func (_m *FieldWeld) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the FieldWeld entity.
func (_m *FieldWeld) QueryProject() *ProjectQuery {
	return NewFieldWeldClient(_m.config).QueryProject(_m)
}

// QueryDrawing queries the "drawing" edge of the FieldWeld entity.
func (_m *FieldWeld) QueryDrawing() *DrawingQuery {
	return NewFieldWeldClient(_m.config).QueryDrawing(_m)
}

// QueryWelder queries the "welder" edge of the FieldWeld entity.
func (_m *FieldWeld) QueryWelder() *WelderQuery {
	return NewFieldWeldClient(_m.config).QueryWelder(_m)
}

// Update returns a builder for updating this FieldWeld.
// Note that you need to call FieldWeld.Unwrap() before calling this method if this FieldWeld
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldWeld) Update() *FieldWeldUpdateOne {
	return NewFieldWeldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldWeld entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldWeld) Unwrap() *FieldWeld {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldWeld is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldWeld) String() string {
	var builder strings.Builder
	builder.WriteString("FieldWeld(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("drawing_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DrawingID))
	builder.WriteString(", ")
	if v := _m.WelderID; v != nil {
		builder.WriteString("welder_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("weld_number=")
	builder.WriteString(_m.WeldNumber)
	builder.WriteString(", ")
	if v := _m.WeldType; v != nil {
		builder.WriteString("weld_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Material; v != nil {
		builder.WriteString("material=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("current_milestones=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentMilestones))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FieldWelds is a parsable slice of FieldWeld.
type FieldWelds []*FieldWeld
