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
	"github.com/pipetrak/pipetrak/gen/ent/area"
	"github.com/pipetrak/pipetrak/gen/ent/component"
	"github.com/pipetrak/pipetrak/gen/ent/drawing"
	"github.com/pipetrak/pipetrak/gen/ent/project"
	"github.com/pipetrak/pipetrak/gen/ent/system"
	"github.com/pipetrak/pipetrak/gen/ent/testpackage"
)

// Component is the model entity for the Component schema.
type Component struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// DrawingID holds the value of the "drawing_id" field.
	DrawingID *uuid.UUID `json:"drawing_id,omitempty"`
	// AreaID holds the value of the "area_id" field.
	AreaID *uuid.UUID `json:"area_id,omitempty"`
	// SystemID holds the value of the "system_id" field.
	SystemID *uuid.UUID `json:"system_id,omitempty"`
	// TestPackageID holds the value of the "test_package_id" field.
	TestPackageID *uuid.UUID `json:"test_package_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// IdentityKey holds the value of the "identity_key" field.
	IdentityKey string `json:"identity_key,omitempty"`
	// CommodityCode holds the value of the "commodity_code" field.
	CommodityCode string `json:"commodity_code,omitempty"`
	// Spec holds the value of the "spec" field.
	Spec string `json:"spec,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Size holds the value of the "size" field.
	Size string `json:"size,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Comments holds the value of the "comments" field.
	Comments *string `json:"comments,omitempty"`
	// Attributes holds the value of the "attributes" field.
	Attributes map[string]string `json:"attributes,omitempty"`
	// CurrentMilestones holds the value of the "current_milestones" field.
	CurrentMilestones json.RawMessage `json:"current_milestones,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComponentQuery when eager-loading is set.
	Edges        ComponentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComponentEdges holds the relations/edges for other nodes in the graph.
type ComponentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Drawing holds the value of the drawing edge.
	Drawing *Drawing `json:"drawing,omitempty"`
	// Area holds the value of the area edge.
	Area *Area `json:"area,omitempty"`
	// System holds the value of the system edge.
	System *System `json:"system,omitempty"`
	// TestPackage holds the value of the test_package edge.
	TestPackage *TestPackage `json:"test_package,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// DrawingOrErr returns the Drawing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) DrawingOrErr() (*Drawing, error) {
	if e.Drawing != nil {
		return e.Drawing, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: drawing.Label}
	}
	return nil, &NotLoadedError{edge: "drawing"}
}

// AreaOrErr returns the Area value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) AreaOrErr() (*Area, error) {
	if e.Area != nil {
		return e.Area, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: area.Label}
	}
	return nil, &NotLoadedError{edge: "area"}
}

// SystemOrErr returns the System value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) SystemOrErr() (*System, error) {
	if e.System != nil {
		return e.System, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: system.Label}
	}
	return nil, &NotLoadedError{edge: "system"}
}

// TestPackageOrErr returns the TestPackage value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComponentEdges) TestPackageOrErr() (*TestPackage, error) {
	if e.TestPackage != nil {
		return e.TestPackage, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: testpackage.Label}
	}
	return nil, &NotLoadedError{edge: "test_package"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Component) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case component.FieldDrawingID, component.FieldAreaID, component.FieldSystemID, component.FieldTestPackageID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case component.FieldAttributes, component.FieldCurrentMilestones:
			values[i] = new([]byte)
		case component.FieldQuantity, component.FieldSeq:
			values[i] = new(sql.NullInt64)
		case component.FieldType, component.FieldIdentityKey, component.FieldCommodityCode, component.FieldSpec, component.FieldDescription, component.FieldSize, component.FieldComments:
			values[i] = new(sql.NullString)
		case component.FieldCreatedAt, component.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case component.FieldID, component.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Component fields.
func (_m *Component) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case component.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case component.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case component.FieldDrawingID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field drawing_id", values[i])
			} else if value.Valid {
				_m.DrawingID = new(uuid.UUID)
				*_m.DrawingID = *value.S.(*uuid.UUID)
			}
		case component.FieldAreaID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field area_id", values[i])
			} else if value.Valid {
				_m.AreaID = new(uuid.UUID)
				*_m.AreaID = *value.S.(*uuid.UUID)
			}
		case component.FieldSystemID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field system_id", values[i])
			} else if value.Valid {
				_m.SystemID = new(uuid.UUID)
				*_m.SystemID = *value.S.(*uuid.UUID)
			}
		case component.FieldTestPackageID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field test_package_id", values[i])
			} else if value.Valid {
				_m.TestPackageID = new(uuid.UUID)
				*_m.TestPackageID = *value.S.(*uuid.UUID)
			}
		case component.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case component.FieldIdentityKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identity_key", values[i])
			} else if value.Valid {
				_m.IdentityKey = value.String
			}
		case component.FieldCommodityCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commodity_code", values[i])
			} else if value.Valid {
				_m.CommodityCode = value.String
			}
		case component.FieldSpec:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spec", values[i])
			} else if value.Valid {
				_m.Spec = value.String
			}
		case component.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case component.FieldSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.String
			}
		case component.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case component.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case component.FieldComments:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comments", values[i])
			} else if value.Valid {
				_m.Comments = new(string)
				*_m.Comments = value.String
			}
		case component.FieldAttributes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attributes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Attributes); err != nil {
					return fmt.Errorf("unmarshal field attributes: %w", err)
				}
			}
		case component.FieldCurrentMilestones:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_milestones", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentMilestones); err != nil {
					return fmt.Errorf("unmarshal field current_milestones: %w", err)
				}
			}
		case component.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case component.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Component.
// This includes values selected through modifiers, order, etc.
func (_m *Component) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Component entity.
func (_m *Component) QueryProject() *ProjectQuery {
	return NewComponentClient(_m.config).QueryProject(_m)
}

// QueryDrawing queries the "drawing" edge of the Component entity.
func (_m *Component) QueryDrawing() *DrawingQuery {
	return NewComponentClient(_m.config).QueryDrawing(_m)
}

// QueryArea queries the "area" edge of the Component entity.
func (_m *Component) QueryArea() *AreaQuery {
	return NewComponentClient(_m.config).QueryArea(_m)
}

// QuerySystem queries the "system" edge of the Component entity.
func (_m *Component) QuerySystem() *SystemQuery {
	return NewComponentClient(_m.config).QuerySystem(_m)
}

// QueryTestPackage queries the "test_package" edge of the Component entity.
func (_m *Component) QueryTestPackage() *TestPackageQuery {
	return NewComponentClient(_m.config).QueryTestPackage(_m)
}

// Update returns a builder for updating this Component.
// Note that you need to call Component.Unwrap() before calling this method if this Component
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Component) Update() *ComponentUpdateOne {
	return NewComponentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Component entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Component) Unwrap() *Component {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Component is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Component) String() string {
	var builder strings.Builder
	builder.WriteString("Component(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	if v := _m.DrawingID; v != nil {
		builder.WriteString("drawing_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
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
	if v := _m.TestPackageID; v != nil {
		builder.WriteString("test_package_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("identity_key=")
	builder.WriteString(_m.IdentityKey)
	builder.WriteString(", ")
	builder.WriteString("commodity_code=")
	builder.WriteString(_m.CommodityCode)
	builder.WriteString(", ")
	builder.WriteString("spec=")
	builder.WriteString(_m.Spec)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(_m.Size)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	if v := _m.Comments; v != nil {
		builder.WriteString("comments=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("attributes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attributes))
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

// Components is a parsable slice of Component.
type Components []*Component
