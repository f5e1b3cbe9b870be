package entity

import (
	"time"

	"github.com/google/uuid"
)

// Drawing represents an isometric or P&ID drawing for data transfer between layers.
type Drawing struct {
	ID         uuid.UUID  `json:"id"`
	ProjectID  uuid.UUID  `json:"project_id"`
	Number     string     `json:"number"`
	NormNumber string     `json:"norm_number"`
	Title      *string    `json:"title,omitempty"`
	Revision   *string    `json:"revision,omitempty"`
	AreaID     *uuid.UUID `json:"area_id,omitempty"`
	SystemID   *uuid.UUID `json:"system_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FieldWeld represents a field weld for data transfer between layers.
// Welds hang off a drawing, never off a component.
type FieldWeld struct {
	ID         uuid.UUID      `json:"id"`
	ProjectID  uuid.UUID      `json:"project_id"`
	DrawingID  uuid.UUID      `json:"drawing_id"`
	WeldNumber string         `json:"weld_number"`
	WeldType   *string        `json:"weld_type,omitempty"`
	Material   *string        `json:"material,omitempty"`
	WelderID   *uuid.UUID     `json:"welder_id,omitempty"`
	Milestones MilestoneState `json:"current_milestones,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Reference is a lightweight (id, name) pair for areas, systems and test
// packages.
type Reference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Welder represents a project welder for data transfer between layers.
type Welder struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Stencil string    `json:"stencil"`
	Active  bool      `json:"active"`
}
