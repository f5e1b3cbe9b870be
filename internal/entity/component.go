package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
)

// Component represents a tracked pipe component for data transfer between layers.
type Component struct {
	ID            uuid.UUID               `json:"id"`
	ProjectID     uuid.UUID               `json:"project_id"`
	Type          constants.ComponentType `json:"type"`
	IdentityKey   string                  `json:"identity_key"`
	DrawingID     *uuid.UUID              `json:"drawing_id,omitempty"`
	AreaID        *uuid.UUID              `json:"area_id,omitempty"`
	SystemID      *uuid.UUID              `json:"system_id,omitempty"`
	TestPackageID *uuid.UUID              `json:"test_package_id,omitempty"`
	CommodityCode string                  `json:"commodity_code,omitempty"`
	Spec          string                  `json:"spec,omitempty"`
	Description   string                  `json:"description,omitempty"`
	Size          string                  `json:"size,omitempty"`
	Quantity      int                     `json:"quantity"`
	Seq           int                     `json:"seq"`
	Comments      *string                 `json:"comments,omitempty"`
	Attributes    map[string]string       `json:"attributes,omitempty"`
	Milestones    MilestoneState          `json:"current_milestones,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
