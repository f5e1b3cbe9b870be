package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
)

// ImportJob represents one import invocation for data transfer between layers.
type ImportJob struct {
	ID           uuid.UUID                 `json:"id"`
	ProjectID    uuid.UUID                 `json:"project_id"`
	Filename     string                    `json:"filename"`
	Status       constants.ImportJobStatus `json:"status"`
	TotalRows    int                       `json:"total_rows"`
	ValidRows    int                       `json:"valid_rows"`
	SkippedRows  int                       `json:"skipped_rows"`
	ErrorRows    int                       `json:"error_rows"`
	Result       json.RawMessage           `json:"result,omitempty"`
	ErrorMessage *string                   `json:"error_message,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	StartedAt    *time.Time                `json:"started_at,omitempty"`
	FinishedAt   *time.Time                `json:"finished_at,omitempty"`
}
