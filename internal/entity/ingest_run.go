package entity

import (
	"time"

	"github.com/google/uuid"
)

// IngestRun is a best-effort audit row written at the service boundary.
// The pipeline itself never reads or writes it mid-run.
type IngestRun struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      string     `json:"owner_id"`
	ImageRef     string     `json:"image_ref"`
	Status       string     `json:"status"`
	ItemCount    int        `json:"item_count"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	ModelName    string     `json:"model_name"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
