package refresh

import (
	"time"

	"steaminvest/internal/model"
)

// Status is the lifecycle state of the bulk refresh run.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Progress is one per-record event of a bulk refresh run. Index counts
// processed records starting at 1, so Index == Total on the last event.
type Progress struct {
	Index    int    `json:"progress"`
	Total    int    `json:"total_items"`
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Message  string `json:"message"`
	Failed   bool   `json:"failed"`
}

// RunSummary describes the most recent bulk run.
type RunSummary struct {
	Total      int
	Succeeded  int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// --- UseCase Outputs ---

type RefreshOneOutput struct {
	Item model.InventoryItem
}

type StatusOutput struct {
	Status  Status
	LastRun *RunSummary
}
