package model

import (
	"time"

	"bibleapp/backend/internal/progress"
)

// DefaultPlanName is the fallback label for plans created with a blank
// name.
const DefaultPlanName = "Bible Reading Plan"

// ReadingPlan is one reading plan row. TotalReadCount through
// ReadCountPerDay are derived values: recomputed on every mutation and
// never settable on their own.
type ReadingPlan struct {
	ID                int64               `json:"id"`
	PlanName          string              `json:"planName"`
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate"`
	SelectedBookCodes []string            `json:"selectedBookCodes"`
	GoalStatus        progress.GoalStatus `json:"goalStatus"`
	TotalReadCount    int                 `json:"totalReadCount"`
	CurrentReadCount  int                 `json:"currentReadCount"`
	GoalPercent       float64             `json:"goalPercent"`
	RestDay           int                 `json:"restDay"`
	ReadCountPerDay   float64             `json:"readCountPerDay"`
	CreatedAt         time.Time           `json:"createdAt"`
}
