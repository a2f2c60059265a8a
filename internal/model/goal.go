package model

import (
	"time"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"

	VisibilityPublic  = "PUBLIC"
	VisibilityPrivate = "PRIVATE"
)

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	Frequency   string    `db:"frequency" json:"frequency"`
	Visibility  string    `db:"visibility" json:"visibility"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`

	// Populated by the list/read paths, not a column
	Progress []*Progress `db:"-" json:"progress,omitempty"`
}

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

func ValidVisibility(visibility string) bool {
	return visibility == VisibilityPublic || visibility == VisibilityPrivate
}
