package model

import (
	"time"
)

type Progress struct {
	ID     string    `db:"id" json:"id"`
	GoalID string    `db:"goal_id" json:"goalId"`
	Date   time.Time `db:"date" json:"date"`
}
