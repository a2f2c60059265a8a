package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// OwnedGoal is a Goal joined with its owner's email, used for ownership checks.
// The owner is always re-read from storage, never taken from client input.
type OwnedGoal struct {
	model.Goal
	OwnerEmail string `db:"owner_email"`
}

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(goalID string) (*OwnedGoal, error)
	ByUserID(userID string) ([]*model.Goal, error)
	PublicByUserID(userID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	DeleteWithProgress(goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, title, description, frequency, visibility, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Frequency,
		goal.Visibility,
		goal.CreatedAt,
	)

	return err
}

func (r *goalRepository) ByID(goalID string) (*OwnedGoal, error) {
	goal := &OwnedGoal{}
	query := `SELECT goals.*, users.email AS owner_email
	          FROM goals JOIN users ON users.id = goals.user_id
	          WHERE goals.id = $1`

	err := r.db.Get(goal, query, goalID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) ByUserID(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) PublicByUserID(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND visibility = $2 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID, model.VisibilityPublic)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, description = $2, frequency = $3, visibility = $4
	          WHERE id = $5`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Description,
		goal.Frequency,
		goal.Visibility,
		goal.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// DeleteWithProgress removes a goal and its progress history in one
// transaction, children before parent.
func (r *goalRepository) DeleteWithProgress(goalID string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`DELETE FROM progress WHERE goal_id = $1`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete progress: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM goals WHERE id = $1`, goalID)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}
