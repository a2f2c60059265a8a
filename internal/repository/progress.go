package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/model"
)

type ProgressRepository interface {
	Create(progress *model.Progress) error
	ByGoalID(goalID string) ([]*model.Progress, error)
	ByGoalIDs(goalIDs []string) (map[string][]*model.Progress, error)
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(progress *model.Progress) error {
	query := `INSERT INTO progress (id, goal_id, date) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(query, progress.ID, progress.GoalID, progress.Date)
	return err
}

func (r *progressRepository) ByGoalID(goalID string) ([]*model.Progress, error) {
	var records []*model.Progress
	query := `SELECT * FROM progress WHERE goal_id = $1 ORDER BY date DESC`

	err := r.db.Select(&records, query, goalID)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ByGoalIDs loads progress for a set of goals in one query, keyed by goal ID.
func (r *progressRepository) ByGoalIDs(goalIDs []string) (map[string][]*model.Progress, error) {
	byGoal := make(map[string][]*model.Progress, len(goalIDs))
	if len(goalIDs) == 0 {
		return byGoal, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM progress WHERE goal_id IN (?) ORDER BY date DESC`, goalIDs)
	if err != nil {
		return nil, err
	}

	var records []*model.Progress
	err = r.db.Select(&records, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		byGoal[record.GoalID] = append(byGoal[record.GoalID], record)
	}

	return byGoal, nil
}
