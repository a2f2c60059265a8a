package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/keepuphq/keepup/internal/repository"
)

type ProgressService struct {
	repo     repository.ProgressRepository
	goalRepo repository.GoalRepository
}

func NewProgressService(repo repository.ProgressRepository, goalRepo repository.GoalRepository) *ProgressService {
	return &ProgressService{
		repo:     repo,
		goalRepo: goalRepo,
	}
}

// Complete appends a completion record timestamped now (UTC) to the goal's
// history. Nothing prevents multiple completions on the same calendar day.
func (s *ProgressService) Complete(actingEmail, goalID string) (*model.Progress, error) {
	goal, err := s.goalRepo.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	if goal.OwnerEmail != actingEmail {
		return nil, ErrGoalNotFound
	}

	progress := &model.Progress{
		ID:     uuid.New().String(),
		GoalID: goal.ID,
		Date:   time.Now().UTC(),
	}

	err = s.repo.Create(progress)
	if err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}

	return progress, nil
}
