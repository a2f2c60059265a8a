package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/keepuphq/keepup/internal/repository"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidFrequency  = errors.New("frequency must be daily, weekly, or monthly")
	ErrInvalidVisibility = errors.New("visibility must be PUBLIC or PRIVATE")

	// ErrGoalNotFound covers both a missing goal and a goal owned by another
	// user. The two cases are deliberately indistinguishable so that callers
	// cannot probe for the existence of other users' private records.
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalInput struct {
	Title       string
	Description *string
	Frequency   string
	Visibility  string
}

type GoalService struct {
	repo         repository.GoalRepository
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
}

func NewGoalService(
	repo repository.GoalRepository,
	progressRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
) *GoalService {
	return &GoalService{
		repo:         repo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

func (s *GoalService) Create(actingEmail string, in GoalInput) (*model.Goal, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if !model.ValidFrequency(in.Frequency) {
		return nil, ErrInvalidFrequency
	}
	if in.Visibility == "" {
		in.Visibility = model.VisibilityPrivate
	}
	if !model.ValidVisibility(in.Visibility) {
		return nil, ErrInvalidVisibility
	}

	user, err := s.userRepo.ByEmail(actingEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Title:       in.Title,
		Description: in.Description,
		Frequency:   in.Frequency,
		Visibility:  in.Visibility,
		CreatedAt:   time.Now().UTC(),
		Progress:    []*model.Progress{},
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// Goals returns every goal owned by the acting user, newest first, each with
// its full progress history attached (newest completion first).
func (s *GoalService) Goals(actingEmail string) ([]*model.Goal, error) {
	user, err := s.userRepo.ByEmail(actingEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	goals, err := s.repo.ByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	goalIDs := make([]string, len(goals))
	for i, goal := range goals {
		goalIDs[i] = goal.ID
	}

	progressByGoal, err := s.progressRepo.ByGoalIDs(goalIDs)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		goal.Progress = progressByGoal[goal.ID]
		if goal.Progress == nil {
			goal.Progress = []*model.Progress{}
		}
	}

	return goals, nil
}

func (s *GoalService) Update(actingEmail, goalID string, in GoalInput) (*model.Goal, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if !model.ValidFrequency(in.Frequency) {
		return nil, ErrInvalidFrequency
	}
	if !model.ValidVisibility(in.Visibility) {
		return nil, ErrInvalidVisibility
	}

	owned, err := s.ownedGoal(actingEmail, goalID)
	if err != nil {
		return nil, err
	}

	goal := &owned.Goal
	goal.Title = in.Title
	goal.Description = in.Description
	goal.Frequency = in.Frequency
	goal.Visibility = in.Visibility

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(actingEmail, goalID string) error {
	_, err := s.ownedGoal(actingEmail, goalID)
	if err != nil {
		return err
	}

	return s.repo.DeleteWithProgress(goalID)
}

// ownedGoal re-reads the goal and its owner from storage and proves ownership
// by comparing the stored owner email against the authenticated email.
func (s *GoalService) ownedGoal(actingEmail, goalID string) (*repository.OwnedGoal, error) {
	goal, err := s.repo.ByID(goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	if goal.OwnerEmail != actingEmail {
		return nil, ErrGoalNotFound
	}

	return goal, nil
}
