package service

import (
	"errors"

	"github.com/keepuphq/keepup/internal/model"
	"github.com/keepuphq/keepup/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// PublicProfile is the unauthenticated view of a user: display fields plus
// their PUBLIC goals only.
type PublicProfile struct {
	ID    string        `json:"id"`
	Name  *string       `json:"name"`
	Email string        `json:"email"`
	Goals []*model.Goal `json:"publicGoals"`
}

type UserService struct {
	userRepo repository.UserRepository
	goalRepo repository.GoalRepository
}

func NewUserService(userRepo repository.UserRepository, goalRepo repository.GoalRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		goalRepo: goalRepo,
	}
}

func (s *UserService) ByID(userID string) (*model.User, error) {
	user, err := s.userRepo.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Profile returns a user's public profile. PRIVATE goals are never included,
// regardless of who is asking; this path filters on visibility, not ownership.
func (s *UserService) Profile(userID string) (*PublicProfile, error) {
	user, err := s.ByID(userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.PublicByUserID(user.ID)
	if err != nil {
		return nil, err
	}

	for _, goal := range goals {
		goal.Progress = []*model.Progress{}
	}

	return &PublicProfile{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Goals: goals,
	}, nil
}
