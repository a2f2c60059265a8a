package service

import (
	"errors"
	"fmt"

	"github.com/keepuphq/keepup/internal/model"
	"github.com/keepuphq/keepup/internal/repository"
)

var (
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
)

type FollowService struct {
	repo repository.FollowerRepository
}

func NewFollowService(repo repository.FollowerRepository) *FollowService {
	return &FollowService{repo: repo}
}

func (s *FollowService) Follow(followerID, followingID string) (*model.Follower, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	edge := &model.Follower{
		FollowerID:  followerID,
		FollowingID: followingID,
	}

	err := s.repo.Create(edge)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFollow) {
			return nil, ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("failed to create follow edge: %w", err)
	}

	return edge, nil
}

// Unfollow succeeds even if the edge never existed.
func (s *FollowService) Unfollow(followerID, followingID string) error {
	return s.repo.Delete(followerID, followingID)
}

func (s *FollowService) Following(userID string) ([]string, error) {
	return s.repo.FollowingIDs(userID)
}

func (s *FollowService) Followers(userID string) ([]string, error) {
	return s.repo.FollowerIDs(userID)
}
