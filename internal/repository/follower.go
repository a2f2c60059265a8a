package repository

import (
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/model"
)

var (
	ErrDuplicateFollow = errors.New("already following")
)

type FollowerRepository interface {
	Create(edge *model.Follower) error
	Delete(followerID, followingID string) error
	FollowingIDs(userID string) ([]string, error)
	FollowerIDs(userID string) ([]string, error)
}

type followerRepository struct {
	db *sqlx.DB
}

func NewFollowerRepository(db *sqlx.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Create(edge *model.Follower) error {
	query := `INSERT INTO followers (follower_id, following_id) VALUES ($1, $2)`

	_, err := r.db.Exec(query, edge.FollowerID, edge.FollowingID)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateFollow
		}
		return err
	}

	return nil
}

// Delete is idempotent: removing an edge that does not exist is a no-op.
func (r *followerRepository) Delete(followerID, followingID string) error {
	query := `DELETE FROM followers WHERE follower_id = $1 AND following_id = $2`

	_, err := r.db.Exec(query, followerID, followingID)
	return err
}

func (r *followerRepository) FollowingIDs(userID string) ([]string, error) {
	var ids []string
	query := `SELECT following_id FROM followers WHERE follower_id = $1`

	err := r.db.Select(&ids, query, userID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *followerRepository) FollowerIDs(userID string) ([]string, error) {
	var ids []string
	query := `SELECT follower_id FROM followers WHERE following_id = $1`

	err := r.db.Select(&ids, query, userID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}
