package repository

import (
	"testing"

	"github.com/keepuphq/keepup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowerCreateAndList(t *testing.T) {
	database := newTestDB(t)
	a := createTestUser(t, database, "a@example.com")
	b := createTestUser(t, database, "b@example.com")

	repo := NewFollowerRepository(database)
	require.NoError(t, repo.Create(&model.Follower{FollowerID: a.ID, FollowingID: b.ID}))

	following, err := repo.FollowingIDs(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, following)

	followers, err := repo.FollowerIDs(b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, followers)

	// Direction matters
	reverse, err := repo.FollowingIDs(b.ID)
	require.NoError(t, err)
	assert.Empty(t, reverse)
}

func TestFollowerDuplicate(t *testing.T) {
	database := newTestDB(t)
	a := createTestUser(t, database, "a@example.com")
	b := createTestUser(t, database, "b@example.com")

	repo := NewFollowerRepository(database)
	edge := &model.Follower{FollowerID: a.ID, FollowingID: b.ID}
	require.NoError(t, repo.Create(edge))

	err := repo.Create(edge)
	assert.ErrorIs(t, err, ErrDuplicateFollow)
}

func TestFollowerDeleteIdempotent(t *testing.T) {
	database := newTestDB(t)
	a := createTestUser(t, database, "a@example.com")
	b := createTestUser(t, database, "b@example.com")

	repo := NewFollowerRepository(database)
	require.NoError(t, repo.Create(&model.Follower{FollowerID: a.ID, FollowingID: b.ID}))

	require.NoError(t, repo.Delete(a.ID, b.ID))
	// Deleting an edge that no longer exists is still a success
	require.NoError(t, repo.Delete(a.ID, b.ID))

	following, err := repo.FollowingIDs(a.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestUserDuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	createTestUser(t, database, "taken@example.com")

	repo := NewUserRepository(database)
	err := repo.Create(&model.User{ID: "other-id", Email: "taken@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}
