package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalByIDJoinsOwnerEmail(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")
	goal := createTestGoal(t, database, user.ID, "Read 20 pages", model.VisibilityPrivate, time.Now().UTC())

	repo := NewGoalRepository(database)

	got, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, goal.ID, got.ID)
	assert.Equal(t, "owner@example.com", got.OwnerEmail)
}

func TestGoalByIDNotFound(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalRepository(database)

	_, err := repo.ByID(uuid.New().String())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestGoalsOrderedNewestFirst(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := createTestGoal(t, database, user.ID, "old", model.VisibilityPrivate, base)
	recent := createTestGoal(t, database, user.ID, "recent", model.VisibilityPrivate, base.Add(time.Hour))

	repo := NewGoalRepository(database)

	goals, err := repo.ByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, recent.ID, goals[0].ID)
	assert.Equal(t, old.ID, goals[1].ID)
}

func TestPublicByUserIDExcludesPrivate(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")

	now := time.Now().UTC()
	createTestGoal(t, database, user.ID, "secret", model.VisibilityPrivate, now)
	public := createTestGoal(t, database, user.ID, "shared", model.VisibilityPublic, now.Add(time.Minute))

	repo := NewGoalRepository(database)

	goals, err := repo.PublicByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, public.ID, goals[0].ID)
}

func TestGoalUpdate(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")
	goal := createTestGoal(t, database, user.ID, "before", model.VisibilityPrivate, time.Now().UTC())

	repo := NewGoalRepository(database)

	desc := "a longer description"
	goal.Title = "after"
	goal.Description = &desc
	goal.Frequency = model.FrequencyWeekly
	goal.Visibility = model.VisibilityPublic
	require.NoError(t, repo.Update(goal))

	got, err := repo.ByID(goal.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, model.FrequencyWeekly, got.Frequency)
	assert.Equal(t, model.VisibilityPublic, got.Visibility)
}

func TestGoalUpdateMissing(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalRepository(database)

	err := repo.Update(&model.Goal{ID: uuid.New().String()})
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestDeleteWithProgressRemovesChildren(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")
	goal := createTestGoal(t, database, user.ID, "tracked", model.VisibilityPrivate, time.Now().UTC())

	progressRepo := NewProgressRepository(database)
	for i := 0; i < 3; i++ {
		require.NoError(t, progressRepo.Create(&model.Progress{
			ID:     uuid.New().String(),
			GoalID: goal.ID,
			Date:   time.Now().UTC(),
		}))
	}

	repo := NewGoalRepository(database)
	require.NoError(t, repo.DeleteWithProgress(goal.ID))

	_, err := repo.ByID(goal.ID)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	records, err := progressRepo.ByGoalID(goal.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteWithProgressMissingGoal(t *testing.T) {
	database := newTestDB(t)
	repo := NewGoalRepository(database)

	err := repo.DeleteWithProgress(uuid.New().String())
	assert.ErrorIs(t, err, ErrGoalNotFound)
}
