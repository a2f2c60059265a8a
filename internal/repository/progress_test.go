package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressByGoalIDNewestFirst(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")
	goal := createTestGoal(t, database, user.ID, "tracked", model.VisibilityPrivate, time.Now().UTC())

	repo := NewProgressRepository(database)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	first := &model.Progress{ID: uuid.New().String(), GoalID: goal.ID, Date: base}
	second := &model.Progress{ID: uuid.New().String(), GoalID: goal.ID, Date: base.Add(time.Hour)}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	records, err := repo.ByGoalID(goal.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestProgressByGoalIDsGroups(t *testing.T) {
	database := newTestDB(t)
	user := createTestUser(t, database, "owner@example.com")

	now := time.Now().UTC()
	tracked := createTestGoal(t, database, user.ID, "tracked", model.VisibilityPrivate, now)
	untracked := createTestGoal(t, database, user.ID, "untracked", model.VisibilityPrivate, now)

	repo := NewProgressRepository(database)
	require.NoError(t, repo.Create(&model.Progress{ID: uuid.New().String(), GoalID: tracked.ID, Date: now}))
	require.NoError(t, repo.Create(&model.Progress{ID: uuid.New().String(), GoalID: tracked.ID, Date: now}))

	byGoal, err := repo.ByGoalIDs([]string{tracked.ID, untracked.ID})
	require.NoError(t, err)
	assert.Len(t, byGoal[tracked.ID], 2)
	assert.Empty(t, byGoal[untracked.ID])
}

func TestProgressByGoalIDsEmptyInput(t *testing.T) {
	database := newTestDB(t)
	repo := NewProgressRepository(database)

	byGoal, err := repo.ByGoalIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, byGoal)
}
