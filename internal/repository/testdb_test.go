package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/db"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))
	return database
}

func createTestUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(database).Create(user))
	return user
}

func createTestGoal(t *testing.T, database *sqlx.DB, userID, title, visibility string, createdAt time.Time) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		Title:      title,
		Frequency:  model.FrequencyDaily,
		Visibility: visibility,
		CreatedAt:  createdAt,
	}
	require.NoError(t, NewGoalRepository(database).Create(goal))
	return goal
}
