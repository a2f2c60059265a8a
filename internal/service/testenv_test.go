package service

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/keepuphq/keepup/internal/db"
	"github.com/keepuphq/keepup/internal/model"
	"github.com/keepuphq/keepup/internal/repository"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *sqlx.DB
	auth     *AuthService
	users    *UserService
	goals    *GoalService
	progress *ProgressService
	follows  *FollowService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database.DB, "sqlite"))

	userRepo := repository.NewUserRepository(database)
	goalRepo := repository.NewGoalRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	followerRepo := repository.NewFollowerRepository(database)

	return &testEnv{
		db:       database,
		auth:     NewAuthService(userRepo, "test-secret", false, time.Hour),
		users:    NewUserService(userRepo, goalRepo),
		goals:    NewGoalService(goalRepo, progressRepo, userRepo),
		progress: NewProgressService(progressRepo, goalRepo),
		follows:  NewFollowService(followerRepo),
	}
}

func (e *testEnv) signup(t *testing.T, email string) *model.User {
	t.Helper()

	user, err := e.auth.Signup(email, "correct-horse-battery", nil)
	require.NoError(t, err)
	return user
}

func (e *testEnv) createGoal(t *testing.T, email, title string) *model.Goal {
	t.Helper()

	goal, err := e.goals.Create(email, GoalInput{
		Title:     title,
		Frequency: model.FrequencyDaily,
	})
	require.NoError(t, err)
	return goal
}
