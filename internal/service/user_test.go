package service

import (
	"testing"

	"github.com/keepuphq/keepup/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicProfileExcludesPrivateGoals(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "a@example.com")

	_, err := env.goals.Create(user.Email, GoalInput{
		Title:      "secret habit",
		Frequency:  model.FrequencyDaily,
		Visibility: model.VisibilityPrivate,
	})
	require.NoError(t, err)

	public, err := env.goals.Create(user.Email, GoalInput{
		Title:      "shared habit",
		Frequency:  model.FrequencyWeekly,
		Visibility: model.VisibilityPublic,
	})
	require.NoError(t, err)

	profile, err := env.users.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	require.Len(t, profile.Goals, 1)
	assert.Equal(t, public.ID, profile.Goals[0].ID)
}

func TestPublicProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Profile("no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
