package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Signup("New@Example.com", "correct-horse-battery", nil)
	require.NoError(t, err)
	// Email is normalized before storage
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash)

	got, err := env.auth.Login("new@example.com", "correct-horse-battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "taken@example.com")

	_, err := env.auth.Signup("taken@example.com", "correct-horse-battery", nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Signup("not-an-email", "correct-horse-battery", nil)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = env.auth.Signup("ok@example.com", "short", nil)
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@example.com")

	_, err := env.auth.Login("a@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	// Unknown user and wrong password are indistinguishable
	_, err := env.auth.Login("ghost@example.com", "whatever-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	user := env.signup(t, "a@example.com")

	token, err := env.auth.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := env.auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.VerifyJWT("not-a-token")
	assert.Error(t, err)
}
