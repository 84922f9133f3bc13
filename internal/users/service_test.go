package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-backend/internal/shared/auth"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	tokens, err := auth.NewService("test-secret")
	require.NoError(t, err)
	return NewService(NewMemoryRepo(), tokens)
}

func TestRegisterIssuesMatchingToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "Ann", "Ann@X.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ann@x.com", user.Email, "email is normalized before storage")
	assert.NotEqual(t, "secret1", user.PasswordHash)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Name, claims.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Ann", "ann@x.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Case variants collide too.
	_, _, err = svc.Register(ctx, "Ann", "ANN@x.com", "secret3")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "ann@x.com", "secret1"},
		{"Ann", "", "secret1"},
		{"Ann", "ann@x.com", "short"},
	}
	for _, tc := range cases {
		_, _, err := svc.Register(ctx, tc.name, tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestLoginUniformFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "ann@x.com", "wrong")
	_, _, unknownEmail := svc.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail, "callers cannot distinguish the reason")
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
}

func TestGetByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	user, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)

	_, err = svc.GetByID(ctx, "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, ErrNotFound)
}
