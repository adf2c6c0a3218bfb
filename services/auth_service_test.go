package services

import (
	"context"
	"testing"
	"time"

	"wallof.love/pkg/sessionevents"
	"wallof.love/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T, hub *sessionevents.Hub) *AuthService {
	t.Helper()
	db := openTestDB(t)
	return NewAuthServiceWith(repositories.NewUserRepositoryTx(db), hub, []byte("test-secret"), time.Hour)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	hub := sessionevents.NewHub(4)
	defer hub.Close()
	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	auth := newTestAuth(t, hub)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Zeynep", " Zeynep@Example.com ", "gizli-sifre")
	require.NoError(t, err)
	assert.Equal(t, "zeynep@example.com", user.Email)
	assert.NotEqual(t, "gizli-sifre", user.Password)
	assert.Equal(t, sessionevents.KindRegister, (<-events).Kind)

	_, err = auth.Register(ctx, "Zeynep", "zeynep@example.com", "baska-sifre")
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := auth.Authenticate(ctx, "ZEYNEP@example.com", "gizli-sifre")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	login := <-events
	assert.Equal(t, sessionevents.KindLogin, login.Kind)
	assert.Equal(t, user.ID, login.UserID)

	_, err = auth.Authenticate(ctx, "zeynep@example.com", "yanlis-sifre")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Authenticate(ctx, "kimse@example.com", "gizli-sifre")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth(t, nil)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Zeynep", "zeynep@example.com", "kisa")
	assert.ErrorIs(t, err, ErrRegisterInvalid)
	_, err = auth.Register(ctx, "", "zeynep@example.com", "gizli-sifre")
	assert.ErrorIs(t, err, ErrRegisterInvalid)
	_, err = auth.Register(ctx, "Zeynep", "adres-degil", "gizli-sifre")
	assert.ErrorIs(t, err, ErrRegisterInvalid)
}

func TestRecordLoginTouchesLastLogin(t *testing.T) {
	auth := newTestAuth(t, nil)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Zeynep", "zeynep@example.com", "gizli-sifre")
	require.NoError(t, err)
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, auth.RecordLogin(ctx, sessionevents.Event{Kind: sessionevents.KindLogout, UserID: user.ID, At: at}))
	fresh, err := auth.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.LastLoginAt)

	require.NoError(t, auth.RecordLogin(ctx, sessionevents.Event{Kind: sessionevents.KindLogin, UserID: user.ID, At: at}))
	fresh, err = auth.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, fresh.LastLoginAt)
	assert.True(t, at.Equal(*fresh.LastLoginAt))
}

func TestTokenRoundTrip(t *testing.T) {
	auth := newTestAuth(t, nil)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	auth.now = func() time.Time { return now }

	user, err := auth.Register(context.Background(), "Zeynep", "zeynep@example.com", "gizli-sifre")
	require.NoError(t, err)

	token, expires, err := auth.IssueToken(user)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expires)

	id, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	other := NewAuthServiceWith(nil, nil, []byte("baska-secret"), time.Hour)
	other.now = auth.now
	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	auth.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = auth.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = auth.ParseToken("bozuk.token.degeri")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRequiresSecret(t *testing.T) {
	auth := NewAuthServiceWith(nil, nil, nil, time.Hour)

	_, _, err := auth.IssueToken(nil)
	assert.ErrorIs(t, err, ErrTokenSecretMissing)
	_, err = auth.ParseToken("x")
	assert.ErrorIs(t, err, ErrTokenSecretMissing)
}

func TestAuthenticateRejectsInactiveUser(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuthServiceWith(repositories.NewUserRepositoryTx(db), nil, []byte("test-secret"), time.Hour)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Deniz", "deniz@example.com", "gizli-sifre")
	require.NoError(t, err)
	require.True(t, user.IsActive)

	user.IsActive = false
	require.NoError(t, db.Save(user).Error)

	_, err = auth.Authenticate(ctx, "deniz@example.com", "gizli-sifre")
	assert.ErrorIs(t, err, ErrUserInactive)
}
