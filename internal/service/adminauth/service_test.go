package adminauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	sessionRepo "github.com/quesarica/QR-BookingService/internal/infra/storage/adminsession"
)

type mockSessionRepo struct {
	createFn        func(ctx context.Context, token string, expiresAt time.Time) error
	getValidFn      func(ctx context.Context, token string) (time.Time, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, token string, expiresAt time.Time) error {
	return m.createFn(ctx, token, expiresAt)
}

func (m *mockSessionRepo) GetValid(ctx context.Context, token string) (time.Time, error) {
	return m.getValidFn(ctx, token)
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	return m.deleteFn(ctx, token)
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return m.deleteExpiredFn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestLogin_Success(t *testing.T) {
	var storedToken string
	var storedExpiry time.Time
	repo := &mockSessionRepo{
		createFn: func(ctx context.Context, token string, expiresAt time.Time) error {
			storedToken, storedExpiry = token, expiresAt
			return nil
		},
		deleteExpiredFn: func(ctx context.Context) (int64, error) { return 0, nil },
	}

	svc := NewService(repo, "hunter2", time.Hour, nopLogger{})

	token, expiresAt, err := svc.Login(context.Background(), "hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, storedToken, token)
	assert.Equal(t, storedExpiry, expiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestLogin_WrongPassword(t *testing.T) {
	created := false
	repo := &mockSessionRepo{
		createFn: func(ctx context.Context, token string, expiresAt time.Time) error {
			created = true
			return nil
		},
	}

	svc := NewService(repo, "hunter2", time.Hour, nopLogger{})

	_, _, err := svc.Login(context.Background(), "letmein")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, created)
}

func TestValidate(t *testing.T) {
	repo := &mockSessionRepo{
		getValidFn: func(ctx context.Context, token string) (time.Time, error) {
			if token == "good" {
				return time.Now().Add(time.Hour), nil
			}
			return time.Time{}, sessionRepo.ErrSessionNotFound
		},
	}

	svc := NewService(repo, "hunter2", time.Hour, nopLogger{})

	assert.NoError(t, svc.Validate(context.Background(), "good"))
	assert.ErrorIs(t, svc.Validate(context.Background(), "expired"), ErrInvalidToken)
	assert.ErrorIs(t, svc.Validate(context.Background(), ""), ErrInvalidToken)
}

func TestLogout_IsIdempotent(t *testing.T) {
	repo := &mockSessionRepo{
		deleteFn: func(ctx context.Context, token string) error { return nil },
	}

	svc := NewService(repo, "hunter2", time.Hour, nopLogger{})

	assert.NoError(t, svc.Logout(context.Background(), "whatever"))
}
