package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/repository"
	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/seed"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

func newTestSessionService(latency time.Duration) *SessionService {
	creds := repository.NewCredentialRepository(seed.Credentials())
	return NewSessionService(creds, validator.New(), zap.NewNop(), nil, SessionConfig{LoginLatency: latency})
}

func TestSessionServiceLoginSuccess(t *testing.T) {
	svc := newTestSessionService(0)

	identity, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "cr123",
		Role:     models.RoleClassRep,
	})
	require.NoError(t, err)

	assert.Equal(t, "Md. Rahman", identity.Name)
	assert.Equal(t, models.RoleClassRep, identity.Role)
	assert.True(t, svc.IsAuthenticated())

	current := svc.CurrentIdentity()
	require.NotNil(t, current)
	assert.Equal(t, models.RoleClassRep, current.Role)
	assert.Equal(t, "cr@cse.edu", current.Email)
}

func TestSessionServiceLoginPerRole(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     models.UserRole
		wantName string
	}{
		{"teacher", "teacher@cse.edu", "teacher123", models.RoleTeacher, "Ananya Sarkar"},
		{"second teacher", "prof@cse.edu", "prof123", models.RoleTeacher, "Prof. Sarah Ahmed"},
		{"authority", "admin@cse.edu", "admin123", models.RoleAuthority, "Dr. Abdullah Rahman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestSessionService(0)
			identity, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
				Role:     tt.role,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, identity.Name)
			assert.Equal(t, tt.role, identity.Role)
		})
	}
}

func TestSessionServiceLoginWrongPassword(t *testing.T) {
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "nope",
		Role:     models.RoleClassRep,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentIdentity())
}

func TestSessionServiceLoginWrongRoleTable(t *testing.T) {
	// Correct credentials under the wrong role claim are rejected: each
	// role has its own table.
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "cr123",
		Role:     models.RoleTeacher,
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionServiceLoginMissingFields(t *testing.T) {
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "cr@cse.edu"})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionServiceLoginWhileAuthenticated(t *testing.T) {
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "cr123",
		Role:     models.RoleClassRep,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "teacher@cse.edu",
		Password: "teacher123",
		Role:     models.RoleTeacher,
	})
	assert.ErrorIs(t, err, appErrors.ErrConflict)

	// The original session is untouched.
	current := svc.CurrentIdentity()
	require.NotNil(t, current)
	assert.Equal(t, models.RoleClassRep, current.Role)
}

func TestSessionServiceLogoutIdempotent(t *testing.T) {
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "admin@cse.edu",
		Password: "admin123",
		Role:     models.RoleAuthority,
	})
	require.NoError(t, err)

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentIdentity())
}

func TestSessionServiceLoginCancelledContext(t *testing.T) {
	svc := newTestSessionService(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "cr123",
		Role:     models.RoleClassRep,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionServiceIdentityCopyIsDetached(t *testing.T) {
	svc := newTestSessionService(0)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "cr@cse.edu",
		Password: "cr123",
		Role:     models.RoleClassRep,
	})
	require.NoError(t, err)

	snapshot := svc.CurrentIdentity()
	snapshot.Name = "tampered"
	assert.Equal(t, "Md. Rahman", svc.CurrentIdentity().Name)
}
