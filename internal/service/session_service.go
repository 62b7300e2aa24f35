package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/AlgoAbrar/Modern-Campus-Resource-Management/internal/models"
	appErrors "github.com/AlgoAbrar/Modern-Campus-Resource-Management/pkg/errors"
)

type credentialAuthenticator interface {
	Authenticate(email, password string, role models.UserRole) (*models.Identity, error)
}

// SessionConfig tunes session behaviour.
type SessionConfig struct {
	// LoginLatency simulates the round trip to a remote identity provider.
	// A later real backend replaces the timer without changing the contract.
	LoginLatency time.Duration
}

// SessionService holds at most one authenticated identity and answers the
// login, logout and identity queries every role-gated view depends on.
type SessionService struct {
	creds     credentialAuthenticator
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	config    SessionConfig

	mu       sync.RWMutex
	identity *models.Identity
}

// NewSessionService constructs a SessionService instance. The initial state
// is anonymous.
func NewSessionService(creds credentialAuthenticator, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, config SessionConfig) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SessionService{creds: creds, validator: validate, logger: logger, metrics: metrics, config: config}
}

// Login authenticates a role claim against the credential table and, on
// success, installs the matched identity as the current session. The call
// suspends for the configured latency before resolving; a cancelled context
// resolves the call without touching the session, so an abandoned login can
// never install an identity nobody is observing.
func (s *SessionService) Login(ctx context.Context, req models.LoginRequest) (*models.Identity, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "email, password and role are required")
	}

	if s.IsAuthenticated() {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a session is already active; log out first")
	}

	if err := waitLatency(ctx, s.config.LoginLatency); err != nil {
		return nil, err
	}

	identity, err := s.creds.Authenticate(req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidCredentials) {
			s.metrics.LoginRejected()
			s.logger.Info("login rejected", zap.String("email", req.Email), zap.String("role", string(req.Role)))
		}
		return nil, err
	}

	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()

	s.metrics.LoginAccepted(identity.Role)
	s.logger.Info("login accepted", zap.String("name", identity.Name), zap.String("role", string(identity.Role)))

	out := *identity
	return &out, nil
}

// Logout clears the current identity unconditionally. Idempotent.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
}

// CurrentIdentity returns a copy of the active identity, or nil when the
// session is anonymous.
func (s *SessionService) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	out := *s.identity
	return &out
}

// IsAuthenticated reports whether an identity is active.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// waitLatency blocks for the given duration or until the context is done,
// whichever comes first.
func waitLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
