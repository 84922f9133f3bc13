package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"resume-builder-backend/internal/shared/auth"
	"resume-builder-backend/internal/shared/telemetry"
)

const (
	minPasswordLen = 6
	bcryptCost     = 10
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service implements registration, login and account lookup.
type Service struct {
	repo   Repo
	tokens *auth.Service
	now    func() time.Time
}

func NewService(repo Repo, tokens *auth.Service) *Service {
	return &Service{repo: repo, tokens: tokens, now: time.Now}
}

// Register creates an account and issues a session token for it.
func (s *Service) Register(ctx context.Context, name, email, password string) (User, string, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || len(password) < minPasswordLen {
		return User{}, "", ErrInvalidInput
	}

	// Friendly duplicate check; the unique constraint still backs it up
	// against a concurrent registration.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, "", ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return User{}, "", err
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a session token. The returned error is
// identical for unknown email and wrong password; the reason is only logged.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, "", ErrInvalidInput
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			telemetry.Info("login.rejected", map[string]any{"reason": "unknown email"})
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		telemetry.Info("login.rejected", map[string]any{"reason": "password mismatch", "user_id": user.ID})
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// GetByID returns the account for an already-verified identity.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, userID)
}

// VerifyToken validates a raw session token and returns its claims.
func (s *Service) VerifyToken(token string) (auth.Claims, error) {
	return s.tokens.Verify(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
