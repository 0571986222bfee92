// Package auth implements credential hashing, session tokens, and account
// provisioning: credentialed sign-in, passwordless quick sign-in for players,
// coach-code guest enrollment, and coach self-registration.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
	"github.com/tenpinclub/rollbook/internal/dependencies/random"
	"github.com/tenpinclub/rollbook/internal/model"
	"github.com/tenpinclub/rollbook/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoPasswordSet      = errors.New("account has no password set")
	ErrNoSuchAccount      = errors.New("no account with that email")
)

// Coach join codes are short uppercase alphanumerics players type in by hand.
const (
	CoachCodeLength   = 6
	CoachCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Session is the result of any successful sign-in or sign-up.
type Session struct {
	User  *model.User
	Token string
}

// Service handles account provisioning and sign-in.
type Service struct {
	storage storage.Storage
	tokens  *TokenService
	clock   clock.Clock
	random  random.Random
}

// New creates an auth service.
func New(store storage.Storage, tokens *TokenService, clk clock.Clock, rnd random.Random) *Service {
	return &Service{
		storage: store,
		tokens:  tokens,
		clock:   clk,
		random:  rnd,
	}
}

// Tokens exposes the token service for middleware that only verifies.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// SignInWithPassword authenticates by email and password. The three failure
// modes stay distinct sentinels so callers can log them apart, though the API
// reports them all as a credential failure.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrNoSuchAccount
		}
		return nil, err
	}
	if !user.HasPassword() {
		return nil, ErrNoPasswordSet
	}
	if !CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.newSession(user)
}

// QuickSignIn looks a player up by name (case-insensitive exact) and creates
// a credential-less player record when none exists. The lookup is
// authoritative: an existing player with the name is always reused, never
// duplicated.
func (s *Service) QuickSignIn(ctx context.Context, name string) (*Session, error) {
	user, err := s.storage.GetUserByName(ctx, name)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		user = &model.User{
			Name:      name,
			Role:      model.RolePlayer,
			CreatedAt: s.clock.Now(),
		}
		if err := s.storage.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}
	return s.newSession(user)
}

// SignInWithCoachCode creates a fresh guest player bound to the coach owning
// the code. Every call with a valid code provisions a new guest; an unknown
// code is a not-found, and nothing is created.
func (s *Service) SignInWithCoachCode(ctx context.Context, code string) (*Session, error) {
	coach, err := s.storage.GetCoachByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	guest := &model.User{
		Name:      fmt.Sprintf("Guest %d", s.clock.Now().UnixMilli()),
		Role:      model.RolePlayer,
		CoachID:   coach.ID,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.CreateUser(ctx, guest); err != nil {
		return nil, err
	}
	return s.newSession(guest)
}

// SignUpCoach registers a coach account with a generated join code. The
// account is marked verified immediately: sign-in never gates on the
// verified flag even though the verification fields exist. That mismatch is
// inherited behavior, kept deliberately.
func (s *Service) SignUpCoach(ctx context.Context, name, email, password string) (*Session, error) {
	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	code, err := s.generateCoachCode(ctx)
	if err != nil {
		return nil, err
	}

	coach := &model.User{
		Name:      name,
		Email:     &email,
		Role:      model.RoleCoach,
		Password:  hashed,
		CoachCode: code,
		Verified:  true,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.CreateUser(ctx, coach); err != nil {
		return nil, err
	}
	return s.newSession(coach)
}

// Me returns the full user record behind a set of claims.
func (s *Service) Me(ctx context.Context, userID int) (*model.User, error) {
	return s.storage.GetUser(ctx, userID)
}

// UpdatePrefs replaces the caller's preference blob.
func (s *Service) UpdatePrefs(ctx context.Context, userID int, prefs map[string]any) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if prefs == nil {
		prefs = map[string]any{}
	}
	user.Prefs = prefs
	return s.storage.UpdateUser(ctx, user)
}

// DeleteAccount removes the caller's own record.
func (s *Service) DeleteAccount(ctx context.Context, userID int) error {
	return s.storage.DeleteUser(ctx, userID)
}

// VerifyEmail consumes a verification token, marking the account verified.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.storage.GetUserByVerifyToken(ctx, token)
	if err != nil {
		return err
	}
	user.Verified = true
	user.VerifyToken = ""
	return s.storage.UpdateUser(ctx, user)
}

func (s *Service) newSession(user *model.User) (*Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

// generateCoachCode draws codes until one is unused. Collisions in a
// 36^6 space are rare enough that this terminates immediately in practice.
func (s *Service) generateCoachCode(ctx context.Context) (string, error) {
	for {
		code := NewCoachCode(s.random)
		_, err := s.storage.GetCoachByCode(ctx, code)
		if errors.Is(err, model.ErrCoachNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// NewCoachCode draws a join code from the given randomness source.
func NewCoachCode(rnd random.Random) string {
	return rnd.String(CoachCodeLength, CoachCodeAlphabet)
}
