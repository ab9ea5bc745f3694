// Package auth implements account and session management. All data
// operations elsewhere are scoped by the user ID carried in a session.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fournil/internal/auth/session_db"
)

// Sentinel errors surfaced to callers.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is a registered account, without credentials.
type User struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Session is an authenticated session bound to a user.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Service manages accounts and sessions. Tokens are HS256 JWTs whose
// claims reference a session row, so signing out revokes the token
// before its expiry.
type Service struct {
	queries *session_db.Queries
	db      *sql.DB
	secret  []byte
	ttl     time.Duration
}

// NewService creates a new Service. ttl bounds session lifetime.
func NewService(d *sql.DB, secret string, ttl time.Duration) *Service {
	return &Service{
		queries: session_db.New(d),
		db:      d,
		secret:  []byte(secret),
		ttl:     ttl,
	}
}

// SignUp registers a new account.
func (s *Service) SignUp(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return User{}, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := s.queries.GetUserByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if err != sql.ErrNoRows {
		return User{}, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.queries.CreateUser(ctx, session_db.CreateUserParams{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: string(hash),
		CreatedAt:    user.CreatedAt,
	}); err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// SignIn verifies credentials and opens a session, returning the signed
// token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.queries.CreateSession(ctx, session_db.CreateSessionParams{
		ID:        session.ID,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   session.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// GetSession resolves a token to its session. Returns (nil, nil) for
// invalid, expired, or signed-out tokens: no session, not an error.
func (s *Service) GetSession(ctx context.Context, token string) (*Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, nil
	}

	row, err := s.queries.GetSession(ctx, claims.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Revoked or never existed
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().After(row.ExpiresAt) {
		return nil, nil
	}

	return &Session{
		ID:        row.ID,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

// SignOut revokes the session behind a token. Tokens that no longer
// resolve are treated as already signed out.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	if err := s.queries.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UserByEmail looks up an account. Returns (nil, nil) when not found.
func (s *Service) UserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := s.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return &User{ID: row.ID, Email: row.Email, CreatedAt: row.CreatedAt}, nil
}

// CleanupExpired removes expired session rows (maintenance task).
func (s *Service) CleanupExpired(ctx context.Context) error {
	return s.queries.DeleteExpiredSessions(ctx, time.Now().UTC())
}

func (s *Service) parseToken(token string) (*jwt.RegisteredClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return nil, fmt.Errorf("malformed session claims")
	}
	return claims, nil
}
