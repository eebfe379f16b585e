// Package services contains the development backend's business logic. This
// file implements UserService, which handles registration, login, profile
// lookup and bearer-token verification.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/cryptox"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/store"
)

// AuthResult is returned by a successful login or registration.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides authentication-related operations:
// - Register: create users and mint a token
// - Login: verify credentials and mint a token
// - Profile: look up the caller
// - Authenticate: resolve a bearer token to a user id
type UserService struct {
	users     store.Users
	jwtSecret []byte
	tokenTTL  time.Duration
}

// dummyHash stands in for the stored hash of an unknown email, so a failed
// lookup costs the same Argon2 pass as a wrong password.
var dummyHash = sync.OnceValue(func() cryptox.PasswordHash {
	return cryptox.HashPassword("bookshelf-dummy-password")
})

var verifyPassword = func(h cryptox.PasswordHash, password string) bool {
	return h.Verify(password)
}

// NewUserService constructs a UserService using the user store and server config.
func NewUserService(users store.Users, cfg *config.Config) *UserService {
	return &UserService{
		users:     users,
		jwtSecret: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
	}
}

// Register creates a new account. An email that is already taken yields
// common.ErrorAlreadyExists; missing or malformed fields yield
// common.ErrorValidation.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}

	u, err := s.users.Create(ctx, &models.User{Name: name, Email: email, Password: cryptox.HashPassword(password)})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(u)
}

// Login verifies email and password. Unknown emails and wrong passwords are
// indistinguishable to the caller: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			verifyPassword(dummyHash(), password)
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !verifyPassword(u.Password, password) {
		return nil, common.ErrorUnauthorized
	}

	return s.issue(u)
}

// Profile returns the account identified by userID. A user deleted behind a
// still-valid token is reported as unauthorized.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return u, nil
}

// Authenticate resolves a bearer token to the user id it was issued for.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) issue(u *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(u.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: u}, nil
}
