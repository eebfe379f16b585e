// Package services contains application services for the bookshelf client.
// This file defines the authentication service: login, register, logout and
// profile, on top of the request pipeline and the session store.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/client/session"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

// Fallback messages used when a failure could not be classified.
const (
	MsgLoginFailed        = "Login failed. Please try again."
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgProfileLoadFailed  = "Failed to load profile"
)

var errNoToken = errors.New("response carries no token")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login / Register: on success the session becomes Authenticated and
//     the backend payload is returned unchanged; on failure the session is
//     left as it was and a *client.ClassifiedError is returned.
//   - GetProfile: no local pre-check; an anonymous or expired session is
//     discovered from the server's 401.
//   - Logout: Authenticated -> Anonymous, a no-op when already anonymous.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.Registration) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Token() (string, bool)
	State() session.State
}

type authService struct {
	client  client.Client
	session *session.Store
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and session.
func NewAuthService(c client.Client, s *session.Store, l logging.Logger) AuthService {
	return &authService{client: c, session: s, logger: l}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, client.Fallback(err, MsgLoginFailed)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, client.Fallback(err, MsgLoginFailed)
	}
	a.logger.Info(ctx, "logged in", "user_id", resp.User.ID)
	return resp, nil
}

// Register treats any 2xx as account creation; an existing email comes back
// through the generic 400 path with the server's message.
func (a *authService) Register(ctx context.Context, data models.Registration) (*models.AuthResponse, error) {
	resp, err := a.client.Register(ctx, data)
	if err != nil {
		return nil, client.Fallback(err, MsgRegistrationFailed)
	}
	if err := a.startSession(ctx, resp); err != nil {
		return nil, client.Fallback(err, MsgRegistrationFailed)
	}
	a.logger.Info(ctx, "registered", "user_id", resp.User.ID)
	return resp, nil
}

func (a *authService) startSession(ctx context.Context, resp *models.AuthResponse) error {
	if resp.Token == "" {
		return errNoToken
	}
	return a.session.Set(ctx, resp.Token)
}

func (a *authService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	p, err := a.client.Profile(ctx)
	if err != nil {
		return nil, client.Fallback(err, MsgProfileLoadFailed)
	}
	return p, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return nil
	}
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) IsAuthenticated() bool { return a.session.IsAuthenticated() }

func (a *authService) Token() (string, bool) { return a.session.Token() }

func (a *authService) State() session.State { return a.session.State() }
