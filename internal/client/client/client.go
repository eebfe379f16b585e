package client

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// Client is the transport contract with the book-catalog backend. Every
// failed network call is reported as a *ClassifiedError.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.Registration) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.UserProfile, error)

	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// Backend paths, relative to the configured base URL.
const (
	PathLogin    = "/auth/login"
	PathRegister = "/auth/register"
	PathProfile  = "/auth/profile"
	PathBooks    = "/books"
)
