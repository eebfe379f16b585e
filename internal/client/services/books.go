package services

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
)

// Fallback messages of the book operations.
const (
	MsgBooksLoadFailed  = "Failed to fetch books. Please try again later."
	MsgBookLoadFailed   = "Failed to load book. Please try again later."
	MsgBookCreateFailed = "Failed to create book. Please try again later."
	MsgBookUpdateFailed = "Failed to update book. Please try again later."
	MsgBookDeleteFailed = "Failed to delete book. Please try again later."
)

// BookService is the CRUD surface over the caller's books. Every error it
// returns is a *client.ClassifiedError.
type BookService interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, in models.BookInput) (*models.Book, error)
	Update(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

type bookService struct {
	client client.Client
}

func NewBookService(c client.Client) BookService {
	return &bookService{client: c}
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	books, err := s.client.ListBooks(ctx)
	if err != nil {
		return nil, client.Fallback(err, MsgBooksLoadFailed)
	}
	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id string) (*models.Book, error) {
	b, err := s.client.GetBook(ctx, id)
	if err != nil {
		return nil, client.Fallback(err, MsgBookLoadFailed)
	}
	return b, nil
}

func (s *bookService) Create(ctx context.Context, in models.BookInput) (*models.Book, error) {
	b, err := s.client.CreateBook(ctx, in)
	if err != nil {
		return nil, client.Fallback(err, MsgBookCreateFailed)
	}
	return b, nil
}

func (s *bookService) Update(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	b, err := s.client.UpdateBook(ctx, id, patch)
	if err != nil {
		return nil, client.Fallback(err, MsgBookUpdateFailed)
	}
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteBook(ctx, id); err != nil {
		return client.Fallback(err, MsgBookDeleteFailed)
	}
	return nil
}
