package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/store"
)

// BookService scopes book CRUD to the calling user. Touching another user's
// book yields common.ErrorForbidden, an unknown id common.ErrorNotFound.
type BookService struct {
	books store.Books
}

func NewBookService(books store.Books) *BookService {
	return &BookService{books: books}
}

func (s *BookService) List(ctx context.Context, userID string) ([]models.Book, error) {
	return s.books.List(ctx, userID)
}

func (s *BookService) Get(ctx context.Context, userID, id string) (*models.Book, error) {
	b, err := s.books.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != userID {
		return nil, common.ErrorForbidden
	}
	return b, nil
}

func (s *BookService) Create(ctx context.Context, userID string, f models.BookFields) (*models.Book, error) {
	if f.Title == nil || f.Author == nil {
		return nil, fmt.Errorf("%w: title and author are required", common.ErrorValidation)
	}

	b := &models.Book{OwnerID: userID}
	f.Apply(b)
	if err := validateBook(b); err != nil {
		return nil, err
	}

	return s.books.Create(ctx, b)
}

func (s *BookService) Update(ctx context.Context, userID, id string, f models.BookFields) (*models.Book, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	f.Apply(b)
	if err := validateBook(b); err != nil {
		return nil, err
	}

	return s.books.Update(ctx, b)
}

func (s *BookService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.books.Delete(ctx, id)
}

func validateBook(b *models.Book) error {
	if strings.TrimSpace(b.Title) == "" || strings.TrimSpace(b.Author) == "" {
		return fmt.Errorf("%w: title and author are required", common.ErrorValidation)
	}
	if b.PublishedYear < 0 {
		return fmt.Errorf("%w: publishedYear must not be negative", common.ErrorValidation)
	}
	return nil
}
