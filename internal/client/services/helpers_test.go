package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookshelf/internal/client/session"
	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, client.RunMigrations(context.Background(), db))
	return db
}

func newSession(t *testing.T) (*session.Store, *metadata.SQLiteRepository) {
	t.Helper()
	repo := metadata.NewSQLiteRepository(setupDB(t))
	s, err := session.New(context.Background(), repo)
	require.NoError(t, err)
	return s, repo
}

func storedToken(t *testing.T, repo *metadata.SQLiteRepository) string {
	t.Helper()
	v, err := repo.Get(context.Background(), common.TokenStorageKey)
	require.NoError(t, err)
	return string(v)
}

// ---- fake client ----

type fakeClient struct {
	loginResp *models.AuthResponse
	loginErr  error
	gotCreds  models.Credentials

	registerResp *models.AuthResponse
	registerErr  error

	profileResp *models.UserProfile
	profileErr  error

	books   []models.Book
	book    *models.Book
	bookErr error
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	f.gotCreds = creds
	return f.loginResp, f.loginErr
}

func (f *fakeClient) Register(context.Context, models.Registration) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeClient) Profile(context.Context) (*models.UserProfile, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeClient) ListBooks(context.Context) ([]models.Book, error) {
	return f.books, f.bookErr
}

func (f *fakeClient) GetBook(context.Context, string) (*models.Book, error) {
	return f.book, f.bookErr
}

func (f *fakeClient) CreateBook(context.Context, models.BookInput) (*models.Book, error) {
	return f.book, f.bookErr
}

func (f *fakeClient) UpdateBook(context.Context, string, models.BookPatch) (*models.Book, error) {
	return f.book, f.bookErr
}

func (f *fakeClient) DeleteBook(context.Context, string) error {
	return f.bookErr
}

var _ client.Client = (*fakeClient)(nil)
