// Package store keeps the development backend's users and books in memory.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/google/uuid"
)

// Users persists accounts keyed by email.
type Users interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Books persists books. Ownership is enforced by the callers.
type Books interface {
	List(ctx context.Context, ownerID string) ([]models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id string) error
}

// Memory implements Users and Books on top of maps guarded by a mutex.
type Memory struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string
	books   map[string]*models.Book
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
		books:   make(map[string]*models.Book),
		now:     time.Now,
	}
}

// Users returns the user repository view of m.
func (m *Memory) Users() Users { return memoryUsers{m} }

// Books returns the book repository view of m.
func (m *Memory) Books() Books { return memoryBooks{m} }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type memoryUsers struct{ m *Memory }

func (r memoryUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, ok := r.m.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = r.m.now()
	r.m.users[u.ID] = &u
	r.m.byEmail[key] = u.ID

	out := u
	return &out, nil
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	id, ok := r.m.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.m.users[id]
	return &u, nil
}

func (r memoryUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

type memoryBooks struct{ m *Memory }

func (r memoryBooks) List(ctx context.Context, ownerID string) ([]models.Book, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	out := make([]models.Book, 0)
	for _, b := range r.m.books {
		if b.OwnerID == ownerID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r memoryBooks) Get(ctx context.Context, id string) (*models.Book, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	b, ok := r.m.books[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *b
	return &out, nil
}

func (r memoryBooks) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	b := *book
	b.ID = uuid.NewString()
	b.CreatedAt = r.m.now()
	b.UpdatedAt = b.CreatedAt
	r.m.books[b.ID] = &b

	out := b
	return &out, nil
}

func (r memoryBooks) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	cur, ok := r.m.books[book.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	b := *book
	b.OwnerID = cur.OwnerID
	b.CreatedAt = cur.CreatedAt
	b.UpdatedAt = r.m.now()
	r.m.books[b.ID] = &b

	out := b
	return &out, nil
}

func (r memoryBooks) Delete(ctx context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.books[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.m.books, id)
	return nil
}
