package models

import "time"

// Book is stored and served in the same JSON shape the client expects.
type Book struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	PublishedYear int       `json:"publishedYear"`
	ISBN          string    `json:"isbn"`
	OwnerID       string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BookFields carries the writable fields of a book. On update, nil fields
// are left untouched.
type BookFields struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"publishedYear"`
	ISBN          *string `json:"isbn"`
}

// Apply copies the set fields of f onto b.
func (f BookFields) Apply(b *Book) {
	if f.Title != nil {
		b.Title = *f.Title
	}
	if f.Author != nil {
		b.Author = *f.Author
	}
	if f.Description != nil {
		b.Description = *f.Description
	}
	if f.PublishedYear != nil {
		b.PublishedYear = *f.PublishedYear
	}
	if f.ISBN != nil {
		b.ISBN = *f.ISBN
	}
}
