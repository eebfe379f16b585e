package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Book is owned by the backend; the client only holds transient copies.
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

// BookInput is the body of a create request.
type BookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	PublishedYear int    `json:"publishedYear"`
	ISBN          string `json:"isbn"`
}

// BookPatch is the body of an update request. Nil fields are left untouched.
type BookPatch struct {
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	Description   *string `json:"description,omitempty"`
	PublishedYear *int    `json:"publishedYear,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p BookPatch) Empty() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil && p.PublishedYear == nil && p.ISBN == nil
}

// Apply copies the set fields of p onto b.
func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.PublishedYear != nil {
		b.PublishedYear = *p.PublishedYear
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
}

var ErrIncorrectField = errors.New("field must be name=value")

// PatchFromPairs builds a patch from "name=value" lines as typed in the CLI.
// Recognized names: title, author, description, year (or publishedYear), isbn.
func PatchFromPairs(lines []string) (BookPatch, error) {
	var p BookPatch
	for _, line := range lines {
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			return BookPatch{}, fmt.Errorf("%w: %q", ErrIncorrectField, line)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)

		switch name {
		case "title":
			p.Title = &value
		case "author":
			p.Author = &value
		case "description":
			p.Description = &value
		case "isbn":
			p.ISBN = &value
		case "year", "publishedyear":
			y, err := strconv.Atoi(value)
			if err != nil {
				return BookPatch{}, fmt.Errorf("invalid year %q: %w", value, err)
			}
			p.PublishedYear = &y
		default:
			return BookPatch{}, fmt.Errorf("unknown field %q", name)
		}
	}
	return p, nil
}
