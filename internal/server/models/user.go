// Package models holds the records kept by the development backend.
package models

import (
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/cryptox"
)

type User struct {
	ID        string
	Name      string
	Email     string
	Password  cryptox.PasswordHash
	CreatedAt time.Time
}
