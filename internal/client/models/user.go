// Package models defines the client-side data shapes exchanged with the
// book-catalog backend.
package models

// Credentials are submitted by login. They are never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is submitted by register. It is never persisted.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the account summary returned alongside a token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserProfile is fetched on demand with the current token and is not cached.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
