// Package common contains shared constants and sentinel errors used across
// bookshelf components.
package common

// TokenStorageKey is the durable storage key under which the client keeps
// the authentication token.
const TokenStorageKey = "token"

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "
