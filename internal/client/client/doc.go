// Package client is the client's side of the wire.
//
// # Overview
//
// The package provides:
//  1. The transport contract with the book-catalog backend (Client) and
//     its REST implementation (HTTPClient). HTTPClient is the authenticated
//     request pipeline: it reads the session token at send time, attaches
//     it as a bearer credential, applies a per-category deadline (auth 5s,
//     profile 10s, default 10s, bulk 30s) and classifies every failure.
//  2. The error classifier (Classify) that turns timeouts, connection
//     failures and non-2xx statuses into a *ClassifiedError with a stable,
//     user-facing message. Classification is idempotent.
//  3. Local persistence bootstrap (OpenRepositories, InitDatabase,
//     RunMigrations) for the durable storage behind the session token.
//
// # Error Handling
//
// A *ClassifiedError matches one of ErrTimeout, ErrConnectivity,
// ErrUnauthorized, ErrForbidden, ErrNotFound or ErrServerError with
// errors.Is; other statuses carry the server-supplied message. No raw
// transport error leaves HTTPClient. Callers substitute an operation
// specific message for anything else with Fallback.
package client
