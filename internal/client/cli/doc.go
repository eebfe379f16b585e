// Package cli provides the interactive bookshelf command-line client.
//
// It wires configuration, the persisted session, the REST request pipeline
// and the auth/book services behind a small REPL. Every navigation command
// names a route and is gated by the guard package before it runs: an
// anonymous user asking for a protected route is taken through login and
// the command then resumes.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Execute, and runREPL for details.
package cli
