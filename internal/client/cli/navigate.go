package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/client/guard"
)

var ErrUnknownRoute = errors.New("unknown route")

// command is a REPL verb: the route it is gated on and what runs once the
// guard allows it.
type command struct {
	route guard.Route
	run   func(ctx context.Context) error
}

// Execute asks the guard about cmd.route. On RedirectToLogin the login flow
// runs first and, if it succeeds, cmd resumes at the route the guard
// recorded. On RedirectToHome the home view is shown instead.
func (a *App) Execute(ctx context.Context, cmd command) error {
	d := guard.Decide(cmd.route, a.auth.State())
	a.logger.Debug(ctx, "navigation", "target", string(cmd.route), "action", d.Action.String())

	switch d.Action {
	case guard.RedirectToHome:
		a.println("You are already logged in.")
		return a.home(ctx)

	case guard.RedirectToLogin:
		a.println("Please log in to continue.")
		if err := a.login(ctx); err != nil {
			return err
		}
		if next := guard.AfterLogin(d.From); next != cmd.route {
			return a.open(ctx, next)
		}
		return cmd.run(ctx)

	default:
		return cmd.run(ctx)
	}
}

// view maps a route to the screen that renders it.
func (a *App) view(r guard.Route) (func(ctx context.Context) error, error) {
	path := string(r)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	switch guard.Route(path) {
	case guard.RouteHome, "":
		return a.home, nil
	case guard.RouteLogin:
		return a.login, nil
	case guard.RouteRegister:
		return a.register, nil
	case guard.RouteProfile:
		return a.profile, nil
	case guard.RouteNewBook:
		return a.add, nil
	}

	rest, ok := strings.CutPrefix(path, "/books/")
	if !ok || rest == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, r)
	}

	escaped, edit := strings.CutSuffix(rest, "/edit")
	if strings.Contains(escaped, "/") {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, r)
	}
	id, err := url.PathUnescape(escaped)
	if err != nil || id == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, r)
	}

	if edit {
		return func(ctx context.Context) error { return a.edit(ctx, id) }, nil
	}
	return func(ctx context.Context) error { return a.show(ctx, id) }, nil
}

// open navigates to r as typed by the user. The guard runs before the route
// is resolved, so an unknown route still requires a session.
func (a *App) open(ctx context.Context, r guard.Route) error {
	return a.Execute(ctx, command{route: r, run: func(ctx context.Context) error {
		run, err := a.view(r)
		if err != nil {
			return err
		}
		return run(ctx)
	}})
}
