// Package guard decides whether a navigation target may be entered with the
// current session state. It never touches the network.
package guard

import (
	"net/url"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/client/session"
)

// Route is a navigation target such as "/profile" or "/books/42/edit".
type Route string

const (
	RouteHome     Route = "/"
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	RouteProfile  Route = "/profile"
	RouteNewBook  Route = "/books/new"
)

// EditBookRoute is the edit form of one book.
func EditBookRoute(id string) Route {
	return Route("/books/" + url.PathEscape(id) + "/edit")
}

// BookRoute shows one book.
func BookRoute(id string) Route {
	return Route("/books/" + url.PathEscape(id))
}

// IsPublic reports whether r is reachable without a session. Everything
// except the login and registration forms is protected.
func IsPublic(r Route) bool {
	switch normalize(r) {
	case RouteLogin, RouteRegister:
		return true
	default:
		return false
	}
}

func normalize(r Route) Route {
	s := string(r)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	if len(s) > 1 {
		s = strings.TrimRight(s, "/")
	}
	if s == "" {
		return RouteHome
	}
	return Route(s)
}

// Action is the outcome of a navigation decision.
type Action int

const (
	Allow Action = iota
	// RedirectToLogin sends an anonymous user to the login form. Decision.From
	// carries the original target so navigation can resume after login.
	RedirectToLogin
	// RedirectToHome keeps an authenticated user away from login/register.
	RedirectToHome
)

func (a Action) String() string {
	switch a {
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "allow"
	}
}

// Decision is what the navigation layer should do.
type Decision struct {
	Action Action
	// To is where to go: the target itself on Allow, otherwise the redirect.
	To Route
	// From is the originally requested target on RedirectToLogin.
	From Route
}

// Decide is a pure function of the target and the session state.
func Decide(target Route, state session.State) Decision {
	public := IsPublic(target)

	switch {
	case !public && state == session.Anonymous:
		return Decision{Action: RedirectToLogin, To: RouteLogin, From: target}
	case public && state == session.Authenticated:
		return Decision{Action: RedirectToHome, To: RouteHome}
	default:
		return Decision{Action: Allow, To: target}
	}
}

// AfterLogin is where to land once login succeeds: the target carried by a
// RedirectToLogin decision, or home when there is none.
func AfterLogin(from Route) Route {
	if from == "" || IsPublic(from) {
		return RouteHome
	}
	return from
}
