// Package api exposes the development backend over JSON/HTTP with chi.
package api

import (
	"net/http"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	users  *services.UserService
	books  *services.BookService
	logger logging.Logger
}

func NewHandler(users *services.UserService, books *services.BookService, logger logging.Logger) *Handler {
	return &Handler{users: users, books: books, logger: logger}
}

// NewRouter mounts every route under basePath (e.g. "/api"). An empty
// basePath mounts them at the root.
func NewRouter(h *Handler, basePath string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	routes := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
			r.With(h.authenticate).Get("/profile", h.profile)
		})

		r.Route("/books", func(r chi.Router) {
			r.Use(h.authenticate)
			r.Get("/", h.listBooks)
			r.Post("/", h.createBook)
			r.Get("/{id}", h.getBook)
			r.Put("/{id}", h.updateBook)
			r.Delete("/{id}", h.deleteBook)
		})
	}

	if basePath == "" || basePath == "/" {
		routes(r)
	} else {
		r.Route(basePath, routes)
	}

	return r
}
