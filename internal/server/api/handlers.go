package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userBody struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authBody struct {
	Token string   `json:"token"`
	User  userBody `json:"user"`
}

type profileBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toAuthBody(res *services.AuthResult) authBody {
	return authBody{
		Token: res.Token,
		User:  userBody{ID: res.User.ID, Email: res.User.Email, Name: res.User.Name},
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthBody(res))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthBody(res))
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Profile(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileBody{Name: u.Name, Email: u.Email})
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	b, err := h.books.Get(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var f models.BookFields
	if !decodeJSON(w, r, &f) {
		return
	}

	b, err := h.books.Create(r.Context(), userIDFrom(r.Context()), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	var f models.BookFields
	if !decodeJSON(w, r, &f) {
		return
	}

	b, err := h.books.Update(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id"), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.books.Delete(r.Context(), userIDFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
