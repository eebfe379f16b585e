package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/models"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
	"github.com/dmitrijs2005/bookshelf/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "k"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mem := store.NewMemory()
	cfg := &config.Config{SecretKey: testSecret, TokenTTL: time.Hour}
	h := NewHandler(services.NewUserService(mem.Users(), cfg), services.NewBookService(mem.Books()), logging.Discard())
	srv := httptest.NewServer(NewRouter(h, "/api"))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, srv.URL+path, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func message(t *testing.T, data []byte) string {
	t.Helper()
	var m messageBody
	require.NoError(t, json.Unmarshal(data, &m))
	return m.Message
}

func register(t *testing.T, srv *httptest.Server, name, email string) authBody {
	t.Helper()
	status, data := call(t, srv, http.MethodPost, "/api/auth/register", "", registerRequest{Name: name, Email: email, Password: "password123"})
	require.Equal(t, http.StatusOK, status, string(data))
	var out authBody
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestAuthRoutes(t *testing.T) {
	srv := newTestServer(t)

	reg := register(t, srv, "Test User", "test@example.com")
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "test@example.com", reg.User.Email)

	status, data := call(t, srv, http.MethodPost, "/api/auth/register", "", registerRequest{Name: "X", Email: "test@example.com", Password: "p"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", message(t, data))

	status, data = call(t, srv, http.MethodPost, "/api/auth/login", "", loginRequest{Email: "test@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, status)
	var login authBody
	require.NoError(t, json.Unmarshal(data, &login))
	assert.Equal(t, reg.User.ID, login.User.ID)

	status, data = call(t, srv, http.MethodPost, "/api/auth/login", "", loginRequest{Email: "wrong@example.com", Password: "x"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", message(t, data))

	status, data = call(t, srv, http.MethodGet, "/api/auth/profile", login.Token, nil)
	require.Equal(t, http.StatusOK, status)
	var p profileBody
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, profileBody{Name: "Test User", Email: "test@example.com"}, p)

	status, data = call(t, srv, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "No token provided", message(t, data))

	status, _ = call(t, srv, http.MethodGet, "/api/auth/profile", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	expired, err := auth.GenerateToken(reg.User.ID, []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	status, data = call(t, srv, http.MethodGet, "/api/auth/profile", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token expired", message(t, data))

	status, _ = call(t, srv, http.MethodPost, "/api/auth/login", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestBookRoutes(t *testing.T) {
	srv := newTestServer(t)
	alice := register(t, srv, "Alice", "alice@example.com").Token
	bob := register(t, srv, "Bob", "bob@example.com").Token

	status, data := call(t, srv, http.MethodPost, "/api/books", alice, map[string]any{"title": "Dune", "author": "Herbert", "publishedYear": 1965})
	require.Equal(t, http.StatusCreated, status, string(data))
	var created models.Book
	require.NoError(t, json.Unmarshal(data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, string(data), `"_id"`)

	status, data = call(t, srv, http.MethodGet, "/api/books", alice, nil)
	require.Equal(t, http.StatusOK, status)
	var list []models.Book
	require.NoError(t, json.Unmarshal(data, &list))
	require.Len(t, list, 1)

	status, data = call(t, srv, http.MethodGet, "/api/books", bob, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(data))

	status, _ = call(t, srv, http.MethodGet, "/api/books/"+created.ID, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, http.MethodGet, "/api/books/nope", alice, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, data = call(t, srv, http.MethodPut, "/api/books/"+created.ID, alice, map[string]any{"title": "Dune Messiah"})
	require.Equal(t, http.StatusOK, status)
	var updated models.Book
	require.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, "Herbert", updated.Author)

	status, _ = call(t, srv, http.MethodPost, "/api/books", alice, map[string]any{"title": "No author"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPost, "/api/books", alice, "{")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/books/"+created.ID, bob, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/books/"+created.ID, alice, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodGet, "/api/books", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	status, data := call(t, srv, http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", message(t, data))
}
