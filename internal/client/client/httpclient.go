package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/client/models"
	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/netx"
)

// Category selects the deadline of a call and the endpoint context used
// when classifying its failure.
type Category int

const (
	CategoryDefault Category = iota
	CategoryAuth
	CategoryProfile
	CategoryBulk
)

func (c Category) String() string {
	switch c {
	case CategoryAuth:
		return "auth"
	case CategoryProfile:
		return "profile"
	case CategoryBulk:
		return "bulk"
	default:
		return "default"
	}
}

// Endpoint maps a category to the classifier's endpoint context.
func (c Category) Endpoint() Endpoint {
	if c == CategoryAuth {
		return EndpointAuth
	}
	return EndpointProtected
}

// Timeouts holds one deadline per call category.
type Timeouts struct {
	Auth    time.Duration
	Profile time.Duration
	Default time.Duration
	Bulk    time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Auth:    5 * time.Second,
		Profile: 10 * time.Second,
		Default: 10 * time.Second,
		Bulk:    30 * time.Second,
	}
}

// For returns the deadline for c. Zero values fall back to the defaults.
func (t Timeouts) For(c Category) time.Duration {
	d := DefaultTimeouts()
	var v, def time.Duration
	switch c {
	case CategoryAuth:
		v, def = t.Auth, d.Auth
	case CategoryProfile:
		v, def = t.Profile, d.Profile
	case CategoryBulk:
		v, def = t.Bulk, d.Bulk
	default:
		v, def = t.Default, d.Default
	}
	if v <= 0 {
		return def
	}
	return v
}

// TokenSource yields the current session token. It is read once per call,
// at send time.
type TokenSource interface {
	Token() (string, bool)
}

// HTTPClient is the authenticated request pipeline: it attaches the bearer
// token, applies the per-category deadline and classifies every failure.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	timeouts Timeouts
	logger   logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeouts(t Timeouts) Option {
	return func(c *HTTPClient) { c.timeouts = t }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient builds a pipeline against baseURL, e.g. http://127.0.0.1:8080/api.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if tokens == nil {
		return nil, errors.New("token source is required")
	}

	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     http.DefaultClient,
		tokens:   tokens,
		timeouts: DefaultTimeouts(),
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do sends one JSON request. in is encoded as the body when non-nil, and a
// 2xx body is decoded into out when out is non-nil. Network failures come
// back as *ClassifiedError; encode/decode problems are returned wrapped and
// left to the caller's fallback.
func (c *HTTPClient) Do(ctx context.Context, cat Category, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.For(cat))
	defer cancel()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, authenticated := c.tokens.Token()
	if authenticated {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	c.logger.Debug(ctx, "request", "method", method, "path", path, "category", cat.String(), "authenticated", authenticated)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(ctx, err, cat, method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err == nil {
		// a response that only completed after the deadline still counts as a timeout
		err = ctx.Err()
	}
	if err != nil {
		return c.fail(ctx, err, cat, method, path)
	}

	if resp.StatusCode/100 != 2 {
		return c.fail(ctx, &StatusError{StatusCode: resp.StatusCode, Body: data}, cat, method, path)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) fail(ctx context.Context, err error, cat Category, method, path string) error {
	ce := Classify(err, cat.Endpoint())
	log := c.logger.Warn
	if netx.IsCanceled(err) {
		log = c.logger.Debug
	}
	log(ctx, "request failed",
		"method", method, "path", path, "category", cat.String(),
		"kind", ce.Kind().String(), "status", ce.Status(), "cause", err.Error())
	return ce
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.Do(ctx, CategoryAuth, http.MethodPost, PathLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.Registration) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.Do(ctx, CategoryAuth, http.MethodPost, PathRegister, data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.Do(ctx, CategoryProfile, http.MethodGet, PathProfile, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListBooks(ctx context.Context) ([]models.Book, error) {
	out := []models.Book{}
	if err := c.Do(ctx, CategoryBulk, http.MethodGet, PathBooks, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var out models.Book
	if err := c.Do(ctx, CategoryDefault, http.MethodGet, bookPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	var out models.Book
	if err := c.Do(ctx, CategoryDefault, http.MethodPost, PathBooks, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	var out models.Book
	if err := c.Do(ctx, CategoryDefault, http.MethodPut, bookPath(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id string) error {
	return c.Do(ctx, CategoryDefault, http.MethodDelete, bookPath(id), nil, nil)
}

func bookPath(id string) string {
	return PathBooks + "/" + url.PathEscape(id)
}

var _ Client = (*HTTPClient)(nil)
