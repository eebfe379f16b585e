package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/bookshelf/internal/client/client"
	"github.com/dmitrijs2005/bookshelf/internal/client/config"
	"github.com/dmitrijs2005/bookshelf/internal/client/services"
	"github.com/dmitrijs2005/bookshelf/internal/client/session"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	books  services.BookService
	closer io.Closer
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens local storage, restores the session from it and builds the
// request pipeline and services on top.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, c.LogLevel)

	repos, err := client.OpenRepositories(ctx, c.StorageDriver, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing storage: %w", err)
	}

	s, err := session.New(ctx, repos.Metadata)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, s, client.WithTimeouts(c.Timeouts), client.WithLogger(logger))
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	app := newApp(services.NewAuthService(apiClient, s, logger), services.NewBookService(apiClient), logger,
		bufio.NewReader(os.Stdin), os.Stdout)
	app.config = c
	app.closer = repos
	return app, nil
}

func newApp(auth services.AuthService, books services.BookService, logger logging.Logger, reader *bufio.Reader, out io.Writer) *App {
	return &App{auth: auth, books: books, logger: logger, reader: reader, out: out}
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			if err := a.closer.Close(); err != nil {
				a.logger.Error(ctx, "closing storage", "error", err.Error())
			}
		}
	}()

	fmt.Fprintln(a.out, "Welcome to bookshelf (type 'help' for commands)")
	runREPL(ctx, a, a.Status, a.reader)
}

// Status is the prompt decoration: the session state.
func (a *App) Status() string {
	return fmt.Sprintf("(%s)", a.auth.State())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
