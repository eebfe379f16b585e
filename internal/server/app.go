// Package server wires the development backend: in-memory storage, the user
// and book services, and the HTTP API. It runs until SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/api"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/services"
	"github.com/dmitrijs2005/bookshelf/internal/server/store"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	bookService *services.BookService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	// an empty key means tokens only live as long as this process
	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generate secret key: %w", err)
		}
		c.SecretKey = key
		logger.Warn(context.Background(), "no secret key configured, using a random one")
	}

	mem := store.NewMemory()
	us := services.NewUserService(mem.Users(), c)
	bs := services.NewBookService(mem.Books())

	return &App{config: c, logger: logger, userService: us, bookService: bs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	h := api.NewHandler(app.userService, app.bookService, app.logger)
	s := api.NewServer(app.config.Addr, api.NewRouter(h, app.config.BasePath), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "base_path", app.config.BasePath)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
