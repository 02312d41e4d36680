package cli

import (
	"context"
	"log/slog"
	"net"

	"time-travel-tasks/internal/api"
	"time-travel-tasks/internal/config"
	"time-travel-tasks/internal/repository"
	"time-travel-tasks/internal/services"
	"time-travel-tasks/internal/validation"
)

// App wires the repository, task service and HTTP server for one process
type App struct {
	config   *config.Config
	log      *slog.Logger
	repo     repository.Repository
	tasks    services.TaskService
	server   *api.Server
	listener net.Listener
	errs     *ErrorHandler
}

// NewApp builds the application from cfg and seeds the sample tasks unless
// the configuration says otherwise.
func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	errs := NewErrorHandler()

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, errs.Handle("create repository", err)
	}

	tasks := services.NewTaskService(repo, log)
	if !cfg.Store.SkipSeed {
		if _, err := tasks.SeedSamples(ctx); err != nil {
			repo.Close()
			return nil, errs.Handle("seed sample tasks", err)
		}
	}

	handler := api.New(tasks, validation.NewTaskValidatorWithConfig(cfg), log).Routes(cfg.HTTP.RequestTimeout)

	return &App{
		config: cfg,
		log:    log,
		repo:   repo,
		tasks:  tasks,
		server: api.NewServer(cfg.HTTP, handler, log),
		errs:   errs,
	}, nil
}

// Listen binds the HTTP address and returns the bound address.
func (a *App) Listen() (net.Addr, error) {
	ln, err := a.server.Listen()
	if err != nil {
		return nil, a.errs.Handle("listen on "+a.config.HTTP.Address, err)
	}
	a.listener = ln
	return ln.Addr(), nil
}

// Serve handles requests until ctx is done, then shuts the server down
// within the configured shutdown timeout. Listen must be called first.
func (a *App) Serve(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.server.Serve(a.listener)
	}()

	select {
	case err := <-serveErr:
		return a.errs.Handle("serve HTTP", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return a.errs.Handle("shut down HTTP server", err)
	}
	return a.errs.Handle("serve HTTP", <-serveErr)
}

// Run listens and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.Listen(); err != nil {
		return err
	}
	return a.Serve(ctx)
}

// Close releases the repository.
func (a *App) Close() error {
	return a.repo.Close()
}
