package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/mentorhub/internal/config"
	"github.com/GlebRadaev/mentorhub/internal/handlers"
	"github.com/GlebRadaev/mentorhub/internal/notify"
	"github.com/GlebRadaev/mentorhub/internal/pg"
	"github.com/GlebRadaev/mentorhub/internal/repo"
	"github.com/GlebRadaev/mentorhub/internal/repo/memstore"
	"github.com/GlebRadaev/mentorhub/internal/service"
	"github.com/GlebRadaev/mentorhub/pkg/auth"
	"github.com/GlebRadaev/mentorhub/pkg/clients"
	"github.com/GlebRadaev/mentorhub/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notify.Notifier
	pool     *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	a.cfg = cfg

	if err := a.initRepositories(ctx); err != nil {
		return err
	}

	a.notifier = newNotifier(cfg)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, a.notifier, jwtService, service.Options{
		AdminEmails: cfg.AdminEmails,
		TokenTTL:    cfg.TokenTTL,
	})
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwtService), cfg.CORSOrigins)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("store", cfg.Store))
	return nil
}

func (a *Application) initRepositories(ctx context.Context) error {
	switch a.cfg.Store {
	case config.StoreMemory:
		a.repo = repo.NewInMemory(memstore.New())
		return nil
	case config.StorePostgres:
	default:
		return fmt.Errorf("unsupported store: %s", a.cfg.Store)
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool, a.cfg.TxMaxRetries))
	return nil
}

func newNotifier(cfg *config.Config) *notify.Notifier {
	sinks := []notify.Sink{notify.LogSink{}}
	if cfg.NotifyURL != "" {
		sinks = append(sinks, notify.NewWebhookSink(cfg.NotifyURL, clients.NewHTTPClient()))
	}
	return notify.New(notify.NewWorkerPool(cfg.NotifyWorkers), sinks...)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.notifier.Close()
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
