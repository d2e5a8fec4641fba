// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itsatony/w4b_v3/server/beeview/api"
	"github.com/itsatony/w4b_v3/server/beeview/api/middleware"
	"github.com/itsatony/w4b_v3/server/beeview/api/resources"
	"github.com/itsatony/w4b_v3/server/beeview/internal/config"
	"github.com/itsatony/w4b_v3/server/beeview/internal/database"
	"github.com/itsatony/w4b_v3/server/beeview/internal/monitoring"
	"github.com/itsatony/w4b_v3/server/beeview/internal/pagination"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository"
	"github.com/itsatony/w4b_v3/server/beeview/internal/repository/postgres"
	"github.com/itsatony/w4b_v3/server/beeview/internal/viewer"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	records    *postgres.RecordRepo
	redis      *redis.Client
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config: cfg,
		srv:    srv,
		monitoring: monitoring.NewService(monitoring.Config{
			LogLevel: cfg.Monitoring.LogLevel,
		}),
	}
}

// Start connects to the record store, begins listening for requests and
// blocks until the process is asked to stop
func (s *Server) Start() error {
	s.records = postgres.NewRecordRepository(initRecordStore(s.config.Database))
	s.redis = initRedis(s.config.Redis)

	s.srv.Handler = Handler(s.config, s.records, s.redis, s.monitoring)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// Handler assembles the full middleware and routing stack. rdb may be nil.
func Handler(cfg *config.Config, records repository.RecordRepository, rdb *redis.Client, mon *monitoring.Service) http.Handler {
	v := viewer.New(records, viewer.Options{
		Pagination: pagination.Defaults{
			Limit:    cfg.Pagination.DefaultLimit,
			MaxLimit: cfg.Pagination.MaxLimit,
		},
		QueryTimeout: cfg.Database.QueryTimeout,
		Monitoring:   mon,
	})

	var limiter *middleware.RateLimiter
	if rdb != nil {
		limiter = middleware.NewRateLimiter(rdb, middleware.RateLimitConfig{
			Limit:  cfg.Redis.RateLimit,
			Window: cfg.Redis.RateWindow,
		}, mon)
	}

	router := api.NewRouter(resources.NewResources(v, records, rdb), limiter)
	return middleware.Wrap(router, cfg.Server.TrustProxyHeaders)
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			nuts.L.Warnf("[Server] Error closing redis client: %v", err)
		}
	}
	if err := s.records.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing database: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// initRecordStore connects to the record store. A store that cannot be
// reached at startup is fatal.
func initRecordStore(cfg config.DatabaseConfig) database.DB {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Unable to connect to the record store: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping record store: %v", err)
	}
	return db
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		nuts.L.Infof("[Server] Redis not configured, rate limiting disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		nuts.L.Warnf("[Server] Redis at %s not reachable, rate limiter will let requests through: %v", cfg.Addr(), err)
	} else {
		nuts.L.Infof("[Server] Connected to redis at %s", cfg.Addr())
	}
	return client
}
