package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/trigonal/backend/internal/config"
	"codeberg.org/trigonal/backend/internal/logger"
	"codeberg.org/trigonal/backend/internal/notify"
	"codeberg.org/trigonal/backend/internal/ratelimit"
	ws "codeberg.org/trigonal/backend/internal/websocket"
	"codeberg.org/trigonal/backend/migrations"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
)

// bound for connecting to backends during startup
const startupTimeout = 10 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	server := &Server{config: cfg}

	if err := server.initBriefStore(ctx); err != nil {
		return nil, err
	}

	if err := server.initRateLimit(ctx); err != nil {
		server.Close()
		return nil, err
	}

	server.notifier = notify.New(notify.ResendConfig{
		APIKey: cfg.ResendAPIKey,
		From:   cfg.NotifyFrom,
		To:     cfg.NotifyTo,
	})

	server.hub = ws.NewHub()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// wrong method on a known path is 405, not 404
	router.HandleMethodNotAllowed = true

	// ClientIP reads X-Forwarded-For only from these proxies
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		server.Close()
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	server.router = router
	RegisterRoutes(router, server)

	logger.Info("server initialized",
		"store", backendName(server.db != nil, "postgres"),
		"rate_limit_store", backendName(server.redis != nil, "redis"),
		"rate_limit", cfg.ConsultRateLimit,
		"admin_enabled", cfg.AdminEnabled(),
		"allowed_origins", cfg.AllowedOrigins,
	)

	return server, nil
}

// postgres when DATABASE_URL is set, memory otherwise
func (s *Server) initBriefStore(ctx context.Context) error {
	if s.config.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, briefs are kept in memory and lost on restart")
		s.briefRepo = briefs.NewMemoryRepository()
		return nil
	}

	poolConfig, err := pgxpool.ParseConfig(s.config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// keep the pool small for hosted poolers
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// pgbouncer in transaction mode does not support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// goose needs database/sql; the wrapper borrows connections from the pool
	sqlDB := stdlib.OpenDBFromPool(db)
	err = migrations.Migrate(ctx, sqlDB)
	sqlDB.Close() //nolint:errcheck,gosec // releases borrowed connections only

	if err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.briefRepo = briefs.NewRepository(db)

	return nil
}

// redis-backed counters when REDIS_URL is set, memory otherwise
func (s *Server) initRateLimit(ctx context.Context) error {
	var client *redis.Client

	if s.config.RedisURL != "" {
		c, err := ratelimit.NewRedisClient(ctx, s.config.RedisURL)
		if err != nil {
			return err
		}

		client = c
	}

	store, err := ratelimit.NewStore(client)
	if err != nil {
		if client != nil {
			client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}

		return err
	}

	limit, err := ratelimit.Middleware(store, s.config.ConsultRateLimit)
	if err != nil {
		if client != nil {
			client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		}

		return fmt.Errorf("CONSULT_RATE_LIMIT: %w", err)
	}

	s.redis = client
	s.consultLimit = limit

	return nil
}

// releases backend connections
func (s *Server) Close() {
	if s.redis != nil {
		s.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.db != nil {
		s.db.Close()
	}
}

func backendName(configured bool, name string) string {
	if !configured {
		return "memory"
	}

	return name
}
