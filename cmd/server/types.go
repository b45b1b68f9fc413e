package main

import (
	"codeberg.org/trigonal/backend/internal/config"
	"codeberg.org/trigonal/backend/internal/notify"
	ws "codeberg.org/trigonal/backend/internal/websocket"
	"codeberg.org/trigonal/backend/trigonal/briefs"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// holds all dependencies and state for the API server
type Server struct {
	config *config.Config

	// nil when running on the in-memory store
	db *pgxpool.Pool

	// nil when the rate limiter keeps counters in memory
	redis *redis.Client

	briefRepo    briefs.Repository
	notifier     notify.Notifier
	consultLimit gin.HandlerFunc
	hub          *ws.Hub
	router       *gin.Engine
}
