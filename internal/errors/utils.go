package errors

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// error categories for classification
const (
	CategoryDatabase   = "database"
	CategoryCache      = "cache"
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryNotFound   = "not_found"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// client-facing text per category in production
var sanitizedMessages = map[string]string{
	CategoryDatabase:   "database operation failed",
	CategoryCache:      "cache operation failed",
	CategoryNetwork:    "connection error occurred",
	CategoryValidation: "validation failed",
	CategoryNotFound:   "resource not found",
	CategoryTimeout:    "request timed out",
	CategoryUnknown:    "an error occurred",
}

// keyword fallbacks for errors without a typed cause, checked in order
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategoryTimeout, []string{"timeout", "deadline"}},
	{CategoryNotFound, []string{"not found", "no rows"}},
	{CategoryDatabase, []string{"database", "sql", "postgres", "pgx"}},
	{CategoryCache, []string{"redis"}},
	{CategoryNetwork, []string{"connection", "network", "dial"}},
	{CategoryValidation, []string{"validation", "binding", "invalid", "required"}},
}

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	category := categorize(err)

	if os.Getenv("ENVIRONMENT") != "production" {
		return ErrorInfo{category: category, sanitized: err.Error()}
	}

	return ErrorInfo{category: category, sanitized: sanitizedMessages[category]}
}

func categorize(err error) string {
	var pgErr *pgconn.PgError

	switch {
	case errors.As(err, &pgErr):
		return categorizePgError(pgErr)
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, redis.Nil):
		return CategoryNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return CategoryTimeout
	}

	errMsg := strings.ToLower(err.Error())

	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(errMsg, keyword) {
				return entry.category
			}
		}
	}

	return CategoryUnknown
}

// splits server-reported postgres errors by SQLSTATE class
func categorizePgError(pgErr *pgconn.PgError) string {
	switch {
	case pgErr.Code == pgerrcode.QueryCanceled:
		return CategoryTimeout
	case pgerrcode.IsConnectionException(pgErr.Code), pgErr.Code == pgerrcode.CannotConnectNow:
		return CategoryNetwork
	case pgerrcode.IsDataException(pgErr.Code), pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return CategoryValidation
	default:
		return CategoryDatabase
	}
}
