package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyRequestId
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

// LoggerFromContext never returns nil: without a stored logger it falls back to the default one.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found || logger == nil {
		return slog.Default()
	}
	return logger
}

func RequestIdFromContext(ctx context.Context) string {
	requestId, _ := ctx.Value(ContextKeyRequestId).(string)
	return requestId
}

// StoreLoggerInContextMiddleware gives every request its own id and a logger carrying it.
func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Header("X-Request-Id", requestId)

		ctx := context.WithValue(c.Request.Context(), ContextKeyRequestId, requestId)
		ctx = StoreLoggerInContext(ctx, logger.With(slog.String("request_id", requestId)))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
