package stubapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/common"
	"github.com/dmitrijs2005/jobpilot/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestLogger echoes or assigns X-Request-Id and logs one line per request.
func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(common.RequestIDHeaderName)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(common.RequestIDHeaderName, reqID)
		c.Set(requestIDKey, reqID)

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			l.Error(ctx, "request", args...)
		case status >= 400:
			l.Warn(ctx, "request", args...)
		default:
			l.Info(ctx, "request", args...)
		}
	}
}

// recovery turns handler panics into a 500 with a FastAPI-style body.
func recovery(l logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		l.Error(c.Request.Context(), "handler panic", "error", fmt.Sprint(err))
		abortDetail(c, http.StatusInternalServerError, "Internal Server Error")
	})
}
