package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khanhngo/campus-hub/pkg/apperror"
	"github.com/khanhngo/campus-hub/pkg/logger"
)

// ErrorMiddleware converts errors attached via c.Error into the JSON error
// envelope. Handlers report failures and never write error bodies directly.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unexpected error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err,
				zap.String("path", c.FullPath()),
				zap.Int("status", status),
			)
		} else {
			log.Warn("Request rejected",
				zap.String("path", c.FullPath()),
				zap.Int("status", status),
				zap.String("reason", appErr.Message),
			)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}
