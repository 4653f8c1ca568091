package middleware

import (
	"fmt"
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error attached to the context into the JSON envelope.
// Only validation and not-found messages reach the client verbatim; everything
// else is reported with the generic server message and logged.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		lastError := c.Errors.Last()
		err := lastError.Err

		if appError, ok := errors.As(err); ok {
			statusCode := appError.GetHTTPStatus()
			switch appError.Type {
			case errors.ValidationError, errors.NotFoundError:
				logger.GetLogger().Debugw("Request rejected",
					"path", c.Request.URL.Path,
					"status", statusCode,
					"reason", appError.Error())
				c.JSON(statusCode, types.ErrorEnvelope(appError.Message))
			default:
				logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))
				c.JSON(http.StatusInternalServerError, types.ErrorEnvelope(errors.GenericServerMessage))
			}
			return
		}

		if lastError.Type == gin.ErrorTypeBind {
			logger.GetLogger().Debugw("Request binding error", "path", c.Request.URL.Path, "error", err)
			c.JSON(http.StatusBadRequest, types.ErrorEnvelope("Invalid request body"))
			return
		}

		logger.LogHTTPError(c, err, http.StatusInternalServerError, "Unexpected server error")
		c.JSON(http.StatusInternalServerError, types.ErrorEnvelope(errors.GenericServerMessage))
	}
}
