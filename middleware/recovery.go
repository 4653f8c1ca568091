package middleware

import (
	"fmt"
	"net/http"

	"github.com/NomadCrew/tourist-travel-backend/logger"
	"github.com/NomadCrew/tourist-travel-backend/types"
	"github.com/gin-gonic/gin"
)

// PanicMessage is returned to the client when a handler panics.
const PanicMessage = "Something went wrong!"

// Recovery converts panics into a 500 envelope and logs the recovered value.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.LogHTTPError(c, fmt.Errorf("panic: %v", recovered), http.StatusInternalServerError, "Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorEnvelope(PanicMessage))
	})
}
