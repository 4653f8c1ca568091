package handlers

import (
	apperrors "github.com/NomadCrew/tourist-travel-backend/errors"
	"github.com/gin-gonic/gin"
)

// bindOrError binds a JSON or form-encoded body depending on Content-Type.
// On failure it attaches a validation error and returns false.
func bindOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return false
	}
	return true
}
