package middleware

import (
	"github.com/NomadCrew/tourist-travel-backend/logger"
)

func init() {
	logger.IsTest = true
}
