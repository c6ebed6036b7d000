package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"github.com/jgrivera/fruition/logger"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"

	requestIDLoggerKey = "requestID"
	loggerLocalsKey    = "logger"
)

// RequestLogger tags every request with an ID, reusing the caller's X-Request-ID
// when present, and stores a logger carrying it in the request locals.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := utils.CopyString(c.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDHeader, requestID)
		c.Locals(loggerLocalsKey, logrus.WithField(requestIDLoggerKey, requestID))
		return c.Next()
	}
}

// Logger returns the request scoped logger, or the default one outside RequestLogger.
func Logger(c *fiber.Ctx) *logrus.Entry {
	if entry, ok := c.Locals(loggerLocalsKey).(*logrus.Entry); ok {
		return entry
	}
	return logger.Default()
}
