package middleware

import (
	"github.com/villagehq/village/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// CORS returns the CORS middleware.
func CORS() fiber.Handler {
	return cors.New()
}

// RequestID tags every request with a UUID request id.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: uuid.NewString,
	})
}

// Logger returns the zap access-log middleware.
func Logger() fiber.Handler {
	return logger.Middleware()
}

// Recover turns panics into 500 responses.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}
