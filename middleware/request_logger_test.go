package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())

	var logged interface{}
	app.Get("/", func(c *fiber.Ctx) error {
		logged = Logger(c).Data[requestIDLoggerKey]
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	generated := resp.Header.Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, logged)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
	assert.Equal(t, "abc-123", logged)
}

func TestLoggerWithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.NotNil(t, Logger(c))
		assert.NotContains(t, Logger(c).Data, requestIDLoggerKey)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
}
