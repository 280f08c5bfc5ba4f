package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newLimitedApp(max int, expiration time.Duration) *fiber.App {
	app := fiber.New()
	app.Use(RateLimiter(max, expiration))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func get(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	app := newLimitedApp(2, time.Minute)

	for i := 0; i < 2; i++ {
		status, body := get(t, app)
		require.Equal(t, fiber.StatusOK, status, "request %d", i+1)
		assert.Equal(t, "ok", body)
	}

	status, body := get(t, app)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, "Too many requests", gjson.Get(body, "error").String())
	assert.Equal(t, int64(fiber.StatusTooManyRequests), gjson.Get(body, "code").Int())
}

func TestRateLimiter_ZeroValuesUseDefaults(t *testing.T) {
	app := newLimitedApp(0, 0)

	for i := 0; i < 60; i++ {
		status, _ := get(t, app)
		require.Equal(t, fiber.StatusOK, status, "request %d", i+1)
	}

	status, body := get(t, app)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, int64(fiber.StatusTooManyRequests), gjson.Get(body, "code").Int())
}
