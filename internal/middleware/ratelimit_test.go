package middleware

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdraw-service/config"
	"quickdraw-service/domain"
)

func newLimitedApp(rl *RateLimiter) *fiber.App {
	app := fiber.New()
	app.Use(rl.Middleware())
	app.Post("/rooms/:room_id/guess", rl.RoomMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func status(t *testing.T, app *fiber.App, method, target string) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestRateLimiter_Global(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 2})
	app := newLimitedApp(rl)

	assert.Equal(t, fiber.StatusOK, status(t, app, "GET", "/health"))
	assert.Equal(t, fiber.StatusOK, status(t, app, "GET", "/health"))
	assert.Equal(t, fiber.StatusTooManyRequests, status(t, app, "GET", "/health"))
}

func TestRateLimiter_PerRoom(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerMinute:        600,
		Burst:                    100,
		PerRoomRequestsPerMinute: 1,
		PerRoomBurst:             1,
	})
	app := newLimitedApp(rl)

	assert.Equal(t, fiber.StatusOK, status(t, app, "POST", "/rooms/a/guess"))
	assert.Equal(t, fiber.StatusTooManyRequests, status(t, app, "POST", "/rooms/a/guess"))
	assert.Equal(t, fiber.StatusOK, status(t, app, "POST", "/rooms/b/guess"))

	rl.Record(context.Background(), domain.LifecycleEvent{Kind: domain.LifecycleGameEnded, RoomID: "a"})
	assert.Equal(t, fiber.StatusTooManyRequests, status(t, app, "POST", "/rooms/a/guess"))

	rl.Record(context.Background(), domain.LifecycleEvent{Kind: domain.LifecycleRoomDisposed, RoomID: "a"})
	assert.Equal(t, fiber.StatusOK, status(t, app, "POST", "/rooms/a/guess"))
}

func TestRateLimiter_ZeroMeansUnlimited(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})
	app := newLimitedApp(rl)

	for i := 0; i < 50; i++ {
		require.Equal(t, fiber.StatusOK, status(t, app, "POST", "/rooms/a/guess"))
	}
}
