package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"quickdraw-service/config"
	"quickdraw-service/domain"
)

type RateLimiter struct {
	config config.RateLimitConfig

	// Global rate limiter
	globalLimiter *rate.Limiter

	// Per-room rate limiters, keyed by room id
	roomLimiters sync.Map
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:        cfg,
		globalLimiter: newLimiter(cfg.RequestsPerMinute, cfg.Burst),
	}
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

func (rl *RateLimiter) getOrCreateRoomLimiter(roomID string) *rate.Limiter {
	if limiter, ok := rl.roomLimiters.Load(roomID); ok {
		return limiter.(*rate.Limiter)
	}
	limiter, _ := rl.roomLimiters.LoadOrStore(roomID, newLimiter(rl.config.PerRoomRequestsPerMinute, rl.config.PerRoomBurst))
	return limiter.(*rate.Limiter)
}

// Middleware applies the global bucket to every request.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.globalLimiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Global rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// RoomMiddleware applies the bucket of the route's :room_id. It must be mounted
// on the route itself, where params are resolved.
func (rl *RateLimiter) RoomMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		roomID := c.Params("room_id")
		if roomID == "" {
			return c.Next()
		}
		if !rl.getOrCreateRoomLimiter(roomID).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Room rate limit exceeded",
			})
		}
		return c.Next()
	}
}

// Forget drops the bucket of a room.
func (rl *RateLimiter) Forget(roomID string) {
	rl.roomLimiters.Delete(roomID)
}

// Record releases a room's bucket once the room is disposed.
func (rl *RateLimiter) Record(_ context.Context, event domain.LifecycleEvent) {
	if event.Kind == domain.LifecycleRoomDisposed {
		rl.Forget(event.RoomID)
	}
}
