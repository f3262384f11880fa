package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WaitForShutdown blocks until SIGINT/SIGTERM or ctx is done, then shuts the app
// down, giving in-flight requests up to timeout to finish.
func WaitForShutdown(app *fiber.App, timeout time.Duration, ctx context.Context) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case s := <-sig:
		zap.L().Info("Shutdown signal received", zap.String("signal", s.String()))
	case <-ctx.Done():
		zap.L().Info("Shutdown requested", zap.Error(ctx.Err()))
	}

	if err := app.ShutdownWithTimeout(timeout); err != nil {
		zap.L().Error("Server shutdown failed", zap.Error(err))
		return
	}
	zap.L().Info("Server stopped")
}
