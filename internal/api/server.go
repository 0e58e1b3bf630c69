package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Serve listens on addr until ctx is cancelled, then shuts app down.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logrus.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}
