//go:build dev

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/alorle/nexum-portal/internal/adapter/driver"
)

func newSPAHandler(logger *slog.Logger) http.Handler {
	target := os.Getenv("VITE_DEV_URL")
	if target == "" {
		target = "http://localhost:5173"
	}
	logger.Info("proxying front end to vite", "target", target)
	return driver.NewSPADevProxy(target, logger)
}
