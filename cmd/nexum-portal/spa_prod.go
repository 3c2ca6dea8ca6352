//go:build !dev

package main

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"

	"github.com/alorle/nexum-portal/internal/adapter/driver"
	"github.com/alorle/nexum-portal/ui"
)

func newSPAHandler(_ *slog.Logger) http.Handler {
	distFS, err := fs.Sub(ui.DistFS, "dist")
	if err != nil {
		log.Fatalf("failed to create sub filesystem for SPA: %v", err)
	}
	return driver.NewSPAHandler(distFS)
}
