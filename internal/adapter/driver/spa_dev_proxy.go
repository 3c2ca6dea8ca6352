package driver

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
)

// SPADevProxy forwards front-end requests to a Vite development server so
// the portal UI gets hot module replacement while the API runs in Go.
type SPADevProxy struct {
	proxy *httputil.ReverseProxy
}

// NewSPADevProxy creates a reverse proxy to target (e.g. "http://localhost:5173").
// It panics if target is not a valid URL.
func NewSPADevProxy(target string, logger *slog.Logger) *SPADevProxy {
	targetURL, err := url.Parse(target)
	if err != nil {
		panic("spa dev proxy: invalid target URL: " + err.Error())
	}

	proxy := httputil.NewSingleHostReverseProxy(targetURL)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Warn("vite dev server unreachable", "target", target, "path", r.URL.Path, "error", err)
		http.Error(w, "front-end dev server unreachable at "+target, http.StatusBadGateway)
	}

	return &SPADevProxy{proxy: proxy}
}

func (h *SPADevProxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.proxy.ServeHTTP(w, r)
}
