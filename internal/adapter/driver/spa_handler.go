package driver

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const (
	cacheImmutable = "public, max-age=31536000, immutable"
	cacheLogos     = "public, max-age=86400"
	cacheNone      = "no-cache"
)

// SPAHandler serves the portal front end from an embedded filesystem.
//
// Existing files are served as-is. Extensionless paths fall back to index.html
// so client-side routes survive a reload; a missing file with an extension
// (a sponsor logo, a script chunk) is a real 404 rather than an HTML page.
type SPAHandler struct {
	fsys       fs.FS
	fileServer http.Handler
}

// NewSPAHandler creates a new handler that serves the SPA from fsys.
func NewSPAHandler(fsys fs.FS) *SPAHandler {
	return &SPAHandler{
		fsys:       fsys,
		fileServer: http.FileServer(http.FS(fsys)),
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := path.Clean(r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}

	if !h.exists(name) {
		if path.Ext(name) != "" {
			http.NotFound(w, r)
			return
		}
		name = "/index.html"
		r.URL.Path = "/"
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	if cc := cacheControl(name); cc != "" {
		w.Header().Set("Cache-Control", cc)
	}
	h.fileServer.ServeHTTP(w, r)
}

func (h *SPAHandler) exists(name string) bool {
	info, err := fs.Stat(h.fsys, strings.TrimPrefix(name, "/"))
	return err == nil && !info.IsDir()
}

// cacheControl picks the caching policy for a served file. Bundler output
// under /assets/ is content-hashed; sponsor logos change rarely.
func cacheControl(name string) string {
	switch {
	case strings.HasPrefix(name, "/assets/"):
		return cacheImmutable
	case strings.HasPrefix(name, "/sponsors/"):
		return cacheLogos
	case name == "/index.html":
		return cacheNone
	}
	return ""
}
