//go:build dev

package ui

import "embed"

// DistFS is empty in development mode; the front end is served by the Vite
// dev server through a reverse proxy.
var DistFS embed.FS
