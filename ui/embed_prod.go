//go:build !dev

package ui

import "embed"

// DistFS holds the built portal front end.
//
//go:embed all:dist
var DistFS embed.FS
