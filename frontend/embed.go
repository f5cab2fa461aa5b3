// Package frontend holds the single page UI served by the HTTP controller.
package frontend

import "embed"

// StaticFiles contains the built SPA under dist/
//
//go:embed dist
var StaticFiles embed.FS
