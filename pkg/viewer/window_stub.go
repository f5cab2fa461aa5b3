//go:build !cgo

package viewer

import "github.com/m-mizutani/goerr/v2"

// WindowConfig controls the desktop window
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// RunWindow is unavailable without cgo; use RunHeadless instead
func RunWindow(_ *App, _ WindowConfig) error {
	return goerr.New("window mode requires cgo (build with CGO_ENABLED=1) or --headless")
}
