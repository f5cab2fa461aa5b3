// Package viewer is the desktop model viewer: catalog selection state, the
// render surface and the frame drivers (headless loop and ebiten window).
package viewer
