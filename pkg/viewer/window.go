//go:build cgo

package viewer

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window
type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

// RunWindow opens a window and drives app until it is closed or quit.
// Call app.Start before RunWindow.
func RunWindow(app *App, cfg WindowConfig) error {
	if cfg.Title == "" {
		cfg.Title = "ImmersiveVR"
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 600
	}

	app.Surface().SetDisplay(ebitenDisplay{})
	defer app.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(&windowGame{app: app})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type ebitenDisplay struct{}

func (ebitenDisplay) IsFullscreen() bool    { return ebiten.IsFullscreen() }
func (ebitenDisplay) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

type windowGame struct {
	app   *App
	frame *ebiten.Image

	dragging     bool
	panning      bool
	lastX, lastY int
}

var keyActions = []struct {
	keys   []ebiten.Key
	action Action
}{
	{keys: []ebiten.Key{ebiten.KeyArrowUp}, action: ActionCursorUp},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, action: ActionCursorDown},
	{keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, action: ActionSelect},
	{keys: []ebiten.Key{ebiten.KeyR}, action: ActionResetCamera},
	{keys: []ebiten.Key{ebiten.KeyW}, action: ActionToggleWireframe},
	{keys: []ebiten.Key{ebiten.KeyF}, action: ActionToggleFullscreen},
	{keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, action: ActionQuit},
}

func (g *windowGame) Update() error {
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.app.Handle(ka.action)
				break
			}
		}
	}
	g.pollPointer()

	if err := g.app.Update(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *windowGame) pollPointer() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.app.Surface().Orbit(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.panning {
			g.app.Surface().Pan(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.panning = true
	} else {
		g.panning = false
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.app.Surface().Zoom(wy)
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	img := g.app.Surface().Render()
	if img == nil {
		return
	}
	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(img.Pixels())
	screen.DrawImage(g.frame, nil)

	g.drawOverlay(screen)
}

func (g *windowGame) drawOverlay(screen *ebiten.Image) {
	const lineHeight = 16
	y := 8
	ebitenutil.DebugPrintAt(screen, "3D Models", 8, y)
	y += lineHeight * 2

	for _, item := range g.app.Sidebar() {
		marker := "  "
		if item.Cursor {
			marker = "> "
		}
		suffix := ""
		if item.Selected {
			suffix = " *"
		}
		line := fmt.Sprintf("%s%s [%s] %s%s", marker, item.Record.Title, item.Record.Kind, item.Record.Category, suffix)
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += lineHeight
	}

	h := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, g.app.StatusLine(), 8, h-3*lineHeight)
	ebitenutil.DebugPrintAt(screen, "Up/Down: browse  Enter: select  Drag: rotate  Right drag: pan  Wheel: zoom  R: reset  W: wireframe  F: fullscreen  Q: quit", 8, h-2*lineHeight)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.Surface().Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
