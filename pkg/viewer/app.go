package viewer

import (
	"context"
	"fmt"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ErrQuit ends a frame loop without error
var ErrQuit = goerr.New("viewer quit")

// Action is a user command independent of the input device
type Action int

const (
	ActionCursorUp Action = iota
	ActionCursorDown
	ActionSelect
	ActionResetCamera
	ActionToggleWireframe
	ActionToggleFullscreen
	ActionQuit
)

// App wires a Selection to a Surface and keeps the sidebar cursor. Both
// frame drivers run it on a single goroutine.
type App struct {
	selection *Selection
	surface   *Surface
	cursor    int
	quit      bool
	ctx       context.Context
}

func NewApp(selection *Selection, surface *Surface) *App {
	surface.Attach(selection)
	return &App{
		selection: selection,
		surface:   surface,
		ctx:       context.Background(),
	}
}

func (a *App) Selection() *Selection { return a.selection }
func (a *App) Surface() *Surface     { return a.surface }
func (a *App) Cursor() int           { return a.cursor }

// Start kicks off the catalog fetch. ctx bounds the fetch and retries.
func (a *App) Start(ctx context.Context) {
	a.ctx = ctx
	a.selection.Load(ctx)
}

// Handle applies one user action
func (a *App) Handle(action Action) {
	switch action {
	case ActionCursorUp:
		if a.cursor > 0 {
			a.cursor--
		}
	case ActionCursorDown:
		if a.cursor < len(a.selection.Records())-1 {
			a.cursor++
		}
	case ActionSelect:
		if a.selection.Status() == LoadFailed {
			if a.selection.Retry(a.ctx) {
				logging.From(a.ctx).Info("retrying catalog fetch")
			}
			return
		}
		records := a.selection.Records()
		if a.cursor < len(records) {
			a.selection.Select(records[a.cursor])
		}
	case ActionResetCamera:
		a.surface.ResetCamera()
	case ActionToggleWireframe:
		a.surface.ToggleWireframe()
	case ActionToggleFullscreen:
		a.surface.ToggleFullscreen()
	case ActionQuit:
		a.quit = true
	}
}

// Update runs one frame of logic. It returns ErrQuit once a quit was requested.
func (a *App) Update() error {
	if a.quit {
		return ErrQuit
	}
	if a.selection.Poll() {
		logger := logging.From(a.ctx)
		switch a.selection.Status() {
		case LoadReady:
			logger.Info("catalog loaded", "count", len(a.selection.Records()))
			if a.cursor >= len(a.selection.Records()) {
				a.cursor = 0
			}
		case LoadFailed:
			logger.Warn("catalog fetch failed", "error", a.selection.Err())
		}
	}
	a.surface.Step()
	return nil
}

// SidebarItem is one line of the catalog list
type SidebarItem struct {
	Record   *model.ModelRecord
	Cursor   bool
	Selected bool
}

func (a *App) Sidebar() []SidebarItem {
	records := a.selection.Records()
	focused := a.selection.Focused()
	items := make([]SidebarItem, len(records))
	for i, r := range records {
		items[i] = SidebarItem{
			Record:   r,
			Cursor:   i == a.cursor,
			Selected: focused != nil && focused.ID == r.ID,
		}
	}
	return items
}

// StatusLine describes the catalog state for the overlay
func (a *App) StatusLine() string {
	switch a.selection.Status() {
	case LoadPending:
		return "Loading models..."
	case LoadFailed:
		return fmt.Sprintf("Failed to load models: %v (press Enter to retry)", a.selection.Err())
	}
	if len(a.selection.Records()) == 0 {
		return "No models available"
	}
	if focused := a.selection.Focused(); focused != nil {
		return focused.Title
	}
	return "Select a model"
}

// Close tears the surface down
func (a *App) Close() {
	a.surface.Close()
}
