package viewer

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// HeadlessConfig controls the window-less frame loop
type HeadlessConfig struct {
	Hz     int
	Frames uint64 // 0 runs until ctx is done
}

// RunHeadless drives app on a ticker and renders every frame off screen.
// It returns nil after cfg.Frames frames or on quit, ctx.Err() on cancel.
func RunHeadless(ctx context.Context, app *App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return goerr.New("invalid headless hz", goerr.V("hz", cfg.Hz))
	}

	app.Start(ctx)
	defer app.Close()

	t := time.NewTicker(d)
	defer t.Stop()

	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Update(); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
			app.Surface().Render()
			frame++
			if cfg.Frames > 0 && frame >= cfg.Frames {
				return nil
			}
		}
	}
}
