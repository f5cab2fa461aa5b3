package cli

import (
	"context"
	"errors"
	"time"

	"github.com/immersivevr/immersive/pkg/service/catalog"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/immersivevr/immersive/pkg/viewer"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const defaultAPIURL = "http://localhost:8080"

// apiFlags are shared by commands that talk to a running server
func apiFlags(apiURL *string, timeout *time.Duration) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the catalog API",
			Value:       defaultAPIURL,
			Category:    "API",
			Sources:     cli.EnvVars("IMMERSIVE_API_URL"),
			Destination: apiURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of a single API request",
			Value:       catalog.DefaultTimeout,
			Category:    "API",
			Sources:     cli.EnvVars("IMMERSIVE_API_TIMEOUT"),
			Destination: timeout,
		},
	}
}

func cmdView() *cli.Command {
	var (
		apiURL   string
		timeout  time.Duration
		headless bool
		hz       int
		frames   uint64
		width    int
		height   int
	)

	flags := apiFlags(&apiURL, &timeout)
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "headless",
			Usage:       "Render off screen without opening a window",
			Category:    "Viewer",
			Sources:     cli.EnvVars("IMMERSIVE_VIEW_HEADLESS"),
			Destination: &headless,
		},
		&cli.IntFlag{
			Name:        "hz",
			Usage:       "Frame rate of the headless loop",
			Value:       60,
			Category:    "Viewer",
			Destination: &hz,
		},
		&cli.Uint64Flag{
			Name:        "frames",
			Usage:       "Stop the headless loop after this many frames (0 runs until interrupted)",
			Category:    "Viewer",
			Destination: &frames,
		},
		&cli.IntFlag{
			Name:        "width",
			Usage:       "Initial surface width in pixels",
			Value:       960,
			Category:    "Viewer",
			Destination: &width,
		},
		&cli.IntFlag{
			Name:        "height",
			Usage:       "Initial surface height in pixels",
			Value:       640,
			Category:    "Viewer",
			Destination: &height,
		},
	)

	return &cli.Command{
		Name:    "view",
		Aliases: []string{"v"},
		Usage:   "Open the 3D viewer against a running catalog API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if width <= 0 || height <= 0 {
				return goerr.New("surface size must be positive", goerr.V("width", width), goerr.V("height", height))
			}

			client, err := catalog.New(apiURL, catalog.WithTimeout(timeout))
			if err != nil {
				return goerr.Wrap(err, "failed to create catalog client")
			}

			app := viewer.NewApp(viewer.NewSelection(client), viewer.NewSurface(width, height))
			logging.From(ctx).Info("Starting viewer",
				"api_url", apiURL,
				"headless", headless,
				"width", width,
				"height", height,
			)

			if headless {
				ctx, stop := signalContext(ctx)
				defer stop()
				err := viewer.RunHeadless(ctx, app, viewer.HeadlessConfig{Hz: hz, Frames: frames})
				if errors.Is(err, context.Canceled) {
					logging.From(ctx).Info("Viewer interrupted")
					return nil
				}
				return err
			}

			app.Start(ctx)
			return viewer.RunWindow(app, viewer.WindowConfig{
				Title:  "ImmersiveVR",
				Width:  width,
				Height: height,
			})
		},
	}
}
