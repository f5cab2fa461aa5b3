package config

import (
	httpctrl "github.com/immersivevr/immersive/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Metrics holds CLI flags for the Prometheus endpoint
type Metrics struct {
	enabled bool
}

func (x *Metrics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Category:    "Metrics",
			Sources:     cli.EnvVars("IMMERSIVE_METRICS"),
			Destination: &x.enabled,
		},
	}
}

// Configure returns the HTTP collectors, or nil when metrics are disabled
func (x *Metrics) Configure() *httpctrl.Metrics {
	if !x.enabled {
		return nil
	}
	return httpctrl.NewMetrics()
}
