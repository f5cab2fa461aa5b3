package cli

import (
	"context"

	"github.com/immersivevr/immersive/pkg/cli/config"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate the catalog seed file",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			records, err := catalogCfg.Records()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			active := 0
			for _, r := range records {
				if r.IsActive {
					active++
				}
				a := model.AppearanceFor(r)
				logger.Info("Model validated",
					"title", r.Title,
					"type", r.Kind,
					"shape", a.Shape,
					"color", a.Color.Hex(),
				)
			}

			logger.Info("Catalog validation passed",
				"catalog", &catalogCfg,
				"record_count", len(records),
				"active_count", active,
			)
			return nil
		},
	}
}
