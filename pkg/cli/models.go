package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/service/catalog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdModels() *cli.Command {
	var apiURL string
	var timeout time.Duration

	newClient := func() (catalog.Client, error) {
		client, err := catalog.New(apiURL, catalog.WithTimeout(timeout))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create catalog client")
		}
		return client, nil
	}

	return &cli.Command{
		Name:    "models",
		Aliases: []string{"m"},
		Usage:   "Query the catalog API of a running server",
		Flags:   apiFlags(&apiURL, &timeout),
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List active models in catalog order",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, err := newClient()
					if err != nil {
						return err
					}
					records, err := client.ListModels(ctx)
					if err != nil {
						return goerr.Wrap(err, "failed to list models")
					}
					printRecordList(c.Root().Writer, records)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Show one model and the primitive the viewer draws for it",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.NArg() != 1 {
						return goerr.New("exactly one model id is required")
					}
					id, err := strconv.ParseInt(c.Args().First(), 10, 64)
					if err != nil {
						return goerr.Wrap(err, "invalid model id", goerr.V("id", c.Args().First()))
					}

					client, err := newClient()
					if err != nil {
						return err
					}
					record, err := client.GetModel(ctx, id)
					if err != nil {
						return goerr.Wrap(err, "failed to get model", goerr.V("id", id))
					}
					appearance, err := client.Appearance(ctx, id)
					if err != nil {
						return goerr.Wrap(err, "failed to get appearance", goerr.V("id", id))
					}
					printRecord(c.Root().Writer, record, appearance)
					return nil
				},
			},
		},
	}
}

var (
	idColor    = color.New(color.FgHiBlack)
	titleColor = color.New(color.Bold)
	kindColor  = color.New(color.FgCyan)
	labelColor = color.New(color.FgHiBlack)
)

func printRecordList(w io.Writer, records []*model.ModelRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No models available")
		return
	}
	for _, r := range records {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			idColor.Sprintf("%3d", r.ID),
			titleColor.Sprint(r.Title),
			kindColor.Sprint(r.Kind),
			r.Category,
		)
	}
}

func printRecord(w io.Writer, r *model.ModelRecord, a model.Appearance) {
	field := func(label string, value any) {
		fmt.Fprintf(w, "%s %v\n", labelColor.Sprintf("%-12s", label+":"), value)
	}
	fmt.Fprintln(w, titleColor.Sprint(r.Title))
	field("ID", r.ID)
	field("Type", kindColor.Sprint(r.Kind))
	field("Category", r.Category)
	field("Description", r.Description)
	field("Color", r.Color)
	field("Image", r.ImageURL)
	field("Active", r.IsActive)
	field("Shape", a.Shape)
	field("Render", a.Color.Hex()+" / "+a.EdgeColor.Hex())
}
