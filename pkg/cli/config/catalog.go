package config

import (
	"context"
	_ "embed"
	"log/slog"
	"os"

	"github.com/immersivevr/immersive/pkg/domain/interfaces"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/immersivevr/immersive/pkg/repository/memory"
	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

//go:embed catalog.toml
var defaultCatalog []byte

// catalogDocument is the TOML layout of a catalog file
type catalogDocument struct {
	Models []catalogEntry `toml:"model"`
}

type catalogEntry struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Type        string `toml:"type"`
	Category    string `toml:"category"`
	Color       string `toml:"color"`
	ImageURL    string `toml:"image_url"`
	// Active defaults to true when omitted
	Active *bool `toml:"active"`
}

func (e *catalogEntry) toRecord() (*model.ModelRecord, error) {
	kind, err := types.ParseModelKind(e.Type)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCatalog, err.Error(), goerr.V(model.TitleKey, e.Title))
	}

	active := true
	if e.Active != nil {
		active = *e.Active
	}

	record := &model.ModelRecord{
		Title:       e.Title,
		Description: e.Description,
		Kind:        kind,
		Category:    e.Category,
		Color:       e.Color,
		ImageURL:    e.ImageURL,
		IsActive:    active,
	}
	if err := record.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidCatalog, err.Error(), goerr.V(model.TitleKey, e.Title))
	}
	return record, nil
}

// ParseCatalog decodes and validates a TOML catalog document. Records are
// returned in file order without IDs.
func ParseCatalog(data []byte) ([]*model.ModelRecord, error) {
	var doc catalogDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(ErrInvalidCatalog, "failed to parse TOML catalog", goerr.V("error", err.Error()))
	}

	records := make([]*model.ModelRecord, 0, len(doc.Models))
	for i := range doc.Models {
		record, err := doc.Models[i].toRecord()
		if err != nil {
			return nil, goerr.Wrap(err, "invalid catalog entry", goerr.V(EntryIndexKey, i))
		}
		records = append(records, record)
	}
	return records, nil
}

// DefaultCatalog returns the embedded seed catalog
func DefaultCatalog() []*model.ModelRecord {
	records, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic("embedded catalog is broken: " + err.Error())
	}
	return records
}

// LoadCatalog reads a catalog file from disk
func LoadCatalog(path string) ([]*model.ModelRecord, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(CatalogPathKey, path))
	}

	records, err := ParseCatalog(data)
	if err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V(CatalogPathKey, path))
	}
	return records, nil
}

// Catalog holds CLI flags for the seed catalog
type Catalog struct {
	file string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-file",
			Usage:       "TOML file replacing the built-in seed catalog",
			Category:    "Catalog",
			Sources:     cli.EnvVars("IMMERSIVE_CATALOG_FILE"),
			Destination: &c.file,
		},
	}
}

// File returns the configured catalog file path, empty for the built-in one
func (c *Catalog) File() string {
	return c.file
}

// LogValue implements slog.LogValuer
func (c *Catalog) LogValue() slog.Value {
	source := c.file
	if source == "" {
		source = "(built-in)"
	}
	return slog.GroupValue(slog.String("source", source))
}

// Records returns the seed records from the configured file, or the
// built-in catalog when no file is set.
func (c *Catalog) Records() ([]*model.ModelRecord, error) {
	if c.file == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(c.file)
}

// Configure creates the in-memory repository and seeds it. The caller is
// responsible for calling Close() on the returned repository.
func (c *Catalog) Configure(ctx context.Context) (interfaces.Repository, error) {
	records, err := c.Records()
	if err != nil {
		return nil, err
	}

	repo := memory.New()
	if _, err := usecase.NewCatalogUseCase(repo).Seed(ctx, records); err != nil {
		return nil, goerr.Wrap(err, "failed to seed catalog")
	}

	logging.From(ctx).Info("Using in-memory catalog", "catalog", c, "records", len(records))
	return repo, nil
}
