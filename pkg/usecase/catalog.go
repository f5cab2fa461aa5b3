package usecase

import (
	"context"
	"errors"

	"github.com/immersivevr/immersive/pkg/domain/interfaces"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/repository/memory"
	"github.com/immersivevr/immersive/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type CatalogUseCase struct {
	repo interfaces.Repository
}

func NewCatalogUseCase(repo interfaces.Repository) *CatalogUseCase {
	return &CatalogUseCase{
		repo: repo,
	}
}

// Seed validates all records first and then creates them in order, so a bad
// entry leaves the catalog untouched.
func (uc *CatalogUseCase) Seed(ctx context.Context, records []*model.ModelRecord) ([]*model.ModelRecord, error) {
	for i, record := range records {
		if record == nil {
			return nil, goerr.New("seed record is nil", goerr.V("index", i))
		}
		if err := record.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid seed record", goerr.V("index", i))
		}
	}

	created := make([]*model.ModelRecord, 0, len(records))
	for _, record := range records {
		c, err := uc.repo.Catalog().Create(ctx, record)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create seed record", goerr.V(model.TitleKey, record.Title))
		}
		created = append(created, c)
	}

	logging.From(ctx).Info("catalog seeded", "count", len(created))
	return created, nil
}

// ListModels returns active records in insertion order
func (uc *CatalogUseCase) ListModels(ctx context.Context) ([]*model.ModelRecord, error) {
	records, err := uc.repo.Catalog().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list models")
	}
	return records, nil
}

// GetModel returns a record by ID, active or not
func (uc *CatalogUseCase) GetModel(ctx context.Context, id int64) (*model.ModelRecord, error) {
	record, err := uc.repo.Catalog().Get(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			return nil, goerr.Wrap(ErrModelNotFound, "model not found", goerr.V(ModelIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get model", goerr.V(ModelIDKey, id))
	}
	return record, nil
}

// Appearance returns the render surface mapping for a record
func (uc *CatalogUseCase) Appearance(ctx context.Context, id int64) (model.Appearance, error) {
	record, err := uc.GetModel(ctx, id)
	if err != nil {
		return model.Appearance{}, err
	}
	return model.AppearanceFor(record), nil
}

// CatalogSize returns the number of stored records
func (uc *CatalogUseCase) CatalogSize(ctx context.Context) (int, error) {
	n, err := uc.repo.Catalog().Count(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count models")
	}
	return n, nil
}
