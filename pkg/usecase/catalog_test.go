package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/immersivevr/immersive/pkg/domain/interfaces"
	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/immersivevr/immersive/pkg/repository/memory"
	"github.com/immersivevr/immersive/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func seedRecords() []*model.ModelRecord {
	return []*model.ModelRecord{
		{Title: "Vintage Camera", Kind: types.ModelKindModel, Category: "Electronics", Color: "#8B5CF6", IsActive: true},
		{Title: "Space Explorer", Kind: types.ModelKindModel, Category: "Vehicle", Color: "#06B6D4", IsActive: true},
		{Title: "VR Headset Pro", Kind: types.ModelKindModel, Category: "Technology", Color: "#6366F1", IsActive: true},
		{Title: "Museum Gallery", Kind: types.ModelKindTour, Category: "Architecture", Color: "#F59E0B", IsActive: true},
	}
}

func TestCatalogUseCase_SeedAndList(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	created, err := uc.Catalog.Seed(ctx, seedRecords())
	gt.NoError(t, err).Required()
	gt.Array(t, created).Length(4)

	models, err := uc.Catalog.ListModels(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, models).Length(4)

	for i, m := range models {
		gt.Value(t, m.ID).Equal(int64(i + 1))
		gt.B(t, m.IsActive).True()
		if m.Title == "Museum Gallery" {
			gt.Value(t, m.Kind).Equal(types.ModelKindTour)
		} else {
			gt.Value(t, m.Kind).Equal(types.ModelKindModel)
		}
	}
}

func TestCatalogUseCase_SeedRejectsInvalidWithoutPartialWrite(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	records := seedRecords()
	records[2].Kind = types.ModelKind("hologram")

	_, err := uc.Catalog.Seed(ctx, records)
	gt.Value(t, err).NotNil()
	gt.B(t, errors.Is(err, model.ErrInvalidRecord)).True()

	count, err := repo.Catalog().Count(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, count).Equal(0)
}

func TestCatalogUseCase_SeedRejectsNil(t *testing.T) {
	uc := usecase.New(memory.New())
	_, err := uc.Catalog.Seed(context.Background(), []*model.ModelRecord{nil})
	gt.Value(t, err).NotNil()
}

func TestCatalogUseCase_GetModel(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	records := seedRecords()
	_, err := uc.Catalog.Seed(ctx, records)
	gt.NoError(t, err).Required()

	t.Run("every seeded position resolves to its record", func(t *testing.T) {
		for i, want := range records {
			got, err := uc.Catalog.GetModel(ctx, int64(i+1))
			gt.NoError(t, err).Required()
			gt.Value(t, got.Title).Equal(want.Title)
		}
	})

	t.Run("ids outside the seed range are not found", func(t *testing.T) {
		for _, id := range []int64{0, 5, 999, -3} {
			_, err := uc.Catalog.GetModel(ctx, id)
			gt.Value(t, err).NotNil()
			gt.B(t, errors.Is(err, usecase.ErrModelNotFound)).True()
		}
	})
}

func TestCatalogUseCase_InactiveRecords(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())

	records := seedRecords()
	records[1].IsActive = false
	_, err := uc.Catalog.Seed(ctx, records)
	gt.NoError(t, err).Required()

	models, err := uc.Catalog.ListModels(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, models).Length(3)
	for _, m := range models {
		gt.Value(t, m.Title).NotEqual("Space Explorer")
	}

	hidden, err := uc.Catalog.GetModel(ctx, 2)
	gt.NoError(t, err).Required()
	gt.Value(t, hidden.Title).Equal("Space Explorer")

	size, err := uc.Catalog.CatalogSize(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, size).Equal(4)
}

func TestCatalogUseCase_Appearance(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(memory.New())
	_, err := uc.Catalog.Seed(ctx, seedRecords())
	gt.NoError(t, err).Required()

	tests := []struct {
		id    int64
		shape types.Shape
		color model.Color
	}{
		{1, types.ShapeBox, model.ColorViolet},
		{2, types.ShapeSphere, model.ColorCyan},
		{3, types.ShapeCylinder, model.ColorIndigo},
		{4, types.ShapeBox, model.ColorAmber},
	}
	for _, tt := range tests {
		got, err := uc.Catalog.Appearance(ctx, tt.id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Shape).Equal(tt.shape)
		gt.Value(t, got.Color).Equal(tt.color)
	}

	_, err = uc.Catalog.Appearance(ctx, 999)
	gt.B(t, errors.Is(err, usecase.ErrModelNotFound)).True()
}

type failingRepository struct {
	err error
}

func (r *failingRepository) Catalog() interfaces.CatalogRepository { return &failingCatalog{err: r.err} }
func (r *failingRepository) Close() error                          { return nil }

type failingCatalog struct {
	err error
}

func (c *failingCatalog) Create(ctx context.Context, record *model.ModelRecord) (*model.ModelRecord, error) {
	return nil, c.err
}
func (c *failingCatalog) Get(ctx context.Context, id int64) (*model.ModelRecord, error) {
	return nil, c.err
}
func (c *failingCatalog) List(ctx context.Context) ([]*model.ModelRecord, error) {
	return nil, c.err
}
func (c *failingCatalog) Count(ctx context.Context) (int, error) {
	return 0, c.err
}

func TestCatalogUseCase_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	storeErr := goerr.New("store is unavailable")
	uc := usecase.New(&failingRepository{err: storeErr})

	_, err := uc.Catalog.ListModels(ctx)
	gt.B(t, errors.Is(err, storeErr)).True()

	_, err = uc.Catalog.GetModel(ctx, 1)
	gt.B(t, errors.Is(err, storeErr)).True()
	gt.B(t, errors.Is(err, usecase.ErrModelNotFound)).False()

	_, err = uc.Catalog.Seed(ctx, seedRecords())
	gt.B(t, errors.Is(err, storeErr)).True()
}
