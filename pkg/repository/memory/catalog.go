package memory

import (
	"context"
	"sync"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type catalogRepository struct {
	mu      sync.RWMutex
	records map[int64]*model.ModelRecord
	order   []int64
	nextID  int64
}

func newCatalogRepository() *catalogRepository {
	return &catalogRepository{
		records: make(map[int64]*model.ModelRecord),
		nextID:  1,
	}
}

func (r *catalogRepository) Create(ctx context.Context, record *model.ModelRecord) (*model.ModelRecord, error) {
	if record == nil {
		return nil, goerr.New("record is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := record.Copy()
	created.ID = r.nextID
	r.nextID++

	r.records[created.ID] = created
	r.order = append(r.order, created.ID)
	return created.Copy(), nil
}

func (r *catalogRepository) Get(ctx context.Context, id int64) (*model.ModelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "model record not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return record.Copy(), nil
}

func (r *catalogRepository) List(ctx context.Context) ([]*model.ModelRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*model.ModelRecord, 0, len(r.order))
	for _, id := range r.order {
		record := r.records[id]
		if !record.IsActive {
			continue
		}
		records = append(records, record.Copy())
	}

	return records, nil
}

func (r *catalogRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.records), nil
}
