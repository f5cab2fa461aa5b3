package interfaces

import (
	"context"

	"github.com/immersivevr/immersive/pkg/domain/model"
)

// CatalogRepository stores model records. It is append-only: there is no
// update or delete.
type CatalogRepository interface {
	// Create stores a record under the next sequential ID and returns the stored copy
	Create(ctx context.Context, record *model.ModelRecord) (*model.ModelRecord, error)

	// Get retrieves a record by ID regardless of its active flag
	Get(ctx context.Context, id int64) (*model.ModelRecord, error)

	// List retrieves active records in insertion order
	List(ctx context.Context) ([]*model.ModelRecord, error)

	// Count returns the number of stored records, active or not
	Count(ctx context.Context) (int, error)
}
