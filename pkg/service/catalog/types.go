package catalog

import (
	"context"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Client reads the catalog over the HTTP API
type Client interface {
	// ListModels returns the active records in catalog order
	ListModels(ctx context.Context) ([]*model.ModelRecord, error)
	// GetModel returns a single record. Unknown IDs yield ErrNotFound.
	GetModel(ctx context.Context, id int64) (*model.ModelRecord, error)
	// Appearance returns the render mapping of a record
	Appearance(ctx context.Context, id int64) (model.Appearance, error)
}

// ErrNotFound is returned when the API answers 404
var ErrNotFound = goerr.New("model not found")

// Context keys for error values
const (
	StatusKey    = "status"
	URLKey       = "url"
	RequestIDKey = "request_id"
)
