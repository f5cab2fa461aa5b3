package model

import (
	"github.com/immersivevr/immersive/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ModelRecord is one entry of the catalog
type ModelRecord struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Kind        types.ModelKind `json:"type"`
	Category    string          `json:"category"`
	Color       string          `json:"color"`
	ImageURL    string          `json:"imageUrl"`
	IsActive    bool            `json:"isActive"`
}

// Validate checks fields required before a record can be stored. ID is
// assigned by the store and is not checked.
func (r *ModelRecord) Validate() error {
	if r.Title == "" {
		return goerr.Wrap(ErrInvalidRecord, "title is required")
	}
	if !r.Kind.IsValid() {
		return goerr.Wrap(ErrInvalidRecord, "invalid model kind",
			goerr.V(TitleKey, r.Title),
			goerr.V(KindKey, r.Kind),
		)
	}
	return nil
}

// Copy returns a detached copy of the record
func (r *ModelRecord) Copy() *ModelRecord {
	if r == nil {
		return nil
	}
	copied := *r
	return &copied
}
