package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrModelNotFound = errors.New("model not found")
)

// Context keys for error values
const (
	ModelIDKey = "model_id"
)
