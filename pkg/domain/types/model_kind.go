package types

import "fmt"

// ModelKind distinguishes a standalone model from a guided tour
type ModelKind string

const (
	ModelKindModel ModelKind = "model"
	ModelKindTour  ModelKind = "tour"
)

// AllModelKinds returns all valid model kinds
func AllModelKinds() []ModelKind {
	return []ModelKind{
		ModelKindModel,
		ModelKindTour,
	}
}

// IsValid checks if the model kind is valid
func (k ModelKind) IsValid() bool {
	switch k {
	case ModelKindModel,
		ModelKindTour:
		return true
	default:
		return false
	}
}

// String returns the string representation of the model kind
func (k ModelKind) String() string {
	return string(k)
}

// ParseModelKind parses a string into a ModelKind
func ParseModelKind(s string) (ModelKind, error) {
	kind := ModelKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid model kind: %s", s)
	}
	return kind, nil
}
