package model

import "github.com/m-mizutani/goerr/v2"

// Validation errors
var (
	ErrInvalidRecord = goerr.New("invalid model record")
)

// Context keys for error values
const (
	TitleKey = "title"
	KindKey  = "kind"
)
