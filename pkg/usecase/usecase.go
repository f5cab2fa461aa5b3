package usecase

import (
	"github.com/immersivevr/immersive/pkg/domain/interfaces"
)

type UseCases struct {
	repo    interfaces.Repository
	Catalog *CatalogUseCase
}

type Option func(*UseCases)

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Catalog = NewCatalogUseCase(repo)

	return uc
}
