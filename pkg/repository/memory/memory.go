package memory

import (
	"github.com/immersivevr/immersive/pkg/domain/interfaces"
)

// Memory keeps everything in process memory. Its lifetime is the process
// lifetime.
type Memory struct {
	catalog *catalogRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		catalog: newCatalogRepository(),
	}
}

func (m *Memory) Catalog() interfaces.CatalogRepository {
	return m.catalog
}

func (m *Memory) Close() error {
	return nil
}
