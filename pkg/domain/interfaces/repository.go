package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Catalog() CatalogRepository

	Close() error
}
