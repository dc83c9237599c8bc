package repo

import (
	"errors"

	"github.com/zaiko-app/zaiko/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrBarcodeTaken    = errors.New("barcode already registered")
)

// ProductRepository defines the interface for product data operations.
// Implementations assign ids and maintain the createdAt/updatedAt
// timestamps themselves.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	Find(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	ReplaceAll(products []models.Product) (int, error)
}
