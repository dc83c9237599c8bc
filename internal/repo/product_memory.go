package repo

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zaiko-app/zaiko/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository, used by the handler test suites.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) barcodeInUse(barcode string, except primitive.ObjectID) bool {
	if barcode == "" {
		return false
	}
	for _, p := range r.products {
		if p.Barcode == barcode && p.ID != except {
			return true
		}
	}
	return false
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if r.barcodeInUse(product.Barcode, primitive.NilObjectID) {
		return models.Product{}, ErrBarcodeTaken
	}

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) Find(filter ProductFilter) ([]models.Product, error) {
	var filtered []models.Product
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			filtered = append(filtered, p)
		}
	}

	// Stable sort keeps insertion order for identical timestamps.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})
	return filtered, nil
}

func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	for _, p := range r.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			if r.barcodeInUse(product.Barcode, product.ID) {
				return models.Product{}, ErrBarcodeTaken
			}
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id string) error {
	for i, p := range r.products {
		if p.ID.Hex() == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) ReplaceAll(products []models.Product) (int, error) {
	r.products = []models.Product{}
	now := time.Now().UTC()
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = now
		}
		r.products = append(r.products, p)
	}
	return len(r.products), nil
}

// Clear removes all products, used between tests.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
