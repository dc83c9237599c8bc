package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zaiko-app/zaiko/internal/models"
	repo "github.com/zaiko-app/zaiko/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory; status is derived from the stock levels
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	product := req.toProduct()
	if details := validateProduct(product); len(details) > 0 {
		validationError(w, details)
		return
	}
	product.Status = models.DeriveStatus(product.CurrentStock, product.MinimumStock)

	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrBarcodeTaken) {
			validationError(w, map[string]string{"barcode": "バーコードは既に登録されています"})
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists products, optionally filtered, newest update first
// @Tags products
// @Produce json
// @Param category query string false "Exact category match"
// @Param status query string false "Exact status match"
// @Param search query string false "Case-insensitive name substring"
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repo.ProductFilter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
	}

	products, err := productRepo.Find(filter)
	if err != nil {
		serverError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Merges a partial or full body onto the stored product and revalidates it
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		serverError(w, err)
		return
	}

	merged := req.applyTo(existing)
	if details := validateProduct(merged); len(details) > 0 {
		validationError(w, details)
		return
	}
	merged.Status = models.DeriveStatus(merged.CurrentStock, merged.MinimumStock)

	updated, err := productRepo.Update(merged)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			errorJSON(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, repo.ErrBarcodeTaken):
			validationError(w, map[string]string{"barcode": "バーコードは既に登録されています"})
		default:
			serverError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			errorJSON(w, http.StatusNotFound, "Product not found")
			return
		}
		serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
