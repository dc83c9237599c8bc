package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/zaiko-app/zaiko/internal/config"
	api "github.com/zaiko-app/zaiko/internal/http"
	handler "github.com/zaiko-app/zaiko/internal/http/handlers"
	"github.com/zaiko-app/zaiko/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
}

// newRouter builds the router in development mode so the access gate stays
// out of the way; the gate has its own tests.
func newRouter() http.Handler {
	return api.NewRouter(config.Config{Env: "development"})
}

func clearAllProducts() {
	productRepo.Clear()
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/products", p)
}

// validProduct returns a creation payload that passes validation with
// currentStock above minimumStock.
func validProduct(name string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:         name,
		Category:     "日用品",
		CurrentStock: 8,
		MinimumStock: 4,
		OrderLotSize: 6,
		LeadTime:     2,
		Supplier:     handler.SupplierRequest{Name: "日用品卸売センター", Contact: "supplier1@example.com"},
	}
}
