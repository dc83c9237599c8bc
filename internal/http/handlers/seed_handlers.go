package handlers

import (
	"log"
	"net/http"

	"github.com/zaiko-app/zaiko/internal/data"
)

// SeedProductsHandler godoc
// @Summary Reset the collection to the fixture data
// @Tags seed
// @Produce json
// @Success 200 {object} SeedResult
// @Failure 500 {object} ErrorResponse
// @Router /api/seed [post]
func SeedProductsHandler(w http.ResponseWriter, r *http.Request) {
	count, err := productRepo.ReplaceAll(data.SeedProducts())
	if err != nil {
		log.Printf("seeding error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "データのシードに失敗しました")
		return
	}

	writeJSON(w, http.StatusOK, SeedResult{
		Message: "商品データを正常にシードしました",
		Count:   count,
	})
}
