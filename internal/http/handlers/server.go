package handlers

import (
	repo "github.com/zaiko-app/zaiko/internal/repo"
)

var productRepo repo.ProductRepository

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}
