package handlers

import (
	"strings"

	"github.com/zaiko-app/zaiko/internal/models"
)

type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// ProductRequest is the create payload. A caller-supplied status is
// ignored: status is always derived from the stock levels.
type ProductRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"imageUrl"`
	Barcode      string          `json:"barcode"`
	PurchaseURL  string          `json:"purchaseUrl"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	OrderLotSize int             `json:"orderLotSize"`
	LeadTime     int             `json:"leadTime"`
	Supplier     SupplierRequest `json:"supplier"`
}

func (r ProductRequest) toProduct() models.Product {
	return models.Product{
		Name:         strings.TrimSpace(r.Name),
		Category:     strings.TrimSpace(r.Category),
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Barcode:      strings.TrimSpace(r.Barcode),
		PurchaseURL:  r.PurchaseURL,
		CurrentStock: r.CurrentStock,
		MinimumStock: r.MinimumStock,
		OrderLotSize: r.OrderLotSize,
		LeadTime:     r.LeadTime,
		Supplier: models.Supplier{
			Name:    strings.TrimSpace(r.Supplier.Name),
			Contact: r.Supplier.Contact,
		},
	}
}

// ProductUpdateRequest is the update payload. Pointer fields distinguish
// "not sent" from zero values so partial bodies merge onto the stored
// product.
type ProductUpdateRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	ImageURL     *string          `json:"imageUrl"`
	Barcode      *string          `json:"barcode"`
	PurchaseURL  *string          `json:"purchaseUrl"`
	CurrentStock *int             `json:"currentStock"`
	MinimumStock *int             `json:"minimumStock"`
	OrderLotSize *int             `json:"orderLotSize"`
	LeadTime     *int             `json:"leadTime"`
	Supplier     *SupplierRequest `json:"supplier"`
}

func (r ProductUpdateRequest) applyTo(p models.Product) models.Product {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		p.Category = strings.TrimSpace(*r.Category)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	if r.Barcode != nil {
		p.Barcode = strings.TrimSpace(*r.Barcode)
	}
	if r.PurchaseURL != nil {
		p.PurchaseURL = *r.PurchaseURL
	}
	if r.CurrentStock != nil {
		p.CurrentStock = *r.CurrentStock
	}
	if r.MinimumStock != nil {
		p.MinimumStock = *r.MinimumStock
	}
	if r.OrderLotSize != nil {
		p.OrderLotSize = *r.OrderLotSize
	}
	if r.LeadTime != nil {
		p.LeadTime = *r.LeadTime
	}
	if r.Supplier != nil {
		p.Supplier = models.Supplier{
			Name:    strings.TrimSpace(r.Supplier.Name),
			Contact: r.Supplier.Contact,
		}
	}
	return p
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SeedResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
