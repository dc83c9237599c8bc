package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stock status values. in_stock and need_purchase are derived from the
// stock levels on every write; ordered is only ever set by an external
// purchasing process.
const (
	StatusInStock      = "in_stock"
	StatusNeedPurchase = "need_purchase"
	StatusOrdered      = "ordered"
)

// Supplier is the vendor a product is reordered from.
type Supplier struct {
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact,omitempty" bson:"contact,omitempty"`
}

// Product represents a tracked inventory item. An empty barcode is never
// stored: bson omitempty drops it so the sparse unique index only sees
// products that actually have one.
type Product struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Category     string             `json:"category" bson:"category"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Barcode      string             `json:"barcode,omitempty" bson:"barcode,omitempty"`
	PurchaseURL  string             `json:"purchaseUrl,omitempty" bson:"purchaseUrl,omitempty"`
	CurrentStock int                `json:"currentStock" bson:"currentStock"`
	MinimumStock int                `json:"minimumStock" bson:"minimumStock"`
	OrderLotSize int                `json:"orderLotSize" bson:"orderLotSize"`
	LeadTime     int                `json:"leadTime" bson:"leadTime"`
	Status       string             `json:"status" bson:"status"`
	Supplier     Supplier           `json:"supplier" bson:"supplier"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DeriveStatus computes the stock status from the current and minimum
// stock levels. It overwrites whatever status the caller supplied.
func DeriveStatus(currentStock, minimumStock int) string {
	if currentStock <= minimumStock {
		return StatusNeedPurchase
	}
	return StatusInStock
}
