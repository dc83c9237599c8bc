package handlers

import (
	"strings"

	"github.com/zaiko-app/zaiko/internal/models"
)

// validateProduct checks the field constraints and returns a map from
// field path to reason. The messages are part of the API contract and are
// returned to the client verbatim.
func validateProduct(p models.Product) map[string]string {
	details := map[string]string{}

	if strings.TrimSpace(p.Name) == "" {
		details["name"] = "商品名は必須です"
	}
	if strings.TrimSpace(p.Category) == "" {
		details["category"] = "カテゴリーは必須です"
	}
	if p.CurrentStock < 0 {
		details["currentStock"] = "在庫数は0以上である必要があります"
	}
	if p.MinimumStock < 0 {
		details["minimumStock"] = "最小在庫数は0以上である必要があります"
	}
	if p.OrderLotSize < 1 {
		details["orderLotSize"] = "発注ロットサイズは1以上である必要があります"
	}
	if p.LeadTime < 0 {
		details["leadTime"] = "納期日数は0以上である必要があります"
	}
	if strings.TrimSpace(p.Supplier.Name) == "" {
		details["supplier.name"] = "仕入先名は必須です"
	}

	return details
}
