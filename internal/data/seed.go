package data

import "github.com/zaiko-app/zaiko/internal/models"

// SeedProducts returns the fixture set loaded by the seed endpoint. Ids and
// timestamps are assigned by the repository on insert.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Name:         "キッチンペーパー 4ロール",
			Category:     "日用品",
			Description:  "吸水性の高い2枚重ねのキッチンペーパー。料理や掃除に最適。",
			ImageURL:     "https://example.com/images/kitchen-paper.jpg",
			Barcode:      "4901234567890",
			PurchaseURL:  "https://example.com/shop/kitchen-paper",
			CurrentStock: 8,
			MinimumStock: 4,
			OrderLotSize: 6,
			LeadTime:     2,
			Status:       models.StatusInStock,
			Supplier: models.Supplier{
				Name:    "日用品卸売センター",
				Contact: "supplier1@example.com",
			},
		},
		{
			Name:         "食器用洗剤 800ml",
			Category:     "洗剤",
			Description:  "手肌にやさしい濃縮タイプの食器用洗剤。泡立ちが良く、油汚れもスッキリ。",
			ImageURL:     "https://example.com/images/dish-soap.jpg",
			Barcode:      "4901234567891",
			CurrentStock: 3,
			MinimumStock: 5,
			OrderLotSize: 4,
			LeadTime:     3,
			Status:       models.StatusNeedPurchase,
			Supplier: models.Supplier{
				Name:    "クリーンケア商事",
				Contact: "supplier2@example.com",
			},
		},
		{
			Name:         "トイレットペーパー 12ロール",
			Category:     "日用品",
			Description:  "ソフトな肌触りの3枚重ねトイレットペーパー。バルク包装。",
			ImageURL:     "https://example.com/images/toilet-paper.jpg",
			Barcode:      "4901234567892",
			CurrentStock: 10,
			MinimumStock: 6,
			OrderLotSize: 5,
			LeadTime:     2,
			Status:       models.StatusInStock,
			Supplier: models.Supplier{
				Name:    "日用品卸売センター",
				Contact: "supplier1@example.com",
			},
		},
		{
			Name:         "洗濯洗剤 詰め替え用 900g",
			Category:     "洗剤",
			Description:  "部屋干しでもにおわない抗菌タイプの洗濯洗剤。詰め替え用パック。",
			ImageURL:     "https://example.com/images/laundry-soap.jpg",
			Barcode:      "4901234567893",
			CurrentStock: 2,
			MinimumStock: 3,
			OrderLotSize: 3,
			LeadTime:     4,
			Status:       models.StatusOrdered,
			Supplier: models.Supplier{
				Name:    "クリーンケア商事",
				Contact: "supplier2@example.com",
			},
		},
		{
			Name:         "ゴミ袋 45L 50枚入",
			Category:     "日用品",
			Description:  "厚手で破れにくい半透明のゴミ袋。自治体指定サイズ。",
			CurrentStock: 12,
			MinimumStock: 5,
			OrderLotSize: 10,
			LeadTime:     1,
			Status:       models.StatusInStock,
			Supplier: models.Supplier{
				Name: "パッケージ商会",
			},
		},
	}
}
