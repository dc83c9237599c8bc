package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaiko-app/zaiko/internal/models"
)

func sampleProduct(name, category, status string) models.Product {
	return models.Product{
		Name:         name,
		Category:     category,
		CurrentStock: 8,
		MinimumStock: 4,
		OrderLotSize: 2,
		LeadTime:     1,
		Status:       status,
		Supplier:     models.Supplier{Name: "日用品卸売センター"},
	}
}

func TestInMemoryCreateAndGet(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, err := r.Create(sampleProduct("キッチンペーパー 4ロール", "日用品", models.StatusInStock))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero(), "create must assign an id")
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := r.GetByID(created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInMemoryGetByID_Missing(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.GetByID("64f000000000000000000000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestInMemoryBarcodeUniqueness(t *testing.T) {
	r := NewInMemoryProductRepository()

	first := sampleProduct("食器用洗剤", "洗剤", models.StatusInStock)
	first.Barcode = "4901234567891"
	_, err := r.Create(first)
	require.NoError(t, err)

	dup := sampleProduct("別の洗剤", "洗剤", models.StatusInStock)
	dup.Barcode = "4901234567891"
	_, err = r.Create(dup)
	assert.ErrorIs(t, err, ErrBarcodeTaken)

	// absent barcodes never conflict with each other
	_, err = r.Create(sampleProduct("ゴミ袋", "日用品", models.StatusInStock))
	require.NoError(t, err)
	_, err = r.Create(sampleProduct("スポンジ", "日用品", models.StatusInStock))
	require.NoError(t, err)
}

func TestInMemoryUpdate_BarcodeConflictAndSelf(t *testing.T) {
	r := NewInMemoryProductRepository()

	a := sampleProduct("商品A", "日用品", models.StatusInStock)
	a.Barcode = "4901234567890"
	a, err := r.Create(a)
	require.NoError(t, err)

	b := sampleProduct("商品B", "日用品", models.StatusInStock)
	b.Barcode = "4901234567891"
	b, err = r.Create(b)
	require.NoError(t, err)

	// keeping its own barcode is not a conflict
	a.Name = "商品A 改"
	_, err = r.Update(a)
	assert.NoError(t, err)

	// taking another product's barcode is
	b.Barcode = "4901234567890"
	_, err = r.Update(b)
	assert.ErrorIs(t, err, ErrBarcodeTaken)
}

func TestInMemoryFind_ConjunctiveFilter(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.Create(sampleProduct("商品1", "A", models.StatusInStock))
	require.NoError(t, err)
	_, err = r.Create(sampleProduct("商品2", "A", models.StatusNeedPurchase))
	require.NoError(t, err)
	_, err = r.Create(sampleProduct("商品3", "B", models.StatusInStock))
	require.NoError(t, err)

	got, err := r.Find(ProductFilter{Category: "A", Status: models.StatusInStock})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "商品1", got[0].Name)
}

func TestInMemoryFind_SearchSubstring(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.Create(sampleProduct("キッチンペーパー 4ロール", "日用品", models.StatusInStock))
	require.NoError(t, err)
	_, err = r.Create(sampleProduct("Kitchen Paper Towel", "日用品", models.StatusInStock))
	require.NoError(t, err)
	_, err = r.Create(sampleProduct("食器用洗剤", "洗剤", models.StatusInStock))
	require.NoError(t, err)

	got, err := r.Find(ProductFilter{Search: "ペーパー"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "キッチンペーパー 4ロール", got[0].Name)

	got, err = r.Find(ProductFilter{Search: "PAPER"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kitchen Paper Towel", got[0].Name)
}

func TestInMemoryFind_SortsByUpdatedAtDescending(t *testing.T) {
	r := NewInMemoryProductRepository()

	older, err := r.Create(sampleProduct("古い商品", "日用品", models.StatusInStock))
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = r.Create(sampleProduct("新しい商品", "日用品", models.StatusInStock))
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	older.Name = "更新された商品"
	_, err = r.Update(older)
	require.NoError(t, err)

	got, err := r.Find(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "更新された商品", got[0].Name, "the most recently modified product comes first")
}

func TestInMemoryDelete(t *testing.T) {
	r := NewInMemoryProductRepository()

	created, err := r.Create(sampleProduct("商品", "日用品", models.StatusInStock))
	require.NoError(t, err)

	require.NoError(t, r.Delete(created.ID.Hex()))

	_, err = r.GetByID(created.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)

	// a second delete is not an idempotent success
	assert.ErrorIs(t, r.Delete(created.ID.Hex()), ErrProductNotFound)
}

func TestInMemoryReplaceAll(t *testing.T) {
	r := NewInMemoryProductRepository()

	_, err := r.Create(sampleProduct("消える商品", "日用品", models.StatusInStock))
	require.NoError(t, err)

	count, err := r.ReplaceAll([]models.Product{
		sampleProduct("商品1", "日用品", models.StatusInStock),
		sampleProduct("商品2", "洗剤", models.StatusNeedPurchase),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := r.Find(ProductFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.False(t, p.ID.IsZero())
		assert.NotEqual(t, "消える商品", p.Name)
	}
}
