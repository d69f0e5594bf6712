package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/erp-api/internal/application/analytics"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/infrastructure/document"
)

func seedStock(t *testing.T, store *document.MemoryStore, sku string, onHand int64) {
	t.Helper()
	now := time.Now().UTC()
	_, err := store.Insert(context.Background(), entity.CollectionStockLevel, &entity.StockLevel{
		ProductSKU:    sku,
		WarehouseCode: "MAIN",
		OnHand:        decimal.NewFromInt(onHand),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
}

func seedOrder(t *testing.T, store *document.MemoryStore, number, status string) {
	t.Helper()
	_, err := store.Insert(context.Background(), entity.CollectionSalesOrder, &entity.SalesOrder{
		Number:     number,
		CustomerID: "c-1",
		OrderDate:  time.Now().UTC(),
		Currency:   "USD",
		Status:     status,
		Items:      []entity.SalesOrderItem{},
	})
	require.NoError(t, err)
}

// Los totales cuentan cada colección y las órdenes abiertas son solo
// draft y confirmed.
func TestGetSummary_Totales(t *testing.T) {
	store := document.NewMemoryStore()
	ctx := context.Background()

	for _, sku := range []string{"A", "B", "C"} {
		_, err := store.Insert(ctx, entity.CollectionProduct, &entity.Product{SKU: sku, Name: sku})
		require.NoError(t, err)
	}
	_, err := store.Insert(ctx, entity.CollectionCustomer, &entity.Customer{Name: "ACME"})
	require.NoError(t, err)

	seedOrder(t, store, "SO-1", entity.OrderStatusDraft)
	seedOrder(t, store, "SO-2", entity.OrderStatusConfirmed)
	seedOrder(t, store, "SO-3", entity.OrderStatusDelivered)
	seedOrder(t, store, "SO-4", entity.OrderStatusClosed)

	seedStock(t, store, "A", 12)
	seedStock(t, store, "B", 0)

	uc := analytics.NewDashboardUseCase(store)
	res, err := uc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Totals.Products)
	assert.Equal(t, int64(1), res.Totals.Customers)
	assert.Equal(t, int64(0), res.Totals.Suppliers)
	assert.Equal(t, int64(2), res.Totals.OpenSalesOrders, "solo draft y confirmed cuentan como abiertas")
	assert.Equal(t, int64(2), res.Totals.StockItems)
}

// El widget de stock bajo incluye únicamente niveles con on_hand <= 0.
func TestGetSummary_StockBajo(t *testing.T) {
	store := document.NewMemoryStore()

	seedStock(t, store, "OK", 25)
	seedStock(t, store, "ZERO", 0)
	seedStock(t, store, "NEG", -3)

	uc := analytics.NewDashboardUseCase(store)
	res, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, res.LowStock, 2)
	skus := []string{}
	for _, d := range res.LowStock {
		skus = append(skus, d["product_sku"].(string))
		assert.NotEmpty(t, d["id"], "cada entrada lleva su id")
	}
	assert.ElementsMatch(t, []string{"ZERO", "NEG"}, skus)
}

// El widget se trunca a 10 entradas.
func TestGetSummary_StockBajoLimitado(t *testing.T) {
	store := document.NewMemoryStore()

	for i := 0; i < 15; i++ {
		seedStock(t, store, string(rune('A'+i)), 0)
	}

	uc := analytics.NewDashboardUseCase(store)
	res, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.LowStock, 10)
}

// Sin stock bajo el widget es una lista vacía, no null.
func TestGetSummary_SinStockBajo(t *testing.T) {
	store := document.NewMemoryStore()
	seedStock(t, store, "OK", 5)

	uc := analytics.NewDashboardUseCase(store)
	res, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, res.LowStock)
	assert.Empty(t, res.LowStock)
}

// Sin almacén configurado → ErrStoreUnavailable.
func TestGetSummary_SinAlmacen(t *testing.T) {
	uc := analytics.NewDashboardUseCase(nil)
	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
