// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/application/dto"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/domain/repository"
)

const lowStockLimit = 10 // entradas máximas del widget de stock bajo

// Estados que cuentan como orden de venta abierta.
var openOrderStatuses = []string{entity.OrderStatusDraft, entity.OrderStatusConfirmed}

// DashboardUseCase construye el resumen: conteos por colección y alerta de
// stock bajo (on_hand <= 0). Los conteos son en vivo al momento de la llamada.
type DashboardUseCase struct {
	store repository.DocumentStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DocumentStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary lanza los conteos y la consulta de stock bajo en paralelo y
// arma el DashboardResponse.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	type totalsResult struct {
		totals dto.DashboardTotals
		err    error
	}
	type lowStockResult struct {
		docs []repository.Document
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		totals, err := uc.collectTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		docs, err := uc.store.ListNumericAtMost(ctx, entity.CollectionStockLevel,
			"on_hand", decimal.Zero, lowStockLimit)
		lowCh <- lowStockResult{docs, err}
	}()

	totals := <-totalsCh
	low := <-lowCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", totals.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	lowStock := make([]map[string]any, 0, len(low.docs))
	for _, d := range low.docs {
		lowStock = append(lowStock, d.Tagged())
	}

	return &dto.DashboardResponse{Totals: totals.totals, LowStock: lowStock}, nil
}

func (uc *DashboardUseCase) collectTotals(ctx context.Context) (dto.DashboardTotals, error) {
	var totals dto.DashboardTotals
	counts := []struct {
		collection string
		dst        *int64
	}{
		{entity.CollectionProduct, &totals.Products},
		{entity.CollectionCustomer, &totals.Customers},
		{entity.CollectionSupplier, &totals.Suppliers},
		{entity.CollectionInvoice, &totals.Invoices},
		{entity.CollectionPayment, &totals.Payments},
		{entity.CollectionStockLevel, &totals.StockItems},
	}
	for _, c := range counts {
		n, err := uc.store.Count(ctx, c.collection)
		if err != nil {
			return totals, fmt.Errorf("count %s: %w", c.collection, err)
		}
		*c.dst = n
	}

	open, err := uc.store.CountByFieldIn(ctx, entity.CollectionSalesOrder, "status", openOrderStatuses)
	if err != nil {
		return totals, fmt.Errorf("count órdenes abiertas: %w", err)
	}
	totals.OpenSalesOrders = open
	return totals, nil
}
