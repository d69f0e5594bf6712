// Package inventory implementa el registro de transacciones de inventario y
// el mantenimiento incremental de los niveles de stock.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/erp-api/internal/application/validate"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/domain/repository"
)

// UseCase registra transacciones (in, out, transfer, adjustment) y aplica el
// cambio con signo al StockLevel del par (product_sku, warehouse_code).
type UseCase struct {
	store     repository.DocumentStore
	validator *validate.Validator
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.DocumentStore, validator *validate.Validator) *UseCase {
	return &UseCase{store: store, validator: validator}
}

// Result es el resultado del registro: id de la transacción y cambio aplicado.
type Result struct {
	ID            string
	AppliedChange decimal.Decimal
}

// AppliedChange calcula el cambio con signo según el tipo de transacción:
// in suma, out resta, adjustment conserva el signo de la cantidad, transfer
// no toca stock (el cliente emite dos transacciones in/out separadas).
func AppliedChange(txnType string, quantity decimal.Decimal) decimal.Decimal {
	switch txnType {
	case entity.TransactionTypeIn:
		return quantity
	case entity.TransactionTypeOut:
		return quantity.Neg()
	case entity.TransactionTypeAdjustment:
		return quantity
	default: // transfer
		return decimal.Zero
	}
}

// RecordTransaction valida e inserta la transacción (nunca se rechaza por
// stock insuficiente) y luego hace upsert del StockLevel correspondiente.
func (uc *UseCase) RecordTransaction(ctx context.Context, txn *entity.InventoryTransaction) (*Result, error) {
	if uc.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	txn.Normalize()
	if err := uc.validator.Struct(txn); err != nil {
		return nil, err
	}

	id, err := uc.store.Insert(ctx, entity.CollectionInventoryTransaction, txn)
	if err != nil {
		return nil, fmt.Errorf("insertar transacción: %w", err)
	}

	change := AppliedChange(txn.Type, txn.QuantityValue())
	if txn.Type != entity.TransactionTypeTransfer {
		if err := uc.upsertStockLevel(ctx, txn.ProductSKU, txn.WarehouseCode, change); err != nil {
			return nil, err
		}
	}

	return &Result{ID: id, AppliedChange: change}, nil
}

// upsertStockLevel suma change al on_hand del par, o crea el nivel si no
// existe. Lectura y escritura separadas, sin bloqueo ni compare-and-swap:
// dos peticiones concurrentes sobre el mismo par pueden perder una
// actualización.
func (uc *UseCase) upsertStockLevel(ctx context.Context, sku, warehouseCode string, change decimal.Decimal) error {
	lvl, err := uc.store.FindOneBy2(ctx, entity.CollectionStockLevel,
		"product_sku", sku, "warehouse_code", warehouseCode)
	if err != nil {
		return fmt.Errorf("consultar stock: %w", err)
	}

	now := time.Now().UTC()
	if lvl != nil {
		onHand := numericValue(lvl.Data["on_hand"])
		patch := map[string]any{
			"on_hand":    onHand.Add(change),
			"updated_at": now,
		}
		if err := uc.store.UpdateByID(ctx, entity.CollectionStockLevel, lvl.ID, patch); err != nil {
			return fmt.Errorf("actualizar stock: %w", err)
		}
		return nil
	}

	_, err = uc.store.Insert(ctx, entity.CollectionStockLevel, &entity.StockLevel{
		ProductSKU:    sku,
		WarehouseCode: warehouseCode,
		OnHand:        change,
		Reserved:      decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return fmt.Errorf("crear stock: %w", err)
	}
	return nil
}

// numericValue interpreta un valor numérico de un documento almacenado
// (número JSON, string decimal o json.Number); cualquier otra cosa vale 0.
func numericValue(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
