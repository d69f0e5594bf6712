// Package catalog implementa el caso de uso genérico de datos maestros y
// documentos comerciales: validar, verificar la clave de negocio si la hay,
// insertar y listar. Cada recurso de la API se describe con una Definition.
package catalog

import (
	"context"
	"fmt"

	"github.com/invorya/erp-api/internal/application/validate"
	"github.com/invorya/erp-api/internal/domain"
	"github.com/invorya/erp-api/internal/domain/entity"
	"github.com/invorya/erp-api/internal/domain/repository"
)

// Definition ata un recurso a su colección y, si aplica, a su clave de negocio.
type Definition struct {
	Collection      string
	UniqueField     string // vacío = sin verificación de unicidad
	ConflictMessage string // mensaje para el cliente cuando la clave ya existe
}

// Definiciones de los recursos expuestos por la API.
var (
	Products    = Definition{Collection: entity.CollectionProduct, UniqueField: "sku", ConflictMessage: "SKU already exists"}
	Customers   = Definition{Collection: entity.CollectionCustomer}
	Suppliers   = Definition{Collection: entity.CollectionSupplier}
	Taxes       = Definition{Collection: entity.CollectionTax}
	Warehouses  = Definition{Collection: entity.CollectionWarehouse, UniqueField: "code", ConflictMessage: "Warehouse code already exists"}
	SalesOrders = Definition{Collection: entity.CollectionSalesOrder, UniqueField: "number", ConflictMessage: "Order number already exists"}
	Invoices    = Definition{Collection: entity.CollectionInvoice, UniqueField: "number", ConflictMessage: "Invoice number already exists"}
	Payments    = Definition{Collection: entity.CollectionPayment, UniqueField: "number", ConflictMessage: "Payment number already exists"}
	StockLevels = Definition{Collection: entity.CollectionStockLevel} // solo listado; se crea vía transacciones
)

// UseCase crea y lista documentos de cualquier recurso del catálogo.
type UseCase struct {
	store     repository.DocumentStore
	validator *validate.Validator
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.DocumentStore, validator *validate.Validator) *UseCase {
	return &UseCase{store: store, validator: validator}
}

// Create normaliza, valida, verifica la clave de negocio con una consulta
// puntual (no hay constraint en el almacén) e inserta. key es el valor de la
// clave de negocio del registro; se ignora si la definición no tiene una.
func (uc *UseCase) Create(ctx context.Context, def Definition, rec entity.Record, key string) (string, error) {
	if uc.store == nil {
		return "", domain.ErrStoreUnavailable
	}
	rec.Normalize()
	if err := uc.validator.Struct(rec); err != nil {
		return "", err
	}
	if def.UniqueField != "" {
		existing, err := uc.store.FindOneBy(ctx, def.Collection, def.UniqueField, key)
		if err != nil {
			return "", fmt.Errorf("verificar %s: %w", def.UniqueField, err)
		}
		if existing != nil {
			return "", domain.ErrDuplicate
		}
	}
	return uc.store.Insert(ctx, def.Collection, rec)
}

// List devuelve todos los documentos del recurso, cada uno con su id.
func (uc *UseCase) List(ctx context.Context, def Definition) ([]map[string]any, error) {
	if uc.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	docs, err := uc.store.List(ctx, def.Collection)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Tagged())
	}
	return out, nil
}
