// Package entity define los esquemas de las colecciones del almacén de
// documentos. El nombre de la colección es el nombre de la entidad en
// minúsculas (Product -> "product"). Los tags `validate` expresan las reglas
// de cada campo; los defaults se aplican en Normalize antes de validar.
package entity

import "github.com/shopspring/decimal"

// Nombres de colección, uno por entidad.
const (
	CollectionUser                 = "user"
	CollectionWarehouse            = "warehouse"
	CollectionCustomer             = "customer"
	CollectionSupplier             = "supplier"
	CollectionTax                  = "tax"
	CollectionProduct              = "product"
	CollectionInventoryTransaction = "inventorytransaction"
	CollectionStockLevel           = "stocklevel"
	CollectionSalesOrder           = "salesorder"
	CollectionPurchaseOrder        = "purchaseorder"
	CollectionInvoice              = "invoice"
	CollectionPayment              = "payment"
	CollectionAccount              = "account"
	CollectionJournalEntry         = "journalentry"
	CollectionAuditLog             = "auditlog"
)

// Record es cualquier entidad persistible: aplica sus defaults antes de validar e insertar.
type Record interface {
	Normalize()
}

func ptrBool(b bool) *bool { return &b }

// decOrZero desreferencia un decimal opcional; nil vale 0. Los campos
// obligatorios llegan no-nil tras la validación.
func decOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
